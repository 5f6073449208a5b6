package config

import (
	"errors"
	"strings"

	"clictopay_gateway/internal/domain/entities"

	"github.com/spf13/viper"
)

type Config struct {
	Port               int             `json:"port" mapstructure:"port"`
	LogLevel           string          `json:"log_level" mapstructure:"log_level"`
	DefaultEnvironment string          `json:"default_environment" mapstructure:"default_environment"`
	PaymentGatewayMock bool            `json:"payment_gateway_mock" mapstructure:"payment_gateway_mock"`
	ClicToPay          ClicToPayConfig `json:"clictopay" mapstructure:"clictopay"`
}

type ClicToPayConfig struct {
	Test           Credentials `json:"test" mapstructure:"test"`
	Live           Credentials `json:"live" mapstructure:"live"`
	TimeoutSeconds int         `json:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// Credentials of one merchant account. An empty Endpoint means the platform default.
type Credentials struct {
	Login    string `json:"login" mapstructure:"login"`
	Password string `json:"password" mapstructure:"password"`
	Endpoint string `json:"endpoint" mapstructure:"endpoint"`
}

func (c Credentials) IsSet() bool {
	return c.Login != "" && c.Password != ""
}

func (c ClicToPayConfig) For(env entities.Environment) Credentials {
	if env == entities.EnvironmentLive {
		return c.Live
	}
	return c.Test
}

var defaults = map[string]any{
	"port":                      8080,
	"log_level":                 "info",
	"default_environment":       "test",
	"payment_gateway_mock":      false,
	"clictopay.timeout_seconds": 60,
	"clictopay.test.login":      "",
	"clictopay.test.password":   "",
	"clictopay.test.endpoint":   "",
	"clictopay.live.login":      "",
	"clictopay.live.password":   "",
	"clictopay.live.endpoint":   "",
}

// LoadConfig reads config.json from path when present, then lets environment variables
// override every key (clictopay.test.login -> CLICTOPAY_TEST_LOGIN).
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigType("json")
	v.SetConfigName("config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	result := &Config{}
	if err := v.Unmarshal(result); err != nil {
		return nil, err
	}
	return result, nil
}
