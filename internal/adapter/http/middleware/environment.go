package middleware

import (
	"net/http"
	"strings"

	"clictopay_gateway/internal/domain/entities"
	"clictopay_gateway/pkg"

	"github.com/gin-gonic/gin"
)

const (
	EnvironmentCookie = "app_env_mode"
	EnvironmentHeader = "X-Environment"

	environmentKey = "payment_environment"
)

// Environment resolves the gateway environment of the request, in order: a valid app_env_mode
// cookie, a test_/live_ prefixed bearer key, the X-Environment header, then defaultEnv.
// No authentication is performed on the key.
func Environment(defaultEnv entities.Environment) gin.HandlerFunc {
	return func(c *gin.Context) {
		env, err := resolveEnvironment(c, defaultEnv)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_ENVIRONMENT", "Invalid environment", http.StatusBadRequest).
				WithDetails(map[string]any{"allowed": []string{entities.EnvironmentTest.String(), entities.EnvironmentLive.String()}})
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(environmentKey, env)
		c.Next()
	}
}

// GetEnvironment returns the environment stored by the Environment middleware, or "".
func GetEnvironment(c *gin.Context) entities.Environment {
	if v, ok := c.Get(environmentKey); ok {
		if env, ok := v.(entities.Environment); ok {
			return env
		}
	}
	return ""
}

func resolveEnvironment(c *gin.Context, defaultEnv entities.Environment) (entities.Environment, error) {
	// An unknown cookie value is ignored rather than rejected.
	if cookie, err := c.Cookie(EnvironmentCookie); err == nil && strings.TrimSpace(cookie) != "" {
		if env, err := entities.ParseEnvironment(cookie); err == nil {
			return env, nil
		}
	}

	if auth := strings.TrimSpace(c.GetHeader("Authorization")); auth != "" {
		key := auth
		if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
			key = auth[7:]
		}
		if env, ok := entities.EnvironmentFromAPIKey(key); ok {
			return env, nil
		}
	}

	if header := strings.TrimSpace(c.GetHeader(EnvironmentHeader)); header != "" {
		return entities.ParseEnvironment(header)
	}
	return defaultEnv, nil
}
