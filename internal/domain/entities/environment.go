package entities

import (
	"errors"
	"strings"
)

// Environment selects the ClicToPay platform (test or live) a merchant call goes to.

type Environment string

const (
	EnvironmentTest Environment = "test"
	EnvironmentLive Environment = "live"
)

var ErrInvalidEnvironment = errors.New("invalid environment")

func (e Environment) IsValid() bool {
	return e == EnvironmentTest || e == EnvironmentLive
}

func (e Environment) IsTest() bool {
	return e == EnvironmentTest
}

func (e Environment) String() string {
	return string(e)
}

// ParseEnvironment accepts "test"/"live" in any case, plus the "sandbox"/"prod" aliases.
func ParseEnvironment(raw string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "test", "sandbox":
		return EnvironmentTest, nil
	case "live", "prod", "production":
		return EnvironmentLive, nil
	default:
		return "", ErrInvalidEnvironment
	}
}

// EnvironmentFromAPIKey reads the environment from a "test_" or "live_" key prefix.
func EnvironmentFromAPIKey(key string) (Environment, bool) {
	key = strings.TrimSpace(key)
	switch {
	case strings.HasPrefix(key, "test_"):
		return EnvironmentTest, true
	case strings.HasPrefix(key, "live_"):
		return EnvironmentLive, true
	default:
		return "", false
	}
}
