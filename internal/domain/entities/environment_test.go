package entities

import (
	"errors"
	"testing"
)

func TestParseEnvironment(t *testing.T) {
	cases := map[string]Environment{
		"test":    EnvironmentTest,
		" TEST ":  EnvironmentTest,
		"sandbox": EnvironmentTest,
		"live":    EnvironmentLive,
		"Prod":    EnvironmentLive,
	}
	for raw, want := range cases {
		got, err := ParseEnvironment(raw)
		if err != nil || got != want {
			t.Fatalf("ParseEnvironment(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}

	if _, err := ParseEnvironment("staging"); !errors.Is(err, ErrInvalidEnvironment) {
		t.Fatalf("expected ErrInvalidEnvironment, got %v", err)
	}
	if _, err := ParseEnvironment(""); !errors.Is(err, ErrInvalidEnvironment) {
		t.Fatalf("expected ErrInvalidEnvironment, got %v", err)
	}
}

func TestEnvironmentFromAPIKey(t *testing.T) {
	t.Run("test prefix", func(t *testing.T) {
		env, ok := EnvironmentFromAPIKey("test_abc123")
		if !ok || env != EnvironmentTest {
			t.Fatalf("expected test, got %q %v", env, ok)
		}
	})

	t.Run("live prefix", func(t *testing.T) {
		env, ok := EnvironmentFromAPIKey("live_abc123")
		if !ok || env != EnvironmentLive {
			t.Fatalf("expected live, got %q %v", env, ok)
		}
	})

	t.Run("unknown prefix", func(t *testing.T) {
		if _, ok := EnvironmentFromAPIKey("abc123"); ok {
			t.Fatalf("expected no environment")
		}
	})
}

func TestEnvironment_IsValid(t *testing.T) {
	if !EnvironmentTest.IsValid() || !EnvironmentLive.IsValid() {
		t.Fatalf("expected known environments to be valid")
	}
	if Environment("staging").IsValid() {
		t.Fatalf("expected staging to be invalid")
	}
	if !EnvironmentTest.IsTest() || EnvironmentLive.IsTest() {
		t.Fatalf("unexpected IsTest result")
	}
}
