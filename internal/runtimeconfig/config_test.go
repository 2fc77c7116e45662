package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected valid defaults, got %v", err)
	}
}

func TestValidateStorageDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Driver = "oracle"

	if err := cfg.Validate(); !errors.Is(err, ErrStorageDriverUnknown) {
		t.Fatalf("expected ErrStorageDriverUnknown, got %v", err)
	}

	for _, driver := range []string{"", "memory", "sqlite", "postgres", "bun", " SQLite "} {
		cfg.Storage.Driver = driver
		if err := cfg.Validate(); err != nil {
			t.Fatalf("expected driver %q to validate, got %v", driver, err)
		}
	}
}

func TestValidateAIRequiresModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AI.Enabled = true
	cfg.AI.DefaultModel = "  "

	if err := cfg.Validate(); !errors.Is(err, ErrAIModelRequired) {
		t.Fatalf("expected ErrAIModelRequired, got %v", err)
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected gologger defaults to validate, got %v", err)
	}

	cfg.Logging.Provider = ""
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}

	cfg.Logging.Provider = "zap"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg.Logging.Format = "json"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid logging config, got %v", err)
	}
}

func TestValidateSkipsLoggingWhenFeatureDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = false
	cfg.Logging.Provider = "zap"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected logging checks to be skipped, got %v", err)
	}
}
