package sdk

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate caches the parsed struct rules, so it is shared across calls.
var validate = validator.New()

// ValidateSettings validates a Settings map against a struct with validation tags.
// The settings map round-trips through JSON into targetStruct, then the
// struct tags drive validation.
func ValidateSettings(settings Settings, targetStruct interface{}) error {
	jsonBytes, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings map: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, targetStruct); err != nil {
		return fmt.Errorf("failed to unmarshal settings into struct: %w", err)
	}

	if err := validate.Struct(targetStruct); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}

	return nil
}

// ValidateConfig runs struct-level validation on an already populated Config.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return &ConfigError{Field: "config", Err: fmt.Errorf("config is nil")}
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
