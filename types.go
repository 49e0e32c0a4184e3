package sdk

import (
	"fmt"

	"github.com/scriptglue/scriptglue-sdk/domain/entities"
)

// Settings is the loose key-value form embedders usually hand in before
// it is shaped into a typed Config.
type Settings map[string]interface{}

// Config is the typed per-session configuration.
type Config struct {
	// InstanceName labels the plugin instance in logs and leak reports.
	InstanceName string `json:"instance_name" validate:"required"`

	// ManifestFormat selects the tree manifest parser.
	ManifestFormat string `json:"manifest_format,omitempty" validate:"omitempty,oneof=yaml toml"`

	// AllocationLimit caps the instance allocator, in bytes. Zero keeps
	// the default limit.
	AllocationLimit int `json:"allocation_limit,omitempty" validate:"omitempty,min=1"`

	// SkipIndexProbe makes indexed reads skip the host existence probe,
	// for hosts whose indexed probes answer incorrectly.
	SkipIndexProbe bool `json:"skip_index_probe,omitempty"`
}

// ErrorDetail is re-exported from entities for embedder convenience.
type ErrorDetail = entities.ErrorDetail

// ConfigError reports a missing or mistyped settings field.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config field %q: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements the domain errors' DetailedError interface.
func (e *ConfigError) ToErrorDetail() *ErrorDetail {
	return &ErrorDetail{Message: e.Error(), Type: "validation", Code: e.Field}
}

const (
	// Version of the SDK
	Version = "0.1.0-alpha"
)
