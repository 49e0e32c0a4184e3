// Package registry generates and stores JSON Schemas for the host's
// declarative inputs, so embedders can validate manifests and session
// configuration before handing them to the loader.
package registry

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/scriptglue/scriptglue-sdk/domain/errors"
	"github.com/scriptglue/scriptglue-sdk/domain/ports"
)

type registryConfig struct {
	strictMode bool // reject duplicate kinds
}

func defaultRegistryConfig() registryConfig {
	return registryConfig{
		strictMode: true,
	}
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryConfig)

// WithStrictMode controls whether registering a kind twice is an error.
// It defaults to on; turn it off when reloading schemas in place.
func WithStrictMode(enabled bool) RegistryOption {
	return func(c *registryConfig) {
		c.strictMode = enabled
	}
}

// Registry implements ports.SchemaRegistry over sync.Map, so reads during
// validation never contend with one another.
type Registry struct {
	config  registryConfig
	schemas sync.Map // kind -> JSON Schema text
	models  sync.Map // kind -> registered model value
}

// NewRegistry builds a Registry with the given options applied.
func NewRegistry(opts ...RegistryOption) ports.SchemaRegistry {
	cfg := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry{config: cfg}
}

// Register reflects a JSON Schema from model and stores it under kind.
func (r *Registry) Register(kind string, model interface{}) error {
	if r.config.strictMode {
		if _, exists := r.schemas.Load(kind); exists {
			return &errors.SchemaError{Type: kind, Err: fmt.Errorf("already registered")}
		}
	}

	r.models.Store(kind, model)

	s := jsonschema.Reflect(model)
	data, err := json.Marshal(s)
	if err != nil {
		return &errors.SchemaError{Type: kind, Err: err}
	}
	r.schemas.Store(kind, string(data))
	return nil
}

// GetSchema retrieves the JSON Schema registered under kind.
func (r *Registry) GetSchema(kind string) (string, bool) {
	v, ok := r.schemas.Load(kind)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// List returns all registered schema names.
func (r *Registry) List() []string {
	var keys []string
	r.schemas.Range(func(k, v interface{}) bool {
		keys = append(keys, k.(string))
		return true
	})
	return keys
}
