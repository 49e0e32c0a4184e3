package sdk

import (
	"fmt"

	"github.com/scriptglue/scriptglue-sdk/domain/ports"
	"github.com/scriptglue/scriptglue-sdk/host"
	"github.com/scriptglue/scriptglue-sdk/infrastructure/parser"
)

// ConfigFromSettings builds a validated Config from a loosely typed Settings
// map, such as one decoded from an embedding application's own config file.
func ConfigFromSettings(settings Settings) (*Config, error) {
	name, err := MustGetString(settings, "instance_name")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		InstanceName:    name,
		ManifestFormat:  GetStringDefault(settings, "manifest_format", ""),
		AllocationLimit: GetIntDefault(settings, "allocation_limit", 0),
		SkipIndexProbe:  GetBoolDefault(settings, "skip_index_probe", false),
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// manifestParser selects the parser matching the configured manifest format.
func manifestParser(cfg *Config) (ports.ManifestParser, error) {
	switch cfg.ManifestFormat {
	case "", "yaml":
		return parser.NewYamlManifestParser(), nil
	case "toml":
		return parser.NewTomlManifestParser(), nil
	default:
		return nil, &ConfigError{
			Field: "manifest_format",
			Err:   fmt.Errorf("unsupported manifest format %q", cfg.ManifestFormat),
		}
	}
}

// NewInstanceFromManifest parses and validates a tree manifest, attaches the
// supplied leaves, and returns an Instance ready for Initialize. The leaves
// map is keyed by dotted object path as declared in the manifest.
func NewInstanceFromManifest(cfg Config, manifest []byte, leaves map[string]ports.Scriptable) (*host.Instance, error) {
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	p, err := manifestParser(&cfg)
	if err != nil {
		return nil, err
	}

	root, err := host.NewLoader(host.WithParser(p)).Load(manifest, leaves)
	if err != nil {
		return nil, err
	}

	opts := []host.InstanceOption{}
	if cfg.AllocationLimit > 0 {
		opts = append(opts, host.WithAllocationLimit(cfg.AllocationLimit))
	}
	if cfg.SkipIndexProbe {
		opts = append(opts, host.WithSkipIndexProbe(true))
	}
	return host.NewInstance(cfg.InstanceName, root, opts...), nil
}
