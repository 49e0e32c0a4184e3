package parser

import (
	"github.com/BurntSushi/toml"

	"github.com/scriptglue/scriptglue-sdk/domain/entities"
	"github.com/scriptglue/scriptglue-sdk/domain/ports"
)

// TomlManifestParser implements ManifestParser for TOML.
type TomlManifestParser struct{}

// NewTomlManifestParser returns the TOML manifest parser.
func NewTomlManifestParser() ports.ManifestParser {
	return &TomlManifestParser{}
}

// Parse decodes a TOML manifest into its tree form.
func (p *TomlManifestParser) Parse(data []byte) (*entities.TreeManifest, error) {
	var manifest entities.TreeManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}
