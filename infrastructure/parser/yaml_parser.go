package parser

import (
	"github.com/scriptglue/scriptglue-sdk/domain/entities"
	"github.com/scriptglue/scriptglue-sdk/domain/ports"
	"gopkg.in/yaml.v3"
)

// YamlManifestParser implements ManifestParser for YAML.
type YamlManifestParser struct{}

// NewYamlManifestParser returns the YAML manifest parser.
func NewYamlManifestParser() ports.ManifestParser {
	return &YamlManifestParser{}
}

// Parse decodes a YAML manifest into its tree form.
func (p *YamlManifestParser) Parse(data []byte) (*entities.TreeManifest, error) {
	var manifest entities.TreeManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}
