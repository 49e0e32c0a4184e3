package ports

import "github.com/scriptglue/scriptglue-sdk/domain/entities"

// ManifestParser parses raw manifest bytes into a TreeManifest.
// Implementations exist for YAML and TOML; the loader picks one through
// its options.
type ManifestParser interface {
	// Parse unmarshals manifest bytes into a TreeManifest struct.
	Parse(data []byte) (*entities.TreeManifest, error)
}
