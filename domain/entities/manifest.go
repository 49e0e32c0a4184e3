package entities

// TreeManifest is the declarative form of a generator-produced namespace
// tree. A build-time generator (or a hand-written registration file)
// emits one manifest per plugin; the host loader turns it into the live
// object graph before any script traffic starts.
type TreeManifest struct {
	Name        string      `json:"name" yaml:"name" toml:"name" validate:"required"`
	Version     string      `json:"version,omitempty" yaml:"version,omitempty" toml:"version"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty" toml:"description"`
	Objects     []ObjectDef `json:"objects" yaml:"objects" toml:"objects" validate:"required,min=1,dive"`
}

// ObjectDef declares one namespace object node.
//
// Path is the dotted location of the node under the root ("math",
// "math.Vector"); every ancestor segment must be declared by its own
// ObjectDef or the loader rejects the manifest. Base names another
// declared path whose node serves as the inherited-member fallback.
type ObjectDef struct {
	Path        string `json:"path" yaml:"path" toml:"path" validate:"required"`
	Base        string `json:"base,omitempty" yaml:"base,omitempty" toml:"base"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description"`
}
