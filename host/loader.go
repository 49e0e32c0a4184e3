package host

import (
	stdErrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/scriptglue/scriptglue-sdk/bridge"
	"github.com/scriptglue/scriptglue-sdk/domain/entities"
	domainerrors "github.com/scriptglue/scriptglue-sdk/domain/errors"
	"github.com/scriptglue/scriptglue-sdk/domain/ports"
	"github.com/scriptglue/scriptglue-sdk/infrastructure/parser"
)

// loaderConfig carries the pieces a Loader assembles trees with.
type loaderConfig struct {
	parser ports.ManifestParser
}

func defaultLoaderConfig() loaderConfig {
	return loaderConfig{
		parser: parser.NewYamlManifestParser(),
	}
}

// Loader turns a declarative tree manifest into a live namespace graph.
// Parsing and validation happen before any node is built; the graph is
// assembled in two phases (children first, base links second) so a base
// reference can point at any declared object regardless of order.
type Loader struct {
	config   loaderConfig
	validate *validator.Validate
}

// LoaderOption adjusts how manifests are loaded.
type LoaderOption func(*loaderConfig)

// WithParser sets a custom manifest parser. The default parses YAML;
// parser.NewTomlManifestParser selects TOML.
func WithParser(p ports.ManifestParser) LoaderOption {
	return func(c *loaderConfig) {
		c.parser = p
	}
}

// NewLoader builds a Loader, YAML-parsing by default.
func NewLoader(opts ...LoaderOption) *Loader {
	cfg := defaultLoaderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Loader{
		config:   cfg,
		validate: validator.New(),
	}
}

// LoadManifest parses and validates manifest bytes.
func (l *Loader) LoadManifest(raw []byte) (*entities.TreeManifest, error) {
	manifest, err := l.config.parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := l.validate.Struct(manifest); err != nil {
		return nil, fmt.Errorf("manifest validation failed: %w", err)
	}
	if err := checkManifest(manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}

// BuildTree assembles the namespace graph a validated manifest declares.
// leaves attaches per-class member behavior to declared paths; a leaf
// keyed by an undeclared path is an error. The returned root is the
// implicit parent of every single-segment path.
func (l *Loader) BuildTree(manifest *entities.TreeManifest, leaves map[string]ports.Scriptable) (*bridge.NamespaceObject, error) {
	declared := make(map[string]*entities.ObjectDef, len(manifest.Objects))
	for idx := range manifest.Objects {
		declared[manifest.Objects[idx].Path] = &manifest.Objects[idx]
	}
	for path := range leaves {
		if _, ok := declared[path]; !ok {
			return nil, &domainerrors.ManifestError{Path: path, Err: stdErrors.New("leaf attached to undeclared object")}
		}
	}

	// Phase one: create every node and hang it off its parent.
	root := bridge.NewNamespaceObject()
	nodes := make(map[string]*bridge.NamespaceObject, len(manifest.Objects))
	for _, def := range manifest.Objects {
		var opts []bridge.ObjectOption
		if leaf, ok := leaves[def.Path]; ok {
			opts = append(opts, bridge.WithLeaf(leaf))
		}
		nodes[def.Path] = bridge.NewNamespaceObject(opts...)
	}
	for _, def := range manifest.Objects {
		parent := root
		if dot := strings.LastIndex(def.Path, "."); dot >= 0 {
			parent = nodes[def.Path[:dot]]
		}
		parent.AddNamespaceObject(leafName(def.Path), nodes[def.Path])
	}

	// Phase two: link base classes, now that every target exists.
	for _, def := range manifest.Objects {
		if def.Base == "" {
			continue
		}
		nodes[def.Path].SetBaseClass(nodes[def.Base])
	}

	return root, nil
}

// Load is the combined pipeline: parse, validate, build.
func (l *Loader) Load(raw []byte, leaves map[string]ports.Scriptable) (*bridge.NamespaceObject, error) {
	manifest, err := l.LoadManifest(raw)
	if err != nil {
		return nil, err
	}
	return l.BuildTree(manifest, leaves)
}

// checkManifest runs the semantic checks struct tags cannot express:
// duplicate paths, undeclared ancestors, unknown base references, and
// base cycles.
func checkManifest(manifest *entities.TreeManifest) error {
	declared := make(map[string]string, len(manifest.Objects))
	for _, def := range manifest.Objects {
		if def.Path != strings.Trim(def.Path, ".") || strings.Contains(def.Path, "..") {
			return &domainerrors.ManifestError{Path: def.Path, Err: stdErrors.New("malformed path")}
		}
		if _, dup := declared[def.Path]; dup {
			return &domainerrors.ManifestError{Path: def.Path, Err: stdErrors.New("declared twice")}
		}
		declared[def.Path] = def.Base
	}

	for _, def := range manifest.Objects {
		if dot := strings.LastIndex(def.Path, "."); dot >= 0 {
			if _, ok := declared[def.Path[:dot]]; !ok {
				return &domainerrors.ManifestError{Path: def.Path, Err: fmt.Errorf("ancestor %q is not declared", def.Path[:dot])}
			}
		}
		if def.Base != "" {
			if _, ok := declared[def.Base]; !ok {
				return &domainerrors.ManifestError{Path: def.Path, Err: fmt.Errorf("base %q is not declared", def.Base)}
			}
		}
	}

	// Base links must form a forest.
	for _, def := range manifest.Objects {
		seen := map[string]bool{def.Path: true}
		for base := def.Base; base != ""; base = declared[base] {
			if seen[base] {
				return &domainerrors.ManifestError{Path: def.Path, Err: stdErrors.New("base chain forms a cycle")}
			}
			seen[base] = true
		}
	}
	return nil
}

func leafName(path string) string {
	if dot := strings.LastIndex(path, "."); dot >= 0 {
		return path[dot+1:]
	}
	return path
}
