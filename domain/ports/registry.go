package ports

// SchemaRegistry manages JSON schemas for the SDK's declarative formats
// (tree manifests, instance configs), so host tooling can introspect the
// contracts it is expected to produce.
type SchemaRegistry interface {
	// Register reflects a JSON Schema from model and stores it under kind.
	Register(kind string, model interface{}) error

	// GetSchema retrieves the JSON Schema for a registered kind.
	GetSchema(kind string) (string, bool)

	// List returns all registered kinds.
	List() []string
}
