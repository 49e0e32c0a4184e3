package hostfuncs

// DefaultMaxRequestSize caps a single bridge request payload at 1MB.
// A guest that claims a larger length gets a validation error instead of
// forcing the host to read arbitrary amounts of its memory.
const DefaultMaxRequestSize = 1 * 1024 * 1024
