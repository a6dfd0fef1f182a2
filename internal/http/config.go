package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Catalog  CatalogReader
	Database Pinger

	// UI paths; empty values use the embedded views and assets
	TemplatesPath string
	StaticPath    string

	// Origins allowed to read the health endpoints cross-origin
	CORSOrigins []string

	// Tracing
	TracingEnabled bool
	ServiceName    string

	// Application info
	Version string
}
