package analyzer

// RouteDeclaration is the raw result of decoding one path() block.
type RouteDeclaration struct {
	Path    string
	Methods []string
}

// Endpoint is one (resource, method, path) triple before deduplication.
// Deprecated marks routes classified as a legacy alias of another resource.
type Endpoint struct {
	Resource   string
	Method     string
	Path       string
	Deprecated bool
}

// Param is a path parameter. Flag is the CLI-facing form of the name with
// underscores replaced by hyphens.
type Param struct {
	Name string
	Flag string
}
