package generator

type Generator struct {
	config Config
}

type Config struct {
	Version  int
	BasePath string
}

// CommandTree is the output artifact. Field and array ordering is
// significant for reproducibility: resources and the ops within them are
// sorted alphabetically by name, params keep first-occurrence order.
type CommandTree struct {
	Version   int        `json:"version" yaml:"version"`
	BasePath  string     `json:"base_path" yaml:"base_path"`
	Resources []Resource `json:"resources" yaml:"resources"`
}

type Resource struct {
	Name string      `json:"name" yaml:"name"`
	Ops  []Operation `json:"ops" yaml:"ops"`
}

type Operation struct {
	Name       string  `json:"name" yaml:"name"`
	Method     string  `json:"method" yaml:"method"`
	Path       string  `json:"path" yaml:"path"`
	Deprecated bool    `json:"deprecated" yaml:"deprecated"`
	Params     []Param `json:"params" yaml:"params"`
}

type Param struct {
	Name string `json:"name" yaml:"name"`
	Flag string `json:"flag" yaml:"flag"`
}
