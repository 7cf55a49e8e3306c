package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/plane-tools/go-cmdtree-generator/internal/analyzer"
)

func New(config Config) *Generator {
	return &Generator{config: config}
}

type endpointKey struct {
	resource string
	method   string
	path     string
}

// Generate merges the scanned endpoints with the built-in tables,
// deduplicates exact (resource, method, path) triples in first-seen order,
// names each surviving endpoint and groups everything into the sorted
// resource tree.
func (g *Generator) Generate(endpoints []analyzer.Endpoint) *CommandTree {
	all := make([]analyzer.Endpoint, 0, len(endpoints)+len(inviteEndpoints)+len(stickyEndpoints))
	all = append(all, endpoints...)
	all = append(all, inviteEndpoints...)
	all = append(all, stickyEndpoints...)

	resources := make(map[string][]Operation)
	seen := make(map[endpointKey]bool)

	for _, endpoint := range all {
		key := endpointKey{endpoint.Resource, endpoint.Method, endpoint.Path}
		if seen[key] {
			continue
		}
		seen[key] = true

		ops := resources[endpoint.Resource]
		name := analyzer.OperationName(endpoint.Path, endpoint.Method, endpoint.Resource)
		name = ensureUniqueName(name, endpoint.Method, ops)

		resources[endpoint.Resource] = append(ops, Operation{
			Name:       name,
			Method:     endpoint.Method,
			Path:       endpoint.Path,
			Deprecated: endpoint.Deprecated,
			Params:     convertParams(analyzer.ExtractParams(endpoint.Path)),
		})
	}

	names := make([]string, 0, len(resources))
	for name := range resources {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Resource, 0, len(names))
	for _, name := range names {
		ops := resources[name]
		sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
		out = append(out, Resource{Name: name, Ops: ops})
	}

	return &CommandTree{
		Version:   g.config.Version,
		BasePath:  g.config.BasePath,
		Resources: out,
	}
}

// ensureUniqueName resolves a name collision within one resource by
// appending the lowercased method, then a numeric suffix starting at 2.
func ensureUniqueName(name, method string, ops []Operation) string {
	existing := make(map[string]bool, len(ops))
	for _, op := range ops {
		existing[op.Name] = true
	}
	if !existing[name] {
		return name
	}
	candidate := name + "-" + strings.ToLower(method)
	if !existing[candidate] {
		return candidate
	}
	for idx := 2; ; idx++ {
		candidate = fmt.Sprintf("%s-%d", name, idx)
		if !existing[candidate] {
			return candidate
		}
	}
}

func convertParams(params []analyzer.Param) []Param {
	out := make([]Param, 0, len(params))
	for _, p := range params {
		out = append(out, Param{Name: p.Name, Flag: p.Flag})
	}
	return out
}
