package generator

import (
	"fmt"
	"sort"

	"github.com/plane-tools/go-cmdtree-generator/internal/analyzer"
)

// ValidateTree checks the invariants the consuming CLI relies on: resources
// and operations sorted by name, operation names unique per resource, and
// params matching the path placeholders one to one. A violation indicates a
// builder bug, not bad input, so callers should treat it as fatal.
func (g *Generator) ValidateTree(tree *CommandTree) error {
	sortedResources := sort.SliceIsSorted(tree.Resources, func(i, j int) bool {
		return tree.Resources[i].Name < tree.Resources[j].Name
	})
	if !sortedResources {
		return fmt.Errorf("resources are not sorted by name")
	}

	for _, resource := range tree.Resources {
		sortedOps := sort.SliceIsSorted(resource.Ops, func(i, j int) bool {
			return resource.Ops[i].Name < resource.Ops[j].Name
		})
		if !sortedOps {
			return fmt.Errorf("operations of %s are not sorted by name", resource.Name)
		}

		seen := make(map[string]bool, len(resource.Ops))
		for _, op := range resource.Ops {
			if seen[op.Name] {
				return fmt.Errorf("duplicate operation %s under %s", op.Name, resource.Name)
			}
			seen[op.Name] = true

			if err := validateParams(op); err != nil {
				return fmt.Errorf("%s %s: %w", resource.Name, op.Name, err)
			}
		}
	}

	return nil
}

// validateParams reconciles an operation's params against the placeholders
// actually present in its path template.
func validateParams(op Operation) error {
	expected := analyzer.ExtractParams(op.Path)
	if len(expected) != len(op.Params) {
		return fmt.Errorf("expected %d params for path %s, got %d", len(expected), op.Path, len(op.Params))
	}
	for i, want := range expected {
		got := op.Params[i]
		if got.Name != want.Name || got.Flag != want.Flag {
			return fmt.Errorf("param %d is {%s %s}, want {%s %s}", i, got.Name, got.Flag, want.Name, want.Flag)
		}
	}
	return nil
}
