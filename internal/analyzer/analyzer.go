package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Analyzer struct {
	urlsDir string
}

func New(urlsDir string) *Analyzer {
	return &Analyzer{urlsDir: urlsDir}
}

// Analyze scans every route file in the urls directory and expands each
// decoded route into one Endpoint per allowed method. Files backing the
// built-in endpoint tables are skipped.
func (a *Analyzer) Analyze() ([]Endpoint, error) {
	entries, err := os.ReadDir(a.urlsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read urls directory: %w", err)
	}

	var endpoints []Endpoint
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".py") {
			continue
		}
		if specialFiles[name] {
			continue
		}
		fileEndpoints, err := a.analyzeFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse route file %s: %w", name, err)
		}
		endpoints = append(endpoints, fileEndpoints...)
	}

	return endpoints, nil
}

func (a *Analyzer) analyzeFile(fileName string) ([]Endpoint, error) {
	data, err := os.ReadFile(filepath.Join(a.urlsDir, fileName))
	if err != nil {
		return nil, err
	}

	var endpoints []Endpoint
	for block := range pathBlocks(string(data)) {
		route, ok := decodeRoute(block)
		if !ok {
			continue
		}
		resource, deprecated := classifyResource(fileName, route.Path)
		for _, method := range route.Methods {
			endpoints = append(endpoints, Endpoint{
				Resource:   resource,
				Method:     method,
				Path:       route.Path,
				Deprecated: deprecated,
			})
		}
	}
	return endpoints, nil
}
