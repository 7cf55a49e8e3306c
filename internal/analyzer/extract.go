package analyzer

import (
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`<[^>]+>`)

// ExtractParams returns the distinct path parameters of a template in
// first-occurrence order. A <type:name> placeholder keeps only the name,
// a bare <name> placeholder uses the whole body. Duplicate names collapse
// to their first occurrence.
func ExtractParams(path string) []Param {
	var params []Param
	seen := make(map[string]bool)
	for _, match := range placeholderRe.FindAllString(path, -1) {
		token := match[1 : len(match)-1]
		name := token
		if i := strings.Index(token, ":"); i != -1 {
			name = token[i+1:]
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		params = append(params, Param{
			Name: name,
			Flag: strings.ReplaceAll(name, "_", "-"),
		})
	}
	return params
}
