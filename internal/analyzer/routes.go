package analyzer

import (
	"iter"
	"regexp"
	"strings"
)

const pathMarker = "path("

var (
	pathCallRe   = regexp.MustCompile(`path\(\s*"([^"]+)"`)
	methodListRe = regexp.MustCompile(`http_method_names\s*=\s*\[([^\]]+)\]`)
	methodTokRe  = regexp.MustCompile(`"([a-z]+)"`)
)

// pathBlocks yields each balanced path(...) call expression in text,
// tolerating nested parentheses inside the arguments. An unterminated block
// ends the sequence; the rest of the file is not scanned.
func pathBlocks(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		idx := 0
		for {
			start := strings.Index(text[idx:], pathMarker)
			if start == -1 {
				return
			}
			start += idx

			depth := 0
			end := -1
			for i := start; i < len(text); i++ {
				switch text[i] {
				case '(':
					depth++
				case ')':
					depth--
					if depth == 0 {
						end = i
					}
				}
				if end != -1 {
					break
				}
			}
			if end == -1 {
				return
			}
			if !yield(text[start : end+1]) {
				return
			}
			idx = end + 1
		}
	}
}

// decodeRoute extracts the path template and allowed HTTP methods from one
// block. Blocks missing either are unrelated registrations sharing the
// marker and are skipped without error.
func decodeRoute(block string) (RouteDeclaration, bool) {
	pathMatch := pathCallRe.FindStringSubmatch(block)
	if pathMatch == nil {
		return RouteDeclaration{}, false
	}

	listMatch := methodListRe.FindStringSubmatch(block)
	if listMatch == nil {
		return RouteDeclaration{}, false
	}

	var methods []string
	for _, tok := range methodTokRe.FindAllStringSubmatch(listMatch[1], -1) {
		methods = append(methods, strings.ToUpper(tok[1]))
	}
	if len(methods) == 0 {
		return RouteDeclaration{}, false
	}

	return RouteDeclaration{Path: pathMatch[1], Methods: methods}, true
}
