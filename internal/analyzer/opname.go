package analyzer

import "strings"

// ignorePrefixes are workspace/project scoping segments that never
// contribute to an operation name.
var ignorePrefixes = map[string]bool{
	"workspaces": true,
	"projects":   true,
}

// resourceSegments maps a resource to the path segments that anchor it
// inside a route. Action segments are whatever follows the anchor.
var resourceSegments = map[string][]string{
	"project":   {"projects"},
	"cycle":     {"cycles"},
	"module":    {"modules"},
	"state":     {"states"},
	"label":     {"labels"},
	"member":    {"members", "project-members"},
	"intake":    {"intake-issues"},
	"user":      {"users"},
	"asset":     {"assets", "user-assets"},
	"work-item": {"work-items"},
	"issue":     {"issues"},
	"invite":    {"invitations"},
	"sticky":    {"stickies"},
}

func isParamSegment(seg string) bool {
	return strings.HasPrefix(seg, "<") && strings.HasSuffix(seg, ">")
}

// OperationName infers a short CLI verb from a route's shape. The order of
// the special cases matters: an archive path registered for both POST and
// DELETE names differently per method, and the fixed-verb overrides must win
// over the generic method mapping.
func OperationName(path, method, resource string) string {
	if strings.Contains(path, "project_identifier") && strings.Contains(path, "issue_identifier") && method == "GET" {
		return "by-identifier"
	}

	var segments []string
	for _, s := range strings.Split(strings.Trim(path, "/"), "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	var plain []string
	for _, s := range segments {
		if !isParamSegment(s) {
			plain = append(plain, s)
		}
	}

	baseIdx := -1
	for _, base := range resourceSegments[resource] {
		for i, s := range plain {
			if s == base {
				baseIdx = i
				break
			}
		}
		if baseIdx != -1 {
			break
		}
	}

	var actions []string
	if baseIdx != -1 {
		actions = plain[baseIdx+1:]
	} else {
		for _, s := range plain {
			if !ignorePrefixes[s] {
				actions = append(actions, s)
			}
		}
	}

	isDetail := len(segments) > 0 && isParamSegment(segments[len(segments)-1])

	var prefix []string
	last := ""
	if len(actions) > 0 {
		last = actions[len(actions)-1]
		if len(actions) > 1 {
			prefix = actions[:len(actions)-1]
		}
	}
	withPrefix := func(action string) string {
		if len(prefix) == 0 {
			return action
		}
		return strings.Join(prefix, "-") + "-" + action
	}

	if len(actions) > 0 {
		switch {
		case method == "GET" && (last == "search" || last == "suggest" || last == "count" || last == "unread-count"):
			return withPrefix(last)
		case last == "archive" && method == "DELETE":
			return withPrefix("unarchive")
		case last == "unarchive":
			return withPrefix("unarchive")
		}

		switch method {
		case "GET":
			if isDetail {
				return withPrefix(last + "-get")
			}
			return withPrefix(last + "-list")
		case "POST":
			if last == "archive" || last == "transfer-issues" {
				return withPrefix(last)
			}
			return withPrefix(last + "-create")
		case "PATCH":
			return withPrefix(last + "-update")
		case "DELETE":
			return withPrefix(last + "-delete")
		}
	}

	switch method {
	case "GET":
		if isDetail {
			return "get"
		}
		return "list"
	case "POST":
		return "create"
	case "PATCH":
		return "update"
	case "DELETE":
		return "delete"
	}

	return strings.ToLower(method)
}
