package analyzer

import (
	"path/filepath"
	"strings"
)

// specialFiles are excluded from generic scanning; their routes are supplied
// by the generator's built-in endpoint tables.
var specialFiles = map[string]bool{
	"invite.py": true,
	"sticky.py": true,
}

// classifyResource maps a route file and path template to a resource name.
// work_item.py splits in two: legacy /issues/ paths stay on the deprecated
// "issue" resource, everything else belongs to "work-item".
func classifyResource(fileName, path string) (string, bool) {
	if fileName == "work_item.py" {
		if strings.Contains(path, "/issues/") && !strings.Contains(path, "/work-items/") {
			return "issue", true
		}
		return "work-item", false
	}
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	return strings.ReplaceAll(stem, "_", "-"), false
}
