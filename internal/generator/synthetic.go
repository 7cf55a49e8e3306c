package generator

import "github.com/plane-tools/go-cmdtree-generator/internal/analyzer"

// Invitation and sticky routes live outside the scanned urls layout, so
// their endpoints are fixed tables merged into the endpoint list before
// deduplication.
const (
	inviteBase = "workspaces/<str:slug>/invitations/"
	stickyBase = "workspaces/<str:slug>/stickies/"
)

var (
	inviteEndpoints = syntheticEndpoints("invite", inviteBase)
	stickyEndpoints = syntheticEndpoints("sticky", stickyBase)
)

// syntheticEndpoints models the standard create/list/get/update/delete set
// over a base path with a UUID primary key.
func syntheticEndpoints(resource, base string) []analyzer.Endpoint {
	detail := base + "<uuid:pk>/"
	return []analyzer.Endpoint{
		{Resource: resource, Method: "GET", Path: base},
		{Resource: resource, Method: "POST", Path: base},
		{Resource: resource, Method: "GET", Path: detail},
		{Resource: resource, Method: "PATCH", Path: detail},
		{Resource: resource, Method: "DELETE", Path: detail},
	}
}
