package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationNameResourceRoot(t *testing.T) {
	base := "workspaces/<str:slug>/invitations/"
	detail := base + "<uuid:pk>/"

	assert.Equal(t, "list", OperationName(base, "GET", "invite"))
	assert.Equal(t, "create", OperationName(base, "POST", "invite"))
	assert.Equal(t, "get", OperationName(detail, "GET", "invite"))
	assert.Equal(t, "update", OperationName(detail, "PATCH", "invite"))
	assert.Equal(t, "delete", OperationName(detail, "DELETE", "invite"))
}

func TestOperationNameCanonicalSegmentAnchor(t *testing.T) {
	path := "workspaces/<str:slug>/projects/<uuid:project_id>/labels/"
	assert.Equal(t, "list", OperationName(path, "GET", "label"))
	assert.Equal(t, "create", OperationName(path, "POST", "label"))
}

func TestOperationNameArchive(t *testing.T) {
	path := "workspaces/<str:slug>/projects/<uuid:project_id>/issues/<uuid:pk>/archive/"
	assert.Equal(t, "archive", OperationName(path, "POST", "issue"))
	assert.Equal(t, "unarchive", OperationName(path, "DELETE", "issue"))

	unarchive := "workspaces/<str:slug>/projects/<uuid:project_id>/issues/<uuid:pk>/unarchive/"
	assert.Equal(t, "unarchive", OperationName(unarchive, "POST", "issue"))
	assert.Equal(t, "unarchive", OperationName(unarchive, "GET", "issue"))
}

func TestOperationNameByIdentifier(t *testing.T) {
	path := "workspaces/<str:slug>/projects/<str:project_identifier>/issues/<str:issue_identifier>/"
	assert.Equal(t, "by-identifier", OperationName(path, "GET", "issue"))
	// Only GET short-circuits; other methods follow the generic rules.
	assert.NotEqual(t, "by-identifier", OperationName(path, "PATCH", "issue"))
}

func TestOperationNameFixedGetVerbs(t *testing.T) {
	assert.Equal(t, "search", OperationName("workspaces/<str:slug>/issues/search/", "GET", "issue"))
	assert.Equal(t, "suggest", OperationName("workspaces/<str:slug>/members/suggest/", "GET", "member"))
	assert.Equal(t, "count", OperationName("workspaces/<str:slug>/issues/count/", "GET", "issue"))
	assert.Equal(t, "unread-count", OperationName("workspaces/<str:slug>/issues/unread-count/", "GET", "issue"))

	// The same tokens are plain action segments for other methods.
	assert.Equal(t, "search-create", OperationName("workspaces/<str:slug>/issues/search/", "POST", "issue"))
}

func TestOperationNameActionVerbs(t *testing.T) {
	comments := "workspaces/<str:slug>/projects/<uuid:project_id>/issues/<uuid:issue_id>/comments/"
	commentDetail := comments + "<uuid:pk>/"

	assert.Equal(t, "comments-list", OperationName(comments, "GET", "issue"))
	assert.Equal(t, "comments-create", OperationName(comments, "POST", "issue"))
	assert.Equal(t, "comments-get", OperationName(commentDetail, "GET", "issue"))
	assert.Equal(t, "comments-update", OperationName(commentDetail, "PATCH", "issue"))
	assert.Equal(t, "comments-delete", OperationName(commentDetail, "DELETE", "issue"))
}

func TestOperationNamePrefixJoining(t *testing.T) {
	path := "workspaces/<str:slug>/projects/<uuid:project_id>/issues/<uuid:issue_id>/comments/reactions/"
	assert.Equal(t, "comments-reactions-list", OperationName(path, "GET", "issue"))
	assert.Equal(t, "comments-reactions-create", OperationName(path, "POST", "issue"))
}

func TestOperationNameTransferIssues(t *testing.T) {
	path := "workspaces/<str:slug>/projects/<uuid:project_id>/cycles/<uuid:cycle_id>/transfer-issues/"
	assert.Equal(t, "transfer-issues", OperationName(path, "POST", "cycle"))
	assert.Equal(t, "transfer-issues-list", OperationName(path, "GET", "cycle"))
}

func TestOperationNameIgnoredPrefixes(t *testing.T) {
	// No canonical segment for the resource: scoping prefixes are dropped
	// and the remaining plain segments act as the action.
	path := "workspaces/<str:slug>/projects/<uuid:project_id>/archive/"
	assert.Equal(t, "archive", OperationName(path, "POST", "workspace"))

	// Nothing left at all falls back to the resource-root verbs.
	root := "workspaces/<str:slug>/"
	assert.Equal(t, "get", OperationName(root, "GET", "workspace"))
	assert.Equal(t, "update", OperationName(root, "PATCH", "workspace"))
}

func TestOperationNameUnknownMethod(t *testing.T) {
	assert.Equal(t, "put", OperationName("workspaces/<str:slug>/issues/", "PUT", "issue"))
	assert.Equal(t, "options", OperationName("workspaces/<str:slug>/", "OPTIONS", "workspace"))
}

func TestOperationNameAliasTable(t *testing.T) {
	// member anchors on either members or project-members.
	assert.Equal(t, "list", OperationName("workspaces/<str:slug>/members/", "GET", "member"))
	assert.Equal(t, "list", OperationName("workspaces/<str:slug>/project-members/", "GET", "member"))

	// user-assets anchors the asset resource.
	assert.Equal(t, "get", OperationName("user-assets/<uuid:asset_id>/", "GET", "asset"))
}
