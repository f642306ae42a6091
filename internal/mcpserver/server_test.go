package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/brainbox/internal/contentservice"
	"github.com/starford/brainbox/internal/models"
	"github.com/starford/brainbox/internal/shareservice"
	"github.com/starford/brainbox/internal/testutil"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	db := testutil.TestStore(t)
	if _, err := db.CreateUser(context.Background(), models.User{
		ID: "u1", Username: "alice", PasswordHash: "x",
	}); err != nil {
		t.Fatal(err)
	}

	content := contentservice.NewService(db)
	share := shareservice.NewService(db, 0)
	return New(db, content, share, "alice")
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	var result *mcp.CallToolResult
	var err error

	// mcp-go has no direct "call tool" test helper, so the handler
	// functions are exercised directly.
	switch name {
	case "list_content":
		result, err = srv.listContent(ctx, req)
	case "add_content":
		result, err = srv.addContent(ctx, req)
	case "delete_content":
		result, err = srv.deleteContent(ctx, req)
	case "manage_share":
		result, err = srv.manageShare(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestAddAndListContent(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "add_content", map[string]interface{}{
		"title": "Note1",
		"body":  "hello",
		"type":  "Note",
		"tags":  "go, testing",
	})
	if r.IsError {
		t.Fatalf("add failed: %s", resultText(r))
	}
	if !strings.HasPrefix(resultText(r), "created: ") {
		t.Errorf("add result = %q", resultText(r))
	}

	r = callTool(t, srv, "list_content", map[string]interface{}{})
	text := resultText(r)
	if !strings.Contains(text, "Note1") {
		t.Errorf("list does not contain Note1: %s", text)
	}
}

func TestAddContentBadLink(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "add_content", map[string]interface{}{
		"title": "t",
		"body":  "b",
		"type":  "Note",
		"link":  "not-a-url",
	})
	if !r.IsError {
		t.Error("expected error for invalid link")
	}
}

func TestDeleteContentMissing(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "delete_content", map[string]interface{}{"id": "nope"})
	if !r.IsError {
		t.Error("expected error for missing id")
	}
}

func TestManageShare(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "manage_share", map[string]interface{}{"action": "enable"})
	if r.IsError {
		t.Fatalf("enable failed: %s", resultText(r))
	}
	first := resultText(r)

	// Enabling again keeps the same hash.
	r = callTool(t, srv, "manage_share", map[string]interface{}{"action": "enable"})
	if resultText(r) != first {
		t.Errorf("hash rotated: %q != %q", resultText(r), first)
	}

	r = callTool(t, srv, "manage_share", map[string]interface{}{"action": "disable"})
	if r.IsError {
		t.Fatalf("disable failed: %s", resultText(r))
	}

	r = callTool(t, srv, "manage_share", map[string]interface{}{"action": "rotate"})
	if !r.IsError {
		t.Error("expected error for unknown action")
	}
}

func TestUnknownUser(t *testing.T) {
	db := testutil.TestStore(t)
	content := contentservice.NewService(db)
	share := shareservice.NewService(db, 0)
	srv := New(db, content, share, "ghost")

	r := callTool(t, srv, "list_content", map[string]interface{}{})
	if !r.IsError {
		t.Error("expected error for unknown user")
	}
}
