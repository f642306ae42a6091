// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Brainbox content tools for LLM integration via stdio
// transport. It runs on behalf of one local account identified by
// username; there is no token handshake on stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/brainbox/internal/contentservice"
	"github.com/starford/brainbox/internal/models"
	"github.com/starford/brainbox/internal/shareservice"
	"github.com/starford/brainbox/internal/store"
)

// Server wraps the MCP server with Brainbox tools.
type Server struct {
	mcp      *server.MCPServer
	store    store.Provider
	content  *contentservice.Service
	share    *shareservice.Service
	username string
}

// New creates a new MCP server with all Brainbox tools registered,
// acting as the user with the given username.
func New(st store.Provider, content *contentservice.Service, share *shareservice.Service, username string) *Server {
	s := &Server{store: st, content: content, share: share, username: username}

	s.mcp = server.NewMCPServer(
		"Brainbox",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_content",
		mcp.WithDescription("List all saved content items, newest first."),
	), s.listContent)

	s.mcp.AddTool(mcp.NewTool("add_content",
		mcp.WithDescription("Save a new content item (note, link, tweet, video, ...)."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Item title")),
		mcp.WithString("body", mcp.Required(), mcp.Description("Item body text")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Item type, e.g. Note, Tweet, Video")),
		mcp.WithString("tags", mcp.Description("Comma-separated tags")),
		mcp.WithString("link", mcp.Description("Optional URL the item points at")),
	), s.addContent)

	s.mcp.AddTool(mcp.NewTool("delete_content",
		mcp.WithDescription("Delete a content item by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Content item id")),
	), s.deleteContent)

	s.mcp.AddTool(mcp.NewTool("manage_share",
		mcp.WithDescription("Enable or disable the public share link for the collection. "+
			"Enabling returns the share hash; enabling twice returns the same hash."),
		mcp.WithString("action", mcp.Required(), mcp.Description("Either \"enable\" or \"disable\"")),
	), s.manageShare)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// userID resolves the configured username to its account id.
func (s *Server) userID(ctx context.Context) (string, error) {
	user, err := s.store.GetUserByUsername(ctx, s.username)
	if err != nil {
		return "", fmt.Errorf("unknown user %q: sign up via the HTTP API first", s.username)
	}
	return user.ID, nil
}

func (s *Server) listContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	items, err := s.content.List(ctx, uid)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(items, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) addContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	body, err := req.RequireString("body")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	typ, err := req.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	in := contentservice.CreateInput{
		Title: title,
		Body:  models.TextBody(body),
		Type:  typ,
	}
	if tags, tagErr := req.RequireString("tags"); tagErr == nil {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				in.Tags = append(in.Tags, t)
			}
		}
	}
	if link, linkErr := req.RequireString("link"); linkErr == nil {
		in.Link = link
	}

	item, err := s.content.Create(ctx, uid, in)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created: %s", item.ID)), nil
}

func (s *Server) deleteContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.content.Delete(ctx, uid, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted: %s", id)), nil
}

func (s *Server) manageShare(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	action, err := req.RequireString("action")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	switch action {
	case "enable":
		res, err := s.share.SetSharing(ctx, uid, true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("share hash: %s", res.Hash)), nil
	case "disable":
		if _, err := s.share.SetSharing(ctx, uid, false); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("sharing disabled"), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown action %q: want enable or disable", action)), nil
	}
}
