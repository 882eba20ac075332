// Package mcp implements the Model Context Protocol server, exposing record
// validation to LLMs so an assistant can check product records without
// shelling out to the CLI.
package mcp

import (
	"context"
	"errors"

	"github.com/jpl-au/cafeval/internal/logger"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio.
// Diagnostics go to l; stdout is reserved for MCP JSON-RPC messages.
func Serve(l *logger.Logger, author string) error {
	h := &handlers{log: l, author: author}
	s := newServer(h)

	l.Info().Str("version", Version).Str("transport", "stdio").Msg("cafeval MCP server ready")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		l.Info().Msg("server stopped")
		return nil
	}
	return err
}

func newServer(h *handlers) *server.MCPServer {
	s := server.NewMCPServer(
		"cafeval",
		Version,
		server.WithToolCapabilities(true),
	)
	registerTools(s, h)
	return s
}

// handlers provides MCP request handlers.
type handlers struct {
	log    *logger.Logger
	author string // attribution for audit log entries; "mcp" when empty
}

// registerTools exposes cafeval operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("cafeval_validate",
			mcp.WithDescription("Validate a product record such as \"ZumoNa,1,2,3\": a 2-15 letter name followed by 1-5 strictly ascending sizes between 1 and 48"),
			mcp.WithString("record", mcp.Required(), mcp.Description("Comma-separated record; spaces are ignored")),
		),
		h.validateRecord,
	)

	s.AddTool(
		mcp.NewTool("cafeval_validate_fields",
			mcp.WithDescription("Validate a product given as separate name and sizes instead of a record string"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Product name")),
			mcp.WithArray("sizes", mcp.Required(), mcp.Description("Sizes in order"), mcp.Items(map[string]any{"type": "integer"})),
		),
		h.validateFields,
	)

	s.AddTool(
		mcp.NewTool("cafeval_normalise",
			mcp.WithDescription("Show how a record is split into fields and which spaces are removed"),
			mcp.WithString("record", mcp.Required(), mcp.Description("Comma-separated record")),
		),
		h.normaliseRecord,
	)

	s.AddTool(
		mcp.NewTool("cafeval_selftest",
			mcp.WithDescription("Run the built-in self-test battery and report the first mismatch, if any"),
		),
		h.selfTest,
	)

	s.AddTool(
		mcp.NewTool("cafeval_guide",
			mcp.WithDescription("Get help/guide content for cafeval"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'rules', 'mcp') or empty for index")),
		),
		h.getGuide,
	)
}

func (h *handlers) attribution() string {
	if h.author == "" {
		return "mcp"
	}
	return h.author
}
