// tools.go implements the MCP tool handlers.
//
// Rejected records are not tool errors: the verdict is returned as a normal
// JSON result with valid=false and a reason, so the LLM can explain it.
// Tool errors are reserved for malformed requests.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/cafeval/guide"
	"github.com/jpl-au/cafeval/internal/diff"
	"github.com/jpl-au/cafeval/internal/log"
	"github.com/jpl-au/cafeval/internal/selftest"
	"github.com/jpl-au/cafeval/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
)

// validateRecord handles cafeval_validate tool calls.
func (h *handlers) validateRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := req.RequireString("record")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	v := validate.Check(input)
	log.Event("mcp:validate", "check").Author(h.attribution()).Input(input).Write(v.Err())
	h.log.Debug().Str("input", input).Bool("valid", v.Valid).Msg("validate")

	return jsonResult(v)
}

// validateFields handles cafeval_validate_fields tool calls.
func (h *handlers) validateFields(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sizes, ok := getInts(req, "sizes")
	if !ok {
		return mcp.NewToolResultError("sizes must be an array of integers"), nil
	}

	v := validate.Record{Name: name, Sizes: sizes}.Check()
	log.Event("mcp:validate_fields", "check").Author(h.attribution()).Input(v.Input).Write(v.Err())
	h.log.Debug().Str("input", v.Input).Bool("valid", v.Valid).Msg("validate fields")

	return jsonResult(v)
}

// normaliseRecord handles cafeval_normalise tool calls.
func (h *handlers) normaliseRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := req.RequireString("record")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	d := diff.Fields(input)
	log.Event("mcp:normalise", "normalise").Author(h.attribution()).Input(input).Write(nil)

	return jsonResult(map[string]any{
		"input":   input,
		"fields":  validate.Fields(input),
		"changed": d.Changed(),
		"diff":    d.Diff,
	})
}

// selfTest handles cafeval_selftest tool calls.
func (h *handlers) selfTest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cases, err := selftest.Builtin()
	if err != nil {
		return nil, fmt.Errorf("loading battery: %w", err)
	}

	res, runErr := selftest.Run(nil, cases, validate.Valid)
	log.Event("mcp:selftest", "selftest").Author(h.attribution()).
		Detail("cases", res.Total).Detail("passed", res.Passed).Write(runErr)

	out := map[string]any{"ok": res.OK(), "result": res}
	if runErr != nil {
		out["error"] = runErr.Error()
	}
	return jsonResult(out)
}

// getGuide handles cafeval_guide tool calls.
func (h *handlers) getGuide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)
	if err != nil {
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return jsonResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}
