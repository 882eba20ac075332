// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Optional parameters fall back to defaults when missing or mistyped, so an
// LLM omitting one does not get a cryptic error.

package mcp

import (
	"encoding/json"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter, returning def if it is missing or
// not a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getInts extracts an integer array parameter. JSON numbers decode as
// float64, so each element must be a whole number. ok is false when the
// parameter is missing, not an array, or holds anything else.
func getInts(req mcp.CallToolRequest, name string) ([]int, bool) {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil, false
	}
	arr, ok := args[name].([]any)
	if !ok {
		return nil, false
	}
	result := make([]int, 0, len(arr))
	for _, v := range arr {
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
			return nil, false
		}
		result = append(result, int(f))
	}
	return result, true
}

// jsonResult serialises v as indented JSON and wraps it in an MCP text result.
// Marshalling failures become MCP error results rather than Go errors.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
