package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ExecResult describes a statement that returned no rows.
type ExecResult struct {
	AffectedRows int64  `json:"affectedRows"`
	InsertID     *int64 `json:"insertId,omitempty"`
}

// ExecuteSQL runs query verbatim with params bound positionally. Nothing is
// filtered or capped. Row-returning statements yield []*Row, anything else
// an ExecResult.
func (a *Adapter) ExecuteSQL(ctx context.Context, query string, params []string) (any, error) {
	if query == "" {
		return nil, ErrQueryRequired
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultQueryTimeout)
	defer cancel()

	args := make([]any, len(params))
	for i, p := range params {
		args[i] = p
	}

	if returnsRows(query) {
		rows, err := a.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExecutingSQL, err)
		}
		defer rows.Close()

		results, err := scanRows(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExecutingSQL, err)
		}
		return results, nil
	}

	res, err := a.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingSQL, err)
	}

	var result ExecResult
	if n, err := res.RowsAffected(); err == nil {
		result.AffectedRows = n
	}
	if id, err := res.LastInsertId(); err == nil {
		result.InsertID = &id
	}
	return result, nil
}

// Tool: Execute SQL
func (a *Adapter) toolExecuteSQL() (mcp.Tool, toolHandler) {
	return mcp.Tool{
		Name:        ToolExecuteSQL,
		Description: "Execute a SQL query",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "SQL query to execute",
				},
				"params": map[string]interface{}{
					"type":        "array",
					"description": "Query parameters (optional)",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
			},
			Required: []string{"query"},
		},
	}, a.handleExecuteSQL
}

func (a *Adapter) handleExecuteSQL(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	query, _ := getStringArg(args, "query")
	if query == "" {
		return mcp.NewToolResultError(ErrQueryRequired.Error()), nil
	}

	params, err := getStringSliceArg(args, "params")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := a.ExecuteSQL(ctx, query, params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	jsonData, err := marshalJSON(result, "  ")
	if err != nil {
		return mcp.NewToolResultError(ErrSerializingJSON.Error()), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}
