package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// queryNames runs a single-column query and collects the names it returns.
func (a *Adapter) queryNames(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (a *Adapter) tableNames(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, ShortQueryTimeout)
	defer cancel()

	return a.queryNames(ctx, a.qb.ListTablesQuery())
}

// ListTables returns every table name in the connected database.
func (a *Adapter) ListTables(ctx context.Context) ([]string, error) {
	tables, err := a.tableNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListingTables, err)
	}
	return tables, nil
}

// CountTables returns the number of tables ListTables would return.
func (a *Adapter) CountTables(ctx context.Context) (int, error) {
	tables, err := a.tableNames(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCountingTables, err)
	}
	return len(tables), nil
}

// SearchTables returns the table names matching a LIKE pattern.
func (a *Adapter) SearchTables(ctx context.Context, pattern string) ([]string, error) {
	if pattern == "" {
		return nil, ErrPatternRequired
	}

	query, args, err := a.qb.SearchTablesQuery(a.database, pattern)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, ShortQueryTimeout)
	defer cancel()

	tables, err := a.queryNames(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchingTables, err)
	}
	return tables, nil
}

// DescribeTable returns the column structure of an existing table. The
// name is checked against the current table list first; no structure
// query is issued for unknown tables.
func (a *Adapter) DescribeTable(ctx context.Context, table string) ([]*Row, error) {
	if table == "" {
		return nil, ErrTableNameRequired
	}

	tables, err := a.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	exists := false
	for _, t := range tables {
		if t == table {
			exists = true
			break
		}
	}
	if !exists {
		return nil, fmt.Errorf("table '%s' %w", table, ErrTableNotFound)
	}

	query, args, err := a.qb.DescribeTableQuery(table)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, ShortQueryTimeout)
	defer cancel()

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDescribingTable, err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// Tool: List Tables
func (a *Adapter) toolListTables() (mcp.Tool, toolHandler) {
	return mcp.Tool{
		Name:        ToolListTables,
		Description: "List all tables in the database",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
			Required:   []string{},
		},
	}, a.handleListTables
}

func (a *Adapter) handleListTables(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	tables, err := a.ListTables(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText("Tables in database:\n" + strings.Join(tables, "\n")), nil
}

// Tool: Count Tables
func (a *Adapter) toolCountTables() (mcp.Tool, toolHandler) {
	return mcp.Tool{
		Name:        ToolCountTables,
		Description: "Get the total number of tables in the database",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
			Required:   []string{},
		},
	}, a.handleCountTables
}

func (a *Adapter) handleCountTables(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	count, err := a.CountTables(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Total number of tables: %d", count)), nil
}

// Tool: Search Tables
func (a *Adapter) toolSearchTables() (mcp.Tool, toolHandler) {
	return mcp.Tool{
		Name:        ToolSearchTables,
		Description: "Search for tables using LIKE pattern",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"pattern": map[string]interface{}{
					"type":        "string",
					"description": "LIKE pattern to search for (e.g. '%bill%')",
				},
			},
			Required: []string{"pattern"},
		},
	}, a.handleSearchTables
}

func (a *Adapter) handleSearchTables(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	pattern, _ := getStringArg(args, "pattern")

	tables, err := a.SearchTables(ctx, pattern)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text := fmt.Sprintf("Tables matching pattern '%s':\n%s", pattern, strings.Join(tables, "\n"))
	return mcp.NewToolResultText(text), nil
}

// Tool: Describe Table
func (a *Adapter) toolDescribeTable() (mcp.Tool, toolHandler) {
	return mcp.Tool{
		Name:        ToolDescribeTable,
		Description: "Get the structure of a table",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"table": map[string]interface{}{
					"type":        "string",
					"description": "Name of the table to describe",
				},
			},
			Required: []string{"table"},
		},
	}, a.handleDescribeTable
}

func (a *Adapter) handleDescribeTable(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	table, _ := getStringArg(args, "table")

	columns, err := a.DescribeTable(ctx, table)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	jsonData, err := marshalJSON(columns, "  ")
	if err != nil {
		return mcp.NewToolResultError(ErrSerializingJSON.Error()), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}
