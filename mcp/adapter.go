package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler runs one tool with already-normalized arguments.
type toolHandler func(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error)

// Adapter translates MCP resource and tool requests into SQL against one
// connection pool. It keeps no state besides the pool handle and the static
// tool catalog, so it is safe for concurrent use.
type Adapter struct {
	db       DB
	qb       *QueryBuilder
	database string

	tools    []mcp.Tool
	handlers map[string]toolHandler
}

// NewAdapter builds an adapter over db. database is the active database
// name, used where the dialect's catalog needs it (MySQL search_tables).
func NewAdapter(db DB, driver, database string) (*Adapter, error) {
	qb, err := NewQueryBuilder(driver)
	if err != nil {
		return nil, err
	}

	a := &Adapter{
		db:       db,
		qb:       qb,
		database: database,
		handlers: make(map[string]toolHandler),
	}

	// Register tools
	a.registerTools()

	return a, nil
}

func (a *Adapter) addTool(tool mcp.Tool, handler toolHandler) {
	a.tools = append(a.tools, tool)
	a.handlers[tool.Name] = handler
}

// Driver returns the driver the adapter generates SQL for.
func (a *Adapter) Driver() DriverType {
	return a.qb.GetDriver()
}

// Close closes the database connection pool.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// Bootstrap creates the notes table if it does not exist yet.
func (a *Adapter) Bootstrap(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ShortQueryTimeout)
	defer cancel()

	if _, err := a.db.ExecContext(ctx, a.qb.CreateNotesTableQuery()); err != nil {
		return fmt.Errorf("%w: %v", ErrBootstrap, err)
	}
	return nil
}

// ListTools returns the static tool catalog in declaration order.
func (a *Adapter) ListTools() []mcp.Tool {
	tools := make([]mcp.Tool, len(a.tools))
	copy(tools, a.tools)
	return tools
}

// CallTool dispatches a tool invocation by name. Request-level failures are
// reported as error results, never as a Go error.
func (a *Adapter) CallTool(ctx context.Context, name string, arguments any) (*mcp.CallToolResult, error) {
	handler, ok := a.handlers[name]
	if !ok {
		return mcp.NewToolResultError(fmt.Errorf("%w: %s", ErrUnknownTool, name).Error()), nil
	}

	args, ok := getArgs(arguments)
	if !ok {
		return mcp.NewToolResultError(ErrInvalidArguments.Error()), nil
	}

	return handler(ctx, args)
}
