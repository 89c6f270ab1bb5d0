package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteSQLSelect(t *testing.T) {
	a, _ := newTestAdapter(t)

	text, isErr := callTool(t, a, ToolExecuteSQL, map[string]any{"query": "SELECT 1+1 AS x"})
	require.False(t, isErr, text)
	assert.JSONEq(t, `[{"x": 2}]`, text)
}

func TestExecuteSQLEmptyResult(t *testing.T) {
	a, _ := newTestAdapter(t)

	text, isErr := callTool(t, a, ToolExecuteSQL, map[string]any{"query": "SELECT id FROM notes"})
	require.False(t, isErr, text)
	assert.Equal(t, "[]", text)
}

func TestExecuteSQLKeepsColumnOrder(t *testing.T) {
	a, _ := newTestAdapter(t)

	text, isErr := callTool(t, a, ToolExecuteSQL, map[string]any{
		"query": "SELECT 'z' AS zulu, NULL AS alpha, 1.5 AS mike",
	})
	require.False(t, isErr, text)
	assert.Equal(t, "[\n  {\n    \"zulu\": \"z\",\n    \"alpha\": null,\n    \"mike\": 1.5\n  }\n]", text)
}

func TestExecuteSQLLeavesMarkupUnescaped(t *testing.T) {
	a, _ := newTestAdapter(t)

	text, isErr := callTool(t, a, ToolExecuteSQL, map[string]any{
		"query": "SELECT '<b>bold</b> & more' AS html",
	})
	require.False(t, isErr, text)
	assert.Equal(t, "[\n  {\n    \"html\": \"<b>bold</b> & more\"\n  }\n]", text)
}

func TestExecuteSQLParams(t *testing.T) {
	a, _ := newTestAdapter(t)
	_, err := a.CreateNote(context.Background(), "shopping", "milk, eggs")
	require.NoError(t, err)

	text, isErr := callTool(t, a, ToolExecuteSQL, map[string]any{
		"query":  "SELECT title, content FROM notes WHERE title = ?",
		"params": []any{"shopping"},
	})
	require.False(t, isErr, text)
	assert.JSONEq(t, `[{"title": "shopping", "content": "milk, eggs"}]`, text)
}

func TestExecuteSQLInvalidParams(t *testing.T) {
	a, rec := newTestAdapter(t)

	text, isErr := callTool(t, a, ToolExecuteSQL, map[string]any{
		"query":  "SELECT ?",
		"params": []any{1},
	})
	assert.True(t, isErr)
	assert.Equal(t, ErrInvalidParams.Error(), text)
	assert.False(t, rec.Issued("SELECT"))
}

func TestExecuteSQLExec(t *testing.T) {
	a, _ := newTestAdapter(t)

	text, isErr := callTool(t, a, ToolExecuteSQL, map[string]any{
		"query":  "INSERT INTO notes (title, content) VALUES (?, ?)",
		"params": []any{"raw", "inserted through execute_sql"},
	})
	require.False(t, isErr, text)

	var result ExecResult
	require.NoError(t, json.Unmarshal([]byte(text), &result))
	assert.Equal(t, int64(1), result.AffectedRows)
	require.NotNil(t, result.InsertID)
	assert.Equal(t, int64(1), *result.InsertID)

	note, err := a.GetNote(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "inserted through execute_sql", note.Content)
}

func TestExecuteSQLExecWithOutputColumn(t *testing.T) {
	a, _ := newTestAdapter(t)
	mustExec(t, a, "CREATE TABLE jobs (id INTEGER PRIMARY KEY, output TEXT)")

	for _, query := range []string{
		"INSERT INTO jobs (output) VALUES ('done')",
		"UPDATE jobs SET output = 'x'",
		"DELETE FROM jobs WHERE output = 'x'",
	} {
		text, isErr := callTool(t, a, ToolExecuteSQL, map[string]any{"query": query})
		require.False(t, isErr, text)

		var result ExecResult
		require.NoError(t, json.Unmarshal([]byte(text), &result), text)
		assert.Equal(t, int64(1), result.AffectedRows, query)
	}
}

func TestExecuteSQLIsUnrestricted(t *testing.T) {
	a, _ := newTestAdapter(t)
	ctx := context.Background()

	mustExec(t, a, "CREATE TABLE scratch (v TEXT)")
	mustExec(t, a, "DROP TABLE scratch")

	tables, err := a.ListTables(ctx)
	require.NoError(t, err)
	assert.NotContains(t, tables, "scratch")
}

func TestExecuteSQLReturning(t *testing.T) {
	a, _ := newTestAdapter(t)

	text, isErr := callTool(t, a, ToolExecuteSQL, map[string]any{
		"query": "INSERT INTO notes (title, content) VALUES ('r', 'c') RETURNING id",
	})
	require.False(t, isErr, text)
	assert.JSONEq(t, `[{"id": 1}]`, text)
}

func TestExecuteSQLFailure(t *testing.T) {
	a, _ := newTestAdapter(t)

	text, isErr := callTool(t, a, ToolExecuteSQL, map[string]any{"query": "SELECT * FROM missing_table"})
	assert.True(t, isErr)
	assert.Contains(t, text, "failed to execute SQL: ")
}

func TestExecuteSQLRequiresQuery(t *testing.T) {
	a, _ := newTestAdapter(t)

	text, isErr := callTool(t, a, ToolExecuteSQL, map[string]any{"params": []any{"x"}})
	assert.True(t, isErr)
	assert.Equal(t, "SQL query is required", text)

	_, err := a.ExecuteSQL(context.Background(), "", nil)
	require.ErrorIs(t, err, ErrQueryRequired)
}
