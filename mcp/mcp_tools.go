package mcp

func (a *Adapter) registerTools() {
	// Create Note
	a.addTool(a.toolCreateNote())

	// List Tables
	a.addTool(a.toolListTables())

	// Count Tables
	a.addTool(a.toolCountTables())

	// Search Tables
	a.addTool(a.toolSearchTables())

	// Describe Table
	a.addTool(a.toolDescribeTable())

	// Execute SQL
	a.addTool(a.toolExecuteSQL())
}
