package mcp

import "time"

// Database connection pool configuration constants
const (
	DBMaxOpenConns    = 25
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 5 * time.Minute
	DBPingTimeout     = 5 * time.Second
)

// Query timeout constants. Pool acquisition waits at most this long too.
const (
	DefaultQueryTimeout = 30 * time.Second
	ShortQueryTimeout   = 10 * time.Second
)

// Server identity reported to MCP clients
const (
	ServerName    = "mysql-server"
	ServerVersion = "0.1.0"
)

// Notes resources
const (
	NoteURIScheme   = "note"
	NoteURIPrefix   = "note:///"
	NoteURITemplate = "note:///{id}"
	NoteMIMEType    = "text/plain"
	NotesTable      = "notes"
)

// Tool names
const (
	ToolCreateNote    = "create_note"
	ToolListTables    = "list_tables"
	ToolCountTables   = "count_tables"
	ToolSearchTables  = "search_tables"
	ToolDescribeTable = "describe_table"
	ToolExecuteSQL    = "execute_sql"
)

// Drivers
const (
	DriverSQLServer   DriverType = "sqlserver"
	DriverPostgresSQL DriverType = "postgres"
	DriverMySQL       DriverType = "mysql"
	DriverOracle      DriverType = "godror"
	DriverSQLite      DriverType = "sqlite3"
	DriverSQLitePure  DriverType = "sqlite"
)

// Transports
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)
