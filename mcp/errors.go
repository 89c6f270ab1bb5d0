package mcp

import "errors"

// Connection errors
var (
	ErrConnecting        = errors.New("error connecting to database")
	ErrTestingConnection = errors.New("error testing connection")
	ErrBootstrap         = errors.New("failed to initialize database")
	ErrInvalidDriver     = errors.New("invalid database driver")
)

// Argument errors
var (
	ErrInvalidArguments     = errors.New("invalid arguments")
	ErrTitleContentRequired = errors.New("title and content are required")
	ErrPatternRequired      = errors.New("search pattern is required")
	ErrTableNameRequired    = errors.New("table name is required")
	ErrQueryRequired        = errors.New("SQL query is required")
	ErrInvalidParams        = errors.New("params must be an array of strings")
	ErrInvalidTableName     = errors.New("invalid table name")
	ErrInvalidDatabaseName  = errors.New("invalid database name")
	ErrDatabaseNameRequired = errors.New("database name is not configured")
)

// Lookup errors
var (
	ErrNoteNotFound       = errors.New("not found")
	ErrTableNotFound      = errors.New("does not exist")
	ErrInvalidResourceURI = errors.New("invalid resource URI")
	ErrUnknownTool        = errors.New("unknown tool")
)

// Operation errors
var (
	ErrCreatingNote     = errors.New("failed to create note")
	ErrListingNotes     = errors.New("failed to list notes")
	ErrReadingNote      = errors.New("failed to read note")
	ErrListingTables    = errors.New("failed to list tables")
	ErrCountingTables   = errors.New("failed to count tables")
	ErrSearchingTables  = errors.New("failed to search tables")
	ErrDescribingTable  = errors.New("failed to describe table")
	ErrExecutingSQL     = errors.New("failed to execute SQL")
	ErrReadingRow       = errors.New("error reading row")
	ErrReadingResults   = errors.New("error reading results")
	ErrRetrievingColumn = errors.New("error retrieving columns")
)

// Serialization errors
var (
	ErrSerializingJSON = errors.New("error serializing JSON")
)
