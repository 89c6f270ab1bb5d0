package mcp

import "strings"

// DriverType is the database/sql driver name a dialect targets.
type DriverType string

// Dialect defines the interface for database-specific SQL generation
type Dialect interface {
	// Driver returns the driver type
	Driver() DriverType

	// Placeholder returns the parameter placeholder for the given index (1-based)
	Placeholder(index int) string

	// QuoteIdentifier quotes an identifier (table, column name)
	QuoteIdentifier(name string) string

	// NotesMetadata returns the SQL for the notes table
	NotesMetadata() NotesSQL

	// CatalogMetadata returns the SQL for table catalog queries
	CatalogMetadata() CatalogSQL
}

// InsertIDStrategy tells how the id assigned to a new note is read back.
type InsertIDStrategy int

const (
	// InsertIDLastInsertID uses sql.Result.LastInsertId.
	InsertIDLastInsertID InsertIDStrategy = iota
	// InsertIDReturning scans the id from a row returned by the insert.
	InsertIDReturning
	// InsertIDOutBind binds the id to a trailing sql.Out parameter.
	InsertIDOutBind
)

// NotesSQL contains SQL templates for the notes table
type NotesSQL struct {
	// CreateTable is idempotent
	CreateTable string
	// Insert takes title and content, in that order
	Insert   string
	InsertID InsertIDStrategy
	// List selects id and title
	List string
	// Get selects id, title and content for one id
	Get string
}

// CatalogSQL contains SQL templates for table catalog operations.
// Every query returns a single column holding the table name.
type CatalogSQL struct {
	// ListTables base query
	ListTables string

	// SearchTables filters ListTables by a bound LIKE pattern. When
	// SearchNeedsDatabase is set it is a format string taking the quoted
	// catalog column for the active database.
	SearchTables        string
	SearchNeedsDatabase bool

	// DescribeTable returns the column structure of one table. When
	// DescribeBindsName is false it is a format string taking the quoted
	// table name.
	DescribeTable     string
	DescribeBindsName bool
}

// BaseDialect provides common functionality for all dialects
type BaseDialect struct {
	driver DriverType
}

// Driver returns the driver type
func (d *BaseDialect) Driver() DriverType {
	return d.driver
}

// quoteWith wraps name in open/close and doubles any embedded close rune.
func quoteWith(name, open, close string) string {
	return open + strings.ReplaceAll(name, close, close+close) + close
}

// NewDialect creates a new dialect for the given driver
func NewDialect(driver string) (Dialect, error) {
	switch DriverType(driver) {
	case DriverSQLServer:
		return NewSQLServerDialect(), nil
	case DriverPostgresSQL:
		return NewPostgresDialect(), nil
	case DriverMySQL:
		return NewMySQLDialect(), nil
	case DriverOracle:
		return NewOracleDialect(), nil
	case DriverSQLite, DriverSQLitePure:
		return NewSQLiteDialect(DriverType(driver)), nil
	default:
		return nil, ErrInvalidDriver
	}
}

// NormalizeDriver converts user-friendly driver names to internal driver names
func NormalizeDriver(driver string) string {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "sqlserver", "mssql":
		return string(DriverSQLServer)
	case "postgres", "postgresql":
		return string(DriverPostgresSQL)
	case "mysql", "mariadb":
		return string(DriverMySQL)
	case "sqlite3":
		return string(DriverSQLite)
	case "sqlite":
		return string(DriverSQLitePure)
	case "oracle", "godror":
		return string(DriverOracle)
	default:
		return ""
	}
}
