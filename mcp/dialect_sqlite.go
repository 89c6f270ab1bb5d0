package mcp

// SQLiteDialect implements Dialect for SQLite. Both the cgo driver
// (sqlite3) and the pure Go driver (sqlite) share it.
type SQLiteDialect struct {
	BaseDialect
}

// NewSQLiteDialect creates a new SQLite dialect
func NewSQLiteDialect(driver DriverType) *SQLiteDialect {
	return &SQLiteDialect{
		BaseDialect: BaseDialect{driver: driver},
	}
}

// Placeholder returns ?
func (d *SQLiteDialect) Placeholder(index int) string {
	return "?"
}

// QuoteIdentifier returns "name"
func (d *SQLiteDialect) QuoteIdentifier(name string) string {
	return quoteWith(name, `"`, `"`)
}

// NotesMetadata returns SQLite notes queries
func (d *SQLiteDialect) NotesMetadata() NotesSQL {
	return NotesSQL{
		CreateTable: `
			CREATE TABLE IF NOT EXISTS notes (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				title VARCHAR(255) NOT NULL,
				content TEXT NOT NULL
			)`,
		Insert:   "INSERT INTO notes (title, content) VALUES (?, ?)",
		InsertID: InsertIDLastInsertID,
		List:     "SELECT id, title FROM notes ORDER BY id",
		Get:      "SELECT id, title, content FROM notes WHERE id = ?",
	}
}

// CatalogMetadata returns SQLite catalog queries. Internal sqlite_* tables
// (sqlite_sequence and friends) are hidden.
func (d *SQLiteDialect) CatalogMetadata() CatalogSQL {
	return CatalogSQL{
		ListTables: `
			SELECT name
			FROM sqlite_master
			WHERE type = 'table' AND name NOT LIKE 'sqlite\_%' ESCAPE '\'
			ORDER BY name`,
		SearchTables: `
			SELECT name
			FROM sqlite_master
			WHERE type = 'table' AND name NOT LIKE 'sqlite\_%' ESCAPE '\'
				AND name LIKE ?
			ORDER BY name`,
		DescribeTable:     "SELECT * FROM pragma_table_info(?)",
		DescribeBindsName: true,
	}
}
