package mcp

// MySQLDialect implements Dialect for MySQL/MariaDB
type MySQLDialect struct {
	BaseDialect
}

// NewMySQLDialect creates a new MySQL dialect
func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{
		BaseDialect: BaseDialect{driver: DriverMySQL},
	}
}

// Placeholder returns ?
func (d *MySQLDialect) Placeholder(index int) string {
	return "?"
}

// QuoteIdentifier returns `name`
func (d *MySQLDialect) QuoteIdentifier(name string) string {
	return quoteWith(name, "`", "`")
}

// NotesMetadata returns MySQL notes queries
func (d *MySQLDialect) NotesMetadata() NotesSQL {
	return NotesSQL{
		CreateTable: `
			CREATE TABLE IF NOT EXISTS notes (
				id INT AUTO_INCREMENT PRIMARY KEY,
				title VARCHAR(255) NOT NULL,
				content TEXT NOT NULL
			)`,
		Insert:   "INSERT INTO notes (title, content) VALUES (?, ?)",
		InsertID: InsertIDLastInsertID,
		List:     "SELECT id, title FROM notes ORDER BY id",
		Get:      "SELECT id, title, content FROM notes WHERE id = ?",
	}
}

// CatalogMetadata returns MySQL catalog queries. SHOW TABLES names its only
// column Tables_in_<database>, so searching needs the database name.
func (d *MySQLDialect) CatalogMetadata() CatalogSQL {
	return CatalogSQL{
		ListTables:          "SHOW TABLES",
		SearchTables:        "SHOW TABLES WHERE %s LIKE ?",
		SearchNeedsDatabase: true,
		DescribeTable:       "DESCRIBE %s",
	}
}
