package mcp

import "fmt"

// SQLServerDialect implements Dialect for Microsoft SQL Server
type SQLServerDialect struct {
	BaseDialect
}

// NewSQLServerDialect creates a new SQL Server dialect
func NewSQLServerDialect() *SQLServerDialect {
	return &SQLServerDialect{
		BaseDialect: BaseDialect{driver: DriverSQLServer},
	}
}

// Placeholder returns @p1, @p2, etc.
func (d *SQLServerDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index)
}

// QuoteIdentifier returns [name]
func (d *SQLServerDialect) QuoteIdentifier(name string) string {
	return quoteWith(name, "[", "]")
}

// NotesMetadata returns SQL Server notes queries
func (d *SQLServerDialect) NotesMetadata() NotesSQL {
	return NotesSQL{
		CreateTable: `
			IF OBJECT_ID(N'notes', N'U') IS NULL
			CREATE TABLE notes (
				id INT IDENTITY(1,1) PRIMARY KEY,
				title NVARCHAR(255) NOT NULL,
				content NVARCHAR(MAX) NOT NULL
			)`,
		Insert:   "INSERT INTO notes (title, content) OUTPUT INSERTED.id VALUES (@p1, @p2)",
		InsertID: InsertIDReturning,
		List:     "SELECT id, title FROM notes ORDER BY id",
		Get:      "SELECT id, title, content FROM notes WHERE id = @p1",
	}
}

// CatalogMetadata returns SQL Server catalog queries
func (d *SQLServerDialect) CatalogMetadata() CatalogSQL {
	return CatalogSQL{
		ListTables: `
			SELECT TABLE_NAME
			FROM INFORMATION_SCHEMA.TABLES
			WHERE TABLE_TYPE = 'BASE TABLE'
			ORDER BY TABLE_NAME`,
		SearchTables: `
			SELECT TABLE_NAME
			FROM INFORMATION_SCHEMA.TABLES
			WHERE TABLE_TYPE = 'BASE TABLE'
				AND TABLE_NAME LIKE @p1
			ORDER BY TABLE_NAME`,
		DescribeTable: `
			SELECT
				COLUMN_NAME,
				DATA_TYPE,
				IS_NULLABLE,
				COLUMN_DEFAULT,
				CHARACTER_MAXIMUM_LENGTH
			FROM INFORMATION_SCHEMA.COLUMNS
			WHERE TABLE_NAME = @p1
			ORDER BY ORDINAL_POSITION`,
		DescribeBindsName: true,
	}
}
