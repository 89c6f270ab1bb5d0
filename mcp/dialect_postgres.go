package mcp

import "fmt"

// PostgresDialect implements Dialect for PostgreSQL
type PostgresDialect struct {
	BaseDialect
}

// NewPostgresDialect creates a new PostgreSQL dialect
func NewPostgresDialect() *PostgresDialect {
	return &PostgresDialect{
		BaseDialect: BaseDialect{driver: DriverPostgresSQL},
	}
}

// Placeholder returns $1, $2, etc.
func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index)
}

// QuoteIdentifier returns "name"
func (d *PostgresDialect) QuoteIdentifier(name string) string {
	return quoteWith(name, `"`, `"`)
}

// NotesMetadata returns PostgreSQL notes queries
func (d *PostgresDialect) NotesMetadata() NotesSQL {
	return NotesSQL{
		CreateTable: `
			CREATE TABLE IF NOT EXISTS notes (
				id SERIAL PRIMARY KEY,
				title VARCHAR(255) NOT NULL,
				content TEXT NOT NULL
			)`,
		Insert:   "INSERT INTO notes (title, content) VALUES ($1, $2) RETURNING id",
		InsertID: InsertIDReturning,
		List:     "SELECT id, title FROM notes ORDER BY id",
		Get:      "SELECT id, title, content FROM notes WHERE id = $1",
	}
}

// CatalogMetadata returns PostgreSQL catalog queries
func (d *PostgresDialect) CatalogMetadata() CatalogSQL {
	return CatalogSQL{
		ListTables: `
			SELECT table_name
			FROM information_schema.tables
			WHERE table_schema = current_schema()
				AND table_type = 'BASE TABLE'
			ORDER BY table_name`,
		SearchTables: `
			SELECT table_name
			FROM information_schema.tables
			WHERE table_schema = current_schema()
				AND table_type = 'BASE TABLE'
				AND table_name LIKE $1
			ORDER BY table_name`,
		DescribeTable: `
			SELECT
				column_name,
				data_type,
				is_nullable,
				column_default,
				character_maximum_length
			FROM information_schema.columns
			WHERE table_schema = current_schema() AND table_name = $1
			ORDER BY ordinal_position`,
		DescribeBindsName: true,
	}
}
