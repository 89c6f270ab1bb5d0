package mcp

import (
	"fmt"
)

// QueryBuilder provides database-agnostic query building using dialects
type QueryBuilder struct {
	driver  DriverType
	dialect Dialect
}

// NewQueryBuilder creates a new QueryBuilder for the given driver
func NewQueryBuilder(driver string) (*QueryBuilder, error) {
	dialect, err := NewDialect(driver)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s'", err, driver)
	}
	return &QueryBuilder{
		driver:  DriverType(driver),
		dialect: dialect,
	}, nil
}

// GetDriver returns the current driver type
func (qb *QueryBuilder) GetDriver() DriverType {
	return qb.driver
}

// QuoteIdentifier returns the properly quoted identifier for the driver
func (qb *QueryBuilder) QuoteIdentifier(name string) string {
	return qb.dialect.QuoteIdentifier(name)
}

// -----------------------------------------------------------------------------
// Notes Queries
// -----------------------------------------------------------------------------

// CreateNotesTableQuery returns the idempotent notes DDL
func (qb *QueryBuilder) CreateNotesTableQuery() string {
	return qb.dialect.NotesMetadata().CreateTable
}

// InsertNoteQuery returns the insert statement and how to read back its id
func (qb *QueryBuilder) InsertNoteQuery(title, content string) (string, []any, InsertIDStrategy) {
	meta := qb.dialect.NotesMetadata()
	return meta.Insert, []any{title, content}, meta.InsertID
}

// ListNotesQuery returns the query selecting id and title of every note
func (qb *QueryBuilder) ListNotesQuery() string {
	return qb.dialect.NotesMetadata().List
}

// GetNoteQuery returns the query selecting one note by id
func (qb *QueryBuilder) GetNoteQuery(id int64) (string, []any) {
	return qb.dialect.NotesMetadata().Get, []any{id}
}

// -----------------------------------------------------------------------------
// Catalog Queries
// -----------------------------------------------------------------------------

// ListTablesQuery returns the query listing every table name
func (qb *QueryBuilder) ListTablesQuery() string {
	return qb.dialect.CatalogMetadata().ListTables
}

// SearchTablesQuery returns the query filtering table names by a LIKE
// pattern. The pattern is always bound; the database name is interpolated
// for dialects that need it and must pass isValidIdentifier.
func (qb *QueryBuilder) SearchTablesQuery(database, pattern string) (string, []any, error) {
	meta := qb.dialect.CatalogMetadata()
	if !meta.SearchNeedsDatabase {
		return meta.SearchTables, []any{pattern}, nil
	}

	if database == "" {
		return "", nil, ErrDatabaseNameRequired
	}
	if !isValidIdentifier(database) {
		return "", nil, fmt.Errorf("%w: %s", ErrInvalidDatabaseName, database)
	}
	column := qb.QuoteIdentifier("Tables_in_" + database)
	return fmt.Sprintf(meta.SearchTables, column), []any{pattern}, nil
}

// DescribeTableQuery returns the structure query for one table. Dialects
// that cannot bind the name get it validated and quoted.
func (qb *QueryBuilder) DescribeTableQuery(tableName string) (string, []any, error) {
	meta := qb.dialect.CatalogMetadata()
	if meta.DescribeBindsName {
		return meta.DescribeTable, []any{tableName}, nil
	}

	if !isValidIdentifier(tableName) {
		return "", nil, fmt.Errorf("%w: %s", ErrInvalidTableName, tableName)
	}
	return fmt.Sprintf(meta.DescribeTable, qb.QuoteIdentifier(tableName)), nil, nil
}
