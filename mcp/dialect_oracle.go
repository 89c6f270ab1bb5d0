package mcp

import "fmt"

// OracleDialect implements Dialect for Oracle Database
type OracleDialect struct {
	BaseDialect
}

// NewOracleDialect creates a new Oracle dialect
func NewOracleDialect() *OracleDialect {
	return &OracleDialect{
		BaseDialect: BaseDialect{driver: DriverOracle},
	}
}

// Placeholder returns :1, :2, etc.
func (d *OracleDialect) Placeholder(index int) string {
	return fmt.Sprintf(":%d", index)
}

// QuoteIdentifier returns "NAME"
func (d *OracleDialect) QuoteIdentifier(name string) string {
	return quoteWith(name, `"`, `"`)
}

// NotesMetadata returns Oracle notes queries. Oracle has no CREATE TABLE IF
// NOT EXISTS before 23c, so ORA-00955 (name already used) is swallowed.
func (d *OracleDialect) NotesMetadata() NotesSQL {
	return NotesSQL{
		CreateTable: `
			BEGIN
				EXECUTE IMMEDIATE 'CREATE TABLE notes (
					id NUMBER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
					title VARCHAR2(255) NOT NULL,
					content CLOB NOT NULL
				)';
			EXCEPTION
				WHEN OTHERS THEN
					IF SQLCODE != -955 THEN
						RAISE;
					END IF;
			END;`,
		Insert:   "INSERT INTO notes (title, content) VALUES (:1, :2) RETURNING id INTO :3",
		InsertID: InsertIDOutBind,
		List:     "SELECT id, title FROM notes ORDER BY id",
		Get:      "SELECT id, title, content FROM notes WHERE id = :1",
	}
}

// CatalogMetadata returns Oracle catalog queries
func (d *OracleDialect) CatalogMetadata() CatalogSQL {
	return CatalogSQL{
		ListTables: "SELECT table_name FROM user_tables ORDER BY table_name",
		SearchTables: `
			SELECT table_name
			FROM user_tables
			WHERE table_name LIKE :1
			ORDER BY table_name`,
		DescribeTable: `
			SELECT
				column_name,
				data_type,
				nullable,
				data_default,
				data_length
			FROM user_tab_columns
			WHERE table_name = :1
			ORDER BY column_id`,
		DescribeBindsName: true,
	}
}
