package mcp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allDrivers = []DriverType{
	DriverMySQL, DriverPostgresSQL, DriverSQLServer, DriverOracle, DriverSQLite, DriverSQLitePure,
}

func TestNormalizeDriver(t *testing.T) {
	tests := map[string]DriverType{
		"mysql":      DriverMySQL,
		"MariaDB":    DriverMySQL,
		"postgresql": DriverPostgresSQL,
		"postgres":   DriverPostgresSQL,
		"mssql":      DriverSQLServer,
		" sqlserver": DriverSQLServer,
		"oracle":     DriverOracle,
		"godror":     DriverOracle,
		"sqlite3":    DriverSQLite,
		"sqlite":     DriverSQLitePure,
		"db2":        "",
	}
	for in, want := range tests {
		assert.Equal(t, string(want), NormalizeDriver(in), in)
	}
}

func TestNewQueryBuilderEveryDriver(t *testing.T) {
	for _, driver := range allDrivers {
		qb, err := NewQueryBuilder(string(driver))
		require.NoError(t, err, driver)
		assert.Equal(t, driver, qb.GetDriver())

		assert.NotEmpty(t, qb.CreateNotesTableQuery(), driver)
		assert.Contains(t, strings.ToUpper(qb.ListNotesQuery()), "ORDER BY ID", driver)
		assert.NotEmpty(t, qb.ListTablesQuery(), driver)

		query, args, _ := qb.InsertNoteQuery("t", "c")
		assert.Contains(t, query, "INSERT INTO notes", driver)
		assert.Equal(t, []any{"t", "c"}, args)

		query, args = qb.GetNoteQuery(7)
		assert.Contains(t, query, "WHERE id = ", driver)
		assert.Equal(t, []any{int64(7)}, args)
	}
}

func TestNewQueryBuilderInvalidDriver(t *testing.T) {
	_, err := NewQueryBuilder("")
	require.ErrorIs(t, err, ErrInvalidDriver)
}

func TestInsertIDStrategies(t *testing.T) {
	tests := map[DriverType]InsertIDStrategy{
		DriverMySQL:       InsertIDLastInsertID,
		DriverSQLite:      InsertIDLastInsertID,
		DriverPostgresSQL: InsertIDReturning,
		DriverSQLServer:   InsertIDReturning,
		DriverOracle:      InsertIDOutBind,
	}
	for driver, want := range tests {
		qb, err := NewQueryBuilder(string(driver))
		require.NoError(t, err)
		_, _, got := qb.InsertNoteQuery("t", "c")
		assert.Equal(t, want, got, driver)
	}
}

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		driver DriverType
		in     string
		want   string
	}{
		{DriverMySQL, "notes", "`notes`"},
		{DriverMySQL, "a`b", "`a``b`"},
		{DriverPostgresSQL, `a"b`, `"a""b"`},
		{DriverSQLServer, "a]b", "[a]]b]"},
		{DriverOracle, "NOTES", `"NOTES"`},
		{DriverSQLitePure, "notes", `"notes"`},
	}
	for _, tt := range tests {
		qb, err := NewQueryBuilder(string(tt.driver))
		require.NoError(t, err)
		assert.Equal(t, tt.want, qb.QuoteIdentifier(tt.in))
	}
}

func TestMySQLSearchTablesQuery(t *testing.T) {
	qb, err := NewQueryBuilder(string(DriverMySQL))
	require.NoError(t, err)

	query, args, err := qb.SearchTablesQuery("shop", "%bill%")
	require.NoError(t, err)
	assert.Equal(t, "SHOW TABLES WHERE `Tables_in_shop` LIKE ?", query)
	assert.Equal(t, []any{"%bill%"}, args)

	_, _, err = qb.SearchTablesQuery("", "%")
	require.ErrorIs(t, err, ErrDatabaseNameRequired)

	_, _, err = qb.SearchTablesQuery("shop` OR 1=1 --", "%")
	require.ErrorIs(t, err, ErrInvalidDatabaseName)
}

func TestSearchTablesQueryBindsPattern(t *testing.T) {
	for _, driver := range []DriverType{DriverPostgresSQL, DriverSQLServer, DriverOracle, DriverSQLite} {
		qb, err := NewQueryBuilder(string(driver))
		require.NoError(t, err)

		query, args, err := qb.SearchTablesQuery("", "x' OR '1'='1")
		require.NoError(t, err, driver)
		assert.NotContains(t, query, "OR '1'='1", driver)
		assert.Equal(t, []any{"x' OR '1'='1"}, args)
	}
}

func TestDescribeTableQuery(t *testing.T) {
	mysql, err := NewQueryBuilder(string(DriverMySQL))
	require.NoError(t, err)

	query, args, err := mysql.DescribeTableQuery("notes")
	require.NoError(t, err)
	assert.Equal(t, "DESCRIBE `notes`", query)
	assert.Empty(t, args)

	_, _, err = mysql.DescribeTableQuery("notes; DROP TABLE notes")
	require.ErrorIs(t, err, ErrInvalidTableName)

	sqlite, err := NewQueryBuilder(string(DriverSQLitePure))
	require.NoError(t, err)
	query, args, err = sqlite.DescribeTableQuery("my-table")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM pragma_table_info(?)", query)
	assert.Equal(t, []any{"my-table"}, args)

	pg, err := NewQueryBuilder(string(DriverPostgresSQL))
	require.NoError(t, err)
	query, args, err = pg.DescribeTableQuery("odd name")
	require.NoError(t, err)
	assert.NotContains(t, query, "odd name")
	assert.Equal(t, []any{"odd name"}, args)
}

func TestPlaceholders(t *testing.T) {
	tests := map[DriverType]string{
		DriverMySQL:       "?",
		DriverSQLite:      "?",
		DriverPostgresSQL: "$2",
		DriverSQLServer:   "@p2",
		DriverOracle:      ":2",
	}
	for driver, want := range tests {
		d, err := NewDialect(string(driver))
		require.NoError(t, err)
		assert.Equal(t, want, d.Placeholder(2), driver)
	}
}
