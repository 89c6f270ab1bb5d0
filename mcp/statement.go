package mcp

import (
	"regexp"
	"strings"
)

var (
	reLineComments   = regexp.MustCompile(`--[^\n]*`)
	reBlockComments  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	reMultipleSpaces = regexp.MustCompile(`\s+`)
	reSingleQuotes   = regexp.MustCompile(`'[^']*'`)
	reDoubleQuotes   = regexp.MustCompile(`"[^"]*"`)
	reBackticks      = regexp.MustCompile("`[^`]*`")
	reSquareBrackets = regexp.MustCompile(`\[[^\]]*\]`)
	reOutput         = regexp.MustCompile(`\bOUTPUT (INSERTED|DELETED)\.`)
	reReturning      = regexp.MustCompile(`\b(VALUES|SET|WHERE|FROM|SELECT)\b.* RETURNING (\S+)`)
)

// Statements whose leading keyword means a result set comes back.
var rowKeywords = map[string]struct{}{
	"SELECT":   {},
	"SHOW":     {},
	"DESCRIBE": {},
	"DESC":     {},
	"EXPLAIN":  {},
	"WITH":     {},
	"PRAGMA":   {},
	"VALUES":   {},
	"TABLE":    {},
	"CALL":     {},
}

// Normalizes SQL by removing comments and extra spaces.
func normalizeSQL(sql string) string {
	sql = reLineComments.ReplaceAllString(sql, " ")
	sql = reBlockComments.ReplaceAllString(sql, " ")
	sql = reMultipleSpaces.ReplaceAllString(sql, " ")
	return strings.TrimSpace(strings.ToUpper(sql))
}

// Remove literal strings and quoted identifiers so keywords inside them
// are not matched.
func removeStringLiterals(sql string) string {
	sql = reSingleQuotes.ReplaceAllString(sql, "''")
	sql = reDoubleQuotes.ReplaceAllString(sql, `""`)
	sql = reBackticks.ReplaceAllString(sql, "``")
	sql = reSquareBrackets.ReplaceAllString(sql, "[]")
	return sql
}

// returnsRows reports whether a statement produces a result set, which
// decides between QueryContext and ExecContext. It never rejects anything.
func returnsRows(query string) bool {
	sql := removeStringLiterals(normalizeSQL(query))
	sql = strings.TrimLeft(sql, "( ")
	if sql == "" {
		return false
	}

	keyword := sql
	if i := strings.IndexAny(sql, " (;"); i >= 0 {
		keyword = sql[:i]
	}
	if _, ok := rowKeywords[keyword]; ok {
		return true
	}

	return reOutput.MatchString(sql) || hasReturningClause(sql)
}

// Words that make a following RETURNING an identifier inside an expression
// rather than the start of a result list.
var returningOperands = map[string]struct{}{
	"IS": {}, "IN": {}, "LIKE": {}, "BETWEEN": {}, "NOT": {}, "AND": {}, "OR": {},
	"FROM": {}, "WHERE": {}, "SET": {}, "VALUES": {},
}

// hasReturningClause reports whether a normalized DML statement ends with a
// RETURNING list. Columns that happen to be named returning do not count.
func hasReturningClause(sql string) bool {
	m := reReturning.FindStringSubmatch(sql)
	if m == nil {
		return false
	}

	next := strings.TrimRight(m[2], ";")
	if next == "" || strings.ContainsAny(next[:1], "=<>!,)+-/|") {
		return false
	}
	_, operand := returningOperands[next]
	return !operand
}
