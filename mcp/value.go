package mcp

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind enumerates the scalar types a result cell can hold.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindDate:
		return "date"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// DateLayout renders dates as UTC ISO-8601 with millisecond precision.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// Value is one result cell. Numbers keep their decimal text so that
// BIGINT and DECIMAL columns are not rounded through float64.
type Value struct {
	kind Kind
	str  string
	num  json.Number
	b    bool
	t    time.Time
}

func NullValue() Value { return Value{kind: KindNull} }

func StringValue(s string) Value { return Value{kind: KindString, str: s} }

func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

func DateValue(t time.Time) Value { return Value{kind: KindDate, t: t} }

func NumberValue(n json.Number) Value { return Value{kind: KindNumber, num: n} }

func IntValue(n int64) Value {
	return NumberValue(json.Number(strconv.FormatInt(n, 10)))
}

func UintValue(n uint64) Value {
	return NumberValue(json.Number(strconv.FormatUint(n, 10)))
}

// FloatValue falls back to a string for NaN and infinities, which JSON
// cannot represent.
func FloatValue(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return StringValue(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return NumberValue(json.Number(strconv.FormatFloat(f, 'f', -1, 64)))
}

func (v Value) Kind() Kind { return v.kind }

// Interface returns the Go form of the value: nil, string, json.Number,
// bool or time.Time.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindDate:
		return v.t
	default:
		return nil
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return marshalJSON(v.str, "")
	case KindNumber:
		return []byte(v.num), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindDate:
		return marshalJSON(v.t.UTC().Format(DateLayout), "")
	default:
		return []byte("null"), nil
	}
}

// Row is one result row with columns in select order.
type Row struct {
	*orderedmap.OrderedMap[string, Value]
}

func newRow() *Row {
	return &Row{OrderedMap: orderedmap.New[string, Value]()}
}

// MarshalJSON writes the columns in select order without HTML escaping.
func (r *Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		key, err := marshalJSON(pair.Key, "")
		if err != nil {
			return nil, err
		}
		val, err := pair.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalJSON encodes v leaving <, > and & as is. A non-empty indent
// pretty-prints the output.
func marshalJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

var reJSONNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

var numericTypes = map[string]struct{}{
	"INT": {}, "INTEGER": {}, "TINYINT": {}, "SMALLINT": {}, "MEDIUMINT": {}, "BIGINT": {},
	"INT2": {}, "INT4": {}, "INT8": {}, "SERIAL": {}, "BIGSERIAL": {},
	"DECIMAL": {}, "NUMERIC": {}, "NUMBER": {}, "FLOAT": {}, "DOUBLE": {}, "REAL": {},
	"FLOAT4": {}, "FLOAT8": {}, "YEAR": {},
}

var boolTypes = map[string]struct{}{
	"BOOL": {}, "BOOLEAN": {},
}

func databaseTypeName(ct *sql.ColumnType) string {
	if ct == nil {
		return ""
	}
	name := strings.ToUpper(strings.TrimSpace(ct.DatabaseTypeName()))
	return strings.TrimPrefix(name, "UNSIGNED ")
}

// formatValue converts a scanned database value to a typed Value. Drivers
// using a text protocol hand back []byte for every column, so the column
// type decides whether the text is a number or a boolean.
func formatValue(val any, ct *sql.ColumnType) Value {
	switch v := val.(type) {
	case nil:
		return NullValue()
	case bool:
		return BoolValue(v)
	case int64:
		return IntValue(v)
	case int32:
		return IntValue(int64(v))
	case int:
		return IntValue(int64(v))
	case int16:
		return IntValue(int64(v))
	case int8:
		return IntValue(int64(v))
	case uint64:
		return UintValue(v)
	case uint32:
		return UintValue(uint64(v))
	case uint:
		return UintValue(uint64(v))
	case float64:
		return FloatValue(v)
	case float32:
		return FloatValue(float64(v))
	case time.Time:
		return DateValue(v)
	case []byte:
		return formatText(string(v), utf8.Valid(v), len(v), ct)
	case string:
		return formatText(v, true, len(v), ct)
	case fmt.Stringer:
		return StringValue(v.String())
	default:
		return StringValue(fmt.Sprint(v))
	}
}

func formatText(s string, valid bool, size int, ct *sql.ColumnType) Value {
	typeName := databaseTypeName(ct)
	if _, ok := numericTypes[typeName]; ok {
		if reJSONNumber.MatchString(s) {
			return NumberValue(json.Number(s))
		}
	}
	if _, ok := boolTypes[typeName]; ok {
		if b, err := strconv.ParseBool(s); err == nil {
			return BoolValue(b)
		}
	}
	if !valid {
		return StringValue(fmt.Sprintf("<binary data: %d bytes>", size))
	}
	return StringValue(s)
}

// scanRows reads every remaining row into typed rows.
func scanRows(rows *sql.Rows) ([]*Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRetrievingColumn, err)
	}
	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRetrievingColumn, err)
	}

	results := make([]*Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err = rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadingRow, err)
		}

		row := newRow()
		for i, col := range columns {
			var ct *sql.ColumnType
			if i < len(columnTypes) {
				ct = columnTypes[i]
			}
			row.Set(col, formatValue(values[i], ct))
		}
		results = append(results, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadingResults, err)
	}
	return results, nil
}
