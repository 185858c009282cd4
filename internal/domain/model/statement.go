package model

// TypeHint tells the statement service how to interpret a string parameter.
// The zero value sends no hint.
type TypeHint string

const TypeHintTimestamp TypeHint = "TIMESTAMP"

// Field is one typed scalar cell of the statement wire format. Exactly one variant is
// expected to be populated.
type Field struct {
	StringValue  *string
	LongValue    *int64
	DoubleValue  *float64
	BooleanValue *bool
	IsNull       *bool
}

func StringField(v string) Field {
	return Field{StringValue: &v}
}

func LongField(v int64) Field {
	return Field{LongValue: &v}
}

func DoubleField(v float64) Field {
	return Field{DoubleValue: &v}
}

func BooleanField(v bool) Field {
	return Field{BooleanValue: &v}
}

func NullField() Field {
	isNull := true
	return Field{IsNull: &isNull}
}

// Value returns the populated scalar, checked in the order string, long, double, boolean,
// null. An explicit null returns (nil, true). ok is false when no variant is populated.
func (f Field) Value() (value any, ok bool) {
	switch {
	case f.StringValue != nil:
		return *f.StringValue, true
	case f.LongValue != nil:
		return *f.LongValue, true
	case f.DoubleValue != nil:
		return *f.DoubleValue, true
	case f.BooleanValue != nil:
		return *f.BooleanValue, true
	case f.IsNull != nil && *f.IsNull:
		return nil, true
	default:
		return nil, false
	}
}

// SqlParameter is a named, type-tagged statement parameter referenced as :name in SQL.
type SqlParameter struct {
	Name     string
	Value    Field
	TypeHint TypeHint
}

// ColumnMetadata describes one result column.
type ColumnMetadata struct {
	Label    string
	TypeName string
}

// Statement is a parameterized SQL statement for a StatementExecutor.
// IncludeResultMetadata requests records and column metadata back.
type Statement struct {
	SQL                   string
	Parameters            []SqlParameter
	IncludeResultMetadata bool
}

// StatementResult is the decoded response of an executed statement.
type StatementResult struct {
	Records                [][]Field
	ColumnMetadata         []ColumnMetadata
	NumberOfRecordsUpdated int64
}
