package sqlc

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"weather-etl/internal/domain/gateway/db"
	"weather-etl/internal/domain/model"
)

// Executor runs statements on a database/sql pool. Named :param references are rewritten
// to positional $n placeholders in order of first appearance.
type Executor struct {
	db *sql.DB
}

var _ db.StatementExecutor = (*Executor)(nil)

func NewExecutor(sqlDB *sql.DB) *Executor {
	return &Executor{db: sqlDB}
}

func (e *Executor) ExecuteStatement(ctx context.Context, statement model.Statement) (*model.StatementResult, error) {
	if e.db == nil {
		return nil, fmt.Errorf("database connection: %w", model.ErrConfigurationMissing)
	}

	query, args, err := bindNamed(statement.SQL, statement.Parameters)
	if err != nil {
		return nil, err
	}

	if !statement.IncludeResultMetadata {
		res, err := e.db.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("execute statement: %w", err)
		}
		updated, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("rows affected: %w", err)
		}
		return &model.StatementResult{NumberOfRecordsUpdated: updated}, nil
	}

	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query statement: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanRows(rows)
}

func scanRows(rows *sql.Rows) (*model.StatementResult, error) {
	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("column types: %w", err)
	}

	result := &model.StatementResult{ColumnMetadata: make([]model.ColumnMetadata, len(columnTypes))}
	for i, column := range columnTypes {
		result.ColumnMetadata[i] = model.ColumnMetadata{Label: column.Name(), TypeName: column.DatabaseTypeName()}
	}

	for rows.Next() {
		values := make([]any, len(columnTypes))
		pointers := make([]any, len(columnTypes))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		record := make([]model.Field, len(values))
		for i, value := range values {
			record[i] = toField(value)
		}
		result.Records = append(result.Records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return result, nil
}

func toField(value any) model.Field {
	switch v := value.(type) {
	case nil:
		return model.NullField()
	case int64:
		return model.LongField(v)
	case int32:
		return model.LongField(int64(v))
	case int:
		return model.LongField(int64(v))
	case float64:
		return model.DoubleField(v)
	case float32:
		return model.DoubleField(float64(v))
	case bool:
		return model.BooleanField(v)
	case string:
		return model.StringField(v)
	case []byte:
		return model.StringField(string(v))
	case time.Time:
		return model.StringField(db.FormatTimestamp(v))
	default:
		return model.StringField(fmt.Sprint(v))
	}
}

func toArg(field model.Field) any {
	value, _ := field.Value()
	return value
}

// bindNamed rewrites :name references outside quoted literals. "::" casts are kept.
func bindNamed(query string, parameters []model.SqlParameter) (string, []any, error) {
	byName := make(map[string]model.Field, len(parameters))
	for _, p := range parameters {
		byName[p.Name] = p.Value
	}

	var (
		out       strings.Builder
		args      []any
		positions = make(map[string]int)
	)

	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'' || c == '"':
			end := strings.IndexByte(query[i+1:], c)
			if end < 0 {
				out.WriteString(query[i:])
				i = len(query)
				continue
			}
			out.WriteString(query[i : i+end+2])
			i += end + 1
		case c == ':' && i+1 < len(query) && query[i+1] == ':':
			out.WriteString("::")
			i++
		case c == ':' && i+1 < len(query) && isIdentStart(query[i+1]):
			j := i + 1
			for j < len(query) && isIdentPart(query[j]) {
				j++
			}
			name := query[i+1 : j]
			position, seen := positions[name]
			if !seen {
				field, ok := byName[name]
				if !ok {
					return "", nil, fmt.Errorf("parameter :%s is not bound: %w", name, model.ErrMalformedPayload)
				}
				args = append(args, toArg(field))
				position = len(args)
				positions[name] = position
			}
			fmt.Fprintf(&out, "$%d", position)
			i = j - 1
		default:
			out.WriteByte(c)
		}
	}
	return out.String(), args, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
