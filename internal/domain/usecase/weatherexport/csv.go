package weatherexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"weather-etl/internal/domain/entity"
	"weather-etl/internal/domain/model"
	"weather-etl/pkg/log"

	"go.uber.org/zap"
)

// HeaderMode selects how the CSV header is derived from a batch.
type HeaderMode string

const (
	// HeaderFirstRow uses the columns of the first row. Later rows missing a column get an
	// empty cell; columns the first row lacks are dropped.
	HeaderFirstRow HeaderMode = "first-row"
	// HeaderUnion uses every column seen across the batch, in order of first appearance.
	HeaderUnion HeaderMode = "union"
)

// ParseHeaderMode maps a configured value to a HeaderMode, defaulting to HeaderFirstRow.
func ParseHeaderMode(value string) HeaderMode {
	if HeaderMode(value) == HeaderUnion {
		return HeaderUnion
	}
	return HeaderFirstRow
}

// Header derives the header for rows under mode.
func Header(rows []entity.RelationalRow, mode HeaderMode) []string {
	if len(rows) == 0 {
		return nil
	}
	if mode != HeaderUnion {
		return rows[0].Columns()
	}

	seen := make(map[string]struct{})
	var header []string
	for _, row := range rows {
		for _, column := range row.Columns() {
			if _, ok := seen[column]; ok {
				continue
			}
			seen[column] = struct{}{}
			header = append(header, column)
		}
	}
	return header
}

// MarshalCSV serializes rows with a header line, one line per row in input order.
func MarshalCSV(rows []entity.RelationalRow, mode HeaderMode) ([]byte, []string, error) {
	if len(rows) == 0 {
		return nil, nil, model.ErrNoData
	}

	header := Header(rows, mode)
	inHeader := make(map[string]struct{}, len(header))
	for _, column := range header {
		inHeader[column] = struct{}{}
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(header); err != nil {
		return nil, nil, fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(header))
	for i, row := range rows {
		for j, column := range header {
			value, _ := row.Get(column)
			record[j] = formatValue(value)
		}
		if err := writer.Write(record); err != nil {
			return nil, nil, fmt.Errorf("write csv row %d: %w", i, err)
		}

		if mode == HeaderFirstRow {
			for _, column := range row.Columns() {
				if _, ok := inHeader[column]; !ok {
					log.Warn("Column not in CSV header, dropped", zap.Int("row", i), zap.String("column", column))
				}
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), header, nil
}

// formatValue renders one cell. Doubles always carry a decimal point so a whole-number
// double stays distinguishable from a long in the same column.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return formatDouble(v)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

func formatDouble(v float64) string {
	formatted := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) || strings.Contains(formatted, ".") {
		return formatted
	}
	return formatted + ".0"
}

// BuildObjectKey returns {prefix}/{YYYY-MM-DD}/export-{HH-MM-SS}.csv for at.
func BuildObjectKey(prefix string, at time.Time) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return fmt.Sprintf("%s/%s/export-%s.csv", prefix, at.Format("2006-01-02"), at.Format("15-04-05"))
}
