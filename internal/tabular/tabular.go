package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrEmptyTable = errors.New("tabular: table has no rows")

// Table is a fully loaded tabular source with a header-indexed view over
// its rows. Cells are kept as raw strings; coercion is the caller's call.
type Table struct {
	columns []string
	header  map[string]int
	rows    [][]string
}

// Read loads a table from a CSV or XLSX file, chosen by extension.
func Read(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	default:
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return ReadCSV(file)
	}
}

// ReadCSV loads a table from CSV content. The first record is the header.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	columns, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}

	return newTable(columns, rows), nil
}

func readXLSX(path string) (*Table, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	for _, sheet := range file.GetSheetList() {
		rows, err := file.GetRows(sheet)
		if err != nil || len(rows) < 2 {
			continue
		}
		return newTable(rows[0], rows[1:]), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrEmptyTable, path)
}

func newTable(columns []string, rows [][]string) *Table {
	header := make(map[string]int, len(columns))
	for i, column := range columns {
		key := normalizeColumn(column)
		if key == "" {
			continue
		}
		if _, exists := header[key]; exists {
			continue
		}
		header[key] = i
	}
	trimmed := make([]string, len(columns))
	for i, column := range columns {
		trimmed[i] = strings.TrimSpace(column)
	}
	return &Table{columns: trimmed, header: header, rows: rows}
}

func normalizeColumn(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Columns returns the trimmed header cells in file order.
func (t *Table) Columns() []string {
	copied := make([]string, len(t.columns))
	copy(copied, t.columns)
	return copied
}

// Rows returns the data rows. The slice is shared, not copied.
func (t *Table) Rows() [][]string {
	return t.rows
}

func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether a column exists, matching case-insensitively.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.header[normalizeColumn(name)]
	return ok
}

// Cell returns the trimmed value of the named column in the given row, or
// "" when the column is unknown or the row is short.
func (t *Table) Cell(row []string, column string) string {
	index, ok := t.header[normalizeColumn(column)]
	if !ok || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// ParseFloat coerces a cell to a number. Empty cells and the usual NA
// markers report not-ok rather than an error.
func ParseFloat(value string) (float64, bool) {
	trimmed := strings.TrimSpace(value)
	switch trimmed {
	case "", "NA", "NaN", "null", "..":
		return 0, false
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// ParseYear coerces a four-digit year cell.
func ParseYear(value string) (int, bool) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) != 4 || !IsDigits(trimmed) {
		return 0, false
	}
	year, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return year, true
}

// ParseYearMonth coerces "YYYY-MM" or "YYYYMM" cells.
func ParseYearMonth(value string) (int, int, bool) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 6 && IsDigits(trimmed) {
		year, _ := strconv.Atoi(trimmed[:4])
		month, _ := strconv.Atoi(trimmed[4:])
		if month >= 1 && month <= 12 {
			return year, month, true
		}
	}

	parts := strings.Split(trimmed, "-")
	if len(parts) == 2 && len(parts[0]) == 4 {
		year, errYear := strconv.Atoi(parts[0])
		month, errMonth := strconv.Atoi(parts[1])
		if errYear == nil && errMonth == nil && month >= 1 && month <= 12 {
			return year, month, true
		}
	}
	return 0, 0, false
}

func IsDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
