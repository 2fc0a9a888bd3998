// Package table loads the upstream location sheet into an ordered grid of
// cells, treating blank and NA-marker cells as missing the way the data
// producer's tooling does.
package table

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Cell is a single value of the sheet. A missing cell carries no text.
type Cell struct {
	Text    string
	Missing bool
}

// Missing is the zero-text, missing cell.
var Missing = Cell{Missing: true}

// Text returns a present cell holding s.
func Text(s string) Cell {
	return Cell{Text: s}
}

// String renders the cell for diagnostics; missing cells print as NaN.
func (c Cell) String() string {
	if c.Missing {
		return "NaN"
	}
	return c.Text
}

// naValues are the cell texts read as missing.
var naValues = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// ParseCell converts raw sheet text into a Cell.
func ParseCell(raw string) Cell {
	if _, ok := naValues[raw]; ok {
		return Missing
	}
	return Text(raw)
}

// Table is a loaded sheet: column names in order and the data rows below the header.
type Table struct {
	Columns []string
	Rows    [][]Cell

	index map[string]int
}

// New builds a table from a raw header and raw data rows. Header gaps are
// named "Unnamed: <i>" and repeated names get a ".<n>" suffix. Short rows are
// padded with missing cells and long rows are truncated to the header width.
func New(header []string, rows [][]string) *Table {
	t := &Table{
		Columns: normalizeHeader(header),
		Rows:    make([][]Cell, 0, len(rows)),
	}
	t.index = make(map[string]int, len(t.Columns))
	for i, name := range t.Columns {
		t.index[name] = i
	}

	for _, raw := range rows {
		row := make([]Cell, len(t.Columns))
		for i := range row {
			if i < len(raw) {
				row[i] = ParseCell(raw[i])
			} else {
				row[i] = Missing
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func normalizeHeader(header []string) []string {
	columns := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		// A suffixed name can itself be taken ("A,A,A.1"), so keep counting.
		base := name
		for n := seen[base]; n > 0; n = seen[name] {
			name = fmt.Sprintf("%s.%d", base, n)
			seen[base] = n + 1
			base = name
		}
		seen[name]++
		columns[i] = name
	}
	return columns
}

// Shape returns the number of data rows and columns.
func (t *Table) Shape() (rows, cols int) {
	return len(t.Rows), len(t.Columns)
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Record returns the i-th data row as a column-addressable record.
func (t *Table) Record(i int) Record {
	return Record{table: t, cells: t.Rows[i]}
}

// Record is one data row addressed by column name.
type Record struct {
	table *Table
	cells []Cell
}

// Get returns the cell under column name, or a missing cell when the column
// does not exist.
func (r Record) Get(name string) Cell {
	i, ok := r.table.index[name]
	if !ok {
		return Missing
	}
	return r.cells[i]
}

// Load reads a sheet from path, picking the reader by file extension.
// sheet selects the workbook sheet for .xlsx files; empty means the first one.
func Load(path, sheet string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, sheet)
	default:
		return LoadCSV(path)
	}
}
