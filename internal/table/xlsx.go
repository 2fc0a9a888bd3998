package table

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads one sheet of the workbook at path. An empty sheet name
// selects the first sheet.
func LoadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("table: failed to open workbook: %w", err)
	}
	defer f.Close()

	return readWorkbook(f, sheet)
}

// ReadXLSX reads one sheet of a workbook from r.
func ReadXLSX(r io.Reader, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("table: failed to open workbook: %w", err)
	}
	defer f.Close()

	return readWorkbook(f, sheet)
}

func readWorkbook(f *excelize.File, sheet string) (*Table, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("table: workbook has no sheets")
		}
		sheet = sheets[0]
	}

	// Raw values keep full precision; formatted text would round coordinates.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("table: failed to read sheet %q: %w", sheet, err)
	}

	// Blank rows are skipped like blank CSV lines.
	var nonEmpty [][]string
	for _, row := range rows {
		if len(row) > 0 {
			nonEmpty = append(nonEmpty, row)
		}
	}
	if len(nonEmpty) == 0 {
		return nil, fmt.Errorf("table: sheet %q has no columns to parse", sheet)
	}

	return New(nonEmpty[0], nonEmpty[1:]), nil
}
