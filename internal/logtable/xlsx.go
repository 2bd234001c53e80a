package logtable

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads a log that was exported to a spreadsheet. The first
// non-empty row of the sheet is the header; the rest are numeric rows.
// An empty sheet name selects the first sheet of the workbook.
//
// Line numbers in MalformedRowError are spreadsheet row numbers.
func LoadXLSX(path, sheet string) (*LogTable, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, &MissingFileError{Path: path, Err: err}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}

	var (
		header []string
		rows   [][]float64
	)
	for i, cellRow := range cells {
		rowNo := i + 1
		if isBlankRow(cellRow) {
			continue
		}
		if header == nil {
			header = cellRow
			continue
		}
		// excelize trims trailing empty cells, so a short row is a missing field.
		if len(cellRow) != len(header) {
			return nil, &MalformedRowError{
				Path:   path,
				Line:   rowNo,
				Reason: fmt.Sprintf("expected %d fields, got %d", len(header), len(cellRow)),
			}
		}
		row := make([]float64, len(cellRow))
		for j, cell := range cellRow {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, &MalformedRowError{Path: path, Line: rowNo, Column: j + 1, Field: cell, Reason: "not a number"}
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if header == nil {
		return nil, &MalformedRowError{Path: path, Line: 1, Reason: "missing header"}
	}

	t, err := New(header, rows)
	if err != nil {
		return nil, &MalformedRowError{Path: path, Line: 1, Reason: err.Error()}
	}
	return t, nil
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
