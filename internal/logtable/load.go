package logtable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

const (
	// DefaultDelimiter is the separator written by the simulator drivers.
	DefaultDelimiter = ", "

	// AutoDelimiter splits on commas and/or whitespace, so that "a,b",
	// "a, b" and "a b" all yield two fields.
	AutoDelimiter = "auto"
)

// maxLineBytes bounds one log line. Wide logs easily pass bufio's 64 KiB
// default.
var maxLineBytes = 16 << 20

// Load reads a delimited log file whose first line is a header of column
// names and whose remaining non-blank lines are numeric rows.
//
// Whitespace around the delimiter is ignored, so with ", " the rows "0,3.7"
// and "0 , 3.7" both yield two fields. A single trailing empty field (a
// dangling delimiter) is ignored on every line. An empty delimiter means
// DefaultDelimiter.
func Load(path, delimiter string) (*LogTable, error) {
	f, err := openLog(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := parseTable(f, path, delimiter)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded log", "path", path, "columns", len(t.columns), "rows", t.Len())
	return t, nil
}

// LoadFile dispatches on the file extension: .xlsx workbooks are read with
// LoadXLSX from their first sheet, everything else with Load.
func LoadFile(path, delimiter string) (*LogTable, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return LoadXLSX(path, "")
	}
	return Load(path, delimiter)
}

// LoadMatrix reads a header-less numeric matrix, such as the rotation-matrix
// and angular-velocity logs. Every non-blank line must have the same number
// of fields.
func LoadMatrix(path, delimiter string) ([][]float64, error) {
	f, err := openLog(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out [][]float64
	width := -1
	lineNo := 0
	scan := newLineScanner(f)
	for scan.Scan() {
		lineNo++
		line := strings.TrimRight(scan.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitFields(line, delimiter)
		if width < 0 {
			width = len(fields)
		}
		if len(fields) != width {
			return nil, &MalformedRowError{
				Path:   path,
				Line:   lineNo,
				Reason: fmt.Sprintf("expected %d fields, got %d", width, len(fields)),
			}
		}
		row, err := parseFields(path, lineNo, fields)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := scanErr(scan, path, lineNo); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, &MalformedRowError{Path: path, Line: 1, Reason: "no data"}
	}
	return out, nil
}

func openLog(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &MissingFileError{Path: path, Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return f, nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, min(64*1024, maxLineBytes)), maxLineBytes)
	return scan
}

// scanErr reports a line over maxLineBytes as a malformed row; lineNo is the
// last line read in full.
func scanErr(scan *bufio.Scanner, path string, lineNo int) error {
	err := scan.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		return &MalformedRowError{
			Path:   path,
			Line:   lineNo + 1,
			Reason: fmt.Sprintf("line longer than %d bytes", maxLineBytes),
		}
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

func parseTable(r io.Reader, path, delimiter string) (*LogTable, error) {
	var (
		header []string
		rows   [][]float64
		lineNo int
	)
	scan := newLineScanner(r)
	for scan.Scan() {
		lineNo++
		line := strings.TrimRight(scan.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitFields(line, delimiter)

		if header == nil {
			header = fields
			continue
		}
		if len(fields) != len(header) {
			return nil, &MalformedRowError{
				Path:   path,
				Line:   lineNo,
				Reason: fmt.Sprintf("expected %d fields, got %d", len(header), len(fields)),
			}
		}
		row, err := parseFields(path, lineNo, fields)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := scanErr(scan, path, lineNo); err != nil {
		return nil, err
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

func parseFields(path string, lineNo int, fields []string) ([]float64, error) {
	row := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, &MalformedRowError{
				Path:   path,
				Line:   lineNo,
				Column: i + 1,
				Field:  field,
				Reason: "not a number",
			}
		}
		row[i] = v
	}
	return row, nil
}

// splitFields splits one line and trims every field. Whitespace around the
// delimiter is insignificant: ", " splits "0,3.7" and "0 , 3.7" alike, and a
// whitespace-only delimiter splits on runs of whitespace. A trailing empty
// field left by a dangling delimiter is dropped.
func splitFields(line, delimiter string) []string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	var fields []string
	core := strings.TrimSpace(delimiter)
	switch {
	case delimiter == AutoDelimiter:
		fields = strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
	case core == "":
		fields = strings.Fields(line)
	default:
		fields = strings.Split(line, core)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if n := len(fields); n > 1 && fields[n-1] == "" {
		fields = fields[:n-1]
	}
	return fields
}
