package claims

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Pavani8370/Multi-source/pkg/payerloader"
)

// CSVReader reads a comma-separated claims file whose first row names the columns.
type CSVReader struct {
	file    *os.File
	csv     *csv.Reader
	rowNum  int64
	headers []string
}

// NewCSVReader opens path and reads its header row.
func NewCSVReader(path string) (*CSVReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", payerloader.ErrDataSource, path, err)
	}

	bufReader := bufio.NewReaderSize(file, 64*1024)

	// Skip UTF-8 BOM if present
	bom, err := bufReader.Peek(3)
	if err == nil && len(bom) >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		bufReader.Discard(3)
	}

	reader := csv.NewReader(bufReader)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	r := &CSVReader{file: file, csv: reader}
	if err := r.readHeaders(); err != nil {
		file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

func (r *CSVReader) readHeaders() error {
	row, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: no columns to parse from file", payerloader.ErrDataSource)
	}
	if err != nil {
		return fmt.Errorf("%w: read header row: %w", payerloader.ErrDataSource, err)
	}
	r.rowNum++

	headers := make([]string, len(row))
	for i, h := range row {
		headers[i] = strings.TrimSpace(h)
	}
	r.headers = dedupeHeaders(headers)
	return nil
}

// dedupeHeaders renames repeated column names to name.1, name.2, …
func dedupeHeaders(headers []string) []string {
	taken := make(map[string]bool, len(headers))
	for _, h := range headers {
		taken[h] = true
	}
	counts := make(map[string]int, len(headers))
	out := make([]string, len(headers))
	for i, h := range headers {
		n := counts[h]
		counts[h] = n + 1
		if n == 0 {
			out[i] = h
			continue
		}
		name := fmt.Sprintf("%s.%d", h, n)
		for taken[name] {
			n++
			name = fmt.Sprintf("%s.%d", h, n)
		}
		counts[h] = n + 1
		taken[name] = true
		out[i] = name
	}
	return out
}

// Headers returns the column names in file order.
func (r *CSVReader) Headers() []string {
	return r.headers
}

// Next returns the raw fields of the next data row, padded with empty strings
// to the header width. Returns nil, io.EOF when done.
func (r *CSVReader) Next() ([]string, error) {
	for {
		row, err := r.csv.Read()
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", payerloader.ErrDataSource, err)
		}
		r.rowNum++

		// Skip empty rows
		if len(row) == 0 || (len(row) == 1 && row[0] == "" && len(r.headers) > 1) {
			continue
		}
		if len(row) > len(r.headers) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				payerloader.ErrDataSource, r.rowNum, len(row), len(r.headers))
		}
		for len(row) < len(r.headers) {
			row = append(row, "")
		}
		return row, nil
	}
}

// RowNum returns the current line-oriented row number (1-based, header included).
func (r *CSVReader) RowNum() int64 {
	return r.rowNum
}

func (r *CSVReader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// ReadCSV reads the whole file at path into a Dataset, inferring one type per column.
func ReadCSV(path string) (Dataset, error) {
	reader, err := NewCSVReader(path)
	if err != nil {
		return Dataset{}, err
	}
	defer reader.Close()

	headers := reader.Headers()
	cells := make([][]string, len(headers))
	var n int
	for {
		row, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("read %s: %w", path, err)
		}
		for i := range headers {
			cells[i] = append(cells[i], row[i])
		}
		n++
	}

	ds := Dataset{
		Columns: append([]string(nil), headers...),
		Rows:    make([]Row, n),
	}
	for i := range ds.Rows {
		ds.Rows[i] = make(Row, len(headers))
	}
	for c, name := range headers {
		for i, v := range inferColumn(cells[c]) {
			ds.Rows[i][name] = v
		}
	}
	return ds, nil
}

type cellKind int

const (
	kindNull cellKind = iota
	kindBool
	kindInt
	kindFloat
	kindString
)

// nullMarkers are cell texts read as null.
var nullMarkers = map[string]bool{
	"": true, "NA": true, "N/A": true, "n/a": true, "NaN": true, "nan": true,
	"NULL": true, "null": true, "None": true, "<NA>": true, "#N/A": true,
}

func classify(s string) cellKind {
	s = strings.TrimSpace(s)
	if nullMarkers[s] {
		return kindNull
	}
	if strings.EqualFold(s, "true") || strings.EqualFold(s, "false") {
		return kindBool
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return kindInt
	}
	if parseFloat(s) != nil {
		return kindFloat
	}
	return kindString
}

// columnKind folds the kinds of every cell into one column type.
// Integers with nulls widen to float; mixing bools with numbers falls back to string.
func columnKind(cells []string) cellKind {
	kind := kindNull
	hasNull := false
	for _, s := range cells {
		k := classify(s)
		switch {
		case k == kindNull:
			hasNull = true
		case kind == kindNull:
			kind = k
		case k == kind:
		case (k == kindInt && kind == kindFloat) || (k == kindFloat && kind == kindInt):
			kind = kindFloat
		default:
			return kindString
		}
	}
	if kind == kindInt && hasNull {
		return kindFloat
	}
	return kind
}

func inferColumn(cells []string) []any {
	kind := columnKind(cells)
	out := make([]any, len(cells))
	for i, s := range cells {
		if kind != kindString && classify(s) == kindNull {
			continue
		}
		t := strings.TrimSpace(s)
		switch kind {
		case kindBool:
			out[i] = strings.EqualFold(t, "true")
		case kindInt:
			v, _ := strconv.ParseInt(t, 10, 64)
			out[i] = v
		case kindFloat:
			out[i] = *parseFloat(t)
		case kindString:
			if nullMarkers[t] {
				continue
			}
			out[i] = strings.ToValidUTF8(s, "\uFFFD")
		}
	}
	return out
}

func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
