package claims

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Pavani8370/Multi-source/pkg/payerloader"
)

// ReadJSON reads a file holding a JSON array of objects. Rows are built the
// same way as InlineRows; nested arrays and objects are rejected.
func ReadJSON(path string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("%w: open %s: %w", payerloader.ErrDataSource, path, err)
	}
	defer file.Close()

	reader := bufio.NewReaderSize(file, 64*1024)

	// Skip UTF-8 BOM if present (0xEF 0xBB 0xBF)
	bom, err := reader.Peek(3)
	if err == nil && len(bom) >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		reader.Discard(3)
	}

	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	var raw []map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return Dataset{}, fmt.Errorf("%w: decode %s: %w", payerloader.ErrDataSource, path, err)
	}

	rows := make([]Row, len(raw))
	for i, obj := range raw {
		row := make(Row, len(obj))
		for k, v := range obj {
			cell, err := jsonValue(v)
			if err != nil {
				return Dataset{}, fmt.Errorf("%s: item %d field %s: %w", path, i, k, err)
			}
			row[k] = cell
		}
		rows[i] = row
	}

	ds, err := NewDataset(rows)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

func jsonValue(v any) (any, error) {
	switch x := v.(type) {
	case nil, bool, string:
		return x, nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %s", payerloader.ErrTypeMismatch, x)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: nested %T values are not supported", payerloader.ErrTypeMismatch, v)
	}
}
