package claims

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/Pavani8370/Multi-source/pkg/payerloader"
)

const parquetReadBatch = 1024

// ReadParquet reads a flat Parquet file into a Dataset. Leaf columns of nested
// groups are named by their dotted path.
func ReadParquet(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("%w: open %s: %w", payerloader.ErrDataSource, path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return Dataset{}, fmt.Errorf("%w: stat %s: %w", payerloader.ErrDataSource, path, err)
	}

	pf, err := parquet.OpenFile(f, fi.Size())
	if err != nil {
		return Dataset{}, fmt.Errorf("%w: open parquet %s: %w", payerloader.ErrDataSource, path, err)
	}

	var columns []string
	for _, p := range pf.Schema().Columns() {
		columns = append(columns, strings.Join(p, "."))
	}

	reader := parquet.NewReader(pf)
	defer reader.Close()

	ds := Dataset{Columns: columns, Rows: make([]Row, 0, reader.NumRows())}
	buf := make([]parquet.Row, parquetReadBatch)
	for {
		n, err := reader.ReadRows(buf)
		for _, prow := range buf[:n] {
			row := make(Row, len(columns))
			for _, c := range columns {
				row[c] = nil
			}
			for _, v := range prow {
				if col := v.Column(); col >= 0 && col < len(columns) {
					row[columns[col]] = parquetValue(v)
				}
			}
			ds.Rows = append(ds.Rows, row)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("%w: read parquet %s: %w", payerloader.ErrDataSource, path, err)
		}
	}
	return ds, nil
}

// parquetValue maps a physical Parquet value onto the cell value set.
func parquetValue(v parquet.Value) any {
	if v.IsNull() {
		return nil
	}
	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean()
	case parquet.Int32:
		return int64(v.Int32())
	case parquet.Int64:
		return v.Int64()
	case parquet.Float:
		return float64(v.Float())
	case parquet.Double:
		return v.Double()
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return strings.ToValidUTF8(string(v.ByteArray()), "\uFFFD")
	default:
		return v.String()
	}
}
