// Package claims holds the claims Dataset, the readers that resolve an input
// source into one, and the payer pricing transform.
package claims

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Pavani8370/Multi-source/pkg/payerloader"
)

// Column names the pipeline reads or writes.
const (
	ColMemberID           = "member_id"
	ColClaimID            = "claim_id"
	ColClaimAmount        = "claim_amount"
	ColServiceDate        = "service_date"
	ColPayerName          = "payer_name"
	ColIngestionTimestamp = "ingestion_timestamp"
)

// Row maps a column name to a cell value. Cell values are nil (null), bool,
// int64, float64, string or time.Time.
type Row map[string]any

// Dataset is an ordered sequence of rows sharing one column set.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of rows.
func (d Dataset) Len() int {
	return len(d.Rows)
}

// HasColumn reports whether name is one of the dataset's columns.
func (d Dataset) HasColumn(name string) bool {
	return slices.Contains(d.Columns, name)
}

// Clone returns a copy whose column slice and rows can be modified without
// touching d. Cell values are immutable so a shallow copy per row suffices.
func (d Dataset) Clone() Dataset {
	out := Dataset{
		Columns: append([]string(nil), d.Columns...),
		Rows:    make([]Row, len(d.Rows)),
	}
	for i, r := range d.Rows {
		nr := make(Row, len(r)+1)
		for k, v := range r {
			nr[k] = v
		}
		out.Rows[i] = nr
	}
	return out
}

// NewDataset builds a Dataset from row mappings. Columns are the union of all
// row keys in order of first appearance; rows missing a key get nil there.
// An empty row list is a data source error.
func NewDataset(rows []Row) (Dataset, error) {
	if len(rows) == 0 {
		return Dataset{}, fmt.Errorf("%w: manual input list is empty", payerloader.ErrDataSource)
	}

	// Map iteration is unordered, so keys first seen in the same row are
	// appended sorted to keep the column order deterministic.
	seen := make(map[string]bool)
	var columns []string
	for _, r := range rows {
		columns = append(columns, newKeys(r, seen)...)
	}

	ds := Dataset{Columns: columns, Rows: make([]Row, len(rows))}
	for i, r := range rows {
		nr := make(Row, len(columns))
		for _, c := range columns {
			v, err := normalizeValue(r[c])
			if err != nil {
				return Dataset{}, fmt.Errorf("row %d column %s: %w", i, c, err)
			}
			nr[c] = v
		}
		ds.Rows[i] = nr
	}
	return ds, nil
}

func newKeys(r Row, seen map[string]bool) []string {
	var keys []string
	for k := range r {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sortColumns(keys)
	return keys
}

// sortColumns orders the well-known claim columns first, then the rest by name.
func sortColumns(keys []string) {
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(columnRank(a), columnRank(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}

func columnRank(name string) int {
	if i := slices.Index(knownColumns, name); i >= 0 {
		return i
	}
	return len(knownColumns)
}

var knownColumns = []string{
	ColMemberID, ColClaimID, ColClaimAmount, ColServiceDate, ColPayerName, ColIngestionTimestamp,
}

// normalizeValue narrows Go values handed in by callers to the cell value set.
func normalizeValue(v any) (any, error) {
	switch x := v.(type) {
	case nil, bool, int64, float64, string, time.Time:
		return x, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case float32:
		return float64(x), nil
	default:
		return nil, fmt.Errorf("%w: unsupported cell value %T", payerloader.ErrTypeMismatch, v)
	}
}
