package destination

import (
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Pavani8370/Multi-source/internal/claims"
	"github.com/Pavani8370/Multi-source/pkg/payerloader"
)

// Plan describes one load: which rows go where, in COPY form.
type Plan struct {
	RunID       uuid.UUID
	Destination Destination
	Columns     []string

	dataset claims.Dataset
}

// NewPlan builds the load plan for ds under payer. No database is contacted.
func NewPlan(ds claims.Dataset, payer string) *Plan {
	return &Plan{
		RunID:       uuid.New(),
		Destination: Select(payer),
		Columns:     append([]string(nil), ds.Columns...),
		dataset:     ds,
	}
}

// Statement returns the COPY statement for the plan.
func (p *Plan) Statement() string {
	return p.Destination.CopyStatement(p.Columns)
}

// Source returns a fresh COPY source over the plan's rows, suitable for
// pgx.Conn.CopyFrom. A row missing one of the plan's columns fails with
// ErrMissingColumn when it is reached.
func (p *Plan) Source() pgx.CopyFromSource {
	rows := p.dataset.Rows
	return pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		values := make([]any, len(p.Columns))
		for j, c := range p.Columns {
			v, ok := rows[i][c]
			if !ok {
				return nil, fmt.Errorf("%w: %s absent from row %d", payerloader.ErrMissingColumn, c, i)
			}
			values[j] = copyValue(v)
		}
		return values, nil
	})
}

// copyValue encodes a cell for COPY. Amounts become exact numerics and
// timestamps carry their zone.
func copyValue(v any) any {
	switch x := v.(type) {
	case float64:
		return toNumeric(x)
	case time.Time:
		return pgtype.Timestamptz{Time: x, Valid: true}
	default:
		return v
	}
}

func toNumeric(f float64) pgtype.Numeric {
	switch {
	case math.IsNaN(f):
		return pgtype.Numeric{NaN: true, Valid: true}
	case math.IsInf(f, 1):
		return pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true}
	case math.IsInf(f, -1):
		return pgtype.Numeric{InfinityModifier: pgtype.NegativeInfinity, Valid: true}
	}

	// Use big.Float for precision
	text := big.NewFloat(f).Text('f', -1)

	var num pgtype.Numeric
	if err := num.Scan(text); err != nil {
		return pgtype.Numeric{Valid: false}
	}
	return num
}
