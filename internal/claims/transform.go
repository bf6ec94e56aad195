package claims

import (
	"fmt"
	"strings"
	"time"

	"github.com/Pavani8370/Multi-source/pkg/payerloader"
)

// payerMultipliers holds the claim_amount adjustment per payer: anthem adds a
// 10% processing fee, cigna applies a 5% discount.
var payerMultipliers = map[string]float64{
	payerloader.PayerAnthem: 1.10,
	payerloader.PayerCigna:  0.95,
}

// Multiplier returns the claim_amount multiplier for payer (case-insensitive)
// and whether the payer has a pricing rule at all.
func Multiplier(payer string) (float64, bool) {
	m, ok := payerMultipliers[strings.ToLower(payer)]
	if !ok {
		return 1, false
	}
	return m, true
}

// Transform stamps the ingestion time and applies payer pricing. See TransformAt.
func Transform(ds Dataset, payer string) (Dataset, error) {
	return TransformAt(ds, payer, time.Now())
}

// TransformAt returns a copy of ds with ingestion_timestamp set to now on every
// row and claim_amount scaled by the payer's multiplier. ds is not modified.
//
// claim_amount must be a column of ds and of every row, holding an int64,
// float64 or null. Scaled amounts are float64; nulls stay null.
func TransformAt(ds Dataset, payer string, now time.Time) (Dataset, error) {
	if !ds.HasColumn(ColClaimAmount) {
		return Dataset{}, fmt.Errorf("%w: %s", payerloader.ErrMissingColumn, ColClaimAmount)
	}

	multiplier, adjust := Multiplier(payer)

	out := ds.Clone()
	if !out.HasColumn(ColIngestionTimestamp) {
		out.Columns = append(out.Columns, ColIngestionTimestamp)
	}

	for i, row := range out.Rows {
		amount, ok := row[ColClaimAmount]
		if !ok {
			return Dataset{}, fmt.Errorf("%w: %s absent from row %d", payerloader.ErrMissingColumn, ColClaimAmount, i)
		}
		priced, err := applyMultiplier(amount, multiplier, adjust)
		if err != nil {
			return Dataset{}, fmt.Errorf("row %d: %w", i, err)
		}
		row[ColClaimAmount] = priced
		row[ColIngestionTimestamp] = now
	}
	return out, nil
}

func applyMultiplier(amount any, multiplier float64, adjust bool) (any, error) {
	switch v := amount.(type) {
	case nil:
		return nil, nil
	case int64:
		if !adjust {
			return v, nil
		}
		return float64(v) * multiplier, nil
	case float64:
		if !adjust {
			return v, nil
		}
		return v * multiplier, nil
	default:
		return nil, fmt.Errorf("%w: %s holds %T (%v), want a number",
			payerloader.ErrTypeMismatch, ColClaimAmount, amount, amount)
	}
}
