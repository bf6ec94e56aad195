package destination

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pavani8370/Multi-source/internal/claims"
	"github.com/Pavani8370/Multi-source/pkg/payerloader"
)

func transformedSample(t *testing.T, payer string) claims.Dataset {
	t.Helper()
	ds, err := claims.NewDataset(claims.SampleRows())
	require.NoError(t, err)
	out, err := claims.TransformAt(ds, payer, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return out
}

func TestLoad_Summary(t *testing.T) {
	var buf bytes.Buffer
	loader := NewLoader(log.New(&buf))

	summary, err := loader.Load(transformedSample(t, "manual"), "manual")
	require.NoError(t, err)

	assert.Equal(t, GenericClaims, summary.Destination)
	assert.Equal(t, int64(2), summary.Rows)
	assert.NotEqual(t, uuid.Nil, summary.RunID)

	out := buf.String()
	assert.Contains(t, out, "Loading data into RAW.GENERIC_CLAIMS")
	assert.Contains(t, out, "Total rows: 2")
	assert.Less(t, strings.Index(out, "Loading data into"), strings.Index(out, "Total rows"))
}

func TestLoad_EmptyDataset(t *testing.T) {
	var buf bytes.Buffer
	loader := NewLoader(log.New(&buf))

	ds := claims.Dataset{Columns: []string{claims.ColClaimAmount, claims.ColIngestionTimestamp}}
	summary, err := loader.Load(ds, "cigna")
	require.NoError(t, err)

	assert.Equal(t, CignaTable, summary.Destination)
	assert.Zero(t, summary.Rows)
	assert.Contains(t, buf.String(), "Total rows: 0")
}

func TestLoad_DebugLogsStatement(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	_, err := NewLoader(logger).Load(transformedSample(t, "anthem"), "anthem")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `COPY "RAW"."ANTHEM_TABLE"`)
}

func TestLoad_RaggedDataset(t *testing.T) {
	var buf bytes.Buffer
	ds := claims.Dataset{
		Columns: []string{claims.ColClaimAmount, claims.ColMemberID},
		Rows:    []claims.Row{{claims.ColClaimAmount: 1.0}},
	}

	_, err := NewLoader(log.New(&buf)).Load(ds, "anthem")
	assert.ErrorIs(t, err, payerloader.ErrMissingColumn)
	assert.NotContains(t, buf.String(), "Total rows")
}

func TestPlan_SourceEncoding(t *testing.T) {
	ds := transformedSample(t, "anthem")
	plan := NewPlan(ds, "Anthem")

	assert.Equal(t, AnthemTable, plan.Destination)
	assert.Equal(t, ds.Columns, plan.Columns)

	src := plan.Source()
	require.True(t, src.Next())
	values, err := src.Values()
	require.NoError(t, err)
	require.Len(t, values, len(plan.Columns))

	for i, c := range plan.Columns {
		switch c {
		case claims.ColClaimAmount:
			n, ok := values[i].(pgtype.Numeric)
			require.True(t, ok, "claim_amount should encode as numeric, got %T", values[i])
			f, err := n.Float64Value()
			require.NoError(t, err)
			assert.InDelta(t, 550.0, f.Float64, 1e-6)
		case claims.ColIngestionTimestamp:
			ts, ok := values[i].(pgtype.Timestamptz)
			require.True(t, ok)
			assert.True(t, ts.Valid)
		case claims.ColMemberID:
			assert.Equal(t, int64(1), values[i])
		}
	}
}

func TestToNumeric_Special(t *testing.T) {
	assert.True(t, toNumeric(math.NaN()).NaN)
	assert.Equal(t, pgtype.Infinity, toNumeric(math.Inf(1)).InfinityModifier)
	assert.Equal(t, pgtype.NegativeInfinity, toNumeric(math.Inf(-1)).InfinityModifier)
}
