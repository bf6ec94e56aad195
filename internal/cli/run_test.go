package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pavani8370/Multi-source/internal/claims"
	"github.com/Pavani8370/Multi-source/internal/config"
	"github.com/Pavani8370/Multi-source/internal/destination"
	"github.com/Pavani8370/Multi-source/pkg/payerloader"
)

const sampleCSV = `member_id,claim_id,claim_amount,service_date,payer_name
1,1001,500,2024-01-10,manual
2,1002,800,2024-02-15,manual
`

func writeSampleCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "claims.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0644))
	return path
}

func runWithLogs(t *testing.T, cfg config.Config) (*Result, string, error) {
	t.Helper()
	var buf bytes.Buffer
	res, err := Run(cfg, log.New(&buf))
	return res, buf.String(), err
}

func TestRun_ManualSample(t *testing.T) {
	res, logs, err := runWithLogs(t, config.Config{Payer: "manual"})
	require.NoError(t, err)

	assert.Equal(t, int64(500), res.Dataset.Rows[0][claims.ColClaimAmount])
	assert.Equal(t, int64(1), res.Dataset.Rows[0][claims.ColMemberID])
	assert.Equal(t, destination.GenericClaims, res.Summary.Destination)
	assert.Equal(t, int64(2), res.Summary.Rows)

	assert.Contains(t, logs, "Reading data from manual input list")
	assert.Contains(t, logs, "Loading data into RAW.GENERIC_CLAIMS")
	assert.Contains(t, logs, "Total rows: 2")
}

func TestRun_ManualIgnoresSource(t *testing.T) {
	res, logs, err := runWithLogs(t, config.Config{
		Payer:  "manual",
		Source: filepath.Join(t.TempDir(), "does-not-exist.csv"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Summary.Rows)
	assert.NotContains(t, logs, "Reading data from file")
}

func TestRun_AnthemFromFile(t *testing.T) {
	path := writeSampleCSV(t)

	res, logs, err := runWithLogs(t, config.Config{Payer: "anthem", Source: path})
	require.NoError(t, err)

	assert.InDelta(t, 550.0, res.Dataset.Rows[0][claims.ColClaimAmount], 1e-9)
	assert.Equal(t, destination.AnthemTable, res.Summary.Destination)
	assert.Contains(t, logs, "Reading data from file: "+path)
	assert.Contains(t, logs, "Loading data into RAW.ANTHEM_TABLE")
}

func TestRun_CignaFromFile(t *testing.T) {
	res, logs, err := runWithLogs(t, config.Config{Payer: "cigna", Source: writeSampleCSV(t)})
	require.NoError(t, err)

	assert.InDelta(t, 760.0, res.Dataset.Rows[1][claims.ColClaimAmount], 1e-9)
	assert.Contains(t, logs, "Loading data into RAW.CIGNA_TABLE")
}

func TestRun_MissingSource(t *testing.T) {
	_, logs, err := runWithLogs(t, config.Config{Payer: "anthem"})

	assert.ErrorIs(t, err, payerloader.ErrMissingArgument)
	assert.NotContains(t, logs, "Reading data")
}

func TestRun_NonexistentSource(t *testing.T) {
	_, logs, err := runWithLogs(t, config.Config{
		Payer:  "anthem",
		Source: filepath.Join(t.TempDir(), "missing.csv"),
	})

	assert.ErrorIs(t, err, payerloader.ErrDataSource)
	assert.NotContains(t, logs, "Loading data into")
	assert.NotContains(t, logs, "Total rows")
}

func TestRun_MissingClaimAmount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no_amount.csv")
	require.NoError(t, os.WriteFile(path, []byte("member_id,claim_id\n1,1001\n"), 0644))

	_, logs, err := runWithLogs(t, config.Config{Payer: "cigna", Source: path})

	assert.ErrorIs(t, err, payerloader.ErrMissingColumn)
	assert.Equal(t, payerloader.ExitDataShapeError, payerloader.ExitCodeForError(err))
	assert.NotContains(t, logs, "Loading data into")
}

func TestRun_NonNumericClaimAmount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text_amount.csv")
	require.NoError(t, os.WriteFile(path, []byte("claim_amount\nfive hundred\n"), 0644))

	_, _, err := runWithLogs(t, config.Config{Payer: "anthem", Source: path})
	assert.ErrorIs(t, err, payerloader.ErrTypeMismatch)
}
