package destination

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Pavani8370/Multi-source/internal/claims"
)

// Summary reports what a load would have written.
type Summary struct {
	RunID       uuid.UUID
	Destination Destination
	Rows        int64
}

// Loader reports where a transformed dataset would be loaded.
type Loader struct {
	logger *log.Logger
}

// NewLoader returns a Loader writing its summary to logger.
func NewLoader(logger *log.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load walks the COPY plan for ds without connecting anywhere, then logs the
// destination label and row count. ds is only read.
func (l *Loader) Load(ds claims.Dataset, payer string) (Summary, error) {
	plan := NewPlan(ds, payer)
	l.logger.Debugf("Run %s: %s", plan.RunID, plan.Statement())

	src := plan.Source()
	var count int64
	for src.Next() {
		if _, err := src.Values(); err != nil {
			return Summary{}, fmt.Errorf("load %s: %w", plan.Destination, err)
		}
		count++
	}
	if err := src.Err(); err != nil {
		return Summary{}, fmt.Errorf("load %s: %w", plan.Destination, err)
	}

	l.logger.Infof("Loading data into %s", plan.Destination)
	l.logger.Infof("Total rows: %d", count)

	return Summary{
		RunID:       plan.RunID,
		Destination: plan.Destination,
		Rows:        count,
	}, nil
}
