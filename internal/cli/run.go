package cli

import (
	"github.com/charmbracelet/log"

	"github.com/Pavani8370/Multi-source/internal/claims"
	"github.com/Pavani8370/Multi-source/internal/config"
	"github.com/Pavani8370/Multi-source/internal/destination"
	"github.com/Pavani8370/Multi-source/pkg/payerloader"
)

// Result is the outcome of one ingestion run.
type Result struct {
	Dataset claims.Dataset
	Summary destination.Summary
}

// Run validates cfg, then resolves, transforms and loads the payer's claims
// once. The first failing stage aborts the run; later stages never start.
func Run(cfg config.Config, logger *log.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var src claims.InputSource = claims.FilePath(cfg.Source)
	if !payerloader.IsFileBased(cfg.Payer) {
		src = claims.SampleRows()
	}

	ds, err := claims.NewResolver(logger).Resolve(src)
	if err != nil {
		return nil, err
	}

	ds, err = claims.Transform(ds, cfg.Payer)
	if err != nil {
		return nil, err
	}

	summary, err := destination.NewLoader(logger).Load(ds, cfg.Payer)
	if err != nil {
		return nil, err
	}
	return &Result{Dataset: ds, Summary: summary}, nil
}
