package claims

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Pavani8370/Multi-source/pkg/payerloader"
)

// InputSource is where a Dataset comes from: a FilePath or InlineRows.
type InputSource interface {
	inputSource()
}

// FilePath names a claims file on disk. The extension selects the reader:
// .parquet, .json, anything else is read as comma-separated text.
type FilePath string

// InlineRows are row mappings supplied in memory.
type InlineRows []Row

func (FilePath) inputSource()   {}
func (InlineRows) inputSource() {}

// Resolver turns an InputSource into a Dataset.
type Resolver struct {
	logger *log.Logger
}

// NewResolver returns a Resolver logging its input choice to logger.
func NewResolver(logger *log.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve reads src into a Dataset.
func (r *Resolver) Resolve(src InputSource) (Dataset, error) {
	switch s := src.(type) {
	case FilePath:
		return r.resolveFile(string(s))
	case InlineRows:
		r.logger.Info("Reading data from manual input list")
		return NewDataset(s)
	default:
		return Dataset{}, fmt.Errorf("%w: %T", payerloader.ErrUnsupportedInput, src)
	}
}

func (r *Resolver) resolveFile(path string) (Dataset, error) {
	if path == "" {
		return Dataset{}, fmt.Errorf("%w: empty file path", payerloader.ErrDataSource)
	}
	r.logger.Infof("Reading data from file: %s", path)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return ReadParquet(path)
	case ".json":
		return ReadJSON(path)
	default:
		return ReadCSV(path)
	}
}
