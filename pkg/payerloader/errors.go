package payerloader

import "errors"

// Sentinel errors for the failure kinds of an ingestion run.
// Callers distinguish them with errors.Is; the wrapped message carries the detail.
//
//	ds, err := resolver.Resolve(claims.FilePath(path))
//	if errors.Is(err, payerloader.ErrDataSource) {
//	    // file missing, unreadable or not delimited text
//	}
var (
	// ErrMissingArgument indicates a required CLI input was not supplied.
	ErrMissingArgument = errors.New("missing argument")

	// ErrInvalidArgument indicates a CLI input outside its allowed values.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDataSource indicates the input could not be read: missing or unreadable
	// file, malformed delimited text, or an empty manual row list.
	ErrDataSource = errors.New("data source error")

	// ErrUnsupportedInput indicates the resolver was handed an input it has no reader for.
	ErrUnsupportedInput = errors.New("unsupported input")

	// ErrMissingColumn indicates a required column is absent from the dataset.
	ErrMissingColumn = errors.New("missing column")

	// ErrTypeMismatch indicates a cell holds a value of the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrConfigNotFound is returned when an explicitly named config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
)

// ExitCodeForError returns the process exit code for an error.
// Returns ExitSuccess for nil and ExitGeneralError for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrMissingArgument), errors.Is(err, ErrInvalidArgument):
		return ExitUsageError
	case errors.Is(err, ErrDataSource), errors.Is(err, ErrUnsupportedInput):
		return ExitDataSourceError
	case errors.Is(err, ErrMissingColumn), errors.Is(err, ErrTypeMismatch):
		return ExitDataShapeError
	case errors.Is(err, ErrConfigNotFound):
		return ExitConfigError
	default:
		return ExitGeneralError
	}
}
