package payerloader

// Exit codes returned by the payerloader binary.
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitUsageError      = 2
	ExitPanic           = 3
	ExitDataSourceError = 10
	ExitDataShapeError  = 11
	ExitConfigError     = 12
)

// Payer names accepted on the command line.
const (
	PayerAnthem = "anthem"
	PayerCigna  = "cigna"
	PayerManual = "manual"
)

// Payers returns the payer names the CLI accepts, in display order.
func Payers() []string {
	return []string{PayerAnthem, PayerCigna, PayerManual}
}

// IsFileBased reports whether the payer reads its claims from a source file.
// Only the manual payer runs on the built-in sample.
func IsFileBased(payer string) bool {
	return payer != PayerManual
}
