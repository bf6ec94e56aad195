// Package destination maps a payer to the warehouse table its claims would be
// loaded into and builds the COPY plan for that load.
package destination

import (
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Pavani8370/Multi-source/pkg/payerloader"
)

const rawSchema = "RAW"

// Destination names a schema-qualified table. It is a label, not a connection.
type Destination struct {
	Schema string
	Table  string
}

var (
	AnthemTable   = Destination{Schema: rawSchema, Table: "ANTHEM_TABLE"}
	CignaTable    = Destination{Schema: rawSchema, Table: "CIGNA_TABLE"}
	GenericClaims = Destination{Schema: rawSchema, Table: "GENERIC_CLAIMS"}
)

// Select returns the destination for payer, ignoring case.
// Payers without a dedicated table go to GenericClaims.
func Select(payer string) Destination {
	switch strings.ToLower(payer) {
	case payerloader.PayerAnthem:
		return AnthemTable
	case payerloader.PayerCigna:
		return CignaTable
	default:
		return GenericClaims
	}
}

// String renders the label as SCHEMA.TABLE.
func (d Destination) String() string {
	return d.Schema + "." + d.Table
}

// Identifier returns the destination as a pgx identifier for COPY.
func (d Destination) Identifier() pgx.Identifier {
	return pgx.Identifier{d.Schema, d.Table}
}

// CopyStatement renders the COPY statement a load into d would issue.
func (d Destination) CopyStatement(columns []string) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = pgx.Identifier{c}.Sanitize()
	}
	return "COPY " + d.Identifier().Sanitize() + " (" + strings.Join(quoted, ", ") + ") FROM STDIN BINARY"
}
