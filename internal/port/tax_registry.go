package port

import "context"

// TaxRegistry looks up the registered denomination (razón social) for a
// canonical 11-digit CUIT. Used only to enrich records for display.
type TaxRegistry interface {
	Denomination(ctx context.Context, cuit string) (string, error)
}
