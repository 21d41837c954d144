package port

import (
	"context"

	"chequero/internal/domain"
)

// CreditRegistry resolves a canonical 11-digit CUIT (digits only) into a
// consolidated credit verdict. Implementations never fail: transport and
// decode errors degrade into a CreditStatus carrying the error detail.
type CreditRegistry interface {
	CheckCreditStatus(ctx context.Context, cuit string) *domain.CreditStatus
}
