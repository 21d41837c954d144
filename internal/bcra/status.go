package bcra

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"chequero/internal/domain"
)

// Risk thresholds over the debt report. Situation codes are BCRA severity
// codes (1 = normal ... 5+ = irrecoverable); amounts are pesos.
const (
	highSituation = 5
	midSituation  = 3
	highDebt      = 1_000_000
	midDebt       = 500_000
)

// Aggregator reconciles the two Central de Deudores endpoints into one
// CreditStatus. It implements port.CreditRegistry and never returns an
// error: transport failures degrade into the status details.
type Aggregator struct {
	client *Client
}

// NewAggregator creates an Aggregator over a Client.
func NewAggregator(client *Client) *Aggregator {
	return &Aggregator{client: client}
}

// CheckCreditStatus queries the debt and rejected-cheques endpoints for a
// bare 11-digit CUIT and derives the verdict. The two sub-calls run
// concurrently and fail independently: data from one is still used when the
// other errors out.
func (a *Aggregator) CheckCreditStatus(ctx context.Context, cuit string) *domain.CreditStatus {
	var (
		wg sync.WaitGroup

		debt      *DebtResults
		debtFound bool
		debtErr   error

		rejected *RejectedResults
		rejFound bool
		rejErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		debt, debtFound, debtErr = a.client.Debts(ctx, cuit)
	}()
	go func() {
		defer wg.Done()
		rejected, rejFound, rejErr = a.client.RejectedCheques(ctx, cuit)
	}()
	wg.Wait()

	var errs []string
	if debtErr != nil {
		log.Printf("bcra.Aggregator: debt lookup for %s failed: %v", cuit, debtErr)
		errs = append(errs, fmt.Sprintf("deudas: %v", debtErr))
	}
	if rejErr != nil {
		log.Printf("bcra.Aggregator: rejected cheques lookup for %s failed: %v", cuit, rejErr)
		errs = append(errs, fmt.Sprintf("cheques rechazados: %v", rejErr))
	}

	status := deriveStatus(debt, debtFound, rejected, rejFound, strings.Join(errs, "; "))
	log.Printf("bcra.Aggregator: %s -> tier %s, %d cheque(s) rechazado(s), deuda total %.2f",
		cuit, status.RiskTier, status.RejectedCount, status.Details.TotalDebt)
	return status
}

// deriveStatus applies the tier rules in precedence order: no data at all,
// outstanding debt, active rejected cheques, clean.
func deriveStatus(debt *DebtResults, debtFound bool, rejected *RejectedResults, rejFound bool, errDetail string) *domain.CreditStatus {
	hasData := debtFound || rejFound

	if !hasData {
		label := "Sin registros"
		if errDetail != "" {
			label = "Error"
		}
		return &domain.CreditStatus{
			StatusLabel: label,
			RiskTier:    domain.RiskTierNone,
			Details: domain.CreditDetails{
				HasData: false,
				Error:   errDetail,
			},
		}
	}

	var (
		totalDebt    float64
		situations   []int
		maxSituation int
	)
	for _, e := range debt.Entries() {
		situations = append(situations, e.Situacion)
		if e.Situacion > maxSituation {
			maxSituation = e.Situacion
		}
		if e.Situacion > 0 {
			totalDebt += e.Monto
		}
	}

	rejectedCount := rejected.ActiveCount()

	details := domain.CreditDetails{
		TotalDebt:  totalDebt,
		Situations: situations,
		HasData:    true,
		Error:      errDetail,
	}

	hasDebt := maxSituation > 0
	switch {
	case hasDebt:
		tier := domain.RiskTierBMinus
		if maxSituation >= highSituation || totalDebt > highDebt {
			tier = domain.RiskTierC
		} else if maxSituation >= midSituation || totalDebt > midDebt {
			tier = domain.RiskTierB
		}
		return &domain.CreditStatus{
			StatusLabel:   fmt.Sprintf("Con deuda vigente (situación máxima %d)", maxSituation),
			RejectedCount: rejectedCount,
			RiskTier:      tier,
			Details:       details,
		}
	case rejectedCount > 0:
		return &domain.CreditStatus{
			StatusLabel:   fmt.Sprintf("Con %d cheque(s) rechazado(s)", rejectedCount),
			RejectedCount: rejectedCount,
			RiskTier:      domain.RiskTierBMinus,
			Details:       details,
		}
	default:
		return &domain.CreditStatus{
			StatusLabel: "Sin deuda",
			RiskTier:    domain.RiskTierA,
			Details:     details,
		}
	}
}
