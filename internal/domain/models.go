package domain

import (
	"github.com/google/uuid"
)

// ChequeRecord is the canonical result of processing one cheque found in a
// document. Records are assembled fully before being returned and are never
// mutated afterwards.
type ChequeRecord struct {
	ID             uuid.UUID     `json:"id"`
	DocumentType   string        `json:"tipo_documento"`
	PayerCUIT      string        `json:"cuit_librador"`
	PayerName      string        `json:"denominacion_librador,omitempty"`
	Bank           string        `json:"banco"`
	IssueDate      string        `json:"fecha_emision"`
	DueDate        string        `json:"fecha_pago"`
	Amount         float64       `json:"importe"`
	ChequeNumber   string        `json:"numero_cheque"`
	BeneficiaryCBU *string       `json:"cbu_beneficiario,omitempty"`
	Credit         *CreditStatus `json:"estado_crediticio,omitempty"`
}

// CreditStatus is the consolidated BCRA verdict for one CUIT.
type CreditStatus struct {
	StatusLabel   string        `json:"estado"`
	RejectedCount int           `json:"cheques_rechazados"`
	RiskTier      RiskTier      `json:"riesgo_crediticio"`
	Details       CreditDetails `json:"detalles"`
}

// CreditDetails carries the raw aggregation facts behind a CreditStatus.
// Error holds the last transport failure seen while querying the registry;
// a non-empty Error with HasData true means the verdict was derived from
// partial data.
type CreditDetails struct {
	TotalDebt  float64 `json:"monto_total"`
	Situations []int   `json:"situaciones"`
	HasData    bool    `json:"tiene_registros"`
	Error      string  `json:"error,omitempty"`
}
