package bcra

import "encoding/json"

// envelope is the outer shape every Central de Deudores endpoint returns.
// status 0 means success; results is null when the registry has nothing.
type envelope struct {
	Status  int             `json:"status"`
	Results json.RawMessage `json:"results"`
}

// DebtResults is the payload of /centraldedeudores/v1.0/Deudas/{id}.
type DebtResults struct {
	Identificacion int64        `json:"identificacion"`
	Denominacion   string       `json:"denominacion"`
	Periodos       []DebtPeriod `json:"periodos"`
}

// DebtPeriod groups the reporting entities of one reporting period.
type DebtPeriod struct {
	Periodo   string       `json:"periodo"`
	Entidades []DebtEntity `json:"entidades"`
}

// DebtEntity is one entity's report: situation code and amount owed.
type DebtEntity struct {
	Entidad   string  `json:"entidad"`
	Situacion int     `json:"situacion"`
	Monto     float64 `json:"monto"`
}

// Entries flattens periodos -> entidades. Safe on a nil receiver: every
// level defaults to empty rather than absent, so callers never nil-check.
func (r *DebtResults) Entries() []DebtEntity {
	if r == nil {
		return nil
	}
	var out []DebtEntity
	for _, p := range r.Periodos {
		out = append(out, p.Entidades...)
	}
	return out
}

// RejectedResults is the payload of /centraldedeudores/v1.0/Deudas/ChequesRechazados/{id}.
type RejectedResults struct {
	Identificacion int64           `json:"identificacion"`
	Denominacion   string          `json:"denominacion"`
	Causales       []RejectedCause `json:"causales"`
}

// RejectedCause groups rejected cheques by rejection cause.
type RejectedCause struct {
	Causal    string           `json:"causal"`
	Entidades []RejectedEntity `json:"entidades"`
}

// RejectedEntity lists the rejected cheques reported by one entity.
type RejectedEntity struct {
	Entidad int              `json:"entidad"`
	Detalle []RejectedDetail `json:"detalle"`
}

// RejectedDetail is one rejected cheque. FechaPago null/empty means the
// cheque is still outstanding; a populated value means it was since paid.
type RejectedDetail struct {
	NroCheque    int64   `json:"nroCheque"`
	FechaRechazo string  `json:"fechaRechazo"`
	Monto        float64 `json:"monto"`
	FechaPago    *string `json:"fechaPago"`
}

// Active reports whether the cheque is still outstanding (not cancelled).
func (d *RejectedDetail) Active() bool {
	return d.FechaPago == nil || *d.FechaPago == ""
}

// Details flattens causales -> entidades -> detalle. Safe on a nil receiver.
func (r *RejectedResults) Details() []RejectedDetail {
	if r == nil {
		return nil
	}
	var out []RejectedDetail
	for _, c := range r.Causales {
		for _, e := range c.Entidades {
			out = append(out, e.Detalle...)
		}
	}
	return out
}

// ActiveCount counts only cheques not yet marked paid/cancelled. Downstream
// consumers expect currently-outstanding counts, not lifetime counts.
func (r *RejectedResults) ActiveCount() int {
	n := 0
	for _, d := range r.Details() {
		if d.Active() {
			n++
		}
	}
	return n
}
