// Package export renders processed cheque records as downloadable CSV or
// XLSX files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"chequero/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"CUIT Librador",
	"Denominación",
	"Banco",
	"Fecha Emisión",
	"Fecha Pago",
	"Importe",
	"Número Cheque",
	"CBU Beneficiario",
	"Estado Crediticio",
	"Riesgo",
	"Cheques Rechazados",
	"Monto Total Deuda",
}

// Writer wraps csv.Writer for exporting cheque records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRecords converts a batch of records to CSV rows and writes them.
func (w *Writer) WriteRecords(records []domain.ChequeRecord) error {
	for i := range records {
		if err := w.csv.Write(recordToRow(&records[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// recordToRow converts a single record to a row. Credit columns stay empty
// when the record carries no credit verdict.
func recordToRow(r *domain.ChequeRecord) []string {
	row := make([]string, len(columns))
	row[0] = r.PayerCUIT
	row[1] = r.PayerName
	row[2] = r.Bank
	row[3] = r.IssueDate
	row[4] = r.DueDate
	row[5] = formatMoney(r.Amount)
	row[6] = r.ChequeNumber
	if r.BeneficiaryCBU != nil {
		row[7] = *r.BeneficiaryCBU
	}
	if r.Credit != nil {
		row[8] = r.Credit.StatusLabel
		row[9] = string(r.Credit.RiskTier)
		row[10] = strconv.Itoa(r.Credit.RejectedCount)
		row[11] = formatMoney(r.Credit.Details.TotalDebt)
	}
	return row
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans an upload name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {sanitized_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string) string {
	sanitized := SanitizeFilename(name)
	if sanitized == "" {
		sanitized = "cheques"
	}
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", sanitized, date, ext)
}
