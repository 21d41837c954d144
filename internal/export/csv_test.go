package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chequero/internal/domain"
)

func sampleRecords() []domain.ChequeRecord {
	cbu := "2850590940090418135201"
	return []domain.ChequeRecord{
		{
			ID:             uuid.New(),
			DocumentType:   domain.DocumentTypeCheque,
			PayerCUIT:      "30-69163759-6",
			PayerName:      "ACME SA",
			Bank:           "Banco Nación",
			IssueDate:      "2026-05-01",
			DueDate:        "2026-06-01",
			Amount:         1234.56,
			ChequeNumber:   "00012345",
			BeneficiaryCBU: &cbu,
			Credit: &domain.CreditStatus{
				StatusLabel:   "Sin deuda",
				RiskTier:      domain.RiskTierA,
				RejectedCount: 0,
				Details:       domain.CreditDetails{HasData: true},
			},
		},
		{
			ID:           uuid.New(),
			DocumentType: domain.DocumentTypeCheque,
			Bank:         "Banco Provincia",
			Amount:       2000,
			ChequeNumber: "00012346",
		},
	}
}

func TestWriteRecords(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRecords(sampleRecords()))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, columns, rows[0])

	first := rows[1]
	assert.Equal(t, "30-69163759-6", first[0])
	assert.Equal(t, "ACME SA", first[1])
	assert.Equal(t, "1234.56", first[5])
	assert.Equal(t, "Sin deuda", first[8])
	assert.Equal(t, "A", first[9])

	second := rows[2]
	assert.Empty(t, second[0])
	assert.Empty(t, second[8], "credit columns stay empty without a verdict")
	assert.Equal(t, "2000.00", second[5])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "cheques_mayo", SanitizeFilename("cheques mayo"))
	assert.Equal(t, "a_b", SanitizeFilename("a///b"))
	assert.Equal(t, "archivo", SanitizeFilename("_archivo_"))
	assert.Len(t, SanitizeFilename(strings.Repeat("x", 150)), 100)
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("cheque scan.png", "csv")
	assert.True(t, strings.HasPrefix(name, "cheque_scan_png_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))

	fallback := BuildFilename("", "xlsx")
	assert.True(t, strings.HasPrefix(fallback, "cheques_"))
}
