package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCUIT_FormatsElevenDigits(t *testing.T) {
	assert.Equal(t, "20-12345678-9", CUIT("20123456789"))
	assert.Equal(t, "20-12345678-9", CUIT("20-12345678-9"))
	assert.Equal(t, "30-69163759-6", CUIT("30.69163759.6"))
	assert.Equal(t, "20-12345678-9", CUIT(" 20 12345678 9 "))
}

func TestCUIT_Idempotent(t *testing.T) {
	once := CUIT("20123456789")
	assert.Equal(t, once, CUIT(once))
}

func TestCUIT_EchoesMalformedStrings(t *testing.T) {
	// Too few or too many digits: caller gets back what was read.
	assert.Equal(t, "123", CUIT("123"))
	assert.Equal(t, "201234567890", CUIT("201234567890"))
	assert.Equal(t, "sin cuit", CUIT("sin cuit"))
}

func TestCUIT_AbsentIsEmpty(t *testing.T) {
	assert.Equal(t, "", CUIT(nil))
	assert.Equal(t, "", CUIT(""))
	assert.Equal(t, "", CUIT("   "))
}

func TestCUIT_NumericInput(t *testing.T) {
	// JSON numbers decode as float64.
	assert.Equal(t, "20-12345678-9", CUIT(float64(20123456789)))
}

func TestCUITDigits(t *testing.T) {
	assert.Equal(t, "20123456789", CUITDigits("20-12345678-9"))
	assert.Equal(t, "20123456789", CUITDigits("20123456789"))
	assert.Equal(t, "", CUITDigits("123"))
	assert.Equal(t, "", CUITDigits(""))
	assert.Equal(t, "", CUITDigits("looks like an id but is not"))
}

func TestAmount_Numeric(t *testing.T) {
	assert.Equal(t, 1234.56, Amount(1234.56))
	assert.Equal(t, 50000.0, Amount(50000))
	assert.Equal(t, 0.0, Amount(-10.5))
	assert.Equal(t, 0.0, Amount(nil))
}

func TestAmount_LocaleStrings(t *testing.T) {
	assert.Equal(t, 1234.56, Amount("1.234,56"))
	assert.Equal(t, 1234.56, Amount("1,234.56"))
	assert.Equal(t, 1234.56, Amount("1234,56"))
	assert.Equal(t, 1234.56, Amount("1234.56"))
	assert.Equal(t, 1234.56, Amount("$ 1.234,56"))
	assert.Equal(t, 1500000.0, Amount("ARS 1.500.000,00"))
}

func TestAmount_Unparseable(t *testing.T) {
	assert.Equal(t, 0.0, Amount("abc"))
	assert.Equal(t, 0.0, Amount(""))
	assert.Equal(t, 0.0, Amount("$"))
}

func TestString(t *testing.T) {
	assert.Equal(t, "", String(nil))
	assert.Equal(t, "Banco Nación", String("  Banco Nación  "))
	assert.Equal(t, "12345678", String(float64(12345678)))
	assert.Equal(t, "42", String(42))
}
