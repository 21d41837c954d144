package parser

// BuildChequePrompt returns the extraction prompt for Argentine cheque images.
func BuildChequePrompt() string {
	return `Sos un experto en análisis de cheques argentinos. Analizá la imagen y extraé la información de CADA cheque que encuentres.

Para cada cheque identificá:
- CUIT del librador: puede estar con o sin guiones (20-12345678-9 o 20123456789); normalizá a XX-XXXXXXXX-X
- Banco: nombre completo del banco emisor (puede estar en el logo o en texto)
- Fecha de emisión y fecha de pago/vencimiento en formato YYYY-MM-DD
- Importe: usá el campo numérico y validalo contra el importe en letras si es posible
- Número de cheque
- CBU o CUIT del beneficiario, si aparece

Respondé ÚNICAMENTE con JSON válido, sin markdown, sin texto adicional:
{
  "cheques": [
    {
      "cuit_librador": "",
      "banco": "",
      "fecha_emision": "",
      "fecha_pago": "",
      "importe": 0,
      "numero_cheque": "",
      "cbu_beneficiario": ""
    }
  ]
}

REGLAS:
- Un documento puede contener varios cheques; incluí un objeto por cada uno.
- Si un campo no se puede determinar, usá "" para texto y 0 para números.
- Si la imagen no contiene ningún cheque, respondé {"cheques": []}.`
}
