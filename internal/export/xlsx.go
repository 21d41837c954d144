package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"chequero/internal/domain"
)

const sheetName = "Cheques"

// WriteXLSX renders records as a single-sheet workbook and writes it to w.
func WriteXLSX(w io.Writer, records []domain.ChequeRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for i := range records {
		row := recordToRow(&records[i])
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		// Importe as a number so Excel can sum it.
		cells[5] = records[i].Amount
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name for row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
