// Package spreadsheet handles the two .xlsx interchange formats: the receipt
// sheet uploaded by the shop (medicine_name, quantity_received) and the order
// sheet attached to vendor mail (Medicine, Quantity).
package spreadsheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Receipt sheet column headers, matched case-sensitively on the first row.
const (
	ColName     = "medicine_name"
	ColQuantity = "quantity_received"
)

// ErrMissingColumns is returned when the receipt sheet lacks a required header.
var ErrMissingColumns = errors.New("sheet must contain medicine_name and quantity_received columns")

// ReceiptRow is one row of an uploaded receipt sheet. Quantity is kept as the
// raw cell text so the caller can commit preceding rows before a bad value is
// even parsed.
type ReceiptRow struct {
	Name     string
	Quantity string
}

// ReadReceipts parses the first sheet of an .xlsx stream into receipt rows.
// Blank rows are skipped; cell values are not validated here.
func ReadReceipts(r io.Reader) ([]ReceiptRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrMissingColumns
	}

	nameCol, qtyCol := -1, -1
	for i, header := range rows[0] {
		switch header {
		case ColName:
			nameCol = i
		case ColQuantity:
			qtyCol = i
		}
	}
	if nameCol < 0 || qtyCol < 0 {
		return nil, ErrMissingColumns
	}

	var receipts []ReceiptRow
	for _, row := range rows[1:] {
		if nameCol >= len(row) || row[nameCol] == "" {
			continue
		}
		qty := ""
		if qtyCol < len(row) {
			qty = row[qtyCol]
		}
		receipts = append(receipts, ReceiptRow{Name: row[nameCol], Quantity: qty})
	}
	return receipts, nil
}

// OrderLine is one row of the vendor order sheet.
type OrderLine struct {
	Medicine string
	Quantity int
}

// WriteOrder builds the order workbook and writes it to w.
// Columns: Medicine, Quantity.
func WriteOrder(w io.Writer, lines []OrderLine) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetCellValue(sheet, "A1", "Medicine"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := f.SetCellValue(sheet, "B1", "Quantity"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, line := range lines {
		row := i + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), line.Medicine); err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.Quantity); err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
