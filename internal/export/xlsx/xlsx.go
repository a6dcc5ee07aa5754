// Package xlsx renders an invoice document as a spreadsheet: a metadata
// block, the line item table, and summary rows.
package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"invoicestudio/internal/domain"
	"invoicestudio/internal/money"
)

const sheetName = "Invoice"

// Export writes the document to XLSX bytes. Monetary cells carry numeric
// values so the sheet stays usable for further calculation.
func Export(doc *domain.InvoiceData, totals money.Totals) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("new style: %w", err)
	}

	meta := [][]interface{}{
		{"Invoice Number", doc.InvoiceNumber},
		{"Invoice Date", doc.InvoiceDate},
		{"Due Date", doc.DueDate},
		{"From", doc.From.Name},
		{"Bill To", doc.To.Name},
		{"Currency", doc.CurrencyOrDefault()},
	}
	row := 1
	for _, pair := range meta {
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(sheetName, cell, &pair); err != nil {
			return nil, fmt.Errorf("write metadata: %w", err)
		}
		_ = f.SetCellStyle(sheetName, cell, cell, bold)
		row++
	}
	row++

	header := []interface{}{"Description", "Quantity", "Unit Price", "Amount"}
	headerCell := fmt.Sprintf("A%d", row)
	if err := f.SetSheetRow(sheetName, headerCell, &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	_ = f.SetCellStyle(sheetName, headerCell, fmt.Sprintf("D%d", row), bold)
	row++

	for i := range doc.Items {
		item := &doc.Items[i]
		cells := []interface{}{item.Description, item.Quantity, item.UnitPrice, item.Amount}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", row), &cells); err != nil {
			return nil, fmt.Errorf("write item row: %w", err)
		}
		row++
	}
	row++

	summary := [][]interface{}{
		{"Subtotal", "", "", totals.Subtotal.InexactFloat64()},
	}
	if totals.HasTax() {
		summary = append(summary, []interface{}{
			fmt.Sprintf("Tax (%s%%)", totals.TaxRate.String()), "", "", totals.TaxAmount.InexactFloat64(),
		})
	}
	summary = append(summary, []interface{}{"Total", "", "", totals.Total.InexactFloat64()})
	for _, line := range summary {
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(sheetName, cell, &line); err != nil {
			return nil, fmt.Errorf("write summary: %w", err)
		}
		_ = f.SetCellStyle(sheetName, cell, fmt.Sprintf("D%d", row), bold)
		row++
	}

	_ = f.SetColWidth(sheetName, "A", "A", 36)
	_ = f.SetColWidth(sheetName, "B", "D", 14)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
