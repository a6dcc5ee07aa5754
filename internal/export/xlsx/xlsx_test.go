package xlsx

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"invoicestudio/internal/domain"
	"invoicestudio/internal/money"
)

func TestExport(t *testing.T) {
	doc := domain.NewDefaultInvoice(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	doc.To.Name = "Acme Corp"
	doc.TaxRate = 10
	doc.Items = []domain.InvoiceLineItem{
		{ID: "1", Description: "Consulting", Quantity: 2, UnitPrice: 150, Amount: 300},
		{ID: "2", Description: "Hosting", Quantity: 1, UnitPrice: 49.5, Amount: 49.5},
	}
	totals := money.Calculate(doc.Items, doc.TaxRate)

	out, err := Export(doc, totals)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	assert.Equal(t, []string{"Invoice Number", "INV-001"}, rows[0])
	assert.Equal(t, []string{"Currency", "USD"}, rows[5])
	assert.Equal(t, []string{"Description", "Quantity", "Unit Price", "Amount"}, rows[7])
	assert.Equal(t, "Consulting", rows[8][0])
	assert.Equal(t, "300", rows[8][3])

	last := rows[len(rows)-1]
	assert.Equal(t, "Total", last[0])
	assert.Equal(t, "384.45", last[3])
}

func TestExportWithoutTaxSkipsTaxRow(t *testing.T) {
	doc := domain.NewDefaultInvoice(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	totals := money.Calculate(doc.Items, 0)

	out, err := Export(doc, totals)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	for _, row := range rows {
		if len(row) > 0 {
			assert.NotContains(t, row[0], "Tax")
		}
	}
}
