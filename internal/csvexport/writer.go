// Package csvexport renders an invoice document as CSV, one row per line
// item followed by summary rows.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"invoicestudio/internal/domain"
	"invoicestudio/internal/money"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Invoice Number",
	"Invoice Date",
	"Due Date",
	"From",
	"Bill To",
	"Description",
	"Quantity",
	"Unit Price",
	"Amount",
	"Currency",
}

// Writer wraps csv.Writer for exporting an invoice as CSV.
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

// WriteInvoice writes one row per line item, then subtotal, optional tax,
// and total summary rows. Amounts are written as stored on the document.
func (w *Writer) WriteInvoice(doc *domain.InvoiceData, totals money.Totals) error {
	currency := doc.CurrencyOrDefault()
	for i := range doc.Items {
		item := &doc.Items[i]
		row := []string{
			doc.InvoiceNumber,
			doc.InvoiceDate,
			doc.DueDate,
			doc.From.Name,
			doc.To.Name,
			item.Description,
			formatNumber(item.Quantity),
			formatMoney(item.UnitPrice),
			formatMoney(item.Amount),
			currency,
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}

	if err := w.writeSummary("Subtotal", totals.Subtotal.InexactFloat64(), currency); err != nil {
		return err
	}
	if totals.HasTax() {
		label := fmt.Sprintf("Tax (%s%%)", totals.TaxRate.String())
		if err := w.writeSummary(label, totals.TaxAmount.InexactFloat64(), currency); err != nil {
			return err
		}
	}
	return w.writeSummary("Total", totals.Total.InexactFloat64(), currency)
}

func (w *Writer) writeSummary(label string, amount float64, currency string) error {
	row := make([]string, len(columns))
	row[5] = label
	row[8] = formatMoney(amount)
	row[9] = currency
	return w.csv.Write(row)
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans an invoice number for use in Content-Disposition.
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

// BuildFilename returns a sanitized filename for Content-Disposition.
// Format: invoice-{sanitized_invoice_number}.{ext}; a blank invoice number
// falls back to "invoice.{ext}".
func BuildFilename(invoiceNumber, ext string) string {
	sanitized := SanitizeFilename(invoiceNumber)
	if sanitized == "" {
		return "invoice." + ext
	}
	return fmt.Sprintf("invoice-%s.%s", sanitized, ext)
}
