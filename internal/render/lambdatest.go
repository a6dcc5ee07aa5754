package render

import (
	"strings"
	"time"

	"invoicestudio/internal/domain"
)

// lambdaTestVariant renders the subscription invoice: red accent header
// with inline issuer details, right-aligned recipient, a four-cell
// subscription summary band, and a red table header. Notes never render as
// a block here; their presence only flips the payment terms cell.
func lambdaTestVariant(rc *Context) []Block {
	doc := rc.Doc
	p := lambdaTestPalette

	companyLines := issuerLines(doc.From)
	subscription := "Services"
	if len(doc.Items) > 0 && doc.Items[0].Description != "" {
		subscription = doc.Items[0].Description
	}
	terms := "Net 30"
	if doc.Notes != "" {
		terms = "As per notes"
	}

	toParty := rc.toParty("Bill to", "")
	toParty.Align = AlignRight

	blocks := []Block{
		headerBlock(&HeaderBlock{
			Title:        strings.ToUpper(doc.From.Name),
			TitleColor:   p.Accent,
			Logo:         rc.logoFor(),
			CompanyLines: companyLines,
			Meta: []LabelValue{
				{Label: "Invoice", Value: doc.InvoiceNumber},
				{Label: "Date", Value: doc.InvoiceDate},
			},
			MetaAlign:   AlignRight,
			BorderColor: p.Accent,
		}),
		partiesBlock(&PartiesBlock{Columns: 1, Parties: []PartyBlock{toParty}}),
		panelBlock(&PanelBlock{
			Background: p.LightBg,
			Columns:    4,
			Items: []LabelValue{
				{Label: "Subscription", Value: subscription},
				{Label: "Year", Value: invoiceYear(doc.InvoiceDate)},
				{Label: "Payment terms", Value: terms},
				{Label: "Due date", Value: doc.DueDate},
			},
		}),
		tableBlock(rc.lambdaTestItemsTable()),
		totalsBlock(rc.lambdaTestTotals()),
	}
	return rc.appendPaid(blocks, AlignRight)
}

// issuerLines flattens the issuer's address and contacts into header lines.
func issuerLines(from domain.InvoiceParty) []string {
	var lines []string
	if from.Address != "" {
		lines = append(lines, strings.Split(from.Address, "\n")...)
	}
	if from.Phone != "" {
		lines = append(lines, from.Phone)
	}
	if from.Email != "" {
		lines = append(lines, from.Email)
	}
	return lines
}

// invoiceYear extracts the calendar year from an ISO date string, falling
// back to the raw prefix when the date does not parse.
func invoiceYear(date string) string {
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t.Format("2006")
	}
	if len(date) >= 4 {
		return date[:4]
	}
	return date
}

func (rc *Context) lambdaTestItemsTable() *TableBlock {
	p := lambdaTestPalette
	cols, rows := rc.itemRows([]columnSpec{
		{Column{"Quantity", AlignLeft}, qtyCell},
		{Column{"Description", AlignLeft}, descCell},
		{Column{"Unit Price", AlignRight}, unitPriceCell},
		{Column{"Line Total", AlignRight}, amountCell},
	})
	return &TableBlock{
		Columns:          cols,
		Rows:             rows,
		HeaderBackground: p.HeaderBg,
		HeaderTextColor:  "#FFFFFF",
		BorderColor:      lightDivider,
		RowDividers:      true,
		RowPadding:       rc.Spacing.Row,
	}
}

func (rc *Context) lambdaTestTotals() *TotalsBlock {
	p := lambdaTestPalette
	lines := []TotalLine{
		{Label: "Subtotal", Value: rc.Fmt.Format(rc.Totals.Subtotal)},
	}
	if rc.Totals.HasTax() {
		lines = append(lines, TotalLine{
			Label: "Sales Tax",
			Value: rc.Fmt.Format(rc.Totals.TaxAmount),
		})
	}
	lines = append(lines, TotalLine{
		Label:    "Total",
		Value:    rc.Fmt.Format(rc.Totals.Total),
		Emphasis: true,
		Color:    p.Accent,
	})
	return &TotalsBlock{Lines: lines, Align: AlignRight, BorderColor: p.Accent}
}
