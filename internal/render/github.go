package render

import (
	"fmt"

	"invoicestudio/internal/domain"
)

// gitHubVariant renders the developer-platform receipt: quiet header with
// tracked-out INVOICE NO. and DATE lines, the item table under an "Item
// description" title, and a dark grand total. Like the ReadyAPI layout it
// substitutes a billing-period line when notes are absent.
func gitHubVariant(rc *Context) []Block {
	doc := rc.Doc
	p := gitHubPalette

	blocks := []Block{
		headerBlock(&HeaderBlock{
			Logo:         rc.logoFor(),
			CompanyLines: gitHubIssuerLines(doc),
			Meta: []LabelValue{
				{Value: "INVOICE NO. " + doc.InvoiceNumber, Color: p.Dark, Emphasis: true},
				{Value: "DATE: " + doc.InvoiceDate, Color: p.Dark, Emphasis: true},
			},
			MetaAlign:   AlignRight,
			BorderColor: lightDivider,
		}),
		partiesBlock(&PartiesBlock{
			Columns: 1,
			Parties: []PartyBlock{rc.toParty("Bill to:", p.Dark)},
		}),
		tableBlock(rc.gitHubItemsTable()),
		totalsBlock(&TotalsBlock{
			Align:       AlignRight,
			BorderColor: neutralBorder,
			Lines: []TotalLine{
				{Label: "Sub total", Value: rc.Fmt.Format(rc.Totals.Subtotal)},
				{Label: "Grand total", Value: rc.Fmt.Format(rc.Totals.Total), Emphasis: true, Color: p.Dark},
			},
		}),
	}

	text := doc.Notes
	if text == "" {
		text = fmt.Sprintf("This invoice is for the billing period %s to %s", doc.InvoiceDate, doc.DueDate)
	}
	blocks = append(blocks, notesBlock(&NotesBlock{Text: text, Color: p.Text}))

	return rc.appendPaid(blocks, AlignCenter)
}

func gitHubIssuerLines(doc *domain.InvoiceData) []string {
	var lines []string
	if doc.From.Address != "" {
		lines = append(lines, doc.From.Address)
	}
	if doc.From.Phone != "" {
		lines = append(lines, "Phone: "+doc.From.Phone)
	}
	if doc.From.Email != "" {
		lines = append(lines, "Email: "+doc.From.Email)
	}
	return lines
}

func (rc *Context) gitHubItemsTable() *TableBlock {
	cols, rows := rc.itemRows([]columnSpec{
		{Column{"Item", AlignLeft}, descCell},
		{Column{"Qty", AlignLeft}, qtyCell},
		{Column{"Price", AlignRight}, unitPriceCell},
		{Column{"Total", AlignRight}, amountCell},
	})
	return &TableBlock{
		Title:       "Item description",
		TitleColor:  gitHubPalette.Dark,
		Columns:     cols,
		Rows:        rows,
		BorderColor: neutralBorder,
		RowDividers: true,
		RowPadding:  rc.Spacing.Row,
	}
}
