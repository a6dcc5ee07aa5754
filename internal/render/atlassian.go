package render

import "invoicestudio/internal/domain"

// atlassianVariant renders the remittance advice: blue masthead with the
// issuer details (and notes folded into the header as a small print line),
// a TO: block, and a four-column table where each row restates its amount
// in the Paid column. Notes never render as a standalone block.
func atlassianVariant(rc *Context) []Block {
	doc := rc.Doc
	p := atlassianPalette

	companyLines := []string{doc.From.Name}
	if doc.From.Address != "" {
		companyLines = append(companyLines, doc.From.Address)
	}
	if doc.Notes != "" {
		companyLines = append(companyLines, doc.Notes)
	}

	blocks := []Block{
		headerBlock(&HeaderBlock{
			Title:        "REMITTANCE ADVICE",
			TitleColor:   p.Accent,
			Logo:         rc.logoFor(),
			CompanyLines: companyLines,
			Meta: []LabelValue{
				{Value: "INVOICE: " + doc.InvoiceNumber, Emphasis: true},
				{Value: "DATE: " + doc.InvoiceDate},
			},
			MetaAlign:   AlignRight,
			BorderColor: p.Accent,
		}),
		partiesBlock(&PartiesBlock{
			Columns: 1,
			Parties: []PartyBlock{rc.toParty("TO:", p.Accent)},
		}),
		tableBlock(rc.atlassianItemsTable()),
		totalsBlock(&TotalsBlock{
			Align:       AlignRight,
			BorderColor: p.Accent,
			Lines: []TotalLine{
				{Label: "TOTAL", Value: rc.Fmt.Format(rc.Totals.Total), Emphasis: true, Color: p.Accent},
			},
		}),
	}
	return rc.appendPaid(blocks, AlignRight)
}

// atlassianItemsTable shows the currency code per row and mirrors the
// amount into the Paid column, remittance style.
func (rc *Context) atlassianItemsTable() *TableBlock {
	p := atlassianPalette
	cols, rows := rc.itemRows([]columnSpec{
		{Column{"Description", AlignLeft}, descCell},
		{Column{"Currency", AlignLeft}, func(rc *Context, _ domain.InvoiceLineItem) string { return rc.Fmt.Code() }},
		{Column{"Amount", AlignRight}, amountCell},
		{Column{"Paid", AlignRight}, amountCell},
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
