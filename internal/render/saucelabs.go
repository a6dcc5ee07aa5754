package render

// sauceLabsVariant renders the SaaS billing statement: issuer block right
// of the logo row, a three-column details band with a large amount-due
// figure, and a dark purple table header.
func sauceLabsVariant(rc *Context) []Block {
	doc := rc.Doc
	p := sauceLabsPalette
	amountDueLabel := "Amount Due (" + rc.Fmt.Code() + ")"

	blocks := []Block{
		headerBlock(&HeaderBlock{
			Title:       doc.From.Name,
			Logo:        rc.logoFor(),
			Party:       ptr(rc.fromParty("Bill From:", "")),
			MetaAlign:   AlignRight,
			BorderColor: lightDivider,
		}),
		panelBlock(&PanelBlock{
			Columns: 3,
			Items: []LabelValue{
				{Label: "Bill To:", Value: rc.sauceBillTo()},
				{Label: "Invoice Number:", Value: doc.InvoiceNumber, Color: p.Accent},
				{Label: "Date:", Value: doc.InvoiceDate, Color: p.Accent},
				{Label: amountDueLabel, Value: rc.Fmt.Format(rc.Totals.Total), Emphasis: true, Color: p.Accent},
			},
		}),
		tableBlock(rc.sauceItemsTable()),
		totalsBlock(rc.sauceTotals(amountDueLabel)),
	}

	if doc.Notes != "" {
		blocks = append(blocks, notesBlock(&NotesBlock{
			Label:      "Notes",
			LabelColor: p.Accent,
			Text:       doc.Notes,
		}))
	}
	return rc.appendPaid(blocks, AlignRight)
}

func (rc *Context) sauceBillTo() string {
	name := recipientName(rc.Doc.To.Name)
	if rc.Doc.To.Address != "" {
		return name + "\n" + rc.Doc.To.Address
	}
	return name
}

func (rc *Context) sauceItemsTable() *TableBlock {
	p := sauceLabsPalette
	cols, rows := rc.itemRows([]columnSpec{
		{Column{"Description", AlignLeft}, descCell},
		{Column{"Rate", AlignRight}, unitPriceCell},
		{Column{"Qty", AlignRight}, qtyCell},
		{Column{"Line Total", AlignRight}, amountCell},
	})
	return &TableBlock{
		Columns:          cols,
		Rows:             rows,
		HeaderBackground: p.Dark,
		HeaderTextColor:  "#FFFFFF",
		BorderColor:      lightDivider,
		RowDividers:      true,
		RowPadding:       rc.Spacing.Row,
	}
}

// sauceTotals repeats the total as a bold Amount Due line, mirroring how
// the statement closes with the figure the customer owes.
func (rc *Context) sauceTotals(amountDueLabel string) *TotalsBlock {
	p := sauceLabsPalette
	lines := []TotalLine{
		{Label: "Subtotal", Value: rc.Fmt.Format(rc.Totals.Subtotal)},
	}
	if rc.Totals.HasTax() {
		lines = append(lines, TotalLine{
			Label: rc.taxLabel("Tax"),
			Value: rc.Fmt.Format(rc.Totals.TaxAmount),
		})
	}
	lines = append(lines,
		TotalLine{Label: "Total", Value: rc.Fmt.Format(rc.Totals.Total)},
		TotalLine{Label: amountDueLabel, Value: rc.Fmt.Format(rc.Totals.Total), Emphasis: true, Color: p.Accent},
	)
	return &TotalsBlock{Lines: lines, Align: AlignRight, BorderColor: neutralBorder}
}
