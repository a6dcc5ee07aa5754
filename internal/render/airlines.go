package render

// airlinesVariant renders the travel e-ticket invoice: a navy-ruled
// header with a combined ticket/invoice number, a Passenger block without
// a phone line, and a "Fare details" table with alternating row shading.
func airlinesVariant(rc *Context) []Block {
	doc := rc.Doc
	p := airlinesPalette

	companyLines := []string{doc.From.Name}
	if doc.From.Address != "" {
		companyLines = append(companyLines, singleLine(doc.From.Address))
	}

	passenger := rc.toParty("Passenger", p.Accent)
	passenger.Phone = ""

	blocks := []Block{
		headerBlock(&HeaderBlock{
			Title:        "Travel Invoice",
			TitleColor:   p.Accent,
			Logo:         rc.logoFor(),
			CompanyLines: companyLines,
			Meta: []LabelValue{
				{Value: "Ticket/Invoice # " + doc.InvoiceNumber, Emphasis: true},
				{Label: "Date:", Value: doc.InvoiceDate},
			},
			MetaAlign:   AlignRight,
			BorderColor: p.Accent,
		}),
		partiesBlock(&PartiesBlock{Columns: 1, Parties: []PartyBlock{passenger}}),
		tableBlock(rc.airlinesItemsTable()),
		totalsBlock(rc.airlinesTotals()),
	}

	if doc.Notes != "" {
		blocks = append(blocks, notesBlock(&NotesBlock{Text: doc.Notes, Background: p.LightBg}))
	}
	return rc.appendPaid(blocks, AlignRight)
}

func (rc *Context) airlinesItemsTable() *TableBlock {
	p := airlinesPalette
	cols, rows := rc.itemRows([]columnSpec{
		{Column{"Description", AlignLeft}, descCell},
		{Column{"Qty", AlignRight}, qtyCell},
		{Column{"Fare", AlignRight}, unitPriceCell},
		{Column{"Amount", AlignRight}, amountCell},
	})
	for i := range rows {
		if i%2 == 1 {
			rows[i].Background = subtleRowShade
		}
	}
	return &TableBlock{
		Title:            "Fare details",
		TitleColor:       p.Accent,
		Columns:          cols,
		Rows:             rows,
		HeaderBackground: p.HeaderBg,
		HeaderTextColor:  "#FFFFFF",
		BorderColor:      lightDivider,
		RowDividers:      true,
		RowPadding:       rc.Spacing.Row,
	}
}

func (rc *Context) airlinesTotals() *TotalsBlock {
	p := airlinesPalette
	var lines []TotalLine
	if rc.Totals.HasTax() {
		lines = append(lines, TotalLine{
			Label: rc.taxLabel("Taxes & fees"),
			Value: rc.Fmt.Format(rc.Totals.TaxAmount),
		})
	}
	lines = append(lines, TotalLine{
		Label:    "Total amount due",
		Value:    rc.Fmt.Format(rc.Totals.Total),
		Emphasis: true,
		Color:    p.Accent,
	})
	return &TotalsBlock{Lines: lines, Align: AlignRight}
}
