package render

// hotelVariant renders the stay folio: a slate-blue header card, a Guest
// block, and a "Stay charges" table. The total line names the currency.
func hotelVariant(rc *Context) []Block {
	doc := rc.Doc
	p := hotelPalette

	companyLines := []string{doc.From.Name}
	if doc.From.Address != "" {
		companyLines = append(companyLines, singleLine(doc.From.Address))
	}

	blocks := []Block{
		headerBlock(&HeaderBlock{
			Title:        "Hotel Invoice",
			TitleColor:   p.Accent,
			Logo:         rc.logoFor(),
			CompanyLines: companyLines,
			Meta: []LabelValue{
				{Value: "Invoice # " + doc.InvoiceNumber, Emphasis: true},
				{Label: "Date:", Value: doc.InvoiceDate},
				{Label: "Due:", Value: doc.DueDate},
			},
			MetaAlign:  AlignRight,
			Background: p.LightBg,
		}),
		partiesBlock(&PartiesBlock{
			Columns: 1,
			Parties: []PartyBlock{rc.toParty("Guest", p.Accent)},
		}),
		tableBlock(rc.brandedChargesTable("Stay charges", p)),
		totalsBlock(rc.brandedTotals("Total ("+rc.Fmt.Code()+")", p)),
	}

	if doc.Notes != "" {
		blocks = append(blocks, notesBlock(&NotesBlock{Text: doc.Notes, Background: p.LightBg}))
	}
	return rc.appendPaid(blocks, AlignCenter)
}

// brandedChargesTable is the shared Description/Qty/Rate/Amount table used
// by the hospitality variants, titled and tinted per palette.
func (rc *Context) brandedChargesTable(title string, p palette) *TableBlock {
	cols, rows := rc.itemRows([]columnSpec{
		{Column{"Description", AlignLeft}, descCell},
		{Column{"Qty", AlignRight}, qtyCell},
		{Column{"Rate", AlignRight}, unitPriceCell},
		{Column{"Amount", AlignRight}, amountCell},
	})
	return &TableBlock{
		Title:            title,
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

// brandedTotals is the tax-then-total pair the hospitality variants close
// with; there is no subtotal line.
func (rc *Context) brandedTotals(totalLabel string, p palette) *TotalsBlock {
	var lines []TotalLine
	if rc.Totals.HasTax() {
		lines = append(lines, TotalLine{
			Label: rc.taxLabel("Tax"),
			Value: rc.Fmt.Format(rc.Totals.TaxAmount),
		})
	}
	lines = append(lines, TotalLine{
		Label:    totalLabel,
		Value:    rc.Fmt.Format(rc.Totals.Total),
		Emphasis: true,
		Color:    p.Accent,
	})
	return &TotalsBlock{Lines: lines, Align: AlignRight}
}
