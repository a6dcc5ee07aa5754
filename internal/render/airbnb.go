package render

// airbnbVariant renders the short-stay rental invoice: a coral-tinted
// header card, a Guest block, a "Booking details" table with a coral
// header, and a highlighted total band. There is no subtotal line; the
// tax row leads straight into the total.
func airbnbVariant(rc *Context) []Block {
	doc := rc.Doc
	p := airbnbPalette

	companyLines := []string{doc.From.Name}
	if doc.From.Address != "" {
		companyLines = append(companyLines, singleLine(doc.From.Address))
	}

	blocks := []Block{
		headerBlock(&HeaderBlock{
			Title:        "Rental Invoice",
			TitleColor:   p.Accent,
			Logo:         rc.logoFor(),
			CompanyLines: companyLines,
			Meta: []LabelValue{
				{Value: "Invoice #" + doc.InvoiceNumber, Emphasis: true},
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
		tableBlock(rc.airbnbItemsTable()),
		totalsBlock(rc.airbnbTotals()),
	}

	if doc.Notes != "" {
		blocks = append(blocks, notesBlock(&NotesBlock{
			Text:       doc.Notes,
			Background: p.LightBg,
		}))
	}
	return rc.appendPaid(blocks, AlignCenter)
}

func (rc *Context) airbnbItemsTable() *TableBlock {
	p := airbnbPalette
	cols, rows := rc.itemRows([]columnSpec{
		{Column{"Description", AlignLeft}, descCell},
		{Column{"Qty", AlignRight}, qtyCell},
		{Column{"Rate", AlignRight}, unitPriceCell},
		{Column{"Amount", AlignRight}, amountCell},
	})
	return &TableBlock{
		Title:            "Booking details",
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

func (rc *Context) airbnbTotals() *TotalsBlock {
	p := airbnbPalette
	var lines []TotalLine
	if rc.Totals.HasTax() {
		lines = append(lines, TotalLine{
			Label: rc.taxLabel("Tax"),
			Value: rc.Fmt.Format(rc.Totals.TaxAmount),
		})
	}
	lines = append(lines, TotalLine{
		Label:      "Total (" + rc.Fmt.Code() + ")",
		Value:      rc.Fmt.Format(rc.Totals.Total),
		Emphasis:   true,
		Color:      p.Accent,
		Background: p.LightBg,
	})
	return &TotalsBlock{Lines: lines, Align: AlignRight}
}
