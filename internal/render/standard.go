package render

import "invoicestudio/internal/domain"

// standardVariant is the design-driven layout. It is the only variant that
// honors every design field; it also backs the minimal and receipt presets
// and serves as the fallback for unrecognized template ids.
func standardVariant(rc *Context) []Block {
	d := rc.Design
	modern := d.Layout == domain.LayoutModern
	minimal := d.Layout == domain.LayoutMinimal

	header := &HeaderBlock{
		Arrangement: d.HeaderStyle,
		Title:       "INVOICE",
		TitleColor:  rc.Accent,
		Subtitle:    "#" + rc.Doc.InvoiceNumber,
		Logo:        rc.logoFor(),
		Meta: []LabelValue{
			{Label: "Invoice Date:", Value: rc.Doc.InvoiceDate},
			{Label: "Due Date:", Value: rc.Doc.DueDate},
		},
		MetaAlign:   AlignRight,
		BorderColor: rc.BorderColor,
	}
	switch d.HeaderStyle {
	case domain.HeaderLogoCentered:
		header.MetaAlign = AlignCenter
	case domain.HeaderLogoRight:
		header.MetaAlign = AlignLeft
	}
	if modern {
		header.Background = rc.Accent + "12"
	}

	fromLabel, toLabel := "", ""
	if d.ShowSectionLabels {
		fromLabel, toLabel = "From", "Bill To"
	}
	parties := &PartiesBlock{
		Columns: 2,
		Parties: []PartyBlock{
			rc.fromParty(fromLabel, ""),
			rc.toParty(toLabel, ""),
		},
	}

	blocks := []Block{
		headerBlock(header),
		partiesBlock(parties),
		tableBlock(rc.standardItemsTable()),
		totalsBlock(rc.standardTotals()),
	}

	if rc.Doc.Notes != "" {
		notes := &NotesBlock{Text: rc.Doc.Notes}
		if !minimal {
			notes.Background = rc.Accent + "08"
			notes.AccentBar = true
			if d.ShowSectionLabels {
				notes.Label = "Notes"
				notes.LabelColor = rc.Accent
			}
		}
		blocks = append(blocks, notesBlock(notes))
	}

	return rc.appendPaid(blocks, AlignCenter)
}

// standardItemsTable applies the tableStyle to the shared four columns.
// Striped shades odd rows; bordered draws the resolved border color;
// structural dividers stay on light neutrals even when borderStyle=none.
func (rc *Context) standardItemsTable() *TableBlock {
	cols, rows := rc.itemRows([]columnSpec{
		{Column{"Description", AlignLeft}, descCell},
		{Column{"Qty", AlignRight}, qtyCell},
		{Column{"Unit Price", AlignRight}, unitPriceCell},
		{Column{"Amount", AlignRight}, amountCell},
	})

	t := &TableBlock{
		Columns:     cols,
		Rows:        rows,
		Style:       rc.Design.TableStyle,
		RowDividers: true,
		RowPadding:  rc.Spacing.Row,
	}
	switch rc.Design.TableStyle {
	case domain.TableStriped:
		for i := range t.Rows {
			if i%2 == 1 {
				t.Rows[i].Background = subtleRowShade
			}
		}
		t.RowDividers = false
		t.BorderColor = rc.BorderColor
	case domain.TableBordered:
		t.BorderColor = rc.BorderColor
		if t.BorderColor == "" {
			t.BorderColor = lightDivider
		}
	default:
		t.BorderColor = subtleDivider
	}
	return t
}

// standardTotals builds Subtotal, the conditional tax line, and the
// accent-colored Total.
func (rc *Context) standardTotals() *TotalsBlock {
	lines := []TotalLine{
		{Label: "Subtotal", Value: rc.Fmt.Format(rc.Totals.Subtotal)},
	}
	if rc.Totals.HasTax() {
		lines = append(lines, TotalLine{
			Label: rc.taxLabel("Tax"),
			Value: rc.Fmt.Format(rc.Totals.TaxAmount),
		})
	}
	lines = append(lines, TotalLine{
		Label:    "Total",
		Value:    rc.Fmt.Format(rc.Totals.Total),
		Emphasis: true,
		Color:    rc.Accent,
	})

	border := rc.BorderColor
	if border == "" {
		border = lightDivider
	}
	return &TotalsBlock{Lines: lines, Align: AlignRight, BorderColor: border}
}
