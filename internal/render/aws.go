package render

// awsVariant renders the cloud-billing statement: a summary table of
// charge categories, then an itemized detail table, both under light blue
// section title bars with orange-tinted rows.
func awsVariant(rc *Context) []Block {
	doc := rc.Doc
	p := awsPalette

	blocks := []Block{
		headerBlock(&HeaderBlock{
			Title:       doc.From.Name + " Invoice",
			Logo:        rc.logoFor(),
			Party:       ptr(rc.toParty("Bill to", "")),
			MetaAlign:   AlignRight,
			BorderColor: lightDivider,
			Panel: &PanelBlock{
				Background: p.HeaderBg,
				Columns:    1,
				Items: []LabelValue{
					{Label: "Invoice number:", Value: doc.InvoiceNumber},
					{Label: "Invoice date:", Value: doc.InvoiceDate},
					{Label: "Total due:", Value: rc.Fmt.Format(rc.Totals.Total), Emphasis: true},
					{Label: "Due date:", Value: doc.DueDate},
				},
			},
		}),
		tableBlock(rc.awsSummaryTable()),
		tableBlock(rc.awsDetailTable()),
	}

	if doc.Notes != "" {
		blocks = append(blocks, notesBlock(&NotesBlock{
			Label:      "Notes",
			Text:       doc.Notes,
			Background: p.HeaderBg,
		}))
	}
	return rc.appendPaid(blocks, AlignRight)
}

// awsSummaryTable aggregates charges into category rows; it has no column
// headers, only the Summary title bar.
func (rc *Context) awsSummaryTable() *TableBlock {
	p := awsPalette
	rows := []Row{
		{Cells: []string{"Service charges", rc.Fmt.Format(rc.Totals.Subtotal)}, Background: p.RowShade},
	}
	if rc.Totals.HasTax() {
		rows = append(rows, Row{
			Cells:      []string{rc.taxLabel("Tax"), rc.Fmt.Format(rc.Totals.TaxAmount)},
			Background: p.RowShade,
		})
	}
	rows = append(rows, Row{
		Cells:      []string{"Total for this invoice", rc.Fmt.Format(rc.Totals.Total)},
		Background: p.LightBg,
		Emphasis:   true,
	})
	return &TableBlock{
		Title:           "Summary",
		TitleBackground: p.HeaderBg,
		Rows:            rows,
		BorderColor:     lightDivider,
		RowDividers:     true,
		RowPadding:      rc.Spacing.Row,
	}
}

// awsDetailTable is the itemized table; even rows carry the orange shade.
func (rc *Context) awsDetailTable() *TableBlock {
	p := awsPalette
	cols, rows := rc.itemRows([]columnSpec{
		{Column{"Description", AlignLeft}, descCell},
		{Column{"Qty", AlignRight}, qtyCell},
		{Column{"Unit Price", AlignRight}, unitPriceCell},
		{Column{"Amount", AlignRight}, amountCell},
	})
	for i := range rows {
		if i%2 == 0 {
			rows[i].Background = p.RowShade
		}
	}
	return &TableBlock{
		Title:            "Detail",
		TitleBackground:  p.HeaderBg,
		Columns:          cols,
		Rows:             rows,
		HeaderBackground: p.HeaderBg,
		BorderColor:      lightDivider,
		RowDividers:      true,
		RowPadding:       rc.Spacing.Row,
	}
}

func ptr[T any](v T) *T { return &v }
