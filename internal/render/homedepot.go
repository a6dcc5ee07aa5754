package render

import "invoicestudio/internal/domain"

// homeDepotVariant renders the retail receipt: everything in the masthead
// is centered under the logo, a thick orange rule closes the header, and
// the items table uses the orange retail header.
func homeDepotVariant(rc *Context) []Block {
	doc := rc.Doc
	p := homeDepotPalette

	var companyLines []string
	if doc.From.Address != "" {
		companyLines = append(companyLines, singleLine(doc.From.Address))
	}
	if doc.From.Phone != "" {
		companyLines = append(companyLines, doc.From.Phone)
	}

	blocks := []Block{
		headerBlock(&HeaderBlock{
			Arrangement:  domain.HeaderLogoCentered,
			Title:        doc.From.Name,
			TitleColor:   p.Accent,
			Logo:         rc.logoFor(),
			CompanyLines: companyLines,
			Meta: []LabelValue{
				{Label: "Invoice:", Value: doc.InvoiceNumber, Color: p.Dark},
				{Label: "Date:", Value: doc.InvoiceDate, Color: p.Dark},
				{Label: "Due:", Value: doc.DueDate, Color: p.Dark},
			},
			MetaAlign:   AlignCenter,
			BorderColor: p.Accent,
			BorderWidth: 4,
		}),
		partiesBlock(&PartiesBlock{
			Columns: 2,
			Parties: []PartyBlock{rc.toParty("Sold to", p.Accent)},
		}),
		tableBlock(rc.homeDepotItemsTable()),
		totalsBlock(&TotalsBlock{
			Align:       AlignRight,
			BorderColor: p.Accent,
			Lines: []TotalLine{
				{Label: "TOTAL DUE", Value: rc.Fmt.Format(rc.Totals.Total), Emphasis: true, Color: p.Accent},
			},
		}),
	}

	if doc.Notes != "" {
		blocks = append(blocks, notesBlock(&NotesBlock{Text: doc.Notes, Bordered: true}))
	}
	return rc.appendPaid(blocks, AlignCenter)
}

func (rc *Context) homeDepotItemsTable() *TableBlock {
	p := homeDepotPalette
	cols, rows := rc.itemRows([]columnSpec{
		{Column{"Item", AlignLeft}, descCell},
		{Column{"Qty", AlignRight}, qtyCell},
		{Column{"Price", AlignRight}, unitPriceCell},
		{Column{"Total", AlignRight}, amountCell},
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
