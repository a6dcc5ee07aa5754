package render

import "fmt"

// readyAPIVariant renders the terse tools-vendor layout: items first,
// parties after the table, and a billing-period sentence standing in for
// absent notes.
func readyAPIVariant(rc *Context) []Block {
	doc := rc.Doc

	blocks := []Block{
		headerBlock(&HeaderBlock{
			Title: doc.From.Name,
			Logo:  rc.logoFor(),
			Meta: []LabelValue{
				{Label: "Date:", Value: doc.InvoiceDate},
				{Value: "INVOICE", Emphasis: true},
				{Label: "No.", Value: "#" + doc.InvoiceNumber},
			},
			MetaAlign:   AlignRight,
			BorderColor: lightDivider,
		}),
		tableBlock(rc.readyAPIItemsTable()),
		totalsBlock(&TotalsBlock{
			Align:       AlignRight,
			BorderColor: neutralBorder,
			Lines: []TotalLine{
				{Label: "Total", Value: rc.Fmt.Format(rc.Totals.Total), Emphasis: true},
			},
		}),
		partiesBlock(&PartiesBlock{
			Columns: 2,
			Parties: []PartyBlock{
				rc.readyAPIFromParty(),
				rc.toParty("Bill to:", ""),
			},
		}),
	}

	// Absent notes fall back to a billing-period line covering the
	// invoice and due dates.
	text := doc.Notes
	if text == "" {
		text = fmt.Sprintf("This invoice is for the billing period %s to %s", doc.InvoiceDate, doc.DueDate)
	}
	blocks = append(blocks, notesBlock(&NotesBlock{Text: text}))

	return rc.appendPaid(blocks, AlignCenter)
}

// readyAPIFromParty prefixes contact lines the way the original does.
func (rc *Context) readyAPIFromParty() PartyBlock {
	p := rc.fromParty("", "")
	if p.Phone != "" {
		p.Phone = "Tel: " + p.Phone
	}
	if p.Email != "" {
		p.Email = "Email: " + p.Email
	}
	return p
}

func (rc *Context) readyAPIItemsTable() *TableBlock {
	cols, rows := rc.itemRows([]columnSpec{
		{Column{"Item", AlignLeft}, descCell},
		{Column{"Quantity", AlignRight}, qtyCell},
		{Column{"Price", AlignRight}, unitPriceCell},
		{Column{"Amount", AlignRight}, amountCell},
	})
	return &TableBlock{
		Columns:     cols,
		Rows:        rows,
		BorderColor: neutralBorder,
		RowDividers: true,
		RowPadding:  rc.Spacing.Row,
	}
}
