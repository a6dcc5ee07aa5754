package render

// carRentalVariant renders the vehicle rental invoice: a teal header
// card, a Renter block, and a "Rental charges" table closed by a "Total
// due" line.
func carRentalVariant(rc *Context) []Block {
	doc := rc.Doc
	p := carRentalPalette

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
				{Value: "Invoice # " + doc.InvoiceNumber, Emphasis: true},
				{Label: "Date:", Value: doc.InvoiceDate},
				{Label: "Due:", Value: doc.DueDate},
			},
			MetaAlign:  AlignRight,
			Background: p.LightBg,
		}),
		partiesBlock(&PartiesBlock{
			Columns: 1,
			Parties: []PartyBlock{rc.toParty("Renter", p.Accent)},
		}),
		tableBlock(rc.brandedChargesTable("Rental charges", p)),
		totalsBlock(rc.brandedTotals("Total due", p)),
	}

	if doc.Notes != "" {
		blocks = append(blocks, notesBlock(&NotesBlock{Text: doc.Notes, Background: p.LightBg}))
	}
	return rc.appendPaid(blocks, AlignRight)
}
