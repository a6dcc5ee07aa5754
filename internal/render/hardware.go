package render

import "strings"

// hardwareVariant renders the equipment-order invoice: an INVOICE
// masthead with issuer lines on the left, recipient plus a detailed meta
// column on the right, and an amount-due line repeated under the total.
// It is the only variant that surfaces the purchase order number.
func hardwareVariant(rc *Context) []Block {
	doc := rc.Doc
	amountDueLabel := "Amount Due (" + rc.Fmt.Code() + "):"

	po := doc.PONumber
	if po == "" {
		po = "—"
	}

	toParty := rc.toParty("BILL TO", "")
	toParty.Align = AlignRight

	companyLines := []string{doc.From.Name}
	if doc.From.Address != "" {
		companyLines = append(companyLines, strings.Split(doc.From.Address, "\n")...)
	}
	if doc.From.Phone != "" {
		companyLines = append(companyLines, doc.From.Phone)
	}

	blocks := []Block{
		headerBlock(&HeaderBlock{
			Title:        "INVOICE",
			Logo:         rc.logoFor(),
			CompanyLines: companyLines,
			Party:        &toParty,
			Meta: []LabelValue{
				{Label: "Invoice Number:", Value: doc.InvoiceNumber},
				{Label: "P.O./S.O. Number:", Value: po},
				{Label: "Invoice Date:", Value: doc.InvoiceDate},
				{Label: "Payment Due:", Value: doc.DueDate},
				{Label: amountDueLabel, Value: rc.Fmt.Format(rc.Totals.Total), Emphasis: true},
			},
			MetaAlign:   AlignRight,
			BorderColor: lightDivider,
		}),
		tableBlock(rc.hardwareItemsTable()),
		totalsBlock(&TotalsBlock{
			Align:       AlignRight,
			BorderColor: neutralBorder,
			Lines: []TotalLine{
				{Label: "Total:", Value: rc.Fmt.Format(rc.Totals.Total), Emphasis: true},
				{Label: amountDueLabel, Value: rc.Fmt.Format(rc.Totals.Total), Emphasis: true},
			},
		}),
	}
	return rc.appendPaid(blocks, AlignRight)
}

func (rc *Context) hardwareItemsTable() *TableBlock {
	cols, rows := rc.itemRows([]columnSpec{
		{Column{"Items", AlignLeft}, descCell},
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
