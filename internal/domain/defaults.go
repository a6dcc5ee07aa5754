package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is used when the document carries no currency code.
const DefaultCurrency = "USD"

// DefaultAccentColor is the fallback brand color (emerald).
const DefaultAccentColor = "#059669"

// DefaultDesign is the system-wide baseline design. Every field has a
// default so the resolved design is always fully populated.
func DefaultDesign() InvoiceDesign {
	return InvoiceDesign{
		Layout:            LayoutClassic,
		HeaderStyle:       HeaderLogoLeft,
		TableStyle:        TableBordered,
		FontFamily:        FontSans,
		Density:           DensityStandard,
		ShowSectionLabels: true,
		BorderStyle:       BorderAccent,
		LogoSize:          LogoMedium,
	}
}

// NewDefaultInvoice builds the hard-coded session-start document. The clock
// is injected so the invoice and due dates are reproducible in tests.
func NewDefaultInvoice(now time.Time) *InvoiceData {
	paid := true
	return &InvoiceData{
		InvoiceNumber: "INV-001",
		InvoiceDate:   now.Format("2006-01-02"),
		DueDate:       now.AddDate(0, 0, 30).Format("2006-01-02"),
		From: InvoiceParty{
			Name:    "Your Company Name",
			Address: "123 Business St\nCity, State 12345",
			Email:   "billing@company.com",
			Phone:   "+1 (555) 123-4567",
		},
		To: InvoiceParty{},
		Items: []InvoiceLineItem{
			{
				ID:          uuid.New().String(),
				Description: "Professional services",
				Quantity:    1,
				UnitPrice:   0,
				Amount:      0,
			},
		},
		TaxRate:  0,
		Notes:    "",
		Currency: DefaultCurrency,
		Paid:     &paid,
	}
}
