package domain

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceParty is either the issuer ("From") or the recipient ("Bill To").
// Parties carry no identity beyond their fields and are copied by value.
type InvoiceParty struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// InvoiceLineItem is one billable row. Amount is a derived field kept equal
// to Quantity*UnitPrice by the editing path; the renderer and calculator
// read it as stored and never re-derive it.
type InvoiceLineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// InvoiceDesign is the fully-populated design configuration. Every field is
// independently meaningful; no field implies another.
type InvoiceDesign struct {
	Layout            Layout      `json:"layout"`
	HeaderStyle       HeaderStyle `json:"header_style"`
	TableStyle        TableStyle  `json:"table_style"`
	FontFamily        FontFamily  `json:"font_family"`
	Density           Density     `json:"density"`
	ShowSectionLabels bool        `json:"show_section_labels"`
	BorderStyle       BorderStyle `json:"border_style"`
	LogoSize          LogoSize    `json:"logo_size"`
}

// DesignOverride is a partial InvoiceDesign. Nil fields fall back to the
// base design during resolution; the merge is shallow and field-by-field.
type DesignOverride struct {
	Layout            *Layout      `json:"layout,omitempty"`
	HeaderStyle       *HeaderStyle `json:"header_style,omitempty"`
	TableStyle        *TableStyle  `json:"table_style,omitempty"`
	FontFamily        *FontFamily  `json:"font_family,omitempty"`
	Density           *Density     `json:"density,omitempty"`
	ShowSectionLabels *bool        `json:"show_section_labels,omitempty"`
	BorderStyle       *BorderStyle `json:"border_style,omitempty"`
	LogoSize          *LogoSize    `json:"logo_size,omitempty"`
}

// TemplatePreset is a named, catalog-fixed, complete design configuration.
type TemplatePreset struct {
	ID          TemplateID    `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Design      InvoiceDesign `json:"design"`
}

// InvoiceData is the normalized invoice document. It is replaced wholesale
// on every edit and exists only for the duration of a client session.
type InvoiceData struct {
	InvoiceNumber  string            `json:"invoice_number"`
	InvoiceDate    string            `json:"invoice_date"`
	DueDate        string            `json:"due_date"`
	From           InvoiceParty      `json:"from"`
	To             InvoiceParty      `json:"to"`
	Items          []InvoiceLineItem `json:"items"`
	TaxRate        float64           `json:"tax_rate"`
	Notes          string            `json:"notes"`
	Currency       string            `json:"currency,omitempty"`
	Logo           string            `json:"logo,omitempty"`
	AccentColor    string            `json:"accent_color,omitempty"`
	SecondaryColor string            `json:"secondary_color,omitempty"`
	Design         *DesignOverride   `json:"design,omitempty"`
	TemplateID     TemplateID        `json:"template_id,omitempty"`
	PONumber       string            `json:"po_number,omitempty"`
	// Paid is a tri-state flag: nil and true both render the paid
	// confirmation; only an explicit false suppresses it.
	Paid *bool `json:"paid,omitempty"`
}

// IsPaid reports whether the paid confirmation should render.
func (d *InvoiceData) IsPaid() bool {
	return d.Paid == nil || *d.Paid
}

// CurrencyOrDefault returns the document currency, defaulting to USD.
func (d *InvoiceData) CurrencyOrDefault() string {
	if d.Currency == "" {
		return DefaultCurrency
	}
	return d.Currency
}

// Clone returns a deep copy of the document. Edits operate on copies so a
// stored document is never mutated in place.
func (d *InvoiceData) Clone() *InvoiceData {
	out := *d
	out.Items = make([]InvoiceLineItem, len(d.Items))
	copy(out.Items, d.Items)
	if d.Design != nil {
		ov := *d.Design
		out.Design = &ov
	}
	if d.Paid != nil {
		p := *d.Paid
		out.Paid = &p
	}
	return &out
}

// Session binds a document to one editing session.
type Session struct {
	ID        uuid.UUID    `json:"id"`
	Document  *InvoiceData `json:"document"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
