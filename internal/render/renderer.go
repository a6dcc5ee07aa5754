package render

import (
	"fmt"
	"strconv"
	"strings"

	"invoicestudio/internal/domain"
	"invoicestudio/internal/money"
)

// Layout is the fully rendered visual structure for one document. It is a
// pure function of (document, resolved design, totals): identical inputs
// always produce an identical layout.
type Layout struct {
	TemplateID domain.TemplateID    `json:"template_id"`
	Design     domain.InvoiceDesign `json:"design"`
	Frame      Frame                `json:"frame"`
	Blocks     []Block              `json:"blocks"`
}

// Frame carries page-level presentation: sheet width, typography, accent,
// resolved border color, and the density spacing scale.
type Frame struct {
	WidthMM     int               `json:"width_mm"`
	FontFamily  domain.FontFamily `json:"font_family"`
	Accent      string            `json:"accent"`
	BorderColor string            `json:"border_color,omitempty"`
	Spacing     Spacing           `json:"spacing"`
}

// Context is the shared input contract every variant constructor receives.
type Context struct {
	Doc    *domain.InvoiceData
	Design domain.InvoiceDesign
	Totals money.Totals
	Fmt    *money.Formatter

	Spacing Spacing
	Accent  string
	// BorderColor is empty when borderStyle=none; variants suppress
	// accent/neutral borders but may keep structural row dividers.
	BorderColor string
}

// VariantFunc builds the block sequence for one template variant.
type VariantFunc func(rc *Context) []Block

// Registry maps template ids to their layout constructors. Adding a
// template means registering one function; existing variants stay
// untouched.
type Registry struct {
	variants map[domain.TemplateID]VariantFunc
}

// NewRegistry builds the registry covering the full preset catalog. The
// standard, minimal, and receipt presets share the standard constructor:
// they differ only in design fields, which the standard variant honors.
func NewRegistry() *Registry {
	r := &Registry{variants: make(map[domain.TemplateID]VariantFunc)}
	r.Register(domain.TemplateStandard, standardVariant)
	r.Register(domain.TemplateMinimal, standardVariant)
	r.Register(domain.TemplateReceipt, standardVariant)
	r.Register(domain.TemplateAWS, awsVariant)
	r.Register(domain.TemplateSauceLabs, sauceLabsVariant)
	r.Register(domain.TemplateReadyAPI, readyAPIVariant)
	r.Register(domain.TemplateLambdaTest, lambdaTestVariant)
	r.Register(domain.TemplateHardware, hardwareVariant)
	r.Register(domain.TemplateGitHub, gitHubVariant)
	r.Register(domain.TemplateAtlassian, atlassianVariant)
	r.Register(domain.TemplateAirbnb, airbnbVariant)
	r.Register(domain.TemplateHomeDepot, homeDepotVariant)
	r.Register(domain.TemplateHotel, hotelVariant)
	r.Register(domain.TemplateAirlines, airlinesVariant)
	r.Register(domain.TemplateCarRental, carRentalVariant)
	return r
}

// Register binds a variant constructor to a template id.
func (r *Registry) Register(id domain.TemplateID, fn VariantFunc) {
	r.variants[id] = fn
}

// Render builds the layout for a document. An absent or unrecognized
// template id falls through to the standard variant; this is never an
// error.
func (r *Registry) Render(doc *domain.InvoiceData, dsg domain.InvoiceDesign, totals money.Totals) Layout {
	id := doc.TemplateID
	fn, ok := r.variants[id]
	if !ok {
		id = domain.TemplateStandard
		fn = standardVariant
	}

	rc := &Context{
		Doc:         doc,
		Design:      dsg,
		Totals:      totals,
		Fmt:         money.NewFormatter(doc.CurrencyOrDefault()),
		Spacing:     SpacingFor(dsg.Density),
		Accent:      accentFor(doc),
		BorderColor: borderColorFor(dsg.BorderStyle, accentFor(doc)),
	}

	widthMM := 210
	if doc.TemplateID == domain.TemplateReceipt {
		widthMM = 100
	}

	return Layout{
		TemplateID: id,
		Design:     dsg,
		Frame: Frame{
			WidthMM:     widthMM,
			FontFamily:  dsg.FontFamily,
			Accent:      rc.Accent,
			BorderColor: rc.BorderColor,
			Spacing:     rc.Spacing,
		},
		Blocks: fn(rc),
	}
}

func accentFor(doc *domain.InvoiceData) string {
	if doc.AccentColor != "" {
		return doc.AccentColor
	}
	return domain.DefaultAccentColor
}

// borderColorFor resolves the border treatment. none yields an empty color:
// accent and neutral borders are suppressed rather than painted transparent.
func borderColorFor(style domain.BorderStyle, accent string) string {
	switch style {
	case domain.BorderAccent:
		return accent
	case domain.BorderNeutral:
		return neutralBorder
	default:
		return ""
	}
}

// logoFor returns the header logo, or nil when the document has none.
func (rc *Context) logoFor() *Logo {
	if rc.Doc.Logo == "" {
		return nil
	}
	return &Logo{Ref: rc.Doc.Logo, Size: rc.Design.LogoSize}
}

// recipientName applies the explicit placeholder for a blank recipient.
func recipientName(name string) string {
	if name == "" {
		return "—"
	}
	return name
}

// numString renders quantities and tax rates the way the document stores
// them: no trailing zeros, no fixed precision.
func numString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// singleLine flattens a multi-line address for variants that show it inline.
func singleLine(address string) string {
	return strings.ReplaceAll(address, "\n", ", ")
}

// paidNotice builds the paid confirmation, or nil when the document is
// explicitly marked unpaid. The text interpolates the recipient name,
// falling back to "the client" when blank.
func (rc *Context) paidNotice(align Align) *Block {
	if !rc.Doc.IsPaid() {
		return nil
	}
	name := rc.Doc.To.Name
	if name == "" {
		name = "the client"
	}
	b := paidBlock(&PaidNoticeBlock{
		Text:  fmt.Sprintf("This invoice is full paid by %s.", name),
		Align: align,
	})
	return &b
}

// appendPaid appends the paid confirmation when it should render.
func (rc *Context) appendPaid(blocks []Block, align Align) []Block {
	if b := rc.paidNotice(align); b != nil {
		blocks = append(blocks, *b)
	}
	return blocks
}

// columnSpec pairs a column definition with its cell extractor.
type columnSpec struct {
	col  Column
	cell func(rc *Context, item domain.InvoiceLineItem) string
}

// Shared cell extractors. Every monetary cell goes through the document's
// formatter; no variant hand-formats currency.
func descCell(rc *Context, item domain.InvoiceLineItem) string {
	if item.Description == "" {
		return "—"
	}
	return item.Description
}

func qtyCell(_ *Context, item domain.InvoiceLineItem) string {
	return numString(item.Quantity)
}

func unitPriceCell(rc *Context, item domain.InvoiceLineItem) string {
	return rc.Fmt.FormatFloat(item.UnitPrice)
}

func amountCell(rc *Context, item domain.InvoiceLineItem) string {
	return rc.Fmt.FormatFloat(item.Amount)
}

// itemRows builds one row per line item using the given extractors.
func (rc *Context) itemRows(specs []columnSpec) ([]Column, []Row) {
	cols := make([]Column, len(specs))
	for i, s := range specs {
		cols[i] = s.col
	}
	rows := make([]Row, len(rc.Doc.Items))
	for i, item := range rc.Doc.Items {
		cells := make([]string, len(specs))
		for j, s := range specs {
			cells[j] = s.cell(rc, item)
		}
		rows[i] = Row{Cells: cells}
	}
	return cols, rows
}

// taxLabel renders "Tax (10%)"-style labels with the rate as stored.
func (rc *Context) taxLabel(prefix string) string {
	return fmt.Sprintf("%s (%s%%)", prefix, rc.Totals.TaxRate.String())
}

// fromParty builds the issuer party block; empty fields are suppressed by
// staying empty.
func (rc *Context) fromParty(label, labelColor string) PartyBlock {
	return PartyBlock{
		Label:      label,
		LabelColor: labelColor,
		Name:       rc.Doc.From.Name,
		Address:    rc.Doc.From.Address,
		Email:      rc.Doc.From.Email,
		Phone:      rc.Doc.From.Phone,
	}
}

// toParty builds the recipient party block with the blank-name placeholder.
func (rc *Context) toParty(label, labelColor string) PartyBlock {
	return PartyBlock{
		Label:      label,
		LabelColor: labelColor,
		Name:       recipientName(rc.Doc.To.Name),
		Address:    rc.Doc.To.Address,
		Email:      rc.Doc.To.Email,
		Phone:      rc.Doc.To.Phone,
	}
}
