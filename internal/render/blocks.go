// Package render turns a document, its resolved design, and its computed
// totals into a semantic block layout. The layout is a pure description of
// the visual structure; print and export collaborators consume it without
// the renderer knowing how it is rasterized.
package render

import "invoicestudio/internal/domain"

// Align is a horizontal alignment hint.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// BlockKind discriminates the payload carried by a Block.
type BlockKind string

const (
	KindHeader     BlockKind = "header"
	KindParties    BlockKind = "parties"
	KindPanel      BlockKind = "panel"
	KindTable      BlockKind = "table"
	KindTotals     BlockKind = "totals"
	KindNotes      BlockKind = "notes"
	KindPaidNotice BlockKind = "paid_notice"
)

// Block is one section of the rendered invoice. Exactly one payload field
// is set, matching Kind.
type Block struct {
	Kind    BlockKind        `json:"kind"`
	Header  *HeaderBlock     `json:"header,omitempty"`
	Parties *PartiesBlock    `json:"parties,omitempty"`
	Panel   *PanelBlock      `json:"panel,omitempty"`
	Table   *TableBlock      `json:"table,omitempty"`
	Totals  *TotalsBlock     `json:"totals,omitempty"`
	Notes   *NotesBlock      `json:"notes,omitempty"`
	Paid    *PaidNoticeBlock `json:"paid,omitempty"`
}

// LabelValue is one labeled line of text.
type LabelValue struct {
	Label    string `json:"label,omitempty"`
	Value    string `json:"value"`
	Emphasis bool   `json:"emphasis,omitempty"`
	Color    string `json:"color,omitempty"`
}

// Logo references the document's logo data URL with its rendered size.
type Logo struct {
	Ref  string          `json:"ref"`
	Size domain.LogoSize `json:"size"`
}

// HeaderBlock is the invoice header: logo, title, issuer lines, and
// right-hand metadata. Branded variants may also embed a party block (for
// example AWS places Bill To in the header) or an info panel (the AWS
// invoice summary box).
type HeaderBlock struct {
	Arrangement  domain.HeaderStyle `json:"arrangement"`
	Title        string             `json:"title"`
	TitleColor   string             `json:"title_color,omitempty"`
	Subtitle     string             `json:"subtitle,omitempty"`
	Logo         *Logo              `json:"logo,omitempty"`
	CompanyLines []string           `json:"company_lines,omitempty"`
	Meta         []LabelValue       `json:"meta,omitempty"`
	MetaAlign    Align              `json:"meta_align,omitempty"`
	Party        *PartyBlock        `json:"party,omitempty"`
	Panel        *PanelBlock        `json:"panel,omitempty"`
	Background   string             `json:"background,omitempty"`
	BorderColor  string             `json:"border_color,omitempty"`
	BorderWidth  int                `json:"border_width,omitempty"`
}

// PartyBlock is one labeled party (From, Bill To, Guest, Passenger...).
// Empty optional fields mean the corresponding fragment is suppressed
// entirely; Name carries the explicit placeholder when the recipient name
// is blank.
type PartyBlock struct {
	Label      string `json:"label,omitempty"`
	LabelColor string `json:"label_color,omitempty"`
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Align      Align  `json:"align,omitempty"`
}

// PartiesBlock arranges one or more party blocks side by side.
type PartiesBlock struct {
	Parties []PartyBlock `json:"parties"`
	Columns int          `json:"columns"`
}

// PanelBlock is a tinted grid of labeled values (invoice summary boxes,
// subscription terms rows).
type PanelBlock struct {
	Items      []LabelValue `json:"items"`
	Columns    int          `json:"columns"`
	Background string       `json:"background,omitempty"`
}

// Column describes one line-item table column.
type Column struct {
	Label string `json:"label"`
	Align Align  `json:"align"`
}

// Row is one table row. A non-empty Background shades the row.
type Row struct {
	Cells      []string `json:"cells"`
	Background string   `json:"background,omitempty"`
	Emphasis   bool     `json:"emphasis,omitempty"`
}

// TableBlock is the line-item table (or a branded summary table). A nil
// Columns slice means the table renders without a column header row.
type TableBlock struct {
	Title            string            `json:"title,omitempty"`
	TitleColor       string            `json:"title_color,omitempty"`
	TitleBackground  string            `json:"title_background,omitempty"`
	Columns          []Column          `json:"columns,omitempty"`
	Rows             []Row             `json:"rows"`
	Style            domain.TableStyle `json:"style"`
	HeaderBackground string            `json:"header_background,omitempty"`
	HeaderTextColor  string            `json:"header_text_color,omitempty"`
	BorderColor      string            `json:"border_color,omitempty"`
	RowDividers      bool              `json:"row_dividers"`
	RowPadding       int               `json:"row_padding"`
}

// TotalLine is one line of the totals block.
type TotalLine struct {
	Label      string `json:"label"`
	Value      string `json:"value"`
	Emphasis   bool   `json:"emphasis,omitempty"`
	Color      string `json:"color,omitempty"`
	Background string `json:"background,omitempty"`
}

// TotalsBlock is the subtotal/tax/total summary.
type TotalsBlock struct {
	Lines       []TotalLine `json:"lines"`
	Align       Align       `json:"align"`
	BorderColor string      `json:"border_color,omitempty"`
}

// NotesBlock carries free-form notes or a variant's fallback line.
type NotesBlock struct {
	Label      string `json:"label,omitempty"`
	LabelColor string `json:"label_color,omitempty"`
	Text       string `json:"text"`
	Color      string `json:"color,omitempty"`
	Background string `json:"background,omitempty"`
	AccentBar  bool   `json:"accent_bar,omitempty"`
	Bordered   bool   `json:"bordered,omitempty"`
}

// PaidNoticeBlock is the paid confirmation. It renders only when the
// document is not explicitly marked unpaid.
type PaidNoticeBlock struct {
	Text  string `json:"text"`
	Align Align  `json:"align"`
}

func headerBlock(h *HeaderBlock) Block   { return Block{Kind: KindHeader, Header: h} }
func partiesBlock(p *PartiesBlock) Block { return Block{Kind: KindParties, Parties: p} }
func panelBlock(p *PanelBlock) Block     { return Block{Kind: KindPanel, Panel: p} }
func tableBlock(t *TableBlock) Block     { return Block{Kind: KindTable, Table: t} }
func totalsBlock(t *TotalsBlock) Block   { return Block{Kind: KindTotals, Totals: t} }
func notesBlock(n *NotesBlock) Block     { return Block{Kind: KindNotes, Notes: n} }
func paidBlock(p *PaidNoticeBlock) Block { return Block{Kind: KindPaidNotice, Paid: p} }
