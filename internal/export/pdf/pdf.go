// Package pdf turns a rendered block layout into a PDF document. The
// exporter walks the same block sequence the preview serves, so the two
// surfaces always agree on content.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"invoicestudio/internal/domain"
	"invoicestudio/internal/render"
)

const (
	pageHeightMM = 297
	marginMM     = 12
	lineHeight   = 5.5
	rowPadding   = 2.2
)

var fontFamilies = map[domain.FontFamily]string{
	domain.FontSans:  "Helvetica",
	domain.FontSerif: "Times",
	domain.FontMono:  "Courier",
}

type exporter struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	family string
	accent rgb
	width  float64
}

type rgb struct{ r, g, b int }

var defaultText = rgb{38, 38, 38}
var mutedText = rgb{115, 115, 115}

// Export renders the layout to PDF bytes.
func Export(layout *render.Layout) ([]byte, error) {
	width := float64(layout.Frame.WidthMM)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: width, Ht: pageHeightMM},
	})
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(true, marginMM)
	pdf.AddPage()

	e := &exporter{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		family: fontFamilies[layout.Frame.FontFamily],
		accent: parseHex(layout.Frame.Accent, rgb{5, 150, 105}),
		width:  width - 2*marginMM,
	}
	if e.family == "" {
		e.family = "Helvetica"
	}

	gap := float64(layout.Frame.Spacing.Section) * 0.15
	for i, block := range layout.Blocks {
		if i > 0 {
			pdf.Ln(gap)
		}
		e.renderBlock(block)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *exporter) renderBlock(b render.Block) {
	switch b.Kind {
	case render.KindHeader:
		e.header(b.Header)
	case render.KindParties:
		e.parties(b.Parties)
	case render.KindPanel:
		e.panel(b.Panel)
	case render.KindTable:
		e.table(b.Table)
	case render.KindTotals:
		e.totals(b.Totals)
	case render.KindNotes:
		e.notes(b.Notes)
	case render.KindPaidNotice:
		e.paidNotice(b.Paid)
	}
}

func (e *exporter) header(h *render.HeaderBlock) {
	if h.Title != "" {
		color := parseHex(h.TitleColor, defaultText)
		e.setFont("B", 18, color)
		e.pdf.CellFormat(e.width, 9, e.tr(h.Title), "", 1, headerAlign(h.Arrangement), false, 0, "")
	}
	if h.Subtitle != "" {
		e.setFont("", 10, mutedText)
		e.pdf.CellFormat(e.width, lineHeight, e.tr(h.Subtitle), "", 1, headerAlign(h.Arrangement), false, 0, "")
	}
	for _, line := range h.CompanyLines {
		e.setFont("", 9, mutedText)
		e.pdf.CellFormat(e.width, lineHeight, e.tr(line), "", 1, headerAlign(h.Arrangement), false, 0, "")
	}
	for _, m := range h.Meta {
		e.labelValue(m, alignStr(h.MetaAlign))
	}
	if h.Party != nil {
		e.pdf.Ln(2)
		e.party(*h.Party, e.width)
	}
	if h.Panel != nil {
		e.pdf.Ln(2)
		e.panel(h.Panel)
	}
	if h.BorderColor != "" {
		e.rule(h.BorderColor, float64(maxInt(h.BorderWidth, 1))*0.25)
	}
}

func (e *exporter) parties(p *render.PartiesBlock) {
	for i, party := range p.Parties {
		if i > 0 {
			e.pdf.Ln(3)
		}
		e.party(party, e.width)
	}
}

func (e *exporter) party(p render.PartyBlock, width float64) {
	align := alignStr(p.Align)
	if p.Label != "" {
		e.setFont("B", 8, parseHex(p.LabelColor, mutedText))
		e.pdf.CellFormat(width, 4.5, e.tr(strings.ToUpper(p.Label)), "", 1, align, false, 0, "")
	}
	e.setFont("B", 10, defaultText)
	e.pdf.CellFormat(width, lineHeight, e.tr(p.Name), "", 1, align, false, 0, "")
	e.setFont("", 9, mutedText)
	for _, line := range strings.Split(p.Address, "\n") {
		if line == "" {
			continue
		}
		e.pdf.CellFormat(width, 4.5, e.tr(line), "", 1, align, false, 0, "")
	}
	if p.Email != "" {
		e.pdf.CellFormat(width, 4.5, e.tr(p.Email), "", 1, align, false, 0, "")
	}
	if p.Phone != "" {
		e.pdf.CellFormat(width, 4.5, e.tr(p.Phone), "", 1, align, false, 0, "")
	}
}

func (e *exporter) panel(p *render.PanelBlock) {
	if p.Background != "" {
		bg := parseHex(p.Background, rgb{245, 245, 245})
		e.pdf.SetFillColor(bg.r, bg.g, bg.b)
		height := float64(len(p.Items))*(lineHeight+1) + 4
		e.pdf.Rect(e.pdf.GetX(), e.pdf.GetY(), e.width, height, "F")
		e.pdf.Ln(2)
	}
	for _, item := range p.Items {
		e.labelValue(item, "L")
	}
	if p.Background != "" {
		e.pdf.Ln(2)
	}
}

func (e *exporter) labelValue(lv render.LabelValue, align string) {
	style := ""
	size := 9.0
	if lv.Emphasis {
		style = "B"
		size = 10
	}
	e.setFont(style, size, parseHex(lv.Color, defaultText))
	text := lv.Value
	if lv.Label != "" {
		text = lv.Label + " " + lv.Value
	}
	e.pdf.CellFormat(e.width, lineHeight+1, e.tr(text), "", 1, align, false, 0, "")
}

func (e *exporter) table(t *render.TableBlock) {
	if t.Title != "" {
		e.setFont("B", 10, parseHex(t.TitleColor, defaultText))
		if t.TitleBackground != "" {
			bg := parseHex(t.TitleBackground, rgb{245, 245, 245})
			e.pdf.SetFillColor(bg.r, bg.g, bg.b)
			e.pdf.CellFormat(e.width, 7, "  "+e.tr(t.Title), "", 1, "L", true, 0, "")
		} else {
			e.pdf.CellFormat(e.width, 7, e.tr(t.Title), "", 1, "L", false, 0, "")
		}
	}

	cellCount := tableCellCount(t)
	if cellCount == 0 {
		return
	}
	widths := e.columnWidths(t, cellCount)
	rowH := lineHeight + float64(t.RowPadding)*0.12 + rowPadding

	if len(t.Columns) > 0 {
		headerText := parseHex(t.HeaderTextColor, defaultText)
		fill := t.HeaderBackground != ""
		if fill {
			bg := parseHex(t.HeaderBackground, rgb{245, 245, 245})
			e.pdf.SetFillColor(bg.r, bg.g, bg.b)
		}
		e.setFont("B", 9, headerText)
		for i, col := range t.Columns {
			e.pdf.CellFormat(widths[i], rowH, e.tr(" "+col.Label+" "), "", 0, alignStr(col.Align), fill, 0, "")
		}
		e.pdf.Ln(rowH)
	}

	border := ""
	if t.RowDividers {
		border = "B"
		dc := parseHex(t.BorderColor, rgb{229, 229, 229})
		e.pdf.SetDrawColor(dc.r, dc.g, dc.b)
	}
	for _, row := range t.Rows {
		fill := row.Background != ""
		if fill {
			bg := parseHex(row.Background, rgb{250, 250, 250})
			e.pdf.SetFillColor(bg.r, bg.g, bg.b)
		}
		style := ""
		if row.Emphasis {
			style = "B"
		}
		e.setFont(style, 9, defaultText)
		for i, cell := range row.Cells {
			align := "L"
			if i < len(t.Columns) {
				align = alignStr(t.Columns[i].Align)
			} else if i == len(row.Cells)-1 {
				align = "R"
			}
			e.pdf.CellFormat(widths[i], rowH, e.tr(" "+cell+" "), border, 0, align, fill, 0, "")
		}
		e.pdf.Ln(rowH)
	}
}

func tableCellCount(t *render.TableBlock) int {
	if len(t.Columns) > 0 {
		return len(t.Columns)
	}
	if len(t.Rows) > 0 {
		return len(t.Rows[0].Cells)
	}
	return 0
}

// columnWidths gives the first column the slack left over after fixed
// numeric columns.
func (e *exporter) columnWidths(t *render.TableBlock, count int) []float64 {
	widths := make([]float64, count)
	if count == 1 {
		widths[0] = e.width
		return widths
	}
	numeric := e.width * 0.18
	if numeric > 34 {
		numeric = 34
	}
	for i := 1; i < count; i++ {
		widths[i] = numeric
	}
	widths[0] = e.width - numeric*float64(count-1)
	return widths
}

func (e *exporter) totals(t *render.TotalsBlock) {
	if t.BorderColor != "" {
		e.rule(t.BorderColor, 0.3)
	}
	labelW := e.width * 0.6
	valueW := e.width - labelW
	for _, line := range t.Lines {
		style := ""
		size := 9.0
		if line.Emphasis {
			style = "B"
			size = 10.5
		}
		fill := line.Background != ""
		if fill {
			bg := parseHex(line.Background, rgb{245, 245, 245})
			e.pdf.SetFillColor(bg.r, bg.g, bg.b)
		}
		e.setFont(style, size, parseHex(line.Color, defaultText))
		e.pdf.CellFormat(labelW, lineHeight+1.5, e.tr(line.Label), "", 0, "R", fill, 0, "")
		e.pdf.CellFormat(valueW, lineHeight+1.5, e.tr(line.Value), "", 1, "R", fill, 0, "")
	}
}

func (e *exporter) notes(n *render.NotesBlock) {
	if n.Label != "" {
		e.setFont("B", 8, parseHex(n.LabelColor, mutedText))
		e.pdf.CellFormat(e.width, 4.5, e.tr(strings.ToUpper(n.Label)), "", 1, "L", false, 0, "")
	}
	e.setFont("", 9, parseHex(n.Color, mutedText))
	e.pdf.MultiCell(e.width, 4.5, e.tr(n.Text), "", "L", false)
}

func (e *exporter) paidNotice(p *render.PaidNoticeBlock) {
	e.rule("#E5E5E5", 0.3)
	e.setFont("", 9, mutedText)
	e.pdf.CellFormat(e.width, lineHeight, e.tr(p.Text), "", 1, alignStr(p.Align), false, 0, "")
}

func (e *exporter) rule(color string, thickness float64) {
	c := parseHex(color, rgb{229, 229, 229})
	e.pdf.SetDrawColor(c.r, c.g, c.b)
	e.pdf.SetLineWidth(thickness)
	y := e.pdf.GetY() + 1
	e.pdf.Line(marginMM, y, marginMM+e.width, y)
	e.pdf.Ln(2.5)
}

func (e *exporter) setFont(style string, size float64, color rgb) {
	e.pdf.SetFont(e.family, style, size)
	e.pdf.SetTextColor(color.r, color.g, color.b)
}

func alignStr(a render.Align) string {
	switch a {
	case render.AlignCenter:
		return "C"
	case render.AlignRight:
		return "R"
	default:
		return "L"
	}
}

func headerAlign(style domain.HeaderStyle) string {
	if style == domain.HeaderLogoCentered {
		return "C"
	}
	return "L"
}

// parseHex decodes "#RRGGBB" (an optional trailing alpha pair is
// dropped), returning fallback on anything it cannot parse.
func parseHex(s string, fallback rgb) rgb {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 8 {
		s = s[:6]
	}
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return rgb{int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
