// Package design resolves the effective invoice design from the system
// default, the selected template preset, and the per-document override.
package design

import "invoicestudio/internal/domain"

// Resolve merges a partial override into a base design, field by field.
// Every non-nil override field wins; absent fields fall back to the base.
// The merge is deliberately shallow: the design record is a flat set of
// eight independent fields, and generic deep-merge semantics would be
// wrong here.
func Resolve(base domain.InvoiceDesign, override *domain.DesignOverride) domain.InvoiceDesign {
	if override == nil {
		return base
	}
	out := base
	if override.Layout != nil {
		out.Layout = *override.Layout
	}
	if override.HeaderStyle != nil {
		out.HeaderStyle = *override.HeaderStyle
	}
	if override.TableStyle != nil {
		out.TableStyle = *override.TableStyle
	}
	if override.FontFamily != nil {
		out.FontFamily = *override.FontFamily
	}
	if override.Density != nil {
		out.Density = *override.Density
	}
	if override.ShowSectionLabels != nil {
		out.ShowSectionLabels = *override.ShowSectionLabels
	}
	if override.BorderStyle != nil {
		out.BorderStyle = *override.BorderStyle
	}
	if override.LogoSize != nil {
		out.LogoSize = *override.LogoSize
	}
	return out
}

// BaseFor returns the base design for a template selection: the preset's
// design when the id is cataloged, the system default otherwise. Unknown
// ids never fail; they fall through to the default design.
func BaseFor(id domain.TemplateID) domain.InvoiceDesign {
	if preset, ok := domain.PresetByID(id); ok {
		return preset.Design
	}
	return domain.DefaultDesign()
}

// EffectiveDesign resolves the fully-populated design for one document.
// Precedence, low to high: system default, selected preset, per-document
// override.
func EffectiveDesign(doc *domain.InvoiceData) domain.InvoiceDesign {
	return Resolve(BaseFor(doc.TemplateID), doc.Design)
}

// ApplyTemplate selects a template on the document. A cataloged id replaces
// the per-document override entirely (prior manual customization is
// intentionally discarded) and records the id. An unknown id is a no-op.
// Returns whether the document changed.
func ApplyTemplate(doc *domain.InvoiceData, id domain.TemplateID) bool {
	if _, ok := domain.PresetByID(id); !ok {
		return false
	}
	doc.TemplateID = id
	doc.Design = nil
	return true
}
