package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"invoicestudio/internal/branding"
	"invoicestudio/internal/design"
	"invoicestudio/internal/domain"
	"invoicestudio/internal/money"
	"invoicestudio/internal/port"
	"invoicestudio/internal/render"
)

// AddLineItemInput is the DTO for appending a line item.
type AddLineItemInput struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// UpdateLineItemInput is the DTO for a granular line item edit. Nil fields
// are left unchanged; touching quantity or unit price recomputes the
// amount.
type UpdateLineItemInput struct {
	Description *string  `json:"description,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
	UnitPrice   *float64 `json:"unit_price,omitempty"`
}

// InvoiceService defines the session-scoped invoice editing contract.
type InvoiceService interface {
	CreateSession(ctx context.Context) (*domain.Session, error)
	GetDocument(ctx context.Context, sessionID uuid.UUID) (*domain.InvoiceData, error)
	ReplaceDocument(ctx context.Context, sessionID uuid.UUID, doc *domain.InvoiceData) (*domain.InvoiceData, error)
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error

	AddLineItem(ctx context.Context, sessionID uuid.UUID, input *AddLineItemInput) (*domain.InvoiceData, error)
	UpdateLineItem(ctx context.Context, sessionID uuid.UUID, itemID string, input *UpdateLineItemInput) (*domain.InvoiceData, error)
	RemoveLineItem(ctx context.Context, sessionID uuid.UUID, itemID string) (*domain.InvoiceData, error)

	ApplyTemplate(ctx context.Context, sessionID uuid.UUID, templateID domain.TemplateID) (*domain.InvoiceData, error)
	ListTemplates() []domain.TemplatePreset
	SetLogo(ctx context.Context, sessionID uuid.UUID, logo string) (*domain.InvoiceData, error)

	Preview(ctx context.Context, sessionID uuid.UUID) (*render.Layout, error)
}

type invoiceService struct {
	sessionRepo port.SessionRepository
	registry    *render.Registry
	clock       func() time.Time
}

// NewInvoiceService creates a new InvoiceService implementation. The clock
// seeds new documents with their invoice and due dates.
func NewInvoiceService(sessionRepo port.SessionRepository, registry *render.Registry, clock func() time.Time) InvoiceService {
	if clock == nil {
		clock = time.Now
	}
	return &invoiceService{
		sessionRepo: sessionRepo,
		registry:    registry,
		clock:       clock,
	}
}

func (s *invoiceService) CreateSession(ctx context.Context) (*domain.Session, error) {
	session := &domain.Session{
		ID:       uuid.New(),
		Document: domain.NewDefaultInvoice(s.clock()),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	log.Printf("session created: %s", session.ID)
	return session, nil
}

func (s *invoiceService) GetDocument(ctx context.Context, sessionID uuid.UUID) (*domain.InvoiceData, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Document, nil
}

// ReplaceDocument swaps the stored document wholesale. Stored line item
// amounts are trusted as given; replacement never recomputes them.
func (s *invoiceService) ReplaceDocument(ctx context.Context, sessionID uuid.UUID, doc *domain.InvoiceData) (*domain.InvoiceData, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	clean := doc.Clone()
	for i := range clean.Items {
		if clean.Items[i].ID == "" {
			clean.Items[i].ID = uuid.NewString()
		}
	}
	session, err := s.sessionRepo.UpdateDocument(ctx, sessionID, clean)
	if err != nil {
		return nil, err
	}
	return session.Document, nil
}

func (s *invoiceService) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

func (s *invoiceService) AddLineItem(ctx context.Context, sessionID uuid.UUID, input *AddLineItemInput) (*domain.InvoiceData, error) {
	return s.mutate(ctx, sessionID, func(doc *domain.InvoiceData) error {
		doc.Items = append(doc.Items, domain.InvoiceLineItem{
			ID:          uuid.NewString(),
			Description: input.Description,
			Quantity:    input.Quantity,
			UnitPrice:   input.UnitPrice,
			Amount:      money.LineAmount(input.Quantity, input.UnitPrice),
		})
		return nil
	})
}

// UpdateLineItem applies a granular edit. This is the only path that
// derives an amount: quantity or price changes refresh it, a
// description-only edit leaves it untouched.
func (s *invoiceService) UpdateLineItem(ctx context.Context, sessionID uuid.UUID, itemID string, input *UpdateLineItemInput) (*domain.InvoiceData, error) {
	return s.mutate(ctx, sessionID, func(doc *domain.InvoiceData) error {
		for i := range doc.Items {
			if doc.Items[i].ID != itemID {
				continue
			}
			item := &doc.Items[i]
			if input.Description != nil {
				item.Description = *input.Description
			}
			if input.Quantity != nil || input.UnitPrice != nil {
				if input.Quantity != nil {
					item.Quantity = *input.Quantity
				}
				if input.UnitPrice != nil {
					item.UnitPrice = *input.UnitPrice
				}
				item.Amount = money.LineAmount(item.Quantity, item.UnitPrice)
			}
			return nil
		}
		return domain.ErrLineItemNotFound
	})
}

func (s *invoiceService) RemoveLineItem(ctx context.Context, sessionID uuid.UUID, itemID string) (*domain.InvoiceData, error) {
	return s.mutate(ctx, sessionID, func(doc *domain.InvoiceData) error {
		idx := -1
		for i := range doc.Items {
			if doc.Items[i].ID == itemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrLineItemNotFound
		}
		if len(doc.Items) == 1 {
			return domain.ErrLastLineItem
		}
		doc.Items = append(doc.Items[:idx], doc.Items[idx+1:]...)
		return nil
	})
}

// ApplyTemplate switches the document to a preset. A recognized id clears
// any per-document design override so the preset shows unmodified; an
// unknown id leaves the document exactly as it was.
func (s *invoiceService) ApplyTemplate(ctx context.Context, sessionID uuid.UUID, templateID domain.TemplateID) (*domain.InvoiceData, error) {
	return s.mutate(ctx, sessionID, func(doc *domain.InvoiceData) error {
		design.ApplyTemplate(doc, templateID)
		return nil
	})
}

func (s *invoiceService) ListTemplates() []domain.TemplatePreset {
	return domain.TemplatePresets()
}

// SetLogo stores the logo and refreshes the accent colors from it. An
// empty logo clears both the image and the derived colors.
func (s *invoiceService) SetLogo(ctx context.Context, sessionID uuid.UUID, logo string) (*domain.InvoiceData, error) {
	return s.mutate(ctx, sessionID, func(doc *domain.InvoiceData) error {
		doc.Logo = logo
		if logo == "" {
			doc.AccentColor = ""
			doc.SecondaryColor = ""
			return nil
		}
		colors := branding.ExtractFromDataURL(logo)
		doc.AccentColor = colors.Accent
		doc.SecondaryColor = colors.Secondary
		return nil
	})
}

func (s *invoiceService) Preview(ctx context.Context, sessionID uuid.UUID) (*render.Layout, error) {
	doc, err := s.GetDocument(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	dsg := design.EffectiveDesign(doc)
	totals := money.Calculate(doc.Items, doc.TaxRate)
	layout := s.registry.Render(doc, dsg, totals)
	return &layout, nil
}

// mutate loads the session document, applies fn to a copy, and stores the
// result. Edits are whole-document swaps; fn failures leave the stored
// document untouched.
func (s *invoiceService) mutate(ctx context.Context, sessionID uuid.UUID, fn func(doc *domain.InvoiceData) error) (*domain.InvoiceData, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	doc := session.Document.Clone()
	if err := fn(doc); err != nil {
		return nil, err
	}
	updated, err := s.sessionRepo.UpdateDocument(ctx, sessionID, doc)
	if err != nil {
		return nil, err
	}
	return updated.Document, nil
}

func validateDocument(doc *domain.InvoiceData) error {
	if len(doc.Items) == 0 {
		return domain.ErrNoLineItems
	}
	if doc.TaxRate < 0 || doc.TaxRate > 100 {
		return domain.ErrInvalidTaxRate
	}
	return validateDesignOverride(doc.Design)
}

func validateDesignOverride(ov *domain.DesignOverride) error {
	if ov == nil {
		return nil
	}
	if ov.Layout != nil && !domain.AllowedLayouts[*ov.Layout] {
		return domain.ErrInvalidDesign
	}
	if ov.HeaderStyle != nil && !domain.AllowedHeaderStyles[*ov.HeaderStyle] {
		return domain.ErrInvalidDesign
	}
	if ov.TableStyle != nil && !domain.AllowedTableStyles[*ov.TableStyle] {
		return domain.ErrInvalidDesign
	}
	if ov.FontFamily != nil && !domain.AllowedFontFamilies[*ov.FontFamily] {
		return domain.ErrInvalidDesign
	}
	if ov.Density != nil && !domain.AllowedDensities[*ov.Density] {
		return domain.ErrInvalidDesign
	}
	if ov.BorderStyle != nil && !domain.AllowedBorderStyles[*ov.BorderStyle] {
		return domain.ErrInvalidDesign
	}
	if ov.LogoSize != nil && !domain.AllowedLogoSizes[*ov.LogoSize] {
		return domain.ErrInvalidDesign
	}
	return nil
}
