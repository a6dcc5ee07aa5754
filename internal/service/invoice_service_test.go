package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicestudio/internal/domain"
	"invoicestudio/internal/render"
	"invoicestudio/internal/repository/memory"
)

var fixedClock = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }

func newService() InvoiceService {
	return NewInvoiceService(memory.NewSessionRepo(), render.NewRegistry(), fixedClock)
}

func createSession(t *testing.T, svc InvoiceService) *domain.Session {
	t.Helper()
	session, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	return session
}

func TestCreateSessionSeedsDefaultDocument(t *testing.T) {
	svc := newService()
	session := createSession(t, svc)

	doc := session.Document
	assert.Equal(t, "INV-001", doc.InvoiceNumber)
	assert.Equal(t, "2024-03-15", doc.InvoiceDate)
	assert.Equal(t, "2024-04-14", doc.DueDate)
	assert.Equal(t, "Your Company Name", doc.From.Name)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "Professional services", doc.Items[0].Description)
	assert.Zero(t, doc.Items[0].Amount)
	assert.True(t, doc.IsPaid())

	// Two sessions seeded by the same clock carry identical documents.
	other := createSession(t, svc)
	otherDoc := *other.Document
	otherDoc.Items[0].ID = doc.Items[0].ID
	assert.Equal(t, *doc, otherDoc)
}

func TestGetDocumentUnknownSession(t *testing.T) {
	svc := newService()
	_, err := svc.GetDocument(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestReplaceDocumentTrustsStoredAmounts(t *testing.T) {
	svc := newService()
	session := createSession(t, svc)
	ctx := context.Background()

	doc := session.Document.Clone()
	doc.Items = []domain.InvoiceLineItem{
		{ID: "a", Description: "Flat fee", Amount: 30},
		{ID: "b", Description: "Adjustment", Amount: 45.5},
	}

	got, err := svc.ReplaceDocument(ctx, session.ID, doc)
	require.NoError(t, err)
	// Quantities and prices are zero; the stored amounts must survive
	// untouched rather than being re-derived.
	assert.Equal(t, 30.0, got.Items[0].Amount)
	assert.Equal(t, 45.5, got.Items[1].Amount)
}

func TestReplaceDocumentValidation(t *testing.T) {
	svc := newService()
	session := createSession(t, svc)
	ctx := context.Background()

	empty := session.Document.Clone()
	empty.Items = nil
	_, err := svc.ReplaceDocument(ctx, session.ID, empty)
	assert.ErrorIs(t, err, domain.ErrNoLineItems)

	negative := session.Document.Clone()
	negative.TaxRate = -1
	_, err = svc.ReplaceDocument(ctx, session.ID, negative)
	assert.ErrorIs(t, err, domain.ErrInvalidTaxRate)

	over := session.Document.Clone()
	over.TaxRate = 250
	_, err = svc.ReplaceDocument(ctx, session.ID, over)
	assert.ErrorIs(t, err, domain.ErrInvalidTaxRate)

	boundary := session.Document.Clone()
	boundary.TaxRate = 100
	_, err = svc.ReplaceDocument(ctx, session.ID, boundary)
	assert.NoError(t, err)

	bad := session.Document.Clone()
	badLayout := domain.Layout("diagonal")
	bad.Design = &domain.DesignOverride{Layout: &badLayout}
	_, err = svc.ReplaceDocument(ctx, session.ID, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidDesign)
}

func TestReplaceDocumentAssignsMissingItemIDs(t *testing.T) {
	svc := newService()
	session := createSession(t, svc)

	doc := session.Document.Clone()
	doc.Items = []domain.InvoiceLineItem{{Description: "No id", Amount: 10}}

	got, err := svc.ReplaceDocument(context.Background(), session.ID, doc)
	require.NoError(t, err)
	assert.NotEmpty(t, got.Items[0].ID)
}

func TestAddLineItemDerivesAmount(t *testing.T) {
	svc := newService()
	session := createSession(t, svc)

	got, err := svc.AddLineItem(context.Background(), session.ID, &AddLineItemInput{
		Description: "Design work",
		Quantity:    3,
		UnitPrice:   120.5,
	})
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	added := got.Items[1]
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, 361.5, added.Amount)
}

func TestUpdateLineItem(t *testing.T) {
	svc := newService()
	session := createSession(t, svc)
	ctx := context.Background()

	doc := session.Document.Clone()
	doc.Items = []domain.InvoiceLineItem{
		{ID: "a", Description: "Flat fee", Amount: 30},
	}
	_, err := svc.ReplaceDocument(ctx, session.ID, doc)
	require.NoError(t, err)

	t.Run("description only keeps amount", func(t *testing.T) {
		desc := "Flat retainer"
		got, err := svc.UpdateLineItem(ctx, session.ID, "a", &UpdateLineItemInput{Description: &desc})
		require.NoError(t, err)
		assert.Equal(t, "Flat retainer", got.Items[0].Description)
		assert.Equal(t, 30.0, got.Items[0].Amount)
	})

	t.Run("quantity change recomputes amount", func(t *testing.T) {
		qty, price := 4.0, 25.0
		got, err := svc.UpdateLineItem(ctx, session.ID, "a", &UpdateLineItemInput{Quantity: &qty, UnitPrice: &price})
		require.NoError(t, err)
		assert.Equal(t, 100.0, got.Items[0].Amount)
	})

	t.Run("unknown item", func(t *testing.T) {
		desc := "x"
		_, err := svc.UpdateLineItem(ctx, session.ID, "missing", &UpdateLineItemInput{Description: &desc})
		assert.ErrorIs(t, err, domain.ErrLineItemNotFound)
	})
}

func TestRemoveLineItem(t *testing.T) {
	svc := newService()
	session := createSession(t, svc)
	ctx := context.Background()

	itemID := session.Document.Items[0].ID
	_, err := svc.RemoveLineItem(ctx, session.ID, itemID)
	assert.ErrorIs(t, err, domain.ErrLastLineItem)

	got, err := svc.AddLineItem(ctx, session.ID, &AddLineItemInput{Description: "Second", Quantity: 1, UnitPrice: 10})
	require.NoError(t, err)
	require.Len(t, got.Items, 2)

	got, err = svc.RemoveLineItem(ctx, session.ID, itemID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Second", got.Items[0].Description)

	_, err = svc.RemoveLineItem(ctx, session.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrLineItemNotFound)
}

func TestApplyTemplate(t *testing.T) {
	svc := newService()
	session := createSession(t, svc)
	ctx := context.Background()

	compact := domain.DensityCompact
	doc := session.Document.Clone()
	doc.Design = &domain.DesignOverride{Density: &compact}
	_, err := svc.ReplaceDocument(ctx, session.ID, doc)
	require.NoError(t, err)

	t.Run("known id clears override", func(t *testing.T) {
		got, err := svc.ApplyTemplate(ctx, session.ID, domain.TemplateGitHub)
		require.NoError(t, err)
		assert.Equal(t, domain.TemplateGitHub, got.TemplateID)
		assert.Nil(t, got.Design)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		got, err := svc.ApplyTemplate(ctx, session.ID, "bogus")
		require.NoError(t, err)
		assert.Equal(t, domain.TemplateGitHub, got.TemplateID)
	})

	t.Run("idempotent", func(t *testing.T) {
		first, err := svc.ApplyTemplate(ctx, session.ID, domain.TemplateHotel)
		require.NoError(t, err)
		second, err := svc.ApplyTemplate(ctx, session.ID, domain.TemplateHotel)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestListTemplates(t *testing.T) {
	svc := newService()
	presets := svc.ListTemplates()
	assert.Len(t, presets, 15)

	ids := make(map[domain.TemplateID]bool, len(presets))
	for _, p := range presets {
		assert.NotEmpty(t, p.Name)
		ids[p.ID] = true
	}
	assert.True(t, ids[domain.TemplateStandard])
	assert.True(t, ids[domain.TemplateReceipt])
}

func TestSetLogoClearsBrandColors(t *testing.T) {
	svc := newService()
	session := createSession(t, svc)
	ctx := context.Background()

	got, err := svc.SetLogo(ctx, session.ID, "not-an-image")
	require.NoError(t, err)
	assert.Equal(t, "not-an-image", got.Logo)
	assert.Equal(t, domain.DefaultAccentColor, got.AccentColor)

	got, err = svc.SetLogo(ctx, session.ID, "")
	require.NoError(t, err)
	assert.Empty(t, got.Logo)
	assert.Empty(t, got.AccentColor)
	assert.Empty(t, got.SecondaryColor)
}

func TestPreview(t *testing.T) {
	svc := newService()
	session := createSession(t, svc)

	layout, err := svc.Preview(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TemplateStandard, layout.TemplateID)
	assert.NotEmpty(t, layout.Blocks)

	_, err = svc.Preview(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
