package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"invoicestudio/internal/domain"
	"invoicestudio/internal/render"
	"invoicestudio/internal/service"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateSession(ctx context.Context) (*domain.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockInvoiceService) GetDocument(ctx context.Context, sessionID uuid.UUID) (*domain.InvoiceData, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceData), args.Error(1)
}

func (m *MockInvoiceService) ReplaceDocument(ctx context.Context, sessionID uuid.UUID, doc *domain.InvoiceData) (*domain.InvoiceData, error) {
	args := m.Called(ctx, sessionID, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceData), args.Error(1)
}

func (m *MockInvoiceService) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockInvoiceService) AddLineItem(ctx context.Context, sessionID uuid.UUID, input *service.AddLineItemInput) (*domain.InvoiceData, error) {
	args := m.Called(ctx, sessionID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceData), args.Error(1)
}

func (m *MockInvoiceService) UpdateLineItem(ctx context.Context, sessionID uuid.UUID, itemID string, input *service.UpdateLineItemInput) (*domain.InvoiceData, error) {
	args := m.Called(ctx, sessionID, itemID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceData), args.Error(1)
}

func (m *MockInvoiceService) RemoveLineItem(ctx context.Context, sessionID uuid.UUID, itemID string) (*domain.InvoiceData, error) {
	args := m.Called(ctx, sessionID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceData), args.Error(1)
}

func (m *MockInvoiceService) ApplyTemplate(ctx context.Context, sessionID uuid.UUID, templateID domain.TemplateID) (*domain.InvoiceData, error) {
	args := m.Called(ctx, sessionID, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceData), args.Error(1)
}

func (m *MockInvoiceService) ListTemplates() []domain.TemplatePreset {
	args := m.Called()
	return args.Get(0).([]domain.TemplatePreset)
}

func (m *MockInvoiceService) SetLogo(ctx context.Context, sessionID uuid.UUID, logo string) (*domain.InvoiceData, error) {
	args := m.Called(ctx, sessionID, logo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceData), args.Error(1)
}

func (m *MockInvoiceService) Preview(ctx context.Context, sessionID uuid.UUID) (*render.Layout, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*render.Layout), args.Error(1)
}
