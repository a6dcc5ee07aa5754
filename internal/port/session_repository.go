package port

import (
	"context"

	"github.com/google/uuid"

	"invoicestudio/internal/domain"
)

// SessionRepository defines the contract for editing session storage.
// Implementations return deep copies: callers may mutate what they get
// back without affecting the stored document.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)
	UpdateDocument(ctx context.Context, sessionID uuid.UUID, doc *domain.InvoiceData) (*domain.Session, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}
