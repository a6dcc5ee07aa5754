package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicestudio/internal/domain"
)

func newSession() *domain.Session {
	return &domain.Session{
		ID:       uuid.New(),
		Document: domain.NewDefaultInvoice(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()
	s := newSession()

	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, "INV-001", got.Document.InvoiceNumber)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetReturnsCopy(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()
	s := newSession()
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	got.Document.InvoiceNumber = "MUTATED"
	got.Document.Items[0].Amount = 999

	fresh, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-001", fresh.Document.InvoiceNumber)
	assert.Zero(t, fresh.Document.Items[0].Amount)
}

func TestGetUnknownSession(t *testing.T) {
	repo := NewSessionRepo()
	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestUpdateDocument(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()
	s := newSession()
	require.NoError(t, repo.Create(ctx, s))

	doc := s.Document.Clone()
	doc.InvoiceNumber = "INV-042"
	updated, err := repo.UpdateDocument(ctx, s.ID, doc)
	require.NoError(t, err)
	assert.Equal(t, "INV-042", updated.Document.InvoiceNumber)
	assert.True(t, !updated.UpdatedAt.Before(updated.CreatedAt))

	_, err = repo.UpdateDocument(ctx, uuid.New(), doc)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestDelete(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()
	s := newSession()
	require.NoError(t, repo.Create(ctx, s))

	require.NoError(t, repo.Delete(ctx, s.ID))
	_, err := repo.GetByID(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, s.ID), domain.ErrSessionNotFound)
}

func TestSweepRemovesIdleSessions(t *testing.T) {
	repo := NewSessionRepo().(*sessionRepo)
	ctx := context.Background()

	stale := newSession()
	require.NoError(t, repo.Create(ctx, stale))
	repo.mu.Lock()
	repo.sessions[stale.ID].UpdatedAt = time.Now().UTC().Add(-2 * time.Hour)
	repo.mu.Unlock()

	fresh := newSession()
	require.NoError(t, repo.Create(ctx, fresh))

	repo.sweep(time.Now().UTC().Add(-time.Hour))

	_, err := repo.GetByID(ctx, stale.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = repo.GetByID(ctx, fresh.ID)
	assert.NoError(t, err)
}
