// Package memory provides the in-process session store. Sessions are
// ephemeral by design: nothing survives a restart, and an optional TTL
// sweep reclaims abandoned sessions.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"invoicestudio/internal/domain"
	"invoicestudio/internal/port"
)

type sessionRepo struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.Session
}

// NewSessionRepo creates an in-memory SessionRepository.
func NewSessionRepo() port.SessionRepository {
	return &sessionRepo{sessions: make(map[uuid.UUID]*domain.Session)}
}

func (r *sessionRepo) Create(_ context.Context, s *domain.Session) error {
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = cloneSession(s)
	return nil
}

func (r *sessionRepo) GetByID(_ context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return cloneSession(s), nil
}

func (r *sessionRepo) UpdateDocument(_ context.Context, sessionID uuid.UUID, doc *domain.InvoiceData) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	s.Document = doc.Clone()
	s.UpdatedAt = time.Now().UTC()
	return cloneSession(s), nil
}

func (r *sessionRepo) Delete(_ context.Context, sessionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, sessionID)
	return nil
}

// StartJanitor sweeps sessions idle longer than ttl every interval. It
// stops when ctx is canceled. A non-positive ttl disables the sweep.
func StartJanitor(ctx context.Context, repo port.SessionRepository, ttl, interval time.Duration) {
	r, ok := repo.(*sessionRepo)
	if !ok || ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.sweep(time.Now().UTC().Add(-ttl))
			}
		}
	}()
}

func (r *sessionRepo) sweep(cutoff time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(r.sessions, id)
		}
	}
}

func cloneSession(s *domain.Session) *domain.Session {
	out := *s
	if s.Document != nil {
		out.Document = s.Document.Clone()
	}
	return &out
}
