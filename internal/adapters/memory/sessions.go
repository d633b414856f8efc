package memory

import (
	"context"

	"nexuscore/internal/domain"
	"nexuscore/internal/ports"
)

// SessionStore

func (db *DB) Create(_ context.Context) (domain.Session, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	s := domain.Session{ID: db.newID()}
	db.sessions[s.ID] = s
	return s, nil
}

func (db *DB) Get(_ context.Context, sessionID string) (domain.Session, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	s, ok := db.sessions[sessionID]
	if !ok {
		return domain.Session{}, ports.ErrNotFound
	}
	return copySession(s), nil
}

func (db *DB) Update(_ context.Context, sessionID string, fn func(domain.Session) domain.Session) (domain.Session, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	cur, ok := db.sessions[sessionID]
	if !ok {
		return domain.Session{}, ports.ErrNotFound
	}
	next := fn(copySession(cur))
	next.ID = cur.ID
	db.sessions[sessionID] = next
	return copySession(next), nil
}

// Reports held by callers must not alias the stored one.
func copySession(s domain.Session) domain.Session {
	if s.Report != nil {
		r := s.Report.Clone()
		s.Report = &r
	}
	return s
}
