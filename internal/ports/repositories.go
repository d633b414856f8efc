package ports

import (
	"context"

	"nexuscore/internal/domain"
)

// SessionStore keeps session state for the lifetime of the process.
type SessionStore interface {
	Create(ctx context.Context) (domain.Session, error)
	Get(ctx context.Context, sessionID string) (domain.Session, error)
	// Update applies fn atomically and stores its result.
	Update(ctx context.Context, sessionID string, fn func(domain.Session) domain.Session) (domain.Session, error)
}

var (
	// ErrNotFound is returned by stores for unknown ids.
	ErrNotFound = errString("not found")
	// ErrClaimed is returned when a job has already left the queue.
	ErrClaimed = errString("job already claimed")
)

type errString string

func (e errString) Error() string { return string(e) }
