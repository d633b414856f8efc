package ports

import (
	"context"

	"nexuscore/internal/domain"
)

// CheckProvider evaluates one independent finding about a submission.
type CheckProvider interface {
	Name() string
	Evaluate(ctx context.Context, sub domain.CompanySubmission) (string, error)
}

// Reports assembles a report from every registered check.
type Reports interface {
	Generate(ctx context.Context, sub domain.CompanySubmission) (domain.NexusReport, error)
}

// Sessions owns the per-viewer role and report state.
type Sessions interface {
	Open(ctx context.Context) (domain.Session, error)
	Get(ctx context.Context, sessionID string) (domain.Session, error)
	Login(ctx context.Context, sessionID string, role domain.Role) (domain.Session, error)
	Logout(ctx context.Context, sessionID string) (domain.Session, error)
	Deliver(ctx context.Context, sessionID string, report domain.NexusReport) (domain.Session, error)
	// CanSubmit returns nil when the session may submit a company.
	CanSubmit(ctx context.Context, sessionID string) error
}
