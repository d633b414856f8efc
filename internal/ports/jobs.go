package ports

import (
	"context"
	"time"

	"nexuscore/internal/domain"
)

type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// ReportJob is one queued report generation for a session.
type ReportJob struct {
	ID         string
	SessionID  string
	Submission domain.CompanySubmission
	Status     JobStatus
	Error      string
	QueuedAt   time.Time
	StartedAt  *time.Time
	FinishedAt *time.Time
}

// JobRepository supports claiming and updating report jobs.
type JobRepository interface {
	Enqueue(ctx context.Context, sessionID string, sub domain.CompanySubmission) (jobID string, err error)
	ClaimNext(ctx context.Context) (job ReportJob, found bool, err error)
	// Claim marks a specific queued job running, for inline processing.
	Claim(ctx context.Context, jobID string) (ReportJob, error)
	MarkCompleted(ctx context.Context, jobID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
	Job(ctx context.Context, jobID string) (ReportJob, error)
}
