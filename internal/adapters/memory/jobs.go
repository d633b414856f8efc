package memory

import (
	"context"
	"fmt"

	"nexuscore/internal/domain"
	"nexuscore/internal/ports"
)

// Enqueue records a queued job; ClaimNext hands jobs out oldest first.
func (db *DB) Enqueue(_ context.Context, sessionID string, sub domain.CompanySubmission) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, ok := db.sessions[sessionID]; !ok {
		return "", ports.ErrNotFound
	}
	job := &ports.ReportJob{
		ID:         db.newID(),
		SessionID:  sessionID,
		Submission: sub,
		Status:     ports.JobQueued,
		QueuedAt:   db.now(),
	}
	db.jobs[job.ID] = job
	db.queue = append(db.queue, job.ID)
	return job.ID, nil
}

func (db *DB) ClaimNext(_ context.Context) (ports.ReportJob, bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for len(db.queue) > 0 {
		id := db.queue[0]
		db.queue = db.queue[1:]
		job, ok := db.jobs[id]
		// Inline processing may already have claimed it.
		if !ok || job.Status != ports.JobQueued {
			continue
		}
		db.start(job)
		return *job, true, nil
	}
	return ports.ReportJob{}, false, nil
}

func (db *DB) Claim(_ context.Context, jobID string) (ports.ReportJob, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	job, ok := db.jobs[jobID]
	if !ok {
		return ports.ReportJob{}, ports.ErrNotFound
	}
	if job.Status != ports.JobQueued {
		return ports.ReportJob{}, fmt.Errorf("job %s is %s: %w", jobID, job.Status, ports.ErrClaimed)
	}
	db.start(job)
	return *job, nil
}

func (db *DB) MarkCompleted(_ context.Context, jobID string) error {
	return db.finish(jobID, ports.JobCompleted, "")
}

func (db *DB) MarkFailed(_ context.Context, jobID string, reason string) error {
	return db.finish(jobID, ports.JobFailed, reason)
}

func (db *DB) Job(_ context.Context, jobID string) (ports.ReportJob, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	job, ok := db.jobs[jobID]
	if !ok {
		return ports.ReportJob{}, ports.ErrNotFound
	}
	return *job, nil
}

func (db *DB) start(job *ports.ReportJob) {
	now := db.now()
	job.Status = ports.JobRunning
	job.StartedAt = &now
}

func (db *DB) finish(jobID string, status ports.JobStatus, reason string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	job, ok := db.jobs[jobID]
	if !ok {
		return ports.ErrNotFound
	}
	now := db.now()
	job.Status = status
	job.Error = reason
	job.FinishedAt = &now
	return nil
}
