package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexuscore/internal/domain"
	"nexuscore/internal/ports"
)

func TestSessionUpdateIsIsolated(t *testing.T) {
	ctx := context.Background()
	db := New()

	s, err := db.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	report := domain.NexusReport{SubmissionID: "sub_1", Summary: []string{"a"}}
	got, err := db.Update(ctx, s.ID, func(cur domain.Session) domain.Session {
		cur.Role = domain.RoleInvestor
		cur.Report = &report
		cur.ID = "hijack"
		return cur
	})
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	got.Report.Summary[0] = "mutated"
	stored, err := db.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleInvestor, stored.Role)
	assert.Equal(t, "a", stored.Report.Summary[0])
}

func TestUnknownSession(t *testing.T) {
	ctx := context.Background()
	db := New()

	_, err := db.Get(ctx, "nope")
	assert.ErrorIs(t, err, ports.ErrNotFound)
	_, err = db.Update(ctx, "nope", func(s domain.Session) domain.Session { return s })
	assert.ErrorIs(t, err, ports.ErrNotFound)
	_, err = db.Enqueue(ctx, "nope", domain.CompanySubmission{ID: "sub_1"})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestJobLifecycle(t *testing.T) {
	ctx := context.Background()
	db := New()
	s, _ := db.Create(ctx)

	first, err := db.Enqueue(ctx, s.ID, domain.CompanySubmission{ID: "sub_1"})
	require.NoError(t, err)
	second, err := db.Enqueue(ctx, s.ID, domain.CompanySubmission{ID: "sub_2"})
	require.NoError(t, err)

	job, found, err := db.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, first, job.ID)
	assert.Equal(t, ports.JobRunning, job.Status)
	assert.NotNil(t, job.StartedAt)

	require.NoError(t, db.MarkCompleted(ctx, first))
	job, err = db.Job(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, ports.JobCompleted, job.Status)
	assert.NotNil(t, job.FinishedAt)

	// claimed inline, so the queue skips it
	_, err = db.Claim(ctx, second)
	require.NoError(t, err)
	_, found, err = db.ClaimNext(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, db.MarkFailed(ctx, second, "boom"))
	job, _ = db.Job(ctx, second)
	assert.Equal(t, ports.JobFailed, job.Status)
	assert.Equal(t, "boom", job.Error)

	_, err = db.Claim(ctx, second)
	assert.ErrorIs(t, err, ports.ErrClaimed)
	assert.ErrorIs(t, db.MarkCompleted(ctx, "missing"), ports.ErrNotFound)
}
