package reportrunner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"nexuscore/internal/adapters/memory"
	"nexuscore/internal/domain"
	"nexuscore/internal/ports"
	"nexuscore/internal/services/checks"
	"nexuscore/internal/services/reports"
	"nexuscore/internal/services/session"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixture struct {
	db        *memory.DB
	sessions  *session.Service
	processor ReportProcessor
	sessionID string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := memory.New()
	sessions := session.New(db, nil)
	s, err := sessions.Open(context.Background())
	require.NoError(t, err)
	return fixture{
		db:        db,
		sessions:  sessions,
		processor: ReportProcessor{Reports: reports.New(checks.Default()), Sessions: sessions},
		sessionID: s.ID,
	}
}

func TestProcessInlineDeliversReport(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	jobID, err := f.db.Enqueue(ctx, f.sessionID, domain.CompanySubmission{ID: "sub_1", Name: "Acme"})
	require.NoError(t, err)
	require.NoError(t, ProcessInline(ctx, f.db, f.processor, jobID))

	job, err := f.db.Job(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, ports.JobCompleted, job.Status)

	s, err := f.sessions.Get(ctx, f.sessionID)
	require.NoError(t, err)
	require.NotNil(t, s.Report)
	assert.Equal(t, "sub_1", s.Report.SubmissionID)
	assert.Len(t, s.Report.Summary, 4)
}

func TestProcessInlineMarksFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	jobID, err := f.db.Enqueue(ctx, f.sessionID, domain.CompanySubmission{})
	require.NoError(t, err)
	err = ProcessInline(ctx, f.db, f.processor, jobID)
	assert.ErrorIs(t, err, reports.ErrMissingSubmissionID)

	job, _ := f.db.Job(ctx, jobID)
	assert.Equal(t, ports.JobFailed, job.Status)
	assert.Equal(t, reports.ErrMissingSubmissionID.Error(), job.Error)
}

type countingProcessor struct {
	mu   sync.Mutex
	seen []string
	err  error
}

func (c *countingProcessor) Process(_ context.Context, job ports.ReportJob) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = append(c.seen, job.Submission.ID)
	return c.err
}

func (c *countingProcessor) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}

func TestRunProcessesQueuedJobs(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	var ids []string
	for _, sub := range []string{"sub_1", "sub_2", "sub_3"} {
		id, err := f.db.Enqueue(ctx, f.sessionID, domain.CompanySubmission{ID: sub})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	done := make(chan struct{})
	go func() {
		Run(ctx, f.db, f.processor, 2, 5*time.Millisecond, nil)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		for _, id := range ids {
			job, err := f.db.Job(ctx, id)
			if err != nil || job.Status != ports.JobCompleted {
				return false
			}
		}
		return true
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	<-done

	s, err := f.sessions.Get(context.Background(), f.sessionID)
	require.NoError(t, err)
	require.NotNil(t, s.Report)
}

func TestRunMarksFailedJobs(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	proc := &countingProcessor{err: errors.New("boom")}

	id, err := f.db.Enqueue(ctx, f.sessionID, domain.CompanySubmission{ID: "sub_1"})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		Run(ctx, f.db, proc, 1, 5*time.Millisecond, nil)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		job, _ := f.db.Job(ctx, id)
		return job.Status == ports.JobFailed
	}, 2*time.Second, 10*time.Millisecond)
	cancel()
	<-done
	assert.Equal(t, 1, proc.count())
}

func TestRunWithoutWorkersReturns(t *testing.T) {
	Run(context.Background(), memory.New(), &countingProcessor{}, 0, time.Millisecond, nil)
}
