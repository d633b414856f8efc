package reportrunner

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"nexuscore/internal/ports"
)

// JobProcessor performs the work for one claimed job.
type JobProcessor interface {
	Process(ctx context.Context, job ports.ReportJob) error
}

// ReportProcessor generates the job's report and hands it to the owning session.
type ReportProcessor struct {
	Reports  ports.Reports
	Sessions ports.Sessions
}

func (p ReportProcessor) Process(ctx context.Context, job ports.ReportJob) error {
	report, err := p.Reports.Generate(ctx, job.Submission)
	if err != nil {
		return err
	}
	_, err = p.Sessions.Deliver(ctx, job.SessionID, report)
	return err
}

// Run starts worker goroutines that claim jobs and process them. It blocks
// until ctx is cancelled and every worker has returned.
func Run(ctx context.Context, repo ports.JobRepository, processor JobProcessor, concurrency int, pollInterval time.Duration, log *zap.Logger) {
	if concurrency < 1 {
		return
	}
	if log == nil {
		log = zap.NewNop()
	}
	jobsCh := make(chan ports.ReportJob, concurrency)

	// dispatcher loop
	go func() {
		defer close(jobsCh)
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			for {
				job, found, err := repo.ClaimNext(ctx)
				if err != nil {
					log.Error("job claim error", zap.Error(err))
					break
				}
				if !found {
					break
				}
				select {
				case jobsCh <- job:
				case <-ctx.Done():
					_ = repo.MarkFailed(context.Background(), job.ID, "shutting down")
					return
				}
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for job := range jobsCh {
				if err := processor.Process(ctx, job); err != nil {
					_ = repo.MarkFailed(context.Background(), job.ID, err.Error())
					log.Error("job failed", zap.Int("worker", idx), zap.String("job_id", job.ID), zap.Error(err))
					continue
				}
				if err := repo.MarkCompleted(context.Background(), job.ID); err != nil {
					log.Error("job complete error", zap.Int("worker", idx), zap.String("job_id", job.ID), zap.Error(err))
				}
			}
		}(i)
	}
	wg.Wait()
}

// ProcessInline claims and processes a specific job synchronously, using the
// same processor as the background workers.
func ProcessInline(ctx context.Context, repo ports.JobRepository, processor JobProcessor, jobID string) error {
	job, err := repo.Claim(ctx, jobID)
	if err != nil {
		return err
	}
	if err := processor.Process(ctx, job); err != nil {
		_ = repo.MarkFailed(context.Background(), jobID, err.Error())
		return err
	}
	return repo.MarkCompleted(ctx, jobID)
}
