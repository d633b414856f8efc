package reports

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"nexuscore/internal/domain"
	"nexuscore/internal/ports"
)

// InvestorEvidence is the stubbed internal scoring signal attached to every report.
var InvestorEvidence = []string{
	"Internal score: 82/100",
	"Legal confidence: 91%",
	"Growth signal strength: Medium",
}

var ErrMissingSubmissionID = errString("submission id is required")

type errString string

func (e errString) Error() string { return string(e) }

// Policy decides what a failing check does to the report.
type Policy int

const (
	// PolicyFailFast fails the whole report on the first check error.
	PolicyFailFast Policy = iota
	// PolicyPlaceholder keeps the report and substitutes a fixed line for the failed check.
	PolicyPlaceholder
)

func (p Policy) String() string {
	if p == PolicyPlaceholder {
		return "placeholder"
	}
	return "fail"
}

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "fail", "fail-fast":
		return PolicyFailFast, nil
	case "placeholder":
		return PolicyPlaceholder, nil
	}
	return PolicyFailFast, fmt.Errorf("unknown check failure policy %q", s)
}

// Placeholder is the summary line used for a failed check under PolicyPlaceholder.
func Placeholder(name string) string {
	return name + ": check unavailable."
}

// Service fans a submission out to every check and joins the results in
// provider order.
type Service struct {
	providers []ports.CheckProvider
	evidence  []string
	policy    Policy
	timeout   time.Duration
	now       func() time.Time
	log       *zap.Logger

	mu   sync.Mutex
	last time.Time
}

type Option func(*Service)

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTimeout bounds the join. Zero waits for as long as the caller's context allows.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

func WithPolicy(p Policy) Option {
	return func(s *Service) { s.policy = p }
}

func WithEvidence(lines []string) Option {
	return func(s *Service) { s.evidence = append([]string(nil), lines...) }
}

func New(providers []ports.CheckProvider, opts ...Option) *Service {
	s := &Service{
		providers: append([]ports.CheckProvider(nil), providers...),
		evidence:  InvestorEvidence,
		now:       time.Now,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Providers returns the number of registered checks.
func (s *Service) Providers() int { return len(s.providers) }

func (s *Service) Generate(ctx context.Context, sub domain.CompanySubmission) (domain.NexusReport, error) {
	if sub.ID == "" {
		return domain.NexusReport{}, ErrMissingSubmissionID
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	summary, err := s.run(ctx, sub)
	if err != nil {
		s.log.Warn("report failed", zap.String("submission_id", sub.ID), zap.Error(err))
		return domain.NexusReport{}, err
	}

	report := domain.NexusReport{
		SubmissionID:     sub.ID,
		Summary:          summary,
		InvestorEvidence: append([]string(nil), s.evidence...),
		CreatedAt:        s.stamp(),
	}
	s.log.Info("report generated",
		zap.String("submission_id", sub.ID),
		zap.Int("checks", len(summary)),
		zap.String("created_at", report.CreatedAtISO()),
	)
	return report, nil
}

// run starts every check at once and waits for all of them. Each result lands
// in its provider's slot, so completion order does not matter.
func (s *Service) run(ctx context.Context, sub domain.CompanySubmission) ([]string, error) {
	summary := make([]string, len(s.providers))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range s.providers {
		g.Go(func() error {
			start := time.Now()
			out, err := p.Evaluate(gctx, sub)
			s.log.Debug("check finished",
				zap.String("check", p.Name()),
				zap.Duration("took", time.Since(start)),
				zap.Error(err),
			)
			if err == nil {
				summary[i] = out
				return nil
			}
			if s.policy == PolicyPlaceholder && ctx.Err() == nil {
				summary[i] = Placeholder(p.Name())
				return nil
			}
			return fmt.Errorf("%s: %w", p.Name(), err)
		})
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()
	s.log.Debug("checks dispatched", zap.Int("checks", len(s.providers)))
	select {
	case err := <-done:
		if err != nil {
			return nil, err
		}
		return summary, nil
	case <-ctx.Done():
		// A join that already succeeded wins over a context that ended with it.
		select {
		case err := <-done:
			if err == nil {
				return summary, nil
			}
		default:
		}
		// Checks that ignore cancellation are left to finish on their own.
		return nil, fmt.Errorf("checks did not complete: %w", ctx.Err())
	}
}

// stamp never returns a time earlier than the previous report's.
func (s *Service) stamp() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.now().UTC()
	if t.Before(s.last) {
		t = s.last
	}
	s.last = t
	return t
}
