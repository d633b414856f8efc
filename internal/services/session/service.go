package session

import (
	"context"

	"go.uber.org/zap"

	"nexuscore/internal/domain"
	"nexuscore/internal/ports"
)

var (
	ErrForbidden = errString("role not allowed")
	ErrBadRole   = errString("unknown role")
	ErrLoggedIn  = errString("already logged in")
)

type errString string

func (e errString) Error() string { return string(e) }

// Service is the single owner of session state. Every change goes through
// Reduce inside the store's atomic update.
type Service struct {
	store ports.SessionStore
	log   *zap.Logger
}

func New(store ports.SessionStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log}
}

func (s *Service) Open(ctx context.Context) (domain.Session, error) {
	sess, err := s.store.Create(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	s.log.Debug("session opened", zap.String("session_id", sess.ID))
	return sess, nil
}

func (s *Service) Get(ctx context.Context, sessionID string) (domain.Session, error) {
	return s.store.Get(ctx, sessionID)
}

func (s *Service) Login(ctx context.Context, sessionID string, role domain.Role) (domain.Session, error) {
	if !role.Valid() {
		return domain.Session{}, ErrBadRole
	}
	sess, err := s.apply(ctx, sessionID, LoginAs{Role: role})
	if err != nil {
		return sess, err
	}
	if sess.Role != role {
		return sess, ErrLoggedIn
	}
	s.log.Info("login", zap.String("session_id", sessionID), zap.Stringer("role", sess.Role))
	return sess, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) (domain.Session, error) {
	return s.apply(ctx, sessionID, Logout{})
}

func (s *Service) Deliver(ctx context.Context, sessionID string, report domain.NexusReport) (domain.Session, error) {
	return s.apply(ctx, sessionID, ReportReady{Report: report})
}

// CanSubmit reports whether the session may submit a company. Only the
// corporate role gets the submission form.
func (s *Service) CanSubmit(ctx context.Context, sessionID string) error {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Role != domain.RoleCorporate {
		return ErrForbidden
	}
	return nil
}

func (s *Service) apply(ctx context.Context, sessionID string, a Action) (domain.Session, error) {
	return s.store.Update(ctx, sessionID, func(cur domain.Session) domain.Session {
		return Reduce(cur, a)
	})
}
