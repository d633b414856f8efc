package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	api "nexuscore/internal/api"
	"nexuscore/internal/domain"
	"nexuscore/internal/ports"
	sessionsvc "nexuscore/internal/services/session"
	"nexuscore/internal/workers/reportrunner"
)

const (
	defaultWaitTimeout = 30 * time.Second
	jobPollInterval    = 20 * time.Millisecond
)

// Server implements the generated StrictServerInterface.
type Server struct {
	sessions  ports.Sessions
	jobs      ports.JobRepository
	processor reportrunner.JobProcessor
	log       *zap.Logger
}

func New(sessions ports.Sessions, jobs ports.JobRepository, processor reportrunner.JobProcessor, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{sessions: sessions, jobs: jobs, processor: processor, log: log}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, s.logRequests)
	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.requestError,
	})
	return r
}

// Strict handler methods

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	ok := "ok"
	return api.GetHealthz200JSONResponse{Status: &ok}, nil
}

func (s *Server) CreateSession(ctx context.Context, _ api.CreateSessionRequestObject) (api.CreateSessionResponseObject, error) {
	sess, err := s.sessions.Open(ctx)
	if err != nil {
		return nil, err
	}
	return api.CreateSession201JSONResponse(toView(sess)), nil
}

func (s *Server) GetSession(ctx context.Context, req api.GetSessionRequestObject) (api.GetSessionResponseObject, error) {
	sess, err := s.sessions.Get(ctx, req.Id)
	if errors.Is(err, ports.ErrNotFound) {
		return api.GetSession404JSONResponse{NotFoundJSONResponse: notFound("session")}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.GetSession200JSONResponse(toView(sess)), nil
}

func (s *Server) LoginSession(ctx context.Context, req api.LoginSessionRequestObject) (api.LoginSessionResponseObject, error) {
	if req.Body == nil {
		return nil, &runtimeError{code: http.StatusBadRequest, msg: "missing body"}
	}
	role, ok := domain.ParseRole(string(req.Body.Role))
	if !ok || !role.Valid() {
		return api.LoginSession400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse{Message: "role must be corporate or investor"}}, nil
	}
	sess, err := s.sessions.Login(ctx, req.Id, role)
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return api.LoginSession404JSONResponse{NotFoundJSONResponse: notFound("session")}, nil
	case errors.Is(err, sessionsvc.ErrLoggedIn):
		return api.LoginSession409JSONResponse{Message: "log out before switching role"}, nil
	case err != nil:
		return nil, err
	}
	return api.LoginSession200JSONResponse(toView(sess)), nil
}

func (s *Server) LogoutSession(ctx context.Context, req api.LogoutSessionRequestObject) (api.LogoutSessionResponseObject, error) {
	sess, err := s.sessions.Logout(ctx, req.Id)
	if errors.Is(err, ports.ErrNotFound) {
		return api.LogoutSession404JSONResponse{NotFoundJSONResponse: notFound("session")}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.LogoutSession200JSONResponse(toView(sess)), nil
}

func (s *Server) SubmitCompany(ctx context.Context, req api.SubmitCompanyRequestObject) (api.SubmitCompanyResponseObject, error) {
	if req.Body == nil {
		return nil, &runtimeError{code: http.StatusBadRequest, msg: "missing body"}
	}
	err := s.sessions.CanSubmit(ctx, req.Id)
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return api.SubmitCompany404JSONResponse{NotFoundJSONResponse: notFound("session")}, nil
	case errors.Is(err, sessionsvc.ErrForbidden):
		return api.SubmitCompany403JSONResponse{Message: "only corporate sessions can submit companies"}, nil
	case err != nil:
		return nil, err
	}

	sub := toSubmission(*req.Body)
	jobID, err := s.jobs.Enqueue(ctx, req.Id, sub)
	if err != nil {
		return nil, err
	}
	s.log.Info("submission queued", zap.String("session_id", req.Id), zap.String("submission_id", sub.ID), zap.String("job_id", jobID))

	// Blocking path for testing
	wait := false
	if req.Params.Wait != nil {
		wait = *req.Params.Wait
	}
	if !wait {
		return api.SubmitCompany202JSONResponse{JobId: jobID, SubmissionId: sub.ID}, nil
	}

	timeout := defaultWaitTimeout
	if req.Params.Timeout != nil && *req.Params.Timeout > 0 {
		timeout = time.Duration(*req.Params.Timeout) * time.Second
	}
	ctx2, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	err = reportrunner.ProcessInline(ctx2, s.jobs, s.processor, jobID)
	if errors.Is(err, ports.ErrClaimed) {
		// a background worker got there first
		err = s.awaitJob(ctx2, jobID)
	}
	if err != nil {
		return nil, err
	}
	sess, err := s.sessions.Get(ctx2, req.Id)
	if err != nil {
		return nil, err
	}
	return api.SubmitCompany200JSONResponse(toView(sess)), nil
}

func (s *Server) GetJob(ctx context.Context, req api.GetJobRequestObject) (api.GetJobResponseObject, error) {
	job, err := s.jobs.Job(ctx, req.Id)
	if errors.Is(err, ports.ErrNotFound) {
		return api.GetJob404JSONResponse{NotFoundJSONResponse: notFound("job")}, nil
	}
	if err != nil {
		return nil, err
	}
	out := api.Job{Id: job.ID, SubmissionId: job.Submission.ID, Status: api.JobStatus(job.Status)}
	if job.Error != "" {
		out.Error = &job.Error
	}
	return api.GetJob200JSONResponse(out), nil
}

func (s *Server) awaitJob(ctx context.Context, jobID string) error {
	ticker := time.NewTicker(jobPollInterval)
	defer ticker.Stop()
	for {
		job, err := s.jobs.Job(ctx, jobID)
		if err != nil {
			return err
		}
		switch job.Status {
		case ports.JobCompleted:
			return nil
		case ports.JobFailed:
			return errors.New(job.Error)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusBadRequest, err.Error())
}

func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	var re *runtimeError
	if errors.As(err, &re) {
		writeError(w, re.code, re.msg)
		return
	}
	status := http.StatusInternalServerError
	if errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}
	s.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	writeError(w, status, err.Error())
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("http",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(api.Error{Message: msg})
}

type runtimeError struct {
	code int
	msg  string
}

func (e *runtimeError) Error() string { return e.msg }
