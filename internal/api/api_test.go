package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnimplementedServesEveryRoute(t *testing.T) {
	h := Handler(Unimplemented{})

	routes := []struct{ method, path string }{
		{http.MethodGet, "/healthz"},
		{http.MethodGet, "/jobs/job_1"},
		{http.MethodPost, "/sessions"},
		{http.MethodGet, "/sessions/s1"},
		{http.MethodPost, "/sessions/s1/login"},
		{http.MethodPost, "/sessions/s1/logout"},
		{http.MethodPost, "/sessions/s1/submissions"},
	}
	for _, rt := range routes {
		req := httptest.NewRequest(rt.method, rt.path, strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotImplemented, rec.Code, "%s %s", rt.method, rt.path)
	}
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler(Unimplemented{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
