package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"nexuscore/internal/domain"
	"nexuscore/internal/ports"
)

// DB keeps sessions and report jobs in process memory. Nothing survives a restart.
type DB struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	jobs     map[string]*ports.ReportJob
	queue    []string
	now      func() time.Time
	newID    func() string
}

func New() *DB {
	return &DB{
		sessions: make(map[string]domain.Session),
		jobs:     make(map[string]*ports.ReportJob),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}
