package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Core domain records. API types are generated from OpenAPI and sit in
// internal/api; these stay decoupled so the CLI and TUI can use them directly.

// Role is the viewer role picked at login.
type Role string

const (
	RoleAnonymous Role = ""
	RoleCorporate Role = "corporate"
	RoleInvestor  Role = "investor"
)

func (r Role) Valid() bool {
	return r == RoleCorporate || r == RoleInvestor
}

func (r Role) String() string {
	if r == RoleAnonymous {
		return "anonymous"
	}
	return string(r)
}

// ParseRole accepts "corporate", "investor" and "anonymous" (or empty).
func ParseRole(s string) (Role, bool) {
	switch s {
	case "", "anonymous":
		return RoleAnonymous, true
	case string(RoleCorporate):
		return RoleCorporate, true
	case string(RoleInvestor):
		return RoleInvestor, true
	}
	return RoleAnonymous, false
}

// Sectors offered by the submission form, default first.
var Sectors = []string{"AI Startup", "FinTech", "Energy"}

// CompanySubmission is one company's self-reported profile. Checks only read it.
type CompanySubmission struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Sector string  `json:"sector" yaml:"sector"`
	ARR    float64 `json:"arr" yaml:"arr"`
	Runway float64 `json:"runway" yaml:"runway"`
	Team   string  `json:"team" yaml:"team"`
	Claims string  `json:"claims" yaml:"claims"`
}

// NewSubmissionID returns a fresh "sub_"-prefixed identifier.
func NewSubmissionID() string {
	return "sub_" + uuid.NewString()
}

// NexusReport is the aggregated output for one submission.
type NexusReport struct {
	SubmissionID     string    `json:"submissionId" yaml:"submissionId"`
	Summary          []string  `json:"summary" yaml:"summary"`
	InvestorEvidence []string  `json:"investorEvidence" yaml:"investorEvidence"`
	CreatedAt        time.Time `json:"-" yaml:"-"`
}

// ISOTimeLayout is the millisecond UTC layout used for report timestamps.
const ISOTimeLayout = "2006-01-02T15:04:05.000Z"

// CreatedAtISO renders CreatedAt as ISO-8601 UTC with millisecond precision.
func (r NexusReport) CreatedAtISO() string {
	return r.CreatedAt.UTC().Format(ISOTimeLayout)
}

// Clone returns a copy that shares no slices with r.
func (r NexusReport) Clone() NexusReport {
	out := r
	out.Summary = append([]string(nil), r.Summary...)
	out.InvestorEvidence = append([]string(nil), r.InvestorEvidence...)
	return out
}

// MarshalJSON writes the record with createdAt as an ISO string.
func (r NexusReport) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.doc())
}

// MarshalYAML writes the record with createdAt as an ISO string.
func (r NexusReport) MarshalYAML() (any, error) {
	return r.doc(), nil
}

func (r NexusReport) doc() reportDoc {
	return reportDoc{
		SubmissionID:     r.SubmissionID,
		Summary:          r.Summary,
		InvestorEvidence: r.InvestorEvidence,
		CreatedAt:        r.CreatedAtISO(),
	}
}

type reportDoc struct {
	SubmissionID     string   `json:"submissionId" yaml:"submissionId"`
	Summary          []string `json:"summary" yaml:"summary"`
	InvestorEvidence []string `json:"investorEvidence" yaml:"investorEvidence"`
	CreatedAt        string   `json:"createdAt" yaml:"createdAt"`
}

// Session is one viewer's role and the last report delivered to it.
type Session struct {
	ID     string
	Role   Role
	Report *NexusReport
}
