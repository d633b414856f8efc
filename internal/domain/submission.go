package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names the editable attributes of a CompanySubmission.
type Field int

const (
	FieldName Field = iota
	FieldSector
	FieldARR
	FieldRunway
	FieldTeam
	FieldClaims
)

var fieldNames = map[Field]string{
	FieldName:   "name",
	FieldSector: "sector",
	FieldARR:    "arr",
	FieldRunway: "runway",
	FieldTeam:   "team",
	FieldClaims: "claims",
}

func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// FieldUpdate is a single form edit, as typed by the user.
type FieldUpdate struct {
	Field Field
	Value string
}

var setters = map[Field]func(*CompanySubmission, string) error{
	FieldName:   func(s *CompanySubmission, v string) error { s.Name = v; return nil },
	FieldSector: func(s *CompanySubmission, v string) error { s.Sector = v; return nil },
	FieldARR:    func(s *CompanySubmission, v string) error { return setAmount(&s.ARR, v) },
	FieldRunway: func(s *CompanySubmission, v string) error { return setAmount(&s.Runway, v) },
	FieldTeam:   func(s *CompanySubmission, v string) error { s.Team = v; return nil },
	FieldClaims: func(s *CompanySubmission, v string) error { s.Claims = v; return nil },
}

// Apply returns a copy of s with the update applied. s itself is unchanged.
func (s CompanySubmission) Apply(u FieldUpdate) (CompanySubmission, error) {
	set, ok := setters[u.Field]
	if !ok {
		return s, fmt.Errorf("unknown field %s", u.Field)
	}
	out := s
	if err := set(&out, u.Value); err != nil {
		return s, fmt.Errorf("%s: %w", u.Field, err)
	}
	return out, nil
}

// setAmount parses a non-negative number. Blank input resets to zero.
func setAmount(dst *float64, v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		*dst = 0
		return nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", v)
	}
	if n < 0 {
		return fmt.Errorf("must not be negative: %q", v)
	}
	*dst = n
	return nil
}

// DraftSteps is the number of wizard pages in the submission form.
const DraftSteps = 3

var stepFields = [DraftSteps][]Field{
	{FieldName, FieldSector},
	{FieldARR, FieldRunway},
	{FieldTeam, FieldClaims},
}

// Draft is the submission form in progress: a record plus the current page.
type Draft struct {
	Step       int
	Submission CompanySubmission
}

// NewDraft starts a form on page 1 with a fresh id and the default sector.
func NewDraft() Draft {
	return Draft{
		Step:       1,
		Submission: CompanySubmission{ID: NewSubmissionID(), Sector: Sectors[0]},
	}
}

func (d Draft) Next() Draft {
	if d.Step < DraftSteps {
		d.Step++
	}
	return d
}

func (d Draft) Back() Draft {
	if d.Step > 1 {
		d.Step--
	}
	return d
}

// Last reports whether the draft is on the final page.
func (d Draft) Last() bool { return d.Step == DraftSteps }

// Fields lists the fields edited on the current page.
func (d Draft) Fields() []Field {
	step := d.Step
	if step < 1 {
		step = 1
	}
	if step > DraftSteps {
		step = DraftSteps
	}
	return stepFields[step-1]
}

func (d Draft) Apply(u FieldUpdate) (Draft, error) {
	sub, err := d.Submission.Apply(u)
	if err != nil {
		return d, err
	}
	d.Submission = sub
	return d, nil
}
