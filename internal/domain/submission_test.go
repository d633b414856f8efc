package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewSubmissionIDIsPrefixedAndUnique(t *testing.T) {
	a, b := NewSubmissionID(), NewSubmissionID()
	assert.True(t, strings.HasPrefix(a, "sub_"))
	assert.NotEqual(t, a, b)
}

func TestApplyReturnsUpdatedCopy(t *testing.T) {
	orig := CompanySubmission{ID: "sub_1"}

	got, err := orig.Apply(FieldUpdate{Field: FieldName, Value: "AI Farm Ltd."})
	require.NoError(t, err)
	got, err = got.Apply(FieldUpdate{Field: FieldARR, Value: "30000"})
	require.NoError(t, err)
	got, err = got.Apply(FieldUpdate{Field: FieldClaims, Value: "We are eco-friendly"})
	require.NoError(t, err)

	assert.Equal(t, "AI Farm Ltd.", got.Name)
	assert.Equal(t, 30000.0, got.ARR)
	assert.Equal(t, "We are eco-friendly", got.Claims)
	assert.Equal(t, CompanySubmission{ID: "sub_1"}, orig)
}

func TestApplyRejectsBadNumbers(t *testing.T) {
	s := CompanySubmission{ID: "sub_1", ARR: 10}
	for _, v := range []string{"abc", "-5"} {
		got, err := s.Apply(FieldUpdate{Field: FieldARR, Value: v})
		assert.Error(t, err, v)
		assert.Equal(t, 10.0, got.ARR)
	}

	got, err := s.Apply(FieldUpdate{Field: FieldRunway, Value: " "})
	require.NoError(t, err)
	assert.Zero(t, got.Runway)
}

func TestApplyUnknownField(t *testing.T) {
	_, err := CompanySubmission{}.Apply(FieldUpdate{Field: Field(42), Value: "x"})
	assert.ErrorContains(t, err, "unknown field")
}

func TestDraftStepping(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, 1, d.Step)
	assert.Equal(t, Sectors[0], d.Submission.Sector)
	assert.Equal(t, []Field{FieldName, FieldSector}, d.Fields())

	d = d.Back()
	assert.Equal(t, 1, d.Step)

	d = d.Next().Next()
	assert.True(t, d.Last())
	assert.Equal(t, []Field{FieldTeam, FieldClaims}, d.Fields())

	d = d.Next()
	assert.Equal(t, 3, d.Step)
	assert.Equal(t, 2, d.Back().Step)
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("investor")
	assert.True(t, ok)
	assert.Equal(t, RoleInvestor, r)

	r, ok = ParseRole("anonymous")
	assert.True(t, ok)
	assert.Equal(t, RoleAnonymous, r)

	_, ok = ParseRole("admin")
	assert.False(t, ok)
	assert.Equal(t, "anonymous", RoleAnonymous.String())
}

func TestReportEncodesCreatedAtAsISO(t *testing.T) {
	r := NexusReport{
		SubmissionID:     "sub_1",
		Summary:          []string{"a"},
		InvestorEvidence: []string{"b"},
		CreatedAt:        time.Date(2024, 5, 1, 12, 30, 0, 7_000_000, time.UTC),
	}

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "sub_1", m["submissionId"])
	assert.Equal(t, "2024-05-01T12:30:00.007Z", m["createdAt"])

	out, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), "2024-05-01T12:30:00.007Z")
	assert.Contains(t, string(out), "submissionId: sub_1")
}

func TestCloneDoesNotShareSlices(t *testing.T) {
	r := NexusReport{Summary: []string{"a"}, InvestorEvidence: []string{"b"}}
	c := r.Clone()
	c.Summary[0] = "z"
	assert.Equal(t, "a", r.Summary[0])
}
