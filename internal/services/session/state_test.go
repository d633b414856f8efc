package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nexuscore/internal/domain"
)

func report() domain.NexusReport {
	return domain.NexusReport{SubmissionID: "sub_1", Summary: []string{"a", "b", "c", "d"}}
}

func TestLoginOnlyFromAnonymous(t *testing.T) {
	s := Reduce(domain.Session{}, LoginAs{Role: domain.RoleCorporate})
	assert.Equal(t, domain.RoleCorporate, s.Role)

	s = Reduce(s, LoginAs{Role: domain.RoleInvestor})
	assert.Equal(t, domain.RoleCorporate, s.Role)

	s = Reduce(domain.Session{}, LoginAs{Role: domain.Role("admin")})
	assert.Equal(t, domain.RoleAnonymous, s.Role)
}

func TestLogoutKeepsReport(t *testing.T) {
	s := Reduce(domain.Session{}, LoginAs{Role: domain.RoleCorporate})
	s = Reduce(s, ReportReady{Report: report()})
	s = Reduce(s, Logout{})

	assert.Equal(t, domain.RoleAnonymous, s.Role)
	assert.NotNil(t, s.Report)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	in := domain.Session{ID: "s1"}
	out := Reduce(in, ReportReady{Report: report()})
	assert.Nil(t, in.Report)
	assert.NotNil(t, out.Report)
}

func TestPresent(t *testing.T) {
	r := report()
	cases := []struct {
		name   string
		s      domain.Session
		screen Screen
		body   bool
		denial bool
	}{
		{"anonymous", domain.Session{}, ScreenLanding, false, false},
		{"anonymous with report", domain.Session{Report: &r}, ScreenDenied, false, true},
		{"corporate", domain.Session{Role: domain.RoleCorporate}, ScreenSubmit, false, false},
		{"corporate with report", domain.Session{Role: domain.RoleCorporate, Report: &r}, ScreenSubmit, false, true},
		{"investor", domain.Session{Role: domain.RoleInvestor}, ScreenEmpty, false, false},
		{"investor with report", domain.Session{Role: domain.RoleInvestor, Report: &r}, ScreenReport, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := Present(c.s)
			assert.Equal(t, c.screen, v.Screen)
			assert.Equal(t, c.body, v.Report != nil)
			if c.denial {
				assert.Equal(t, DenialMessage, v.Denial)
			} else {
				assert.Empty(t, v.Denial)
			}
		})
	}
}
