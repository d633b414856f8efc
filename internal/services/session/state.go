package session

import "nexuscore/internal/domain"

// DenialMessage is shown in place of a report to anyone but an investor.
const DenialMessage = "Only investors can view full AI risk evidence."

// Action is a user or system event applied to a session.
type Action interface{ action() }

type LoginAs struct{ Role domain.Role }

type Logout struct{}

// ReportReady delivers a freshly generated report.
type ReportReady struct{ Report domain.NexusReport }

func (LoginAs) action()     {}
func (Logout) action()      {}
func (ReportReady) action() {}

// Reduce returns the state after applying a. It never mutates s.
// Logging in is only possible from the anonymous state, and logging out keeps
// any report already delivered.
func Reduce(s domain.Session, a Action) domain.Session {
	switch a := a.(type) {
	case LoginAs:
		if s.Role == domain.RoleAnonymous && a.Role.Valid() {
			s.Role = a.Role
		}
	case Logout:
		s.Role = domain.RoleAnonymous
	case ReportReady:
		r := a.Report.Clone()
		s.Report = &r
	}
	return s
}

// Screen is the main panel a session should see.
type Screen string

const (
	ScreenLanding Screen = "landing"
	ScreenSubmit  Screen = "submit"
	ScreenReport  Screen = "report"
	ScreenDenied  Screen = "denied"
	ScreenEmpty   Screen = "empty"
)

// View is what a session is allowed to see right now.
type View struct {
	SessionID string
	Role      domain.Role
	Screen    Screen
	Report    *domain.NexusReport
	Denial    string
}

// Present decides what to display. The report body is only ever exposed to
// investors; a corporate viewer keeps the form and also sees the denial.
func Present(s domain.Session) View {
	v := View{SessionID: s.ID, Role: s.Role}
	switch s.Role {
	case domain.RoleInvestor:
		v.Screen = ScreenEmpty
		if s.Report != nil {
			r := s.Report.Clone()
			v.Screen = ScreenReport
			v.Report = &r
		}
		return v
	case domain.RoleCorporate:
		v.Screen = ScreenSubmit
	default:
		v.Screen = ScreenLanding
		if s.Report != nil {
			v.Screen = ScreenDenied
		}
	}
	if s.Report != nil {
		v.Denial = DenialMessage
	}
	return v
}
