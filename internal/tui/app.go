// Package tui is a terminal front end for NexusCore. All role and report
// state lives in one domain.Session that only changes through session.Reduce;
// the form is a domain.Draft edited through typed field updates.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nexuscore/internal/domain"
	"nexuscore/internal/ports"
	"nexuscore/internal/services/session"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	roleStyle   = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("254")).Foreground(lipgloss.Color("235"))
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginTop(1)
	deniedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var fieldLabels = map[domain.Field]string{
	domain.FieldName:   "Company Name",
	domain.FieldSector: "Sector",
	domain.FieldARR:    "ARR (USD)",
	domain.FieldRunway: "Runway (Months)",
	domain.FieldTeam:   "Team Description",
	domain.FieldClaims: "Claims",
}

var fieldPlaceholders = map[domain.Field]string{
	domain.FieldName:   "Example: AI Farm Ltd.",
	domain.FieldSector: strings.Join(domain.Sectors, " / "),
	domain.FieldARR:    "50000",
	domain.FieldRunway: "12",
	domain.FieldTeam:   "5 engineers, 2 founders...",
	domain.FieldClaims: "We are eco-friendly, growing fast...",
}

type reportMsg struct {
	report domain.NexusReport
	err    error
}

// App is the bubbletea model.
type App struct {
	reports ports.Reports
	state   domain.Session
	draft   domain.Draft
	inputs  []textinput.Model
	focus   int
	busy    bool
	err     error
}

func New(reports ports.Reports) App {
	a := App{reports: reports, draft: domain.NewDraft()}
	a.resetInputs()
	return a
}

func (a App) Init() tea.Cmd { return nil }

// Session exposes the current state, mostly for tests.
func (a App) Session() domain.Session { return a.state }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		a.busy = false
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.state = session.Reduce(a.state, session.ReportReady{Report: msg.report})
		a.draft = domain.NewDraft()
		a.resetInputs()
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.state.Role {
		case domain.RoleCorporate:
			return a.updateForm(msg)
		case domain.RoleInvestor:
			return a.updateViewer(msg)
		default:
			return a.updateLanding(msg)
		}
	}
	return a, nil
}

func (a App) updateLanding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		a.state = session.Reduce(a.state, session.LoginAs{Role: domain.RoleCorporate})
		cmd := a.focusInput(0)
		return a, cmd
	case "i":
		a.state = session.Reduce(a.state, session.LoginAs{Role: domain.RoleInvestor})
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a App) updateViewer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "l", "ctrl+o":
		a.state = session.Reduce(a.state, session.Logout{})
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.busy {
		return a, nil
	}
	switch msg.String() {
	case "ctrl+o":
		a.state = session.Reduce(a.state, session.Logout{})
		return a, nil
	case "tab", "down":
		cmd := a.focusInput((a.focus + 1) % len(a.inputs))
		return a, cmd
	case "shift+tab", "up":
		cmd := a.focusInput((a.focus + len(a.inputs) - 1) % len(a.inputs))
		return a, cmd
	case "esc":
		if err := a.commitInputs(); err != nil {
			a.err = err
			return a, nil
		}
		a.err = nil
		a.draft = a.draft.Back()
		a.resetInputs()
		cmd := a.focusInput(0)
		return a, cmd
	case "enter":
		if err := a.commitInputs(); err != nil {
			a.err = err
			return a, nil
		}
		a.err = nil
		if a.draft.Last() {
			a.busy = true
			return a, a.generate(a.draft.Submission)
		}
		a.draft = a.draft.Next()
		a.resetInputs()
		cmd := a.focusInput(0)
		return a, cmd
	}
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

func (a App) generate(sub domain.CompanySubmission) tea.Cmd {
	reports := a.reports
	return func() tea.Msg {
		r, err := reports.Generate(context.Background(), sub)
		return reportMsg{report: r, err: err}
	}
}

// commitInputs writes the visible inputs into the draft.
func (a *App) commitInputs() error {
	d := a.draft
	for i, f := range d.Fields() {
		var err error
		d, err = d.Apply(domain.FieldUpdate{Field: f, Value: a.inputs[i].Value()})
		if err != nil {
			return err
		}
	}
	a.draft = d
	return nil
}

func (a *App) resetInputs() {
	fields := a.draft.Fields()
	a.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Prompt = "> "
		in.Placeholder = fieldPlaceholders[f]
		in.SetValue(fieldValue(a.draft.Submission, f))
		a.inputs[i] = in
	}
	a.focus = 0
}

func (a *App) focusInput(i int) tea.Cmd {
	for j := range a.inputs {
		a.inputs[j].Blur()
	}
	a.focus = i
	return a.inputs[i].Focus()
}

func fieldValue(s domain.CompanySubmission, f domain.Field) string {
	switch f {
	case domain.FieldName:
		return s.Name
	case domain.FieldSector:
		return s.Sector
	case domain.FieldARR:
		return formatAmount(s.ARR)
	case domain.FieldRunway:
		return formatAmount(s.Runway)
	case domain.FieldTeam:
		return s.Team
	case domain.FieldClaims:
		return s.Claims
	}
	return ""
}

func formatAmount(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%g", v)
}

func (a App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("NexusCore") + "  " + mutedStyle.Render("AI Investing Intelligence"))
	if a.state.Role != domain.RoleAnonymous {
		b.WriteString("  " + roleStyle.Render(strings.ToUpper(a.state.Role.String())))
	}
	b.WriteString("\n")

	v := session.Present(a.state)
	switch v.Screen {
	case session.ScreenLanding, session.ScreenDenied:
		b.WriteString(cardStyle.Render("Submit your company to find investors\n\n" +
			mutedStyle.Render("[c] corporate  [i] investor  [q] quit")))
	case session.ScreenSubmit:
		b.WriteString(a.formView())
	case session.ScreenReport:
		b.WriteString(reportView(*v.Report))
		b.WriteString("\n" + mutedStyle.Render("[l] logout  [q] quit"))
	case session.ScreenEmpty:
		b.WriteString(cardStyle.Render("No report yet."))
		b.WriteString("\n" + mutedStyle.Render("[l] logout  [q] quit"))
	}
	if v.Denial != "" {
		b.WriteString("\n" + cardStyle.Render(deniedStyle.Render(v.Denial)))
	}
	if a.err != nil {
		b.WriteString("\n" + errorStyle.Render("error: "+a.err.Error()))
	}
	return b.String() + "\n"
}

func (a App) formView() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Company Submission (Step %d/%d)\n\n", a.draft.Step, domain.DraftSteps)
	for i, f := range a.draft.Fields() {
		b.WriteString(fieldLabels[f] + "\n" + a.inputs[i].View() + "\n")
	}
	if a.busy {
		b.WriteString("\nRunning AI checks...")
	}
	action := "[enter] next"
	if a.draft.Last() {
		action = "[enter] submit & run AI"
	}
	b.WriteString("\n" + mutedStyle.Render(action+"  [esc] back  [tab] field  [ctrl+o] logout"))
	return cardStyle.Render(b.String())
}

func reportView(r domain.NexusReport) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Investor Analysis Report") + "\n\n")
	b.WriteString(strings.Join(r.Summary, "\n"))
	b.WriteString("\n\n")
	for _, e := range r.InvestorEvidence {
		b.WriteString("• " + e + "\n")
	}
	b.WriteString(mutedStyle.Render("Created at: " + r.CreatedAtISO()))
	return cardStyle.Render(b.String())
}
