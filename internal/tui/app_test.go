package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexuscore/internal/domain"
	"nexuscore/internal/services/checks"
	"nexuscore/internal/services/reports"
	"nexuscore/internal/services/session"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+o":
		return tea.KeyMsg{Type: tea.KeyCtrlO}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	out, ok := m.(App)
	require.True(t, ok)
	return out, cmd
}

func typeText(t *testing.T, a App, text string) App {
	t.Helper()
	for _, r := range text {
		a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return a
}

func TestInvestorWithoutReport(t *testing.T) {
	a := New(reports.New(checks.Default()))
	a, _ = send(t, a, key("i"))

	assert.Equal(t, domain.RoleInvestor, a.Session().Role)
	assert.Contains(t, a.View(), "No report yet.")

	a, _ = send(t, a, key("l"))
	assert.Equal(t, domain.RoleAnonymous, a.Session().Role)
	assert.Contains(t, a.View(), "[c] corporate")
}

func TestCorporateSubmitThenInvestorViews(t *testing.T) {
	a := New(reports.New(checks.Default()))
	a, _ = send(t, a, key("c"))
	require.Equal(t, domain.RoleCorporate, a.Session().Role)
	assert.Contains(t, a.View(), "Step 1/3")

	// step 1: name, sector keeps its default
	a = typeText(t, a, "AI Farm Ltd.")
	a, _ = send(t, a, key("enter"))
	assert.Contains(t, a.View(), "Step 2/3")

	// step 2: arr, runway
	a = typeText(t, a, "30000")
	a, _ = send(t, a, key("tab"))
	a = typeText(t, a, "6")
	a, _ = send(t, a, key("enter"))
	assert.Contains(t, a.View(), "Step 3/3")

	a, _ = send(t, a, key("tab"))
	a = typeText(t, a, "We are eco-friendly")
	a, cmd := send(t, a, key("enter"))
	require.NotNil(t, cmd)

	a, _ = send(t, a, cmd())
	require.NotNil(t, a.Session().Report)
	view := a.View()
	assert.Contains(t, view, session.DenialMessage)
	assert.NotContains(t, view, "RiskAI")
	assert.Contains(t, view, "Step 1/3")

	a, _ = send(t, a, key("ctrl+o"))
	a, _ = send(t, a, key("i"))
	view = a.View()
	assert.Contains(t, view, "NewsAI: AI Farm Ltd. found in 3 market articles.")
	assert.Contains(t, view, checks.RiskHigh)
	assert.Contains(t, view, checks.ESGCredible)
	assert.Contains(t, view, "Internal score: 82/100")
	assert.NotContains(t, view, session.DenialMessage)
}

func TestBadNumberStaysOnStep(t *testing.T) {
	a := New(reports.New(checks.Default()))
	a, _ = send(t, a, key("c"))
	a, _ = send(t, a, key("enter"))
	a = typeText(t, a, "lots")
	a, _ = send(t, a, key("enter"))

	assert.Contains(t, a.View(), "Step 2/3")
	assert.Contains(t, a.View(), "error:")

	a, _ = send(t, a, key("esc"))
	assert.Contains(t, a.View(), "error:")
}

func TestBackKeepsValues(t *testing.T) {
	a := New(reports.New(checks.Default()))
	a, _ = send(t, a, key("c"))
	a = typeText(t, a, "Acme")
	a, _ = send(t, a, key("enter"))
	a, _ = send(t, a, key("esc"))

	assert.Contains(t, a.View(), "Step 1/3")
	assert.Equal(t, "Acme", a.inputs[0].Value())
}
