package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultPromptWidth = 60

// Prompt is a yes/no question shown over the form
type Prompt struct {
	Title   string
	Message string
	Warning string
	// Destructive colors Yes red and No green
	Destructive bool
}

var promptKeys = struct {
	Yes key.Binding
	No  key.Binding
}{
	Yes: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	No:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
}

// ConfirmationModel holds at most one pending prompt and the callbacks that
// run when it is answered
type ConfirmationModel struct {
	prompt    *Prompt
	width     int
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Ask shows p, replacing any pending prompt. Either callback may be nil.
func (m *ConfirmationModel) Ask(p Prompt, width int, onConfirm, onCancel func() tea.Cmd) {
	m.prompt = &p
	m.width = width
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

func (m *ConfirmationModel) Active() bool {
	return m.prompt != nil
}

// Dismiss drops the pending prompt without running a callback
func (m *ConfirmationModel) Dismiss() {
	m.prompt = nil
}

// Update answers the prompt on y or n. Other keys are swallowed.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if m.prompt == nil {
		return nil
	}

	var next func() tea.Cmd
	switch {
	case key.Matches(msg, promptKeys.Yes):
		next = m.onConfirm
	case key.Matches(msg, promptKeys.No):
		next = m.onCancel
	default:
		return nil
	}

	m.Dismiss()
	if next == nil {
		return nil
	}
	return next()
}

func (m *ConfirmationModel) View() string {
	if m.prompt == nil {
		return ""
	}
	p := m.prompt

	width := m.width
	if width <= 0 {
		width = defaultPromptWidth
	}
	line := lipgloss.NewStyle().Width(width - 4).Align(lipgloss.Center)

	var rows []string
	if p.Title != "" {
		rows = append(rows, line.Render(SectionStyle.Render(p.Title)), "")
	}
	if p.Message != "" {
		rows = append(rows, line.Render(p.Message))
	}
	if p.Warning != "" {
		rows = append(rows, "", line.Render(WarningStyle.Render(p.Warning)))
	}
	rows = append(rows, "", line.Render(p.options()))

	return ActiveBorderStyle.
		Width(width).
		Padding(1, 1).
		Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

// options renders the answers with the risky one in red
func (p *Prompt) options() string {
	yes, no := ConfirmSafeStyle, ConfirmDangerStyle
	if p.Destructive {
		yes, no = no, yes
	}
	return yes.Render("["+promptKeys.Yes.Help().Key+"] Yes") + "   " +
		no.Render("["+promptKeys.No.Help().Key+"] No")
}
