package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/readysetcloud/fitness-cli/pkg/form"
)

// App is the root model. It owns the toast and routes everything else to the form.
type App struct {
	form   *SettingsFormModel
	width  int
	height int

	statusMsg  string
	statusKind toastKind
	statusID   int // incremented per toast so stale clears are ignored
}

func NewApp(opts FormOptions) *App {
	return &App{
		form: NewSettingsFormModel(opts),
	}
}

func (a *App) Init() tea.Cmd {
	return a.form.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.form.SetSize(msg.Width, msg.Height-1) // status bar line
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		return a, a.showToast(string(msg), toastInfo)

	case NotificationMsg:
		kind := toastError
		if msg.Kind == form.NotifySuccess {
			kind = toastSuccess
		}
		return a, a.showToast(msg.Message, kind)

	case clearStatusMsg:
		if msg.id == a.statusID {
			a.statusMsg = ""
		}
		return a, nil
	}

	_, cmd := a.form.Update(msg)
	return a, cmd
}

func (a *App) showToast(text string, kind toastKind) tea.Cmd {
	a.statusID++
	a.statusMsg = text
	a.statusKind = kind
	return clearStatusAfter(a.statusID, ToastDuration)
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.form.View()
	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, toastStyle(a.statusKind).Render(a.statusMsg))
	}
	return content
}
