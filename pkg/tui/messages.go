package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/readysetcloud/fitness-cli/pkg/form"
	"github.com/readysetcloud/fitness-cli/pkg/models"
)

// ToastDuration is how long a notification stays on screen
const ToastDuration = 10 * time.Second

// StatusMsg shows an informational toast
type StatusMsg string

// NotificationMsg shows a save outcome as a toast
type NotificationMsg form.Notification

type toastKind int

const (
	toastInfo toastKind = iota
	toastSuccess
	toastError
)

// clearStatusMsg dismisses the toast it was scheduled for. A newer toast has a
// different id and survives.
type clearStatusMsg struct {
	id int
}

func clearStatusAfter(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

type settingsLoadedMsg struct {
	settings *models.Settings
}

type settingsLoadFailedMsg struct {
	err error
}

// settingsSavedMsg carries the snapshot that was sent so the form can record it
// as persisted without looking at live state from the command goroutine
type settingsSavedMsg struct {
	snapshot     *models.Settings
	notification form.Notification
}
