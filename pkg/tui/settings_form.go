package tui

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/readysetcloud/fitness-cli/pkg/catalog"
	"github.com/readysetcloud/fitness-cli/pkg/form"
	"github.com/readysetcloud/fitness-cli/pkg/models"
)

var errNoService = errors.New("no settings service configured")

// DefaultCompactWidth is the terminal width below which hover hints are hidden
const DefaultCompactWidth = 80

// Focusable rows of the form, top to bottom
const (
	fieldTargetTime = iota
	fieldDays
	fieldWorkoutTypes
	fieldMuscleGroups
	fieldEquipment
	fieldSave
	fieldCount
)

// FormOptions configures the settings form
type FormOptions struct {
	Querier      form.Querier
	Mutator      form.Mutator
	Catalog      *catalog.Catalog
	ShowHints    bool
	CompactWidth int
	Timeout      time.Duration // per request, zero for none
	Logger       *slog.Logger
}

// SettingsFormModel edits the workout settings. Only Update touches the form;
// commands work on snapshots and report back through messages.
type SettingsFormModel struct {
	form    *form.Form
	catalog *catalog.Catalog
	querier form.Querier
	mutator form.Mutator
	timeout time.Duration
	log     *slog.Logger

	focusIndex int
	cursors    [fieldCount]int // item cursor per row
	saving     bool

	showHints    bool
	compactWidth int

	spinner     spinner.Model
	keys        keyMap
	help        help.Model
	exitConfirm *ConfirmationModel

	width  int
	height int
}

// NewSettingsFormModel creates the form in its loading state
func NewSettingsFormModel(opts FormOptions) *SettingsFormModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = KnobStyle

	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	compact := opts.CompactWidth
	if compact <= 0 {
		compact = DefaultCompactWidth
	}

	m := &SettingsFormModel{
		form:         form.New(),
		catalog:      cat,
		querier:      opts.Querier,
		mutator:      opts.Mutator,
		timeout:      opts.Timeout,
		log:          log,
		showHints:    opts.ShowHints,
		compactWidth: compact,
		spinner:      s,
		keys:         newKeyMap(),
		help:         help.New(),
		exitConfirm:  NewConfirmation(),
	}
	m.keys.setLoaded(false, false)
	return m
}

func (m *SettingsFormModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadSettings())
}

// Form exposes the underlying form state
func (m *SettingsFormModel) Form() *form.Form {
	return m.form
}

func (m *SettingsFormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}

func requestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (m *SettingsFormModel) loadSettings() tea.Cmd {
	q, timeout := m.querier, m.timeout
	return func() tea.Msg {
		if q == nil {
			return settingsLoadFailedMsg{err: errNoService}
		}
		ctx, cancel := requestContext(timeout)
		defer cancel()

		settings, err := q.GetMySettings(ctx)
		if err != nil {
			return settingsLoadFailedMsg{err: err}
		}
		return settingsLoadedMsg{settings: settings}
	}
}

// saveSettings sends a snapshot of the form. It is a no-op while a save is in
// flight and refused until the settings have loaded.
func (m *SettingsFormModel) saveSettings() tea.Cmd {
	if m.saving {
		return nil
	}
	if err := m.form.CanSave(); err != nil {
		return func() tea.Msg {
			return StatusMsg("Settings have not loaded yet, nothing saved")
		}
	}

	snapshot := m.form.Snapshot()
	mutator, timeout, log := m.mutator, m.timeout, m.log
	m.saving = true

	save := func() tea.Msg {
		if mutator == nil {
			return settingsSavedMsg{snapshot: snapshot, notification: form.SaveResult(false, errNoService)}
		}
		ctx, cancel := requestContext(timeout)
		defer cancel()
		return settingsSavedMsg{snapshot: snapshot, notification: form.Persist(ctx, mutator, snapshot, log)}
	}
	return tea.Batch(m.spinner.Tick, save)
}

func (m *SettingsFormModel) copySettings() tea.Cmd {
	snapshot := m.form.Snapshot()
	return func() tea.Msg {
		data, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return StatusMsg("Failed to encode settings: " + err.Error())
		}
		if err := clipboard.WriteAll(string(data)); err != nil {
			return StatusMsg("Failed to copy to clipboard: " + err.Error())
		}
		return StatusMsg("✓ Settings copied to clipboard")
	}
}

func (m *SettingsFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case settingsLoadedMsg:
		m.form.Load(msg.settings)
		m.keys.setLoaded(true, false)
		m.log.Debug("settings_loaded", slog.Int("target_time", m.form.Settings().TargetTime))
		return m, nil

	case settingsLoadFailedMsg:
		m.form.LoadFailed(msg.err)
		m.keys.setLoaded(false, true)
		m.log.Error("settings_load_failed", slog.String("error", msg.err.Error()))
		return m, nil

	case settingsSavedMsg:
		m.saving = false
		if msg.notification.Kind == form.NotifySuccess {
			m.form.MarkSaved(msg.snapshot)
		}
		note := msg.notification
		return m, func() tea.Msg { return NotificationMsg(note) }

	case spinner.TickMsg:
		if m.form.State() != form.StateLoading && !m.saving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *SettingsFormModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.exitConfirm.Active() {
		return m.exitConfirm.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Retry):
		m.form.Retry()
		m.keys.setLoaded(false, false)
		return tea.Batch(m.spinner.Tick, m.loadSettings())
	}

	if m.form.State() != form.StateReady {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Save):
		return m.saveSettings()

	case key.Matches(msg, m.keys.Copy):
		return m.copySettings()

	case key.Matches(msg, m.keys.Up):
		m.focusIndex = (m.focusIndex + fieldCount - 1) % fieldCount

	case key.Matches(msg, m.keys.Down):
		m.focusIndex = (m.focusIndex + 1) % fieldCount

	case key.Matches(msg, m.keys.StepLeft):
		if m.focusIndex == fieldTargetTime {
			m.form.StepTargetTime(-5)
		}

	case key.Matches(msg, m.keys.StepRight):
		if m.focusIndex == fieldTargetTime {
			m.form.StepTargetTime(5)
		}

	case key.Matches(msg, m.keys.Left):
		if m.focusIndex == fieldTargetTime {
			m.form.StepTargetTime(-1)
		} else {
			m.moveCursor(-1)
		}

	case key.Matches(msg, m.keys.Right):
		if m.focusIndex == fieldTargetTime {
			m.form.StepTargetTime(1)
		} else {
			m.moveCursor(1)
		}

	case key.Matches(msg, m.keys.Toggle):
		if m.focusIndex == fieldSave {
			return m.saveSettings()
		}
		m.toggleCurrent()
	}
	return nil
}

func (m *SettingsFormModel) quit() tea.Cmd {
	if m.form.State() != form.StateReady || !m.form.Dirty() {
		return tea.Quit
	}
	width := m.width - 4
	if width > 70 || width <= 0 {
		width = 70
	}
	m.exitConfirm.Ask(Prompt{
		Title:       "EXIT CONFIRMATION",
		Message:     "You have unsaved changes to your workout settings.",
		Warning:     "Are you sure you want to exit?",
		Destructive: true,
	}, width, func() tea.Cmd { return tea.Quit }, nil)
	return nil
}

// rowLen is the number of items in a toggle row
func (m *SettingsFormModel) rowLen(field int) int {
	switch field {
	case fieldDays:
		return len(models.Weekdays)
	case fieldWorkoutTypes:
		return len(m.catalog.WorkoutTypes)
	case fieldMuscleGroups:
		return len(m.catalog.MuscleGroups)
	case fieldEquipment:
		return len(m.catalog.Equipment)
	}
	return 0
}

func (m *SettingsFormModel) moveCursor(delta int) {
	n := m.rowLen(m.focusIndex)
	if n == 0 {
		return
	}
	c := m.cursors[m.focusIndex] + delta
	if c < 0 {
		c = 0
	}
	if c >= n {
		c = n - 1
	}
	m.cursors[m.focusIndex] = c
}

func (m *SettingsFormModel) toggleCurrent() {
	c := m.cursors[m.focusIndex]
	if c >= m.rowLen(m.focusIndex) {
		return
	}
	switch m.focusIndex {
	case fieldDays:
		// Codes come from models.Weekdays so the error cannot occur
		_ = m.form.ToggleDay(models.Weekdays[c].Code)
	case fieldWorkoutTypes:
		m.form.ToggleWorkoutType(m.catalog.WorkoutTypes[c].Value)
	case fieldMuscleGroups:
		m.form.ToggleMuscleGroup(m.catalog.MuscleGroups[c].Value)
	case fieldEquipment:
		m.form.ToggleEquipment(m.catalog.Equipment[c].Value)
	}
}

// hintsVisible reports whether hover hints fit on screen
func (m *SettingsFormModel) hintsVisible() bool {
	if !m.showHints {
		return false
	}
	return m.width == 0 || m.width >= m.compactWidth
}

// focusedHint returns the description of the workout type under the cursor
func (m *SettingsFormModel) focusedHint() string {
	if m.focusIndex != fieldWorkoutTypes || !m.hintsVisible() {
		return ""
	}
	c := m.cursors[fieldWorkoutTypes]
	if c >= len(m.catalog.WorkoutTypes) {
		return ""
	}
	return m.catalog.WorkoutTypes[c].Description
}
