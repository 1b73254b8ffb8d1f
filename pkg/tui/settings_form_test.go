package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/readysetcloud/fitness-cli/pkg/form"
	"github.com/readysetcloud/fitness-cli/pkg/models"
)

type fakeService struct {
	settings *models.Settings
	loadErr  error
	ok       bool
	saveErr  error
	saved    []*models.Settings
}

func (f *fakeService) GetMySettings(ctx context.Context) (*models.Settings, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.settings.Clone(), nil
}

func (f *fakeService) UpdateSettings(ctx context.Context, s *models.Settings) (bool, error) {
	f.saved = append(f.saved, s)
	return f.ok, f.saveErr
}

// collectMsgs runs a command, expanding batches. Only use it on commands that
// do not sleep.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func newLoadedModel(t *testing.T, svc *fakeService) *SettingsFormModel {
	t.Helper()
	m := NewSettingsFormModel(FormOptions{Querier: svc, Mutator: svc, ShowHints: true})
	m.SetSize(100, 40)

	msg := m.loadSettings()()
	if _, ok := msg.(settingsLoadedMsg); !ok {
		t.Fatalf("expected settingsLoadedMsg, got %T", msg)
	}
	m.Update(msg)
	if m.Form().State() != form.StateReady {
		t.Fatalf("expected ready state, got %s", m.Form().State())
	}
	return m
}

func keyPress(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLoadFailureBlocksSaveUntilRetry(t *testing.T) {
	svc := &fakeService{loadErr: errors.New("network down"), ok: true}
	m := NewSettingsFormModel(FormOptions{Querier: svc, Mutator: svc})
	m.SetSize(100, 40)

	m.Update(m.loadSettings()())
	if m.Form().State() != form.StateLoadFailed {
		t.Fatalf("expected load failed state, got %s", m.Form().State())
	}

	_, cmd := m.Update(keyPress(tea.KeyCtrlS))
	if cmd != nil {
		t.Error("expected save to be ignored while settings are not loaded")
	}
	if len(svc.saved) != 0 {
		t.Errorf("expected no mutation, got %d", len(svc.saved))
	}
	if !strings.Contains(m.View(), "retry") {
		t.Error("expected the view to offer a retry")
	}

	svc.loadErr = nil
	svc.settings = &models.Settings{TargetTime: 60, Frequency: []string{"M"}}
	_, cmd = m.Update(runes("r"))
	if m.Form().State() != form.StateLoading {
		t.Fatalf("expected loading state after retry, got %s", m.Form().State())
	}

	for _, msg := range collectMsgs(cmd) {
		m.Update(msg)
	}
	if m.Form().State() != form.StateReady {
		t.Fatalf("expected ready after retry, got %s", m.Form().State())
	}
	if m.Form().Settings().TargetTime != 60 {
		t.Errorf("expected loaded target time 60, got %d", m.Form().Settings().TargetTime)
	}
}

func TestSliderKeys(t *testing.T) {
	m := newLoadedModel(t, &fakeService{settings: models.DefaultSettings()})

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want int
	}{
		{"right adds one", keyPress(tea.KeyRight), 46},
		{"shift+right adds five", keyPress(tea.KeyShiftRight), 51},
		{"left removes one", keyPress(tea.KeyLeft), 50},
		{"shift+left removes five", keyPress(tea.KeyShiftLeft), 45},
	}

	for _, tt := range tests {
		m.Update(tt.msg)
		if got := m.Form().Settings().TargetTime; got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}

	for i := 0; i < 20; i++ {
		m.Update(keyPress(tea.KeyShiftRight))
	}
	if got := m.Form().Settings().TargetTime; got != models.MaxTargetTime {
		t.Errorf("expected slider to stop at %d, got %d", models.MaxTargetTime, got)
	}
}

func TestToggleRows(t *testing.T) {
	m := newLoadedModel(t, &fakeService{settings: models.DefaultSettings()})

	// Days row: move to Monday and toggle it
	m.Update(keyPress(tea.KeyDown))
	m.Update(keyPress(tea.KeyRight))
	m.Update(keyPress(tea.KeySpace))
	if !m.Form().DayChecked("M") {
		t.Error("expected Monday to be checked")
	}
	m.Update(keyPress(tea.KeySpace))
	if m.Form().DayChecked("M") {
		t.Error("expected Monday to be unchecked after a second toggle")
	}

	// Workout types row: cursor starts on circuit, which defaults to selected
	m.Update(keyPress(tea.KeyDown))
	m.Update(keyPress(tea.KeyEnter))
	if m.Form().HasWorkoutType("circuit") {
		t.Error("expected circuit to be removed")
	}

	// Cursor stays inside the row
	for i := 0; i < 50; i++ {
		m.Update(keyPress(tea.KeyRight))
	}
	if got, want := m.cursors[fieldWorkoutTypes], len(m.catalog.WorkoutTypes)-1; got != want {
		t.Errorf("expected cursor clamped to %d, got %d", want, got)
	}

	// Equipment row
	m.Update(keyPress(tea.KeyDown))
	m.Update(keyPress(tea.KeyDown))
	first := m.catalog.Equipment[0].Value
	before := m.Form().HasEquipment(first)
	m.Update(keyPress(tea.KeySpace))
	if m.Form().HasEquipment(first) == before {
		t.Errorf("expected %s to flip", first)
	}
}

func TestFocusWraps(t *testing.T) {
	m := newLoadedModel(t, &fakeService{settings: models.DefaultSettings()})

	m.Update(keyPress(tea.KeyShiftTab))
	if m.focusIndex != fieldSave {
		t.Errorf("expected focus to wrap to the save button, got %d", m.focusIndex)
	}
	m.Update(keyPress(tea.KeyTab))
	if m.focusIndex != fieldTargetTime {
		t.Errorf("expected focus to wrap to the slider, got %d", m.focusIndex)
	}
}

func TestSaveSendsSnapshot(t *testing.T) {
	svc := &fakeService{settings: models.DefaultSettings(), ok: true}
	m := newLoadedModel(t, svc)

	m.Update(keyPress(tea.KeyRight)) // 46
	_, cmd := m.Update(keyPress(tea.KeyCtrlS))
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	if !m.saving {
		t.Error("expected saving flag while the request is out")
	}

	// Edit while the request is in flight
	m.Update(keyPress(tea.KeyRight)) // 47

	var saved settingsSavedMsg
	found := false
	for _, msg := range collectMsgs(cmd) {
		if s, ok := msg.(settingsSavedMsg); ok {
			saved, found = s, true
		}
	}
	if !found {
		t.Fatal("expected settingsSavedMsg from the save command")
	}
	if len(svc.saved) != 1 || svc.saved[0].TargetTime != 46 {
		t.Fatalf("expected one mutation with target time 46, got %+v", svc.saved)
	}

	_, cmd = m.Update(saved)
	if m.saving {
		t.Error("expected saving flag cleared")
	}
	notes := collectMsgs(cmd)
	if len(notes) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(notes))
	}
	note, ok := notes[0].(NotificationMsg)
	if !ok || note.Kind != form.NotifySuccess || note.Message != form.SavedMessage {
		t.Errorf("expected success notification, got %#v", notes[0])
	}
	if !m.Form().Dirty() {
		t.Error("expected the edit made during the save to remain unsaved")
	}
	if m.Form().Settings().TargetTime != 47 {
		t.Errorf("expected live target time 47, got %d", m.Form().Settings().TargetTime)
	}
}

func TestSaveFailureNotifiesOnce(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		err  error
	}{
		{"falsy result", false, nil},
		{"mutation error", false, errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{settings: models.DefaultSettings(), ok: tt.ok, saveErr: tt.err}
			m := newLoadedModel(t, svc)
			m.Update(keyPress(tea.KeyRight))

			_, cmd := m.Update(keyPress(tea.KeyCtrlS))
			var notes []tea.Msg
			for _, msg := range collectMsgs(cmd) {
				if saved, ok := msg.(settingsSavedMsg); ok {
					_, next := m.Update(saved)
					notes = append(notes, collectMsgs(next)...)
				}
			}

			if len(notes) != 1 {
				t.Fatalf("expected one notification, got %d", len(notes))
			}
			note := notes[0].(NotificationMsg)
			if note.Kind != form.NotifyFailure || note.Message != form.SaveFailedMessage {
				t.Errorf("expected failure notification, got %#v", note)
			}
			if !m.Form().Dirty() {
				t.Error("expected local edits to be kept after a failed save")
			}
		})
	}
}

func TestHints(t *testing.T) {
	tests := []struct {
		name      string
		showHints bool
		width     int
		wantHint  bool
	}{
		{"wide terminal shows hint", true, 100, true},
		{"compact terminal hides hint", true, 60, false},
		{"hints disabled", false, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{settings: models.DefaultSettings()}
			m := NewSettingsFormModel(FormOptions{Querier: svc, Mutator: svc, ShowHints: tt.showHints})
			m.Update(m.loadSettings()())
			m.SetSize(tt.width, 40)
			m.focusIndex = fieldWorkoutTypes

			hint := m.focusedHint()
			if (hint != "") != tt.wantHint {
				t.Errorf("expected hint=%v, got %q", tt.wantHint, hint)
			}
			if tt.wantHint && hint != m.catalog.WorkoutTypes[0].Description {
				t.Errorf("expected description of the focused type, got %q", hint)
			}
		})
	}
}

func TestQuitConfirmsUnsavedChanges(t *testing.T) {
	m := newLoadedModel(t, &fakeService{settings: models.DefaultSettings()})

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit without changes")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}

	m.Update(keyPress(tea.KeyRight))
	_, cmd = m.Update(keyPress(tea.KeyEsc))
	if cmd != nil {
		t.Error("expected no quit while there are unsaved changes")
	}
	if !m.exitConfirm.Active() {
		t.Fatal("expected exit confirmation dialog")
	}
	if !strings.Contains(m.View(), "unsaved changes") {
		t.Error("expected dialog to mention unsaved changes")
	}

	// n keeps editing
	m.Update(runes("n"))
	if m.exitConfirm.Active() {
		t.Error("expected dialog to close")
	}

	m.Update(runes("q"))
	_, cmd = m.Update(runes("y"))
	if cmd == nil {
		t.Fatal("expected quit after confirming")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg after confirming")
	}
}

func TestViewStates(t *testing.T) {
	svc := &fakeService{settings: models.DefaultSettings()}
	m := NewSettingsFormModel(FormOptions{Querier: svc, Mutator: svc})
	m.SetSize(100, 40)

	if !strings.Contains(m.View(), "Loading your settings") {
		t.Error("expected loading view")
	}

	m.Update(m.loadSettings()())
	view := m.View()
	for _, want := range []string{"TARGET TIME", "WORKOUT DAYS", "WORKOUT TYPES", "MUSCLE GROUPS", "EQUIPMENT", "Save", "45 min"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestRenderToggleKeepsBoxWithLabel(t *testing.T) {
	svc := &fakeService{settings: models.DefaultSettings()}
	m := newLoadedModel(t, svc)
	m.focusIndex = fieldSave

	pressed := m.renderToggle(fieldWorkoutTypes, 0, "Full body", true)
	if !strings.Contains(pressed, "[✓]\u00a0Full\u00a0body") {
		t.Errorf("expected pressed toggle with non-breaking spaces, got %q", pressed)
	}

	released := m.renderToggle(fieldDays, 1, "Monday", false)
	if !strings.Contains(released, "[ ]\u00a0Monday") {
		t.Errorf("expected released toggle, got %q", released)
	}
}
