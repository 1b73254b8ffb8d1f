package form

import (
	"errors"
	"fmt"

	"github.com/readysetcloud/fitness-cli/pkg/models"
)

// Form errors
var (
	ErrUnknownWeekday = errors.New("unknown weekday code")
	ErrNotLoaded      = errors.New("settings have not been loaded")
)

// LoadState tracks the initial fetch
type LoadState int

const (
	StateLoading LoadState = iota
	StateReady
	StateLoadFailed
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateLoadFailed:
		return "load failed"
	}
	return "unknown"
}

// Form holds the settings being edited. The settings object is the only state the
// form renders from; per-day checked flags are computed from Frequency on demand.
// A Form is not safe for concurrent use; background work should use Snapshot.
type Form struct {
	settings *models.Settings
	saved    *models.Settings // last loaded or persisted state
	state    LoadState
	loadErr  error
}

// New returns a form carrying the default settings
func New() *Form {
	s := models.DefaultSettings()
	return &Form{
		settings: s,
		saved:    s.Clone(),
		state:    StateLoading,
	}
}

// Settings exposes the live settings for rendering
func (f *Form) Settings() *models.Settings {
	return f.settings
}

// State reports where the initial load stands
func (f *Form) State() LoadState {
	return f.state
}

// LoadErr returns the error from the most recent failed load
func (f *Form) LoadErr() error {
	return f.loadErr
}

// Load replaces the whole settings object with the fetched one
func (f *Form) Load(s *models.Settings) {
	if s == nil {
		s = models.DefaultSettings()
	}
	s = s.Clone()
	s.Normalize()

	f.settings = s
	f.saved = s.Clone()
	f.state = StateReady
	f.loadErr = nil
}

// LoadFailed records a failed fetch. The defaults stay in place.
func (f *Form) LoadFailed(err error) {
	f.state = StateLoadFailed
	f.loadErr = err
}

// Retry puts the form back into the loading state
func (f *Form) Retry() {
	f.state = StateLoading
	f.loadErr = nil
}

// CanSave reports whether the form holds server state that may be written back
func (f *Form) CanSave() error {
	if f.state != StateReady {
		return ErrNotLoaded
	}
	return nil
}

// ToggleDay adds the weekday to the frequency, or removes its first occurrence
func (f *Form) ToggleDay(code string) error {
	if !models.IsWeekday(code) {
		return fmt.Errorf("%w: %q", ErrUnknownWeekday, code)
	}

	freq := append([]string{}, f.settings.Frequency...)
	if i := indexOf(freq, code); i >= 0 {
		freq = append(freq[:i], freq[i+1:]...)
	} else {
		freq = append(freq, code)
	}
	f.settings.Frequency = freq
	return nil
}

// DayChecked reports whether a weekday is part of the frequency
func (f *Form) DayChecked(code string) bool {
	return indexOf(f.settings.Frequency, code) >= 0
}

// DayFlags returns the checked state of every weekday in display order
func (f *Form) DayFlags() []bool {
	flags := make([]bool, len(models.Weekdays))
	for i, d := range models.Weekdays {
		flags[i] = f.DayChecked(d.Code)
	}
	return flags
}

// ToggleMuscleGroup adds or removes a muscle group
func (f *Form) ToggleMuscleGroup(id string) {
	groups := append([]string{}, f.settings.MuscleGroups...)
	if i := indexOf(groups, id); i >= 0 {
		groups = append(groups[:i], groups[i+1:]...)
	} else {
		groups = append(groups, id)
	}
	f.settings.MuscleGroups = groups
}

// HasMuscleGroup reports muscle group membership
func (f *Form) HasMuscleGroup(id string) bool {
	return indexOf(f.settings.MuscleGroups, id) >= 0
}

// ToggleWorkoutType removes the entry with a matching type, or appends one with
// an empty modifier
func (f *Form) ToggleWorkoutType(id string) {
	types := append([]models.WorkoutTypePreference{}, f.settings.WorkoutTypes...)
	if i := f.workoutTypeIndex(id); i >= 0 {
		types = append(types[:i], types[i+1:]...)
	} else {
		types = append(types, models.WorkoutTypePreference{Type: id, Modifier: ""})
	}
	f.settings.WorkoutTypes = types
}

// HasWorkoutType reports workout type membership
func (f *Form) HasWorkoutType(id string) bool {
	return f.workoutTypeIndex(id) >= 0
}

func (f *Form) workoutTypeIndex(id string) int {
	for i, wt := range f.settings.WorkoutTypes {
		if wt.Type == id {
			return i
		}
	}
	return -1
}

// ToggleEquipment removes the entry with a matching type, or appends one at the
// default threshold. Other entries keep their server-provided thresholds.
func (f *Form) ToggleEquipment(id string) {
	equipment := append([]models.EquipmentPreference{}, f.settings.Equipment...)
	if i := f.equipmentIndex(id); i >= 0 {
		equipment = append(equipment[:i], equipment[i+1:]...)
	} else {
		equipment = append(equipment, models.EquipmentPreference{
			Type:      id,
			Threshold: models.DefaultEquipmentThreshold,
		})
	}
	f.settings.Equipment = equipment
}

// HasEquipment reports equipment membership
func (f *Form) HasEquipment(id string) bool {
	return f.equipmentIndex(id) >= 0
}

func (f *Form) equipmentIndex(id string) int {
	for i, eq := range f.settings.Equipment {
		if eq.Type == id {
			return i
		}
	}
	return -1
}

// SetTargetTime replaces the target time as given. Range enforcement belongs to
// the input control, see StepTargetTime.
func (f *Form) SetTargetTime(minutes int) {
	f.settings.TargetTime = minutes
}

// StepTargetTime moves the target time by delta minutes, clamped to the slider range
func (f *Form) StepTargetTime(delta int) {
	f.settings.TargetTime = ClampTargetTime(f.settings.TargetTime + delta)
}

// ClampTargetTime limits minutes to the slider range
func ClampTargetTime(minutes int) int {
	if minutes < models.MinTargetTime {
		return models.MinTargetTime
	}
	if minutes > models.MaxTargetTime {
		return models.MaxTargetTime
	}
	return minutes
}

// Snapshot returns a copy of the settings suitable for sending
func (f *Form) Snapshot() *models.Settings {
	s := f.settings.Clone()
	s.Normalize()
	return s
}

// MarkSaved records the snapshot the server accepted
func (f *Form) MarkSaved(s *models.Settings) {
	f.saved = s.Clone()
}

// Dirty reports edits made since the last load or successful save
func (f *Form) Dirty() bool {
	return !f.settings.Equal(f.saved)
}

func indexOf(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return -1
}
