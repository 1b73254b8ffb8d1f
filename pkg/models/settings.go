package models

// Target time bounds in minutes
const (
	MinTargetTime     = 15
	MaxTargetTime     = 90
	DefaultTargetTime = 45

	// DefaultEquipmentThreshold is applied to equipment added from the form
	DefaultEquipmentThreshold = 0.5
)

// Settings represents a user's workout preferences
type Settings struct {
	TargetTime      int                     `json:"targetTime" yaml:"target_time"`
	Frequency       []string                `json:"frequency" yaml:"frequency"`
	MuscleGroups    []string                `json:"muscleGroups" yaml:"muscle_groups"`
	Equipment       []EquipmentPreference   `json:"equipment" yaml:"equipment"`
	WorkoutTypes    []WorkoutTypePreference `json:"workoutTypes" yaml:"workout_types"`
	SpecialWorkouts SpecialWorkouts         `json:"specialWorkouts" yaml:"special_workouts"`
}

// EquipmentPreference is a piece of available equipment with its selection threshold
type EquipmentPreference struct {
	Type      string  `json:"type" yaml:"type"`
	Threshold float64 `json:"threshold" yaml:"threshold"`
}

// WorkoutTypePreference is a preferred workout type with an optional modifier
type WorkoutTypePreference struct {
	Type     string `json:"type" yaml:"type"`
	Modifier string `json:"modifier" yaml:"modifier"`
}

// SpecialWorkouts configures occasional themed workouts. The form never edits it,
// it is carried through load and save untouched.
type SpecialWorkouts struct {
	Days          []string `json:"days" yaml:"days"`
	PercentChance float64  `json:"percentChance" yaml:"percent_chance"`
	Equipment     []string `json:"equipment" yaml:"equipment"`
	Objective     string   `json:"objective" yaml:"objective"`
}

// DefaultSettings returns the settings shown before the user's own have loaded
func DefaultSettings() *Settings {
	return &Settings{
		TargetTime:   DefaultTargetTime,
		Frequency:    []string{},
		MuscleGroups: []string{},
		Equipment: []EquipmentPreference{
			{Type: "bodyweight exercises", Threshold: 1},
		},
		WorkoutTypes: []WorkoutTypePreference{
			{Type: "circuit", Modifier: ""},
		},
		SpecialWorkouts: SpecialWorkouts{
			Days:      []string{},
			Equipment: []string{},
		},
	}
}

// Normalize replaces nil collections with empty ones so they encode as []
func (s *Settings) Normalize() {
	if s.Frequency == nil {
		s.Frequency = []string{}
	}
	if s.MuscleGroups == nil {
		s.MuscleGroups = []string{}
	}
	if s.Equipment == nil {
		s.Equipment = []EquipmentPreference{}
	}
	if s.WorkoutTypes == nil {
		s.WorkoutTypes = []WorkoutTypePreference{}
	}
	if s.SpecialWorkouts.Days == nil {
		s.SpecialWorkouts.Days = []string{}
	}
	if s.SpecialWorkouts.Equipment == nil {
		s.SpecialWorkouts.Equipment = []string{}
	}
}

// Clone returns a deep copy
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}

	c := &Settings{
		TargetTime:   s.TargetTime,
		Frequency:    append([]string{}, s.Frequency...),
		MuscleGroups: append([]string{}, s.MuscleGroups...),
		Equipment:    append([]EquipmentPreference{}, s.Equipment...),
		WorkoutTypes: append([]WorkoutTypePreference{}, s.WorkoutTypes...),
		SpecialWorkouts: SpecialWorkouts{
			Days:          append([]string{}, s.SpecialWorkouts.Days...),
			PercentChance: s.SpecialWorkouts.PercentChance,
			Equipment:     append([]string{}, s.SpecialWorkouts.Equipment...),
			Objective:     s.SpecialWorkouts.Objective,
		},
	}
	return c
}

// Equal reports whether two settings carry the same values, treating nil and empty
// collections alike
func (s *Settings) Equal(o *Settings) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.TargetTime != o.TargetTime {
		return false
	}
	if !equalStrings(s.Frequency, o.Frequency) || !equalStrings(s.MuscleGroups, o.MuscleGroups) {
		return false
	}
	if len(s.Equipment) != len(o.Equipment) || len(s.WorkoutTypes) != len(o.WorkoutTypes) {
		return false
	}
	for i := range s.Equipment {
		if s.Equipment[i] != o.Equipment[i] {
			return false
		}
	}
	for i := range s.WorkoutTypes {
		if s.WorkoutTypes[i] != o.WorkoutTypes[i] {
			return false
		}
	}

	sw, ow := s.SpecialWorkouts, o.SpecialWorkouts
	return equalStrings(sw.Days, ow.Days) &&
		equalStrings(sw.Equipment, ow.Equipment) &&
		sw.PercentChance == ow.PercentChance &&
		sw.Objective == ow.Objective
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
