package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Kind names one of the three catalogs
type Kind string

const (
	KindWorkoutTypes Kind = "workout-types"
	KindMuscleGroups Kind = "muscle-groups"
	KindEquipment    Kind = "equipment"
)

// Kinds lists the catalogs in the order the form renders them
var Kinds = []Kind{KindWorkoutTypes, KindMuscleGroups, KindEquipment}

// Entry is a selectable catalog item. Value is the identifier stored in settings,
// Name is the display label.
type Entry struct {
	Value       string `yaml:"value" json:"value"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Catalog holds the read-only reference lists
type Catalog struct {
	WorkoutTypes []Entry `yaml:"workout_types" json:"workoutTypes"`
	MuscleGroups []Entry `yaml:"muscle_groups" json:"muscleGroups"`
	Equipment    []Entry `yaml:"equipment" json:"equipment"`
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		// The embedded file is part of the binary
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog override file. An empty path returns the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	c, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog YAML
func Parse(content []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(content, &c); err != nil {
		return nil, err
	}

	for _, kind := range Kinds {
		if err := validate(kind, c.Entries(kind)); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func validate(kind Kind, entries []Entry) error {
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e.Value == "" {
			return fmt.Errorf("%s entry %d has no value", kind, i+1)
		}
		if seen[e.Value] {
			return fmt.Errorf("%s entry %q is listed twice", kind, e.Value)
		}
		seen[e.Value] = true
	}
	return nil
}

// Entries returns the list for a catalog kind
func (c *Catalog) Entries(kind Kind) []Entry {
	switch kind {
	case KindWorkoutTypes:
		return c.WorkoutTypes
	case KindMuscleGroups:
		return c.MuscleGroups
	case KindEquipment:
		return c.Equipment
	}
	return nil
}

// Lookup finds an entry by value
func (c *Catalog) Lookup(kind Kind, value string) (Entry, bool) {
	for _, e := range c.Entries(kind) {
		if e.Value == value {
			return e, true
		}
	}
	return Entry{}, false
}

// Label returns the display name for a value, falling back to the value
func (e Entry) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Value
}

// ParseKind accepts the kind names used on the command line
func ParseKind(s string) (Kind, error) {
	switch s {
	case "workout-types", "workout-type", "workouts", "types":
		return KindWorkoutTypes, nil
	case "muscle-groups", "muscle-group", "muscles":
		return KindMuscleGroups, nil
	case "equipment":
		return KindEquipment, nil
	}
	return "", fmt.Errorf("invalid catalog: %s (must be: workout-types, muscle-groups, or equipment)", s)
}
