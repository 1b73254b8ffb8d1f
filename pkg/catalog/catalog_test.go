package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if len(c.WorkoutTypes) == 0 || len(c.MuscleGroups) == 0 || len(c.Equipment) == 0 {
		t.Fatalf("expected all catalogs to be populated: %+v", c)
	}

	for _, wt := range c.WorkoutTypes {
		if wt.Description == "" {
			t.Errorf("workout type %q has no description", wt.Value)
		}
	}

	// Default settings reference these values
	if _, ok := c.Lookup(KindEquipment, "bodyweight exercises"); !ok {
		t.Error("expected bodyweight exercises in equipment catalog")
	}
	if _, ok := c.Lookup(KindWorkoutTypes, "circuit"); !ok {
		t.Error("expected circuit in workout type catalog")
	}
	if _, ok := c.Lookup(KindEquipment, "dumbbells"); !ok {
		t.Error("expected dumbbells in equipment catalog")
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "valid",
			content: "workout_types:\n  - value: circuit\n    name: Circuit\n",
		},
		{
			name:    "missing value",
			content: "muscle_groups:\n  - name: Chest\n",
			wantErr: true,
		},
		{
			name:    "duplicate value",
			content: "equipment:\n  - value: box\n  - value: box\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			content: "equipment: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "equipment:\n  - value: sandbag\n    name: Sandbag\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(c.Equipment) != 1 || c.Equipment[0].Label() != "Sandbag" {
		t.Errorf("unexpected equipment: %+v", c.Equipment)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing catalog file")
	}

	c, err = Load("")
	if err != nil || len(c.WorkoutTypes) == 0 {
		t.Errorf("expected built-in catalog for empty path, got %v, %v", c, err)
	}
}

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"workout-types": KindWorkoutTypes,
		"types":         KindWorkoutTypes,
		"muscles":       KindMuscleGroups,
		"equipment":     KindEquipment,
	}
	for in, want := range tests {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseKind("gear"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestEntryLabel(t *testing.T) {
	if (Entry{Value: "box"}).Label() != "box" {
		t.Error("expected value as fallback label")
	}
	if (Entry{Value: "box", Name: "Plyo Box"}).Label() != "Plyo Box" {
		t.Error("expected name as label")
	}
}
