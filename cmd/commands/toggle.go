package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readysetcloud/fitness-cli/internal/cli"
	"github.com/readysetcloud/fitness-cli/pkg/catalog"
	"github.com/readysetcloud/fitness-cli/pkg/form"
)

var (
	toggleTargetTime   int
	toggleDays         []string
	toggleMuscleGroups []string
	toggleWorkoutTypes []string
	toggleEquipment    []string
	toggleDryRun       bool
)

// NewToggleCommand creates the toggle command
func NewToggleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "toggle",
		Aliases: []string{"set"},
		Short:   "Change workout settings and save them",
		Long: `Load your workout settings, apply the requested changes and save the result.

Days, muscle groups, workout types and equipment are toggled: a value that is
already selected is removed, otherwise it is added. Values are checked against
the catalog (see 'fitness catalog').

Examples:
  # Set the target time to 60 minutes
  fitness toggle --target-time 60

  # Toggle Monday and Friday
  fitness toggle --day M --day friday

  # Toggle a workout type and a piece of equipment
  fitness toggle --workout-type tabata --equipment dumbbells

  # Preview the result without saving
  fitness toggle --muscle-group glutes --dry-run -o json`,
		Args: cobra.NoArgs,
		RunE: runToggle,
	}

	cmd.Flags().IntVar(&toggleTargetTime, "target-time", 0, "Target workout time in minutes (15-90)")
	cmd.Flags().StringSliceVar(&toggleDays, "day", nil, "Weekday to toggle (code or name, repeatable)")
	cmd.Flags().StringSliceVar(&toggleMuscleGroups, "muscle-group", nil, "Muscle group to toggle (repeatable)")
	cmd.Flags().StringSliceVar(&toggleWorkoutTypes, "workout-type", nil, "Workout type to toggle (repeatable)")
	cmd.Flags().StringSliceVar(&toggleEquipment, "equipment", nil, "Equipment to toggle (repeatable)")
	cmd.Flags().BoolVar(&toggleDryRun, "dry-run", false, "Show the resulting settings without saving")

	return cmd
}

// toggleRequest is the set of changes parsed from flags
type toggleRequest struct {
	targetTime   int
	days         []string
	muscleGroups []string
	workoutTypes []string
	equipment    []string
}

func (r toggleRequest) empty() bool {
	return r.targetTime == 0 && len(r.days) == 0 && len(r.muscleGroups) == 0 &&
		len(r.workoutTypes) == 0 && len(r.equipment) == 0
}

// validate resolves weekday names to codes and checks catalog values
func (r *toggleRequest) validate(cat *catalog.Catalog) error {
	if r.targetTime != 0 {
		if err := cli.ValidateTargetTime(r.targetTime); err != nil {
			return err
		}
	}

	for i, day := range r.days {
		code, err := cli.NormalizeWeekday(day)
		if err != nil {
			return err
		}
		r.days[i] = code
	}

	checks := []struct {
		kind   catalog.Kind
		values []string
	}{
		{catalog.KindMuscleGroups, r.muscleGroups},
		{catalog.KindWorkoutTypes, r.workoutTypes},
		{catalog.KindEquipment, r.equipment},
	}
	for _, c := range checks {
		for _, v := range c.values {
			if _, ok := cat.Lookup(c.kind, v); !ok {
				return fmt.Errorf("unknown %s value: %s (run 'fitness catalog %s' for choices)", c.kind, v, c.kind)
			}
		}
	}
	return nil
}

// apply toggles every requested value on the form
func (r toggleRequest) apply(f *form.Form) error {
	if r.targetTime != 0 {
		f.SetTargetTime(r.targetTime)
	}
	for _, day := range r.days {
		if err := f.ToggleDay(day); err != nil {
			return err
		}
	}
	for _, mg := range r.muscleGroups {
		f.ToggleMuscleGroup(mg)
	}
	for _, wt := range r.workoutTypes {
		f.ToggleWorkoutType(wt)
	}
	for _, eq := range r.equipment {
		f.ToggleEquipment(eq)
	}
	return nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	format := outputFormat(cmd)
	if err := cli.ValidateOutputFormat(format); err != nil {
		return err
	}

	req := toggleRequest{
		targetTime:   toggleTargetTime,
		days:         append([]string(nil), toggleDays...),
		muscleGroups: toggleMuscleGroups,
		workoutTypes: toggleWorkoutTypes,
		equipment:    toggleEquipment,
	}
	if req.empty() {
		return fmt.Errorf("nothing to change: pass at least one of --target-time, --day, --muscle-group, --workout-type or --equipment")
	}

	ctx, err := commandContext(cmd)
	if err != nil {
		return err
	}
	cat, err := ctx.Catalog()
	if err != nil {
		return err
	}
	if err := req.validate(cat); err != nil {
		return err
	}

	controller, err := ctx.NewController(cli.NewNotifier(cmd.OutOrStdout(), cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	reqCtx, cancel := ctx.RequestContext(cmd.Context())
	defer cancel()

	if err := controller.Load(reqCtx); err != nil {
		return err
	}

	f := controller.Form()
	if err := req.apply(f); err != nil {
		return err
	}

	if toggleDryRun {
		if format == "text" {
			writeSettings(cmd.OutOrStdout(), f.Settings(), cat)
			return nil
		}
		return cli.OutputResults(cmd.OutOrStdout(), format, f.Settings())
	}

	if !f.Dirty() {
		cli.FprintInfo(cmd.OutOrStdout(), "No changes to save")
		return nil
	}

	if !controller.Save(reqCtx) {
		// The notifier already printed the failure
		return fmt.Errorf("settings were not saved: %w", cli.ErrReported)
	}

	if format != "text" {
		return cli.OutputResults(cmd.OutOrStdout(), format, f.Settings())
	}
	return nil
}
