package commands

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/readysetcloud/fitness-cli/internal/cli"
	"github.com/readysetcloud/fitness-cli/pkg/catalog"
	"github.com/readysetcloud/fitness-cli/pkg/models"
)

var (
	showCopy bool
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display your workout settings",
		Long: `Fetch your workout settings from the settings API and display them.

Examples:
  # Show settings
  fitness show

  # Output as JSON or YAML
  fitness show -o json
  fitness show -o yaml

  # Copy the settings JSON to the clipboard
  fitness show --copy`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().BoolVar(&showCopy, "copy", false, "Copy the settings as JSON to the clipboard")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	format := outputFormat(cmd)
	if err := cli.ValidateOutputFormat(format); err != nil {
		return err
	}

	ctx, err := commandContext(cmd)
	if err != nil {
		return err
	}
	cat, err := ctx.Catalog()
	if err != nil {
		return err
	}
	client, err := ctx.NewClient()
	if err != nil {
		return err
	}

	reqCtx, cancel := ctx.RequestContext(cmd.Context())
	defer cancel()

	settings, err := client.GetMySettings(reqCtx)
	if err != nil {
		return err
	}
	settings.Normalize()

	if showCopy {
		data, err := cli.Encode(string(cli.FormatJSON), settings)
		if err != nil {
			return err
		}
		if err := clipboard.WriteAll(string(data)); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.FprintSuccess(cmd.ErrOrStderr(), "Settings copied to clipboard")
	}

	switch format {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), format, settings)
	default:
		writeSettings(cmd.OutOrStdout(), settings, cat)
		return nil
	}
}

// writeSettings renders settings as labelled text
func writeSettings(w io.Writer, s *models.Settings, cat *catalog.Catalog) {
	fmt.Fprintf(w, "Target time:    %d min\n", s.TargetTime)

	var days []string
	for _, d := range models.Weekdays {
		days = append(days, cli.Checkbox(slices.Contains(s.Frequency, d.Code))+" "+d.Name)
	}
	fmt.Fprintf(w, "Workout days:   %s\n", strings.Join(days, "  "))

	var types []string
	for _, wt := range s.WorkoutTypes {
		label := labelFor(cat, catalog.KindWorkoutTypes, wt.Type)
		if wt.Modifier != "" {
			label += " (" + wt.Modifier + ")"
		}
		types = append(types, label)
	}
	fmt.Fprintf(w, "Workout types:  %s\n", listOrNone(types))

	var groups []string
	for _, mg := range s.MuscleGroups {
		groups = append(groups, labelFor(cat, catalog.KindMuscleGroups, mg))
	}
	fmt.Fprintf(w, "Muscle groups:  %s\n", listOrNone(groups))

	var equipment []string
	for _, eq := range s.Equipment {
		equipment = append(equipment, fmt.Sprintf("%s (%.2f)", labelFor(cat, catalog.KindEquipment, eq.Type), eq.Threshold))
	}
	fmt.Fprintf(w, "Equipment:      %s\n", listOrNone(equipment))

	sw := s.SpecialWorkouts
	if len(sw.Days) > 0 || sw.Objective != "" {
		var swDays []string
		for _, d := range sw.Days {
			swDays = append(swDays, models.WeekdayName(d))
		}
		fmt.Fprintf(w, "Special:        %s, %.0f%% chance on %s", listOrNone([]string{sw.Objective}), sw.PercentChance, listOrNone(swDays))
		if len(sw.Equipment) > 0 {
			fmt.Fprintf(w, " with %s", strings.Join(sw.Equipment, ", "))
		}
		fmt.Fprintln(w)
	}
}

func labelFor(cat *catalog.Catalog, kind catalog.Kind, value string) string {
	if e, ok := cat.Lookup(kind, value); ok {
		return e.Label()
	}
	return value
}

func listOrNone(items []string) string {
	var nonEmpty []string
	for _, item := range items {
		if item != "" {
			nonEmpty = append(nonEmpty, item)
		}
	}
	if len(nonEmpty) == 0 {
		return "none"
	}
	return strings.Join(nonEmpty, ", ")
}
