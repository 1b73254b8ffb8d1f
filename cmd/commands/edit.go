package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/readysetcloud/fitness-cli/internal/logging"
	"github.com/readysetcloud/fitness-cli/pkg/tui"
)

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit workout settings in the interactive form",
		Long: `Open the interactive settings form. This is also what running 'fitness'
with no subcommand does.

Examples:
  # Open the form
  fitness edit

  # Open the form without workout type hints
  fitness edit --no-hints`,
		Args: cobra.NoArgs,
		RunE: RunEdit,
	}

	cmd.Flags().Bool("no-hints", false, "Hide workout type descriptions")

	return cmd
}

// RunEdit launches the settings form
func RunEdit(cmd *cobra.Command, args []string) error {
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

	showHints := ctx.Config.UI.ShowHints
	if noHints, _ := cmd.Flags().GetBool("no-hints"); noHints {
		showHints = false
	}

	app := tui.NewApp(tui.FormOptions{
		Querier:      client,
		Mutator:      client,
		Catalog:      cat,
		ShowHints:    showHints,
		CompactWidth: ctx.Config.UI.CompactWidth,
		Timeout:      ctx.Config.API.Timeout,
		Logger:       logging.ForComponent(logging.CompUI),
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}
