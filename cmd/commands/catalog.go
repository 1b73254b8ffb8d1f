package commands

import (
	"github.com/spf13/cobra"

	"github.com/readysetcloud/fitness-cli/internal/cli"
	"github.com/readysetcloud/fitness-cli/pkg/catalog"
)

// NewCatalogCommand creates the catalog command
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog [workout-types|muscle-groups|equipment]",
		Short: "List the choices for workout types, muscle groups and equipment",
		Long: `List the values accepted by 'fitness toggle'.

Without an argument all three lists are shown.

Examples:
  # List everything
  fitness catalog

  # List workout types with descriptions
  fitness catalog workout-types

  # List equipment as JSON
  fitness catalog equipment -o json`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(catalog.KindWorkoutTypes), string(catalog.KindMuscleGroups), string(catalog.KindEquipment)},
		RunE:      runCatalog,
	}

	return cmd
}

func runCatalog(cmd *cobra.Command, args []string) error {
	format := outputFormat(cmd)
	if err := cli.ValidateOutputFormat(format); err != nil {
		return err
	}

	kinds := catalog.Kinds
	if len(args) == 1 {
		kind, err := catalog.ParseKind(args[0])
		if err != nil {
			return err
		}
		kinds = []catalog.Kind{kind}
	}

	ctx, err := commandContext(cmd)
	if err != nil {
		return err
	}
	cat, err := ctx.Catalog()
	if err != nil {
		return err
	}

	if format != "text" {
		result := make(map[string][]catalog.Entry, len(kinds))
		for _, kind := range kinds {
			result[string(kind)] = cat.Entries(kind)
		}
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("KIND", "VALUE", "NAME", "DESCRIPTION")
	for _, kind := range kinds {
		for _, e := range cat.Entries(kind) {
			table.Row(string(kind), e.Value, e.Label(), cli.TruncateString(e.Description, 60))
		}
	}
	table.Flush()
	return nil
}
