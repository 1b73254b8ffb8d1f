package commands

import (
	"github.com/spf13/cobra"

	"github.com/readysetcloud/fitness-cli/internal/cli"
)

// commandContext loads configuration using the --config flag when the command
// has one (it is persistent on the root command)
func commandContext(cmd *cobra.Command) (*cli.CommandContext, error) {
	path := ""
	if f := cmd.Flags().Lookup("config"); f != nil {
		path = f.Value.String()
	}
	ctx, err := cli.NewCommandContext(path)
	if err != nil {
		return nil, err
	}
	ctx.InitLogging()
	return ctx, nil
}

// outputFormat returns the --output flag value, defaulting to text
func outputFormat(cmd *cobra.Command) string {
	if f := cmd.Flags().Lookup("output"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return string(cli.FormatText)
}
