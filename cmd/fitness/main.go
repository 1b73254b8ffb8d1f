package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/readysetcloud/fitness-cli/cmd/commands"
	"github.com/readysetcloud/fitness-cli/internal/cli"
	"github.com/readysetcloud/fitness-cli/internal/logging"
	"github.com/readysetcloud/fitness-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

var rootCmd = &cobra.Command{
	Use:   "fitness",
	Short: "Terminal client for your workout settings",
	Long: `Fitness edits the preferences that drive your generated workouts: target time,
workout days, workout types, muscle groups and equipment. Run it without a
subcommand to open the interactive form.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor, skipConfirm)
	},
	RunE: commands.RunEdit,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fitness",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fitness version %s\n", version)
	},
}

func init() {
	tui.Version = version

	rootCmd.PersistentFlags().String("config", "", "Config file (default is the user config dir, fitness/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format: text, json, or yaml")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress success and info messages")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable symbols and color in messages")
	rootCmd.PersistentFlags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.Flags().Bool("no-hints", false, "Hide workout type descriptions")

	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewToggleCommand())
	rootCmd.AddCommand(commands.NewCatalogCommand())
	rootCmd.AddCommand(commands.NewEditCommand())
	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Shutdown()

	if err != nil {
		cli.FprintCommandError(os.Stderr, err)
		os.Exit(1)
	}
}
