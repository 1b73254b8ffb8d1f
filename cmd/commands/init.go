package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/readysetcloud/fitness-cli/internal/cli"
	"github.com/readysetcloud/fitness-cli/pkg/config"
)

var (
	initEndpoint string
	initToken    string
	initAPIKey   string
	initForce    bool
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file",
		Long: `Create the configuration file used to reach the settings API.

The file is written to the --config path, or to the per-user config directory
(for example ~/.config/fitness/config.yaml). Environment variables such as
FITNESS_ENDPOINT and FITNESS_TOKEN override what is stored in the file.

Examples:
  # Configure an endpoint and token
  fitness init --endpoint https://api.example.com/graphql --token abc123

  # Replace an existing file without asking
  fitness init --endpoint https://api.example.com/graphql --api-key key --force`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().StringVar(&initEndpoint, "endpoint", "", "GraphQL endpoint URL (required)")
	cmd.Flags().StringVar(&initToken, "token", "", "Session token sent in the Authorization header")
	cmd.Flags().StringVar(&initAPIKey, "api-key", "", "API key sent in the x-api-key header")
	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing configuration file")
	_ = cmd.MarkFlagRequired("endpoint")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg, err := config.Read(path)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		confirmed, err := cli.ConfirmFrom(cmd.InOrStdin(), cmd.OutOrStdout(),
			fmt.Sprintf("Configuration %s already exists. Overwrite?", path), false)
		if err != nil {
			return err
		}
		if !confirmed {
			cli.FprintInfo(cmd.OutOrStdout(), "Configuration unchanged")
			return nil
		}
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	cfg.API.Endpoint = initEndpoint
	cfg.API.Token = initToken
	cfg.API.APIKey = initAPIKey
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Write(path, cfg); err != nil {
		return err
	}

	cli.FprintSuccess(cmd.OutOrStdout(), "Wrote configuration to %s", path)
	cli.FprintInfo(cmd.OutOrStdout(), "Run 'fitness' to edit your settings")
	return nil
}
