package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catapult-sh/catapult/internal/app"
	"github.com/catapult-sh/catapult/internal/cli/render"
	"github.com/catapult-sh/catapult/internal/config"
	"github.com/catapult-sh/catapult/internal/logging"
)

// contextKey is the type for context keys
type contextKey string

const appKey contextKey = "app"

// NewRootCmd creates the catapult root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catapult",
		Short: "Deploy compiled contract artifacts over JSON-RPC",
		Long: `Catapult loads compiler-output JSON artifacts from a build directory,
collects constructor arguments, deploys contracts through a JSON-RPC
endpoint and keeps an append-only deployment history.

Connection settings, including the signing private key, are persisted as
clear-text JSON under the data directory. Prefer CATAPULT_PRIVATE_KEY (or a
.env file) if you do not want the key written to disk.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Name() {
			case "version", "help", "completion":
				return nil
			}

			projectRoot, _ := cmd.Flags().GetString("project-root")
			v := config.SetupViper(projectRoot, cmd)

			log := logging.NewLogger()
			notifier := render.NewToastNotifier(cmd.ErrOrStderr())

			appInstance, err := app.InitApp(v, log, notifier)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("project-root", ".", "Directory to operate in")
	rootCmd.PersistentFlags().String("build-dir", "build", "Directory holding compiler-output JSON artifacts")
	rootCmd.PersistentFlags().String("data-dir", ".catapult", "Directory for persisted settings and history")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output raw JSON instead of tables")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	listCmd := NewListCmd()
	listCmd.GroupID = "main"
	rootCmd.AddCommand(listCmd)

	historyCmd := NewHistoryCmd()
	historyCmd.GroupID = "main"
	rootCmd.AddCommand(historyCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance stored by PersistentPreRunE.
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance, ok := cmd.Context().Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return appInstance, nil
}
