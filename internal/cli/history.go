package cli

import (
	"github.com/spf13/cobra"

	"github.com/catapult-sh/catapult/internal/cli/render"
	"github.com/catapult-sh/catapult/internal/usecase"
)

// NewHistoryCmd creates the history command group.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the deployment history",
		Long: `Show the append-only deployment history: address, contract name,
network, timestamp and the submitted constructor arguments. Records are
never deduplicated, reordered or removed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			history := app.ShowHistory.Run(cmd.Context())

			jsonOut, _ := cmd.Flags().GetBool("json")
			return render.NewHistoryRenderer(cmd.OutOrStdout(), jsonOut).Render(history)
		},
	}

	cmd.AddCommand(newHistoryCopyCmd())

	return cmd
}

func newHistoryCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <#|address>",
		Short: "Copy a deployed address to the clipboard",
		Example: `  # Copy by position in the history listing
  catapult history copy 2

  # Copy by address
  catapult history copy 0xAbC123...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			return app.CopyAddress.Run(cmd.Context(), usecase.CopyAddressParams{Ref: args[0]})
		},
	}
}
