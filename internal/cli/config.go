package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/catapult-sh/catapult/internal/adapters/repository/state"
	"github.com/catapult-sh/catapult/internal/cli/render"
	"github.com/catapult-sh/catapult/internal/usecase"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or edit connection settings",
		Long: `Show or edit the JSON-RPC connection settings: endpoint url, chain id
and signing private key.

Settings are persisted as clear-text JSON under the data directory,
private key included. Use CATAPULT_PRIVATE_KEY if the key must stay off
disk. The chain id is stored but not passed to the provider; the chain id
always comes from the endpoint itself.`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current connection settings",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})

	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	cfg := app.ShowConfig.Run(cmd.Context())

	jsonOut, _ := cmd.Flags().GetBool("json")
	return render.NewConfigRenderer(cmd.OutOrStdout(), jsonOut).
		Render(cfg, app.Store.Path(state.KeyRPCConfig))
}

func newConfigSetCmd() *cobra.Command {
	fieldNames := lo.Map(usecase.ConfigFields, func(f usecase.ConfigField, _ int) string {
		return string(f)
	})

	return &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set one connection settings field",
		Long: fmt.Sprintf(`Set one field of the connection settings; the other fields are kept
verbatim. Fields: %v.

A non-numeric chain-id is stored as the invalid sentinel rather than
rejected; fix it by setting a numeric value.`, fieldNames),
		Example: `  catapult config set url http://localhost:8545
  catapult config set chain-id 31337
  catapult config set private-key 0xac09...`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			next, err := app.SetConfig.Run(cmd.Context(), usecase.SetConfigParams{
				Field:    usecase.ConfigField(args[0]),
				RawValue: args[1],
			})
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			return render.NewConfigRenderer(cmd.OutOrStdout(), jsonOut).
				Render(next, app.Store.Path(state.KeyRPCConfig))
		},
	}
}
