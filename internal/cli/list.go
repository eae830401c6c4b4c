package cli

import (
	"github.com/spf13/cobra"

	"github.com/catapult-sh/catapult/internal/cli/render"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List contract artifacts in the build directory",
		Long: `List the compiled contract artifacts loaded from the build directory.

The whole set is re-read on every invocation; a single malformed artifact
fails the load rather than producing a partial list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			set, err := app.LoadArtifacts.Run(cmd.Context())
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			return render.NewArtifactsRenderer(cmd.OutOrStdout(), jsonOut).Render(set)
		},
	}

	return cmd
}
