package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/catapult-sh/catapult/internal/adapters/interactive"
	"github.com/catapult-sh/catapult/internal/cli/render"
	"github.com/catapult-sh/catapult/internal/domain"
	"github.com/catapult-sh/catapult/internal/usecase"
)

// NewDeployCmd creates the deploy command.
func NewDeployCmd() *cobra.Command {
	var rawArgs []string

	cmd := &cobra.Command{
		Use:   "deploy [contract]",
		Short: "Deploy a contract from the build directory",
		Long: `Deploy a compiled contract through the configured JSON-RPC endpoint.

Without a contract argument the loaded artifacts are offered interactively,
with the first artifact preselected. Constructor arguments are prompted for
unless supplied with --arg.`,
		Example: `  # Pick a contract interactively and prompt for arguments
  catapult deploy

  # Deploy Token with arguments supplied up front
  catapult deploy Token --arg owner=0xAbC... --arg amount=1000 --arg active=true`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			set, err := app.LoadArtifacts.Run(ctx)
			if err != nil {
				return err
			}

			var ref string
			if len(args) > 0 {
				ref = args[0]
			}
			artifact, err := resolveArtifact(app.Selector, set, ref)
			if err != nil {
				return err
			}
			if artifact == nil {
				app.Notifier.Info("Nothing to deploy")
				return nil
			}

			// Submission gate: both the endpoint and a signing key must
			// be configured before any prompting happens.
			conn := app.ShowConfig.Run(ctx)
			if app.Config.PrivateKeyOverride != "" {
				conn.PrivateKey = app.Config.PrivateKeyOverride
			}
			if !conn.CanDeploy() {
				return fmt.Errorf("%w: run `catapult config set url <rpc-url>` and `catapult config set private-key <key>` first", domain.ErrMissingConnection)
			}

			supplied, err := parseArgFlags(rawArgs)
			if err != nil {
				return err
			}
			values, err := app.Prompter.Collect(artifact.ConstructorInputs(), supplied)
			if err != nil {
				return err
			}

			// One deploy at a time; no cancellation once submitted.
			var spin *spinner.Spinner
			if !app.Config.NonInteractive {
				spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
				spin.Suffix = fmt.Sprintf(" Deploying %s...", artifact.Name)
				spin.Start()
			}

			rec, err := app.DeployContract.Run(ctx, usecase.DeployParams{
				Artifact: artifact,
				Values:   values,
			})

			if spin != nil {
				spin.Stop()
			}
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			return render.NewDeployRenderer(cmd.OutOrStdout(), jsonOut).Render(rec)
		},
	}

	cmd.Flags().StringArrayVar(&rawArgs, "arg", nil, "Constructor argument as name=value (repeatable)")

	return cmd
}

// resolveArtifact picks the artifact to deploy: an explicit reference is
// matched by contract name or filename; otherwise the user selects
// interactively with the first artifact preselected. A nil result with no
// error means there is nothing to deploy.
func resolveArtifact(selector *interactive.Selector, set *domain.ArtifactSet, ref string) (*domain.ContractArtifact, error) {
	if set.Len() == 0 {
		return nil, nil
	}

	if ref != "" {
		for _, key := range set.Order {
			if key == ref || set.Contracts[key].Name == ref {
				return set.Contracts[key], nil
			}
		}
		return nil, fmt.Errorf("contract not found in build directory: %s", ref)
	}

	if set.Len() == 1 {
		return set.Contracts[set.Selected], nil
	}

	options := lo.Map(set.Order, func(key string, _ int) interactive.Option[string] {
		return interactive.Option[string]{Value: key, Text: set.Contracts[key].Name}
	})

	key, err := selector.Pick("Select contract to deploy", options, set.Selected)
	if err != nil {
		return nil, err
	}
	return set.Contracts[key], nil
}

// parseArgFlags turns repeated name=value flags into form values.
func parseArgFlags(raw []string) (domain.FormValues, error) {
	values := domain.FormValues{}
	for _, pair := range raw {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --arg %q, expected name=value", pair)
		}
		values[name] = value
	}
	return values, nil
}
