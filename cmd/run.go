package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdkit/cmdkit/internal/db"
	"github.com/cmdkit/cmdkit/internal/engine"
	"github.com/cmdkit/cmdkit/internal/executor"
	"github.com/cmdkit/cmdkit/internal/interactive"
	"github.com/cmdkit/cmdkit/internal/registry"
	"github.com/cmdkit/cmdkit/internal/resolver"
	"github.com/cmdkit/cmdkit/internal/security"
	"github.com/cmdkit/cmdkit/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run <name> [flags] [-- --key value ...]",
	Short: "Run a saved workflow",
	Long: `Run a saved workflow with placeholder substitution. Placeholder values
can be supplied after a double dash and anything left unresolved is
prompted for. Examples:
  cmdkit run deploy -- --env prod --tag v1.2.3
  cmdkit run deploy --dry-run
  cmdkit run healthcheck --stop-on-success`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	FParseErrWhitelist: cobra.FParseErrWhitelist{
		UnknownFlags: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dry, _ := cmd.Flags().GetBool("dry-run")
		if !dry {
			dry, _ = cmd.Flags().GetBool("dry")
		}
		stopOnFail, _ := cmd.Flags().GetBool("stop-on-fail")
		stopOnSuccess, _ := cmd.Flags().GetBool("stop-on-success")
		force, _ := cmd.Flags().GetBool("force")

		// Mode validation comes first: a conflicting invocation fails
		// before the workflow is even loaded.
		mode, err := engine.SelectMode(stopOnFail, stopOnSuccess)
		if err != nil {
			return fail(cmd, err)
		}

		name := args[0]
		// Everything after the double dash is handed verbatim to the
		// value resolver.
		start := cmd.ArgsLenAtDash()
		if start < 1 {
			start = 1
		}
		trailing := args[start:]

		dbConn, err := db.InitDB()
		if err != nil {
			return fail(cmd, err)
		}
		defer func() { _ = dbConn.Close() }()

		r := registry.NewRepository(dbConn)
		wf, err := r.GetWorkflowByName(name)
		if err != nil {
			return fail(cmd, err)
		}
		if wf == nil {
			return fail(cmd, fmt.Errorf("workflow not found: %s", name))
		}

		templates := wf.CommandStrings()
		placeholders := registry.FindPlaceholders(templates)

		prompter := interactive.New(cmd.InOrStdin(), cmd.OutOrStdout())
		values := resolver.Resolve(placeholders, trailing, func(n string) string {
			return prompter.Prompt(fmt.Sprintf("Enter value for {{%s}}", n))
		})

		rendered, err := registry.RenderCommands(templates, values)
		if err != nil {
			return fail(cmd, err)
		}

		if !dry && !force {
			for _, c := range rendered {
				if err := security.Check(c); err != nil {
					return fail(cmd, fmt.Errorf("refusing to run %q: %v (use --force to override)", c, err))
				}
			}
		}

		out := cmd.OutOrStdout()
		eng := engine.New(executor.New(), out, cmd.ErrOrStderr())
		res, err := eng.Run(context.Background(), rendered, mode, dry)
		if err != nil {
			return fail(cmd, err)
		}

		if dry {
			ui.RenderDryRun(out, name, res)
			return nil
		}

		_ = r.TouchLastRun(wf.ID)
		ui.RenderVerdict(out, name, res)
		if res.ExitCode != 0 {
			return &exitCodeError{code: res.ExitCode}
		}
		return nil
	},
}

// fail prints the diagnostic and maps it to process exit code 1. The run
// command silences cobra's own error printing, so every error path goes
// through here.
func fail(cmd *cobra.Command, err error) error {
	ui.Errorf(cmd.ErrOrStderr(), "%v", err)
	return &exitCodeError{code: 1}
}

func init() {
	runCmd.Flags().Bool("dry-run", false, "Preview commands without executing")
	runCmd.Flags().Bool("dry", false, "Alias for --dry-run")
	runCmd.Flags().BoolP("stop-on-fail", "f", false, "Chain commands with && and stop at the first failure")
	runCmd.Flags().BoolP("stop-on-success", "s", false, "Chain commands with || and stop at the first success")
	runCmd.Flags().Bool("force", false, "Override the destructive-command check")
	_ = runCmd.Flags().MarkHidden("dry")
	rootCmd.AddCommand(runCmd)
}
