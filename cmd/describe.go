package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdkit/cmdkit/internal/registry"
	"github.com/cmdkit/cmdkit/internal/ui"
)

var describeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Show a workflow's commands, tags and placeholders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withWorkflow(args[0], func(_ *registry.Repository, wf *registry.Workflow) error {
			fmt.Fprint(cmd.OutOrStdout(), ui.WorkflowDetail(wf))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
