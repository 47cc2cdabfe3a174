package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdkit/cmdkit/internal/db"
	"github.com/cmdkit/cmdkit/internal/registry"
	"github.com/cmdkit/cmdkit/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search workflows by name, description, or command text",
	Long:  "Search workflows. Substring matches come first; when nothing matches, fuzzy matching over names, commands and tags is tried.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]

		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		r := registry.NewRepository(dbConn)
		workflows, err := r.SearchWorkflows(query)
		if err != nil {
			return err
		}
		if len(workflows) == 0 {
			workflows, err = r.FuzzySearchWorkflows(query)
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		if len(workflows) == 0 {
			ui.Infof(out, "no workflows match %q", query)
			return nil
		}
		for _, wf := range workflows {
			fmt.Fprintf(out, "- %s\n", ui.WorkflowSummary(&wf))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
