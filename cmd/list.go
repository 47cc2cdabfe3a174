package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdkit/cmdkit/internal/db"
	"github.com/cmdkit/cmdkit/internal/registry"
	"github.com/cmdkit/cmdkit/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved workflows",
	Long:  "List saved workflows, optionally filtered by tag or text. Example:\n  cmdkit list --tag release",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		r := registry.NewRepository(dbConn)
		tagFilter, _ := cmd.Flags().GetString("tag")
		textFilter, _ := cmd.Flags().GetString("filter")
		fuzzyFlag, _ := cmd.Flags().GetBool("fuzzy")

		var workflows []registry.Workflow
		switch {
		case tagFilter != "":
			workflows, err = r.ListWorkflowsByTag(tagFilter)
		case textFilter != "" && fuzzyFlag:
			workflows, err = r.FuzzySearchWorkflows(textFilter)
		case textFilter != "":
			workflows, err = r.SearchWorkflows(textFilter)
		default:
			workflows, err = r.ListWorkflows()
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(workflows) == 0 {
			ui.Infof(out, "no workflows found")
			return nil
		}
		for _, wf := range workflows {
			fmt.Fprintf(out, "- %s\n", ui.WorkflowSummary(&wf))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().String("tag", "", "Filter by tag name")
	listCmd.Flags().String("filter", "", "Filter by text search")
	listCmd.Flags().Bool("fuzzy", false, "Enable fuzzy matching for text filter")
	rootCmd.AddCommand(listCmd)
}
