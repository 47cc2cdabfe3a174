package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cmdkit/cmdkit/internal/db"
	"github.com/cmdkit/cmdkit/internal/registry"
	"github.com/cmdkit/cmdkit/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse workflows in an interactive terminal UI",
	RunE: func(_ *cobra.Command, _ []string) error {
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		r := registry.NewRepository(dbConn)
		summaries, err := r.ListWorkflows()
		if err != nil {
			return err
		}
		// the browser shows commands and placeholders, so load each
		// workflow in full
		workflows := make([]registry.Workflow, 0, len(summaries))
		for _, s := range summaries {
			wf, err := r.GetWorkflowByName(s.Name)
			if err != nil {
				return err
			}
			if wf != nil {
				workflows = append(workflows, *wf)
			}
		}

		p := tui.NewProgram(workflows)
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
