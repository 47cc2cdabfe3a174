package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdkit/cmdkit/internal/db"
	"github.com/cmdkit/cmdkit/internal/registry"
)

var tagCmd = &cobra.Command{
	Use:   "tag <workflow> <tag>",
	Short: "Manage workflow tags",
	Long:  "Manage workflow tags. `cmdkit tag <workflow> <tag>` adds a tag; add, remove and list subcommands are also available.",
	Args:  cobra.ExactArgs(2),
	// bare `cmdkit tag deploy release` is shorthand for `tag add`
	RunE: func(cmd *cobra.Command, args []string) error {
		return tagAddCmd.RunE(cmd, args)
	},
}

var tagAddCmd = &cobra.Command{
	Use:   "add <workflow> <tag>",
	Short: "Add a tag to a workflow",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, tag := args[0], args[1]
		return withWorkflow(name, func(r *registry.Repository, wf *registry.Workflow) error {
			if err := r.AddTag(wf.ID, tag); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added tag '%s' to '%s'\n", tag, name)
			return nil
		})
	},
}

var tagRemoveCmd = &cobra.Command{
	Use:   "remove <workflow> <tag>",
	Short: "Remove a tag from a workflow",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, tag := args[0], args[1]
		return withWorkflow(name, func(r *registry.Repository, wf *registry.Workflow) error {
			if err := r.RemoveTag(wf.ID, tag); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed tag '%s' from '%s'\n", tag, name)
			return nil
		})
	},
}

var tagListCmd = &cobra.Command{
	Use:   "list <workflow>",
	Short: "List tags for a workflow",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withWorkflow(args[0], func(r *registry.Repository, wf *registry.Workflow) error {
			tags, err := r.ListTags(wf.ID)
			if err != nil {
				return err
			}
			for _, t := range tags {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", t)
			}
			return nil
		})
	},
}

// withWorkflow opens the store, looks the workflow up by name and hands it
// to fn, mapping a missing workflow to an error.
func withWorkflow(name string, fn func(*registry.Repository, *registry.Workflow) error) error {
	dbConn, err := db.InitDB()
	if err != nil {
		return err
	}
	defer func() { _ = dbConn.Close() }()

	r := registry.NewRepository(dbConn)
	wf, err := r.GetWorkflowByName(name)
	if err != nil {
		return err
	}
	if wf == nil {
		return fmt.Errorf("workflow not found: %s", name)
	}
	return fn(r, wf)
}

func init() {
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRemoveCmd)
	tagCmd.AddCommand(tagListCmd)
	rootCmd.AddCommand(tagCmd)
}
