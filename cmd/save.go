package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmdkit/cmdkit/internal/db"
	"github.com/cmdkit/cmdkit/internal/registry"
	"github.com/cmdkit/cmdkit/internal/ui"
	"github.com/cmdkit/cmdkit/internal/user"
)

var saveCmd = &cobra.Command{
	Use:   "save <name> <command>...",
	Short: "Save a named workflow",
	Long: `Save a named workflow with one or more commands. Commands may contain
{{placeholder}} tokens that are filled in at run time. Examples:
  cmdkit save greet 'echo Hello {{name}}'
  cmdkit save deploy 'make build' 'make push {{env}}'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		commands := args[1:]
		desc, _ := cmd.Flags().GetString("description")

		// author: flag overrides stored whoami profile
		authorFlag, _ := cmd.Flags().GetString("author")
		authorEmailFlag, _ := cmd.Flags().GetString("author-email")
		var authorName, authorEmail *string
		if authorFlag != "" {
			authorName = &authorFlag
			if authorEmailFlag != "" {
				authorEmail = &authorEmailFlag
			}
		} else if p, ok, _ := user.GetProfile(); ok {
			if p.Name != "" {
				authorName = &p.Name
			}
			if p.Email != "" {
				authorEmail = &p.Email
			}
		}

		var descPtr *string
		if desc != "" {
			descPtr = &desc
		}

		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		r := registry.NewRepository(dbConn)
		if _, err := r.CreateWorkflow(name, descPtr, authorName, authorEmail, commands); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		ui.Successf(out, "saved workflow '%s' with %d command(s)", name, len(commands))
		if placeholders := registry.FindPlaceholders(commands); len(placeholders) > 0 {
			ui.Infof(out, "detected placeholders: %s", strings.Join(placeholders, ", "))
		}
		return nil
	},
}

func init() {
	saveCmd.Flags().StringP("description", "d", "", "Description for the workflow")
	saveCmd.Flags().StringP("author", "a", "", "Author name (overrides the stored whoami profile)")
	saveCmd.Flags().StringP("author-email", "e", "", "Author email (optional)")
	rootCmd.AddCommand(saveCmd)
}
