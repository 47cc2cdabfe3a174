package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdkit/cmdkit/internal/ui"
	"github.com/cmdkit/cmdkit/internal/user"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show or set the author profile used when saving workflows",
	Long: `Show or set the stored author profile. Examples:
  cmdkit whoami
  cmdkit whoami --set 'Ada Lovelace' --email ada@example.com
  cmdkit whoami --clear`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		setName, _ := cmd.Flags().GetString("set")
		email, _ := cmd.Flags().GetString("email")
		clear, _ := cmd.Flags().GetBool("clear")
		out := cmd.OutOrStdout()

		if clear {
			if err := user.ClearProfile(); err != nil {
				return err
			}
			ui.Successf(out, "cleared author profile")
			return nil
		}
		if setName != "" {
			if err := user.SetProfile(user.Profile{Name: setName, Email: email}); err != nil {
				return err
			}
			ui.Successf(out, "saved author profile for %s", setName)
			return nil
		}

		p, ok, err := user.GetProfile()
		if err != nil {
			return err
		}
		if !ok {
			ui.Infof(out, "no author profile stored; set one with: cmdkit whoami --set <name>")
			return nil
		}
		if p.Email != "" {
			fmt.Fprintf(out, "%s <%s>\n", p.Name, p.Email)
		} else {
			fmt.Fprintln(out, p.Name)
		}
		return nil
	},
}

func init() {
	whoamiCmd.Flags().String("set", "", "Store this author name")
	whoamiCmd.Flags().String("email", "", "Store this author email alongside --set")
	whoamiCmd.Flags().Bool("clear", false, "Remove the stored profile")
	rootCmd.AddCommand(whoamiCmd)
}
