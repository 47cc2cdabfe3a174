package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cmdkit/cmdkit/internal/importer"
	"github.com/cmdkit/cmdkit/internal/ui"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a workflow store from a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		src := args[0]
		if err := importer.ImportDatabase(src, overwrite); err != nil {
			return err
		}
		ui.Successf(cmd.OutOrStdout(), "imported workflow store from %s", src)
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("overwrite", false, "Replace an existing workflow store")
	rootCmd.AddCommand(importCmd)
}
