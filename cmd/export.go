package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cmdkit/cmdkit/internal/exporter"
	"github.com/cmdkit/cmdkit/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the workflow store to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dst := args[0]
		if err := exporter.ExportDatabase(dst); err != nil {
			return err
		}
		ui.Successf(cmd.OutOrStdout(), "exported workflow store to %s", dst)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
