package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdkit/cmdkit/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cmdkit version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("cmdkit %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
