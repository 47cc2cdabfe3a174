// Package cmd implements the cmdkit command line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cmdkit",
	Short: "cmdkit saves and re-runs named shell workflows",
	Long:  "cmdkit keeps a registry of named shell workflows with {{placeholder}} templating, tags and search",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cmdkit: run 'cmdkit --help' to see available commands")
	},
}

// exitCodeError carries a specific process exit code out of a command.
// Commands returning it have already printed their own diagnostics.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// Execute executes the root command and exits the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var ec *exitCodeError
		if errors.As(err, &ec) {
			os.Exit(ec.code)
		}
		os.Exit(1)
	}
}
