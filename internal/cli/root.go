// Package cli provides the command-line interface for ufwlog.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ufwlog/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ufwlog",
		Short: "Query and export UFW firewall logs",
		Long: `ufwlog parses UFW firewall log files into structured records and
lets you query them with composable field filters.

Examples:
  ufwlog scan                              List UFW log files under /var/log
  ufwlog query ufw.log -w "DPT=25565"      Blocked hits on one port
  ufwlog query ufw.log -w "event=BLOCK" -w "SRC~^20\." -o json
  ufwlog export ufw.log -o events.json     Serialize a whole log to JSON`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewQueryCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewScanCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
