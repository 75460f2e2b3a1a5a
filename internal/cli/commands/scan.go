package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ufwlog/pkg/logfile"
)

// ScanOptions holds command-line options for the scan command.
type ScanOptions struct {
	Config  string
	Pattern string
	Verify  bool
}

// NewScanCommand creates the scan command.
func NewScanCommand() *cobra.Command {
	opts := &ScanOptions{}

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "List candidate UFW log files",
		Long: `List the files in a directory whose names match the UFW log pattern
(^ufw.* by default). With --verify, each candidate's first line is
parsed to confirm it really is a UFW log.

Exit codes:
  0 - All candidates listed (and verified, with --verify)
  1 - One or more candidates failed verification
  2 - Runtime error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Path to config file")
	cmd.Flags().StringVarP(&opts.Pattern, "pattern", "p", "", "File name pattern (regex, matched at start of name)")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "Parse each candidate's first line to confirm the format")

	return cmd
}

func runScan(cmd *cobra.Command, args []string, opts *ScanOptions) error {
	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return err
	}

	dir := cfg.LogDir
	if len(args) == 1 {
		dir = args[0]
	}
	pattern := cfg.FilePattern
	if opts.Pattern != "" {
		pattern = opts.Pattern
	}

	paths, err := logfile.Find(dir, pattern)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, path := range paths {
		if !opts.Verify {
			fmt.Fprintln(w, path)
			continue
		}
		if err := logfile.Verify(path); err != nil {
			fmt.Fprintf(w, "%s: %v\n", path, err)
			ExitCode = 1
			continue
		}
		fmt.Fprintf(w, "%s: ok\n", path)
	}

	return nil
}
