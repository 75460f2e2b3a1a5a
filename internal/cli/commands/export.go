package commands

import (
	"github.com/spf13/cobra"

	"ufwlog/pkg/logfile"
	"ufwlog/pkg/output"
)

// ExportOptions holds command-line options for the export command.
type ExportOptions struct {
	Output        string
	SkipMalformed bool
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export <log-file>",
		Short: "Serialize a UFW log to JSON",
		Long: `Parse a UFW log file and write every entry as JSON, one mapping per
entry with unset fields omitted. Output goes to stdout unless -o names
a file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&opts.SkipMalformed, "skip-malformed", false, "Skip lines that fail to parse")

	return cmd
}

func runExport(cmd *cobra.Command, args []string, opts *ExportOptions) error {
	var loadOpts []logfile.Option
	if opts.SkipMalformed {
		loadOpts = append(loadOpts, logfile.SkipMalformed())
	}

	lf, err := logfile.Open(args[0], loadOpts...)
	if err != nil {
		return err
	}
	defer lf.Close()

	entries := lf.Search()
	if opts.Output != "" {
		return output.WriteFile(opts.Output, "json", entries)
	}

	formatter := output.NewJSONFormatter(output.FormatOptions{})
	return formatter.Format(entries, cmd.OutOrStdout())
}
