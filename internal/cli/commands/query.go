package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ufwlog/pkg/config"
	"ufwlog/pkg/logfile"
	"ufwlog/pkg/output"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// QueryOptions holds command-line options for the query command.
type QueryOptions struct {
	Config        string
	Where         []string
	Output        string
	Verbose       bool
	SkipMalformed bool
}

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	opts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "query <log-file>",
		Short: "Select entries from a UFW log",
		Long: `Parse a UFW log file and print the entries matching every --where
expression. Expressions have the form FIELD OP VALUE with operators
=, !=, >, <, >=, <= and ~ (regex match), e.g.:

  ufwlog query /var/log/ufw.log -w "event=BLOCK" -w "DPT=25565"
  ufwlog query /var/log/ufw.log -w "SRC~^20\." -o json

With no expressions, every entry is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Path to config file")
	cmd.Flags().StringArrayVarP(&opts.Where, "where", "w", nil, "Filter expression (can be repeated, conjunctive)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show all fields in text output")
	cmd.Flags().BoolVar(&opts.SkipMalformed, "skip-malformed", false, "Skip lines that fail to parse")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string, opts *QueryOptions) error {
	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return err
	}

	preds, err := ParseWhere(opts.Where)
	if err != nil {
		return err
	}

	var loadOpts []logfile.Option
	if opts.SkipMalformed || cfg.SkipMalformed {
		loadOpts = append(loadOpts, logfile.SkipMalformed())
	}

	lf, err := logfile.Open(args[0], loadOpts...)
	if err != nil {
		return err
	}
	defer lf.Close()

	format := cfg.Output.Format
	if opts.Output != "" {
		format = opts.Output
	}
	formatter, err := output.New(format, output.FormatOptions{
		Verbose: opts.Verbose || cfg.Output.Verbose,
	})
	if err != nil {
		return err
	}

	return formatter.Format(lf.Search(preds...), cmd.OutOrStdout())
}

// loadConfig reads the given config file, or returns the defaults when no
// path was supplied.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
