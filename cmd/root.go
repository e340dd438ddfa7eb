package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/dev-shimada/csv2md/internal/config"
	"github.com/dev-shimada/csv2md/internal/convert"
	internalhttp "github.com/dev-shimada/csv2md/internal/http"
	"github.com/dev-shimada/csv2md/internal/source"
	"github.com/spf13/cobra"
)

type flags struct {
	header     bool
	sep        string
	columns    string
	aligned    bool
	output     string
	configPath string
	timeout    int
	verbose    bool
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "csv2md <csv>",
		Short: "Convert a plaintext table to markdown.",
		Long: `Convert a delimited plaintext table (CSV by default) to a markdown table.
The table is printed to standard out, ready to be appended to a document:

  csv2md table.csv --header >> README.md
  csv2md table.tsv --columns Package,Version --sep $'\t' >> README.md`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setLogger(cmd.ErrOrStderr(), f.verbose)

			opts, err := f.options(cmd, args[0])
			if err != nil {
				return err
			}
			slog.Debug(fmt.Sprintf("options: %+v", opts))

			client := internalhttp.NewClient(time.Duration(opts.Timeout) * time.Second)
			opener := source.NewOpener(client)
			return convert.New(opts, opener, cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&f.header, "header", false, "Does the input file have a header?")
	cmd.Flags().StringVar(&f.sep, "sep", config.DefaultSep, "Character(s) that separate the columns")
	cmd.Flags().StringVar(&f.columns, "columns", "", "Names for the columns, required if the file does not have a header. Separate with ',' ex: Package,Version")
	cmd.Flags().BoolVarP(&f.aligned, "aligned", "a", false, "Pad cells so the columns line up")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Write the table to this file instead of standard out")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML file with default options")
	cmd.Flags().IntVarP(&f.timeout, "timeout", "t", config.DefaultTimeout, "Timeout in seconds for http(s) inputs")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable verbose output")
	return cmd
}

// options layers the defaults, the config file and the flags set on the command line, in that order.
func (f *flags) options(cmd *cobra.Command, path string) (config.Options, error) {
	opts := config.Default()
	if f.configPath != "" {
		file, err := config.LoadFile(f.configPath)
		if err != nil {
			return opts, err
		}
		file.Apply(&opts)
	}

	changed := cmd.Flags().Changed
	if changed("header") {
		opts.Header = f.header
	}
	if changed("sep") {
		opts.Sep = f.sep
	}
	if changed("columns") {
		opts.Columns = config.ParseColumns(f.columns)
	}
	if changed("aligned") {
		opts.Aligned = f.aligned
	}
	if changed("output") {
		opts.Output = f.output
	}
	if changed("timeout") {
		opts.Timeout = f.timeout
	}
	opts.Path = path
	return opts, nil
}

func setLogger(w io.Writer, verbose bool) {
	// ログレベルの設定
	var programLevel = new(slog.LevelVar)
	switch {
	case verbose:
		programLevel.Set(slog.LevelDebug)
	default:
		programLevel.Set(slog.LevelInfo)
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: programLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	// logをslog経由で出力
	log.SetOutput(slog.NewLogLogger(handler, slog.LevelInfo).Writer())
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error(fmt.Sprintf("command execution failed: %v", err))
		stop()
		os.Exit(1)
	}
}
