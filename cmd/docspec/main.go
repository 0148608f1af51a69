package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/toyz/docspec/internal/cli"
	"github.com/toyz/docspec/internal/utils"
)

// Set at build time through -ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	output  string
	format  string
	addr    string
	adapter string
	verbose bool
	quiet   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &options{}
	rootCmd := newRootCommand(opts, stdout, stderr)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		diag := utils.NewDiagnosticSystem(utils.LevelFromFlags(opts.verbose, opts.quiet)).SetOutput(stdout, stderr)
		cli.ReportError(diag, err, opts.verbose)
	}
	return cli.ExitCode(err)
}

func newRootCommand(opts *options, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docspec",
		Short: "docspec extracts API documentation from annotated doc comments.",
		Long: `docspec scans a source tree for /** ... */ doc comments tagged with
@application, @module and @route, and assembles them into one application
document. The document can be written as JSON, YAML, OpenAPI or Markdown, or served
by a mock HTTP server that answers every documented route.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose output and detailed error reporting")
	rootCmd.PersistentFlags().BoolVar(&opts.quiet, "quiet", false, "Only show errors")

	extractCmd := &cobra.Command{
		Use:   "extract [path]",
		Short: "Extract the application document from a source tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args, opts)
			if err != nil {
				return err
			}

			// Keep stdout clean for the document itself.
			diagOut := stdout
			if cfg.Output == "" {
				diagOut = stderr
			}
			diag := utils.NewDiagnosticSystem(cfg.Level()).SetOutput(diagOut, stderr)

			extractor, err := cli.NewExtractor(cfg, diag)
			if err != nil {
				return err
			}
			return extractor.Extract(cmd.Context(), stdout)
		},
	}
	extractCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the document to this file instead of stdout")
	extractCmd.Flags().StringVarP(&opts.format, "format", "f", "", "Document format: json, yaml, openapi or markdown")

	serveCmd := &cobra.Command{
		Use:   "serve [path]",
		Short: "Serve every documented route from a mock HTTP server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args, opts)
			if err != nil {
				return err
			}
			diag := utils.NewDiagnosticSystem(cfg.Level()).SetOutput(stdout, stderr)
			return cli.Serve(cmd.Context(), cfg, diag)
		},
	}
	serveCmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address, host:port")
	serveCmd.Flags().StringVar(&opts.adapter, "adapter", "", "HTTP framework: echo, fiber or gin")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of docspec",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docspec version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commit)
			fmt.Fprintf(cmd.OutOrStdout(), "built at: %s\n", date)
		},
	}

	rootCmd.AddCommand(extractCmd, serveCmd, versionCmd)
	return rootCmd
}

// loadConfig reads the configuration of the scanned path and lays the
// command-line flags over it
func loadConfig(cmd *cobra.Command, args []string, opts *options) (*cli.Config, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg, err := cli.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = opts.addr
	}
	if flags.Changed("adapter") {
		cfg.Server.Adapter = opts.adapter
	}
	cfg.Verbose = opts.verbose
	cfg.Quiet = opts.quiet

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
