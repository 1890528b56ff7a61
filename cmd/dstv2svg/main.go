// Command dstv2svg converts DSTV NC files to SVG drawings and PNG previews,
// and serves the conversion over HTTP.
//
// Usage:
//
//	dstv2svg convert part.nc1 -o part.svg --png part.png --faces v,o
//	dstv2svg inspect s3://parts/2024/part.nc1
//	dstv2svg serve --addr :8080
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/dstv/internal/config"
	"github.com/tsawler/dstv/internal/logging"
	"github.com/tsawler/dstv/svg"
)

// app holds the state shared by all commands.
type app struct {
	cfg *config.Config
	log *logging.Logger

	logLevel  string
	logFormat string
	styleFile string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "dstv2svg",
		Short: "Convert DSTV NC files to drawings",
		Long: `Convert DSTV (NC1) steel piece files to multi-face SVG drawings
and PNG previews.

Inputs are local paths or s3://bucket/key URLs. Settings are read
from DSTV_* environment variables; flags override them.

Subcommands:
  convert  - write an SVG drawing and optionally a PNG preview
  inspect  - print the header and record counts of a file
  serve    - run the HTTP conversion service`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.log != nil {
				a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (json or console)")
	root.PersistentFlags().StringVar(&a.styleFile, "style", "", "YAML style sheet")

	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newInspectCmd(a))
	root.AddCommand(newServeCmd(a))
	return root
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Set(config.EnvLogLevel, a.logLevel)
	cfg.Set(config.EnvLogFormat, a.logFormat)
	cfg.Set(config.EnvStyleFile, a.styleFile)
	a.cfg = cfg

	log, err := logging.NewLogger(cfg.Logging())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.log = log
	return nil
}

// style returns the configured style sheet, or the default one.
func (a *app) style() (svg.Style, error) {
	path := a.cfg.StyleFile()
	if path == "" {
		return svg.DefaultStyle(), nil
	}
	return svg.LoadStyleFile(path)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
