package cmd

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/yaixm/internal/config"
	"github.com/npillmayer/yaixm/tnp"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	traceLevel string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "tnp2yaixm",
	SilenceErrors: true,
	Short:         "Convert TNP airspace files to YAIXM",
	Long: `tnp2yaixm reads airspace descriptions in the legacy TNP format and
writes them as a YAIXM airspace document (YAML).

Configuration is read from a TOML file (see --config):

  [trace]
  level = "error"      # error | info | debug
  [input]
  encoding = "utf-8"   # utf-8 | latin1
  [output]
  dedup = true         # remove closing points repeating the first point
  indent = 2`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			if cfg, err = config.Load(cfgFile); err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}
		if cmd.Flags().Changed("trace") {
			cfg.Trace.Level = traceLevel
			if err = cfg.Validate(); err != nil {
				return err
			}
		}
		setupTracing(cfg.Trace.Level)
		return nil
	},
}

// Execute runs the command line. Syntax errors have been reported with
// their source context by the convert command, other errors are printed here.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, tnp.ErrGrammarMismatch) {
		rootCmd.PrintErrln("Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file (TOML)")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "error", "trace level: error | info | debug")
}

func setupTracing(level string) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.SyntaxTracer = gologadapter.New()
	for _, t := range []tracing.Trace{gtrace.CoreTracer, gtrace.SyntaxTracer} {
		switch level {
		case "debug":
			t.SetTraceLevel(tracing.LevelDebug)
		case "info":
			t.SetTraceLevel(tracing.LevelInfo)
		default:
			t.SetTraceLevel(tracing.LevelError)
		}
	}
}
