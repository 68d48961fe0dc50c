package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nicoberrocal/expedicalc/metrics"
	"github.com/nicoberrocal/expedicalc/xlog"
)

var (
	cfgFile    string
	cfgPath    string
	metricsOut string
	verbose    bool
	version    = "dev"
)

var registry = metrics.NewRegistry()

var rootCmd = &cobra.Command{
	Use:     "expedicalc",
	Short:   "Probabilistic expedition risk calculator",
	Long:    `expedicalc computes four-scenario probability breakdowns (optimist, average, pessimist, worst) for an expedition's resources, combat damage, and per-player health.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "gamedata", "config file name (without extension)")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config-path", "", "directory to search for the config file")
	rootCmd.PersistentFlags().StringVar(&metricsOut, "metrics", "", "write Prometheus text-format metrics to this file after running")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func main() {
	xlog.SetLogger(xlog.NewZerologAdapter(newLogger()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}

	if metricsOut != "" {
		f, err := os.Create(metricsOut)
		if err != nil {
			xlog.Error("could not open metrics output", xlog.F("path", metricsOut), xlog.F("error", err))
			return
		}
		defer f.Close()
		if err := registry.Gather(f); err != nil {
			xlog.Error("could not gather metrics", xlog.F("error", err))
		}
	}
}
