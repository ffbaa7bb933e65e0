// Command treefuzz stress tests the trees of package Trees: it runs random
// operation scripts against every strategy, checking every invariant after
// every mutation against a reference ordered set, and benchmarks the strategies
// against other ordered containers.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig string
	cfg        *Config
)

var rootCmd = &cobra.Command{
	Use:           "treefuzz",
	Short:         "stress test and benchmark the balanced search trees",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := LoadConfig(flagConfig, cmd.Flags())
		if err != nil {
			return err
		}
		cfg = c
		setupLogger(c.LogLevel)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default is ./.treefuzz.yaml)")
	pf.String("log-level", DefaultLogLevel, "zerolog level: debug, info, warn, error")
	pf.Uint64("seed", DefaultSeed, "seed of the random operation scripts")
	pf.StringSlice("strategies", DefaultStrategies, "strategies to exercise")

	rootCmd.AddCommand(runCmd, benchCmd)
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("treefuzz failed")
	}
}
