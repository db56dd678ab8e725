//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"os"

	"github.com/juju/errors"
	"github.com/markkurossi/wide/config"
	"github.com/markkurossi/wide/env"
	"github.com/markkurossi/wide/timing"
	"github.com/markkurossi/wide/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	cfg    *env.Config
	logger = zap.NewNop()
	timer  *timing.Timing
)

var rootCommand = &cobra.Command{
	Use:   "widecalc",
	Short: "Fixed-width multi-precision number theory and distributions.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		conf := config.GetDefaultConfig()
		if path, _ := flags.GetString("config"); path != "" {
			var err error
			conf, _, err = config.LoadConfig(path)
			if err != nil {
				return errors.Trace(err)
			}
		}
		if err := applyFlags(flags, conf); err != nil {
			return errors.Trace(err)
		}

		var err error
		logger, err = newLogger(conf.Log.Debug, conf.Log.Path)
		if err != nil {
			return errors.Trace(err)
		}
		cfg, err = conf.Env(logger)
		if err != nil {
			return errors.Trace(err)
		}
		logger.Debug("configuration",
			zap.Stringer("int", cfg.GetIntType()),
			zap.Stringer("float", cfg.GetFloatType()),
			zap.Int("workers", cfg.GetWorkers()),
			zap.Int("max_iterations", cfg.GetMaxIterations()))

		timer = nil
		if t, _ := flags.GetBool("timing"); t {
			timer = timing.NewTiming("Type")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if timer != nil {
			timer.Print(cmd.OutOrStdout())
		}
		_ = logger.Sync()
	},
	SilenceUsage: true,
}

// applyFlags overrides the configuration values with the command line
// flags that were set.
func applyFlags(flags *pflag.FlagSet, conf *config.Config) error {
	if flags.Changed("int") {
		conf.Int, _ = flags.GetString("int")
	}
	if flags.Changed("float") {
		conf.Float, _ = flags.GetString("float")
	}
	if flags.Changed("workers") {
		conf.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("max-iterations") {
		conf.MaxIterations, _ = flags.GetInt("max-iterations")
	}
	if flags.Changed("debug") {
		conf.Log.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("log-path") {
		conf.Log.Path, _ = flags.GetString("log-path")
	}
	return conf.Validate()
}

// sample records a timing sample if timing is enabled. It returns nil
// if timing is disabled.
func sample(label string, info types.Info) *timing.Sample {
	if timer == nil {
		return nil
	}
	return timer.Sample(label, []string{info.ShortString()})
}

func init() {
	flags := rootCommand.PersistentFlags()
	flags.StringP("config", "c", "", "configuration file path")
	flags.Bool("debug", false, "use debug log mode")
	flags.String("log-path", "", "path of log file")
	flags.Int("workers", 0, "number of concurrent workers (0 = number of CPUs)")
	flags.String("int", env.DefaultIntType.ShortString(), "integer type")
	flags.String("float", env.DefaultFloatType.ShortString(),
		"floating point type")
	flags.Int("max-iterations", env.DefaultMaxIterations,
		"maximum number of refinement iterations")
	flags.Bool("timing", false, "print timing information")

	rootCommand.AddCommand(factorialCommand, combCommand, permCommand,
		gaussCommand, divmodCommand, pmfCommand, meanCommand,
		decompressCommand, verifyCommand)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		logger.Error("failed to execute", zap.Error(err))
		os.Exit(1)
	}
}
