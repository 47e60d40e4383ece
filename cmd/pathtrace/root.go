package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/asciipath/batch"
	"github.com/katalvlaran/asciipath/config"
	"github.com/katalvlaran/asciipath/grid"
	"github.com/katalvlaran/asciipath/walker"
)

// flags holds the raw command line values; only flags the user set
// override the loaded configuration.
type flags struct {
	configPath string
	envFile    string
	maxSteps   int
	noCycle    bool
	format     string
	parallel   int
	verbose    bool
}

// input is one diagram to walk.
type input struct {
	name string
	grid grid.Grid
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var (
		f      flags
		logger *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "pathtrace [file ...]",
		Short: "Follow the path in an ASCII diagram and collect its letters",
		Long: `pathtrace walks an ASCII diagram from the entry marker '>' to the stop
marker 's', turning at '+' junctions and collecting the letters A-Z it passes.

Each file argument is one diagram. With no file, or with "-", the diagram is
read from standard input.

Configuration sources, lowest precedence first: built-in defaults, the YAML
file given by --config, the .env file and PATHTRACE_* environment variables,
then command line flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			if f.verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			logger.Debug("configuration resolved",
				zap.Int("max_steps", cfg.MaxSteps),
				zap.Bool("cycle_detection", cfg.CycleDetection),
				zap.String("format", cfg.Format),
				zap.Int("parallel", cfg.Parallel))

			inputs, err := readInputs(stdin, args)
			if err != nil {
				return err
			}

			opts, err := cfg.Options()
			if err != nil {
				return err
			}
			opts = append(opts, walker.WithLogger(logger))

			grids := make([]grid.Grid, len(inputs))
			for i, in := range inputs {
				grids[i] = in.grid
			}
			results, err := batch.Walk(cmd.Context(), grids, cfg.Parallel, opts...)
			if err != nil {
				return err
			}
			for i, res := range results {
				logger.Info("walk finished",
					zap.String("input", inputs[i].name),
					zap.Stringer("status", res.Status),
					zap.Int("steps", res.Steps))
			}

			return render(stdout, cfg.Format, inputs, results)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fs.StringVar(&f.envFile, "env-file", ".env", "dotenv file with PATHTRACE_* variables (skipped when absent)")
	fs.IntVar(&f.maxSteps, "max-steps", -1, "stop after this many cells (-1 = unlimited)")
	fs.BoolVar(&f.noCycle, "no-cycle-detection", false, "disable the repeated-state guard")
	fs.StringVarP(&f.format, "format", "o", config.FormatText, "output format: text or json")
	fs.IntVar(&f.parallel, "parallel", 0, "maximum concurrent walks (0 = unlimited)")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// resolveConfig layers defaults, the YAML file, the environment and the
// flags that were set explicitly.
func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return cfg, err
		}
	}

	if err := config.LoadDotEnv(f.envFile); err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	fs := cmd.Flags()
	if fs.Changed("max-steps") {
		cfg.MaxSteps = f.maxSteps
	}
	if fs.Changed("no-cycle-detection") {
		cfg.CycleDetection = !f.noCycle
	}
	if fs.Changed("format") {
		cfg.Format = f.format
	}
	if fs.Changed("parallel") {
		cfg.Parallel = f.parallel
	}

	return cfg, cfg.Validate()
}

// readInputs loads each named file, or stdin for "-" or no arguments.
func readInputs(stdin io.Reader, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	inputs := make([]input, 0, len(args))
	for _, name := range args {
		var (
			data []byte
			err  error
		)
		if name == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		inputs = append(inputs, input{name: name, grid: grid.FromText(string(data))})
	}

	return inputs, nil
}
