package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/lixenwraith/bomaye/config"
	"github.com/lixenwraith/bomaye/name"
	"github.com/lixenwraith/bomaye/plan"
)

// envPrefix maps flags to BOMAYE_* variables, the same prefix config.ApplyEnv reads
const envPrefix = "BOMAYE"

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is the normal case
	_ = godotenv.Load()

	rootCmd := buildCLI(os.Stdout)
	return rootCmd.ParseAndRun(context.Background(), os.Args[1:])
}

// presentOptions are the flags of a live run
type presentOptions struct {
	configPath string
	name       string
	url        string
	seed       uint64
	debug      bool
	audio      bool
	hold       time.Duration
}

func registerPresentFlags(fs *flag.FlagSet) *presentOptions {
	opts := &presentOptions{}
	fs.StringVar(&opts.configPath, "config", "", "TOML config file")
	fs.StringVar(&opts.name, "name", "", "Display name as FIRST_LAST")
	fs.StringVar(&opts.url, "url", "", "Take the name from the query of this address (text between the first two '?')")
	fs.Uint64Var(&opts.seed, "seed", 0, "Random seed (0 keeps the configured seed, or picks one)")
	fs.BoolVar(&opts.debug, "debug", false, "Write logs/bomaye.log and show the status line")
	fs.BoolVar(&opts.audio, "audio", false, "Play audio cues")
	fs.DurationVar(&opts.hold, "hold", 0, "Exit this long after the presentation finishes (0 waits for Esc, q or Ctrl-C)")
	return opts
}

func buildCLI(stdout io.Writer) *ffcli.Command {
	envOpts := []ff.Option{ff.WithEnvVarPrefix(envPrefix)}

	// Run command
	runFlagSet := flag.NewFlagSet("bomaye run", flag.ExitOnError)
	runOpts := registerPresentFlags(runFlagSet)

	runCmd := &ffcli.Command{
		Name:       "run",
		ShortUsage: "bomaye run [flags]",
		ShortHelp:  "Play the title sequence",
		FlagSet:    runFlagSet,
		Options:    envOpts,
		Exec: func(ctx context.Context, _ []string) error {
			return execPresent(ctx, *runOpts)
		},
	}

	// Plan command
	planFlagSet := flag.NewFlagSet("bomaye plan", flag.ExitOnError)
	planConfig := planFlagSet.String("config", "", "TOML config file")
	planName := planFlagSet.String("name", "", "Display name as FIRST_LAST")
	planURL := planFlagSet.String("url", "", "Take the name from the query of this address")
	planSeed := planFlagSet.Uint64("seed", 0, "Random seed (0 keeps the configured seed)")
	planOut := planFlagSet.String("out", "", "Write the plan to this file instead of stdout")

	planCmd := &ffcli.Command{
		Name:       "plan",
		ShortUsage: "bomaye plan [flags]",
		ShortHelp:  "Compute the choreography without a screen and print it as YAML",
		FlagSet:    planFlagSet,
		Options:    envOpts,
		Exec: func(_ context.Context, _ []string) error {
			return execPlan(stdout, *planConfig, resolveName(*planName, *planURL), *planSeed, *planOut)
		},
	}

	// Config command
	configFlagSet := flag.NewFlagSet("bomaye config", flag.ExitOnError)
	configPath := configFlagSet.String("config", "", "TOML config file")

	configCmd := &ffcli.Command{
		Name:       "config",
		ShortUsage: "bomaye config [flags]",
		ShortHelp:  "Print the effective configuration as TOML",
		FlagSet:    configFlagSet,
		Options:    envOpts,
		Exec: func(_ context.Context, _ []string) error {
			return execConfig(stdout, *configPath)
		},
	}

	// Root command
	rootFlagSet := flag.NewFlagSet("bomaye", flag.ExitOnError)
	rootOpts := registerPresentFlags(rootFlagSet)

	return &ffcli.Command{
		ShortUsage:  "bomaye [flags] <subcommand>",
		ShortHelp:   "A terminal title sequence: waveform, flash burst, filmstrip and a revealed name",
		LongHelp:    "Controls:\n  Esc, q, Ctrl-C   Quit\n\nEnvironment:\n  BOMAYE_* variables override config keys and flags; a .env file is loaded if present",
		FlagSet:     rootFlagSet,
		Options:     envOpts,
		Subcommands: []*ffcli.Command{runCmd, planCmd, configCmd},
		Exec: func(ctx context.Context, _ []string) error {
			return execPresent(ctx, *rootOpts)
		},
	}
}

// loadConfig layers defaults, the optional TOML file, BOMAYE_* variables and the seed flag
func loadConfig(path string, seed uint64) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// resolveName prefers the name carried by url, falling back to the explicit name
func resolveName(raw, url string) string {
	if url != "" {
		if fromURL, ok := name.FromURL(url); ok {
			return fromURL
		}
	}
	return raw
}

func execPlan(stdout io.Writer, configPath, raw string, seed uint64, out string) error {
	cfg, err := loadConfig(configPath, seed)
	if err != nil {
		return err
	}
	// A plan is only useful with the seed it was drawn from
	cfg.Seed = resolveSeed(cfg.Seed)

	p, err := plan.Build(cfg, raw)
	if err != nil {
		return err
	}
	p.RunID = uuid.NewString()

	if out != "" {
		return plan.WritePlan(p, out)
	}
	return plan.Encode(stdout, p)
}

func execConfig(stdout io.Writer, configPath string) error {
	cfg, err := loadConfig(configPath, 0)
	if err != nil {
		return err
	}
	data, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
