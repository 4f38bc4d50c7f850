package command

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/snaptree-go/internal/cli/output"
	"github.com/yndnr/snaptree-go/internal/config"
	"github.com/yndnr/snaptree-go/internal/core/builder"
	"github.com/yndnr/snaptree-go/internal/core/extract"
	"github.com/yndnr/snaptree-go/internal/core/hooknames"
	"github.com/yndnr/snaptree-go/internal/infra/buildinfo"
	"github.com/yndnr/snaptree-go/internal/telemetry/logger"
	"github.com/yndnr/snaptree-go/internal/telemetry/metric"
)

const (
	metaConfig = "config"
	metaLogger = "logger"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "snaptree",
		Usage:   "Snapshot live component trees",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			BuildCommand(),
			WatchCommand(),
			VersionCommand(),
		},
		Before: setup,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Configuration file (YAML)",
			EnvVars: []string{"SNAPTREE_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   string(output.FormatTable),
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show props, context and timing columns in tables",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Override the configured log level",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Log at debug level",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Config   string
	Output   string
	Wide     bool
	LogLevel string
	Verbose  bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Config:   c.String("config"),
		Output:   c.String("output"),
		Wide:     c.Bool("wide"),
		LogLevel: c.String("log-level"),
		Verbose:  c.Bool("verbose"),
	}
}

// setup loads the configuration and installs the logger.
func setup(c *cli.Context) error {
	flags := ParseGlobalFlags(c)
	if _, err := output.ParseFormat(flags.Output); err != nil {
		return err
	}

	cfg, err := config.Load(flags.Config)
	if err != nil {
		return err
	}
	switch {
	case flags.Verbose:
		cfg.Log.Level = "debug"
	case flags.LogLevel != "":
		cfg.Log.Level = flags.LogLevel
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: errWriter(c),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	c.App.Metadata[metaConfig] = cfg
	c.App.Metadata[metaLogger] = log
	return nil
}

// GetConfig returns the configuration loaded by setup, or the defaults.
func GetConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[metaConfig].(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// GetLogger returns the logger installed by setup.
func GetLogger(c *cli.Context) logger.Logger {
	if l, ok := c.App.Metadata[metaLogger].(logger.Logger); ok {
		return l
	}
	return logger.Default()
}

// NewBuilder creates a builder configured by cfg. reg may be nil.
func NewBuilder(cfg *config.Config, store builder.Recorder, log logger.Logger, reg *metric.Registry) (*builder.Builder, error) {
	var names hooknames.Resolver = hooknames.Scanner{}
	if cfg.Snapshot.HookNameCache > 0 {
		cached, err := hooknames.NewCached(hooknames.Scanner{}, cfg.Snapshot.HookNameCache)
		if err != nil {
			return nil, fmt.Errorf("hook name cache: %w", err)
		}
		names = cached
	}

	return builder.New(store,
		builder.WithFilters(cfg.Filters.Filters()),
		builder.WithExtractor(extract.New(extract.Options{
			MaxDepth: cfg.Snapshot.MaxDepth,
			MaxHooks: cfg.Snapshot.MaxHooks,
		})),
		builder.WithNameResolver(names),
		builder.WithTagPrefix(cfg.Snapshot.TagPrefix),
		builder.WithLogger(log),
		builder.WithMetrics(reg),
	), nil
}

// formatter returns the formatter selected by the global flags.
func formatter(c *cli.Context) output.Formatter {
	flags := ParseGlobalFlags(c)
	format, err := output.ParseFormat(flags.Output)
	if err != nil {
		format = output.FormatTable
	}
	return output.NewFormatter(format, flags.Wide)
}

func outWriter(c *cli.Context) io.Writer {
	return c.App.Writer
}

func errWriter(c *cli.Context) io.Writer {
	return c.App.ErrWriter
}
