// Package cli implements the dsutil command line front end.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/viant/dsutil/encoding/json"
	"github.com/viant/dsutil/internal/config"
	"github.com/viant/dsutil/internal/logger"
)

type app struct {
	configFilename string
	cfg            *config.Config
	mapper         *json.Mapper
}

// NewRootCommand creates the dsutil command tree
func NewRootCommand() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "dsutil",
		Short: "Convert dates, resolve partial dates and split or join delimited values.",
		Long: `dsutil exposes the date and collection utilities on the command line:
date conversion between patterns, partial date boundaries, calendar arithmetic
and exploding or imploding delimited values.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configFilename, "config", "c", "",
		fmt.Sprintf("path to the configuration file (default is '%s')", config.DefaultConfigFilename))
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.Bool("json", false, "print results as JSON")
	flags.Bool("yaml", false, "print results as YAML")

	rootCmd.AddCommand(
		a.convertCommand(),
		a.partialCommand(),
		a.addCommand(),
		a.validateCommand(),
		a.explodeCommand(),
		a.implodeCommand(),
		a.flattenCommand(),
		a.configCommand(),
	)
	return rootCmd
}

// Execute runs the root command until it completes or the process is signalled
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)
	defer stop()
	defer func() {
		_ = logger.Logger().Sync()
	}()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		logger.Error(ctx, err)
		stop()
		_ = logger.Logger().Sync()
		os.Exit(1)
	}
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.configFilename)
	if err != nil {
		return err
	}
	if err = bindFlagsToConfig(cmd.Flags(), cfg); err != nil {
		return err
	}
	logger.SetLevel(cfg.ParsedLogLevel)

	a.cfg = cfg
	a.mapper, err = json.New(json.WithIndent(cfg.JSONIndent), json.WithDatePattern(cfg.DatePattern))
	if err != nil {
		return err
	}
	logger.DebugKV(cmd.Context(), "configuration loaded", "command", cmd.Name(), "json", cfg.JSON)
	return nil
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flag := flags.Lookup("json"); flag != nil && flag.Changed {
		cfg.JSON, _ = flags.GetBool("json")
	}
	if flag := flags.Lookup("yaml"); flag != nil && flag.Changed {
		cfg.YAML, _ = flags.GetBool("yaml")
	}
	return config.ValidateConfig(cfg)
}

// print writes value as JSON or YAML when enabled, otherwise every plain line
func (a *app) print(cmd *cobra.Command, value any, lines ...string) error {
	out := cmd.OutOrStdout()
	switch {
	case a.cfg.JSON:
		text, err := a.mapper.Stringify(value)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, text)
		return err
	case a.cfg.YAML:
		data, err := yaml.Marshal(value)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.JSON {
				return a.print(cmd, a.cfg)
			}
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
