package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"poe-show/internal/config"
	"poe-show/pkg"
	"poe-show/pkg/poe"
	"poe-show/pkg/sonicdb"
)

// cli holds the persistent flags and the configuration they resolve to
type cli struct {
	configPath string
	logLevel   string
	dbConfig   string
	snapshot   string

	cfg *config.Config
}

func newRootCmd() (*cobra.Command, error) {
	c := &cli{cfg: config.Default()}

	cobra.EnablePrefixMatching = true
	rootCmd := &cobra.Command{
		Use:   "show",
		Short: "Show running system information",
		Long: `Show running system information read from the SONiC databases.

Examples:
  show poe interface configuration
  show poe interface state Ethernet0
  show poe status --format json
  show --snapshot dump.yaml poe interface state`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.load,
	}

	c.bindFlags(rootCmd.PersistentFlags())

	if err := poe.Register(rootCmd, poe.Options{Open: c.open, Settings: c.settings}); err != nil {
		return nil, err
	}
	return rootCmd, nil
}

func (c *cli) bindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.configPath, "config", "", "Config file (default "+config.DefaultPath+" when present)")
	flags.StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&c.dbConfig, "db-config", "", "Path of the SONiC database_config.json")
	flags.StringVar(&c.snapshot, "snapshot", "", "Read the databases from a YAML/JSON dump instead of Redis")
}

// load resolves the configuration file and applies flag overrides.
func (c *cli) load(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadConfig(c.configPath)
	} else {
		cfg, err = config.LoadOptional(config.DefaultPath)
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if flags.Changed("db-config") {
		cfg.DatabaseConfig = c.dbConfig
	}
	if flags.Changed("snapshot") {
		cfg.Snapshot = c.snapshot
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := pkg.SetLogLevelFromString(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %v", err)
	}
	c.cfg = cfg
	pkg.WithField("config", c.configPath).Debug("Configuration loaded")
	return nil
}

func (c *cli) open(ctx context.Context) (poe.Backend, error) {
	if c.cfg.Snapshot != "" {
		pkg.Info("Reading snapshot %s", c.cfg.Snapshot)
		return sonicdb.SnapshotOpener(c.cfg.Snapshot)(ctx)
	}
	return sonicdb.Opener(c.cfg.DatabaseConfig)(ctx)
}

func (c *cli) settings() poe.Settings {
	return poe.Settings{
		PortPrefix: c.cfg.PortPrefix,
		Timeout:    c.cfg.Timeout,
	}
}
