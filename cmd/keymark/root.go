package main

import (
	"github.com/spf13/cobra"

	"github.com/dshills/keymark/internal/config"
	"github.com/dshills/keymark/internal/logging"
)

var (
	configPath string
	logLevel   string
	noColor    bool

	cfg    = config.Default()
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "keymark",
	Short: "Bookmarks and breakpoints for text documents",
	Long: `keymark maps line/column bookmarks onto the character ranges of a text
document, the way a debugger front end places breakpoints and bookmarks.

Marks are given as LINE:COL-LINE:COL with an optional @kind suffix, where kind
is one of bookmark, breakpoint, disabled-breakpoint or current-statement.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (.toml, .yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads the configuration and builds the logger shared by every command.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&loaded, nil); err != nil {
		return err
	}
	if err := applyFlags(&loaded); err != nil {
		return err
	}
	cfg = loaded

	opts := cfg.LoggingOptions()
	opts.Output = cmd.ErrOrStderr()
	logger = logging.New(opts, "cmd", cmd.Name())
	logger.Debug("configuration loaded", "path", configPath, "level", cfg.Log.Level)

	setColor(noColor)
	return nil
}

// applyFlags applies command-line overrides, which win over the config file
// and the environment.
func applyFlags(c *config.Config) error {
	if logLevel == "" {
		return nil
	}
	c.Log.Level = logLevel
	return c.Validate()
}
