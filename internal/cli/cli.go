// Package cli implements the bomviz command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bomviz/bomviz/pkg/buildinfo"
	"github.com/bomviz/bomviz/pkg/cache"
	"github.com/bomviz/bomviz/pkg/config"
	"github.com/bomviz/bomviz/pkg/diagram"
)

// appName is the application name used for directories and display.
const appName = "bomviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config
}

// New creates a new CLI instance with a default logger and the user's
// config-file defaults. A malformed config file is reported but never fatal;
// the zero config is used instead.
func New(w io.Writer, level log.Level) *CLI {
	logger := newLogger(w, level)

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("ignoring config file", "err", err)
		cfg = &config.Config{}
	}

	return &CLI{Logger: logger, Config: cfg}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Bomviz turns SPDX SBOM documents into diagrams",
		Long:         `Bomviz is a CLI tool that converts SPDX software bills of materials into mermaid flowcharts and Graphviz diagrams, making package, file and relationship structure visible at a glance.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.mermaidCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// diagramOptions seeds diagram options from the config file. Flag values
// registered against the returned struct override these defaults.
func (c *CLI) diagramOptions() diagram.Options {
	return diagram.Options{
		Compact:             c.Config.Compact,
		MaxPackages:         c.Config.MaxPackages,
		ExcludeExternalRefs: c.Config.ExcludeExternalRefs,
	}
}

// newRenderCache creates the cache used for rendered SVG/PNG artifacts.
// Cache setup failures degrade to the null cache rather than failing the
// render.
func (c *CLI) newRenderCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("cache disabled", "err", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("cache disabled", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/bomviz/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
