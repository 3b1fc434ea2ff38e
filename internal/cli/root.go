// Package cli is the basket command tree. Every command opens the store,
// dispatches actions against it and prints the result.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"basket/internal/app"
	"basket/internal/config"
	"basket/internal/logging"
)

// Session is one opened store plus the config it was opened with.
type Session struct {
	App    *app.App
	Config config.Config
	Close  func() error
}

type Options struct {
	// Open builds the session a command runs against. OpenDefault is used
	// when nil.
	Open func(configPath, logLevel string) (*Session, error)
	// RunUI runs the interactive interface when no subcommand is given.
	RunUI func(*app.App, config.Config) error
}

type cli struct {
	opts       Options
	configPath string
	listRef    string
	logLevel   string
	sess       *Session
}

// Run executes the command line in args, writing output to stdout and stderr.
func Run(opts Options, args []string, stdout, stderr io.Writer) error {
	if opts.Open == nil {
		opts.Open = OpenDefault
	}
	c := &cli{opts: opts}
	root := c.rootCmd()
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if c.sess != nil && c.sess.Close != nil {
		err = errors.Join(err, c.sess.Close())
	}
	return err
}

// OpenDefault loads the config file, starts file logging and opens the
// configured database.
func OpenDefault(configPath, logLevel string) (*Session, error) {
	path := config.ResolveConfigPath(configPath)
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logPath := cfg.LogPath
	if logPath == "" {
		logPath = logging.DefaultPath()
	}
	logFile, err := logging.OpenFile(logPath)
	if err != nil {
		return nil, err
	}
	logger := logging.Setup(cfg.LogLevel, logFile)
	logger.Debug("config loaded", "path", path, "db", cfg.DBPath)

	a, err := app.Open(cfg, logger)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Session{
		App:    a,
		Config: cfg,
		Close: func() error {
			return errors.Join(a.Close(), logFile.Close())
		},
	}, nil
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "basket",
		Short: "Grocery lists in the terminal",
		Long: `basket keeps grocery lists, items and preferences in a local database.

Run without a subcommand to open the interactive list view.

Examples:
  basket add Milk --qty "1 gallon" --price 4.99
  basket say "buy 2 cartons of eggs"
  basket --list Weekly show
  basket template weekly-essentials`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: c.open,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.opts.RunUI == nil {
				return c.printList(cmd.OutOrStdout())
			}
			return c.opts.RunUI(c.sess.App, c.sess.Config)
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $BASKET_CONFIG or the user config dir)")
	root.PersistentFlags().StringVarP(&c.listRef, "list", "l", "", "list name or id to make current")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(
		c.listsCmd(),
		c.newListCmd(),
		c.showCmd(),
		c.deleteListCmd(),
		c.addCmd(),
		c.editCmd(),
		c.toggleCmd(),
		c.removeCmd(),
		c.sayCmd(),
		c.templateCmd(),
		c.moodCmd(),
		c.mealPlanCmd(),
		c.suggestCmd(),
		c.historyCmd(),
		c.settingsCmd(),
		c.exportCmd(),
	)
	return root
}

func (c *cli) open(cmd *cobra.Command, args []string) error {
	sess, err := c.opts.Open(c.configPath, c.logLevel)
	if err != nil {
		return err
	}
	c.sess = sess
	if c.listRef != "" {
		if _, err := sess.App.SelectList(c.listRef); err != nil {
			return err
		}
	}
	return nil
}

func (c *cli) app() *app.App { return c.sess.App }
