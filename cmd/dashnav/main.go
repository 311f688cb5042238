package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ensigniasec/dashnav/internal/app"
	"github.com/ensigniasec/dashnav/internal/config"
	"github.com/ensigniasec/dashnav/internal/navigator"
	"github.com/ensigniasec/dashnav/internal/storage"
	"github.com/ensigniasec/dashnav/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configFile       string
	rootDir          string
	taskFile         string
	tickRate         string
	enhancedGraphics bool
	noLaunch         bool
	verbose          bool
	logFile          string
	printPaths       bool

	rootCmd = &cobra.Command{
		Use:   "dashnav",
		Short: "A terminal dashboard with live charts and a keyboard-driven file browser.",
		Long: `dashnav shows a tabbed dashboard of gauges, charts and an event log next to a directory browser.
Browse with j/k, open with l or enter, go up with h, jump to bookmarks with the digit keys.
On quit, the names in the current listing are written to the task file, one per line.`,
		SilenceUsage: true,
		RunE:         runDashboard,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr so `ls` and `tasks` output stays clean on stdout.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (.yaml, .yml or .toml). Defaults to ~/.config/dashnav/config.yaml")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Directory to list on start (overrides config)")
	rootCmd.PersistentFlags().StringVar(&taskFile, "task-file", "", "File the current listing is saved to on quit (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file; logs are otherwise hidden while the dashboard runs")

	rootCmd.Flags().StringVar(&tickRate, "tick-rate", "", "Interval between chart updates, e.g. 250ms (overrides config)")
	rootCmd.Flags().BoolVar(&enhancedGraphics, "enhanced-graphics", false, "Use enhanced graphics where the terminal supports them")
	rootCmd.Flags().BoolVar(&noLaunch, "no-launch", false, "Never hand files to the OS opener (headless hosts)")

	lsCmd.Flags().BoolVar(&printPaths, "paths", false, "Print absolute paths instead of names")

	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(bookmarksCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		logrus.Fatal(err)
	}
}

// setupLogging applies --verbose and --log-file. It reports whether logs go
// to a file.
func setupLogging() (bool, error) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	if logFile == "" {
		return false, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return false, fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)
	return true, nil
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root = rootDir
	}
	if flags.Changed("task-file") {
		cfg.TaskFile = taskFile
	}
	if flags.Lookup("tick-rate") != nil && flags.Changed("tick-rate") {
		d, err := parseTickRate(tickRate)
		if err != nil {
			return nil, err
		}
		cfg.TickRate = d
	}
	if flags.Lookup("enhanced-graphics") != nil && flags.Changed("enhanced-graphics") {
		cfg.EnhancedGraphics = enhancedGraphics
	}
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newNavigator(cfg *config.Config, launch bool) (*navigator.Navigator, error) {
	var launcher navigator.Launcher = navigator.NoopLauncher{}
	if launch {
		launcher = navigator.NewOSLauncher()
	}
	return navigator.New(
		navigator.NewFSReader(),
		launcher,
		navigator.WithBookmarks(cfg.BookmarkTable()),
		navigator.WithIgnore(cfg.Ignore...),
	)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	toFile, err := setupLogging()
	if err != nil {
		return err
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("dashnav needs an interactive terminal; use `dashnav ls` for plain output")
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	nav, err := newNavigator(cfg, !noLaunch)
	if err != nil {
		return err
	}
	ctrl, err := app.New(cfg, nav)
	if err != nil {
		return err
	}
	return tui.Run(cmd.Context(), ctrl, cfg.TickRate, toFile)
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var lsCmd = &cobra.Command{
	Use:   "ls [DIR]",
	Short: "Print a directory listing the way the dashboard browser sees it",
	Long:  "List the immediate children of DIR (default: the configured root) with ignore patterns applied, in enumeration order.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := setupLogging(); err != nil {
			return err
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dir := cfg.Root
		if len(args) == 1 {
			dir = args[0]
		}
		nav, err := newNavigator(cfg, false)
		if err != nil {
			return err
		}
		list, err := nav.List(dir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, e := range list.Items() {
			if printPaths {
				fmt.Fprintln(out, e.Path)
				continue
			}
			fmt.Fprintln(out, e.Name())
		}
		return nil
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Print the entries saved by the last session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := setupLogging(); err != nil {
			return err
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		f, err := storage.NewTaskFile(cfg.TaskFile)
		if err != nil {
			return err
		}
		lines, err := f.Load()
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved entries.")
			return nil
		}
		if err != nil {
			return err
		}
		for _, l := range lines {
			fmt.Fprintln(cmd.OutOrStdout(), l)
		}
		return nil
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Print the digit-to-path bookmark table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := setupLogging(); err != nil {
			return err
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(cfg.Bookmarks))
		for k := range cfg.Bookmarks {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", k, cfg.Bookmarks[k])
		}
		return nil
	},
}

func main() {
	Execute()
}
