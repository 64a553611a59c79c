package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/glint/internal/config"
	"github.com/zjrosen/glint/internal/log"
	"github.com/zjrosen/glint/internal/ui/viewer"
	"github.com/zjrosen/glint/internal/watcher"
	"github.com/zjrosen/glint/render"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	cfgFile     string
	cfg         config.Config
	pattern     string
	interactive bool
	follow      bool
	debug       bool
)

var rootCmd = &cobra.Command{
	Use:   "glint [file]",
	Short: "Highlight regex matches in terminal text",
	Long: `Highlight all matches of a regular expression in a file or stdin.

With --interactive the file opens in a full-screen viewer where the pattern
is edited live; --follow additionally reloads the file when it changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/glint/config.yaml)")
	rootCmd.Flags().StringVarP(&pattern, "pattern", "e", "",
		"regular expression to highlight")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"open a full-screen viewer with live pattern editing")
	rootCmd.Flags().BoolVarP(&follow, "follow", "f", false,
		"interactive viewer that reloads the file on change")
	rootCmd.Flags().BoolVar(&debug, "debug", false,
		"write debug logs to glint.log")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("theme.highlight_fg", defaults.Theme.HighlightFg)
	viper.SetDefault("theme.highlight_bg", defaults.Theme.HighlightBg)
	viper.SetDefault("theme.error", defaults.Theme.Error)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("follow.debounce", defaults.Follow.Debounce)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, _ := os.UserHomeDir()
		viper.AddConfigPath(filepath.Join(home, ".config", "glint"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file anywhere - create one with the defaults so the
		// theme is discoverable and editable.
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			home, homeErr := os.UserHomeDir()
			if homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "glint", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func run(cmd *cobra.Command, args []string) error {
	if debug || os.Getenv("GLINT_DEBUG") != "" {
		cleanup, err := log.Init("glint.log")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
	} else {
		log.SetEnabled(false)
	}

	if follow {
		interactive = true
		if len(args) == 0 {
			return errors.New("--follow requires a file argument")
		}
	}

	var (
		content []byte
		path    string
		err     error
	)
	if len(args) > 0 {
		path = args[0]
		content, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
	} else {
		content, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	if !interactive {
		return runHighlight(string(content), pattern, cfg.Theme.HighlightStyle(), cmd.OutOrStdout())
	}
	return runViewer(string(content), path)
}

// runHighlight is the one-shot path: highlight everything, print, done.
func runHighlight(content, expr string, style lipgloss.Style, out io.Writer) error {
	if expr == "" {
		return errors.New("--pattern is required (or use --interactive)")
	}
	highlighted, err := render.Highlight(content, expr, style)
	if err != nil {
		return err
	}
	log.Debug(log.CatCLI, "highlighted", "bytes", len(content))
	_, err = fmt.Fprint(out, highlighted)
	return err
}

// runViewer starts the full-screen viewer, wiring up the file watcher when
// follow mode is on.
func runViewer(content, path string) error {
	var changes <-chan struct{}
	if follow {
		w, err := watcher.New(watcher.Config{
			Path:        path,
			DebounceDur: cfg.Follow.Debounce,
		})
		if err != nil {
			return fmt.Errorf("creating watcher: %w", err)
		}
		defer func() { _ = w.Stop() }()

		changes, err = w.Start()
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		log.Info(log.CatWatcher, "following", "path", path)
	}

	model := viewer.New(viewer.Config{
		Content: content,
		Path:    path,
		Pattern: pattern,
		Theme:   cfg.Theme,
		Changes: changes,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// execute runs the root command.
func execute() error {
	return rootCmd.Execute()
}

// setVersion sets the version string (called from main with ldflags).
func setVersion(v string) {
	rootCmd.Version = v
}
