// Package config provides configuration types and defaults for glint.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for glint.
type Config struct {
	Theme  ThemeConfig  `mapstructure:"theme" yaml:"theme"`
	Follow FollowConfig `mapstructure:"follow" yaml:"follow"`
}

// ThemeConfig holds the color tokens used when rendering highlights.
// Values are hex colors ("#RRGGBB") or ANSI palette indices ("0"-"255").
type ThemeConfig struct {
	HighlightFg string `mapstructure:"highlight_fg" yaml:"highlight_fg"`
	HighlightBg string `mapstructure:"highlight_bg" yaml:"highlight_bg"`
	Error       string `mapstructure:"error" yaml:"error"`
	Subtle      string `mapstructure:"subtle" yaml:"subtle"`
}

// FollowConfig holds options for follow mode (reload on file change).
type FollowConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Theme: ThemeConfig{
			HighlightFg: "#1A1A1A",
			HighlightBg: "#FFD75F",
			Error:       "#FF5F5F",
			Subtle:      "#6C6C6C",
		},
		Follow: FollowConfig{
			Debounce: 250 * time.Millisecond,
		},
	}
}

// HighlightStyle builds the lipgloss style applied to pattern matches.
func (t ThemeConfig) HighlightStyle() lipgloss.Style {
	s := lipgloss.NewStyle()
	if t.HighlightFg != "" {
		s = s.Foreground(lipgloss.Color(t.HighlightFg))
	}
	if t.HighlightBg != "" {
		s = s.Background(lipgloss.Color(t.HighlightBg))
	}
	return s
}

// ErrorStyle builds the style used for error messages in the viewer.
func (t ThemeConfig) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error))
}

// SubtleStyle builds the style used for secondary status text.
func (t ThemeConfig) SubtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Subtle))
}

// WriteDefaultConfig writes a default config file to the given path,
// creating parent directories as needed. Existing files are left alone.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
