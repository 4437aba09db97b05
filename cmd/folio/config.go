package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vnclrd/folio/internal/model"
	"github.com/vnclrd/folio/internal/tui"

	"github.com/spf13/viper"
)

// cliConfig holds only viewer-relevant configuration.
type cliConfig struct {
	Content            string        `mapstructure:"content"`
	Theme              string        `mapstructure:"theme"`
	TickInterval       time.Duration `mapstructure:"tick-interval"`
	ScrollStep         int           `mapstructure:"scroll-step"`
	Dwell              time.Duration `mapstructure:"dwell"`
	Cooldown           time.Duration `mapstructure:"cooldown"`
	WideThreshold      int           `mapstructure:"wide-threshold"`
	CardWidth          int           `mapstructure:"card-width"`
	CardGap            int           `mapstructure:"card-gap"`
	ReverseScrollWheel bool          `mapstructure:"reverse-scroll-wheel"`
	DebugLog           string        `mapstructure:"debug-log"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("FOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("content", "")
	v.SetDefault("theme", model.DefaultTheme)
	v.SetDefault("tick-interval", model.DefaultTickInterval)
	v.SetDefault("scroll-step", model.DefaultScrollStep)
	v.SetDefault("dwell", model.DefaultDwell)
	v.SetDefault("cooldown", model.DefaultCooldown)
	v.SetDefault("wide-threshold", model.DefaultWideThreshold)
	v.SetDefault("card-width", model.DefaultCardWidth)
	v.SetDefault("card-gap", model.DefaultCardGap)
	v.SetDefault("reverse-scroll-wheel", false)
	v.SetDefault("debug-log", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "folio", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	for _, p := range []*string{&cfg.Content, &cfg.DebugLog} {
		if strings.HasPrefix(*p, "~/") {
			*p = filepath.Join(home, (*p)[2:])
		}
	}

	return cfg, nil
}

// options converts the configuration into viewer options, validating the
// carousel timings along the way.
func (c cliConfig) options() (tui.Options, error) {
	opts := tui.DefaultOptions()

	mode, err := tui.ParseThemeMode(c.Theme)
	if err != nil {
		return opts, err
	}
	opts.Theme = mode
	opts.Carousel.TickInterval = c.TickInterval
	opts.Carousel.Step = c.ScrollStep
	opts.Carousel.Dwell = c.Dwell
	opts.Carousel.Cooldown = c.Cooldown
	opts.Carousel.WideThreshold = c.WideThreshold
	opts.CardWidth = c.CardWidth
	opts.CardGap = c.CardGap
	opts.ReverseScrollWheel = c.ReverseScrollWheel

	if err := opts.Carousel.Validate(); err != nil {
		return opts, fmt.Errorf("invalid carousel settings: %w", err)
	}
	return opts, nil
}
