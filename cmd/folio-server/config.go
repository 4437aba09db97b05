package main

import "github.com/vnclrd/folio/internal/model"

const (
	defaultBindHost = model.DefaultAPIHost
	defaultAPIPort  = model.DefaultAPIPort
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
	Content    string `mapstructure:"content"`
	APIHost    string `mapstructure:"api-host"`
	APIPort    int    `mapstructure:"api-port"`
	APIAddr    string `mapstructure:"api-addr"`
	ConfigPath string `mapstructure:"-"` // not from config file
}
