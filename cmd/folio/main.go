package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/vnclrd/folio/internal/content"
	"github.com/vnclrd/folio/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var contentPath string
	var theme string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/folio/config.yml)")
	flag.StringVar(&contentPath, "content", "", "portfolio YAML document (default is the built-in one)")
	flag.StringVar(&theme, "theme", "", "colour scheme: auto, dark or light")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Folio - Terminal Portfolio\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if contentPath != "" {
		cfg.Content = contentPath
	}
	if theme != "" {
		cfg.Theme = theme
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	cleanupLogger, err := configureLogger(cfg.DebugLog)
	if err != nil {
		return err
	}
	defer cleanupLogger()

	doc, err := content.Load(cfg.Content)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	opts, err := cfg.options()
	if err != nil {
		return err
	}

	// Timer callbacks are delivered through the program, so p must be set
	// before the first carousel mounts on the initial WindowSizeMsg.
	var p *tea.Program
	sched := tui.NewScheduler(func(msg tea.Msg) { p.Send(msg) })

	portfolio, err := tui.NewPortfolioModel(doc, opts, sched)
	if err != nil {
		return err
	}
	app := tui.NewApp(tui.NewPortfolioPage(portfolio))
	defer app.Close()

	p = tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	log.Printf("folio: starting (content=%q theme=%s)", cfg.Content, opts.Theme)
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// configureLogger sends the standard logger to path. Without a path logs
// are discarded, since stderr would draw over the alternate screen.
func configureLogger(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening debug log: %w", err)
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetOutput(f)
	return func() {
		_ = f.Close()
	}, nil
}
