package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"quickpick/internal/config"
	"quickpick/internal/corpus"
	"quickpick/internal/matcher"
	"quickpick/internal/output"
	"quickpick/internal/ranker"
	"quickpick/internal/ui"
	"quickpick/internal/ui/services/events"
)

// options holds the command line flags
type options struct {
	inputDelay int
	maxResults int
	corpusPath string
	matcher    string
	sinks      string
	configPath string
	list       bool
}

func main() {
	var opts options
	flag.IntVar(&opts.inputDelay, "input_delay", int(config.DefaultInputDelay.Milliseconds()), "Delay in ms before typing the emoji (max 2000)")
	flag.IntVar(&opts.inputDelay, "d", int(config.DefaultInputDelay.Milliseconds()), "Delay in ms before typing the emoji (shorthand)")
	flag.IntVar(&opts.maxResults, "k", config.DefaultMaxResults, "Number of results to show")
	flag.StringVar(&opts.corpusPath, "corpus", "", "JSON file with emoji entries (default: built-in list)")
	flag.StringVar(&opts.matcher, "matcher", "", "Matcher to rank with: "+strings.Join(matcher.Names(), ", "))
	flag.StringVar(&opts.sinks, "sink", "", "Comma-separated sinks: stdout, clipboard, type, notify")
	flag.StringVar(&opts.configPath, "config", "", "Path to config file")
	flag.BoolVar(&opts.list, "list", false, "Browse the emoji list in a pager and exit")
	flag.Parse()

	// Set up logging; the terminal belongs to the picker
	closeLog := setupLogging()
	defer closeLog()

	if err := run(opts); err != nil {
		log.Printf("Error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	c, err := corpus.LoadFile(cfg.CorpusPath)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	log.Printf("Loaded %d emoji", c.Len())

	if opts.list {
		return ui.ShowCorpusInPager(c)
	}

	m, err := matcher.New(cfg.Matcher)
	if err != nil {
		return err
	}

	sink, err := output.NewSink(cfg.Sinks, output.Options{Stdout: os.Stdout, Delay: cfg.Delay()})
	if err != nil {
		return err
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	bus := events.NewBus()
	defer events.LogSession(bus)()

	rk := ranker.New(m, c.Entries(), cfg.MaxResults)
	log.Printf("Ranking top %d with the %s matcher", rk.K(), cfg.Matcher)
	model := ui.NewModel(bus, cfg, rk)

	// Draw on stderr so stdout carries only the picked emoji
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run picker: %w", err)
	}
	log.Printf("UI exited with query %q", model.Query())

	if model.Cancelled() {
		return nil
	}
	picked, ok := model.Committed()
	if !ok {
		return fmt.Errorf("picker closed without a pick")
	}

	return output.Deliver(ctx, sink, picked, bus)
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(opts options) (*config.Config, error) {
	configSvc := config.NewConfigService()
	if opts.configPath != "" {
		configSvc = config.NewConfigServiceAt(opts.configPath)
	}

	cfg, err := configSvc.Load()
	if err != nil {
		return nil, err
	}
	log.Printf("Using config %s", configSvc.Path())

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input_delay", "d":
			cfg.InputDelay = opts.inputDelay
		case "k":
			cfg.MaxResults = opts.maxResults
		case "corpus":
			cfg.CorpusPath = opts.corpusPath
		case "matcher":
			cfg.Matcher = opts.matcher
		case "sink":
			cfg.Sinks = splitList(opts.sinks)
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setupLogging sends the standard logger to the state log file
func setupLogging() func() {
	path, err := config.LogPath()
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() { _ = logFile.Close() }
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
