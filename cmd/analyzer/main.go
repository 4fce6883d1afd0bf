package main

import (
	"chat-stats/analytics"
	"chat-stats/domain"
	"chat-stats/internal"
	"chat-stats/parser"
	"chat-stats/report"
	"chat-stats/repositories"
	"chat-stats/services"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the components and prints the dashboard of one participant scope.
// Returning errors instead of exiting lets deferred cleanup run.
func run() error {
	file := flag.String("file", "", "Path to the exported chat (.txt)")
	user := flag.String("user", domain.Overall, "Participant to analyze, or Overall")
	list := flag.Bool("list", false, "Only list the participants of the chat")
	envFile := flag.String("env", ".env", "Optional .env file")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		return fmt.Errorf("missing -file")
	}

	// 1. Configuration & Logger
	config, err := internal.LoadConfig(*envFile)
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	loc, err := config.Location()
	if err != nil {
		return err
	}

	// 2. Components
	engine, err := analytics.NewEngine(log)
	if err != nil {
		return fmt.Errorf("analytics engine: %w", err)
	}
	service := services.NewAnalyzerService(
		log,
		repositories.NewFileTranscriptRepository(log, config.MaxTranscriptBytes),
		parser.NewInLocation(log, loc),
		engine,
		config.Limits(),
	)
	renderer := report.NewRenderer(os.Stdout, config.Colours)

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Parse once, then query
	store, err := service.Load(ctx, *file)
	if err != nil {
		return err
	}
	if store.Len() == 0 {
		fmt.Println("No messages found: is this an exported chat without media?")
		return nil
	}
	if *list {
		renderer.Scopes(store.Scopes())
		return nil
	}

	dashboard, err := service.Dashboard(ctx, store, *user)
	if err != nil {
		return err
	}
	renderer.Dashboard(dashboard)
	return nil
}
