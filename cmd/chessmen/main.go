// chessmen plays two-player chess in the terminal. A game ends when a king is
// captured; games can be saved, resumed, listed and audited.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chessmen-go/internal/config"
	"github.com/lgbarn/chessmen-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmen version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, cfg, selectCommand()))
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// openStore opens the game store the configuration names.
func openStore(cfg *config.Config) (*storage.Store, error) {
	if cfg.Storage.InMemory {
		return storage.OpenInMemory()
	}
	return storage.Open(cfg.Storage.DataDir)
}

// run executes cmd and returns the process exit code.
func run(ctx context.Context, cfg *config.Config, cmd command) int {
	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	defer store.Close()

	switch cmd {
	case cmdList:
		err = listStoredGames(cfg, store)
	case cmdAudit:
		err = auditStoredGames(ctx, cfg, store)
	default:
		err = playGame(ctx, cfg, store)
	}
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessmen [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two-player chess in the terminal; capture the king to win.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nDuring a game:\n")
	fmt.Fprintf(os.Stderr, "  e2     select the piece on e2, or move the selected piece there\n")
	fmt.Fprintf(os.Stderr, "  board  print the board again\n")
	fmt.Fprintf(os.Stderr, "  save   save the game; resume later with -resume <id>\n")
	fmt.Fprintf(os.Stderr, "  quit   leave the game\n")
}
