// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessmen-go/internal/config"
)

var (
	// Storage options
	dataDir  = flag.String("data", config.DefaultDataDir, "Directory for saved games")
	inMemory = flag.Bool("memory", false, "Keep games in memory only")

	// Commands
	listGames  = flag.Bool("list", false, "List saved games and exit")
	auditGames = flag.Bool("audit", false, "Check every saved game and exit")
	resumeID   = flag.String("resume", "", "Resume the saved game with this ID")

	// Game options
	strict      = flag.Bool("strict", true, "Reject destinations outside the legal set")
	showControl = flag.Bool("control", false, "Show the squares the opponent controls")
	fenLayout   = flag.String("fen", "", "Start a new game from this FEN layout")

	// Audit options
	auditWorkers = flag.Int("workers", 0, "Audit workers (0 = one per CPU)")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 turns and results, 2 every move")
	quiet     = flag.Bool("q", false, "Quiet mode, same as -v 0")
	logFile   = flag.String("log", "", "Write diagnostics to this file (default: stderr)")

	// Help and version
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// command is what a run does once configured.
type command int

const (
	cmdPlay command = iota
	cmdList
	cmdAudit
)

// selectCommand picks the command named by the flags.
func selectCommand() command {
	switch {
	case *listGames:
		return cmdList
	case *auditGames:
		return cmdAudit
	}
	return cmdPlay
}

// applyFlags applies parsed command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyStorageFlags(cfg)
	applyGameFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	if *auditWorkers > 0 {
		cfg.Audit.Workers = *auditWorkers
	}
}

// applyStorageFlags configures where games are kept.
func applyStorageFlags(cfg *config.Config) {
	cfg.Storage.DataDir = *dataDir
	cfg.Storage.InMemory = *inMemory
}

// applyGameFlags configures how games are played.
func applyGameFlags(cfg *config.Config) {
	cfg.Game.StrictDestinations = *strict
	cfg.Game.ShowControl = *showControl
	cfg.Game.StartFEN = *fenLayout
	cfg.Game.ResumeID = *resumeID
}
