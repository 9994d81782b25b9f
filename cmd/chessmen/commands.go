// commands.go - Play, list and audit
package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/lgbarn/chessmen-go/internal/arbiter"
	"github.com/lgbarn/chessmen-go/internal/config"
	"github.com/lgbarn/chessmen-go/internal/errors"
	"github.com/lgbarn/chessmen-go/internal/session"
	"github.com/lgbarn/chessmen-go/internal/storage"
	"github.com/lgbarn/chessmen-go/internal/worker"
)

// arbiterOptions builds the arbiter settings for cfg.
func arbiterOptions(cfg *config.Config) []arbiter.Option {
	return []arbiter.Option{
		arbiter.WithStrictDestinations(cfg.Game.StrictDestinations),
		arbiter.WithLogger(log.New(cfg.LogFile, "", 0)),
		arbiter.WithVerbosity(cfg.Verbosity),
	}
}

// openGame resumes, lays out or starts the game cfg asks for.
func openGame(cfg *config.Config, m *session.Manager) (*session.Game, error) {
	switch {
	case cfg.Game.ResumeID != "":
		return m.Resume(cfg.Game.ResumeID)
	case cfg.Game.StartFEN != "":
		return m.NewGameFromFEN(cfg.Game.StartFEN)
	}
	return m.NewGame()
}

// playGame plays one game on the terminal. A finished game is saved; an
// abandoned one keeps whatever was last saved.
func playGame(ctx context.Context, cfg *config.Config, store *storage.Store) error {
	m := session.NewManager(store, arbiterOptions(cfg)...)
	g, err := openGame(cfg, m)
	if err != nil {
		return err
	}
	fmt.Fprintf(cfg.OutputFile, "game %s\n", g.ID)

	term := newTerminal(cfg.InputFile, cfg.OutputFile, g.Arbiter.Board(), cfg.Game.ShowControl)
	term.save = func() error { return m.Save(g.ID) }

	winner, err := g.Arbiter.Play(ctx, term)
	switch {
	case errors.Is(err, errQuit), errors.Is(err, io.EOF):
		fmt.Fprintf(cfg.OutputFile, "left game %s\n", g.ID)
		return nil
	case err != nil:
		return err
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%s won in %d plies\n", winner, len(g.Arbiter.History()))
	}
	return m.Save(g.ID)
}

// listStoredGames prints one line per saved game.
func listStoredGames(cfg *config.Config, store *storage.Store) error {
	recs, err := store.ListGames()
	if err != nil {
		return err
	}
	for _, rec := range recs {
		fmt.Fprintf(cfg.OutputFile, "%s  %-8s  %3d plies  %s\n",
			rec.ID, rec.Status, len(rec.History), describe(rec))
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d games\n", len(recs))
	}
	return nil
}

func describe(rec *storage.GameRecord) string {
	switch {
	case rec.Winner != nil:
		return fmt.Sprintf("%s won", *rec.Winner)
	case rec.Snapshot != nil:
		return fmt.Sprintf("%s to move", rec.Snapshot.Turn)
	}
	return ""
}

// auditStoredGames checks every saved game and reports the unsound ones.
func auditStoredGames(ctx context.Context, cfg *config.Config, store *storage.Store) error {
	recs, err := store.ListGames()
	if err != nil {
		return err
	}
	results, err := worker.Audit(ctx, recs,
		worker.WithWorkers(cfg.Audit.Workers),
		worker.WithBufferSize(cfg.Audit.BufferSize))
	if err != nil {
		return err
	}

	bad := 0
	for _, r := range results {
		if r.DuplicateOf != "" {
			fmt.Fprintf(cfg.OutputFile, "%s: same position as %s\n", r.Record.ID, r.DuplicateOf)
		}
		if r.OK() {
			continue
		}
		bad++
		if r.Error != nil {
			fmt.Fprintf(cfg.OutputFile, "%s: %v\n", r.Record.ID, r.Error)
			continue
		}
		for _, issue := range r.Issues {
			fmt.Fprintf(cfg.OutputFile, "%s: %s\n", r.Record.ID, issue)
		}
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d games checked, %d with problems\n", len(results), bad)
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d games failed the audit", bad, len(results))
	}
	return nil
}
