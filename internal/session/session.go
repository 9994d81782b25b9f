// Package session keeps the games of a running process and moves them in and
// out of the game store.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chessmen-go/internal/arbiter"
	"github.com/lgbarn/chessmen-go/internal/chess"
	"github.com/lgbarn/chessmen-go/internal/engine"
	"github.com/lgbarn/chessmen-go/internal/errors"
	"github.com/lgbarn/chessmen-go/internal/storage"
)

// Game is a live game and its arbiter.
type Game struct {
	ID        string
	Arbiter   *arbiter.Arbiter
	CreatedAt time.Time
}

// Record returns the storable form of the game.
func (g *Game) Record() (*storage.GameRecord, error) {
	snap, err := g.Arbiter.Board().Snapshot()
	if err != nil {
		return nil, &errors.GameError{Err: err, GameID: g.ID, Op: "save"}
	}
	rec := &storage.GameRecord{
		ID:        g.ID,
		Snapshot:  snap,
		History:   g.Arbiter.History(),
		Status:    storage.StatusActive,
		CreatedAt: g.CreatedAt,
	}
	if winner, over := g.Arbiter.Winner(); over {
		rec.Status = storage.StatusFinished
		rec.Winner = &winner
	}
	return rec, nil
}

// Manager tracks live games by ID. It is safe for concurrent use; each Game
// must still be played from one goroutine at a time.
type Manager struct {
	mu    sync.RWMutex
	store *storage.Store
	games map[string]*Game
	opts  []arbiter.Option
}

// NewManager creates a manager saving to store. opts configure every arbiter
// it creates.
func NewManager(store *storage.Store, opts ...arbiter.Option) *Manager {
	return &Manager{
		store: store,
		games: make(map[string]*Game),
		opts:  opts,
	}
}

// NewGame starts a game from the standard position.
func (m *Manager) NewGame() (*Game, error) {
	a := arbiter.New(chess.NewBoard(), m.opts...)
	if err := a.Start(); err != nil {
		return nil, err
	}
	return m.add(a), nil
}

// NewGameFromFEN starts a game from a FEN layout.
func (m *Manager) NewGameFromFEN(fen string) (*Game, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	a := arbiter.New(board, m.opts...)
	if err := a.Resume(); err != nil {
		return nil, err
	}
	return m.add(a), nil
}

func (m *Manager) add(a *arbiter.Arbiter) *Game {
	m.mu.Lock()
	defer m.mu.Unlock()

	g := &Game{
		ID:        uuid.NewString(),
		Arbiter:   a,
		CreatedAt: time.Now().UTC(),
	}
	m.games[g.ID] = g
	return g
}

// Get returns a live game.
func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, &errors.GameError{Err: errors.ErrGameNotFound, GameID: id, Op: "get"}
	}
	return g, nil
}

// Save writes a live game to the store.
func (m *Manager) Save(id string) error {
	g, err := m.Get(id)
	if err != nil {
		return err
	}
	rec, err := g.Record()
	if err != nil {
		return err
	}
	return m.store.SaveGame(rec)
}

// Resume returns the live game with the given ID, loading it from the store
// if it is not live.
func (m *Manager) Resume(id string) (*Game, error) {
	if g, err := m.Get(id); err == nil {
		return g, nil
	}
	rec, err := m.store.LoadGame(id)
	if err != nil {
		return nil, err
	}
	board, err := chess.FromSnapshot(rec.Snapshot)
	if err != nil {
		return nil, &errors.GameError{Err: err, GameID: id, Op: "resume"}
	}
	opts := append([]arbiter.Option{arbiter.WithHistory(rec.History)}, m.opts...)
	a := arbiter.New(board, opts...)
	if err := a.Resume(); err != nil {
		return nil, &errors.GameError{Err: err, GameID: id, Op: "resume"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	g := &Game{ID: id, Arbiter: a, CreatedAt: rec.CreatedAt}
	m.games[id] = g
	return g, nil
}

// List returns the stored games, most recently updated first.
func (m *Manager) List() ([]*storage.GameRecord, error) {
	return m.store.ListGames()
}

// Close drops a live game without saving it.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}

// Delete drops a game and removes it from the store.
func (m *Manager) Delete(id string) error {
	m.Close(id)
	return m.store.DeleteGame(id)
}
