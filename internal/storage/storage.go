// Package storage persists games in BadgerDB so they can be resumed.
package storage

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chessmen-go/internal/arbiter"
	"github.com/lgbarn/chessmen-go/internal/chess"
	"github.com/lgbarn/chessmen-go/internal/errors"
)

const gamePrefix = "game/"

// Status is the lifecycle state of a stored game.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// GameRecord is one stored game, saved at a turn boundary.
type GameRecord struct {
	ID        string          `json:"id"`
	Snapshot  *chess.Snapshot `json:"snapshot"`
	History   []arbiter.Ply   `json:"history,omitempty"`
	Status    Status          `json:"status"`
	Winner    *chess.Player   `json:"winner,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Store wraps BadgerDB for persistent game storage.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) a store in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	return open(opts)
}

// OpenInMemory opens a store that keeps nothing on disk.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open game store")
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(gamePrefix + id)
}

// SaveGame writes rec, stamping UpdatedAt and, for new records, CreatedAt.
func (s *Store) SaveGame(rec *GameRecord) error {
	if rec == nil || rec.ID == "" {
		return &errors.GameError{Err: errors.ErrInvalidSnapshot, Op: "save"}
	}
	if rec.Snapshot == nil {
		return &errors.GameError{Err: errors.ErrInvalidSnapshot, GameID: rec.ID, Op: "save"}
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	data, err := json.Marshal(rec)
	if err != nil {
		return &errors.GameError{Err: err, GameID: rec.ID, Op: "save"}
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(rec.ID), data)
	})
	if err != nil {
		return &errors.GameError{Err: err, GameID: rec.ID, Op: "save"}
	}
	return nil
}

// LoadGame reads the game with the given ID.
func (s *Store) LoadGame(id string) (*GameRecord, error) {
	rec := &GameRecord{}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return errors.ErrGameNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, &errors.GameError{Err: err, GameID: id, Op: "load"}
	}
	return rec, nil
}

// ListGames returns every stored game, most recently updated first.
func (s *Store) ListGames() ([]*GameRecord, error) {
	var recs []*GameRecord
	prefix := []byte(gamePrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			rec := &GameRecord{}
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			})
			if err != nil {
				return errors.Wrapf(err, "decode %s", it.Item().Key())
			}
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, &errors.GameError{Err: err, Op: "list"}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].UpdatedAt.After(recs[j].UpdatedAt)
	})
	return recs, nil
}

// DeleteGame removes the game with the given ID.
func (s *Store) DeleteGame(id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(gameKey(id)); err == badger.ErrKeyNotFound {
			return errors.ErrGameNotFound
		} else if err != nil {
			return err
		}
		return txn.Delete(gameKey(id))
	})
	if err != nil {
		return &errors.GameError{Err: err, GameID: id, Op: "delete"}
	}
	return nil
}
