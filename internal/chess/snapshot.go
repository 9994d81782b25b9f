package chess

import (
	"github.com/lgbarn/chessmen-go/internal/errors"
)

// PieceState is the persisted form of a Piece.
type PieceState struct {
	ID                int       `json:"id"`
	Kind              PieceKind `json:"kind"`
	Owner             Player    `json:"owner"`
	Position          Position  `json:"position"`
	HasMoved          bool      `json:"has_moved,omitempty"`
	EnPassantEligible bool      `json:"en_passant,omitempty"`
}

// HookState is the persisted form of a Hook.
type HookState struct {
	Kind      HookKind  `json:"kind"`
	Repeat    bool      `json:"repeat,omitempty"`
	PieceID   int       `json:"piece_id"`
	Promotion PieceKind `json:"promotion,omitempty"`
}

// Snapshot captures everything needed to resume a game at the start of a turn.
type Snapshot struct {
	Turn   Player       `json:"turn"`
	NextID int          `json:"next_id"`
	Pieces []PieceState `json:"pieces"`
	Hooks  []HookState  `json:"hooks,omitempty"`
}

// Snapshot captures the board state. It fails if a HookFunc is queued.
func (b *Board) Snapshot() (*Snapshot, error) {
	s := &Snapshot{
		Turn:   b.Turn,
		NextID: b.nextID,
		Pieces: make([]PieceState, 0, len(b.pieces)),
	}
	for _, pc := range b.pieces {
		s.Pieces = append(s.Pieces, PieceState{
			ID:                pc.ID,
			Kind:              pc.Kind,
			Owner:             pc.Owner,
			Position:          pc.Position,
			HasMoved:          pc.HasMoved,
			EnPassantEligible: pc.EnPassantEligible,
		})
	}
	for _, h := range b.hooks {
		if h.Kind == HookFunc {
			return nil, errors.ErrUnpersistableHook
		}
		s.Hooks = append(s.Hooks, HookState{
			Kind:      h.Kind,
			Repeat:    h.Repeat,
			PieceID:   h.PieceID,
			Promotion: h.Promotion,
		})
	}
	return s, nil
}

// FromSnapshot rebuilds a board from a snapshot.
func FromSnapshot(s *Snapshot) (*Board, error) {
	if s == nil {
		return nil, errors.Wrap(errors.ErrInvalidSnapshot, "nil snapshot")
	}
	if s.Turn != White && s.Turn != Black {
		return nil, errors.Wrapf(errors.ErrInvalidSnapshot, "turn %d", s.Turn)
	}
	b := NewBoard()
	b.Turn = s.Turn
	maxID := 0
	for _, ps := range s.Pieces {
		if !ps.Kind.Valid() || (ps.Owner != White && ps.Owner != Black) {
			return nil, errors.Wrapf(errors.ErrInvalidSnapshot, "piece %d: kind %d owner %d", ps.ID, ps.Kind, ps.Owner)
		}
		if ps.ID <= 0 || b.PieceByID(ps.ID) != nil {
			return nil, errors.Wrapf(errors.ErrInvalidSnapshot, "piece id %d", ps.ID)
		}
		if !InBoard(ps.Position) || b.At(ps.Position) != nil {
			return nil, errors.Wrapf(errors.ErrInvalidSnapshot, "piece %d at %d,%d", ps.ID, ps.Position.Row, ps.Position.Col)
		}
		pc := &Piece{
			ID:                ps.ID,
			Kind:              ps.Kind,
			Owner:             ps.Owner,
			Position:          ps.Position,
			HasMoved:          ps.HasMoved,
			EnPassantEligible: ps.EnPassantEligible,
		}
		b.pieces = append(b.pieces, pc)
		b.grid[pc.Position.Row][pc.Position.Col] = pc
		if pc.ID > maxID {
			maxID = pc.ID
		}
	}
	b.nextID = s.NextID
	if b.nextID <= maxID {
		b.nextID = maxID + 1
	}
	for _, hs := range s.Hooks {
		switch hs.Kind {
		case HookArmEnPassantExpiry, HookClearEnPassant, HookPromote:
		default:
			return nil, errors.Wrapf(errors.ErrInvalidSnapshot, "hook kind %d", hs.Kind)
		}
		if hs.Kind == HookPromote && !hs.Promotion.IsPromotionChoice() {
			return nil, errors.Wrapf(errors.ErrInvalidSnapshot, "promotion to %s", hs.Promotion)
		}
		b.hooks = append(b.hooks, Hook{
			Kind:      hs.Kind,
			Repeat:    hs.Repeat,
			PieceID:   hs.PieceID,
			Promotion: hs.Promotion,
		})
	}
	return b, nil
}
