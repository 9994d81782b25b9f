// Package testutil provides shared test utilities for the chessmen-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chessmen-go/internal/chess"
)

// ErrScriptExhausted is returned by ScriptedInteractor once every scripted
// move has been played.
var ErrScriptExhausted = errors.New("script exhausted")

// MustPos converts a square name such as "e2" to a position.
// It calls t.Fatal on an invalid name.
func MustPos(t *testing.T, square string) chess.Position {
	t.Helper()
	pos, ok := chess.ParsePosition(square)
	if !ok {
		t.Fatalf("invalid square %q", square)
	}
	return pos
}

// Positions converts square names to positions, panicking on an invalid name.
// Use it for literal expectations in tables.
func Positions(squares ...string) []chess.Position {
	out := make([]chess.Position, 0, len(squares))
	for _, sq := range squares {
		pos, ok := chess.ParsePosition(sq)
		if !ok {
			panic(fmt.Sprintf("invalid square %q", sq))
		}
		out = append(out, pos)
	}
	return out
}

// MustPlace places a piece and calls t.Fatal if the square is unusable.
func MustPlace(t *testing.T, b *chess.Board, kind chess.PieceKind, owner chess.Player, square string) *chess.Piece {
	t.Helper()
	pc, err := b.Place(kind, owner, MustPos(t, square))
	if err != nil {
		t.Fatalf("placing %s %s on %s: %v", owner, kind, square, err)
	}
	return pc
}

// NewStartedBoard returns a board set up with StandardStart.
func NewStartedBoard() *chess.Board {
	b := chess.NewBoard()
	b.StandardStart()
	return b
}

// MustBoard builds a board from eight diagram rows, row 8 first, using the
// letters of (*chess.Piece).Symbol and '.' for an empty square. Pieces are
// registered unmoved.
func MustBoard(t *testing.T, turn chess.Player, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("MustBoard: got %d rows, want %d", len(rows), chess.BoardSize)
	}
	b := chess.NewBoard()
	b.Turn = turn
	for i, line := range rows {
		if len(line) != chess.BoardSize {
			t.Fatalf("MustBoard: row %d is %q", chess.BoardSize-i, line)
		}
		row := chess.BoardSize - 1 - i
		for col := 0; col < chess.BoardSize; col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			kind, owner, ok := pieceForSymbol(c)
			if !ok {
				t.Fatalf("MustBoard: bad symbol %q", c)
			}
			if _, err := b.Place(kind, owner, chess.Pos(row, col)); err != nil {
				t.Fatalf("MustBoard: %v", err)
			}
		}
	}
	return b
}

func pieceForSymbol(c byte) (chess.PieceKind, chess.Player, bool) {
	owner := chess.White
	if c >= 'a' && c <= 'z' {
		owner = chess.Black
		c -= 'a' - 'A'
	}
	for k := chess.Pawn; k <= chess.King; k++ {
		if k.Letter() == c {
			return k, owner, true
		}
	}
	return 0, owner, false
}

// ScriptedInteractor plays a fixed list of moves in coordinate notation
// ("e2e4", "e7e8n" for an underpromotion) and records every notification.
// A move whose two squares are equal cancels the selection.
type ScriptedInteractor struct {
	Moves []string

	TurnStarts []chess.Player
	Removed    []*chess.Piece
	Winner     *chess.Player

	// Legal and Advisory hold the lists offered with the last destination
	// request.
	Legal    []chess.Position
	Advisory []chess.Position

	next    int
	current string
}

// NewScriptedInteractor returns an interactor that plays moves in order.
func NewScriptedInteractor(moves ...string) *ScriptedInteractor {
	return &ScriptedInteractor{Moves: moves}
}

// Played returns the number of moves consumed so far.
func (s *ScriptedInteractor) Played() int {
	return s.next
}

// RequestPieceSelection returns the piece on the next move's origin square.
func (s *ScriptedInteractor) RequestPieceSelection(ctx context.Context, player chess.Player, selectable []*chess.Piece) (*chess.Piece, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.next >= len(s.Moves) {
		return nil, ErrScriptExhausted
	}
	s.current = s.Moves[s.next]
	s.next++
	if len(s.current) < 4 {
		return nil, fmt.Errorf("bad scripted move %q", s.current)
	}
	from, ok := chess.ParsePosition(s.current[:2])
	if !ok {
		return nil, fmt.Errorf("bad scripted move %q", s.current)
	}
	for _, pc := range selectable {
		if pc.Position == from {
			return pc, nil
		}
	}
	return nil, fmt.Errorf("%s has no selectable piece on %s", player, from)
}

// RequestDestinationSelection returns the current move's target square.
func (s *ScriptedInteractor) RequestDestinationSelection(ctx context.Context, piece *chess.Piece, legal, advisory []chess.Position) (chess.Position, error) {
	if err := ctx.Err(); err != nil {
		return chess.Position{}, err
	}
	s.Legal = legal
	s.Advisory = advisory
	to, ok := chess.ParsePosition(s.current[2:4])
	if !ok {
		return chess.Position{}, fmt.Errorf("bad scripted move %q", s.current)
	}
	return to, nil
}

// RequestPromotionChoice returns the kind named by the current move's fifth
// letter, or a queen.
func (s *ScriptedInteractor) RequestPromotionChoice(ctx context.Context, player chess.Player) (chess.PieceKind, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(s.current) < 5 {
		return chess.Queen, nil
	}
	c := s.current[4]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	kind, _, ok := pieceForSymbol(c)
	if !ok {
		return 0, fmt.Errorf("bad promotion letter in %q", s.current)
	}
	return kind, nil
}

// NotifyTurnStarted records the player.
func (s *ScriptedInteractor) NotifyTurnStarted(player chess.Player) {
	s.TurnStarts = append(s.TurnStarts, player)
}

// NotifyPieceRemoved records the piece.
func (s *ScriptedInteractor) NotifyPieceRemoved(piece *chess.Piece) {
	s.Removed = append(s.Removed, piece)
}

// NotifyGameOver records the winner.
func (s *ScriptedInteractor) NotifyGameOver(winner chess.Player) {
	s.Winner = &winner
}
