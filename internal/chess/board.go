package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmen-go/internal/errors"
)

// Board holds all state of one game: the 8x8 grid, the registry of live
// pieces, the player whose turn it is and the turn-completion hook queue.
//
// The grid holds non-owning references into the registry. Every method that
// mutates either keeps them consistent: a registered piece is referenced by
// exactly the grid cell at its Position, and no other cell references it.
type Board struct {
	grid   [BoardSize][BoardSize]*Piece
	pieces []*Piece
	nextID int

	// Who has the current turn.
	Turn Player

	hooks    []Hook
	onRemove func(*Piece)
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{Turn: White, nextID: 1}
}

// backRank is the column layout of both back ranks.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, King, Queen, Bishop, Knight, Rook}

// StandardStart populates both back ranks and both pawn ranks. It reports
// false, leaving the board alone, if any piece is already registered.
func (b *Board) StandardStart() bool {
	if len(b.pieces) > 0 {
		return false
	}
	b.setBackRank(White)
	b.setPawns(White)
	b.setBackRank(Black)
	b.setPawns(Black)
	b.Turn = White
	return true
}

func (b *Board) setBackRank(p Player) {
	row := p.BackRow()
	for col, kind := range backRank {
		b.register(kind, p, Pos(row, col))
	}
}

func (b *Board) setPawns(p Player) {
	row := p.BackRow() + p.Direction()
	for col := 0; col < BoardSize; col++ {
		b.register(Pawn, p, Pos(row, col))
	}
}

// register adds a piece without checking the target square.
func (b *Board) register(kind PieceKind, owner Player, pos Position) *Piece {
	if b.nextID == 0 {
		b.nextID = 1
	}
	pc := &Piece{ID: b.nextID, Kind: kind, Owner: owner, Position: pos}
	b.nextID++
	b.pieces = append(b.pieces, pc)
	b.grid[pos.Row][pos.Col] = pc
	return pc
}

// Place registers a new piece on an empty square.
func (b *Board) Place(kind PieceKind, owner Player, pos Position) (*Piece, error) {
	if !InBoard(pos) {
		return nil, errors.Wrapf(errors.ErrOutOfBounds, "placing %s %s at %d,%d", owner, kind, pos.Row, pos.Col)
	}
	if b.grid[pos.Row][pos.Col] != nil {
		return nil, errors.Wrapf(errors.ErrSquareOccupied, "placing %s %s at %s", owner, kind, pos)
	}
	return b.register(kind, owner, pos), nil
}

// At returns the piece on pos, or nil if the square is empty or off the board.
func (b *Board) At(pos Position) *Piece {
	if !InBoard(pos) {
		return nil
	}
	return b.grid[pos.Row][pos.Col]
}

// HasPiece reports whether pos holds a piece.
func (b *Board) HasPiece(pos Position) bool {
	return b.At(pos) != nil
}

// OwnerAt returns the owner of the piece on pos; false if empty or off the board.
func (b *Board) OwnerAt(pos Position) (Player, bool) {
	pc := b.At(pos)
	if pc == nil {
		return White, false
	}
	return pc.Owner, true
}

// Pieces returns the registered pieces in registry order.
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

// PiecesOf returns the registered pieces owned by player, in registry order.
func (b *Board) PiecesOf(player Player) []*Piece {
	var out []*Piece
	for _, pc := range b.pieces {
		if pc.Owner == player {
			out = append(out, pc)
		}
	}
	return out
}

// PieceByID returns the registered piece with the given ID, or nil.
func (b *Board) PieceByID(id int) *Piece {
	for _, pc := range b.pieces {
		if pc.ID == id {
			return pc
		}
	}
	return nil
}

// Contains reports whether pc is registered on this board.
func (b *Board) Contains(pc *Piece) bool {
	return b.indexOf(pc) >= 0
}

func (b *Board) indexOf(pc *Piece) int {
	for i, p := range b.pieces {
		if p == pc {
			return i
		}
	}
	return -1
}

// SetRemoveListener installs a callback invoked with every piece removed
// from the board (captures, en passant victims, promoted pawns).
func (b *Board) SetRemoveListener(fn func(*Piece)) {
	b.onRemove = fn
}

// RemovePiece removes pc from the registry and the grid and returns it.
// Removing a piece that is not registered is a no-op returning nil.
func (b *Board) RemovePiece(pc *Piece) *Piece {
	i := b.indexOf(pc)
	if i < 0 {
		return nil
	}
	b.pieces = append(b.pieces[:i], b.pieces[i+1:]...)
	if pos := pc.Position; InBoard(pos) && b.grid[pos.Row][pos.Col] == pc {
		b.grid[pos.Row][pos.Col] = nil
	}
	if b.onRemove != nil {
		b.onRemove(pc)
	}
	return pc
}

// Relocate moves the occupant of from to the empty square to.
func (b *Board) Relocate(from, to Position) error {
	if !InBoard(from) || !InBoard(to) {
		return errors.Wrapf(errors.ErrOutOfBounds, "relocating %d,%d to %d,%d", from.Row, from.Col, to.Row, to.Col)
	}
	pc := b.grid[from.Row][from.Col]
	if pc == nil {
		return errors.Wrapf(errors.ErrNoPiece, "relocating from %s", from)
	}
	if from == to {
		return nil
	}
	if b.grid[to.Row][to.Col] != nil {
		return errors.Wrapf(errors.ErrSquareOccupied, "relocating %s to %s", pc, to)
	}
	b.grid[from.Row][from.Col] = nil
	b.grid[to.Row][to.Col] = pc
	pc.Position = to
	return nil
}

// KingAlive reports whether player still has a king on the board.
func (b *Board) KingAlive(player Player) bool {
	for _, pc := range b.pieces {
		if pc.Kind == King && pc.Owner == player {
			return true
		}
	}
	return false
}

// Validate checks the board invariants: every piece in range, unique IDs,
// at most one piece per square, and grid and registry in agreement.
func (b *Board) Validate() error {
	seen := make(map[int]bool, len(b.pieces))
	var occupied [BoardSize][BoardSize]bool
	for _, pc := range b.pieces {
		if pc == nil {
			return fmt.Errorf("nil piece in registry")
		}
		if seen[pc.ID] {
			return fmt.Errorf("duplicate piece id %d", pc.ID)
		}
		seen[pc.ID] = true
		pos := pc.Position
		if !InBoard(pos) {
			return errors.Wrapf(errors.ErrOutOfBounds, "%s %s", pc.Owner, pc.Kind)
		}
		if occupied[pos.Row][pos.Col] {
			return errors.Wrapf(errors.ErrSquareOccupied, "two pieces on %s", pos)
		}
		occupied[pos.Row][pos.Col] = true
		if b.grid[pos.Row][pos.Col] != pc {
			return fmt.Errorf("grid at %s does not reference %s", pos, pc)
		}
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.grid[row][col] != nil && !occupied[row][col] {
				return fmt.Errorf("grid at %s references unregistered %s", Pos(row, col), b.grid[row][col])
			}
		}
	}
	return nil
}

// String renders the board with row 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		sb.WriteByte(byte('1' + row))
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			if pc := b.grid[row][col]; pc != nil {
				sb.WriteByte(pc.Symbol())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}
