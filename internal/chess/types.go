// Package chess provides the board and piece model of the rule engine.
package chess

// Player is one of the two sides.
type Player int

const (
	White Player = iota
	Black
)

// String returns the string representation of a player.
func (p Player) String() string {
	if p == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the other player.
func (p Player) Opposite() Player {
	if p == White {
		return Black
	}
	return White
}

// Opposite returns the other player.
func Opposite(p Player) Player {
	return p.Opposite()
}

// Direction returns +1 for White, -1 for Black (the row a pawn advances along).
func (p Player) Direction() int {
	if p == White {
		return 1
	}
	return -1
}

// BackRow returns the row of the player's own back rank.
func (p Player) BackRow() int {
	if p == White {
		return 0
	}
	return BoardSize - 1
}

// FarRow returns the row on which the player's pawns promote.
func (p Player) FarRow() int {
	return p.Opposite().BackRow()
}

// PieceKind identifies one of the six piece variants.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Valid reports whether k is one of the six kinds.
func (k PieceKind) Valid() bool {
	return k >= Pawn && k <= King
}

// IsPromotionChoice reports whether a pawn may promote to k.
func (k PieceKind) IsPromotionChoice() bool {
	return k == Queen || k == Knight || k == Bishop || k == Rook
}

// PromotionChoices lists the kinds a pawn may promote to, in prompt order.
var PromotionChoices = []PieceKind{Queen, Knight, Bishop, Rook}

// BoardSize is the number of rows and columns.
const BoardSize = 8

// Position is a square on the board.
//
// Row is the axis pawns advance along: White's back rank is row 0 and
// Black's is row 7. Col runs along a rank; castling moves the king along it.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// InBoard reports whether both coordinates are in [0,8).
func InBoard(p Position) bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Offset returns the position shifted by dr rows and dc columns.
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Less orders positions by row, then column.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// String returns the square name: column letter a-h, row digit 1-8.
func (p Position) String() string {
	if !InBoard(p) {
		return "??"
	}
	return string([]byte{byte('a' + p.Col), byte('1' + p.Row)})
}

// ParsePosition converts a square name such as "e2" to a Position.
func ParsePosition(s string) (Position, bool) {
	if len(s) != 2 {
		return Position{}, false
	}
	c := s[0]
	if c >= 'A' && c <= 'H' {
		c += 'a' - 'A'
	}
	p := Position{Row: int(s[1]) - '1', Col: int(c) - 'a'}
	if !InBoard(p) {
		return Position{}, false
	}
	return p, true
}
