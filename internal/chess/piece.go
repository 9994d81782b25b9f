package chess

import "fmt"

// Piece is a chessman registered on a Board.
//
// HasMoved is tracked for pawns, rooks and kings; EnPassantEligible only
// for pawns. Position is written only by the Board that owns the piece.
type Piece struct {
	ID                int
	Kind              PieceKind
	Owner             Player
	Position          Position
	HasMoved          bool
	EnPassantEligible bool
}

// String returns e.g. "White Knight@g1".
func (p *Piece) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s@%s", p.Owner, p.Kind, p.Position)
}

// Symbol returns the piece letter, lowercase for Black.
func (p *Piece) Symbol() byte {
	l := p.Kind.Letter()
	if p.Owner == Black {
		l += 'a' - 'A'
	}
	return l
}
