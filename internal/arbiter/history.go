package arbiter

import (
	"strings"

	"github.com/lgbarn/chessmen-go/internal/chess"
	"github.com/lgbarn/chessmen-go/internal/engine"
)

// Ply is one recorded half-move.
type Ply struct {
	Number    int             `json:"number"`
	Player    chess.Player    `json:"player"`
	Piece     chess.PieceKind `json:"piece"`
	From      chess.Position  `json:"from"`
	To        chess.Position  `json:"to"`
	Capture   bool            `json:"capture,omitempty"`
	EnPassant bool            `json:"en_passant,omitempty"`
	Castle    bool            `json:"castle,omitempty"`
	Promoted  bool            `json:"promoted,omitempty"`
	Promotion chess.PieceKind `json:"promotion,omitempty"`
}

func newPly(number int, player chess.Player, res *engine.MoveResult) Ply {
	return Ply{
		Number:    number,
		Player:    player,
		Piece:     res.Piece.Kind,
		From:      res.From,
		To:        res.To,
		Capture:   res.Captured != nil || res.EnPassantVictim != nil,
		EnPassant: res.EnPassantVictim != nil,
		Castle:    res.Castled,
		Promoted:  res.PromotionPending,
		Promotion: res.Promotion,
	}
}

// String returns the ply in coordinate notation, e.g. "e2e4", "d4xe3" or
// "a7a8q".
func (p Ply) String() string {
	var sb strings.Builder
	sb.WriteString(p.From.String())
	if p.Capture {
		sb.WriteByte('x')
	}
	sb.WriteString(p.To.String())
	if p.Promoted {
		sb.WriteByte(p.Promotion.Letter() + 'a' - 'A')
	}
	return sb.String()
}
