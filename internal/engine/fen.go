package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessmen-go/internal/chess"
	"github.com/lgbarn/chessmen-go/internal/errors"
)

// InitialFEN is the layout produced by (*chess.Board).StandardStart.
const InitialFEN = "rnbkqbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBKQBNR w KQkq - 0 1"

// fenPieceKinds maps FEN letters (uppercase) to piece kinds.
var fenPieceKinds = map[byte]chess.PieceKind{
	'P': chess.Pawn,
	'N': chess.Knight,
	'B': chess.Bishop,
	'R': chess.Rook,
	'Q': chess.Queen,
	'K': chess.King,
}

// NewBoardFromFEN creates a board from a FEN string.
//
// Only the placement, side to move, castling and en passant fields are
// used. Castling rights set HasMoved on kings and corner rooks that lack
// them, pawns off their starting row are marked as moved, and the pawn
// behind an en passant square is marked eligible until the end of the
// side to move's turn.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	markMovedPawns(board)

	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	row := chess.BoardSize - 1
	col := 0

	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fmt.Errorf("row %d has %d squares: %w", row+1, col, errors.ErrInvalidFEN)
			}
			row--
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			kind, ok := fenPieceKinds[byte(unicode.ToUpper(c))]
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			owner := chess.White
			if unicode.IsLower(c) {
				owner = chess.Black
			}
			if _, err := board.Place(kind, owner, chess.Pos(row, col)); err != nil {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			col++
		}
	}
	if row != 0 || col != chess.BoardSize {
		return fmt.Errorf("incomplete placement field: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.Turn = chess.White
	case "b":
		board.Turn = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// castleRight describes the king and rook a single castling letter refers to.
type castleRight struct {
	owner chess.Player
	side  castleSide
}

var castleLetters = map[rune]castleRight{
	'K': {chess.White, kingside},
	'Q': {chess.White, queenside},
	'k': {chess.Black, kingside},
	'q': {chess.Black, queenside},
}

// parseCastlingRights marks kings and corner rooks as moved unless a castling
// letter keeps them eligible. A missing field keeps every right.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 {
		return nil
	}
	granted := make(map[castleRight]bool)
	if parts[2] != "-" {
		for _, c := range parts[2] {
			right, ok := castleLetters[c]
			if !ok {
				return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
			}
			granted[right] = true
		}
	}

	for _, owner := range []chess.Player{chess.White, chess.Black} {
		anyRight := false
		for _, side := range castleSides {
			right := castleRight{owner, side}
			if granted[right] {
				anyRight = true
				continue
			}
			if rook := board.At(chess.Pos(owner.BackRow(), side.rookCol)); rook != nil && rook.Kind == chess.Rook && rook.Owner == owner {
				rook.HasMoved = true
			}
		}
		if anyRight {
			continue
		}
		for _, pc := range board.PiecesOf(owner) {
			if pc.Kind == chess.King {
				pc.HasMoved = true
			}
		}
	}
	return nil
}

// markMovedPawns flags pawns that are not on their starting row.
func markMovedPawns(board *chess.Board) {
	for _, pc := range board.Pieces() {
		if pc.Kind == chess.Pawn && pc.Position.Row != pc.Owner.BackRow()+pc.Owner.Direction() {
			pc.HasMoved = true
		}
	}
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, ok := chess.ParsePosition(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	owner := board.Turn.Opposite()
	pawn := board.At(target.Offset(owner.Direction(), 0))
	if pawn == nil || pawn.Kind != chess.Pawn || pawn.Owner != owner {
		return fmt.Errorf("no %s pawn beyond %s: %w", owner, target, errors.ErrInvalidFEN)
	}
	pawn.HasMoved = true
	pawn.EnPassantEligible = true
	board.Enqueue(chess.Hook{Kind: chess.HookClearEnPassant, PieceID: pawn.ID})
	return nil
}

// BoardToFEN converts a board to a FEN string. The clock fields are always
// "0 1": the board does not track them.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			pc := board.At(chess.Pos(row, col))
			if pc == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(pc.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.Turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
// A right is written while neither king nor rook has moved.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, letter := range []rune{'K', 'Q', 'k', 'q'} {
		right := castleLetters[letter]
		if canStillCastle(board, right) {
			sb.WriteRune(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

func canStillCastle(board *chess.Board, right castleRight) bool {
	row := right.owner.BackRow()
	rook := board.At(chess.Pos(row, right.side.rookCol))
	if rook == nil || rook.Kind != chess.Rook || rook.Owner != right.owner || rook.HasMoved {
		return false
	}
	for _, pc := range board.PiecesOf(right.owner) {
		if pc.Kind == chess.King && pc.Position.Row == row && !pc.HasMoved {
			return true
		}
	}
	return false
}

// writeEnPassant writes the square behind the first eligible pawn of the
// player who just moved.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	for _, pc := range board.PiecesOf(board.Turn.Opposite()) {
		if pc.Kind == chess.Pawn && pc.EnPassantEligible {
			sb.WriteString(pc.Position.Offset(-pc.Owner.Direction(), 0).String())
			return
		}
	}
	sb.WriteByte('-')
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.StandardStart()
	return board
}
