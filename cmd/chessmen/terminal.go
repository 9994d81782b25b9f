// terminal.go - Line-oriented interactor reading square names
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmen-go/internal/chess"
)

// errQuit is returned from a prompt when the player abandons the game.
var errQuit = errors.New("game abandoned")

// terminal plays a game over a text stream. Every prompt also accepts
// "save" and "quit".
type terminal struct {
	in          *bufio.Scanner
	out         io.Writer
	board       *chess.Board
	showControl bool
	save        func() error
}

func newTerminal(in io.Reader, out io.Writer, board *chess.Board, showControl bool) *terminal {
	return &terminal{
		in:          bufio.NewScanner(in),
		out:         out,
		board:       board,
		showControl: showControl,
	}
}

// readLine prompts and returns the next non-empty line, lowercased. Meta
// commands are handled here and never returned.
func (t *terminal) readLine(ctx context.Context, prompt string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprint(t.out, prompt)
		if !t.in.Scan() {
			if err := t.in.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		line := strings.ToLower(strings.TrimSpace(t.in.Text()))
		switch line {
		case "":
			continue
		case "quit", "exit":
			return "", errQuit
		case "save":
			t.runSave()
			continue
		case "board":
			fmt.Fprint(t.out, t.board)
			continue
		}
		return line, nil
	}
}

func (t *terminal) runSave() {
	if t.save == nil {
		fmt.Fprintln(t.out, "saving is not available")
		return
	}
	if err := t.save(); err != nil {
		fmt.Fprintf(t.out, "save failed: %v\n", err)
		return
	}
	fmt.Fprintln(t.out, "saved")
}

// RequestPieceSelection asks for the square of the piece to move.
func (t *terminal) RequestPieceSelection(ctx context.Context, player chess.Player, selectable []*chess.Piece) (*chess.Piece, error) {
	fmt.Fprint(t.out, t.board)
	for {
		line, err := t.readLine(ctx, fmt.Sprintf("%s, select a piece: ", player))
		if err != nil {
			return nil, err
		}
		pos, ok := chess.ParsePosition(line)
		if !ok {
			fmt.Fprintf(t.out, "%q is not a square\n", line)
			continue
		}
		for _, pc := range selectable {
			if pc.Position == pos {
				return pc, nil
			}
		}
		fmt.Fprintf(t.out, "no %s piece on %s\n", player, pos)
	}
}

// RequestDestinationSelection lists the legal squares and asks for one.
// Naming the piece's own square cancels the selection.
func (t *terminal) RequestDestinationSelection(ctx context.Context, piece *chess.Piece, legal, advisory []chess.Position) (chess.Position, error) {
	fmt.Fprintf(t.out, "%s can move to: %s\n", piece, squares(legal))
	if t.showControl {
		fmt.Fprintf(t.out, "%s controls: %s\n", piece.Owner.Opposite(), squares(advisory))
	}
	for {
		line, err := t.readLine(ctx, "destination: ")
		if err != nil {
			return chess.Position{}, err
		}
		pos, ok := chess.ParsePosition(line)
		if !ok {
			fmt.Fprintf(t.out, "%q is not a square\n", line)
			continue
		}
		return pos, nil
	}
}

// RequestPromotionChoice asks which piece a pawn becomes.
func (t *terminal) RequestPromotionChoice(ctx context.Context, player chess.Player) (chess.PieceKind, error) {
	for {
		line, err := t.readLine(ctx, fmt.Sprintf("%s promotes to (q/r/b/n): ", player))
		if err != nil {
			return 0, err
		}
		if kind, ok := promotionKinds[line]; ok {
			return kind, nil
		}
		fmt.Fprintf(t.out, "%q is not a promotion choice\n", line)
	}
}

var promotionKinds = map[string]chess.PieceKind{
	"q": chess.Queen, "queen": chess.Queen,
	"r": chess.Rook, "rook": chess.Rook,
	"b": chess.Bishop, "bishop": chess.Bishop,
	"n": chess.Knight, "knight": chess.Knight,
}

// NotifyTurnStarted announces the player to move.
func (t *terminal) NotifyTurnStarted(player chess.Player) {
	fmt.Fprintf(t.out, "\n%s to move\n", player)
}

// NotifyPieceRemoved reports a piece leaving the board.
func (t *terminal) NotifyPieceRemoved(piece *chess.Piece) {
	fmt.Fprintf(t.out, "%s %s removed from %s\n", piece.Owner, piece.Kind, piece.Position)
}

// NotifyGameOver announces the winner.
func (t *terminal) NotifyGameOver(winner chess.Player) {
	fmt.Fprint(t.out, t.board)
	fmt.Fprintf(t.out, "%s captures the king and wins\n", winner)
}

func squares(ps []chess.Position) string {
	if len(ps) == 0 {
		return "-"
	}
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.String()
	}
	return strings.Join(names, " ")
}
