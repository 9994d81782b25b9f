package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/lgbarn/chessmen-go/internal/chess"
	"github.com/lgbarn/chessmen-go/internal/testutil"
)

func newTestTerminal(input string) (*terminal, *bytes.Buffer, *chess.Board) {
	out := &bytes.Buffer{}
	board := testutil.NewStartedBoard()
	return newTerminal(strings.NewReader(input), out, board, false), out, board
}

func TestTerminal_RequestPieceSelection(t *testing.T) {
	term, out, board := newTestTerminal("\nzz\ne7\nE2\n")
	pc, err := term.RequestPieceSelection(context.Background(), chess.White, board.PiecesOf(chess.White))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pc.Position, testutil.MustPos(t, "e2"))
	testutil.AssertContains(t, out.String(), `"zz" is not a square`)
	testutil.AssertContains(t, out.String(), "no White piece on e7")
	testutil.AssertContains(t, out.String(), "  abcdefgh")
}

func TestTerminal_RequestDestinationSelection(t *testing.T) {
	term, out, board := newTestTerminal("x\ne4\n")
	term.showControl = true
	pawn := board.At(testutil.MustPos(t, "e2"))
	legal := testutil.Positions("e3", "e4")
	dst, err := term.RequestDestinationSelection(context.Background(), pawn, legal, nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, dst, testutil.MustPos(t, "e4"))
	testutil.AssertContains(t, out.String(), "White Pawn@e2 can move to: e3 e4")
	testutil.AssertContains(t, out.String(), "Black controls: -")
}

func TestTerminal_RequestPromotionChoice(t *testing.T) {
	term, out, _ := newTestTerminal("king\nn\n")
	kind, err := term.RequestPromotionChoice(context.Background(), chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, kind, chess.Knight)
	testutil.AssertContains(t, out.String(), `"king" is not a promotion choice`)
}

func TestTerminal_MetaCommands(t *testing.T) {
	t.Run("quit", func(t *testing.T) {
		term, _, board := newTestTerminal("quit\n")
		_, err := term.RequestPieceSelection(context.Background(), chess.White, board.PiecesOf(chess.White))
		testutil.AssertErrorIs(t, err, errQuit)
	})

	t.Run("end of input", func(t *testing.T) {
		term, _, _ := newTestTerminal("")
		_, err := term.RequestPromotionChoice(context.Background(), chess.White)
		testutil.AssertErrorIs(t, err, io.EOF)
	})

	t.Run("save without store", func(t *testing.T) {
		term, out, _ := newTestTerminal("save\nq\n")
		_, err := term.RequestPromotionChoice(context.Background(), chess.White)
		testutil.AssertNoError(t, err)
		testutil.AssertContains(t, out.String(), "saving is not available")
	})

	t.Run("save", func(t *testing.T) {
		term, out, _ := newTestTerminal("save\nsave\nq\n")
		calls := 0
		term.save = func() error {
			calls++
			if calls == 2 {
				return errors.New("disk full")
			}
			return nil
		}
		_, err := term.RequestPromotionChoice(context.Background(), chess.White)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, calls, 2)
		testutil.AssertContains(t, out.String(), "saved\n")
		testutil.AssertContains(t, out.String(), "save failed: disk full")
	})

	t.Run("board", func(t *testing.T) {
		term, out, _ := newTestTerminal("board\nr\n")
		kind, err := term.RequestPromotionChoice(context.Background(), chess.Black)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, kind, chess.Rook)
		testutil.AssertContains(t, out.String(), "8 rnbkqbnr")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		term, _, _ := newTestTerminal("q\n")
		_, err := term.RequestPromotionChoice(ctx, chess.White)
		testutil.AssertErrorIs(t, err, context.Canceled)
	})
}

func TestTerminal_Notifications(t *testing.T) {
	term, out, board := newTestTerminal("")
	term.NotifyTurnStarted(chess.Black)
	term.NotifyPieceRemoved(board.At(testutil.MustPos(t, "d8")))
	term.NotifyGameOver(chess.White)

	testutil.AssertContains(t, out.String(), "Black to move")
	testutil.AssertContains(t, out.String(), "Black King removed from d8")
	testutil.AssertContains(t, out.String(), "White captures the king and wins")
}
