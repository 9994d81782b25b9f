package engine

import (
	"testing"

	"github.com/lgbarn/chessmen-go/internal/chess"
	"github.com/lgbarn/chessmen-go/internal/testutil"
)

var emptyRows = []string{
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
}

// sortedLegal returns the legal destinations of the piece on square, sorted.
func sortedLegal(t *testing.T, board *chess.Board, square string) []chess.Position {
	t.Helper()
	pc := board.At(testutil.MustPos(t, square))
	if pc == nil {
		t.Fatalf("no piece on %s", square)
	}
	return UniqueControlledSquares(LegalDestinations(board, pc))
}

func TestLegalDestinations_StartPosition(t *testing.T) {
	board := NewInitialBoard()

	tests := []struct {
		square string
		want   []chess.Position
	}{
		{"b1", testutil.Positions("a3", "c3")},
		{"g1", testutil.Positions("f3", "h3")},
		{"e2", testutil.Positions("e3", "e4")},
		{"a7", testutil.Positions("a5", "a6")},
		{"b8", testutil.Positions("a6", "c6")},
		{"a1", testutil.Positions()},
		{"c1", testutil.Positions()},
		{"d1", testutil.Positions()},
		{"e8", testutil.Positions()},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			testutil.AssertEqual(t, sortedLegal(t, board, tt.square), tt.want)
		})
	}
}

func TestLegalDestinations_SinglePieces(t *testing.T) {
	tests := []struct {
		name   string
		kind   chess.PieceKind
		square string
		want   int
	}{
		{"knight in corner", chess.Knight, "a1", 2},
		{"knight in centre", chess.Knight, "d4", 8},
		{"bishop in centre", chess.Bishop, "d4", 13},
		{"bishop in corner", chess.Bishop, "h8", 7},
		{"rook anywhere", chess.Rook, "d4", 14},
		{"queen in centre", chess.Queen, "d4", 27},
		{"king in centre", chess.King, "e4", 8},
		{"king in corner", chess.King, "h1", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, chess.White, emptyRows...)
			pc := testutil.MustPlace(t, board, tt.kind, chess.White, tt.square)
			// Keep the king from offering castling.
			pc.HasMoved = true

			got := LegalDestinations(board, pc)
			if len(got) != tt.want {
				t.Errorf("len(LegalDestinations()) = %d, want %d: %v", len(got), tt.want, got)
			}
			if uniq := UniqueControlledSquares(got); len(uniq) != len(got) {
				t.Errorf("LegalDestinations() has duplicates: %v", got)
			}
		})
	}
}

func TestLegalDestinations_SlidersStopAtPieces(t *testing.T) {
	board := testutil.MustBoard(t, chess.White,
		"........",
		"........",
		"........",
		"...p....",
		"........",
		"........",
		"...R.P..",
		"........",
	)

	// Up the file to the capture on d5, along the rank until the own pawn on f2.
	want := testutil.Positions("d1", "a2", "b2", "c2", "e2", "d3", "d4", "d5")
	testutil.AssertEqual(t, sortedLegal(t, board, "d2"), want)
}

func TestLegalDestinations_Pawn(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		moved bool
		pawn  string
		want  []chess.Position
	}{
		{
			name: "white double push",
			rows: []string{
				"........", "........", "........", "........",
				"........", "........", "....P...", "........",
			},
			pawn: "e2",
			want: testutil.Positions("e3", "e4"),
		},
		{
			name: "moved pawn single push",
			rows: []string{
				"........", "........", "........", "........",
				"........", "....P...", "........", "........",
			},
			moved: true,
			pawn:  "e3",
			want:  testutil.Positions("e4"),
		},
		{
			name: "blocked pawn",
			rows: []string{
				"........", "........", "........", "........",
				"........", "....n...", "....P...", "........",
			},
			pawn: "e2",
			want: testutil.Positions(),
		},
		{
			name: "double push blocked on second square",
			rows: []string{
				"........", "........", "........", "........",
				"....n...", "........", "....P...", "........",
			},
			pawn: "e2",
			want: testutil.Positions("e3"),
		},
		{
			name: "captures enemies only",
			rows: []string{
				"........", "........", "........", "........",
				"........", "...n.N..", "....P...", "........",
			},
			pawn: "e2",
			want: testutil.Positions("d3", "e3", "e4"),
		},
		{
			name: "black moves down",
			rows: []string{
				"........", "...p....", "..B.....", "........",
				"........", "........", "........", "........",
			},
			pawn: "d7",
			want: testutil.Positions("c6", "d5", "d6"),
		},
		{
			name: "edge file",
			rows: []string{
				"........", "........", "........", "........",
				"........", ".p......", "P.......", "........",
			},
			pawn: "a2",
			want: testutil.Positions("b3", "a3", "a4"),
		},
		{
			name: "no move from far row",
			rows: []string{
				"P.......", "........", "........", "........",
				"........", "........", "........", "........",
			},
			moved: true,
			pawn:  "a8",
			want:  testutil.Positions(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, chess.White, tt.rows...)
			pc := board.At(testutil.MustPos(t, tt.pawn))
			pc.HasMoved = tt.moved
			testutil.AssertEqual(t, sortedLegal(t, board, tt.pawn), UniqueControlledSquares(tt.want))
		})
	}
}

func TestLegalDestinations_EnPassant(t *testing.T) {
	board := testutil.MustBoard(t, chess.Black,
		"........",
		"........",
		"........",
		"........",
		"...pP...",
		"........",
		"........",
		"........",
	)
	black := board.At(testutil.MustPos(t, "d4"))
	black.HasMoved = true
	white := board.At(testutil.MustPos(t, "e4"))

	testutil.AssertEqual(t, sortedLegal(t, board, "d4"), testutil.Positions("d3"))

	white.EnPassantEligible = true
	testutil.AssertEqual(t, sortedLegal(t, board, "d4"), testutil.Positions("d3", "e3"))

	// Eligibility belongs to the enemy pawn only.
	black.EnPassantEligible = true
	white.EnPassantEligible = false
	testutil.AssertEqual(t, sortedLegal(t, board, "d4"), testutil.Positions("d3"))
}

func TestControlledSquares(t *testing.T) {
	board := testutil.MustBoard(t, chess.White,
		"........",
		"........",
		"........",
		"........",
		"........",
		".....N..",
		"P...P...",
		"R..K...R",
	)
	tests := []struct {
		square string
		want   []chess.Position
	}{
		// Pawn control ignores occupancy and the board edge.
		{"a2", testutil.Positions("b3")},
		{"e2", testutil.Positions("d3", "f3")},
		// King control never includes castling targets.
		{"d1", testutil.Positions("c1", "e1", "c2", "d2")},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			pc := board.At(testutil.MustPos(t, tt.square))
			got := UniqueControlledSquares(ControlledSquares(board, pc))
			testutil.AssertEqual(t, got, tt.want)
		})
	}

	king := board.At(testutil.MustPos(t, "d1"))
	if !ContainsPosition(UniqueControlledSquares(LegalDestinations(board, king)), testutil.MustPos(t, "b1")) {
		t.Error("LegalDestinations(king) should offer queenside castling")
	}
}

func TestControlledSquaresFrom_Hypothetical(t *testing.T) {
	board := testutil.MustBoard(t, chess.White, emptyRows...)
	king := testutil.MustPlace(t, board, chess.King, chess.White, "d1")
	testutil.MustPlace(t, board, chess.Rook, chess.White, "h1")

	// From another square the king never offers castling.
	got := UniqueControlledSquares(LegalDestinationsFrom(board, king, testutil.MustPos(t, "d3")))
	want := testutil.Positions("c2", "d2", "e2", "c3", "e3", "c4", "d4", "e4")
	testutil.AssertEqual(t, got, want)

	got = UniqueControlledSquares(ControlledSquaresFrom(board, king, testutil.MustPos(t, "a8")))
	testutil.AssertEqual(t, got, testutil.Positions("a7", "b7", "b8"))
}

func TestLegalDestinations_NoDuplicates(t *testing.T) {
	board, err := NewBoardFromFEN("r2k3r/pp1q1ppp/2n1bn2/2bpp3/2B1P3/2NP1N2/PPPQ1PPP/R2K3R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("NewBoardFromFEN failed: %v", err)
	}
	for _, pc := range board.Pieces() {
		legal := LegalDestinations(board, pc)
		if len(UniqueControlledSquares(legal)) != len(legal) {
			t.Errorf("%s: duplicate destinations %v", pc, legal)
		}
		control := ControlledSquares(board, pc)
		if len(UniqueControlledSquares(control)) != len(control) {
			t.Errorf("%s: duplicate controlled squares %v", pc, control)
		}
	}
}
