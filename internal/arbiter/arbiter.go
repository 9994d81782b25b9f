// Package arbiter drives a game turn by turn: piece selection, destination
// selection, move execution and the end-of-turn hooks, until a king is
// captured.
//
// The Arbiter is event-driven so that callback front ends can feed it
// selections one at a time; Play wraps the same state machine in a blocking
// loop over an Interactor.
package arbiter

import (
	"context"
	"io"
	"log"
	"slices"

	"github.com/lgbarn/chessmen-go/internal/chess"
	"github.com/lgbarn/chessmen-go/internal/engine"
	"github.com/lgbarn/chessmen-go/internal/errors"
)

// Arbiter owns the turn state machine for one board.
// It is not safe for concurrent use.
type Arbiter struct {
	board   *chess.Board
	state   State
	history []Ply

	strict    bool
	logger    *log.Logger
	verbosity int
	notifier  Notifier
	chooser   PromotionChooser
}

// Option configures an Arbiter.
type Option func(*Arbiter)

// WithStrictDestinations rejects destinations outside the legal set.
func WithStrictDestinations(strict bool) Option {
	return func(a *Arbiter) {
		a.strict = strict
	}
}

// WithLogger sets the logger used for game diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(a *Arbiter) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithVerbosity sets how much is logged: 1 for turns and game end, 2 for
// every move.
func WithVerbosity(v int) Option {
	return func(a *Arbiter) {
		a.verbosity = v
	}
}

// WithNotifier sets the receiver of game events.
func WithNotifier(n Notifier) Option {
	return func(a *Arbiter) {
		a.notifier = n
	}
}

// WithPromotionChooser sets who picks promotion pieces. Without one, pawns
// promote to queens.
func WithPromotionChooser(c PromotionChooser) Option {
	return func(a *Arbiter) {
		a.chooser = c
	}
}

// WithHistory seeds the move history of a resumed game.
func WithHistory(h []Ply) Option {
	return func(a *Arbiter) {
		a.history = slices.Clone(h)
	}
}

// New creates an arbiter for b. Call Start or Resume before selecting.
func New(b *chess.Board, opts ...Option) *Arbiter {
	a := &Arbiter{
		board:  b,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	b.SetRemoveListener(a.pieceRemoved)
	return a
}

// Board returns the board the arbiter plays on.
func (a *Arbiter) Board() *chess.Board {
	return a.board
}

// Start sets up the standard position on the empty board and gives White
// the first turn. Use Resume for a board that already holds pieces.
func (a *Arbiter) Start() error {
	if a.state.Phase != Idle {
		return errors.Wrapf(errors.ErrWrongPhase, "start in %s", a.state)
	}
	if !a.board.StandardStart() {
		return errors.Wrap(errors.ErrSquareOccupied, "start on a populated board")
	}
	a.beginTurn(chess.White)
	return nil
}

// Resume continues a game from the board as it is, with b.Turn to move.
// A board missing a king resumes straight into GameOver.
func (a *Arbiter) Resume() error {
	if a.state.Phase != Idle {
		return errors.Wrapf(errors.ErrWrongPhase, "resume in %s", a.state)
	}
	if err := a.board.Validate(); err != nil {
		return errors.Wrap(errors.ErrInvalidSnapshot, err.Error())
	}
	for _, p := range []chess.Player{chess.White, chess.Black} {
		if !a.board.KingAlive(p) {
			a.finish(p.Opposite())
			return nil
		}
	}
	a.beginTurn(a.board.Turn)
	return nil
}

// State returns the current state.
func (a *Arbiter) State() State {
	return a.state
}

// History returns the plies played so far.
func (a *Arbiter) History() []Ply {
	return slices.Clone(a.history)
}

// Winner returns the winner once the game is over.
func (a *Arbiter) Winner() (chess.Player, bool) {
	if a.state.Phase != GameOver {
		return chess.White, false
	}
	return a.state.Winner, true
}

// Selectable returns the pieces the current player may select.
func (a *Arbiter) Selectable() []*chess.Piece {
	switch a.state.Phase {
	case AwaitingSelection, AwaitingDestination:
		return a.board.PiecesOf(a.state.Player)
	}
	return nil
}

// Select picks the piece to move. It reports false, staying in
// AwaitingSelection, when the piece has no legal destination. Selecting while
// a destination is pending switches to the new piece.
func (a *Arbiter) Select(pc *chess.Piece) (bool, error) {
	switch a.state.Phase {
	case GameOver:
		return false, errors.ErrGameOver
	case AwaitingSelection, AwaitingDestination:
	default:
		return false, errors.Wrapf(errors.ErrWrongPhase, "select in %s", a.state)
	}
	player := a.state.Player
	if pc == nil || pc.Owner != player || !a.board.Contains(pc) {
		return false, &errors.MoveError{
			Err:    errors.ErrNotSelectable,
			Ply:    len(a.history) + 1,
			Player: player.String(),
			From:   pieceSquare(pc),
		}
	}

	legal := engine.LegalDestinations(a.board, pc)
	if len(legal) == 0 {
		a.state = State{Phase: AwaitingSelection, Player: player}
		return false, nil
	}
	a.state = State{
		Phase:    AwaitingDestination,
		Player:   player,
		Piece:    pc,
		Legal:    legal,
		Advisory: engine.EnemyControl(a.board, player),
	}
	return true, nil
}

// Deselect drops the selected piece without touching the board.
func (a *Arbiter) Deselect() {
	if a.state.Phase == AwaitingDestination {
		a.state = State{Phase: AwaitingSelection, Player: a.state.Player}
	}
}

// Choose moves the selected piece to dst and completes the turn. Choosing
// the piece's own square cancels the selection.
//
// A failed move leaves both the board and the state unchanged.
func (a *Arbiter) Choose(ctx context.Context, dst chess.Position) error {
	switch a.state.Phase {
	case GameOver:
		return errors.ErrGameOver
	case AwaitingDestination:
	default:
		return errors.Wrapf(errors.ErrWrongPhase, "choose in %s", a.state)
	}
	pc, player := a.state.Piece, a.state.Player
	if dst == pc.Position {
		a.Deselect()
		return nil
	}
	number := len(a.history) + 1
	if a.strict && !slices.Contains(a.state.Legal, dst) {
		return &errors.MoveError{
			Err:    errors.ErrInvalidDestination,
			Ply:    number,
			Player: player.String(),
			From:   pc.Position.String(),
			To:     dst.String(),
		}
	}

	res, err := engine.ExecuteMove(ctx, a.board, pc.Position, dst, a.chooser)
	if err != nil {
		var moveErr *errors.MoveError
		if errors.As(err, &moveErr) {
			moveErr.Ply = number
		}
		return err
	}

	a.state = State{Phase: TurnComplete, Player: player}
	a.board.RunTurnCompletionHooks()

	ply := newPly(number, player, res)
	a.history = append(a.history, ply)
	a.logf(2, "%d. %s %s %s", ply.Number, player, ply.Piece, ply)
	if ply.Promoted {
		a.logf(2, "%s promotes on %s to %s", player, ply.To, ply.Promotion)
	}

	opponent := player.Opposite()
	if !a.board.KingAlive(opponent) {
		a.finish(player)
		return nil
	}
	a.board.Turn = opponent
	a.beginTurn(opponent)
	return nil
}

func (a *Arbiter) beginTurn(player chess.Player) {
	a.state = State{Phase: AwaitingSelection, Player: player}
	a.logf(1, "%s to move", player)
	if a.notifier != nil {
		a.notifier.NotifyTurnStarted(player)
	}
}

func (a *Arbiter) finish(winner chess.Player) {
	a.state = State{Phase: GameOver, Player: a.board.Turn, Winner: winner}
	a.logf(1, "game over: %s wins after %d plies", winner, len(a.history))
	if a.notifier != nil {
		a.notifier.NotifyGameOver(winner)
	}
}

func (a *Arbiter) pieceRemoved(pc *chess.Piece) {
	if a.notifier != nil {
		a.notifier.NotifyPieceRemoved(pc)
	}
}

func (a *Arbiter) logf(level int, format string, args ...interface{}) {
	if a.verbosity >= level {
		a.logger.Printf(format, args...)
	}
}

func pieceSquare(pc *chess.Piece) string {
	if pc == nil {
		return ""
	}
	return pc.Position.String()
}
