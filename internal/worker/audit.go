package worker

import (
	"context"
	"fmt"
	"sort"

	"github.com/lgbarn/chessmen-go/internal/chess"
	"github.com/lgbarn/chessmen-go/internal/hashing"
	"github.com/lgbarn/chessmen-go/internal/storage"
)

// AuditGame restores a stored game and reports anything inconsistent about it.
func AuditGame(item WorkItem) ProcessResult {
	res := ProcessResult{Record: item.Record, Index: item.Index}
	rec := item.Record
	if rec == nil {
		res.Error = fmt.Errorf("nil record")
		return res
	}

	board, err := chess.FromSnapshot(rec.Snapshot)
	if err != nil {
		res.Error = err
		return res
	}
	if err := board.Validate(); err != nil {
		res.Error = err
		return res
	}
	res.Signature = hashing.NewSignature(rec.ID, board, len(rec.History))

	issuef := func(format string, args ...interface{}) {
		res.Issues = append(res.Issues, fmt.Sprintf(format, args...))
	}

	whiteKing, blackKing := board.KingAlive(chess.White), board.KingAlive(chess.Black)
	switch rec.Status {
	case storage.StatusActive:
		if !whiteKing || !blackKing {
			issuef("active game is missing a king")
		}
		if rec.Winner != nil {
			issuef("active game has winner %s", *rec.Winner)
		}
	case storage.StatusFinished:
		switch {
		case rec.Winner == nil:
			issuef("finished game has no winner")
		case whiteKing == blackKing:
			issuef("finished game must have exactly one king")
		case board.KingAlive(rec.Winner.Opposite()):
			issuef("winner %s has lost its king", *rec.Winner)
		}
	default:
		issuef("unknown status %q", rec.Status)
	}

	for i, ply := range rec.History {
		if ply.Number != i+1 {
			issuef("ply %d numbered %d", i+1, ply.Number)
		}
		if i > 0 && ply.Player == rec.History[i-1].Player {
			issuef("ply %d: %s moved twice in a row", ply.Number, ply.Player)
		}
	}
	if n := len(rec.History); n > 0 && rec.Status == storage.StatusActive {
		if last := rec.History[n-1].Player; board.Turn != last.Opposite() {
			issuef("%s to move after %s played last", board.Turn, last)
		}
	}
	return res
}

// Audit checks recs in parallel and returns the results in input order.
// A game in the same position as an earlier one gets DuplicateOf set.
// Cancelling ctx stops the remaining games from being checked.
func Audit(ctx context.Context, recs []*storage.GameRecord, opts ...PoolOption) ([]ProcessResult, error) {
	pool := NewPool(AuditGame, opts...)
	pool.Start()

	go func() {
		defer pool.Close()
		for i, rec := range recs {
			if ctx.Err() != nil {
				pool.Stop()
				return
			}
			pool.Submit(WorkItem{Record: rec, Index: i})
		}
	}()

	results := make([]ProcessResult, 0, len(recs))
	for r := range pool.Results() {
		results = append(results, r)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	detector := hashing.NewDuplicateDetector(false)
	for i := range results {
		if results[i].Error != nil {
			continue
		}
		if first, dup := detector.CheckAndAdd(results[i].Signature); dup {
			results[i].DuplicateOf = first.GameID
		}
	}
	return results, nil
}
