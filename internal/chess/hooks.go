package chess

// HookKind identifies what a turn-completion hook does when it fires.
type HookKind int

const (
	// HookFunc runs Hook.Fn. It cannot be persisted.
	HookFunc HookKind = iota
	// HookArmEnPassantExpiry fires at the end of the pawn owner's turn and
	// queues HookClearEnPassant for the same pawn at the tail.
	HookArmEnPassantExpiry
	// HookClearEnPassant clears the pawn's EnPassantEligible flag.
	HookClearEnPassant
	// HookPromote replaces the pawn with a piece of Hook.Promotion kind.
	HookPromote
)

// String returns the hook kind name.
func (k HookKind) String() string {
	switch k {
	case HookFunc:
		return "func"
	case HookArmEnPassantExpiry:
		return "arm-en-passant-expiry"
	case HookClearEnPassant:
		return "clear-en-passant"
	case HookPromote:
		return "promote"
	}
	return "unknown"
}

// Hook is a deferred action run after a move and its effects are finalized.
// A Repeat hook stays queued after firing; otherwise it fires once.
type Hook struct {
	Kind      HookKind
	Repeat    bool
	PieceID   int
	Promotion PieceKind
	Fn        func(*Board)
}

// FuncHook wraps fn as a hook.
func FuncHook(fn func(*Board), repeat bool) Hook {
	return Hook{Kind: HookFunc, Fn: fn, Repeat: repeat}
}

// Enqueue appends h to the tail of the hook queue.
func (b *Board) Enqueue(h Hook) {
	b.hooks = append(b.hooks, h)
}

// EnqueueFront inserts h at the head of the hook queue. Inserted while hooks
// are running, it still fires in the current pass if budget remains.
func (b *Board) EnqueueFront(h Hook) {
	b.hooks = append([]Hook{h}, b.hooks...)
}

// PendingHooks returns a copy of the queued hooks, head first.
func (b *Board) PendingHooks() []Hook {
	out := make([]Hook, len(b.hooks))
	copy(out, b.hooks)
	return out
}

// RunTurnCompletionHooks fires queued hooks in FIFO order.
//
// The number of hooks fired is the queue length at the start of the call.
// Repeat hooks are re-appended to the tail after firing. Hooks appended to
// the tail during the call wait for the next call; hooks inserted at the
// head fire in this call while the budget lasts.
func (b *Board) RunTurnCompletionHooks() {
	budget := len(b.hooks)
	for i := 0; i < budget && len(b.hooks) > 0; i++ {
		h := b.hooks[0]
		b.hooks = b.hooks[1:]
		b.fire(h)
		if h.Repeat {
			b.hooks = append(b.hooks, h)
		}
	}
}

func (b *Board) fire(h Hook) {
	switch h.Kind {
	case HookFunc:
		if h.Fn != nil {
			h.Fn(b)
		}
	case HookArmEnPassantExpiry:
		if b.PieceByID(h.PieceID) != nil {
			b.Enqueue(Hook{Kind: HookClearEnPassant, PieceID: h.PieceID})
		}
	case HookClearEnPassant:
		if pc := b.PieceByID(h.PieceID); pc != nil {
			pc.EnPassantEligible = false
		}
	case HookPromote:
		pc := b.PieceByID(h.PieceID)
		if pc == nil || !h.Promotion.IsPromotionChoice() {
			return
		}
		pos, owner := pc.Position, pc.Owner
		b.RemovePiece(pc)
		// The square was just vacated, so Place cannot fail.
		_, _ = b.Place(h.Promotion, owner, pos)
	}
}
