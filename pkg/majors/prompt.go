package majors

import "github.com/dshills/foolsgambit/pkg/content"

// PromptKind identifies the shape of a parked Major prompt.
type PromptKind string

const (
	PromptChoice       PromptKind = "MAJOR_CHOICE"
	PromptBargain      PromptKind = "MAJOR_BARGAIN"
	PromptSelectTarget PromptKind = "MAJOR_SELECT_TARGET"
	PromptReorderTopN  PromptKind = "MAJOR_REORDER_TOP3"
	PromptReorderRoom  PromptKind = "MAJOR_REORDER_ROOM4"
)

// Prompt describes a decision the interpreter needs before it can
// continue evaluating a Major's effect tree. Its fields drive
// legal-action enumeration: Options, Bargain and Candidates list the
// offered answers, and for PromptReorderTopN every permutation of
// TopIDs is offered. None of this payload is part of the canonical
// state hash.
type Prompt struct {
	Kind       PromptKind
	MajorID    string
	Options    []string // CHOICE/BARGAIN option keys, authored order
	Bargain    []content.BargainOption // BARGAIN only: full option shapes, so callers can filter pay_gold affordability without re-parsing content
	Candidates []int                   // room slot indices, ascending, for SelectTarget/ReorderRoom
	TopIDs     []string                // ReorderTopN: the peeked card ids, deck order
}

// Response answers a parked Prompt.
type Response struct {
	ChoiceKey   string   // CHOICE/BARGAIN
	Target      int      // SelectTarget: chosen room slot index
	Permutation []string // ReorderTopN: full reordering of TopIDs
	RoomOrder   []int    // ReorderRoom: permutation of slot indices
}

// pendingEffect is the continuation's record of which decision is
// outstanding and what resuming it requires.
type pendingEffect struct {
	kind           content.EffectKind
	options        []content.ChoiceOption
	bargainOptions []content.BargainOption
	candidates     []int
}

// Continuation is the interpreter's parked state: the decision
// awaiting a Response, plus the remaining effect-tree work to resume
// once it's answered. It belongs in a RunState's debug sidecar, never
// in the hashed subset — two implementations may represent a parked
// continuation differently as long as they agree on the Prompt itself.
type Continuation struct {
	MajorID string
	pending pendingEffect
	stack   [][]*content.Effect
}
