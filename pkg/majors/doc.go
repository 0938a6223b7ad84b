// Package majors interprets the Major Arcana effect-primitive trees
// loaded by pkg/content. Shadows and gifts are never hard-coded as Go
// functions per Major: every one of them is authored as a tree of the
// same closed set of primitives, and this package is the single
// generic evaluator for that tree. This is what keeps independent
// ports of the game in parity — a bespoke per-Major code path in one
// port and not another would fork behavior silently.
//
// # Parking and resuming
//
// Some primitives (CHOICE, BARGAIN, a PLAYER_CHOICE-resolved selector,
// PEEK_TOP_N with can_reorder, REORDER_ROOM_ARBITRARY) cannot complete without a
// player decision. Evaluate walks the tree with an explicit
// continuation stack rather than native recursion so it can stop mid
// walk, hand the caller a Prompt describing the decision, and resume
// exactly where it left off once the caller supplies a Response in a
// later call — decisions arrive as separate apply_action calls, so
// the interpreter's own call stack cannot survive between them.
//
// # Env
//
// Evaluate and Resume never touch RunState directly. They operate
// through the Env interface, which names exactly the room, deck, and
// rule-state operations the effect vocabulary needs. Env is declared
// here, in the consumer package, rather than in pkg/engine: pkg/engine
// needs to call into this package to run shadows and gifts, and if
// this package imported pkg/engine for its state type the two would
// form an import cycle. pkg/engine's reducer context implements Env
// instead.
package majors
