// Package events defines the observable event vocabulary emitted by
// apply_action. Events are the engine's only narration channel: a
// client reconstructs what happened during a transition by replaying
// the ordered event list, never by diffing states.
//
// Event is a single flexible struct rather than a sum type so the
// action log and any persisted replay trace stay trivially
// JSON-serializable; Kind selects which of the optional fields are
// populated. Both pkg/majors and pkg/engine emit events through this
// package, which keeps the vocabulary defined in exactly one place
// and avoids a dependency between those two packages.
package events
