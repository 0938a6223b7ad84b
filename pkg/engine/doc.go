// Package engine implements the reducer: the single entry point,
// apply_action, through which every rule of Fool's Gambit is enforced.
// It owns RunState, the phase state machine, the resolution pipeline,
// floor and boss progression, and legal-action enumeration.
//
// # Contract
//
// Apply takes a RunState and an Action and returns a new RunState plus
// an ordered list of events; it never mutates its input. An action not
// present in LegalActions(state) is rejected — with
// apierr.ErrPromptMismatch when a prompt is pending and the action is of
// the wrong kind for it, otherwise with apierr.ErrIllegalAction — and
// the input state is returned unchanged. This mirrors the "new
// state out" discipline the teacher's generator pipeline uses for its
// own Artifact value: callers must not alias a RunState across calls
// that return a new one.
//
// # Majors
//
// Shadow and gift effects are never implemented here as per-Major Go
// functions; Apply hands the active Major's effect tree to
// pkg/majors.Evaluate (or Resume, when a prompt is parked) through an
// adapter that implements majors.Env directly on the reducer's working
// state.
package engine
