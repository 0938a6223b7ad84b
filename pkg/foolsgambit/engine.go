// Package foolsgambit is the public façade over the rules engine: it
// re-exports create_run, legal_actions, apply_action, hash_state and
// replay_log as methods on a single Engine value bound to one loaded
// content bundle, mirroring a front door over the otherwise
// package-scattered reducer internals.
package foolsgambit

import (
	"fmt"

	"github.com/dshills/foolsgambit/pkg/apierr"
	"github.com/dshills/foolsgambit/pkg/content"
	"github.com/dshills/foolsgambit/pkg/engine"
	"github.com/dshills/foolsgambit/pkg/events"
	"github.com/dshills/foolsgambit/pkg/hashstate"
	"github.com/dshills/foolsgambit/pkg/replay"
)

// Action and Event are the façade's names for the types a caller
// exchanges with Engine; they are aliases so callers never need to
// import pkg/engine or pkg/events directly.
type (
	Action   = engine.Action
	Event    = events.Event
	RunState = engine.RunState
	ActionLog = replay.ActionLog
)

// Engine binds the six entry points to one immutable content bundle.
type Engine struct {
	bundle *content.Bundle
}

// NewEngine validates and binds bundle. The returned Engine is safe
// for concurrent use: every method takes its RunState by value or
// pointer and never mutates shared state beyond the bundle, which is
// read-only after load_content.
func NewEngine(bundle *content.Bundle) (*Engine, error) {
	if bundle == nil {
		return nil, apierr.ErrContentNotLoaded
	}
	return &Engine{bundle: bundle}, nil
}

// CreateRun is create_run: it builds the initial RunState for seed
// and runLengthTarget.
func (e *Engine) CreateRun(seed uint32, runLengthTarget int) (*RunState, error) {
	s, err := engine.CreateRun(seed, runLengthTarget, e.bundle)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// LegalActions is legal_actions: every Action Apply will currently
// accept for s, in the fixed deterministic order §4.7 requires.
func (e *Engine) LegalActions(s *RunState) []Action {
	return engine.LegalActions(s, e.bundle)
}

// Apply is apply_action: it returns a freshly allocated RunState and
// the events a replays UI should render, or leaves s's observable
// value untouched and returns an error for an illegal action or a
// fatal engine condition.
func (e *Engine) Apply(s *RunState, a Action) (*RunState, []Event, error) {
	next, evts, err := engine.Apply(*s, a, e.bundle)
	if err != nil {
		return s, nil, err
	}
	return &next, evts, nil
}

// HashState is hash_state: the canonical SHA-256 hex digest of s's
// gameplay-relevant fields.
func (e *Engine) HashState(s *RunState) (string, error) {
	h, err := hashstate.HashState(s)
	if err != nil {
		return "", fmt.Errorf("foolsgambit: hash_state: %w", err)
	}
	return h, nil
}

// ReplayLog is replay_log: it drives log through CreateRun/Apply and
// returns the final state plus a step_index→hash map.
func (e *Engine) ReplayLog(log *ActionLog) (*RunState, map[int]string, error) {
	result, err := replay.Run(log, e.bundle)
	if err != nil {
		return nil, nil, err
	}
	return result.FinalState, result.Hashes, nil
}
