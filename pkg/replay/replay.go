// Package replay drives an ActionLog through the reducer and records
// a per-step canonical state hash, the mechanism §8's parity property
// and corpus validation both rely on.
package replay

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dshills/foolsgambit/pkg/apierr"
	"github.com/dshills/foolsgambit/pkg/content"
	"github.com/dshills/foolsgambit/pkg/engine"
	"github.com/dshills/foolsgambit/pkg/events"
	"github.com/dshills/foolsgambit/pkg/hashstate"
)

// ActionLog is a stored run: a seed-bearing START_RUN action followed
// by every subsequent player decision, in order.
type ActionLog struct {
	Actions []engine.Action `json:"actions"`
}

// Result is what replaying an ActionLog produces: the final state,
// every emitted event in order, and a step_index→state_hash map
// keyed on the index of the action that produced that state (0 is
// the state immediately after START_RUN).
type Result struct {
	FinalState RunStatePtr
	Events     []events.Event
	Hashes     map[int]string
}

// RunStatePtr is the replay driver's handle on the terminal state;
// kept as a named type so callers never need to import pkg/engine
// just to hold the return value.
type RunStatePtr = *engine.RunState

// Run replays log against bundle: it expects log.Actions[0] to be
// START_RUN{seed, run_length_target}, calls CreateRun once, then
// Apply for every remaining action, hashing state after each step.
// Any CreateRun or Apply failure, whatever its kind, is logged
// (content version, step index, the offending action's kind, and the
// error) before being returned; the log line does not include the
// engine version or the seed. A hashing failure is returned without
// being logged.
func Run(log_ *ActionLog, bundle *content.Bundle) (Result, error) {
	if len(log_.Actions) == 0 || log_.Actions[0].Kind != engine.ActionStartRun {
		return Result{}, fmt.Errorf("replay: first action must be START_RUN: %w", apierr.ErrIllegalAction)
	}
	start := log_.Actions[0]

	s, err := engine.CreateRun(start.Seed, start.RunLengthTarget, bundle)
	if err != nil {
		logFatal(bundle, start, 0, err)
		return Result{}, fmt.Errorf("replay: create_run: %w", err)
	}

	hashes := make(map[int]string, len(log_.Actions))
	var allEvents []events.Event

	h0, err := hashstate.HashState(&s)
	if err != nil {
		return Result{}, fmt.Errorf("replay: hash step 0: %w", err)
	}
	hashes[0] = h0

	for i, a := range log_.Actions[1:] {
		stepIndex := i + 1
		next, evts, err := engine.Apply(s, a, bundle)
		if err != nil {
			logFatal(bundle, a, stepIndex, err)
			return Result{}, fmt.Errorf("replay: apply step %d: %w", stepIndex, err)
		}
		s = next
		allEvents = append(allEvents, evts...)

		h, err := hashstate.HashState(&s)
		if err != nil {
			return Result{}, fmt.Errorf("replay: hash step %d: %w", stepIndex, err)
		}
		hashes[stepIndex] = h
	}

	final := s
	return Result{FinalState: &final, Events: allEvents, Hashes: hashes}, nil
}

func logFatal(bundle *content.Bundle, a engine.Action, stepIndex int, err error) {
	contentVersion := ""
	if bundle != nil {
		contentVersion = bundle.ContentVersion
	}
	log.Error().
		Str("content_version", contentVersion).
		Int("step_index", stepIndex).
		Str("action_kind", string(a.Kind)).
		Err(err).
		Msg("replay halted on unrecoverable error")
}
