// Package hashstate computes the canonical SHA-256 hash of a run's
// state: the single source of truth for replay parity across
// independent implementations.
package hashstate

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/dshills/foolsgambit/pkg/engine"
	"github.com/gowebpki/jcs"
)

// hashablePendingPrompt is the sum-type discriminator kept in the
// hash. The decision payload a UI needs to render options (choice
// keys, candidate slots, peeked card ids) is replay scaffolding, not
// gameplay-relevant state, and is left out.
type hashablePendingPrompt struct {
	Kind         engine.PromptKind    `json:"kind"`
	Slot         int                  `json:"slot"`
	MajorID      string               `json:"major_id,omitempty"`
	MajorHook    engine.MajorHookKind `json:"major_hook,omitempty"`
	MajorTrigger string               `json:"major_trigger,omitempty"`
	ResumeAction engine.ResumeAction  `json:"resume_action,omitempty"`
}

type hashablePendingResolution struct {
	Slot   int    `json:"slot"`
	CardID string `json:"card_id"`
}

// hashableState mirrors engine.RunState's gameplay-relevant fields
// per §3. It omits RunState.Debug entirely and reduces
// RunState.PendingPrompt to hashablePendingPrompt.
type hashableState struct {
	RunLengthTarget int                 `json:"run_length_target"`
	Phase           engine.Phase        `json:"phase"`
	RNGState        uint32              `json:"rng_state"`

	Player engine.Player     `json:"player"`
	Floor  engine.Floor      `json:"floor"`
	Room   engine.Room       `json:"room"`
	Majors engine.MajorsState `json:"majors"`
	Rules  engine.RulesState `json:"rules"`

	MinorDeck       []string `json:"minor_deck"`
	MajorDeck       []string `json:"major_deck"`
	LastRoomWasFlee bool     `json:"last_room_was_flee"`

	Orientations map[string]string `json:"orientations"`

	PendingPrompt     *hashablePendingPrompt     `json:"pending_prompt,omitempty"`
	PendingResolution *hashablePendingResolution `json:"pending_resolution,omitempty"`
}

func toHashable(s *engine.RunState) hashableState {
	orient := make(map[string]string, len(s.Orientations))
	for id, o := range s.Orientations {
		orient[id] = string(o)
	}

	h := hashableState{
		RunLengthTarget: s.RunLengthTarget,
		Phase:           s.Phase,
		RNGState:        s.RNG.State(),
		Player:          s.Player,
		Floor:           s.Floor,
		Room:            s.Room,
		Majors:          s.Majors,
		Rules:           s.Rules,
		MinorDeck:       s.MinorDeck,
		MajorDeck:       s.MajorDeck,
		LastRoomWasFlee: s.LastRoomWasFlee,
		Orientations:    orient,
	}

	if s.PendingPrompt != nil {
		p := s.PendingPrompt
		h.PendingPrompt = &hashablePendingPrompt{
			Kind:         p.Kind,
			Slot:         p.Slot,
			MajorID:      p.MajorID,
			MajorHook:    p.MajorHook,
			MajorTrigger: string(p.MajorTrigger),
			ResumeAction: p.ResumeAction,
		}
	}
	if s.PendingResolution != nil {
		r := s.PendingResolution
		h.PendingResolution = &hashablePendingResolution{Slot: r.Slot, CardID: r.CardID}
	}

	return h
}

// HashState computes the canonical hash of s: marshal the hashable
// projection to JSON, canonicalize per RFC 8785, hash with SHA-256,
// hex-lowercase. Two states that differ only in Debug or in
// pending-prompt UI payload hash identically.
func HashState(s *engine.RunState) (string, error) {
	raw, err := json.Marshal(toHashable(s))
	if err != nil {
		return "", fmt.Errorf("hashstate: marshal: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("hashstate: canonicalize: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
