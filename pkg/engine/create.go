package engine

import (
	"fmt"

	"github.com/dshills/foolsgambit/pkg/apierr"
	"github.com/dshills/foolsgambit/pkg/cards"
	"github.com/dshills/foolsgambit/pkg/content"
	"github.com/dshills/foolsgambit/pkg/rng"
)

// startingMaxHP is not pinned by name in the source specification's
// data model beyond its bounds (hp ∈ [0,max_hp]); a concrete starting
// loadout is needed to
// produce a playable CreateRun, so this package fixes one. See
// DESIGN.md for the reasoning.
const startingMaxHP = 20

// ValidRunLengthTargets are the three Major-count milestones a run can
// be configured to end at.
var ValidRunLengthTargets = map[int]bool{7: true, 14: true, 21: true}

// CreateRun builds the initial RunState for seed and runLengthTarget
// against bundle, landing in PhaseFloorStart with floor 1's Major
// already drawn and its minor deck shuffled.
func CreateRun(seed uint32, runLengthTarget int, bundle *content.Bundle) (RunState, error) {
	if bundle == nil {
		return RunState{}, apierr.ErrContentNotLoaded
	}
	if !ValidRunLengthTargets[runLengthTarget] {
		return RunState{}, fmt.Errorf("engine: run_length_target %d not in {7,14,21}: %w", runLengthTarget, apierr.ErrIllegalAction)
	}

	r := rng.New(seed)

	orientations := make(map[string]cards.Orientation, cards.Count)
	for _, id := range cards.AllCardIDs() {
		if r.Next()%2 == 0 {
			orientations[id] = cards.Upright
		} else {
			orientations[id] = cards.Reversed
		}
	}

	majorDeck := append([]string(nil), bundle.MajorOrder...)
	r.ShuffleStrings(majorDeck)

	s := RunState{
		RNG:             r,
		RunLengthTarget: runLengthTarget,
		Phase:           PhaseRunInit,
		Player: Player{
			HP:    startingMaxHP,
			MaxHP: startingMaxHP,
			Gold:  0,
			Fate:  0,
		},
		Room:         newRoom(),
		MajorDeck:    majorDeck,
		Orientations: orientations,
		Rules: RulesState{
			WeaponRestrictionMode: content.WeaponDefault,
			OrderConstraint:       OrderConstraintState{Kind: content.OrderNone},
		},
	}

	startFloor(&s)
	return s, nil
}
