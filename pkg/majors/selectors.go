package majors

import "github.com/dshills/foolsgambit/pkg/content"

// targetCandidates returns the occupied room slots eligible for kind,
// in ascending index order. CLEANSE_REVEALED is restricted to slots
// whose effective orientation is already reversed; the other
// target-selecting kinds accept any occupied slot.
func targetCandidates(env Env, kind content.EffectKind) []int {
	var out []int
	for i := 0; i < env.RoomSlotCount(); i++ {
		if _, ok := env.RoomSlotCardID(i); !ok {
			continue
		}
		if kind == content.CleanseRevealed && !env.RoomSlotEffectiveReversed(i) {
			continue
		}
		out = append(out, i)
	}
	return out
}

func applyTarget(env Env, kind content.EffectKind, slot int) {
	switch kind {
	case content.RerollRevealed:
		env.BottomSlotAndDraw(slot)
	case content.ExileReplaceRevealed:
		env.ExileSlotAndDraw(slot)
	case content.CleanseRevealed:
		env.SetCleanse(slot, true)
	}
}

// highestValueTies returns the candidates sharing the maximum ordering
// value among candidates.
func highestValueTies(env Env, candidates []int) []int {
	best := -1
	var ties []int
	for _, slot := range candidates {
		v := env.RoomSlotOrderingValue(slot)
		switch {
		case v > best:
			best = v
			ties = []int{slot}
		case v == best:
			ties = append(ties, slot)
		}
	}
	return ties
}

// resolveTargetSelect evaluates one of REROLL_REVEALED,
// EXILE_REPLACE_REVEALED, CLEANSE_REVEALED. It either applies the
// effect immediately (selector resolved deterministically, or the
// candidate set was empty — a no-op per §4.4's short-circuit rule) or
// parks a PromptSelectTarget prompt.
func resolveTargetSelect(env Env, e *content.Effect) (evalResult, error) {
	candidates := targetCandidates(env, e.Kind)

	switch e.TargetSelector {
	case content.PlayerChoice:
		if len(candidates) == 0 {
			return evalResult{}, nil
		}
		return parkSelectTarget(e.Kind, candidates), nil

	case content.RandomSelector:
		if len(candidates) == 0 {
			return evalResult{}, nil
		}
		idx := env.RNG().IntN(len(candidates))
		applyTarget(env, e.Kind, candidates[idx])
		return evalResult{}, nil

	case content.Leftmost:
		if len(candidates) == 0 {
			return evalResult{}, nil
		}
		applyTarget(env, e.Kind, candidates[0])
		return evalResult{}, nil

	case content.HighestValue:
		if len(candidates) == 0 {
			return evalResult{}, nil
		}
		ties := highestValueTies(env, candidates)
		if len(ties) == 1 {
			applyTarget(env, e.Kind, ties[0])
			return evalResult{}, nil
		}
		return parkSelectTarget(e.Kind, ties), nil

	case content.IfEnemyPresentPlayerChoice:
		if !env.RoomHasEnemy() || len(candidates) == 0 {
			return evalResult{}, nil
		}
		return parkSelectTarget(e.Kind, candidates), nil

	case content.IfAnyReversedPlayerChoice:
		if !env.RoomHasAnyEffectiveReversed() || len(candidates) == 0 {
			return evalResult{}, nil
		}
		return parkSelectTarget(e.Kind, candidates), nil

	default:
		return evalResult{}, nil
	}
}

func parkSelectTarget(kind content.EffectKind, candidates []int) evalResult {
	return evalResult{
		parked: true,
		prompt: &Prompt{Kind: PromptSelectTarget, Candidates: candidates},
		pending: pendingEffect{
			kind:       kind,
			candidates: candidates,
		},
	}
}
