package majors

import (
	"fmt"

	"github.com/dshills/foolsgambit/pkg/content"
	"github.com/dshills/foolsgambit/pkg/events"
)

// Outcome is the result of one Evaluate or Resume call.
type Outcome struct {
	// Done reports whether the effect tree finished without any
	// outstanding decision.
	Done bool
	// Prompt is set when !Done: the decision the caller must surface
	// to the player before calling Resume.
	Prompt *Prompt
	// Continuation is set when !Done: opaque state to pass back into
	// Resume alongside the player's Response.
	Continuation *Continuation
}

// evalResult is evalNode's internal return shape: either nothing
// (continue the walk) or a parked decision.
type evalResult struct {
	parked  bool
	prompt  *Prompt
	pending pendingEffect
}

// Evaluate runs a Major's effect tree (a shadow or a gift) from the
// root. majorID is stamped onto any Prompt this evaluation parks.
func Evaluate(env Env, majorID string, root *content.Effect) (Outcome, error) {
	return runStack(env, majorID, [][]*content.Effect{{root}})
}

// Resume applies resp to a previously parked Continuation and
// continues evaluation from where it stopped.
func Resume(env Env, cont *Continuation, resp Response) (Outcome, error) {
	stack := cloneStack(cont.stack)

	switch cont.pending.kind {
	case content.Choice:
		opt := findChoice(cont.pending.options, resp.ChoiceKey)
		if opt == nil {
			return Outcome{}, fmt.Errorf("majors: choice key %q not offered", resp.ChoiceKey)
		}
		stack = append(stack, []*content.Effect{opt.Effect})

	case content.Bargain:
		bo := findBargain(cont.pending.bargainOptions, resp.ChoiceKey)
		if bo == nil {
			return Outcome{}, fmt.Errorf("majors: bargain key %q not offered", resp.ChoiceKey)
		}
		if bo.PayGold != nil {
			if !env.PayGold(*bo.PayGold) {
				return Outcome{}, fmt.Errorf("majors: insufficient gold for bargain option %q", resp.ChoiceKey)
			}
		}
		if bo.TakeDamage != nil {
			env.ApplyDamage(*bo.TakeDamage)
		}
		if bo.Heal != nil {
			env.ApplyHeal(*bo.Heal)
		}
		if bo.GainGold != nil {
			env.GainGold(*bo.GainGold)
		}

	case content.RerollRevealed, content.ExileReplaceRevealed, content.CleanseRevealed:
		if !containsInt(cont.pending.candidates, resp.Target) {
			return Outcome{}, fmt.Errorf("majors: target slot %d not among offered candidates", resp.Target)
		}
		applyTarget(env, cont.pending.kind, resp.Target)

	case content.ReorderTopN:
		env.ReorderTopN(resp.Permutation)

	case content.ReorderRoomArbitrary:
		env.ReorderRoomArbitrary(resp.RoomOrder)

	default:
		return Outcome{}, fmt.Errorf("majors: continuation has unresumable pending kind %q", cont.pending.kind)
	}

	return runStack(env, cont.MajorID, stack)
}

// runStack drives the continuation-stack walk until the tree is
// exhausted or a node parks.
func runStack(env Env, majorID string, stack [][]*content.Effect) (Outcome, error) {
	for len(stack) > 0 {
		top := len(stack) - 1
		frame := stack[top]
		if len(frame) == 0 {
			stack = stack[:top]
			continue
		}
		node := frame[0]
		stack[top] = frame[1:]

		result, err := evalNode(env, node, &stack)
		if err != nil {
			return Outcome{}, err
		}
		if result.parked {
			result.prompt.MajorID = majorID
			return Outcome{
				Done: false,
				Prompt: result.prompt,
				Continuation: &Continuation{
					MajorID: majorID,
					pending: result.pending,
					stack:   cloneStack(stack),
				},
			}, nil
		}
	}
	return Outcome{Done: true}, nil
}

func evalNode(env Env, e *content.Effect, stack *[][]*content.Effect) (evalResult, error) {
	switch e.Kind {
	case content.Noop:
		return evalResult{}, nil

	case content.Sequence:
		*stack = append(*stack, e.Effects)
		return evalResult{}, nil

	case content.Conditional:
		branch := e.Else
		if evalPredicate(env, e.If) {
			branch = e.Then
		}
		*stack = append(*stack, []*content.Effect{branch})
		return evalResult{}, nil

	case content.Choice:
		return evalResult{
			parked:  true,
			prompt:  &Prompt{Kind: PromptChoice, Options: choiceKeys(e.Options)},
			pending: pendingEffect{kind: content.Choice, options: e.Options},
		}, nil

	case content.Bargain:
		return evalResult{
			parked:  true,
			prompt:  &Prompt{Kind: PromptBargain, Options: bargainKeys(e.BargainOptions), Bargain: e.BargainOptions},
			pending: pendingEffect{kind: content.Bargain, bargainOptions: e.BargainOptions},
		}, nil

	case content.RerollRevealed, content.ExileReplaceRevealed, content.CleanseRevealed:
		return resolveTargetSelect(env, e)

	case content.PeekTopN:
		ids := env.PeekTopN(e.N)
		env.EmitEvent(events.Event{Kind: events.PeekTopN, N: e.N, CardIDs: ids})
		if e.CanReorder {
			return evalResult{
				parked:  true,
				prompt:  &Prompt{Kind: PromptReorderTopN, TopIDs: ids},
				pending: pendingEffect{kind: content.ReorderTopN},
			}, nil
		}
		return evalResult{}, nil

	case content.ReorderTopN:
		// Only reachable if authored standalone, outside a PEEK_TOP_N
		// node's can_reorder flow; nothing to splice without a peeked
		// set, so treat as a no-op.
		return evalResult{}, nil

	case content.ReorderRoomByValue:
		env.ReorderRoomByValue()
		return evalResult{}, nil

	case content.ReorderRoomArbitrary:
		candidates := make([]int, env.RoomSlotCount())
		for i := range candidates {
			candidates[i] = i
		}
		return evalResult{
			parked:  true,
			prompt:  &Prompt{Kind: PromptReorderRoom, Candidates: candidates},
			pending: pendingEffect{kind: content.ReorderRoomArbitrary, candidates: candidates},
		}, nil

	case content.DisableFateAction:
		env.DisableFateAction(e.FateAction, e.EffectScope)
		return evalResult{}, nil

	case content.SetWeaponRestrictionMode:
		env.SetWeaponRestrictionMode(e.Mode)
		return evalResult{}, nil

	case content.SetOrderConstraint:
		env.SetOrderConstraint(e.OrderConstraint, e.RequiresChooseCarriedFirst)
		return evalResult{}, nil

	case content.SetFloorParam:
		env.SetFloorParam(e.ParamKey, e.ParamValue, e.EffectScope)
		return evalResult{}, nil

	case content.ForcedExileFirstResolveAttempt:
		env.SetForcedExileFirstResolveAttempt()
		return evalResult{}, nil

	default:
		return evalResult{}, fmt.Errorf("majors: unhandled effect kind %q", e.Kind)
	}
}

func cloneStack(stack [][]*content.Effect) [][]*content.Effect {
	out := make([][]*content.Effect, len(stack))
	for i, frame := range stack {
		f := make([]*content.Effect, len(frame))
		copy(f, frame)
		out[i] = f
	}
	return out
}

func choiceKeys(opts []content.ChoiceOption) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Key
	}
	return out
}

func bargainKeys(opts []content.BargainOption) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Key
	}
	return out
}

func findChoice(opts []content.ChoiceOption, key string) *content.ChoiceOption {
	for i := range opts {
		if opts[i].Key == key {
			return &opts[i]
		}
	}
	return nil
}

func findBargain(opts []content.BargainOption, key string) *content.BargainOption {
	for i := range opts {
		if opts[i].Key == key {
			return &opts[i]
		}
	}
	return nil
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
