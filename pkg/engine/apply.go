package engine

import (
	"fmt"

	"github.com/dshills/foolsgambit/pkg/apierr"
	"github.com/dshills/foolsgambit/pkg/cards"
	"github.com/dshills/foolsgambit/pkg/content"
	"github.com/dshills/foolsgambit/pkg/events"
	"github.com/dshills/foolsgambit/pkg/majors"
)

// Apply is the engine's reducer entry point: apply_action(state,
// action) -> (new_state, events). It never mutates s; on success it
// returns a freshly cloned state reflecting the action, and on any
// error it returns s unchanged alongside nil events, per §5 and §7.
func Apply(s RunState, a Action, bundle *content.Bundle) (result RunState, evtsOut []events.Event, err error) {
	if bundle == nil {
		return s, nil, apierr.ErrContentNotLoaded
	}

	next := s.Clone()
	var evts []events.Event

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(deckExhaustedPanic); ok {
				result, evtsOut, err = s, nil, apierr.ErrDeckExhausted
				return
			}
			panic(r)
		}
	}()

	if derr := dispatch(&next, &evts, bundle, a); derr != nil {
		return s, nil, derr
	}
	return next, evts, nil
}

func dispatch(s *RunState, evts *[]events.Event, bundle *content.Bundle, a Action) error {
	if s.Phase == PhaseRunVictory || s.Phase == PhaseRunDefeat {
		return apierr.ErrIllegalAction
	}
	if s.PendingPrompt != nil {
		return dispatchPendingPrompt(s, evts, bundle, a)
	}
	switch s.Phase {
	case PhaseFloorStart:
		return dispatchFloorStart(s, evts, bundle, a)
	case PhaseRoomChoice:
		return dispatchRoomChoice(s, evts, bundle, a)
	case PhaseEngageSetup:
		return dispatchEngageSetup(s, a)
	case PhasePreResolveWindow:
		return dispatchPreResolveWindow(s, evts, bundle, a)
	default:
		return apierr.ErrIllegalAction
	}
}

// --- FloorStart ---

func dispatchFloorStart(s *RunState, evts *[]events.Event, bundle *content.Bundle, a Action) error {
	if a.Kind != ActionSelectAttunement {
		return apierr.ErrIllegalAction
	}
	if !validAttunementChoice(s, a.AttunedMajorIDs) {
		return apierr.ErrIllegalAction
	}
	prompt, err := selectAttunement(s, evts, bundle, append([]string(nil), a.AttunedMajorIDs...))
	if err != nil {
		return err
	}
	s.PendingPrompt = prompt
	return nil
}

func validAttunementChoice(s *RunState, ids []string) bool {
	if len(ids) > 3 {
		return false
	}
	seen := map[string]bool{}
	claimed := map[string]bool{}
	for _, c := range s.Majors.Claimed {
		claimed[c] = true
	}
	for _, id := range ids {
		if seen[id] || !claimed[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

// --- RoomChoice ---

func dispatchRoomChoice(s *RunState, evts *[]events.Event, bundle *content.Bundle, a Action) error {
	switch a.Kind {
	case ActionChooseEngage:
		s.LastRoomWasFlee = false
		oc := s.Rules.OrderConstraint
		if oc.RequiresChooseCarriedFirst && s.Room.CarryChoiceIndex == nil {
			s.Phase = PhaseEngageSetup
		} else {
			s.Phase = PhasePreResolveWindow
		}
		return nil
	case ActionChooseFlee:
		if s.LastRoomWasFlee {
			return apierr.ErrIllegalAction
		}
		return chooseFlee(s, evts, bundle)
	default:
		return apierr.ErrIllegalAction
	}
}

func chooseFlee(s *RunState, evts *[]events.Event, bundle *content.Bundle) error {
	deck := s.activeDeck()
	for i := range s.Room.Slots {
		id := s.Room.Slots[i]
		if id == "" {
			continue
		}
		*deck = append(*deck, id)
		*evts = append(*evts, events.Bottomed(id))
	}
	s.Room = newRoom()
	s.LastRoomWasFlee = true
	prompt, err := revealRoom(s, evts, bundle)
	if err != nil {
		return err
	}
	s.PendingPrompt = prompt
	return nil
}

// --- EngageSetup ---

func dispatchEngageSetup(s *RunState, a Action) error {
	if a.Kind != ActionSelectCarriedCard {
		return apierr.ErrIllegalAction
	}
	if a.Slot < 0 || a.Slot >= len(s.Room.Slots) || s.Room.Slots[a.Slot] == "" {
		return apierr.ErrIllegalAction
	}
	slot := a.Slot
	s.Room.CarryChoiceIndex = &slot
	s.Phase = PhasePreResolveWindow
	return nil
}

// --- PreResolveWindow ---

func dispatchPreResolveWindow(s *RunState, evts *[]events.Event, bundle *content.Bundle, a Action) error {
	switch a.Kind {
	case ActionUseLeapOfFaith:
		return useLeapOfFaith(s, evts, a.Slot)
	case ActionSpendFateReroll:
		return spendFateReroll(s, evts, a.Slot)
	case ActionSpendFateCleanse:
		return spendFateCleanse(s, evts, a.Slot)
	case ActionSpendFateExileReplace:
		return spendFateExileReplace(s, evts, a.Slot)
	case ActionSpendFateCheatWeapon:
		return spendFateCheatWeapon(s, evts)
	case ActionUseSpellCleanse:
		return useSpellCleanse(s, evts, a.Slot)
	case ActionUseSpellReroll:
		return useSpellReroll(s, evts, a.Slot)
	case ActionUseMajorGift:
		return useMajorGift(s, evts, bundle, a.MajorID)
	case ActionCommitResolve:
		return doCommitResolve(s, evts, bundle, a.Slot)
	default:
		return apierr.ErrIllegalAction
	}
}

func occupied(s *RunState, slot int) bool {
	return slot >= 0 && slot < len(s.Room.Slots) && s.Room.Slots[slot] != ""
}

func useLeapOfFaith(s *RunState, evts *[]events.Event, slot int) error {
	if s.Room.LeapUsed || !occupied(s, slot) {
		return apierr.ErrIllegalAction
	}
	id := s.Room.Slots[slot]
	s.Orientations[id] = s.Orientations[id].Flip()
	s.Room.LeapUsed = true
	if s.effectiveOrientation(slot) == cards.Reversed {
		gainFate(s, evts, 2)
	} else {
		applyDamage(s, evts, 2, false)
	}
	if s.Player.HP <= 0 {
		s.Phase = PhaseRunDefeat
	}
	return nil
}

func spendFateReroll(s *RunState, evts *[]events.Event, slot int) error {
	if s.Room.DisabledFateActionsThisRoom[content.FateReroll] || s.Player.Fate < 1 || !occupied(s, slot) {
		return apierr.ErrIllegalAction
	}
	gainFate(s, evts, -1)
	(&reduceCtx{s: s, evts: evts}).BottomSlotAndDraw(slot)
	return nil
}

func spendFateCleanse(s *RunState, evts *[]events.Event, slot int) error {
	if s.Room.DisabledFateActionsThisRoom[content.FateCleanse] || s.Player.Fate < 1 || !occupied(s, slot) {
		return apierr.ErrIllegalAction
	}
	if s.effectiveOrientation(slot) != cards.Reversed {
		return apierr.ErrIllegalAction
	}
	gainFate(s, evts, -1)
	s.Room.PendingCleanses[slot] = true
	return nil
}

func spendFateExileReplace(s *RunState, evts *[]events.Event, slot int) error {
	if s.Player.Fate < 2 || !occupied(s, slot) {
		return apierr.ErrIllegalAction
	}
	gainFate(s, evts, -2)
	(&reduceCtx{s: s, evts: evts}).ExileSlotAndDraw(slot)
	return nil
}

func spendFateCheatWeapon(s *RunState, evts *[]events.Event) error {
	if s.Player.Fate < 2 {
		return apierr.ErrIllegalAction
	}
	gainFate(s, evts, -2)
	s.Player.CheatWeaponNextEnemyFight = true
	return nil
}

func useSpellCleanse(s *RunState, evts *[]events.Event, slot int) error {
	if s.Player.Spell == nil || !occupied(s, slot) {
		return apierr.ErrIllegalAction
	}
	old := s.Player.Spell.CardID
	s.Floor.FloorDiscard = append(s.Floor.FloorDiscard, old)
	*evts = append(*evts, events.Discard("spell", old))
	s.Player.Spell = nil
	s.Room.PendingCleanses[slot] = true
	return nil
}

func useSpellReroll(s *RunState, evts *[]events.Event, slot int) error {
	if s.Player.Spell == nil || !occupied(s, slot) {
		return apierr.ErrIllegalAction
	}
	old := s.Player.Spell.CardID
	s.Floor.FloorDiscard = append(s.Floor.FloorDiscard, old)
	*evts = append(*evts, events.Discard("spell", old))
	s.Player.Spell = nil
	(&reduceCtx{s: s, evts: evts}).BottomSlotAndDraw(slot)
	return nil
}

func useMajorGift(s *RunState, evts *[]events.Event, bundle *content.Bundle, majorID string) error {
	if !containsStr(s.Majors.Attuned, majorID) || containsStr(s.Majors.SpentThisFloor, majorID) {
		return apierr.ErrIllegalAction
	}
	def, ok := bundle.MajorByID(majorID)
	if !ok {
		return apierr.ErrIllegalAction
	}
	s.Majors.SpentThisFloor = append(s.Majors.SpentThisFloor, majorID)

	ctx := &reduceCtx{s: s, evts: evts}
	outcome, err := majors.Evaluate(ctx, majorID, def.Gift.Effect)
	if err != nil {
		return err
	}
	if !outcome.Done {
		s.Debug.Continuation = outcome.Continuation
		s.PendingPrompt = &PendingPrompt{
			Kind:        PromptMajorEffect,
			MajorID:     majorID,
			MajorHook:   HookGift,
			MajorPrompt: outcome.Prompt,
		}
	}
	return nil
}

func doCommitResolve(s *RunState, evts *[]events.Event, bundle *content.Bundle, slot int) error {
	allowed := allowedCommitSlots(s)
	ok := false
	for _, i := range allowed {
		if i == slot {
			ok = true
			break
		}
	}
	if !ok {
		return apierr.ErrIllegalAction
	}
	prompt, err := commitResolve(s, evts, bundle, slot)
	if err != nil {
		return err
	}
	s.PendingPrompt = prompt
	return nil
}

// --- Pending prompts (ResolveExecute variants + Major prompts) ---

func dispatchPendingPrompt(s *RunState, evts *[]events.Event, bundle *content.Bundle, a Action) error {
	p := s.PendingPrompt
	switch p.Kind {
	case PromptAce:
		if a.Kind != ActionAceResolve || a.Slot != p.Slot {
			return apierr.ErrPromptMismatch
		}
		s.PendingPrompt = nil
		prompt, err := resolveAce(s, evts, bundle, p.Slot, a.Choice, a.MajorTarget)
		if err != nil {
			return err
		}
		s.PendingPrompt = prompt
		return nil

	case PromptEnemyFightChoice:
		if a.Kind != ActionEnemyFightChoice || a.Slot != p.Slot {
			return apierr.ErrPromptMismatch
		}
		s.PendingPrompt = nil
		prompt, err := resolveEnemyFightChoice(s, evts, bundle, p.Slot, a.Choice)
		if err != nil {
			return err
		}
		s.PendingPrompt = prompt
		return nil

	case PromptSwordsAmbush:
		if a.Kind != ActionSwordsAmbushBlock || a.Slot != p.Slot {
			return apierr.ErrPromptMismatch
		}
		if a.Choice != "block" && a.Choice != "noBlock" {
			return apierr.ErrIllegalAction
		}
		s.PendingPrompt = nil
		prompt, err := resolveSwordsAmbush(s, evts, bundle, p.Slot, a.Choice == "block")
		if err != nil {
			return err
		}
		s.PendingPrompt = prompt
		return nil

	case PromptCupsChoice:
		if a.Kind != ActionCupsChoice || a.Slot != p.Slot {
			return apierr.ErrPromptMismatch
		}
		s.PendingPrompt = nil
		prompt, err := resolveCupsChoice(s, evts, bundle, p.Slot, a.Choice)
		if err != nil {
			return err
		}
		s.PendingPrompt = prompt
		return nil

	case PromptMajorEffect:
		if a.Kind != ActionMajorPromptRespond || a.MajorID != p.MajorID {
			return apierr.ErrPromptMismatch
		}
		return dispatchMajorPromptRespond(s, evts, bundle, a)

	default:
		return apierr.ErrPromptMismatch
	}
}

func dispatchMajorPromptRespond(s *RunState, evts *[]events.Event, bundle *content.Bundle, a Action) error {
	p := s.PendingPrompt
	resumeAction := p.ResumeAction
	hook := p.MajorHook
	majorID := p.MajorID
	trigger := p.MajorTrigger

	resp := majors.Response{
		ChoiceKey:   a.MajorChoiceKey,
		Target:      a.MajorTarget,
		Permutation: a.MajorPermutation,
		RoomOrder:   a.MajorRoomOrder,
	}
	ctx := &reduceCtx{s: s, evts: evts}
	outcome, err := majors.Resume(ctx, s.Debug.Continuation, resp)
	if err != nil {
		return fmt.Errorf("%w: %v", apierr.ErrIllegalAction, err)
	}

	if !outcome.Done {
		s.Debug.Continuation = outcome.Continuation
		s.PendingPrompt = &PendingPrompt{
			Kind:         PromptMajorEffect,
			MajorID:      majorID,
			MajorHook:    hook,
			MajorTrigger: trigger,
			MajorPrompt:  outcome.Prompt,
			ResumeAction: resumeAction,
		}
		return nil
	}

	s.Debug.Continuation = nil
	s.PendingPrompt = nil

	switch resumeAction {
	case ResumeOrderConstraintShadow:
		prompt, err := orderConstraintShadowSequence(s, evts, bundle)
		if err != nil {
			return err
		}
		s.PendingPrompt = prompt
	case ResumeRevealRoom:
		prompt, err := revealRoom(s, evts, bundle)
		if err != nil {
			return err
		}
		s.PendingPrompt = prompt
	case ResumeCheckRoomEnd:
		prompt, err := checkRoomEndOrContinue(s, evts, bundle)
		if err != nil {
			return err
		}
		s.PendingPrompt = prompt
	}
	return nil
}
