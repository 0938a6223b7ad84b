package engine

import (
	"github.com/dshills/foolsgambit/pkg/cards"
	"github.com/dshills/foolsgambit/pkg/content"
	"github.com/dshills/foolsgambit/pkg/majors"
)

// LegalActions enumerates every action Apply will currently accept,
// in the fixed deterministic order required by §4.7 so independent
// implementations agree on the list byte-for-byte.
func LegalActions(s *RunState, bundle *content.Bundle) []Action {
	if s.Phase == PhaseRunVictory || s.Phase == PhaseRunDefeat {
		return nil
	}
	if s.PendingPrompt != nil {
		return legalPendingPromptActions(s)
	}
	switch s.Phase {
	case PhaseFloorStart:
		return legalFloorStart(s)
	case PhaseRoomChoice:
		return legalRoomChoice(s)
	case PhaseEngageSetup:
		return legalEngageSetup(s)
	case PhasePreResolveWindow:
		return legalPreResolveWindow(s)
	default:
		return nil
	}
}

func legalPendingPromptActions(s *RunState) []Action {
	p := s.PendingPrompt
	switch p.Kind {
	case PromptMajorEffect:
		return legalMajorPromptActions(s, p)
	case PromptAce:
		out := make([]Action, len(p.AceOptions))
		for i, opt := range p.AceOptions {
			out[i] = Action{Kind: ActionAceResolve, Slot: p.Slot, Choice: opt.Key, MajorTarget: opt.Slot}
		}
		return out
	case PromptEnemyFightChoice:
		return []Action{
			{Kind: ActionEnemyFightChoice, Slot: p.Slot, Choice: "barehand"},
			{Kind: ActionEnemyFightChoice, Slot: p.Slot, Choice: "weapon"},
		}
	case PromptSwordsAmbush:
		return []Action{
			{Kind: ActionSwordsAmbushBlock, Slot: p.Slot, Choice: "noBlock"},
			{Kind: ActionSwordsAmbushBlock, Slot: p.Slot, Choice: "block"},
		}
	case PromptCupsChoice:
		return []Action{
			{Kind: ActionCupsChoice, Slot: p.Slot, Choice: "heal"},
			{Kind: ActionCupsChoice, Slot: p.Slot, Choice: "equipArmor"},
		}
	default:
		return nil
	}
}

func legalMajorPromptActions(s *RunState, p *PendingPrompt) []Action {
	mp := p.MajorPrompt
	base := Action{Kind: ActionMajorPromptRespond, MajorID: p.MajorID}

	switch mp.Kind {
	case majors.PromptChoice:
		out := make([]Action, len(mp.Options))
		for i, key := range mp.Options {
			a := base
			a.MajorChoiceKey = key
			out[i] = a
		}
		return out

	case majors.PromptBargain:
		var out []Action
		for _, bo := range mp.Bargain {
			if bo.PayGold != nil && s.Player.Gold < *bo.PayGold {
				continue
			}
			a := base
			a.MajorChoiceKey = bo.Key
			out = append(out, a)
		}
		return out

	case majors.PromptSelectTarget:
		out := make([]Action, len(mp.Candidates))
		for i, c := range mp.Candidates {
			a := base
			a.MajorTarget = c
			out[i] = a
		}
		return out

	case majors.PromptReorderTopN:
		perms := permuteStrings(mp.TopIDs)
		out := make([]Action, len(perms))
		for i, perm := range perms {
			a := base
			a.MajorPermutation = perm
			out[i] = a
		}
		return out

	case majors.PromptReorderRoom:
		perms := permuteInts(mp.Candidates)
		out := make([]Action, len(perms))
		for i, perm := range perms {
			a := base
			a.MajorRoomOrder = perm
			out[i] = a
		}
		return out

	default:
		return nil
	}
}

func legalFloorStart(s *RunState) []Action {
	subsets := attunementSubsets(s.Majors.Claimed)
	out := make([]Action, len(subsets))
	for i, set := range subsets {
		out[i] = Action{Kind: ActionSelectAttunement, AttunedMajorIDs: set}
	}
	return out
}

func legalRoomChoice(s *RunState) []Action {
	out := []Action{{Kind: ActionChooseEngage}}
	if !s.LastRoomWasFlee {
		out = append(out, Action{Kind: ActionChooseFlee})
	}
	return out
}

func legalEngageSetup(s *RunState) []Action {
	var out []Action
	for _, i := range s.Room.OccupiedSlots() {
		out = append(out, Action{Kind: ActionSelectCarriedCard, Slot: i})
	}
	return out
}

func legalPreResolveWindow(s *RunState) []Action {
	var out []Action

	for _, id := range s.Majors.Attuned {
		if !containsStr(s.Majors.SpentThisFloor, id) {
			out = append(out, Action{Kind: ActionUseMajorGift, MajorID: id})
		}
	}

	if !s.Room.LeapUsed {
		for _, i := range s.Room.OccupiedSlots() {
			out = append(out, Action{Kind: ActionUseLeapOfFaith, Slot: i})
		}
	}

	if s.Player.Fate >= 1 && !s.Room.DisabledFateActionsThisRoom[content.FateReroll] {
		for _, i := range s.Room.OccupiedSlots() {
			out = append(out, Action{Kind: ActionSpendFateReroll, Slot: i})
		}
	}

	if s.Player.Fate >= 1 && !s.Room.DisabledFateActionsThisRoom[content.FateCleanse] {
		for _, i := range s.Room.OccupiedSlots() {
			if s.effectiveOrientation(i) == cards.Reversed {
				out = append(out, Action{Kind: ActionSpendFateCleanse, Slot: i})
			}
		}
	}

	if s.Player.Fate >= 2 {
		for _, i := range s.Room.OccupiedSlots() {
			out = append(out, Action{Kind: ActionSpendFateExileReplace, Slot: i})
		}
	}

	if s.Player.Fate >= 2 {
		out = append(out, Action{Kind: ActionSpendFateCheatWeapon})
	}

	if s.Player.Spell != nil {
		for _, i := range s.Room.OccupiedSlots() {
			out = append(out, Action{Kind: ActionUseSpellCleanse, Slot: i})
		}
		for _, i := range s.Room.OccupiedSlots() {
			out = append(out, Action{Kind: ActionUseSpellReroll, Slot: i})
		}
	}

	for _, i := range allowedCommitSlots(s) {
		out = append(out, Action{Kind: ActionCommitResolve, Slot: i})
	}

	return out
}

// permuteStrings returns every permutation of xs in deterministic
// order (standard lexicographic recursion on position).
func permuteStrings(xs []string) [][]string {
	if len(xs) == 0 {
		return nil
	}
	var out [][]string
	var rec func(prefix, rest []string)
	rec = func(prefix, rest []string) {
		if len(rest) == 0 {
			out = append(out, append([]string(nil), prefix...))
			return
		}
		for i := range rest {
			next := append(append([]string(nil), rest[:i]...), rest[i+1:]...)
			withNext := append(append([]string(nil), prefix...), rest[i])
			rec(withNext, next)
		}
	}
	rec(nil, xs)
	return out
}

func permuteInts(xs []int) [][]int {
	if len(xs) == 0 {
		return nil
	}
	var out [][]int
	var rec func(prefix, rest []int)
	rec = func(prefix, rest []int) {
		if len(rest) == 0 {
			out = append(out, append([]int(nil), prefix...))
			return
		}
		for i := range rest {
			next := append(append([]int(nil), rest[:i]...), rest[i+1:]...)
			withNext := append(append([]int(nil), prefix...), rest[i])
			rec(withNext, next)
		}
	}
	rec(nil, xs)
	return out
}
