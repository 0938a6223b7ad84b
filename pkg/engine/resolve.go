package engine

import (
	"github.com/dshills/foolsgambit/pkg/apierr"
	"github.com/dshills/foolsgambit/pkg/cards"
	"github.com/dshills/foolsgambit/pkg/content"
	"github.com/dshills/foolsgambit/pkg/events"
)

// isFirstResolveAttempt reports whether no card has yet resolved in
// the current room.
func isFirstResolveAttempt(s *RunState) bool {
	for _, r := range s.Room.ResolvedMask {
		if r {
			return false
		}
	}
	return true
}

// hangedManApplies reports whether the Hanged Man hook gates the
// room's first COMMIT_RESOLVE: the active Major's shadow trigger is
// BEFORE_FIRST_RESOLVE_ATTEMPT with a FORCED_EXILE_FIRST_RESOLVE_ATTEMPT
// effect, no card has resolved yet, and the hook hasn't already fired
// this room.
func hangedManApplies(s *RunState, bundle *content.Bundle) bool {
	if s.Room.HangedManTriggeredThisRoom || !isFirstResolveAttempt(s) {
		return false
	}
	def, ok := bundle.MajorByID(s.Floor.ActiveMajorID)
	if !ok || def.Shadow.Trigger != content.BeforeFirstResolveAttempt {
		return false
	}
	return def.Shadow.Effect != nil && def.Shadow.Effect.Kind == content.ForcedExileFirstResolveAttempt
}

// commitResolve handles COMMIT_RESOLVE: the Hanged Man hook diverts
// the room's first attempt into an exile-and-redraw; otherwise it
// records pending_resolution and dispatches no-choice resolution.
func commitResolve(s *RunState, evts *[]events.Event, bundle *content.Bundle, slot int) (*PendingPrompt, error) {
	if hangedManApplies(s, bundle) {
		ctx := &reduceCtx{s: s, evts: evts}
		ctx.ExileSlotAndDraw(slot)
		s.Room.HangedManTriggeredThisRoom = true
		s.Phase = PhasePreResolveWindow
		return nil, nil
	}

	cardID := s.Room.Slots[slot]
	s.PendingResolution = &PendingResolution{Slot: slot, CardID: cardID}
	s.Phase = PhaseResolveExecute
	return resolveSlot(s, evts, bundle, slot)
}

// resolveSlot dispatches the no-choice resolution pipeline for the
// card committed at slot.
func resolveSlot(s *RunState, evts *[]events.Event, bundle *content.Bundle, slot int) (*PendingPrompt, error) {
	id := s.Room.Slots[slot]
	suit, rank := cards.MustParseID(id)
	eff := s.effectiveOrientation(slot)

	if cards.IsAce(rank) {
		return parkAcePrompt(s, slot), nil
	}

	switch suit {
	case cards.Pentacles:
		return resolvePentaclesNumbered(s, evts, bundle, slot, eff)
	case cards.Cups:
		if cards.IsCourt(rank) {
			return resolveCourt(s, evts, bundle, slot, rank, eff)
		}
		return resolveCupsNumbered(s, evts, bundle, slot, eff)
	case cards.Wands:
		if cards.IsCourt(rank) {
			return resolveCourt(s, evts, bundle, slot, rank, eff)
		}
		return resolveWandsNumbered(s, evts, bundle, slot, eff)
	case cards.Swords:
		if cards.IsCourt(rank) {
			return resolveCourt(s, evts, bundle, slot, rank, eff)
		}
		return resolveSwordsNumbered(s, evts, bundle, slot, eff)
	default:
		if cards.IsCourt(rank) {
			return resolveCourt(s, evts, bundle, slot, rank, eff)
		}
		return nil, nil
	}
}

func resolvePentaclesNumbered(s *RunState, evts *[]events.Event, bundle *content.Bundle, slot int, eff cards.Orientation) (*PendingPrompt, error) {
	_, rank := cards.MustParseID(s.Room.Slots[slot])
	v := cards.NumericValue(rank)
	if eff == cards.Upright {
		gainGold(s, evts, v)
	} else {
		lose := v
		if s.Player.Gold < lose {
			lose = s.Player.Gold
		}
		gainGold(s, evts, -lose)
		applyDamage(s, evts, v-lose, false)
	}
	return finishResolution(s, evts, bundle, slot, true)
}

func resolveCupsNumbered(s *RunState, evts *[]events.Event, bundle *content.Bundle, slot int, eff cards.Orientation) (*PendingPrompt, error) {
	_, rank := cards.MustParseID(s.Room.Slots[slot])
	v := cards.NumericValue(rank)
	if eff == cards.Reversed {
		applyDamage(s, evts, v, true)
		return finishResolution(s, evts, bundle, slot, true)
	}
	if v >= 8 {
		return &PendingPrompt{Kind: PromptCupsChoice, Slot: slot}, nil
	}
	applyHeal(s, evts, v)
	return finishResolution(s, evts, bundle, slot, true)
}

// resolveCupsChoice applies CUPS_CHOICE's two branches: "heal" resolves
// the card normally; "equipArmor" equips it as armor, so the card
// itself does not go to floor discard, while any prior armor does.
func resolveCupsChoice(s *RunState, evts *[]events.Event, bundle *content.Bundle, slot int, choice string) (*PendingPrompt, error) {
	id := s.Room.Slots[slot]
	_, rank := cards.MustParseID(id)
	v := cards.NumericValue(rank)
	switch choice {
	case "heal":
		applyHeal(s, evts, v)
		return finishResolution(s, evts, bundle, slot, true)
	case "equipArmor":
		if s.Player.Armor != nil {
			old := s.Player.Armor.CardID
			s.Floor.FloorDiscard = append(s.Floor.FloorDiscard, old)
			*evts = append(*evts, events.Discard("armor", old))
		}
		s.Player.Armor = &Equipment{CardID: id, Value: v}
		*evts = append(*evts, events.Equip(events.EquipArmor, id, v))
		return finishResolution(s, evts, bundle, slot, false)
	default:
		return nil, apierr.ErrIllegalAction
	}
}

func resolveWandsNumbered(s *RunState, evts *[]events.Event, bundle *content.Bundle, slot int, eff cards.Orientation) (*PendingPrompt, error) {
	id := s.Room.Slots[slot]
	_, rank := cards.MustParseID(id)
	v := cards.NumericValue(rank)
	if eff == cards.Upright {
		if s.Player.Spell != nil {
			old := s.Player.Spell.CardID
			s.Floor.FloorDiscard = append(s.Floor.FloorDiscard, old)
			*evts = append(*evts, events.Discard("spell", old))
		}
		s.Player.Spell = &Equipment{CardID: id, Value: v}
		*evts = append(*evts, events.Equip(events.EquipSpell, id, v))
		return finishResolution(s, evts, bundle, slot, false)
	}
	if s.Player.Spell != nil {
		old := s.Player.Spell.CardID
		s.Floor.FloorDiscard = append(s.Floor.FloorDiscard, old)
		*evts = append(*evts, events.Discard("spell", old))
		s.Player.Spell = nil
	} else {
		applyDamage(s, evts, 2, false)
	}
	return finishResolution(s, evts, bundle, slot, true)
}

func resolveSwordsNumbered(s *RunState, evts *[]events.Event, bundle *content.Bundle, slot int, eff cards.Orientation) (*PendingPrompt, error) {
	id := s.Room.Slots[slot]
	_, rank := cards.MustParseID(id)
	v := cards.NumericValue(rank)
	if eff == cards.Upright {
		if s.Player.Weapon != nil {
			old := s.Player.Weapon.CardID
			s.Floor.FloorDiscard = append(s.Floor.FloorDiscard, old)
			*evts = append(*evts, events.Discard("weapon", old))
		}
		s.Player.Weapon = &Equipment{CardID: id, Value: v}
		*evts = append(*evts, events.Equip(events.EquipWeapon, id, v))
		return finishResolution(s, evts, bundle, slot, false)
	}
	if s.Player.Weapon != nil {
		return &PendingPrompt{Kind: PromptSwordsAmbush, Slot: slot}, nil
	}
	applyDamage(s, evts, v, false)
	return finishResolution(s, evts, bundle, slot, true)
}

// resolveSwordsAmbush applies SWORDS_AMBUSH_BLOCK's two branches.
// Damage passes through armor normally in either case.
func resolveSwordsAmbush(s *RunState, evts *[]events.Event, bundle *content.Bundle, slot int, block bool) (*PendingPrompt, error) {
	_, rank := cards.MustParseID(s.Room.Slots[slot])
	v := cards.NumericValue(rank)
	dmg := v
	if block {
		dmg = v - s.Player.Weapon.Value
		if dmg < 0 {
			dmg = 0
		}
	}
	applyDamage(s, evts, dmg, false)
	return finishResolution(s, evts, bundle, slot, true)
}

func resolveCourt(s *RunState, evts *[]events.Event, bundle *content.Bundle, slot int, rank cards.Rank, eff cards.Orientation) (*PendingPrompt, error) {
	e := cards.EnemyValue(rank, eff)
	if s.Player.Weapon != nil && canUseWeapon(s, e) {
		return &PendingPrompt{Kind: PromptEnemyFightChoice, Slot: slot}, nil
	}
	applyDamage(s, evts, e, false)
	return finishResolution(s, evts, bundle, slot, true)
}

// resolveEnemyFightChoice applies ENEMY_FIGHT_CHOICE's two branches.
func resolveEnemyFightChoice(s *RunState, evts *[]events.Event, bundle *content.Bundle, slot int, choice string) (*PendingPrompt, error) {
	_, rank := cards.MustParseID(s.Room.Slots[slot])
	e := cards.EnemyValue(rank, s.effectiveOrientation(slot))
	switch choice {
	case "weapon":
		dmg := e - s.Player.Weapon.Value
		if dmg < 0 {
			dmg = 0
		}
		applyDamage(s, evts, dmg, false)
		v := e
		s.Player.Weapon.LastHelpedDefeatValue = &v
		s.Player.Weapon.TuckedEnemyIDs = append(s.Player.Weapon.TuckedEnemyIDs, s.Room.Slots[slot])
		s.Player.CheatWeaponNextEnemyFight = false
		s.Player.CheatWeaponThisRoom = false
	case "barehand":
		applyDamage(s, evts, e, false)
	default:
		return nil, apierr.ErrIllegalAction
	}
	return finishResolution(s, evts, bundle, slot, true)
}

// canUseWeapon implements §4.5's can_use_weapon.
func canUseWeapon(s *RunState, enemyValue int) bool {
	if s.Player.CheatWeaponNextEnemyFight || s.Player.CheatWeaponThisRoom {
		return true
	}
	w := s.Player.Weapon
	if w.LastHelpedDefeatValue == nil {
		return true
	}
	if s.Rules.WeaponRestrictionMode == content.WeaponStrict {
		return enemyValue < *w.LastHelpedDefeatValue
	}
	return enemyValue <= *w.LastHelpedDefeatValue
}

// finishResolution implements "completion of a resolution": it marks
// the slot resolved, discards the card if keepInDiscard, grants Fate
// on an effective-reversed resolution, and checks for defeat. If this
// was the room's first resolution it runs the AFTER_FIRST_RESOLUTION
// shadow, which may itself park a prompt; the room/floor completion
// check that would otherwise run immediately is deferred to resume via
// ResumeCheckRoomEnd.
func finishResolution(s *RunState, evts *[]events.Event, bundle *content.Bundle, slot int, keepInDiscard bool) (*PendingPrompt, error) {
	cardID := s.Room.Slots[slot]
	wasFirst := isFirstResolveAttempt(s)
	effReversed := s.effectiveOrientation(slot) == cards.Reversed

	s.Room.ResolvedMask[slot] = true
	s.Room.Slots[slot] = ""
	s.Room.PendingCleanses[slot] = false
	if keepInDiscard {
		s.Floor.FloorDiscard = append(s.Floor.FloorDiscard, cardID)
	}
	*evts = append(*evts, events.Resolved(cardID, slot))
	if effReversed {
		gainFate(s, evts, 1)
	}
	s.PendingResolution = nil

	if s.Player.HP <= 0 {
		s.Phase = PhaseRunDefeat
		return nil, nil
	}

	if wasFirst {
		prompt, err := runShadowIfTriggered(s, evts, bundle, content.AfterFirstResolution)
		if err != nil {
			return nil, err
		}
		if prompt != nil {
			prompt.ResumeAction = ResumeCheckRoomEnd
			return prompt, nil
		}
	}
	return checkRoomEndOrContinue(s, evts, bundle)
}

// checkRoomEndOrContinue runs after a resolution (and any
// AFTER_FIRST_RESOLUTION shadow it triggered) fully completes: it
// advances to RoomEnd processing once three slots are resolved,
// auto-reveals the next room when that leaves the floor unchanged, and
// otherwise returns to PreResolveWindow.
func checkRoomEndOrContinue(s *RunState, evts *[]events.Event, bundle *content.Bundle) (*PendingPrompt, error) {
	resolved := 0
	for _, r := range s.Room.ResolvedMask {
		if r {
			resolved++
		}
	}
	if resolved < 3 {
		s.Phase = PhasePreResolveWindow
		return nil, nil
	}

	won := completeRoom(s, evts)
	if won || s.Phase == PhaseFloorStart {
		return nil, nil
	}
	return revealRoom(s, evts, bundle)
}
