package engine

import (
	"github.com/dshills/foolsgambit/pkg/apierr"
	"github.com/dshills/foolsgambit/pkg/cards"
	"github.com/dshills/foolsgambit/pkg/content"
	"github.com/dshills/foolsgambit/pkg/events"
)

// parkAcePrompt builds the suit-specific option list for the Ace at
// slot per §4.6, restricted to options that are currently legal.
func parkAcePrompt(s *RunState, slot int) *PendingPrompt {
	suit, _ := cards.MustParseID(s.Room.Slots[slot])
	var opts []AceOption

	switch suit {
	case cards.Pentacles:
		if s.Player.Gold >= 5 {
			opts = append(opts, AceOption{Key: "pay5_heal5", Slot: -1})
		}
		opts = append(opts, AceOption{Key: "gain5_take3", Slot: -1})

	case cards.Cups:
		opts = append(opts, AceOption{Key: "heal_to_full", Slot: -1})
		for i, id := range s.Room.Slots {
			if i == slot || id == "" {
				continue
			}
			if s.effectiveOrientation(i) == cards.Reversed {
				opts = append(opts, AceOption{Key: "cleanse_free", Slot: i})
			}
		}

	case cards.Wands:
		for i, id := range s.Room.Slots {
			if i == slot || id == "" {
				continue
			}
			opts = append(opts, AceOption{Key: "exile_replace_free", Slot: i})
			opts = append(opts, AceOption{Key: "reroll_free", Slot: i})
		}

	case cards.Swords:
		opts = append(opts, AceOption{Key: "cheat_weapon_free", Slot: -1})
		for i, id := range s.Room.Slots {
			if i == slot || id == "" {
				continue
			}
			opts = append(opts, AceOption{Key: "reroll_free", Slot: i})
		}
	}

	return &PendingPrompt{Kind: PromptAce, Slot: slot, AceOptions: opts}
}

// resolveAce applies ACE_RESOLVE's chosen option, then discards the
// Ace and runs the shared completion-of-resolution bookkeeping.
func resolveAce(s *RunState, evts *[]events.Event, bundle *content.Bundle, slot int, key string, target int) (*PendingPrompt, error) {
	if !aceOptionLegal(s, slot, key, target) {
		return nil, apierr.ErrIllegalAction
	}
	ctx := &reduceCtx{s: s, evts: evts}

	switch key {
	case "pay5_heal5":
		if !ctx.PayGold(5) {
			return nil, apierr.ErrIllegalAction
		}
		applyHeal(s, evts, 5)
	case "gain5_take3":
		gainGold(s, evts, 5)
		applyDamage(s, evts, 3, false)
	case "heal_to_full":
		applyHeal(s, evts, s.Player.MaxHP-s.Player.HP)
	case "cleanse_free":
		s.Room.PendingCleanses[target] = true
	case "exile_replace_free":
		ctx.ExileSlotAndDraw(target)
	case "reroll_free":
		ctx.BottomSlotAndDraw(target)
	case "cheat_weapon_free":
		s.Player.CheatWeaponThisRoom = true
	default:
		return nil, apierr.ErrIllegalAction
	}

	return finishResolution(s, evts, bundle, slot, true)
}

// aceOptionLegal re-derives the legal option set for the Ace at slot
// and reports whether (key, target) is a member of it, guarding
// ACE_RESOLVE against a stale or forged choice.
func aceOptionLegal(s *RunState, slot int, key string, target int) bool {
	for _, opt := range parkAcePrompt(s, slot).AceOptions {
		if opt.Key == key && opt.Slot == target {
			return true
		}
	}
	return false
}
