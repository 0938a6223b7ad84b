package engine

import (
	"github.com/dshills/foolsgambit/pkg/cards"
	"github.com/dshills/foolsgambit/pkg/content"
)

// allowedCommitSlots implements §4.5's "Allowed commit slots": the set
// of room slot indices COMMIT_RESOLVE may currently target, in
// ascending order.
func allowedCommitSlots(s *RunState) []int {
	var base []int
	for i, id := range s.Room.Slots {
		if id == "" || s.Room.ResolvedMask[i] {
			continue
		}
		if s.Room.CarryChoiceIndex != nil && i == *s.Room.CarryChoiceIndex {
			continue
		}
		base = append(base, i)
	}

	oc := s.Rules.OrderConstraint
	if oc.RequiresChooseCarriedFirst && s.Room.CarryChoiceIndex == nil {
		return nil
	}
	if len(base) == 0 {
		return nil
	}

	switch oc.Kind {
	case content.OrderNone:
		return base
	case content.OrderLeftToRight:
		return []int{base[0]}
	case content.OrderRightToLeft:
		return []int{base[len(base)-1]}
	case content.OrderSuitOrder:
		best := base[0]
		for _, i := range base[1:] {
			if suitRank(s, i) < suitRank(s, best) {
				best = i
			}
		}
		return []int{best}
	case content.OrderAscOrderingValue:
		best := base[0]
		for _, i := range base[1:] {
			if orderingValueAt(s, i) < orderingValueAt(s, best) {
				best = i
			}
		}
		return []int{best}
	default:
		return base
	}
}

func suitRank(s *RunState, slot int) int {
	suit, _ := cards.MustParseID(s.Room.Slots[slot])
	return cards.SuitOrderIndex(suit)
}

func orderingValueAt(s *RunState, slot int) int {
	_, rank := cards.MustParseID(s.Room.Slots[slot])
	return cards.OrderingValue(rank, s.effectiveOrientation(slot))
}
