package majors

import "github.com/dshills/foolsgambit/pkg/content"

func evalPredicate(env Env, cond *content.Condition) bool {
	switch cond.Predicate {
	case content.RoomHasEnemy:
		return env.RoomHasEnemy()
	case content.RoomHasAnyEffectiveReversed:
		return env.RoomHasAnyEffectiveReversed()
	case content.PlayerGoldAtLeast:
		return env.PlayerGold() >= cond.GoldAtLeast
	default:
		return false
	}
}
