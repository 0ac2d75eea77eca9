// Package progression implements the reward engine: pure functions mapping a
// rewarded action plus current stats to new stats. It never owns entities and
// never touches storage.
package progression

import (
	"errors"
	"math/rand"

	"github.com/julianstephens/lifeup/internal/constants"
	"github.com/julianstephens/lifeup/internal/models"
)

var (
	// ErrInsufficientCoins is returned when a purchase costs more than the balance.
	ErrInsufficientCoins = errors.New("not enough coins")
	// ErrQuestAlreadyDone is returned when the daily side quest was already claimed today.
	ErrQuestAlreadyDone = errors.New("side quest already completed today")
)

// Reward is a stat delta produced by a single rewarded action.
type Reward struct {
	XP    int
	Coins int
}

// Defined reward actions. These are the only deltas the engine ever applies.
var (
	HabitCheck   = Reward{XP: constants.HabitCheckXP, Coins: constants.HabitCheckCoins}
	HabitUncheck = Reward{XP: -constants.HabitCheckXP}
	SideQuest    = Reward{XP: constants.SideQuestXP, Coins: constants.SideQuestCoins}
	Recitation   = Reward{XP: constants.RecitationXP, Coins: constants.RecitationCoins}
)

// Apply returns new stats with the reward applied. XP and coins floor at
// zero; they never go negative.
func Apply(stats models.UserStats, r Reward) models.UserStats {
	stats.XP = max(0, stats.XP+r.XP)
	stats.Coins = max(0, stats.Coins+r.Coins)
	return stats
}

// CompleteSideQuest claims the daily side quest reward. Claiming is gated to
// once per calendar day via LastSideQuestDate.
func CompleteSideQuest(stats models.UserStats, today string) (models.UserStats, error) {
	if stats.LastSideQuestDate == today {
		return stats, ErrQuestAlreadyDone
	}
	next := Apply(stats, SideQuest)
	next.LastSideQuestDate = today
	return next, nil
}

// OpenMysteryBox exchanges coins for a random amount of XP. The purchase is
// rejected with no state change when the balance is short. The RNG is
// injected so callers (and tests) control the outcome; a nil RNG uses the
// shared source.
func OpenMysteryBox(stats models.UserStats, rng *rand.Rand) (models.UserStats, int, error) {
	if stats.Coins < constants.MysteryBoxCost {
		return stats, 0, ErrInsufficientCoins
	}

	roll := func(n int) int {
		if rng != nil {
			return rng.Intn(n)
		}
		return rand.Intn(n)
	}
	xp := constants.MysteryBoxMinXP + roll(constants.MysteryBoxXPSpread)

	next := Apply(stats, Reward{XP: xp, Coins: -constants.MysteryBoxCost})
	return next, xp, nil
}
