package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/lifeup/internal/constants"
	"github.com/julianstephens/lifeup/internal/habits"
	"github.com/julianstephens/lifeup/internal/progression"
)

type StatsCmd struct {
	Rename string `help:"Set the display name."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	svc := habits.NewService(ctx.Store)
	if c.Rename != "" {
		if _, err := svc.Rename(c.Rename); err != nil {
			return err
		}
	}

	stats, err := ctx.Store.GetStats()
	if err != nil {
		return err
	}

	current, span := stats.LevelProgress()
	fmt.Printf("%s · Level %d\n", stats.Name, stats.Level())
	fmt.Printf("XP: %d (%d/%d to next level)\n", stats.XP, current, span)
	fmt.Printf("Coins: %d\n", stats.Coins)
	return nil
}

type QuestCmd struct {
	Complete bool `help:"Claim today's quest reward."`
}

func (c *QuestCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	svc := habits.NewService(ctx.Store)
	quest, done, err := svc.TodaysQuest()
	if err != nil {
		return err
	}

	fmt.Printf("Today's quest: %s\n", quest)
	if done {
		fmt.Println("Already completed today.")
		return nil
	}

	if c.Complete {
		stats, err := svc.CompleteSideQuest()
		if err != nil {
			return err
		}
		fmt.Printf("Quest complete! +%d XP, +%d coins\n", constants.SideQuestXP, constants.SideQuestCoins)
		fmt.Printf("Level %d · %d XP · %d coins\n", stats.Level(), stats.XP, stats.Coins)
	}
	return nil
}

type ShopBuyCmd struct{}

func (c *ShopBuyCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	stats, xp, err := habits.NewService(ctx.Store).BuyMysteryBox(nil)
	if err != nil {
		if errors.Is(err, progression.ErrInsufficientCoins) {
			return fmt.Errorf("mystery box costs %d coins, you have %d", constants.MysteryBoxCost, stats.Coins)
		}
		return err
	}

	fmt.Printf("Mystery box opened: +%d XP!\n", xp)
	fmt.Printf("Level %d · %d XP · %d coins\n", stats.Level(), stats.XP, stats.Coins)
	return nil
}
