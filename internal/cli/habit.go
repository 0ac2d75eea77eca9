package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/lifeup/internal/habits"
	"github.com/julianstephens/lifeup/internal/models"
	"github.com/julianstephens/lifeup/internal/utils"
)

func findHabit(svc *habits.Service, id string) (models.Habit, error) {
	all, err := svc.List()
	if err != nil {
		return models.Habit{}, err
	}
	for _, h := range all {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("%w: %s", habits.ErrHabitNotFound, id)
}

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := habits.NewService(ctx.Store).Add(c.Name)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	svc := habits.NewService(ctx.Store)
	all, err := svc.List()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	completed, total, err := svc.Progress()
	if err != nil {
		return err
	}

	today := utils.Today()
	fmt.Printf("Habits (%d/%d today):\n", completed, total)
	for _, h := range all {
		mark := " "
		if h.CompletedOn(today) {
			mark = "x"
		}
		fmt.Printf("  [%s] %s %s - streak %d (ID: %s)\n", mark, h.Icon, h.Name, h.Streak(today), h.ID)
	}
	return nil
}

type HabitCheckCmd struct {
	ID   string `arg:"" help:"Habit ID."`
	Date string `short:"d" help:"Day to toggle (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitCheckCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = utils.Today()
	}

	res, err := habits.NewService(ctx.Store).Toggle(c.ID, day)
	if err != nil {
		return err
	}

	if res.Checked {
		fmt.Printf("Checked %s for %s\n", res.Habit.Name, day)
	} else {
		fmt.Printf("Unchecked %s for %s\n", res.Habit.Name, day)
	}

	if res.Today {
		fmt.Printf("Level %d · %d XP · %d coins\n", res.Stats.Level(), res.Stats.XP, res.Stats.Coins)
	}
	return nil
}

type HabitDeleteCmd struct {
	ID  string `arg:"" help:"Habit ID."`
	Yes bool   `short:"y" help:"Skip confirmation."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	svc := habits.NewService(ctx.Store)
	habit, err := findHabit(svc, c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := confirm(fmt.Sprintf("Delete habit %q and its history?", habit.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := svc.Remove(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}

type HabitRemindCmd struct {
	ID  string `arg:"" help:"Habit ID."`
	Out string `short:"o" help:"Output path for the .ics file. Defaults to the event filename." type:"path"`
}

func (c *HabitRemindCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := findHabit(habits.NewService(ctx.Store), c.ID)
	if err != nil {
		return err
	}

	event, err := habits.BuildReminderEvent(habit, time.Now())
	if err != nil {
		return err
	}

	path := c.Out
	if path == "" {
		path = event.Filename
	}
	if err := os.WriteFile(path, []byte(event.Payload), 0644); err != nil {
		return fmt.Errorf("failed to write calendar event: %w", err)
	}

	fmt.Printf("Wrote reminder event: %s\n", path)
	return nil
}
