package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/lifeup/internal/constants"
	"github.com/julianstephens/lifeup/internal/journal"
)

type JournalWriteCmd struct {
	Content string   `arg:"" optional:"" help:"Entry text."`
	Mood    string   `short:"m" help:"Mood (happy|neutral|sad|excited|tired)." default:"neutral"`
	Images  []string `short:"i" help:"Image files to attach." type:"existingfile"`
}

func (c *JournalWriteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var staged []string
	for _, path := range c.Images {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open image %s: %w", path, err)
		}
		dataURL, err := journal.StageImage(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to stage image %s: %w", path, err)
		}
		staged = append(staged, dataURL)
	}

	entry, err := journal.NewService(ctx.Store).Save(c.Content, constants.Mood(c.Mood), staged)
	if err != nil {
		return err
	}

	fmt.Printf("Saved entry (%d images)\n", len(entry.Images))
	return nil
}

type JournalListCmd struct{}

func (c *JournalListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := journal.NewService(ctx.Store).List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No journal entries found")
		return nil
	}

	fmt.Println("Journal:")
	for _, e := range entries {
		line := strings.SplitN(e.Content, "\n", 2)[0]
		fmt.Printf("  %s [%s] %s", e.Date.Format("2006-01-02 15:04"), e.Mood, line)
		if len(e.Images) > 0 {
			fmt.Printf(" (+%d images)", len(e.Images))
		}
		fmt.Printf(" (ID: %s)\n", e.ID)
	}
	return nil
}

type JournalDeleteCmd struct {
	ID  string `arg:"" help:"Entry ID."`
	Yes bool   `short:"y" help:"Skip confirmation."`
}

func (c *JournalDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if !c.Yes {
		ok, err := confirm("Delete this journal entry permanently?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := journal.NewService(ctx.Store).Delete(c.ID); err != nil {
		return err
	}
	fmt.Println("Deleted journal entry.")
	return nil
}
