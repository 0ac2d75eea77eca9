package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/julianstephens/lifeup/internal/english"
	"github.com/julianstephens/lifeup/internal/speech"
)

type EnglishAddCmd struct {
	Content   string `arg:"" optional:"" help:"Article text."`
	Title     string `short:"t" help:"Article title."`
	Clipboard bool   `short:"c" help:"Import content from the system clipboard."`
}

func (c *EnglishAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	title, content := c.Title, c.Content
	if c.Clipboard {
		text, err := clipboard.ReadAll()
		if err != nil {
			return fmt.Errorf("failed to read clipboard: %w", err)
		}
		content = text
		if title == "" {
			title = "My New Article"
		}
	}

	article, err := english.NewService(ctx.Store).Add(title, content)
	if err != nil {
		return err
	}

	fmt.Printf("Added article: %s (ID: %s)\n", article.Title, article.ID)
	return nil
}

type EnglishListCmd struct{}

func (c *EnglishListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	library, err := english.NewService(ctx.Store).List()
	if err != nil {
		return err
	}
	if len(library) == 0 {
		fmt.Println("No articles found. Add your first one!")
		return nil
	}

	fmt.Println("Library:")
	for _, a := range library {
		fmt.Printf("  %s [%s] added %s", a.Title, a.Difficulty, a.AddedDate.Format("01/02"))
		if a.CompletionCount > 0 {
			fmt.Printf(", recited %d times (last %s)", a.CompletionCount, a.LastCompletedDate)
		}
		fmt.Printf(" (ID: %s)\n", a.ID)
	}
	return nil
}

type EnglishReadCmd struct {
	ID    string `arg:"" help:"Article ID."`
	Speak bool   `short:"s" help:"Read the article aloud."`
}

func (c *EnglishReadCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	article, err := english.NewService(ctx.Store).Get(c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s [%s]\n\n%s\n", article.Title, article.Difficulty, article.Content)
	if len(article.Vocabulary) > 0 {
		fmt.Println("\nVocabulary:")
		for _, v := range article.Vocabulary {
			fmt.Printf("  %s - %s\n", v.Word, v.Definition)
		}
	}

	if c.Speak {
		engine := speech.NewCommandEngine()
		defer engine.Stop()
		if err := engine.Speak(article.Content); err != nil {
			return err
		}
		for engine.Playing() {
			time.Sleep(100 * time.Millisecond)
		}
	}
	return nil
}

type EnglishReciteCmd struct {
	ID string `arg:"" help:"Article ID."`
}

func (c *EnglishReciteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	res, err := english.NewService(ctx.Store).Recite(c.ID)
	if err != nil {
		return err
	}

	if !res.Rewarded {
		fmt.Printf("Already recited %q today.\n", res.Article.Title)
		return nil
	}

	fmt.Printf("Recitation recorded for %q (%d times total)\n", res.Article.Title, res.Article.CompletionCount)
	fmt.Printf("Level %d · %d XP · %d coins\n", res.Stats.Level(), res.Stats.XP, res.Stats.Coins)
	return nil
}

type EnglishFetchCmd struct {
	Topic  string `arg:"" optional:"" help:"Topic hint for the generated article." default:"general"`
	APIKey string `env:"GEMINI_API_KEY" help:"Gemini API key."`
	Model  string `help:"Model to use for generation."`
}

func (c *EnglishFetchCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	fetchCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	article := english.FallbackArticle()
	if fetcher, err := english.NewGeminiFetcher(fetchCtx, c.APIKey, c.Model); err != nil {
		fmt.Printf("Fetcher unavailable (%v), using the built-in article.\n", err)
	} else {
		article = english.FetchOrFallback(fetchCtx, fetcher, c.Topic)
	}

	added, err := english.NewService(ctx.Store).AddFetched(article)
	if err != nil {
		return err
	}

	fmt.Printf("Added article: %s [%s] (ID: %s)\n", added.Title, added.Difficulty, added.ID)
	for _, v := range added.Vocabulary {
		fmt.Printf("  %s - %s\n", v.Word, v.Definition)
	}
	return nil
}

type EnglishDeleteCmd struct {
	ID  string `arg:"" help:"Article ID."`
	Yes bool   `short:"y" help:"Skip confirmation."`
}

func (c *EnglishDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	svc := english.NewService(ctx.Store)
	article, err := svc.Get(c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := confirm(fmt.Sprintf("Delete article %q and its recitation history?", article.Title))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := svc.Delete(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted article: %s\n", article.Title)
	return nil
}
