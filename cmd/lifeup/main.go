package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lifeup/internal/cli"
	"github.com/julianstephens/lifeup/internal/constants"
	apperrors "github.com/julianstephens/lifeup/internal/errors"
	"github.com/julianstephens/lifeup/internal/logger"
	"github.com/julianstephens/lifeup/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/lifeup/lifeup.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init  cli.InitCmd  `cmd:"" help:"Initialize lifeup storage."`
	Tui   cli.TuiCmd   `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Stats cli.StatsCmd `cmd:"" help:"Show profile and progression."`
	Quest cli.QuestCmd `cmd:"" help:"Show or complete today's side quest."`
	Shop  struct {
		Buy cli.ShopBuyCmd `cmd:"" help:"Buy a mystery box." default:"1"`
	} `cmd:"" help:"Spend coins."`
	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List all habits."`
		Check  cli.HabitCheckCmd  `cmd:"" help:"Toggle a habit's completion for a day."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
		Remind cli.HabitRemindCmd `cmd:"" help:"Export a reminder calendar event."`
	} `cmd:"" help:"Manage habits."`
	Journal struct {
		Write  cli.JournalWriteCmd  `cmd:"" help:"Write a journal entry."`
		List   cli.JournalListCmd   `cmd:"" help:"List journal entries."`
		Delete cli.JournalDeleteCmd `cmd:"" help:"Delete a journal entry."`
	} `cmd:"" help:"Manage the journal."`
	English struct {
		Add    cli.EnglishAddCmd    `cmd:"" help:"Import a study article."`
		List   cli.EnglishListCmd   `cmd:"" help:"List the article library."`
		Read   cli.EnglishReadCmd   `cmd:"" help:"Read an article, optionally aloud."`
		Recite cli.EnglishReciteCmd `cmd:"" help:"Record a recitation."`
		Fetch  cli.EnglishFetchCmd  `cmd:"" help:"Fetch a fresh study article."`
		Delete cli.EnglishDeleteCmd `cmd:"" help:"Delete an article."`
	} `cmd:"" help:"Manage the English study library."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit, journal & English-study companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		apperrors.Fatal(err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{Store: store}

	err := ctx.Run(appCtx)
	if cerr := store.Close(); err == nil {
		err = cerr
	}
	apperrors.Fatal(err)
}
