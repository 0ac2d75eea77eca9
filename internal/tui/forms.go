package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifeup/internal/constants"
)

func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewEntryForm(fm *EntryFormModel) *huh.Form {
	moodOptions := make([]huh.Option[constants.Mood], len(constants.Moods))
	for i, mood := range constants.Moods {
		moodOptions[i] = huh.NewOption(string(mood), mood)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What's on your mind?").
				Value(&fm.Content).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("entry cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[constants.Mood]().
				Title("Mood").
				Options(moodOptions...).
				Value(&fm.Mood),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewArticleForm(fm *ArticleFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description("Leave empty for a placeholder title").
				Value(&fm.Title),
			huh.NewText().
				Title("Article Text").
				Value(&fm.Content).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("article text cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewNameForm(fm *NameFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Display Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
