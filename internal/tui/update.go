package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifeup/internal/constants"
	"github.com/julianstephens/lifeup/internal/english"
	"github.com/julianstephens/lifeup/internal/progression"
	"github.com/julianstephens/lifeup/internal/tui/components/articlelist"
	"github.com/julianstephens/lifeup/internal/tui/components/habitlist"
	"github.com/julianstephens/lifeup/internal/tui/components/journallist"
	"github.com/julianstephens/lifeup/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habitList.SetSize(msg.Width-4, msg.Height-7)
		m.journalList.SetSize(msg.Width-4, msg.Height-6)
		m.articleList.SetSize(msg.Width-4, msg.Height-6)
	}

	switch m.state {
	case constants.StateAddHabit, constants.StateAddEntry, constants.StateAddArticle, constants.StateEditName:
		return m.updateForm(msg)
	case constants.StateConfirmDeleteHabit, constants.StateConfirmDeleteEntry, constants.StateConfirmDeleteArticle:
		return m.updateConfirmDelete(msg)
	case constants.StateReading:
		return m.updateReading(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.speaker.Stop()
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Tab):
			return m.switchView(1), nil
		case key.Matches(keyMsg, m.keys.ShiftTab):
			return m.switchView(-1), nil
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.state == constants.StateHabits {
			switch {
			case key.Matches(keyMsg, m.keys.Quest):
				stats, err := m.habits.CompleteSideQuest()
				switch {
				case err == nil:
					m.stats = stats
					m.status = fmt.Sprintf("Side quest complete! +%d XP, +%d coins", constants.SideQuestXP, constants.SideQuestCoins)
				case errors.Is(err, progression.ErrQuestAlreadyDone):
					m.status = "Side quest already completed today"
				default:
					m.status = "Side quest failed: " + err.Error()
				}
				return m, nil
			case key.Matches(keyMsg, m.keys.Shop):
				stats, xp, err := m.habits.BuyMysteryBox(nil)
				switch {
				case err == nil:
					m.stats = stats
					m.status = fmt.Sprintf("Mystery box opened: +%d XP!", xp)
				case errors.Is(err, progression.ErrInsufficientCoins):
					m.status = fmt.Sprintf("Mystery box costs %d coins, you have %d", constants.MysteryBoxCost, m.stats.Coins)
				default:
					m.status = "Mystery box failed: " + err.Error()
				}
				return m, nil
			case key.Matches(keyMsg, m.keys.Rename):
				m.nameForm = &NameFormModel{Name: m.stats.Name}
				m.form = NewNameForm(m.nameForm)
				m.state = constants.StateEditName
				return m, m.form.Init()
			}
		}
	}

	switch msg := msg.(type) {
	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = NewHabitForm(m.habitForm)
		m.state = constants.StateAddHabit
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		if res, err := m.habits.Toggle(msg.ID, utils.Today()); err == nil {
			m.stats = res.Stats
			m.refreshHabits()
			if res.Checked {
				m.status = fmt.Sprintf("%s done: +%d XP, +%d coins", res.Habit.Name, constants.HabitCheckXP, constants.HabitCheckCoins)
			} else {
				m.status = fmt.Sprintf("%s unchecked: -%d XP", res.Habit.Name, constants.HabitCheckXP)
			}
		}
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.habitToDeleteName = msg.Name
		m.state = constants.StateConfirmDeleteHabit
		return m, nil

	case journallist.AddEntryMsg:
		m.entryForm = &EntryFormModel{Mood: constants.MoodNeutral}
		m.form = NewEntryForm(m.entryForm)
		m.state = constants.StateAddEntry
		return m, m.form.Init()

	case journallist.DeleteEntryMsg:
		m.entryToDeleteID = msg.ID
		m.state = constants.StateConfirmDeleteEntry
		return m, nil

	case articlelist.AddArticleMsg:
		m.articleForm = &ArticleFormModel{}
		m.form = NewArticleForm(m.articleForm)
		m.state = constants.StateAddArticle
		return m, m.form.Init()

	case articlelist.OpenArticleMsg:
		if article, err := m.english.Get(msg.ID); err == nil {
			m.reading = article
			m.readingTokens = english.Tokenize(article.Content)
			m.wordCursor = -1
			m.status = ""
			m.state = constants.StateReading
		}
		return m, nil

	case articlelist.DeleteArticleMsg:
		m.articleToDeleteID = msg.ID
		m.articleToDeleteName = msg.Title
		m.state = constants.StateConfirmDeleteArticle
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	case constants.StateJournal:
		m.journalList, cmd = m.journalList.Update(msg)
	case constants.StateEnglish:
		m.articleList, cmd = m.articleList.Update(msg)
	}
	return m, cmd
}

// switchView moves to the next or previous feature view and persists it so
// the app reopens where it left off.
func (m Model) switchView(delta int) Model {
	order := []constants.SessionState{constants.StateHabits, constants.StateJournal, constants.StateEnglish}
	views := []constants.View{constants.ViewHabits, constants.ViewJournal, constants.ViewEnglish}

	idx := 0
	for i, s := range order {
		if s == m.state {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)

	m.state = order[idx]
	m.status = ""
	_ = m.store.SaveView(views[idx])
	return m
}

func (m Model) baseState() constants.SessionState {
	switch m.state {
	case constants.StateAddEntry, constants.StateConfirmDeleteEntry:
		return constants.StateJournal
	case constants.StateAddArticle, constants.StateConfirmDeleteArticle:
		return constants.StateEnglish
	default:
		return constants.StateHabits
	}
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.baseState()
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		switch m.state {
		case constants.StateAddHabit:
			if _, err := m.habits.Add(m.habitForm.Name); err == nil {
				m.refreshHabits()
			}
		case constants.StateAddEntry:
			if _, err := m.journal.Save(m.entryForm.Content, m.entryForm.Mood, nil); err == nil {
				m.refreshJournal()
			}
		case constants.StateAddArticle:
			if _, err := m.english.Add(m.articleForm.Title, m.articleForm.Content); err == nil {
				m.refreshLibrary()
			}
		case constants.StateEditName:
			if stats, err := m.habits.Rename(m.nameForm.Name); err == nil {
				m.stats = stats
			}
		}
		m.state = m.baseState()
		m.form = nil
	case huh.StateAborted:
		m.state = m.baseState()
		m.form = nil
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		switch m.state {
		case constants.StateConfirmDeleteHabit:
			if err := m.habits.Remove(m.habitToDeleteID); err == nil {
				m.refreshHabits()
			}
			m.habitToDeleteID = ""
			m.habitToDeleteName = ""
		case constants.StateConfirmDeleteEntry:
			if err := m.journal.Delete(m.entryToDeleteID); err == nil {
				m.refreshJournal()
			}
			m.entryToDeleteID = ""
		case constants.StateConfirmDeleteArticle:
			if err := m.english.Delete(m.articleToDeleteID); err == nil {
				m.refreshLibrary()
			}
			m.articleToDeleteID = ""
			m.articleToDeleteName = ""
		}
		m.state = m.baseState()
	case "n", "N", "esc":
		m.habitToDeleteID = ""
		m.habitToDeleteName = ""
		m.entryToDeleteID = ""
		m.articleToDeleteID = ""
		m.articleToDeleteName = ""
		m.state = m.baseState()
	}
	return m, nil
}

func (m Model) updateReading(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		m.speaker.Stop()
		m.wordCursor = -1
		m.state = constants.StateEnglish
	case key.Matches(keyMsg, m.keys.Speak):
		if m.speaker.Playing() {
			m.speaker.Stop()
		} else if err := m.speaker.Speak(m.reading.Content); err != nil {
			m.status = "Speech unavailable"
		}
	case key.Matches(keyMsg, m.keys.NextWord):
		if m.wordCursor < len(m.readingTokens)-1 {
			m.wordCursor++
		}
	case key.Matches(keyMsg, m.keys.PrevWord):
		if m.wordCursor > 0 {
			m.wordCursor--
		}
	case key.Matches(keyMsg, m.keys.SpeakWord):
		if m.wordCursor >= 0 && m.wordCursor < len(m.readingTokens) {
			// Pure-punctuation tokens have an empty lookup and stay silent.
			if lookup := m.readingTokens[m.wordCursor].Lookup; lookup != "" {
				if err := m.speaker.Speak(lookup); err != nil {
					m.status = "Speech unavailable"
				}
			}
		}
	case key.Matches(keyMsg, m.keys.Recite):
		if res, err := m.english.Recite(m.reading.ID); err == nil {
			m.reading = res.Article
			m.stats = res.Stats
			m.refreshLibrary()
			if res.Rewarded {
				m.status = fmt.Sprintf("Recitation recorded! +%d XP, +%d coins", constants.RecitationXP, constants.RecitationCoins)
			} else {
				m.status = "Already recited today"
			}
		}
	case key.Matches(keyMsg, m.keys.Quit):
		m.speaker.Stop()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}
