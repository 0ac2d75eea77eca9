package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifeup/internal/constants"
	"github.com/julianstephens/lifeup/internal/english"
	"github.com/julianstephens/lifeup/internal/habits"
	"github.com/julianstephens/lifeup/internal/journal"
	"github.com/julianstephens/lifeup/internal/models"
	"github.com/julianstephens/lifeup/internal/speech"
	"github.com/julianstephens/lifeup/internal/storage"
	"github.com/julianstephens/lifeup/internal/tui/components/articlelist"
	"github.com/julianstephens/lifeup/internal/tui/components/habitlist"
	"github.com/julianstephens/lifeup/internal/tui/components/journallist"
)

type HabitFormModel struct {
	Name string
}

type EntryFormModel struct {
	Content string
	Mood    constants.Mood
}

type ArticleFormModel struct {
	Title   string
	Content string
}

type NameFormModel struct {
	Name string
}

type Model struct {
	store   storage.Provider
	habits  *habits.Service
	journal *journal.Service
	english *english.Service
	speaker speech.Engine

	state constants.SessionState
	keys  KeyMap
	help  help.Model

	habitList   habitlist.Model
	journalList journallist.Model
	articleList articlelist.Model

	form        *huh.Form
	habitForm   *HabitFormModel
	entryForm   *EntryFormModel
	articleForm *ArticleFormModel
	nameForm    *NameFormModel

	stats models.UserStats

	reading       models.EnglishArticle
	readingTokens []english.Token
	wordCursor    int // -1 when no word is selected

	habitToDeleteID     string
	habitToDeleteName   string
	entryToDeleteID     string
	articleToDeleteID   string
	articleToDeleteName string

	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider) Model {
	hs := habits.NewService(store)
	js := journal.NewService(store)
	es := english.NewService(store)

	habitsList, _ := hs.List()
	entries, _ := js.List()
	library, _ := es.List()
	stats, _ := store.GetStats()

	// Restore the last-active view across restarts
	state := constants.StateHabits
	if view, err := store.GetView(); err == nil {
		switch view {
		case constants.ViewJournal:
			state = constants.StateJournal
		case constants.ViewEnglish:
			state = constants.StateEnglish
		}
	}

	return Model{
		store:       store,
		habits:      hs,
		journal:     js,
		english:     es,
		speaker:     speech.NewCommandEngine(),
		state:       state,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		habitList:   habitlist.New(habitsList, 0, 0),
		journalList: journallist.New(entries, 0, 0),
		articleList: articlelist.New(library, 0, 0),
		stats:       stats,
		wordCursor:  -1,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateHabits:
		keys = append(keys, m.keys.Quest, m.keys.Shop, m.keys.Rename)
	case constants.StateReading:
		keys = append(keys, m.keys.Recite, m.keys.Speak, m.keys.NextWord, m.keys.SpeakWord, m.keys.Back)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}

	var actions []key.Binding
	switch m.state {
	case constants.StateHabits:
		actions = []key.Binding{m.keys.Quest, m.keys.Shop, m.keys.Rename}
	case constants.StateReading:
		actions = []key.Binding{m.keys.Recite, m.keys.Speak, m.keys.PrevWord, m.keys.NextWord, m.keys.SpeakWord, m.keys.Back}
	}

	return [][]key.Binding{global, actions}
}

func (m *Model) refreshHabits() {
	if list, err := m.habits.List(); err == nil {
		m.habitList.SetHabits(list)
	}
}

func (m *Model) refreshJournal() {
	if entries, err := m.journal.List(); err == nil {
		m.journalList.SetEntries(entries)
	}
}

func (m *Model) refreshLibrary() {
	if library, err := m.english.List(); err == nil {
		m.articleList.SetLibrary(library)
	}
}
