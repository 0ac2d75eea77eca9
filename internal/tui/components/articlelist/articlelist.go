package articlelist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifeup/internal/models"
)

type AddArticleMsg struct{}

type OpenArticleMsg struct {
	ID string
}

type DeleteArticleMsg struct {
	ID    string
	Title string
}

type Item struct {
	Article models.EnglishArticle
}

func (i Item) Title() string { return i.Article.Title }

func (i Item) Description() string {
	desc := fmt.Sprintf("%s · added %s", i.Article.Difficulty, i.Article.AddedDate.Format("01/02"))
	if i.Article.CompletionCount > 0 {
		desc += fmt.Sprintf(" · recited %d times", i.Article.CompletionCount)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Article.Title }

type KeyMap struct {
	Add    key.Binding
	Open   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "import"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "read"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(library []models.EnglishArticle, width, height int) Model {
	l := list.New(toItems(library), list.NewDefaultDelegate(), width, height)
	l.Title = "Library"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Open, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Open, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toItems(library []models.EnglishArticle) []list.Item {
	items := make([]list.Item, len(library))
	for i, a := range library {
		items[i] = Item{Article: a}
	}
	return items
}

func (m *Model) SetLibrary(library []models.EnglishArticle) {
	m.list.SetItems(toItems(library))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddArticleMsg{} }
		case key.Matches(msg, m.keys.Open):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return OpenArticleMsg{ID: i.Article.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteArticleMsg{ID: i.Article.ID, Title: i.Article.Title} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  The library is empty.\n  Press 'a' to import your first article."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
