package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifeup/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateHabits:
		content = m.viewHabits()
	case constants.StateJournal:
		content = docStyle.Render(m.journalList.View())
	case constants.StateEnglish:
		content = docStyle.Render(m.articleList.View())
	case constants.StateReading:
		content = m.viewReading()
	case constants.StateAddHabit, constants.StateAddEntry, constants.StateAddArticle, constants.StateEditName:
		content = m.form.View()
	case constants.StateConfirmDeleteHabit:
		content = m.viewConfirmDelete(fmt.Sprintf("Delete habit %q and its history?", m.habitToDeleteName))
	case constants.StateConfirmDeleteEntry:
		content = m.viewConfirmDelete("Delete this journal entry permanently?")
	case constants.StateConfirmDeleteArticle:
		content = m.viewConfirmDelete(fmt.Sprintf("Delete article %q and its recitation history?", m.articleToDeleteName))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	var tabs []string
	titles := []string{"Habits", "Journal", "English"}
	states := []constants.SessionState{constants.StateHabits, constants.StateJournal, constants.StateEnglish}
	for i, title := range titles {
		if m.state == states[i] {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}

	current, span := m.stats.LevelProgress()
	profile := headerStyle.Render(fmt.Sprintf("%s · Lv %d · %d/%d XP · %d coins",
		m.stats.Name, m.stats.Level(), current, span, m.stats.Coins))

	return lipgloss.JoinHorizontal(lipgloss.Top, append(tabs, profile)...)
}

func (m Model) viewHabits() string {
	quest, done, err := m.habits.TodaysQuest()
	line := ""
	if err == nil {
		if done {
			line = questStyle.Render("Side quest: " + quest + " ✓")
		} else {
			line = questStyle.Render("Side quest: " + quest + " (press g to claim)")
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, docStyle.Render(m.habitList.View()))
}

func (m Model) viewReading() string {
	header := titleStyle.Render(m.reading.Title)
	if m.reading.Difficulty != "" {
		header += inactiveTabStyle.Render(" [" + m.reading.Difficulty + "]")
	}
	if m.speaker.Playing() {
		header += statusStyle.Render(" ▶ playing")
	}

	// With a word selected, render from tokens so the cursor is visible;
	// otherwise show the article text as written.
	body := m.reading.Content
	if m.wordCursor >= 0 && m.wordCursor < len(m.readingTokens) {
		words := make([]string, len(m.readingTokens))
		for i, tok := range m.readingTokens {
			if i == m.wordCursor {
				words[i] = selectedWordStyle.Render(tok.Text)
			} else {
				words[i] = tok.Text
			}
		}
		body = strings.Join(words, " ")
	}

	footer := ""
	if m.reading.LastCompletedDate != "" {
		footer = fmt.Sprintf("Last recited: %s · completed %d times",
			m.reading.LastCompletedDate, m.reading.CompletionCount)
	}

	vocab := ""
	for _, v := range m.reading.Vocabulary {
		vocab += fmt.Sprintf("  %s - %s\n", v.Word, v.Definition)
	}
	if vocab != "" {
		vocab = "Vocabulary:\n" + vocab
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		body,
		"",
		vocab,
		inactiveTabStyle.Render(footer),
	))
}

func (m Model) viewConfirmDelete(message string) string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(message),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	return statusStyle.Render(m.status)
}
