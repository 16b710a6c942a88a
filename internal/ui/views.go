// ABOUTME: Screen rendering for the practice TUI
// ABOUTME: One render function per screen, styled with lipgloss
package ui

import (
	"fmt"
	"strings"

	"github.com/ListenLab/listenlab-go/internal/content"
	"github.com/ListenLab/listenlab-go/internal/speech"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	rightStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	wrongStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	fieldStyle  = lipgloss.NewStyle().Bold(true)
)

// visibleNoteLines caps the note pane so long notes scroll instead of
// pushing the progress bar off screen.
const visibleNoteLines = 8

// View renders the current screen
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.scr {
	case screenSetup:
		return m.renderSetup()
	case screenGenerating:
		return m.renderGenerating()
	case screenListening:
		return m.renderListening()
	case screenQuiz:
		return m.renderQuiz()
	case screenResults:
		return m.renderResults()
	}
	return ""
}

func (m Model) renderSetup() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ListenLab — Listening Practice"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n\n")
	}

	kind := content.Kinds[m.kindIdx].Display()
	voice := speech.Voices[m.voiceIdx]
	topic := m.topic
	if topic == "" {
		topic = dimStyle.Render("(random topic)")
	}

	b.WriteString(m.formRow(fieldKind, "Type ", "◂ "+kind+" ▸"))
	b.WriteString(m.formRow(fieldTopic, "Topic", topic+"▌"))
	b.WriteString(m.formRow(fieldVoice, "Voice", "◂ "+voice.Name+" ▸  "+dimStyle.Render(voice.Description)))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓: field  ←/→: change  enter: start  q: quit"))
	return b.String()
}

func (m Model) formRow(f setupField, label, value string) string {
	marker := "  "
	if m.field == f {
		marker = accentStyle.Render("▶ ")
		label = fieldStyle.Render(label)
	}
	return fmt.Sprintf("%s%s  %s\n", marker, label, value)
}

func (m Model) renderGenerating() string {
	kind := content.Kinds[m.kindIdx].Display()
	return titleStyle.Render("ListenLab") + "\n\n" +
		fmt.Sprintf("Generating a %s", strings.ToLower(kind)) + "...\n\n" +
		dimStyle.Render("Writing the passage and synthesizing speech. This can take a minute.")
}

func (m Model) renderListening() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(truncate(m.sess.Title, 60)))
	b.WriteString("\n\n")

	state := "⏸ Paused"
	if m.status.Playing {
		state = accentStyle.Render("▶ Playing")
	} else if !m.status.Ready {
		state = dimStyle.Render("… Preparing")
	}

	bar := renderBar(int(m.status.Percent), 100, 40)
	b.WriteString(fmt.Sprintf("%s  [%s]  %s / %s\n\n",
		state, bar, FormatClock(m.status.Position), FormatClock(m.status.Duration)))

	b.WriteString(fieldStyle.Render("Notes") + "\n")
	start := 0
	if len(m.notes) > visibleNoteLines {
		start = len(m.notes) - visibleNoteLines
	}
	for i := start; i < len(m.notes); i++ {
		line := m.notes[i]
		if i == len(m.notes)-1 {
			line += "▌"
		}
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n")
	help := "ctrl+p: play/pause  ctrl+r: restart  ctrl+d: quit"
	if m.sheetAvailable() {
		help = "ctrl+p: play/pause  ctrl+r: restart  ctrl+d: go to questions"
	}
	b.WriteString(dimStyle.Render(help))
	return b.String()
}

func (m Model) renderQuiz() string {
	var b strings.Builder
	q := m.sheet.Question(m.qIdx)

	b.WriteString(titleStyle.Render(fmt.Sprintf("Question %d of %d", m.qIdx+1, m.sheet.Len())))
	b.WriteString("\n\n")
	b.WriteString(q.Question + "\n\n")

	selected := m.sheet.Selected(m.qIdx)
	for i, opt := range q.Options {
		cursor := "  "
		if i == m.cursor {
			cursor = accentStyle.Render("▶ ")
		}
		mark := "( )"
		if i == selected {
			mark = "(•)"
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, opt))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓: option  ←/→: question  enter: answer"))
	return b.String()
}

func (m Model) renderResults() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Results"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Score: %d/%d (%.0f%%)\n\n",
		m.result.Correct, m.result.Total, m.result.Percent()))

	for i, row := range m.sheet.Review() {
		mark := wrongStyle.Render("✗")
		if row.Right {
			mark = rightStyle.Render("✓")
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", mark, i+1, truncate(row.Question, 70)))
		if !row.Right {
			b.WriteString(dimStyle.Render(fmt.Sprintf("     yours: %s · answer: %s", row.Selected, row.Answer)) + "\n")
		}
	}

	if len(m.recent) > 0 {
		b.WriteString("\n" + fieldStyle.Render("Recent practice") + "\n")
		for _, a := range m.recent {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %s  %-28s %d/%d (%.0f%%)",
				a.CreatedAt.Format("Jan 02 15:04"), truncate(a.Title, 28),
				a.Correct, a.Total, a.Percent())) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("n: new practice  q: quit"))
	return b.String()
}
