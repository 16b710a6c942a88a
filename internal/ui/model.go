// ABOUTME: Bubbletea model for the practice TUI
// ABOUTME: Defines screen state and update logic for the practice flow
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/ListenLab/listenlab-go/internal/app"
	"github.com/ListenLab/listenlab-go/internal/content"
	"github.com/ListenLab/listenlab-go/internal/history"
	"github.com/ListenLab/listenlab-go/internal/quiz"
	"github.com/ListenLab/listenlab-go/internal/speech"
	"github.com/ListenLab/listenlab-go/internal/transport"
	tea "github.com/charmbracelet/bubbletea"
)

// generateTimeout bounds one full passage+speech generation round trip.
const generateTimeout = 3 * time.Minute

type screen int

const (
	screenSetup screen = iota
	screenGenerating
	screenListening
	screenQuiz
	screenResults
)

type setupField int

const (
	fieldKind setupField = iota
	fieldTopic
	fieldVoice
)

// Model represents the TUI state across the practice flow.
type Model struct {
	app *app.App
	scr screen

	// Setup form
	field    setupField
	kindIdx  int
	voiceIdx int
	topic    string

	// Active session
	sess   *app.Session
	status transport.Status
	notes  []string

	// Quiz
	sheet  *quiz.Sheet
	qIdx   int
	cursor int

	// Results
	result quiz.Result
	recent []history.Attempt

	err error

	// Dimensions
	width  int
	height int
}

// Setup prefills the setup form, typically from CLI flags. Unknown or
// empty values fall back to the defaults.
type Setup struct {
	Kind  string
	Topic string
	Voice string
}

// NewModel creates the TUI model. A non-nil session (the import flow)
// skips the setup form and lands directly on the listening screen.
func NewModel(a *app.App, sess *app.Session, setup Setup) Model {
	m := Model{app: a, notes: []string{""}, topic: setup.Topic}
	for i, k := range content.Kinds {
		if string(k) == setup.Kind {
			m.kindIdx = i
		}
	}
	for i, v := range speech.Voices {
		if v.Name == setup.Voice {
			m.voiceIdx = i
		}
	}
	if sess != nil {
		m.sess = sess
		m.scr = screenListening
	}
	return m
}

// Messages

type sessionReadyMsg struct{ sess *app.Session }

type sessionFailedMsg struct{ err error }

type progressTickMsg struct{}

type attemptSavedMsg struct{ recent []history.Attempt }

// Init initializes the model
func (m Model) Init() tea.Cmd {
	if m.scr == screenListening {
		return progressTick()
	}
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case sessionReadyMsg:
		m.sess = msg.sess
		m.scr = screenListening
		m.notes = []string{""}
		m.status = m.sess.Transport.Snapshot()
		return m, progressTick()
	case sessionFailedMsg:
		m.err = msg.err
		m.scr = screenSetup
	case progressTickMsg:
		if m.scr != screenListening || m.sess == nil {
			return m, nil
		}
		m.status = m.sess.Transport.Snapshot()
		if m.sess.Completed() && m.sheetAvailable() {
			return m.gotoQuiz()
		}
		return m, progressTick()
	case attemptSavedMsg:
		m.recent = msg.recent
	}

	return m, nil
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.scr {
	case screenSetup:
		return m.handleSetupKey(msg)
	case screenListening:
		return m.handleListeningKey(msg)
	case screenQuiz:
		return m.handleQuizKey(msg)
	case screenResults:
		return m.handleResultsKey(msg)
	}
	return m, nil
}

func (m Model) handleSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "shift+tab":
		if m.field > fieldKind {
			m.field--
		}
	case "down", "tab":
		if m.field < fieldVoice {
			m.field++
		}
	case "left":
		switch m.field {
		case fieldKind:
			m.kindIdx = (m.kindIdx + len(content.Kinds) - 1) % len(content.Kinds)
		case fieldVoice:
			m.voiceIdx = (m.voiceIdx + len(speech.Voices) - 1) % len(speech.Voices)
		}
	case "right":
		switch m.field {
		case fieldKind:
			m.kindIdx = (m.kindIdx + 1) % len(content.Kinds)
		case fieldVoice:
			m.voiceIdx = (m.voiceIdx + 1) % len(speech.Voices)
		}
	case "backspace":
		if m.field == fieldTopic && len(m.topic) > 0 {
			m.topic = m.topic[:len(m.topic)-1]
		}
	case "enter":
		m.err = nil
		m.scr = screenGenerating
		return m, m.generateCmd()
	default:
		if m.field == fieldTopic && msg.Type == tea.KeyRunes {
			m.topic += string(msg.Runes)
		}
	}
	return m, nil
}

// Playback controls ride on control chords so plain typing stays free
// for note-taking while the audio plays.
func (m Model) handleListeningKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+p":
		if m.status.Playing {
			m.sess.Transport.Pause()
		} else {
			m.sess.Transport.Play()
		}
		m.status = m.sess.Transport.Snapshot()
	case "ctrl+r":
		m.sess.Transport.Restart()
		m.status = m.sess.Transport.Snapshot()
	case "ctrl+d":
		if m.sheetAvailable() {
			return m.gotoQuiz()
		}
		return m, tea.Quit
	case "enter":
		m.notes = append(m.notes, "")
	case "backspace":
		last := len(m.notes) - 1
		if m.notes[last] != "" {
			m.notes[last] = m.notes[last][:len(m.notes[last])-1]
		} else if last > 0 {
			m.notes = m.notes[:last]
		}
	default:
		switch msg.Type {
		case tea.KeyRunes:
			m.notes[len(m.notes)-1] += string(msg.Runes)
		case tea.KeySpace:
			m.notes[len(m.notes)-1] += " "
		}
	}
	return m, nil
}

func (m Model) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.sheet.Question(m.qIdx)

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case "left", "h":
		if m.qIdx > 0 {
			m.qIdx--
			m.cursor = 0
		}
	case "right", "l":
		if m.qIdx < m.sheet.Len()-1 {
			m.qIdx++
			m.cursor = 0
		}
	case "enter", " ":
		m.sheet.Select(m.qIdx, m.cursor)
		if m.qIdx < m.sheet.Len()-1 {
			m.qIdx++
			m.cursor = 0
		} else {
			return m.gotoResults()
		}
	}
	return m, nil
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		return m, tea.Quit
	case "n":
		if m.sess != nil {
			m.sess.Close()
		}
		fresh := NewModel(m.app, nil, Setup{})
		fresh.width = m.width
		fresh.height = m.height
		return fresh, nil
	}
	return m, nil
}

// Transitions

func (m Model) sheetAvailable() bool {
	return m.sess != nil && m.sess.Passage != nil && len(m.sess.Passage.Questions) > 0
}

func (m Model) gotoQuiz() (tea.Model, tea.Cmd) {
	m.sess.Transport.Pause()
	m.sheet = quiz.NewSheet(m.sess.Passage.Questions)
	m.qIdx = 0
	m.cursor = 0
	m.scr = screenQuiz
	return m, nil
}

func (m Model) gotoResults() (tea.Model, tea.Cmd) {
	m.result = m.sheet.Score()
	m.scr = screenResults
	return m, m.saveCmd()
}

// Commands

func progressTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}

func (m Model) generateCmd() tea.Cmd {
	req := content.Request{
		Kind:  content.Kinds[m.kindIdx],
		Topic: strings.TrimSpace(m.topic),
	}
	voice := speech.Voices[m.voiceIdx].Name
	a := m.app

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		sess, err := a.PrepareGenerated(ctx, req, voice)
		if err != nil {
			return sessionFailedMsg{err: err}
		}
		return sessionReadyMsg{sess: sess}
	}
}

func (m Model) saveCmd() tea.Cmd {
	a := m.app
	sess := m.sess
	r := m.result

	return func() tea.Msg {
		_ = a.Record(sess, r.Correct, r.Total)
		return attemptSavedMsg{recent: a.Recent(5)}
	}
}
