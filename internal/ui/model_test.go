// ABOUTME: Tests for the TUI model
// ABOUTME: Drives the update loop with key messages per screen
package ui

import (
	"strings"
	"testing"

	"github.com/ListenLab/listenlab-go/internal/app"
	"github.com/ListenLab/listenlab-go/internal/content"
	"github.com/ListenLab/listenlab-go/internal/quiz"
	"github.com/ListenLab/listenlab-go/internal/transport"
	tea "github.com/charmbracelet/bubbletea"
)

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("update returned unexpected model type %T", updated)
	}
	return next
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testQuestions() []content.Question {
	return []content.Question{
		{Question: "First?", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 1},
		{Question: "Second?", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 0},
	}
}

func TestSetupFieldNavigation(t *testing.T) {
	m := NewModel(nil, nil, Setup{})

	if m.field != fieldKind {
		t.Fatalf("expected kind field first, got %d", m.field)
	}
	m = press(t, m, key("down"))
	if m.field != fieldTopic {
		t.Errorf("expected topic field, got %d", m.field)
	}
	m = press(t, m, key("down"))
	m = press(t, m, key("down"))
	if m.field != fieldVoice {
		t.Errorf("expected navigation to stop at voice field, got %d", m.field)
	}
	m = press(t, m, key("up"))
	if m.field != fieldTopic {
		t.Errorf("expected topic field after up, got %d", m.field)
	}
}

func TestSetupKindCycles(t *testing.T) {
	m := NewModel(nil, nil, Setup{})

	m = press(t, m, key("right"))
	if m.kindIdx != 1 {
		t.Errorf("expected second kind, got %d", m.kindIdx)
	}
	m = press(t, m, key("right"))
	if m.kindIdx != 0 {
		t.Errorf("expected wrap back to first kind, got %d", m.kindIdx)
	}
	m = press(t, m, key("left"))
	if m.kindIdx != len(content.Kinds)-1 {
		t.Errorf("expected wrap to last kind, got %d", m.kindIdx)
	}
}

func TestSetupTopicTyping(t *testing.T) {
	m := NewModel(nil, nil, Setup{})
	m.field = fieldTopic

	m = press(t, m, key("geo"))
	m = press(t, m, key("space"))
	if m.topic != "geo" {
		t.Errorf("space should not edit the topic, got %q", m.topic)
	}
	m = press(t, m, key("x"))
	m = press(t, m, key("backspace"))
	if m.topic != "geo" {
		t.Errorf("expected %q, got %q", "geo", m.topic)
	}
}

func TestListeningNoteTaking(t *testing.T) {
	m := NewModel(nil, nil, Setup{})
	m.scr = screenListening

	m = press(t, m, key("main"))
	m = press(t, m, key("space"))
	m = press(t, m, key("idea"))
	m = press(t, m, key("enter"))
	m = press(t, m, key("second"))

	if len(m.notes) != 2 {
		t.Fatalf("expected 2 note lines, got %d", len(m.notes))
	}
	if m.notes[0] != "main idea" || m.notes[1] != "second" {
		t.Errorf("unexpected notes %q", m.notes)
	}

	m = press(t, m, key("backspace"))
	if m.notes[1] != "secon" {
		t.Errorf("expected trailing rune removed, got %q", m.notes[1])
	}
}

func TestListeningBackspaceJoinsLines(t *testing.T) {
	m := NewModel(nil, nil, Setup{})
	m.scr = screenListening

	m = press(t, m, key("a"))
	m = press(t, m, key("enter"))
	m = press(t, m, key("backspace"))
	m = press(t, m, key("backspace"))

	if len(m.notes) != 1 || m.notes[0] != "a" {
		t.Errorf("expected empty line removed then content kept, got %q", m.notes)
	}
}

func TestFinishEarlyOpensQuiz(t *testing.T) {
	m := NewModel(nil, nil, Setup{})
	m.scr = screenListening
	m.sess = &app.Session{
		Title:     "Plate Tectonics",
		Passage:   &content.Passage{Questions: testQuestions()},
		Transport: transport.New(nil, transport.Options{}),
	}

	m = press(t, m, key("ctrl+d"))
	if m.scr != screenQuiz {
		t.Fatalf("expected quiz screen, got %d", m.scr)
	}
	if m.sheet == nil || m.sheet.Len() != 2 {
		t.Errorf("expected a 2-question sheet")
	}
}

func TestQuizAnswerAdvancesAndScores(t *testing.T) {
	m := NewModel(nil, nil, Setup{})
	m.scr = screenQuiz
	m.sheet = quiz.NewSheet(testQuestions())

	// First question: pick option b (correct).
	m = press(t, m, key("down"))
	m = press(t, m, key("enter"))
	if m.qIdx != 1 {
		t.Fatalf("expected advance to second question, got %d", m.qIdx)
	}
	if m.cursor != 0 {
		t.Errorf("expected cursor reset, got %d", m.cursor)
	}

	// Second question: pick option b (wrong), finishing the quiz.
	m = press(t, m, key("down"))
	m = press(t, m, key("enter"))
	if m.scr != screenResults {
		t.Fatalf("expected results screen, got %d", m.scr)
	}
	if m.result.Correct != 1 || m.result.Total != 2 {
		t.Errorf("expected 1/2, got %d/%d", m.result.Correct, m.result.Total)
	}
}

func TestQuizCursorStaysInRange(t *testing.T) {
	m := NewModel(nil, nil, Setup{})
	m.scr = screenQuiz
	m.sheet = quiz.NewSheet(testQuestions())

	m = press(t, m, key("up"))
	if m.cursor != 0 {
		t.Errorf("expected cursor pinned at 0, got %d", m.cursor)
	}
	for i := 0; i < 10; i++ {
		m = press(t, m, key("down"))
	}
	if m.cursor != 3 {
		t.Errorf("expected cursor pinned at last option, got %d", m.cursor)
	}
}

func TestQuizNavigationBetweenQuestions(t *testing.T) {
	m := NewModel(nil, nil, Setup{})
	m.scr = screenQuiz
	m.sheet = quiz.NewSheet(testQuestions())

	m = press(t, m, key("right"))
	if m.qIdx != 1 {
		t.Errorf("expected second question, got %d", m.qIdx)
	}
	m = press(t, m, key("right"))
	if m.qIdx != 1 {
		t.Errorf("expected navigation pinned at last question, got %d", m.qIdx)
	}
	m = press(t, m, key("left"))
	if m.qIdx != 0 {
		t.Errorf("expected first question, got %d", m.qIdx)
	}
}

func TestResultsNewPracticeResets(t *testing.T) {
	m := NewModel(nil, nil, Setup{})
	m.scr = screenResults
	m.sess = &app.Session{Transport: transport.New(nil, transport.Options{})}
	m.width = 80

	m = press(t, m, key("n"))
	if m.scr != screenSetup {
		t.Fatalf("expected setup screen, got %d", m.scr)
	}
	if m.sess != nil {
		t.Error("expected session cleared")
	}
	if m.width != 80 {
		t.Error("expected window dimensions preserved")
	}
}

func TestSetupPrefill(t *testing.T) {
	m := NewModel(nil, nil, Setup{Kind: "conversation", Topic: "campus housing", Voice: "Puck"})

	if content.Kinds[m.kindIdx] != content.KindConversation {
		t.Errorf("expected conversation preselected, got %v", content.Kinds[m.kindIdx])
	}
	if m.topic != "campus housing" {
		t.Errorf("expected topic prefilled, got %q", m.topic)
	}
	if m.voiceIdx == 0 {
		t.Error("expected a non-default voice selected")
	}

	// Unknown values keep the defaults.
	m = NewModel(nil, nil, Setup{Kind: "podcast", Voice: "Nobody"})
	if m.kindIdx != 0 || m.voiceIdx != 0 {
		t.Errorf("expected defaults for unknown values, got kind=%d voice=%d", m.kindIdx, m.voiceIdx)
	}
}

func TestSetupViewShowsRandomTopicHint(t *testing.T) {
	m := NewModel(nil, nil, Setup{})
	m.width = 80

	if !strings.Contains(m.View(), "random topic") {
		t.Error("expected the empty-topic hint in the setup view")
	}
}
