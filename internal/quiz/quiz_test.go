// ABOUTME: Tests for quiz scoring and review
// ABOUTME: Covers selection bounds, scoring, and unanswered handling
package quiz

import (
	"testing"

	"github.com/ListenLab/listenlab-go/internal/content"
)

func testQuestions() []content.Question {
	return []content.Question{
		{Question: "Q1", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 0},
		{Question: "Q2", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 2},
		{Question: "Q3", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 3},
	}
}

func TestScoreAllCorrect(t *testing.T) {
	s := NewSheet(testQuestions())
	s.Select(0, 0)
	s.Select(1, 2)
	s.Select(2, 3)

	r := s.Score()
	if r.Correct != 3 || r.Total != 3 {
		t.Errorf("expected 3/3, got %d/%d", r.Correct, r.Total)
	}
	if r.Percent() != 100 {
		t.Errorf("expected 100%%, got %f", r.Percent())
	}
}

func TestScorePartial(t *testing.T) {
	s := NewSheet(testQuestions())
	s.Select(0, 0) // right
	s.Select(1, 1) // wrong
	// Q3 unanswered

	r := s.Score()
	if r.Correct != 1 {
		t.Errorf("expected 1 correct, got %d", r.Correct)
	}
}

func TestSelectBounds(t *testing.T) {
	s := NewSheet(testQuestions())

	s.Select(-1, 0)
	s.Select(99, 0)
	s.Select(0, -1)
	s.Select(0, 4)

	for i := 0; i < s.Len(); i++ {
		if s.Selected(i) != -1 {
			t.Errorf("question %d unexpectedly answered: %d", i, s.Selected(i))
		}
	}
}

func TestSelectOverwrite(t *testing.T) {
	s := NewSheet(testQuestions())
	s.Select(0, 1)
	s.Select(0, 2)

	if s.Selected(0) != 2 {
		t.Errorf("expected re-selection to win, got %d", s.Selected(0))
	}
}

func TestReviewMarksUnanswered(t *testing.T) {
	s := NewSheet(testQuestions())
	s.Select(0, 0)

	rows := s.Review()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if !rows[0].Right || rows[0].Selected != "a" {
		t.Errorf("row 0 wrong: %+v", rows[0])
	}
	if rows[1].Selected != "—" || rows[1].Right {
		t.Errorf("unanswered row should show a dash and not be right: %+v", rows[1])
	}
	if rows[2].Answer != "d" {
		t.Errorf("expected answer text 'd', got %q", rows[2].Answer)
	}
}

func TestEmptyQuizPercent(t *testing.T) {
	s := NewSheet(nil)
	if p := s.Score().Percent(); p != 0 {
		t.Errorf("expected 0%% for empty quiz, got %f", p)
	}
}
