// ABOUTME: Quiz answer sheet and scoring
// ABOUTME: Tracks selections and compares them against answer keys
package quiz

import "github.com/ListenLab/listenlab-go/internal/content"

// Sheet holds one quiz run: the generated questions and the user's
// selections. A selection of -1 means unanswered.
type Sheet struct {
	questions []content.Question
	selected  []int
}

// NewSheet builds an empty answer sheet over the questions.
func NewSheet(questions []content.Question) *Sheet {
	selected := make([]int, len(questions))
	for i := range selected {
		selected[i] = -1
	}
	return &Sheet{questions: questions, selected: selected}
}

// Len returns the number of questions.
func (s *Sheet) Len() int {
	return len(s.questions)
}

// Question returns the question at index i.
func (s *Sheet) Question(i int) content.Question {
	return s.questions[i]
}

// Select records a choice for question i. Out-of-range indexes are
// ignored.
func (s *Sheet) Select(i, choice int) {
	if i < 0 || i >= len(s.questions) {
		return
	}
	if choice < 0 || choice >= len(s.questions[i].Options) {
		return
	}
	s.selected[i] = choice
}

// Selected returns the recorded choice for question i, or -1.
func (s *Sheet) Selected(i int) int {
	if i < 0 || i >= len(s.selected) {
		return -1
	}
	return s.selected[i]
}

// Result is a scored quiz.
type Result struct {
	Correct int
	Total   int
}

// Percent returns the score as a percentage, 0 for an empty quiz.
func (r Result) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

// Score compares selections against the answer key.
func (s *Sheet) Score() Result {
	r := Result{Total: len(s.questions)}
	for i, q := range s.questions {
		if s.selected[i] == q.AnswerIndex {
			r.Correct++
		}
	}
	return r
}

// ReviewRow is one question's outcome for the results screen.
type ReviewRow struct {
	Question string
	Selected string // "—" when unanswered
	Answer   string
	Right    bool
}

// Review returns per-question outcomes in question order.
func (s *Sheet) Review() []ReviewRow {
	rows := make([]ReviewRow, len(s.questions))
	for i, q := range s.questions {
		row := ReviewRow{
			Question: q.Question,
			Selected: "—",
			Answer:   q.Options[q.AnswerIndex],
		}
		if sel := s.selected[i]; sel >= 0 {
			row.Selected = q.Options[sel]
			row.Right = sel == q.AnswerIndex
		}
		rows[i] = row
	}
	return rows
}
