// ABOUTME: Content generation types
// ABOUTME: Listening kinds, generated passages, and quiz questions
package content

// Kind selects the shape of the generated listening passage.
type Kind string

const (
	KindLecture      Kind = "lecture"
	KindConversation Kind = "conversation"
)

// Kinds lists the supported listening kinds in display order.
var Kinds = []Kind{KindLecture, KindConversation}

// Display returns a human-readable label for the kind.
func (k Kind) Display() string {
	switch k {
	case KindLecture:
		return "Academic Lecture"
	case KindConversation:
		return "Campus Conversation"
	default:
		return string(k)
	}
}

// Valid reports whether the kind is one the generator understands.
func (k Kind) Valid() bool {
	return k == KindLecture || k == KindConversation
}

// Request describes one passage to generate.
type Request struct {
	Kind  Kind
	Topic string
}

// Question is one multiple-choice item over the passage.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
}

// Passage is the generated listening material.
type Passage struct {
	Title            string     `json:"title"`
	Script           string     `json:"script"`
	Questions        []Question `json:"questions"`
	DurationEstimate int        `json:"durationEstimate"` // seconds, advisory only
}
