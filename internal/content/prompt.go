// ABOUTME: Prompt construction for passage generation
// ABOUTME: Builds per-kind instructions for the generative model
package content

import (
	"fmt"
	"strings"
)

const questionCount = 5

// buildPrompt renders the generation instructions for a request. The
// response format itself is constrained separately by the JSON schema.
func buildPrompt(req Request) string {
	var b strings.Builder

	switch req.Kind {
	case KindConversation:
		b.WriteString("Write a TOEFL-style campus conversation between a student and ")
		b.WriteString("a university staff member (advisor, librarian, or professor). ")
		b.WriteString("250-350 words of natural spoken dialogue. Label each turn with ")
		b.WriteString("the speaker's role followed by a colon.\n")
	default:
		b.WriteString("Write a TOEFL-style academic lecture excerpt delivered by a ")
		b.WriteString("single professor. 350-450 words of natural spoken monologue, ")
		b.WriteString("including the small asides and transitions of real speech.\n")
	}

	if topic := strings.TrimSpace(req.Topic); topic != "" {
		fmt.Fprintf(&b, "Topic: %s.\n", topic)
	} else {
		b.WriteString("Pick a typical TOEFL topic yourself.\n")
	}

	fmt.Fprintf(&b, "Then write %d multiple-choice comprehension questions about the ", questionCount)
	b.WriteString("passage, each with exactly 4 options and one correct answer. ")
	b.WriteString("Questions must be answerable from listening alone. ")
	b.WriteString("Set durationEstimate to the expected spoken length in seconds.")

	return b.String()
}
