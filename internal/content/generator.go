// ABOUTME: Passage generator over the Gemini API
// ABOUTME: Schema-constrained JSON generation of scripts and questions
package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Generator produces listening passages from the generative backend.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator wraps a genai client. The client is shared with the speech
// synthesizer and owned by the caller.
func NewGenerator(client *genai.Client) *Generator {
	return &Generator{client: client, model: defaultModel}
}

// Passage generates one listening passage with comprehension questions.
// The response is constrained to the passage JSON schema and validated
// before being returned; a malformed response is an error, never a
// partial passage.
func (g *Generator) Passage(ctx context.Context, req Request) (*Passage, error) {
	if !req.Kind.Valid() {
		return nil, fmt.Errorf("unknown listening kind: %q", req.Kind)
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   passageSchema(),
	}

	logrus.WithFields(logrus.Fields{
		"kind":  req.Kind,
		"topic": req.Topic,
	}).Info("generating passage")

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(req)), cfg)
	if err != nil {
		return nil, fmt.Errorf("passage generation failed: %w", err)
	}

	var p Passage
	if err := json.Unmarshal([]byte(resp.Text()), &p); err != nil {
		return nil, fmt.Errorf("passage response not valid JSON: %w", err)
	}

	if err := validatePassage(&p); err != nil {
		return nil, fmt.Errorf("passage response rejected: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"title":     p.Title,
		"questions": len(p.Questions),
	}).Info("passage generated")

	return &p, nil
}

// passageSchema constrains the model output to the Passage shape.
func passageSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":  {Type: genai.TypeString},
			"script": {Type: genai.TypeString},
			"questions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"question":    {Type: genai.TypeString},
						"options":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"answerIndex": {Type: genai.TypeInteger},
					},
					Required: []string{"question", "options", "answerIndex"},
				},
			},
			"durationEstimate": {Type: genai.TypeInteger},
		},
		Required: []string{"title", "script", "questions"},
	}
}

// validatePassage enforces the parts of the contract a schema cannot:
// non-empty text, exactly 4 options per question, answer index in range.
func validatePassage(p *Passage) error {
	if p.Title == "" {
		return fmt.Errorf("missing title")
	}
	if p.Script == "" {
		return fmt.Errorf("missing script")
	}
	if len(p.Questions) == 0 {
		return fmt.Errorf("no questions")
	}
	for i, q := range p.Questions {
		if q.Question == "" {
			return fmt.Errorf("question %d is empty", i)
		}
		if len(q.Options) != 4 {
			return fmt.Errorf("question %d has %d options, want 4", i, len(q.Options))
		}
		if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
			return fmt.Errorf("question %d answer index %d out of range", i, q.AnswerIndex)
		}
	}
	return nil
}
