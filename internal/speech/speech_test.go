// ABOUTME: Tests for the voice catalog and response extraction
// ABOUTME: Verifies voice defaults and inline audio retrieval
package speech

import (
	"testing"

	"google.golang.org/genai"
)

func TestVoiceCatalog(t *testing.T) {
	if len(Voices) == 0 {
		t.Fatal("voice catalog is empty")
	}

	names := VoiceNames()
	if len(names) != len(Voices) {
		t.Errorf("expected %d names, got %d", len(Voices), len(names))
	}

	found := false
	for _, n := range names {
		if n == DefaultVoice {
			found = true
		}
	}
	if !found {
		t.Errorf("default voice %q not in catalog", DefaultVoice)
	}
}

func TestInlineAudioExtraction(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{
				{Text: "ignored"},
				{InlineData: &genai.Blob{MIMEType: "audio/pcm", Data: []byte{1, 2, 3}}},
			}}},
		},
	}

	data := inlineAudio(resp)
	if len(data) != 3 {
		t.Errorf("expected 3 audio bytes, got %d", len(data))
	}
}

func TestInlineAudioMissing(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "no audio here"}}}},
			{Content: nil},
		},
	}

	if data := inlineAudio(resp); data != nil {
		t.Errorf("expected nil for response without audio, got %d bytes", len(data))
	}
}
