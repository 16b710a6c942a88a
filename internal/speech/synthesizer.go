// ABOUTME: Speech synthesis over the Gemini TTS API
// ABOUTME: Turns passage scripts into base64 PCM payloads
package speech

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash-preview-tts"

// Synthesizer produces the audio payload for a script. The payload
// contract is fixed: base64-encoded mono 24kHz 16-bit LE PCM. Downstream
// code never sees SDK types, only the payload string.
type Synthesizer struct {
	client *genai.Client
	model  string
}

// NewSynthesizer wraps a genai client shared with the content generator.
func NewSynthesizer(client *genai.Client) *Synthesizer {
	return &Synthesizer{client: client, model: defaultModel}
}

// Synthesize renders the script with the named prebuilt voice and returns
// the base64-encoded PCM payload.
func (s *Synthesizer) Synthesize(ctx context.Context, script, voice string) (string, error) {
	if script == "" {
		return "", fmt.Errorf("empty script")
	}
	if voice == "" {
		voice = DefaultVoice
	}

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	}

	logrus.WithFields(logrus.Fields{
		"voice": voice,
		"chars": len(script),
	}).Info("synthesizing speech")

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(script), cfg)
	if err != nil {
		return "", fmt.Errorf("speech synthesis failed: %w", err)
	}

	data := inlineAudio(resp)
	if len(data) == 0 {
		return "", fmt.Errorf("speech synthesis returned no audio")
	}

	logrus.WithField("bytes", len(data)).Info("speech synthesized")

	return base64.StdEncoding.EncodeToString(data), nil
}

// inlineAudio pulls the first inline audio blob out of a response.
func inlineAudio(resp *genai.GenerateContentResponse) []byte {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}
