// ABOUTME: Tests for the MP3 import decoder
// ABOUTME: Covers rejection of non-MP3 input
package decode

import (
	"bytes"
	"errors"
	"testing"
)

func TestMP3RejectsGarbage(t *testing.T) {
	buf, err := MP3(bytes.NewReader([]byte("definitely not an mp3 stream")))
	if buf != nil {
		t.Error("expected no buffer for garbage input")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestMP3RejectsEmpty(t *testing.T) {
	if _, err := MP3(bytes.NewReader(nil)); !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode for empty input, got %v", err)
	}
}
