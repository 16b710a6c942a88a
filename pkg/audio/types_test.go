// ABOUTME: Tests for audio buffer and sample conversion
// ABOUTME: Verifies duration derivation and int16/float round-trips
package audio

import (
	"math"
	"testing"
)

func TestBufferDuration(t *testing.T) {
	buf := NewBuffer(make([]float32, 24000), PayloadSampleRate)

	if buf.Frames() != 24000 {
		t.Errorf("expected 24000 frames, got %d", buf.Frames())
	}

	if buf.Duration() != 1.0 {
		t.Errorf("expected 1.0s duration, got %f", buf.Duration())
	}
}

func TestBufferDurationFraction(t *testing.T) {
	// 12000 frames at 24kHz is exactly half a second
	buf := NewBuffer(make([]float32, 12000), PayloadSampleRate)

	if buf.Duration() != 0.5 {
		t.Errorf("expected 0.5s duration, got %f", buf.Duration())
	}
}

func TestBufferZeroRate(t *testing.T) {
	buf := NewBuffer(make([]float32, 100), 0)

	if buf.Duration() != 0 {
		t.Errorf("expected 0 duration for zero sample rate, got %f", buf.Duration())
	}
}

func TestSampleToFloat(t *testing.T) {
	tests := []struct {
		in   int16
		want float32
	}{
		{0, 0},
		{32767, 32767.0 / 32768.0},
		{-32768, -1.0},
		{16384, 0.5},
		{-16384, -0.5},
	}

	for _, tt := range tests {
		got := SampleToFloat(tt.in)
		if math.Abs(float64(got-tt.want)) > 1e-9 {
			t.Errorf("SampleToFloat(%d) = %f, expected %f", tt.in, got, tt.want)
		}
	}
}

func TestSampleToInt16Clamps(t *testing.T) {
	if got := SampleToInt16(2.0); got != 32767 {
		t.Errorf("expected clamp to 32767, got %d", got)
	}
	if got := SampleToInt16(-2.0); got != -32768 {
		t.Errorf("expected clamp to -32768, got %d", got)
	}
}

func TestSampleRoundTrip(t *testing.T) {
	for _, s := range []int16{0, 1, -1, 12345, -12345, 32767, -32768} {
		back := SampleToInt16(SampleToFloat(s))
		if back != s {
			t.Errorf("round-trip of %d gave %d", s, back)
		}
	}
}
