// ABOUTME: Audio type definitions
// ABOUTME: Defines the fixed payload format and decoded PCM buffers
package audio

// Fixed format of synthesized speech payloads. The backend emits raw PCM
// with no container, so these cannot be negotiated per payload.
const (
	PayloadSampleRate = 24000
	PayloadChannels   = 1
	PayloadBitDepth   = 16
)

// Buffer is decoded PCM audio: mono float32 frames in [-1, 1].
// A Buffer is immutable after creation and may back any number of
// playback nodes, but is owned by a single transport instance.
type Buffer struct {
	samples    []float32
	sampleRate int
}

// NewBuffer wraps normalized samples at the given sample rate.
// The caller must not modify samples after handing them over.
func NewBuffer(samples []float32, sampleRate int) *Buffer {
	return &Buffer{samples: samples, sampleRate: sampleRate}
}

// Samples returns the underlying frames. Read-only by convention.
func (b *Buffer) Samples() []float32 {
	return b.samples
}

// SampleRate returns the buffer's sample rate in Hz.
func (b *Buffer) SampleRate() int {
	return b.sampleRate
}

// Frames returns the number of sample frames.
func (b *Buffer) Frames() int {
	return len(b.samples)
}

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	if b.sampleRate == 0 {
		return 0
	}
	return float64(len(b.samples)) / float64(b.sampleRate)
}

// SampleToFloat normalizes a 16-bit sample to [-1, 1).
func SampleToFloat(s int16) float32 {
	return float32(s) / 32768.0
}

// SampleToInt16 converts a normalized sample back to 16-bit range,
// clamping out-of-range input.
func SampleToInt16(f float32) int16 {
	if f >= 1.0 {
		return 32767
	}
	if f <= -1.0 {
		return -32768
	}
	return int16(f * 32768.0)
}
