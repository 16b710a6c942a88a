// ABOUTME: Audio package documentation
// ABOUTME: Core PCM buffer type and sample conversion helpers
// Package audio defines the decoded PCM buffer type shared by the decode
// pipeline and the playback transport.
//
// The synthesis backend delivers raw PCM with a fixed contract: mono,
// 24000 Hz, 16-bit little-endian signed samples. Decoded buffers hold
// normalized float32 frames in [-1, 1] and derive their duration from the
// frame count and sample rate.
package audio
