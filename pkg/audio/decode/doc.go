// ABOUTME: Audio decode pipeline package
// ABOUTME: Converts encoded payloads into time-addressable PCM buffers
// Package decode converts encoded audio payloads into audio.Buffer values.
//
// Two entry points exist: PCMBase64 for the synthesis backend's
// base64-encoded raw PCM contract (mono 24kHz 16-bit LE, no header), and
// MP3 for user-imported listening material.
//
// Decoding never starts playback and never returns a partial buffer: any
// framing or encoding problem surfaces as an error wrapping ErrDecode.
//
// Example:
//
//	buf, err := decode.PCMBase64(payload)
//	if errors.Is(err, decode.ErrDecode) { ... }
package decode
