// ABOUTME: Raw PCM payload decoder
// ABOUTME: Decodes base64-encoded mono 24kHz 16-bit LE PCM to a buffer
package decode

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ListenLab/listenlab-go/pkg/audio"
)

// ErrDecode marks a payload that cannot be decoded: bad base64, odd byte
// count, or an empty payload. Bad encoding and bad framing are deliberately
// not distinguished; the caller's only recourse is re-requesting synthesis.
var ErrDecode = errors.New("audio payload not decodable")

// PCMBase64 decodes a base64-encoded raw PCM payload into a buffer at the
// fixed payload format (mono, 24kHz, 16-bit little-endian).
func PCMBase64(payload string) (*audio.Buffer, error) {
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrDecode)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return PCM(raw)
}

// PCM decodes raw 16-bit little-endian mono samples into a buffer.
// For 2n input bytes the buffer holds exactly n frames and its duration
// is n / 24000 seconds.
func PCM(data []byte) (*audio.Buffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no sample data", ErrDecode)
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: odd byte count %d", ErrDecode, len(data))
	}

	samples := make([]float32, len(data)/2)
	for i := range samples {
		s := int16(binary.LittleEndian.Uint16(data[i*2:]))
		samples[i] = audio.SampleToFloat(s)
	}

	return audio.NewBuffer(samples, audio.PayloadSampleRate), nil
}
