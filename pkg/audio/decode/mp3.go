// ABOUTME: MP3 import decoder
// ABOUTME: Decodes user-supplied MP3 material to a mono buffer
package decode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ListenLab/listenlab-go/pkg/audio"
	mp3 "github.com/hajimehoshi/go-mp3"
)

// MP3 decodes an MP3 stream into a mono buffer at the stream's native
// sample rate. go-mp3 always emits interleaved stereo 16-bit LE frames;
// channels are downmixed by averaging.
func MP3(r io.Reader) (*audio.Buffer, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	// 4 bytes per stereo frame: L int16, R int16
	frames := len(raw) / 4
	if frames == 0 {
		return nil, fmt.Errorf("%w: no sample data", ErrDecode)
	}

	samples := make([]float32, frames)
	for i := 0; i < frames; i++ {
		left := int16(binary.LittleEndian.Uint16(raw[i*4:]))
		right := int16(binary.LittleEndian.Uint16(raw[i*4+2:]))
		samples[i] = (audio.SampleToFloat(left) + audio.SampleToFloat(right)) / 2
	}

	return audio.NewBuffer(samples, dec.SampleRate()), nil
}
