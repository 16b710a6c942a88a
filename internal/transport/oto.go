// ABOUTME: Oto-backed audio engine
// ABOUTME: Implements Engine/Node over one-shot oto players and a monotonic clock
package transport

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/ListenLab/listenlab-go/pkg/audio"
	"github.com/ebitengine/oto/v3"
	"github.com/sirupsen/logrus"
)

// OtoEngine plays buffers through the host audio device. oto permits only
// one context per process, so a process should create one engine and hand
// it to one transport at a time.
type OtoEngine struct {
	ctx        *oto.Context
	origin     time.Time
	sampleRate int
}

// NewOtoEngine opens the host audio device at the given sample rate.
// Failure to create the context surfaces as ErrEngineUnavailable.
func NewOtoEngine(sampleRate int) (*OtoEngine, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: audio.PayloadChannels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	<-ready

	logrus.WithField("sampleRate", sampleRate).Info("audio engine initialized")

	return &OtoEngine{
		ctx:        ctx,
		origin:     time.Now(),
		sampleRate: sampleRate,
	}, nil
}

// Now returns seconds since engine creation on Go's monotonic clock.
func (e *OtoEngine) Now() float64 {
	return time.Since(e.origin).Seconds()
}

// SampleRate returns the rate the device was opened at.
func (e *OtoEngine) SampleRate() int {
	return e.sampleRate
}

// NewNode binds a one-shot player to the buffer. Samples are rendered to
// 16-bit LE once per node; the shared buffer itself is never mutated.
func (e *OtoEngine) NewNode(buf *audio.Buffer) (Node, error) {
	if buf.SampleRate() != e.sampleRate {
		// oto cannot reopen at a new rate within one process; playback
		// proceeds at the device rate with a speed skew.
		logrus.WithFields(logrus.Fields{
			"buffer": buf.SampleRate(),
			"device": e.sampleRate,
		}).Warn("buffer sample rate differs from device rate")
	}

	samples := buf.Samples()
	pcm := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(audio.SampleToInt16(s)))
	}

	return &otoNode{engine: e, pcm: pcm}, nil
}

// Close suspends the device context. oto contexts cannot be destroyed, so
// suspension is the release primitive.
func (e *OtoEngine) Close() error {
	return e.ctx.Suspend()
}

// otoNode is a single-use playable unit over pre-rendered PCM bytes.
type otoNode struct {
	engine *OtoEngine
	pcm    []byte

	mu     sync.Mutex
	player *oto.Player
}

// Start begins playback at an offset in seconds into the buffer.
func (n *otoNode) Start(offset float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.player != nil {
		return fmt.Errorf("node already started")
	}

	frame := int(offset * float64(n.engine.sampleRate))
	byteOff := frame * 2
	if byteOff < 0 {
		byteOff = 0
	}
	if byteOff > len(n.pcm) {
		byteOff = len(n.pcm)
	}

	n.player = n.engine.ctx.NewPlayer(bytes.NewReader(n.pcm[byteOff:]))
	n.player.Play()
	return nil
}

// Stop closes the underlying player. Safe to call repeatedly.
func (n *otoNode) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.player == nil {
		return
	}
	if err := n.player.Close(); err != nil {
		logrus.WithError(err).Debug("player close")
	}
	n.player = nil
}
