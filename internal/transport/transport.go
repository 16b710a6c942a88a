// ABOUTME: Playback transport state machine
// ABOUTME: Manual play/pause/restart with two-anchor clock reconciliation
package transport

import (
	"sync"
	"time"

	"github.com/ListenLab/listenlab-go/pkg/audio"
	"github.com/ListenLab/listenlab-go/pkg/audio/decode"
	"github.com/sirupsen/logrus"
)

// defaultPollInterval drives the progress poll at roughly 30Hz. Progress
// is best-effort and UI-smooth, not sample-accurate; skew is bounded by
// one poll interval.
const defaultPollInterval = 33 * time.Millisecond

type state int

const (
	stateUninitialized state = iota
	stateReady
	statePlaying
	statePaused
)

// Status is a point-in-time snapshot of the playback session for the UI.
type Status struct {
	Ready    bool
	Playing  bool
	Position float64 // seconds, 0 <= Position <= Duration
	Duration float64 // seconds, fixed once the buffer is ready
	Percent  float64 // Position/Duration*100, 0 while duration is unknown
}

// Options configures a Transport.
type Options struct {
	// PollInterval overrides the progress poll cadence. Zero means the
	// default ~30Hz.
	PollInterval time.Duration

	// OnComplete is invoked exactly once each time playback reaches the
	// natural end of the buffer. It is not invoked on pause or restart.
	OnComplete func()
}

// Transport drives playback of one decoded buffer. The underlying engine
// exposes only "start node at offset" and "stop node", so pause/resume is
// reconciled manually: startClock anchors the engine clock at the moment
// the current segment began, and accumulated carries the seconds already
// consumed before it.
type Transport struct {
	mu sync.Mutex

	engine Engine
	buf    *audio.Buffer
	node   Node

	state       state
	startClock  float64
	accumulated float64
	position    float64
	duration    float64

	pollInterval time.Duration
	pollStop     chan struct{}
	onComplete   func()
	closed       bool
}

// New creates a transport bound to an engine. The transport stays
// uninitialized until a payload is loaded.
func New(engine Engine, opts Options) *Transport {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	return &Transport{
		engine:       engine,
		pollInterval: interval,
		onComplete:   opts.OnComplete,
	}
}

// Load decodes a base64 PCM payload and readies the transport. Decode
// failure leaves the transport uninitialized; no partial buffer is kept.
func (t *Transport) Load(payload string) error {
	buf, err := decode.PCMBase64(payload)
	if err != nil {
		return err
	}

	t.LoadBuffer(buf)
	return nil
}

// LoadBuffer readies the transport with an already-decoded buffer,
// resetting any previous session state.
func (t *Transport) LoadBuffer(buf *audio.Buffer) {
	t.mu.Lock()
	node := t.detachNodeLocked()
	t.buf = buf
	t.duration = buf.Duration()
	t.position = 0
	t.accumulated = 0
	t.state = stateReady
	t.mu.Unlock()

	if node != nil {
		node.Stop()
	}
}

// Play starts or resumes playback. It is a silent no-op before the buffer
// is ready or while already playing; premature interaction is tolerated,
// never escalated. Finishing playback always rewinds on the next Play.
func (t *Transport) Play() {
	t.mu.Lock()

	if t.closed || t.buf == nil || t.state == statePlaying {
		t.mu.Unlock()
		return
	}

	// At the end of the buffer a new Play starts over; it never loops
	// automatically on completion.
	if t.duration > 0 && t.position >= t.duration {
		t.accumulated = 0
		t.position = 0
	}

	node, err := t.engine.NewNode(t.buf)
	if err != nil {
		t.mu.Unlock()
		logrus.WithError(err).Warn("transport: node creation failed, staying stopped")
		return
	}
	if err := node.Start(t.accumulated); err != nil {
		t.mu.Unlock()
		logrus.WithError(err).Warn("transport: node start failed, staying stopped")
		return
	}

	t.node = node
	t.startClock = t.engine.Now()
	t.state = statePlaying

	stop := make(chan struct{})
	t.pollStop = stop
	t.mu.Unlock()

	go t.poll(stop)
}

// Pause stops the active node and banks the elapsed segment time. Calling
// Pause while not playing is a no-op, so double presses are harmless.
func (t *Transport) Pause() {
	t.mu.Lock()

	if t.state != statePlaying {
		t.mu.Unlock()
		return
	}

	t.accumulated += t.engine.Now() - t.startClock
	if t.accumulated > t.duration {
		t.accumulated = t.duration
	}
	t.position = t.accumulated
	t.state = statePaused

	node := t.detachNodeLocked()
	t.mu.Unlock()

	if node != nil {
		node.Stop()
	}
}

// Restart stops any active node and rewinds to zero without starting
// playback. Valid from any state once a buffer is loaded.
func (t *Transport) Restart() {
	t.mu.Lock()

	if t.buf == nil {
		t.mu.Unlock()
		return
	}

	t.accumulated = 0
	t.position = 0
	t.state = statePaused

	node := t.detachNodeLocked()
	t.mu.Unlock()

	if node != nil {
		node.Stop()
	}
}

// Snapshot reports the current session state. Percent is 0 until the
// buffer duration is known.
func (t *Transport) Snapshot() Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Status{
		Ready:    t.buf != nil,
		Playing:  t.state == statePlaying,
		Position: t.position,
		Duration: t.duration,
	}
	if t.duration > 0 {
		s.Percent = t.position / t.duration * 100
	}
	return s
}

// Close tears the session down: pending poll cancelled, active node
// stopped. The engine is owned by whoever constructed it and is not
// closed here.
func (t *Transport) Close() {
	t.mu.Lock()
	t.closed = true
	t.state = statePaused
	node := t.detachNodeLocked()
	t.mu.Unlock()

	if node != nil {
		node.Stop()
	}
}

// poll is the cooperative progress loop; one goroutine per play segment.
func (t *Transport) poll(stop chan struct{}) {
	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if t.step() {
				return
			}
		}
	}
}

// step advances position from the clock anchors. Returns true once the
// loop should halt (playback ended or was interrupted elsewhere).
func (t *Transport) step() bool {
	t.mu.Lock()

	if t.state != statePlaying {
		t.mu.Unlock()
		return true
	}

	elapsed := t.engine.Now() - t.startClock + t.accumulated

	if t.duration > 0 && elapsed >= t.duration {
		// Natural end: clamp, reset the offset so the next Play starts
		// clean, and fire the completion callback once.
		t.position = t.duration
		t.accumulated = 0
		t.state = statePaused
		node := t.detachNodeLocked()
		cb := t.onComplete
		t.mu.Unlock()

		if node != nil {
			node.Stop()
		}
		if cb != nil {
			cb()
		}
		return true
	}

	// Position never decreases while playing, even if the clock read
	// lands a hair earlier than a previous poll.
	if elapsed > t.position {
		t.position = elapsed
	}
	t.mu.Unlock()
	return false
}

// detachNodeLocked hands the active node to the caller for stopping
// outside the lock, and halts the poll loop. Must hold t.mu.
func (t *Transport) detachNodeLocked() Node {
	if t.pollStop != nil {
		close(t.pollStop)
		t.pollStop = nil
	}
	node := t.node
	t.node = nil
	return node
}
