// ABOUTME: Audio engine and node interfaces
// ABOUTME: Abstracts the one-shot start/stop primitives and monotonic clock
package transport

import (
	"errors"

	"github.com/ListenLab/listenlab-go/pkg/audio"
)

// ErrEngineUnavailable marks a host audio engine that cannot be created.
var ErrEngineUnavailable = errors.New("audio engine unavailable")

// Engine is the playback backend owned by a single Transport. It exposes
// only a monotonic clock and one-shot node creation; there is no way to
// query a live playback position, which is why the transport keeps its
// own clock anchors.
type Engine interface {
	// Now returns the engine's monotonic clock in seconds. It never
	// decreases and is unrelated to wall-clock time.
	Now() float64

	// NewNode binds a fresh playable node to the buffer. The buffer is
	// read-only and may back many nodes over the transport's lifetime.
	NewNode(buf *audio.Buffer) (Node, error)

	// Close releases the engine context.
	Close() error
}

// Node is a single-use playable unit. Start may be called once, at an
// offset in seconds into the bound buffer. Stop is idempotent; stopping
// an already-stopped node is a no-op, never an error.
type Node interface {
	Start(offset float64) error
	Stop()
}
