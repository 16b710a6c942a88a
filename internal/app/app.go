// ABOUTME: Main application orchestration
// ABOUTME: Wires generation, synthesis, decoding, playback, and history
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/ListenLab/listenlab-go/internal/content"
	"github.com/ListenLab/listenlab-go/internal/history"
	"github.com/ListenLab/listenlab-go/internal/speech"
	"github.com/ListenLab/listenlab-go/internal/transport"
	"github.com/ListenLab/listenlab-go/pkg/audio"
	"github.com/ListenLab/listenlab-go/pkg/audio/decode"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// Config holds application configuration.
type Config struct {
	// APIKey authenticates the generative backend. May be empty when
	// only the import flow is used.
	APIKey string

	// HistoryPath is the sqlite file for the practice log.
	HistoryPath string
}

// App owns the collaborators of one program run. The audio engine is
// created lazily on the first session because the host allows only one
// device context per process.
type App struct {
	generator *content.Generator
	synth     *speech.Synthesizer
	history   *history.Store
	engine    *transport.OtoEngine
}

// New builds the application. Without an API key the generated-practice
// flow is unavailable but MP3 import still works.
func New(ctx context.Context, cfg Config) (*App, error) {
	a := &App{}

	if cfg.APIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create generative client: %w", err)
		}
		a.generator = content.NewGenerator(client)
		a.synth = speech.NewSynthesizer(client)
	}

	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return nil, err
	}
	a.history = store

	return a, nil
}

// Session is one practice lifecycle: the material, its playback
// transport, and a completion flag set by the transport callback.
type Session struct {
	ID      string
	Kind    content.Kind
	Topic   string
	Title   string
	Passage *content.Passage // nil for imported audio

	Transport *transport.Transport

	completed atomic.Bool
}

// Completed reports whether playback reached its natural end at least
// once.
func (s *Session) Completed() bool {
	return s.completed.Load()
}

// Close tears down the session's transport.
func (s *Session) Close() {
	if s.Transport != nil {
		s.Transport.Close()
	}
}

// PrepareGenerated runs the full generation pipeline: passage, speech,
// decode, and a ready transport. Failures surface to the caller; the user
// retries by re-requesting, never automatically.
func (a *App) PrepareGenerated(ctx context.Context, req content.Request, voice string) (*Session, error) {
	if a.generator == nil {
		return nil, fmt.Errorf("no API key configured; set GEMINI_API_KEY")
	}

	passage, err := a.generator.Passage(ctx, req)
	if err != nil {
		return nil, err
	}

	payload, err := a.synth.Synthesize(ctx, passage.Script, voice)
	if err != nil {
		return nil, err
	}

	buf, err := decode.PCMBase64(payload)
	if err != nil {
		logrus.WithError(err).Error("synthesized payload failed to decode")
		return nil, err
	}

	sess := &Session{
		ID:      uuid.New().String(),
		Kind:    req.Kind,
		Topic:   req.Topic,
		Title:   passage.Title,
		Passage: passage,
	}

	tr, err := a.newTransport(buf, sess)
	if err != nil {
		return nil, err
	}
	sess.Transport = tr

	logrus.WithFields(logrus.Fields{
		"session":  sess.ID,
		"title":    sess.Title,
		"duration": buf.Duration(),
	}).Info("session ready")

	return sess, nil
}

// PrepareImport builds a session around a local MP3 file. No passage and
// no quiz; just the listening flow.
func (a *App) PrepareImport(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	buf, err := decode.MP3(f)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		ID:    uuid.New().String(),
		Title: filepath.Base(path),
	}

	tr, err := a.newTransport(buf, sess)
	if err != nil {
		return nil, err
	}
	sess.Transport = tr

	logrus.WithFields(logrus.Fields{
		"session":  sess.ID,
		"file":     path,
		"duration": buf.Duration(),
	}).Info("import session ready")

	return sess, nil
}

// newTransport binds a ready transport over the buffer, creating the
// device engine on first use.
func (a *App) newTransport(buf *audio.Buffer, sess *Session) (*transport.Transport, error) {
	if a.engine == nil {
		engine, err := transport.NewOtoEngine(buf.SampleRate())
		if err != nil {
			return nil, err
		}
		a.engine = engine
	}

	tr := transport.New(a.engine, transport.Options{
		OnComplete: func() { sess.completed.Store(true) },
	})
	tr.LoadBuffer(buf)
	return tr, nil
}

// Record logs a finished attempt to the practice history.
func (a *App) Record(sess *Session, correct, total int) error {
	status := sess.Transport.Snapshot()
	return a.history.Save(&history.Attempt{
		ID:           sess.ID,
		Kind:         string(sess.Kind),
		Topic:        sess.Topic,
		Title:        sess.Title,
		Correct:      correct,
		Total:        total,
		AudioSeconds: status.Duration,
	})
}

// Recent returns the latest practice attempts, empty on error.
func (a *App) Recent(n int) []history.Attempt {
	attempts, err := a.history.Recent(n)
	if err != nil {
		logrus.WithError(err).Warn("failed to load history")
		return nil
	}
	return attempts
}

// Stats returns overall attempt count and average score.
func (a *App) Stats() (int64, float64) {
	count, avg, err := a.history.Stats()
	if err != nil {
		logrus.WithError(err).Warn("failed to load stats")
		return 0, 0
	}
	return count, avg
}

// Close releases the history store and suspends the audio engine.
func (a *App) Close() {
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			logrus.WithError(err).Warn("history close")
		}
	}
	if a.engine != nil {
		if err := a.engine.Close(); err != nil {
			logrus.WithError(err).Warn("engine close")
		}
	}
}
