// Package debug provides tracing for textgrid's write pipeline.
//
// The debug system follows these principles:
//   - Single switch: TEXTGRID_DEBUG=1 or --debug enables everything
//   - Zero overhead: a nil *Session makes every Emit a no-op
//   - Session scoped: each write gets its own session ID
//   - Machine parsable: JSON Lines by default, pretty or zap output optional
package debug

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
)

// enabled is the global debug flag - set once at startup.
var enabled uint32

// SetEnabled configures debug mode globally.
// This should be called once at program startup.
func SetEnabled(on bool) {
	if on {
		atomic.StoreUint32(&enabled, 1)
	} else {
		atomic.StoreUint32(&enabled, 0)
	}
}

// Enabled returns true if debug mode is active.
func Enabled() bool {
	return atomic.LoadUint32(&enabled) == 1
}

// InitFromEnv enables debug mode when TEXTGRID_DEBUG=1.
func InitFromEnv() {
	if os.Getenv("TEXTGRID_DEBUG") == "1" {
		SetEnabled(true)
	}
}

// PrettyFromEnv reports whether TEXTGRID_DEBUG_PRETTY=1 asks for the pretty sink.
func PrettyFromEnv() bool {
	return os.Getenv("TEXTGRID_DEBUG_PRETTY") == "1"
}

// Session represents a debug session. A session is not safe for concurrent
// use; give each goroutine its own.
type Session struct {
	sessionID string
	sink      Sink
	startTime time.Time
}

// NewSession creates a new debug session with the provided sink.
// Returns nil if debug mode is not enabled.
func NewSession(sink Sink) *Session {
	if !Enabled() || sink == nil {
		return nil
	}

	s := &Session{
		sessionID: generateSessionID(),
		sink:      sink,
		startTime: time.Now(),
	}

	s.Emit("session", "Start", map[string]interface{}{
		"version": "1.0",
	})

	return s
}

// SessionID returns the unique identifier for this session.
func (s *Session) SessionID() string {
	if s == nil {
		return ""
	}
	return s.sessionID
}

// Emit sends an event to the sink.
// This is a no-op if the session is nil.
func (s *Session) Emit(phase, event string, data interface{}) {
	if s == nil {
		return
	}

	evt := Event{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		SessionID: s.sessionID,
		Phase:     phase,
		Event:     event,
		Data:      data,
	}

	//nolint:errcheck // Debug sink errors are non-critical
	s.sink.Write(evt)
}

// Close emits the session end event, then flushes and closes the sink.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}

	elapsed := time.Since(s.startTime).Milliseconds()
	s.Emit("session", "End", map[string]int64{
		"elapsed_ms": elapsed,
	})

	return multierr.Append(s.sink.Flush(), s.sink.Close())
}

// generateSessionID creates a unique session identifier.
func generateSessionID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		now := time.Now().UnixNano()
		return hex.EncodeToString([]byte{
			byte(now >> 24),
			byte(now >> 16),
			byte(now >> 8),
			byte(now),
		})
	}
	return hex.EncodeToString(b)
}

// Event is the base envelope for all debug events.
type Event struct {
	Timestamp string      `json:"ts"`
	SessionID string      `json:"session_id"`
	Phase     string      `json:"phase"`
	Event     string      `json:"event"`
	Data      interface{} `json:"data"`
}
