package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/hupe1980/mcpcall/core"
	"github.com/hupe1980/mcpcall/logging"
)

// Backend is the tool side of a session, typically an *mcp.Manager.
type Backend interface {
	core.ToolCaller
	core.ResourceReader
}

// Options configures a Session.
type Options struct {
	// ID identifies the session in logs (generated if empty).
	ID string
	// EventBufferSize sets the channel buffer size for lifecycle events.
	// Larger buffers reduce blocking of dispatches on slow observers.
	EventBufferSize int
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Session is an in-memory core.Session. Tool calls and resource reads are
// delegated to the backend; events are delivered on a buffered channel.
// It is safe for concurrent access.
type Session struct {
	opts      Options
	backend   Backend
	events    chan core.Event
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a session over backend with optional overrides.
func New(backend Backend, optFns ...func(o *Options)) *Session {
	opts := Options{
		EventBufferSize: 64,
		Logger:          logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.ID == "" {
		opts.ID = core.NewID()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.EventBufferSize < 0 {
		opts.EventBufferSize = 0
	}
	return &Session{
		opts:    opts,
		backend: backend,
		events:  make(chan core.Event, opts.EventBufferSize),
		done:    make(chan struct{}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.opts.ID }

// NewSubID returns a fresh submission id to address events of a turn.
func (s *Session) NewSubID() string { return core.NewID() }

// Events returns the observer channel. It is never closed; use Done to
// detect shutdown.
func (s *Session) Events() <-chan core.Event { return s.events }

// Done is closed once Close has been called.
func (s *Session) Done() <-chan struct{} { return s.done }

// CallTool implements core.ToolCaller.
func (s *Session) CallTool(ctx context.Context, server, tool string, args json.RawMessage, timeout *time.Duration) (*core.ToolCallResult, error) {
	if s.isClosed() {
		return nil, core.ErrClosed
	}
	return s.backend.CallTool(ctx, server, tool, args, timeout)
}

// ReadResource implements core.ResourceReader.
func (s *Session) ReadResource(ctx context.Context, server, uri string, timeout *time.Duration) (*core.ReadResourceResult, error) {
	if s.isClosed() {
		return nil, core.ErrClosed
	}
	return s.backend.ReadResource(ctx, server, uri, timeout)
}

// SendEvent implements core.EventSender. An event that fits in the buffer is
// always delivered, even with ctx already done. Otherwise it blocks until the
// event is buffered, ctx is done or the session is closed; undelivered events
// are dropped with a warning and never reported to the caller.
func (s *Session) SendEvent(ctx context.Context, ev core.Event) {
	if s.isClosed() {
		s.drop(ev, "session closed")
		return
	}
	select {
	case s.events <- ev:
		return
	default:
	}
	select {
	case s.events <- ev:
	case <-ctx.Done():
		s.drop(ev, ctx.Err().Error())
	case <-s.done:
		s.drop(ev, "session closed")
	}
}

// Close stops event delivery and rejects further tool calls. The backend is
// owned by the caller and is not closed.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Session) isClosed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *Session) drop(ev core.Event, reason string) {
	s.opts.Logger.Warn(
		"session.event.dropped",
		"session_id", s.opts.ID,
		"sub_id", ev.ID,
		"call_id", ev.CallID(),
		"reason", reason,
	)
}
