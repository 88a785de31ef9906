package testutil

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/hupe1980/mcpcall/core"
)

// ToolCall records a CallTool invocation observed by FakeSession.
type ToolCall struct {
	Server    string
	Tool      string
	Arguments json.RawMessage
	Timeout   *time.Duration
}

// ResourceRead records a ReadResource invocation observed by FakeSession.
type ResourceRead struct {
	Server  string
	URI     string
	Timeout *time.Duration
}

// FakeSession is an in-memory core.Session whose behavior is scripted by
// function fields. Unset functions return a zero result. It records every
// call and every event and is safe for concurrent use.
type FakeSession struct {
	CallToolFn     func(ctx context.Context, server, tool string, args json.RawMessage, timeout *time.Duration) (*core.ToolCallResult, error)
	ReadResourceFn func(ctx context.Context, server, uri string, timeout *time.Duration) (*core.ReadResourceResult, error)

	mu     sync.Mutex
	calls  []ToolCall
	reads  []ResourceRead
	events []core.Event
}

// NewFakeSession creates a FakeSession answering every tool call with result.
func NewFakeSession(result *core.ToolCallResult, err error) *FakeSession {
	return &FakeSession{
		CallToolFn: func(context.Context, string, string, json.RawMessage, *time.Duration) (*core.ToolCallResult, error) {
			return result, err
		},
	}
}

// WithResource scripts ReadResource to return res / err (chainable).
func (s *FakeSession) WithResource(res *core.ReadResourceResult, err error) *FakeSession {
	s.ReadResourceFn = func(context.Context, string, string, *time.Duration) (*core.ReadResourceResult, error) {
		return res, err
	}
	return s
}

// CallTool implements core.ToolCaller.
func (s *FakeSession) CallTool(ctx context.Context, server, tool string, args json.RawMessage, timeout *time.Duration) (*core.ToolCallResult, error) {
	s.mu.Lock()
	s.calls = append(s.calls, ToolCall{Server: server, Tool: tool, Arguments: args, Timeout: timeout})
	fn := s.CallToolFn
	s.mu.Unlock()
	if fn == nil {
		return &core.ToolCallResult{}, nil
	}
	return fn(ctx, server, tool, args, timeout)
}

// ReadResource implements core.ResourceReader.
func (s *FakeSession) ReadResource(ctx context.Context, server, uri string, timeout *time.Duration) (*core.ReadResourceResult, error) {
	s.mu.Lock()
	s.reads = append(s.reads, ResourceRead{Server: server, URI: uri, Timeout: timeout})
	fn := s.ReadResourceFn
	s.mu.Unlock()
	if fn == nil {
		return &core.ReadResourceResult{}, nil
	}
	return fn(ctx, server, uri, timeout)
}

// SendEvent implements core.EventSender.
func (s *FakeSession) SendEvent(_ context.Context, ev core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

// Calls returns a copy of the recorded tool calls.
func (s *FakeSession) Calls() []ToolCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ToolCall(nil), s.calls...)
}

// Reads returns a copy of the recorded resource reads.
func (s *FakeSession) Reads() []ResourceRead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ResourceRead(nil), s.reads...)
}

// Events returns a copy of the recorded events.
func (s *FakeSession) Events() []core.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Event(nil), s.events...)
}
