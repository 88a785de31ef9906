package core

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	// ErrUnknownServer is returned when a call targets a server that is not connected.
	ErrUnknownServer = errors.New("unknown MCP server")
	// ErrClosed is returned by backends used after Close.
	ErrClosed = errors.New("session closed")
)

// ToolCaller invokes a named tool on a named server. A nil timeout means
// the backend default applies.
type ToolCaller interface {
	CallTool(ctx context.Context, server, tool string, args json.RawMessage, timeout *time.Duration) (*ToolCallResult, error)
}

// ResourceReader fetches the content of a resource by URI.
type ResourceReader interface {
	ReadResource(ctx context.Context, server, uri string, timeout *time.Duration) (*ReadResourceResult, error)
}

// EventSender delivers lifecycle events to an observer. Delivery is best
// effort: implementations must not fail the caller.
type EventSender interface {
	SendEvent(ctx context.Context, ev Event)
}

// Session is the capability surface the dispatcher borrows for a call. It is
// injected explicitly so tests can substitute fakes; implementations own
// their synchronization.
type Session interface {
	ToolCaller
	ResourceReader
	EventSender
}

// ToolCallRequest identifies a single tool invocation.
type ToolCallRequest struct {
	SubID     string         `json:"sub_id"`
	CallID    string         `json:"call_id"`
	Server    string         `json:"server"`
	Tool      string         `json:"tool"`
	Arguments string         `json:"arguments"`
	Timeout   *time.Duration `json:"timeout,omitempty"`
}

// QualifiedNameDelimiter separates server and tool in a fully qualified tool name.
const QualifiedNameDelimiter = "__"

// QualifiedName joins server and tool into the name exposed to models.
func QualifiedName(server, tool string) string {
	return server + QualifiedNameDelimiter + tool
}

// SplitQualifiedName splits a fully qualified tool name at the first
// delimiter. ok is false when either half would be empty.
func SplitQualifiedName(name string) (server, tool string, ok bool) {
	server, tool, found := strings.Cut(name, QualifiedNameDelimiter)
	if !found || server == "" || tool == "" {
		return "", "", false
	}
	return server, tool, true
}
