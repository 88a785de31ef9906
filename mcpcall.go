// Package mcpcall provides a high-level façade over MCP server connections,
// the event session and the tool-call dispatcher. Most applications interact
// with this package by:
//  1. Creating a Client via New()
//  2. Connecting one or more named MCP servers
//  3. Forwarding model-issued function calls through Call and observing the
//     Begin/End lifecycle on Events
package mcpcall

import (
	"context"
	"time"

	"github.com/hupe1980/mcpcall/core"
	"github.com/hupe1980/mcpcall/dispatch"
	"github.com/hupe1980/mcpcall/logging"
	"github.com/hupe1980/mcpcall/mcp"
	"github.com/hupe1980/mcpcall/session"
)

// Options configures the Client.
type Options struct {
	// ClientName identifies this client to MCP servers.
	ClientName string
	// DefaultToolTimeout bounds calls issued without an explicit timeout (0 = unbounded).
	DefaultToolTimeout time.Duration
	// EventBufferSize sets the channel buffer size for lifecycle events.
	EventBufferSize int
	// DisableInlining skips resolution of image blob resources in End events.
	DisableInlining bool
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Client aggregates the MCP manager, the session and the dispatcher.
type Client struct {
	manager    *mcp.Manager
	session    *session.Session
	dispatcher *dispatch.Dispatcher
}

// New creates a Client with optional overrides.
func New(optFns ...func(o *Options)) *Client {
	opts := Options{
		ClientName:      "mcpcall",
		EventBufferSize: 64,
		Logger:          logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	manager := mcp.NewManager(func(o *mcp.Options) {
		o.ClientName = opts.ClientName
		o.DefaultToolTimeout = opts.DefaultToolTimeout
		o.Logger = opts.Logger
	})

	return &Client{
		manager: manager,
		session: session.New(manager, func(o *session.Options) {
			o.EventBufferSize = opts.EventBufferSize
			o.Logger = opts.Logger
		}),
		dispatcher: dispatch.New(func(o *dispatch.Options) {
			o.DisableInlining = opts.DisableInlining
			o.Logger = opts.Logger
		}),
	}
}

// Connect registers a named MCP server.
func (c *Client) Connect(ctx context.Context, cfg mcp.ServerConfig) error {
	return c.manager.Connect(ctx, cfg)
}

// Servers lists the connected server names.
func (c *Client) Servers() []string { return c.manager.Servers() }

// NewSubID returns a fresh submission id for tagging the events of a turn.
func (c *Client) NewSubID() string { return c.session.NewSubID() }

// Call dispatches a model-issued function call named "<server>__<tool>". Its
// events carry subID; an empty subID is replaced by a fresh one.
func (c *Client) Call(ctx context.Context, subID, callID, name, rawArguments string) core.ResponseItem {
	if subID == "" {
		subID = c.session.NewSubID()
	}
	return c.dispatcher.DispatchQualified(ctx, c.session, subID, callID, name, rawArguments, nil)
}

// CallTool dispatches req against the client's session. An empty SubID is
// replaced by a fresh one.
func (c *Client) CallTool(ctx context.Context, req core.ToolCallRequest) core.ResponseItem {
	if req.SubID == "" {
		req.SubID = c.session.NewSubID()
	}
	return c.dispatcher.DispatchRequest(ctx, c.session, req)
}

// Events returns the lifecycle event stream of all calls.
func (c *Client) Events() <-chan core.Event { return c.session.Events() }

// Close ends the session and disconnects every server.
func (c *Client) Close() error {
	c.session.Close()
	return c.manager.Close()
}
