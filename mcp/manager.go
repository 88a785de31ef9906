// Package mcp connects to named MCP servers through the official Go SDK and
// exposes them as core.ToolCaller and core.ResourceReader backends.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hupe1980/mcpcall/core"
	"github.com/hupe1980/mcpcall/logging"
)

// ServerConfig names an MCP server and how to reach it. Transport uses the
// spec grammar understood by BuildTransport.
type ServerConfig struct {
	Name      string `json:"name"`
	Transport string `json:"transport"`
}

// Options configures a Manager.
type Options struct {
	// ClientName / ClientVersion identify this client during the handshake.
	ClientName    string
	ClientVersion string
	// DefaultToolTimeout bounds tool calls issued without an explicit timeout (0 = unbounded).
	DefaultToolTimeout time.Duration
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Manager owns one client session per connected server. It is safe for
// concurrent use.
type Manager struct {
	opts     Options
	client   *mcpsdk.Client
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.RWMutex
	sessions map[string]*mcpsdk.ClientSession
	closed   bool
}

// NewManager creates a Manager with optional overrides.
func NewManager(optFns ...func(o *Options)) *Manager {
	opts := Options{
		ClientName:    "mcpcall",
		ClientVersion: "dev",
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		opts:     opts,
		client:   mcpsdk.NewClient(&mcpsdk.Implementation{Name: opts.ClientName, Version: opts.ClientVersion}, nil),
		ctx:      ctx,
		cancel:   cancel,
		sessions: make(map[string]*mcpsdk.ClientSession),
	}
}

// Connect establishes a session with the configured server. Spawned stdio
// servers live until Close, independent of ctx.
func (m *Manager) Connect(ctx context.Context, cfg ServerConfig) error {
	if cfg.Name == "" {
		return fmt.Errorf("mcp: server name is empty")
	}
	transport, err := BuildTransport(m.ctx, cfg.Transport)
	if err != nil {
		return fmt.Errorf("mcp: build transport for %q: %w", cfg.Name, err)
	}
	return m.ConnectTransport(ctx, cfg.Name, transport)
}

// ConnectTransport establishes a session over an already built transport.
func (m *Manager) ConnectTransport(ctx context.Context, name string, transport mcpsdk.Transport) error {
	session, err := m.client.Connect(ctx, transport, nil)
	if err != nil {
		return fmt.Errorf("mcp: connect %q: %w", name, err)
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		_ = session.Close()
		return core.ErrClosed
	}
	prev := m.sessions[name]
	m.sessions[name] = session
	m.mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	m.opts.Logger.Info("mcp.server.connected", "server", name)
	return nil
}

// Servers returns the names of connected servers in sorted order.
func (m *Manager) Servers() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.sessions))
	for name := range m.sessions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CallTool implements core.ToolCaller.
func (m *Manager) CallTool(
	ctx context.Context,
	server, tool string,
	args json.RawMessage,
	timeout *time.Duration,
) (*core.ToolCallResult, error) {
	session, err := m.session(server)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, timeout, m.opts.DefaultToolTimeout)
	defer cancel()

	params := &mcpsdk.CallToolParams{Name: tool}
	if args != nil {
		params.Arguments = args
	}

	res, err := session.CallTool(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("call %s/%s: %w", server, tool, err)
	}
	return toToolCallResult(res), nil
}

// ReadResource implements core.ResourceReader.
func (m *Manager) ReadResource(
	ctx context.Context,
	server, uri string,
	timeout *time.Duration,
) (*core.ReadResourceResult, error) {
	session, err := m.session(server)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, timeout, 0)
	defer cancel()

	res, err := session.ReadResource(ctx, &mcpsdk.ReadResourceParams{URI: uri})
	if err != nil {
		return nil, fmt.Errorf("read %s from %s: %w", uri, server, err)
	}
	return toReadResourceResult(res), nil
}

// Close terminates all sessions. The Manager cannot be reused afterwards.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	sessions := m.sessions
	m.sessions = map[string]*mcpsdk.ClientSession{}
	m.mu.Unlock()

	var errs []error
	for name, s := range sessions {
		if err := s.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %q: %w", name, err))
		}
	}
	m.cancel()
	return errors.Join(errs...)
}

func (m *Manager) session(server string) (*mcpsdk.ClientSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, core.ErrClosed
	}
	s, ok := m.sessions[server]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrUnknownServer, server)
	}
	return s, nil
}

// withTimeout derives a bounded context from timeout, falling back to def.
// Non-positive durations leave ctx unbounded.
func withTimeout(ctx context.Context, timeout *time.Duration, def time.Duration) (context.Context, context.CancelFunc) {
	d := def
	if timeout != nil {
		d = *timeout
	}
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
