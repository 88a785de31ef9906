package mcp

import (
	"context"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/mcpcall/core"
)

func TestBuildTransport(t *testing.T) {
	ctx := context.Background()

	tr, err := BuildTransport(ctx, "stdio://my-server --flag")
	require.NoError(t, err)
	cmdTr, ok := tr.(*mcpsdk.CommandTransport)
	require.True(t, ok)
	assert.Equal(t, []string{"my-server", "--flag"}, cmdTr.Command.Args)

	tr, err = BuildTransport(ctx, "sse://example.com/events")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/events", tr.(*mcpsdk.SSEClientTransport).Endpoint)

	tr, err = BuildTransport(ctx, "https+stream://example.com/mcp")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/mcp", tr.(*mcpsdk.StreamableClientTransport).Endpoint)

	tr, err = BuildTransport(ctx, "http+sse://localhost:8080/sse")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/sse", tr.(*mcpsdk.SSEClientTransport).Endpoint)

	tr, err = BuildTransport(ctx, "HTTP://localhost:9000")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", tr.(*mcpsdk.SSEClientTransport).Endpoint)

	tr, err = BuildTransport(ctx, "npx some-server")
	require.NoError(t, err)
	assert.IsType(t, &mcpsdk.CommandTransport{}, tr)
}

func TestBuildTransport_Errors(t *testing.T) {
	ctx := context.Background()
	for _, spec := range []string{"", "   ", "stdio://", "https+carrier-pigeon://x", "sse://ftp://x", "http+sse:///nohost"} {
		_, err := BuildTransport(ctx, spec)
		assert.Error(t, err, "spec %q", spec)
	}
}

func TestManager_UnknownServer(t *testing.T) {
	m := NewManager()
	defer func() { _ = m.Close() }()

	_, err := m.CallTool(context.Background(), "missing", "echo", nil, nil)
	assert.ErrorIs(t, err, core.ErrUnknownServer)

	_, err = m.ReadResource(context.Background(), "missing", "file:///a", nil)
	assert.ErrorIs(t, err, core.ErrUnknownServer)

	assert.Empty(t, m.Servers())
}

func TestManager_Closed(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	_, err := m.CallTool(context.Background(), "any", "echo", nil, nil)
	assert.ErrorIs(t, err, core.ErrClosed)
}

func TestManager_ConnectRequiresName(t *testing.T) {
	m := NewManager()
	defer func() { _ = m.Close() }()
	assert.Error(t, m.Connect(context.Background(), ServerConfig{Transport: "stdio://x"}))
	assert.Error(t, m.Connect(context.Background(), ServerConfig{Name: "x", Transport: ""}))
}

func TestWithTimeout(t *testing.T) {
	d := 50 * time.Millisecond

	ctx, cancel := withTimeout(context.Background(), &d, time.Hour)
	defer cancel()
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(d), deadline, time.Second)

	ctx2, cancel2 := withTimeout(context.Background(), nil, 0)
	defer cancel2()
	_, ok = ctx2.Deadline()
	assert.False(t, ok)

	ctx3, cancel3 := withTimeout(context.Background(), nil, time.Minute)
	defer cancel3()
	_, ok = ctx3.Deadline()
	assert.True(t, ok)
}
