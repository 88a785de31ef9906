package session

import (
	"context"
	"testing"
	"time"

	"github.com/hupe1980/mcpcall/core"
	"github.com/hupe1980/mcpcall/dispatch"
	"github.com/hupe1980/mcpcall/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var _ core.Session = (*Session)(nil)

func TestSession_DelegatesToBackend(t *testing.T) {
	backend := testutil.NewFakeSession(core.NewTextResult("pong"), nil).
		WithResource(&core.ReadResourceResult{Contents: []core.ResourceContents{core.TextResourceContents{URI: "u", Text: "t"}}}, nil)
	s := New(backend)
	defer s.Close()

	res, err := s.CallTool(context.Background(), "srv", "ping", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, core.NewTextResult("pong"), res)

	read, err := s.ReadResource(context.Background(), "srv", "u", nil)
	require.NoError(t, err)
	assert.Len(t, read.Contents, 1)

	assert.Len(t, backend.Calls(), 1)
	assert.Len(t, backend.Reads(), 1)
}

func TestSession_ClosedRejectsCalls(t *testing.T) {
	backend := testutil.NewFakeSession(core.NewTextResult("pong"), nil)
	s := New(backend)
	s.Close()
	s.Close()

	_, err := s.CallTool(context.Background(), "srv", "ping", nil, nil)
	assert.ErrorIs(t, err, core.ErrClosed)
	_, err = s.ReadResource(context.Background(), "srv", "u", nil)
	assert.ErrorIs(t, err, core.ErrClosed)
	assert.Empty(t, backend.Calls())

	// dropped silently
	s.SendEvent(context.Background(), core.Event{ID: "sub"})
	select {
	case ev := <-s.Events():
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestSession_SendEventHonorsContext(t *testing.T) {
	s := New(testutil.NewFakeSession(nil, nil), func(o *Options) { o.EventBufferSize = 0 })
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	s.SendEvent(ctx, core.Event{ID: "sub", Msg: core.ToolCallBeginEvent{CallID: "c"}})
	assert.Less(t, time.Since(start), time.Second)
}

func TestSession_SendEventDeliversWithCancelledContextWhenBuffered(t *testing.T) {
	logger := &testutil.RecordingLogger{}
	s := New(testutil.NewFakeSession(nil, nil), func(o *Options) {
		o.EventBufferSize = 4
		o.Logger = logger
	})
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 4; i++ {
		s.SendEvent(ctx, core.Event{ID: "sub", Msg: core.ToolCallEndEvent{CallID: "c"}})
	}
	assert.Len(t, s.Events(), 4)
	assert.Empty(t, logger.Find("session.event.dropped"))

	// buffer full: the cancelled context now drops
	s.SendEvent(ctx, core.Event{ID: "sub", Msg: core.ToolCallEndEvent{CallID: "c"}})
	assert.Len(t, s.Events(), 4)
	require.Len(t, logger.Find("session.event.dropped"), 1)
}

func TestSession_DispatchDeliversOrderedLifecycle(t *testing.T) {
	backend := testutil.NewFakeSession(core.NewTextResult("done"), nil)
	s := New(backend, func(o *Options) { o.ID = "sess-1" })
	defer s.Close()
	assert.Equal(t, "sess-1", s.ID())

	subID := s.NewSubID()
	item := dispatch.New().Dispatch(context.Background(), s, subID, "call-1", "srv", "work", `{"n":1}`, nil)
	require.Equal(t, "call-1", item.ResponseCallID())

	first := <-s.Events()
	second := <-s.Events()
	assert.Equal(t, subID, first.ID)
	assert.Equal(t, subID, second.ID)
	assert.True(t, first.IsBegin())
	assert.True(t, second.IsEnd())
}
