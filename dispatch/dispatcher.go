package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/hupe1980/mcpcall/core"
	"github.com/hupe1980/mcpcall/logging"
)

// Options configures a Dispatcher.
type Options struct {
	// Logger receives dispatch diagnostics (defaults to NoOp logger if nil).
	Logger logging.Logger
	// DisableInlining turns off image resource enrichment of End events.
	DisableInlining bool
}

// Dispatcher forwards tool calls to a core.Session and emits their
// Begin/End lifecycle events. It holds no per-call state and is safe for
// concurrent use; calls are independent of each other.
type Dispatcher struct {
	opts    Options
	inliner *ResourceInliner
}

// New creates a Dispatcher with optional overrides.
func New(optFns ...func(o *Options)) *Dispatcher {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Dispatcher{opts: opts, inliner: NewResourceInliner(opts.Logger)}
}

// DispatchRequest dispatches req, generating a call id when req.CallID is empty.
func (d *Dispatcher) DispatchRequest(ctx context.Context, sess core.Session, req core.ToolCallRequest) core.ResponseItem {
	callID := req.CallID
	if callID == "" {
		callID = core.NewID()
	}
	return d.Dispatch(ctx, sess, req.SubID, callID, req.Server, req.Tool, req.Arguments, req.Timeout)
}

// DispatchQualified routes a model-issued function call whose name has the
// form "<server>__<tool>". Names that do not split yield a failure payload
// without any events.
func (d *Dispatcher) DispatchQualified(
	ctx context.Context,
	sess core.Session,
	subID, callID, name, rawArguments string,
	timeout *time.Duration,
) core.ResponseItem {
	server, tool, ok := core.SplitQualifiedName(name)
	if !ok {
		d.opts.Logger.Warn("mcp.tool_call.unsupported", "call_id", callID, "name", name)
		return core.FunctionCallOutput{
			CallID: callID,
			Output: core.FunctionCallOutputPayload{
				Content: fmt.Sprintf("unsupported call: %s", name),
				Success: core.Bool(false),
			},
		}
	}
	return d.Dispatch(ctx, sess, subID, callID, server, tool, rawArguments, timeout)
}

// Dispatch runs a single tool call.
//
// Malformed arguments short-circuit with a FunctionCallOutput (success=false)
// and no events, since nothing was attempted. Otherwise exactly one Begin and
// one End event are sent to subID, in that order, and a ToolCallOutput
// carrying the original (unenriched) outcome is returned.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	sess core.Session,
	subID, callID, server, tool, rawArguments string,
	timeout *time.Duration,
) core.ResponseItem {
	log := d.opts.Logger

	args, err := ParseArguments(rawArguments)
	if err != nil {
		log.Error(
			"mcp.tool_call.arguments.invalid",
			"call_id", callID,
			"server", server,
			"tool", tool,
			"error", err.Error(),
		)
		return core.ErrorOutput(callID, err)
	}

	sess.SendEvent(ctx, core.Event{
		ID: subID,
		Msg: core.ToolCallBeginEvent{
			CallID:    callID,
			Server:    server,
			Tool:      tool,
			Arguments: cloneArguments(args),
		},
	})

	log.Debug("mcp.tool_call.begin", "sub_id", subID, "call_id", callID, "server", server, "tool", tool)

	start := time.Now()
	result, err := d.invoke(ctx, sess, callID, server, tool, args, timeout)
	logging.LogToolCall(log, callID, server, tool, time.Since(start), err)

	var outcome core.Outcome
	if err != nil {
		outcome = core.Failed(fmt.Sprintf("tool call error: %v", err))
	} else {
		outcome = core.Ok(result)
	}

	eventOutcome := outcome
	if outcome.IsOk() && !d.opts.DisableInlining {
		if inlined, ok := d.inliner.Inline(ctx, sess, server, result); ok {
			eventOutcome = core.Ok(inlined)
		}
	}

	sess.SendEvent(ctx, core.Event{
		ID: subID,
		Msg: core.ToolCallEndEvent{
			CallID: callID,
			Result: eventOutcome,
		},
	})

	return core.ToolCallOutput{CallID: callID, Result: outcome}
}

// ParseArguments converts the raw argument string of a tool call. Empty or
// whitespace-only input yields nil (no arguments); anything else must be
// valid JSON.
func ParseArguments(raw string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	var v any
	dec := json.NewDecoder(strings.NewReader(trimmed))
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON value at offset %d", dec.InputOffset())
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(trimmed)); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

// invoke calls the tool converting panics into errors so the End event is
// always emitted.
func (d *Dispatcher) invoke(
	ctx context.Context,
	caller core.ToolCaller,
	callID, server, tool string,
	args json.RawMessage,
	timeout *time.Duration,
) (result *core.ToolCallResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.opts.Logger.Error(
				"mcp.tool_call.panic",
				"call_id", callID,
				"server", server,
				"tool", tool,
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			err = panicError(r)
		}
	}()
	result, err = caller.CallTool(ctx, server, tool, args, timeout)
	if err == nil && result == nil {
		err = fmt.Errorf("server %q returned no result for tool %q", server, tool)
	}
	return result, err
}

func cloneArguments(args json.RawMessage) json.RawMessage {
	if args == nil {
		return nil
	}
	return append(json.RawMessage(nil), args...)
}

// panicError converts a recovered panic value to an error.
func panicError(r any) error { return &panicErr{val: r} }

type panicErr struct {
	val any
}

func (p *panicErr) Error() string { return fmt.Sprintf("panic recovered: %v", p.val) }
