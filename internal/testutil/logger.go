package testutil

import "sync"

// LogEntry is a single message captured by RecordingLogger.
type LogEntry struct {
	Level string
	Msg   string
	Args  map[string]any
}

// RecordingLogger implements logging.Logger by keeping every entry in memory.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// Debug records a debug entry.
func (l *RecordingLogger) Debug(msg string, args ...any) { l.record("DEBUG", msg, args) }

// Info records an info entry.
func (l *RecordingLogger) Info(msg string, args ...any) { l.record("INFO", msg, args) }

// Warn records a warning entry.
func (l *RecordingLogger) Warn(msg string, args ...any) { l.record("WARN", msg, args) }

// Error records an error entry.
func (l *RecordingLogger) Error(msg string, args ...any) { l.record("ERROR", msg, args) }

// Find returns the entries logged with msg.
func (l *RecordingLogger) Find(msg string) []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []LogEntry
	for _, e := range l.entries {
		if e.Msg == msg {
			out = append(out, e)
		}
	}
	return out
}

func (l *RecordingLogger) record(level, msg string, args []any) {
	kv := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		if k, ok := args[i].(string); ok {
			kv[k] = args[i+1]
		}
	}
	l.mu.Lock()
	l.entries = append(l.entries, LogEntry{Level: level, Msg: msg, Args: kv})
	l.mu.Unlock()
}
