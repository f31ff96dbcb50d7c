// Testing utilities for structured logging. TestLogger captures records in
// memory so tests can assert on the fields emitted during a solve without
// touching the process default logger.

package log

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
)

// TestLogger is a Logger implementation that records all messages in an
// internal buffer for later inspection. It is safe for concurrent use, which
// matters when the solver's parallel location loop logs from workers.
type TestLogger struct {
	mu     *sync.Mutex
	buffer *bytes.Buffer
	level  Level
	fields []any
}

// NewTestLogger creates a TestLogger capturing records at or above level.
// The returned buffer contains one line per record.
func NewTestLogger(level Level) (*TestLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &TestLogger{mu: &sync.Mutex{}, buffer: buf, level: level}, buf
}

func (t *TestLogger) log(level Level, msg string, fields ...any) {
	if level < t.level {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	var b strings.Builder
	b.WriteString(level.String())
	b.WriteByte(' ')
	b.WriteString(msg)
	all := append(append([]any{}, t.fields...), fields...)
	for i := 0; i+1 < len(all); i += 2 {
		fmt.Fprintf(&b, " %v=%v", all[i], all[i+1])
	}
	b.WriteByte('\n')
	t.buffer.WriteString(b.String())
}

func (t *TestLogger) Debug(msg string, fields ...any) { t.log(LevelDebug, msg, fields...) }
func (t *TestLogger) Info(msg string, fields ...any)  { t.log(LevelInfo, msg, fields...) }
func (t *TestLogger) Warn(msg string, fields ...any)  { t.log(LevelWarn, msg, fields...) }
func (t *TestLogger) Error(msg string, fields ...any) { t.log(LevelError, msg, fields...) }

// With returns a derived logger sharing the same buffer with extra fields.
func (t *TestLogger) With(fields ...any) Logger {
	return &TestLogger{
		mu:     t.mu,
		buffer: t.buffer,
		level:  t.level,
		fields: append(append([]any{}, t.fields...), fields...),
	}
}

// Enabled reports whether the logger emits records at the given level.
func (t *TestLogger) Enabled(_ context.Context, level Level) bool {
	return level >= t.level
}

// Contains reports whether any captured record contains substr.
func (t *TestLogger) Contains(substr string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Contains(t.buffer.String(), substr)
}
