// This file is part of ramulator-go.
//
// ramulator-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ramulator-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ramulator-go.  If not, see <https://www.gnu.org/licenses/>.

// Package logger implements a small ring-buffered central logger.
//
// The simulator runs for billions of cycles so a conventional streaming
// logger is not appropriate: most of what it would say is noise, and by the
// time something is interesting to a human the terminal has long since
// scrolled past the relevant lines. Instead, entries accumulate in a
// fixed-size ring buffer and are only rendered on demand, with Write()
// (the whole buffer) or Tail() (the most recent N entries).
//
// Access from a caller that may or may not want to allow logging (for
// example because it is producing output on a hot path) is governed by the
// Permission interface, so that the cost of assembling a log message can be
// skipped entirely when logging is disallowed.
package logger

import (
	"fmt"
	"io"
	"sync"
)

// Permission is consulted by Log/Logf before an entry is recorded. Types
// that don't want to gate logging can use Allow.
type Permission interface {
	AllowLogging() bool
}

type allowPermission struct{}

func (allowPermission) AllowLogging() bool { return true }

// Allow is a Permission value that always allows logging.
var Allow Permission = allowPermission{}

// Topics gates logging by named topic (e.g. "cmdtrace", "refresh"),
// letting a caller enable verbose per-subsystem logging from
// configuration without threading a bool through every call site.
type Topics struct {
	mu      sync.Mutex
	enabled map[string]bool
}

// NewTopics builds a Topics gate with the given topics enabled.
func NewTopics(enabled ...string) *Topics {
	t := &Topics{enabled: make(map[string]bool, len(enabled))}
	for _, name := range enabled {
		t.enabled[name] = true
	}
	return t
}

// Set enables or disables a topic.
func (t *Topics) Set(name string, on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled[name] = on
}

// Permission returns the Permission value for a topic; it stays live, so
// later Set calls affect already-captured Permission values.
func (t *Topics) Permission(name string) Permission {
	return topicPermission{topics: t, name: name}
}

type topicPermission struct {
	topics *Topics
	name   string
}

func (p topicPermission) AllowLogging() bool {
	p.topics.mu.Lock()
	defer p.topics.mu.Unlock()
	return p.topics.enabled[p.name]
}

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s\n", e.tag, e.detail)
}

// Logger is a fixed-capacity, ring-buffered log. The zero value is not
// usable; construct with NewLogger.
type Logger struct {
	mu    sync.Mutex
	buf   []entry
	head  int // index of the oldest retained entry
	count int
}

// NewLogger creates a Logger that retains at most size entries, discarding
// the oldest entry once full.
func NewLogger(size int) *Logger {
	if size <= 0 {
		size = 1
	}
	return &Logger{buf: make([]entry, size)}
}

// Clear empties the logger.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.head = 0
	l.count = 0
}

// detailString renders detail the way Log expects: errors and fmt.Stringer
// get their natural string form, everything else falls back to %v.
func detailString(detail interface{}) string {
	switch v := detail.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Log records tag/detail if perm allows it. detail may be an error, a
// fmt.Stringer, a string, or anything else renderable with %v.
func (l *Logger) Log(perm Permission, tag string, detail interface{}) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	l.append(tag, detailString(detail))
}

// Logf is like Log but the detail is built from a format string, in the
// manner of fmt.Sprintf.
func (l *Logger) Logf(perm Permission, tag string, format string, args ...interface{}) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	l.append(tag, fmt.Sprintf(format, args...))
}

func (l *Logger) append(tag string, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	size := len(l.buf)
	idx := (l.head + l.count) % size
	l.buf[idx] = entry{tag: tag, detail: detail}
	if l.count < size {
		l.count++
	} else {
		l.head = (l.head + 1) % size
	}
}

// Write renders every retained entry, oldest first, to w.
func (l *Logger) Write(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	size := len(l.buf)
	for i := 0; i < l.count; i++ {
		io.WriteString(w, l.buf[(l.head+i)%size].String())
	}
}

// Tail renders the most recent n entries, oldest first, to w. Asking for
// more entries than are retained is not an error.
func (l *Logger) Tail(w io.Writer, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n <= 0 {
		return
	}
	if n > l.count {
		n = l.count
	}
	size := len(l.buf)
	start := l.head + l.count - n
	for i := 0; i < n; i++ {
		io.WriteString(w, l.buf[(start+i)%size].String())
	}
}

// central is the package-level logger used by the package-level
// convenience functions below.
var central = NewLogger(1000)

// Log records tag/detail on the package-level central logger.
func Log(tag string, detail interface{}) {
	central.Log(Allow, tag, detail)
}

// Logf is like Log but builds detail from a format string.
func Logf(tag string, format string, args ...interface{}) {
	central.Logf(Allow, tag, format, args...)
}

// Write renders the central logger's entire buffer to w.
func Write(w io.Writer) {
	central.Write(w)
}

// Tail renders the central logger's most recent n entries to w.
func Tail(w io.Writer, n int) {
	central.Tail(w, n)
}

// Clear empties the central logger.
func Clear() {
	central.Clear()
}
