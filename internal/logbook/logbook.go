// internal/logbook/logbook.go
//
// A plain text journal of advice sessions. Each line is one Entry:
//
//	<RFC3339 time> <LEVEL> [<session>] <message>
//
// Sessions share a file, so every entry carries the short id of the
// session that wrote it.

package logbook

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level represents the severity of a log entry.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Entry is one parsed journal line.
type Entry struct {
	Time    time.Time
	Level   Level
	Session string
	Message string
}

// String renders the entry in its on-disk form.
func (e Entry) String() string {
	return fmt.Sprintf("%s %s [%s] %s",
		e.Time.UTC().Format(time.RFC3339), e.Level, e.Session, e.Message)
}

// ParseEntry decodes a journal line. ok is false for lines that were not
// written by a Logbook.
func ParseEntry(line string) (Entry, bool) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 4)
	if len(parts) < 3 {
		return Entry{}, false
	}
	ts, err := time.Parse(time.RFC3339, parts[0])
	if err != nil {
		return Entry{}, false
	}
	session := parts[2]
	if !strings.HasPrefix(session, "[") || !strings.HasSuffix(session, "]") {
		return Entry{}, false
	}
	e := Entry{
		Time:    ts,
		Level:   Level(parts[1]),
		Session: strings.Trim(session, "[]"),
	}
	if len(parts) == 4 {
		e.Message = parts[3]
	}
	return e, true
}

// Logbook journals one advice session. A nil *Logbook discards everything.
type Logbook struct {
	path    string
	session string
	mu      sync.Mutex
	now     func() time.Time
}

// New opens a journal at path with a fresh session id.
func New(path string) (*Logbook, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logbook: ensure dir: %w", err)
	}
	return &Logbook{path: path, session: uuid.NewString(), now: time.Now}, nil
}

// Path returns the file backing this logbook.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Session returns the full session id.
func (l *Logbook) Session() string {
	if l == nil {
		return ""
	}
	return l.session
}

// Opened records the start of a session in the given front-end mode.
func (l *Logbook) Opened(mode string) {
	l.record(LevelInfo, fmt.Sprintf("Session opened · %s mode", mode))
}

// Answered records an accepted answer to a question.
func (l *Logbook) Answered(question, value string) {
	l.record(LevelInfo, fmt.Sprintf("%s: %s", question, value))
}

// Rejected records an answer that was not one of the accepted options.
func (l *Logbook) Rejected(question, value string) {
	l.record(LevelWarn, fmt.Sprintf("Rejected %q for %q", value, question))
}

// Advised records the selection a report was shown for.
func (l *Logbook) Advised(season, plantType string) {
	l.record(LevelInfo, fmt.Sprintf("Advice shown for %s / %s", season, plantType))
}

// Info appends a free-form informational entry.
func (l *Logbook) Info(format string, args ...any) {
	l.record(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn appends a free-form warning.
func (l *Logbook) Warn(format string, args ...any) {
	l.record(LevelWarn, fmt.Sprintf(format, args...))
}

// Error appends a free-form error.
func (l *Logbook) Error(format string, args ...any) {
	l.record(LevelError, fmt.Sprintf(format, args...))
}

func (l *Logbook) record(level Level, message string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	e := Entry{
		Time:    l.now(),
		Level:   level,
		Session: shortID(l.session),
		Message: strings.Join(strings.Fields(message), " "),
	}
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer file.Close()
	_, _ = file.WriteString(e.String() + "\n")
}

// Tail returns up to maxEntries of the most recent entries and the total
// number of entries in the journal. Unparseable lines are skipped.
func (l *Logbook) Tail(maxEntries int) ([]Entry, int) {
	if l == nil || maxEntries <= 0 {
		return nil, 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	file, err := os.Open(l.path)
	if err != nil {
		return nil, 0
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if e, ok := ParseEntry(scanner.Text()); ok {
			entries = append(entries, e)
		}
	}
	total := len(entries)
	if total > maxEntries {
		entries = entries[total-maxEntries:]
	}
	if total == 0 {
		return nil, 0
	}
	return entries, total
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
