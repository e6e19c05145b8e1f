package logbook

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestLogbook(t *testing.T) *Logbook {
	t.Helper()
	book, err := New(filepath.Join(t.TempDir(), "logs", "session.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	clock := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)
	book.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return book
}

func TestSessionEntries(t *testing.T) {
	book := newTestLogbook(t)
	book.Opened("prompt")
	book.Rejected("Enter the current season", "fall")
	book.Answered("Enter the current season", "winter")
	book.Answered("Enter the type of plant", "tree")
	book.Advised("winter", "tree")

	entries, total := book.Tail(10)
	if total != 5 || len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d (total %d)", len(entries), total)
	}
	want := []struct {
		level   Level
		message string
	}{
		{LevelInfo, "Session opened · prompt mode"},
		{LevelWarn, `Rejected "fall" for "Enter the current season"`},
		{LevelInfo, "Enter the current season: winter"},
		{LevelInfo, "Enter the type of plant: tree"},
		{LevelInfo, "Advice shown for winter / tree"},
	}
	for i, w := range want {
		if entries[i].Level != w.level || entries[i].Message != w.message {
			t.Fatalf("entry %d = %s %q, want %s %q", i, entries[i].Level, entries[i].Message, w.level, w.message)
		}
		if entries[i].Session != book.Session()[:8] {
			t.Fatalf("entry %d session = %q", i, entries[i].Session)
		}
	}
	if !entries[1].Time.After(entries[0].Time) {
		t.Fatalf("entries should be in write order")
	}
}

func TestTailLimitsToMostRecent(t *testing.T) {
	book := newTestLogbook(t)
	for _, season := range []string{"spring", "summer", "autumn", "winter"} {
		book.Advised(season, "herb")
	}
	entries, total := book.Tail(2)
	if total != 4 {
		t.Fatalf("total = %d, want 4", total)
	}
	if len(entries) != 2 || entries[0].Message != "Advice shown for autumn / herb" || entries[1].Message != "Advice shown for winter / herb" {
		t.Fatalf("unexpected tail %+v", entries)
	}
}

func TestTailSkipsForeignLines(t *testing.T) {
	book := newTestLogbook(t)
	book.Error("read answer: %v", os.ErrClosed)
	f, err := os.OpenFile(book.Path(), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("hand edited note\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	entries, total := book.Tail(5)
	if total != 1 || entries[0].Level != LevelError {
		t.Fatalf("expected one error entry, got %+v (total %d)", entries, total)
	}
}

func TestParseEntryRoundTripsString(t *testing.T) {
	e := Entry{
		Time:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Level:   LevelWarn,
		Session: "1a2b3c4d",
		Message: "Rejected \"shrub\" for \"Enter the type of plant\"",
	}
	got, ok := ParseEntry(e.String())
	if !ok || !got.Time.Equal(e.Time) || got.Level != e.Level || got.Session != e.Session || got.Message != e.Message {
		t.Fatalf("ParseEntry(%q) = %+v, %v", e.String(), got, ok)
	}
	if _, ok := ParseEntry("not a journal line"); ok {
		t.Fatalf("expected foreign line to be rejected")
	}
}

func TestNilLogbookIsSilent(t *testing.T) {
	var book *Logbook
	book.Opened("picker")
	book.Advised("spring", "flower")
	if entries, total := book.Tail(5); entries != nil || total != 0 {
		t.Fatalf("nil logbook should have no entries")
	}
	if book.Path() != "" || book.Session() != "" {
		t.Fatalf("nil logbook should have empty metadata")
	}
}
