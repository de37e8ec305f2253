package storage

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "datastore.json"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCommandHistoryRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	rec := CommandHistoryRecord{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Username:  "tester",
		Command:   "music-play",
		Param:     "some song",
		Datetime:  time.Now(),
	}
	if err := s.AppendCommandToHistory("guild-1", rec); err != nil {
		t.Fatalf("AppendCommandToHistory: %v", err)
	}

	history, err := s.FetchCommandHistory("guild-1")
	if err != nil {
		t.Fatalf("FetchCommandHistory: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history has %d records, want 1", len(history))
	}
	if history[0].Command != "music-play" || history[0].Param != "some song" {
		t.Errorf("record = %+v", history[0])
	}
}

func TestCommandHistoryCap(t *testing.T) {
	s := newTestStorage(t)

	for i := 0; i < commandHistoryLimit+10; i++ {
		err := s.AppendCommandToHistory("guild-1", CommandHistoryRecord{
			Command:  fmt.Sprintf("cmd-%d", i),
			Datetime: time.Now(),
		})
		if err != nil {
			t.Fatalf("AppendCommandToHistory: %v", err)
		}
	}

	history, err := s.FetchCommandHistory("guild-1")
	if err != nil {
		t.Fatalf("FetchCommandHistory: %v", err)
	}
	if len(history) > commandHistoryLimit {
		t.Errorf("history has %d records, cap is %d", len(history), commandHistoryLimit)
	}
	if last := history[len(history)-1].Command; last != fmt.Sprintf("cmd-%d", commandHistoryLimit+9) {
		t.Errorf("newest record = %q, want the last appended", last)
	}
}

func TestTrackHistoryCap(t *testing.T) {
	s := newTestStorage(t)

	for i := 0; i < tracksHistoryLimit+5; i++ {
		if err := s.AddTrackToHistory("guild-1", fmt.Sprintf("track-%d", i), "url"); err != nil {
			t.Fatalf("AddTrackToHistory: %v", err)
		}
	}

	history, err := s.FetchTrackHistory("guild-1")
	if err != nil {
		t.Fatalf("FetchTrackHistory: %v", err)
	}
	if len(history) != tracksHistoryLimit {
		t.Errorf("history has %d tracks, want %d", len(history), tracksHistoryLimit)
	}
	if last := history[len(history)-1].Title; last != fmt.Sprintf("track-%d", tracksHistoryLimit+4) {
		t.Errorf("newest track = %q, want the last added", last)
	}
}

func TestGuildsAreIsolated(t *testing.T) {
	s := newTestStorage(t)

	if err := s.AddTrackToHistory("guild-a", "song-a", "url"); err != nil {
		t.Fatalf("AddTrackToHistory: %v", err)
	}
	if err := s.AddTrackToHistory("guild-b", "song-b", "url"); err != nil {
		t.Fatalf("AddTrackToHistory: %v", err)
	}

	historyA, err := s.FetchTrackHistory("guild-a")
	if err != nil {
		t.Fatalf("FetchTrackHistory: %v", err)
	}
	if len(historyA) != 1 || historyA[0].Title != "song-a" {
		t.Errorf("guild-a history = %+v", historyA)
	}
}
