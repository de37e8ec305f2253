package player

import (
	"sync"
	"testing"
	"time"
)

func TestSetStreamURLFirstWriteWins(t *testing.T) {
	tr := NewRemote("title", "https://example.com/watch", EncodeOptions{})

	tr.SetStreamURL("stream-a")
	tr.SetStreamURL("stream-b")

	if got := tr.StreamURL(); got != "stream-a" {
		t.Errorf("StreamURL = %q, want the first write %q", got, "stream-a")
	}
}

func TestSetStreamURLConcurrent(t *testing.T) {
	tr := NewRemote("title", "url", EncodeOptions{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.SetStreamURL("stream")
		}()
	}
	wg.Wait()

	if tr.StreamURL() != "stream" {
		t.Errorf("StreamURL = %q, want %q", tr.StreamURL(), "stream")
	}
}

func TestCloneAtRemoteDropsStreamURL(t *testing.T) {
	tr := NewRemote("title", "url", EncodeOptions{PreInput: "-reconnect 1"})
	tr.SetStreamURL("stream")

	clone := tr.CloneAt(90 * time.Second)

	if clone.StreamURL() != "" {
		t.Errorf("remote clone kept stream URL %q, want re-resolution", clone.StreamURL())
	}
	if clone.Encode.StartAt != 90*time.Second {
		t.Errorf("clone StartAt = %s, want 90s", clone.Encode.StartAt)
	}
	if clone.Encode.PreInput != "-reconnect 1" {
		t.Errorf("clone PreInput = %q, want kept", clone.Encode.PreInput)
	}
	if tr.Encode.StartAt != 0 {
		t.Errorf("original StartAt mutated to %s", tr.Encode.StartAt)
	}
}

func TestCloneAtLocalKeepsPath(t *testing.T) {
	tr := NewResolved("song.mp3", "/music/song.mp3", OriginLocal, EncodeOptions{Filters: "volume=0.15"})

	clone := tr.CloneAt(10 * time.Second)

	if clone.StreamURL() != "/music/song.mp3" {
		t.Errorf("local clone lost its path: %q", clone.StreamURL())
	}
	if clone.Encode.StartAt != 10*time.Second {
		t.Errorf("clone StartAt = %s, want 10s", clone.Encode.StartAt)
	}
}

func TestFillTitleOnlyWhenEmpty(t *testing.T) {
	tr := NewRemote("", "url", EncodeOptions{})
	tr.FillTitle("Resolved Title")
	tr.FillTitle("Second Title")

	if got := tr.DisplayTitle(); got != "Resolved Title" {
		t.Errorf("DisplayTitle = %q, want %q", got, "Resolved Title")
	}

	named := NewRemote("Explicit", "url", EncodeOptions{})
	named.FillTitle("Other")
	if got := named.DisplayTitle(); got != "Explicit" {
		t.Errorf("DisplayTitle = %q, want %q", got, "Explicit")
	}
}

func TestDescribe(t *testing.T) {
	linked := NewRemote("Song", "https://youtu.be/abc", EncodeOptions{})
	if got := linked.Describe(); got != "[Song](https://youtu.be/abc)" {
		t.Errorf("Describe = %q", got)
	}

	local := NewResolved("song.mp3", "/music/song.mp3", OriginLocal, EncodeOptions{})
	if got := local.Describe(); got != "**song.mp3**" {
		t.Errorf("Describe = %q", got)
	}
}
