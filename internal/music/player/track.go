package player

import (
	"fmt"
	"sync"
	"time"
)

// TrackOrigin tells the engine how a track came to be and whether its stream
// address can be reused after a restart.
type TrackOrigin int

const (
	// OriginRemote tracks carry a watch-page URL and get their stream URL
	// resolved lazily. Resolved URLs expire, so a restarted remote track must
	// be resolved again.
	OriginRemote TrackOrigin = iota
	// OriginLocal tracks point at a file under the music directory.
	OriginLocal
	// OriginSpeech tracks point at a synthesized audio file.
	OriginSpeech
)

func (o TrackOrigin) String() string {
	switch o {
	case OriginRemote:
		return "remote"
	case OriginLocal:
		return "local"
	case OriginSpeech:
		return "speech"
	}
	return "unknown"
}

// EncodeOptions is passed opaquely to the transport layer.
type EncodeOptions struct {
	// PreInput holds ffmpeg flags placed before -i (reconnect flags for
	// remote streams).
	PreInput string
	// Filters is an ffmpeg audio filter chain, e.g. "volume=0.15,bass=g=20".
	Filters string
	// StartAt skips into the source before playing.
	StartAt time.Duration
}

// Track is one playable item. Title, SourceURL, Origin and Encode are fixed
// at creation; the stream URL may be filled in later by either the playback
// loop or the background prefetch.
type Track struct {
	Title     string
	SourceURL string
	Origin    TrackOrigin
	Encode    EncodeOptions

	mu        sync.Mutex
	streamURL string
}

// NewResolved builds a track whose stream address is already known (local
// files, synthesized speech).
func NewResolved(title, streamURL string, origin TrackOrigin, enc EncodeOptions) *Track {
	return &Track{Title: title, Origin: origin, Encode: enc, streamURL: streamURL}
}

// NewRemote builds a track that still needs stream-URL resolution.
func NewRemote(title, sourceURL string, enc EncodeOptions) *Track {
	return &Track{Title: title, SourceURL: sourceURL, Origin: OriginRemote, Encode: enc}
}

// StreamURL returns the resolved stream address, or "" while unresolved.
func (t *Track) StreamURL() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.streamURL
}

// SetStreamURL stores a resolved stream address. The first writer wins; the
// loop and the prefetch may both resolve the same track and the loser's
// result is discarded.
func (t *Track) SetStreamURL(u string) {
	if u == "" {
		return
	}
	t.mu.Lock()
	if t.streamURL == "" {
		t.streamURL = u
	}
	t.mu.Unlock()
}

// FillTitle backfills the title for tracks enqueued by bare URL.
func (t *Track) FillTitle(title string) {
	t.mu.Lock()
	if t.Title == "" && title != "" {
		t.Title = title
	}
	t.mu.Unlock()
}

// CloneAt returns a copy of the track that starts playback at pos. Remote
// tracks drop their stream URL so it is re-resolved; local and speech tracks
// keep the file path.
func (t *Track) CloneAt(pos time.Duration) *Track {
	t.mu.Lock()
	defer t.mu.Unlock()

	clone := &Track{
		Title:     t.Title,
		SourceURL: t.SourceURL,
		Origin:    t.Origin,
		Encode:    t.Encode,
	}
	clone.Encode.StartAt = pos
	if t.Origin != OriginRemote {
		clone.streamURL = t.streamURL
	}
	return clone
}

// Describe returns the user-facing representation: a markdown link when the
// track has a source page, the bold title otherwise.
func (t *Track) Describe() string {
	t.mu.Lock()
	title := t.Title
	t.mu.Unlock()

	if t.SourceURL != "" && title != "" {
		return fmt.Sprintf("[%s](%s)", title, t.SourceURL)
	}
	if title == "" {
		title = t.SourceURL
	}
	return fmt.Sprintf("**%s**", title)
}

// DisplayTitle returns the title, falling back to the source URL.
func (t *Track) DisplayTitle() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Title != "" {
		return t.Title
	}
	return t.SourceURL
}
