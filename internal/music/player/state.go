package player

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// GuildState owns everything one guild needs for playback: the queue, the
// voice connection, the current track and the loop lifecycle. All of it is
// mutated only here or in the loop it spawns.
type GuildState struct {
	guildID string
	deps    *Deps
	queue   *Queue

	mu               sync.Mutex
	vc               VoiceHandle
	current          *Track
	playback         Playback
	loopCancel       context.CancelFunc
	loopDone         chan struct{}
	announceChannel  string
	suppressAnnounce bool
}

func newGuildState(guildID string, deps *Deps) *GuildState {
	return &GuildState{
		guildID: guildID,
		deps:    deps,
		queue:   NewQueue(),
	}
}

func (g *GuildState) GuildID() string { return g.guildID }

// Queue exposes the guild's track queue.
func (g *GuildState) Queue() *Queue { return g.queue }

// Current returns the track currently playing or about to play, nil when idle.
func (g *GuildState) Current() *Track {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// IsPlaying reports whether a track is actively streaming.
func (g *GuildState) IsPlaying() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.playback != nil
}

// EnsureVoice makes sure the guild has a live voice connection, joining
// channelID when there is none. An empty channelID with no existing
// connection is ErrNotInVoice.
func (g *GuildState) EnsureVoice(channelID string) error {
	g.mu.Lock()
	connected := g.vc != nil && g.vc.IsConnected()
	g.mu.Unlock()

	if connected {
		return nil
	}
	if channelID == "" {
		return ErrNotInVoice
	}

	vc, err := g.deps.Connector.Join(g.guildID, channelID)
	if err != nil {
		log.Printf("[Player] Failed to join voice channel %s: %v | guild=%s", channelID, err, g.guildID)
		return ErrVoiceConnect
	}

	g.mu.Lock()
	g.vc = vc
	g.mu.Unlock()
	return nil
}

// StartLoop launches the playback loop if none is running and records the
// announce channel. Idempotent; the newest caller's channel always wins so
// announcements follow the most recent command.
func (g *GuildState) StartLoop(announceChannelID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.announceChannel = announceChannelID

	if g.loopDone != nil {
		select {
		case <-g.loopDone:
			// previous loop finished, fall through and start a fresh one
		default:
			return
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	g.loopCancel = cancel
	g.loopDone = done
	go g.run(ctx, done)
}

// SkipCurrent stops the active playback, letting the loop advance
// asynchronously. Returns the skipped track, or false when nothing plays.
func (g *GuildState) SkipCurrent() (*Track, bool) {
	g.mu.Lock()
	pb := g.playback
	cur := g.current
	g.mu.Unlock()

	if pb == nil || cur == nil {
		return nil, false
	}
	pb.Stop()
	return cur, true
}

// SeekTo clones the current track at pos, puts the clone at the front of the
// queue and forces a restart. The now-playing announcement for the clone is
// suppressed since the user already knows what is playing. When the current
// track exists but is not actively streaming, the clone just waits its turn.
func (g *GuildState) SeekTo(pos time.Duration) error {
	g.mu.Lock()
	cur := g.current
	g.mu.Unlock()

	if cur == nil {
		return ErrNoTrackPlaying
	}

	g.queue.PushFront(cur.CloneAt(pos))

	g.mu.Lock()
	g.suppressAnnounce = true
	pb := g.playback
	g.mu.Unlock()

	if pb != nil {
		pb.Stop()
	}
	return nil
}

// Stop drains the queue, cancels the loop, stops the active playback, cancels
// any outstanding prefetch and releases the voice connection. Safe to call
// when already stopped. A concurrent producer may still race one track into
// the queue; the next enqueue starts a fresh loop and picks it up.
func (g *GuildState) Stop() {
	g.queue.Drain()

	g.mu.Lock()
	cancel := g.loopCancel
	pb := g.playback
	vc := g.vc
	g.loopCancel = nil
	g.playback = nil
	g.vc = nil
	g.current = nil
	g.suppressAnnounce = false
	g.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if pb != nil {
		pb.Stop()
	}
	g.stopPrefetch()
	if vc != nil {
		vc.Disconnect()
	}
}

// --- loop-side state helpers ---

func (g *GuildState) setCurrent(t *Track) {
	g.mu.Lock()
	g.current = t
	g.mu.Unlock()
}

func (g *GuildState) clearCurrent() {
	g.mu.Lock()
	g.current = nil
	g.playback = nil
	g.mu.Unlock()
}

func (g *GuildState) setPlayback(pb Playback) {
	g.mu.Lock()
	g.playback = pb
	g.mu.Unlock()
}

func (g *GuildState) voiceHandle() VoiceHandle {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.vc
}

func (g *GuildState) consumeSuppressAnnounce() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := g.suppressAnnounce
	g.suppressAnnounce = false
	return s
}

func (g *GuildState) announcef(format string, args ...any) {
	g.mu.Lock()
	channelID := g.announceChannel
	g.mu.Unlock()

	if channelID == "" || g.deps.Announcer == nil {
		return
	}
	g.deps.Announcer.Announce(channelID, fmt.Sprintf(format, args...))
}
