package player

import (
	"context"
	"errors"
	"log"
)

// run is the playback loop: pop a track, resolve its stream address if still
// missing, play it, wait for the finish signal, repeat. It exits on idle
// timeout, explicit stop (ctx cancel) or a lost voice connection.
func (g *GuildState) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	idle := g.deps.IdleTimeout
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}

	log.Printf("[Player] Playback loop started | guild=%s", g.guildID)

	for {
		track, err := g.queue.PopWait(ctx, idle)
		if err != nil {
			if errors.Is(err, errPopTimeout) {
				log.Printf("[Player] Queue idle for %s, disconnecting | guild=%s", idle, g.guildID)
				g.teardown()
			}
			return
		}
		g.setCurrent(track)

		if track.StreamURL() == "" {
			title, streamURL, err := g.deps.Resolver.Resolve(ctx, track.SourceURL)
			if err != nil {
				if ctx.Err() != nil {
					g.clearCurrent()
					return
				}
				log.Printf("[Player] Failed to resolve %q: %v | guild=%s", track.DisplayTitle(), err, g.guildID)
				g.announcef(":x: Could not play %s. Skipping.", track.Describe())
				g.clearCurrent()
				continue
			}
			track.SetStreamURL(streamURL)
			track.FillTitle(title)
		}

		vc := g.voiceHandle()
		if vc == nil || !vc.IsConnected() {
			log.Printf("[Player] Voice connection lost, stopping loop | guild=%s", g.guildID)
			g.clearCurrent()
			return
		}

		// The transport calls onFinish from its own goroutine; it only
		// pushes the event, the loop does all state mutation.
		finish := make(chan error, 1)
		pb, err := g.deps.Transport.Play(vc, track.StreamURL(), track.Encode, func(e error) {
			select {
			case finish <- e:
			default:
			}
		})
		if err != nil {
			log.Printf("[Player] Failed to start %q: %v | guild=%s", track.DisplayTitle(), err, g.guildID)
			g.announcef(":x: Could not play %s. Skipping.", track.Describe())
			g.clearCurrent()
			continue
		}
		g.setPlayback(pb)

		if !g.consumeSuppressAnnounce() {
			g.announcef(":musical_note: Now playing: %s", track.Describe())
		}
		if g.deps.History != nil {
			if err := g.deps.History.AddTrack(g.guildID, track.DisplayTitle(), track.SourceURL); err != nil {
				log.Printf("[WARN] Failed to record track history: %v | guild=%s", err, g.guildID)
			}
		}
		g.startPrefetch()

		select {
		case err := <-finish:
			if err != nil {
				log.Printf("[Player] Track %q ended with error: %v | guild=%s", track.DisplayTitle(), err, g.guildID)
			}
			g.clearCurrent()
		case <-ctx.Done():
			pb.Stop()
			g.clearCurrent()
			return
		}
	}
}

// teardown releases the voice connection after an idle timeout. The explicit
// stop path does the same work in Stop; the two differ only in logging.
func (g *GuildState) teardown() {
	g.mu.Lock()
	vc := g.vc
	g.vc = nil
	g.current = nil
	g.playback = nil
	g.mu.Unlock()

	g.stopPrefetch()
	if vc != nil {
		vc.Disconnect()
	}
}

func (g *GuildState) prefetchJob() string {
	return "prefetch:" + g.guildID
}

// startPrefetch resolves the next queued track's stream URL in the
// background so playback can begin without waiting on the resolver. At most
// one prefetch runs per guild; failures are ignored, the loop's lazy
// resolution covers the track later.
func (g *GuildState) startPrefetch() {
	next := g.queue.Peek()
	if next == nil || next.SourceURL == "" || next.StreamURL() != "" {
		return
	}

	err := g.deps.Jobs.StartAsync(g.prefetchJob(), func(ctx context.Context) error {
		title, streamURL, err := g.deps.Resolver.Resolve(ctx, next.SourceURL)
		if err != nil {
			log.Printf("[Player] Prefetch failed for %q: %v | guild=%s", next.DisplayTitle(), err, g.guildID)
			return nil
		}
		next.SetStreamURL(streamURL)
		next.FillTitle(title)
		return nil
	})
	if err != nil {
		// a prefetch for this guild is already in flight
		return
	}
}

func (g *GuildState) stopPrefetch() {
	_ = g.deps.Jobs.Stop(g.prefetchJob())
}
