package player

import (
	"context"
	"time"

	"voicebox/pkg/jobmgr"
)

// The engine talks to Discord and the media world only through these
// interfaces so the loop can be driven by fakes in tests.

// Resolver turns a watch-page URL into a track title and a playable stream
// address. May be slow (network I/O) and must be safe for concurrent use;
// the loop's lazy resolution and the background prefetch both call it.
type Resolver interface {
	Resolve(ctx context.Context, locator string) (title, streamURL string, err error)
}

// VoiceHandle is a live connection to one voice channel.
type VoiceHandle interface {
	IsConnected() bool
	Disconnect() error
}

// Connector joins voice channels.
type Connector interface {
	Join(guildID, channelID string) (VoiceHandle, error)
}

// Playback is one in-flight track. Stop is cooperative and idempotent: it
// ends the current track only and causes the transport to deliver its finish
// callback.
type Playback interface {
	Stop()
}

// Transport opens a stream for the given address and encode options and
// plays it into the voice connection. onFinish is called exactly once, from
// the transport's own goroutine, when playback ends for any reason; it must
// not be assumed to run on the loop goroutine.
type Transport interface {
	Play(h VoiceHandle, source string, enc EncodeOptions, onFinish func(error)) (Playback, error)
}

// Announcer delivers user-facing playback messages to a text channel.
type Announcer interface {
	Announce(channelID, message string)
}

// History records tracks that actually started playing. Optional.
type History interface {
	AddTrack(guildID, title, sourceURL string) error
}

// Deps wires the engine to its collaborators.
type Deps struct {
	Resolver  Resolver
	Transport Transport
	Connector Connector
	Announcer Announcer
	History   History

	// IdleTimeout is how long a loop waits on an empty queue before
	// disconnecting. Zero means DefaultIdleTimeout.
	IdleTimeout time.Duration

	// Jobs tracks prefetch tasks; a default manager is created when nil.
	Jobs *jobmgr.Manager
}

const DefaultIdleTimeout = 300 * time.Second
