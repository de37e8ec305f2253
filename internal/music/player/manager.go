package player

import (
	"log"
	"sync"

	"voicebox/pkg/jobmgr"
)

// Manager is the process-wide registry of guild playback states and the only
// entry point command handlers use to affect playback.
type Manager struct {
	mu     sync.RWMutex
	states map[string]*GuildState
	deps   Deps
}

func NewManager(deps Deps) *Manager {
	if deps.IdleTimeout <= 0 {
		deps.IdleTimeout = DefaultIdleTimeout
	}
	if deps.Jobs == nil {
		deps.Jobs = jobmgr.NewManager(nil)
	}
	return &Manager{
		states: make(map[string]*GuildState),
		deps:   deps,
	}
}

// State returns the guild's playback state, creating it on first use.
func (m *Manager) State(guildID string) *GuildState {
	m.mu.RLock()
	st, ok := m.states[guildID]
	m.mu.RUnlock()
	if ok {
		return st
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok := m.states[guildID]; ok {
		return st
	}
	st = newGuildState(guildID, &m.deps)
	m.states[guildID] = st
	return st
}

// Enqueue connects to the requester's voice channel if needed, appends the
// tracks and starts the playback loop if it is not already running.
func (m *Manager) Enqueue(guildID, voiceChannelID, announceChannelID string, tracks ...*Track) error {
	if len(tracks) == 0 {
		return ErrNoTracksInQueue
	}

	st := m.State(guildID)
	if err := st.EnsureVoice(voiceChannelID); err != nil {
		return err
	}

	st.Queue().Push(tracks...)
	log.Printf("[Player] Added %d track(s) to queue | guild=%s queue=%d", len(tracks), guildID, st.Queue().Len())
	st.StartLoop(announceChannelID)
	return nil
}

// Skip stops the active track; the loop advances asynchronously.
func (m *Manager) Skip(guildID string) (*Track, error) {
	tr, ok := m.State(guildID).SkipCurrent()
	if !ok {
		return nil, ErrNoTrackPlaying
	}
	log.Printf("[Player] Skipping %q | guild=%s", tr.DisplayTitle(), guildID)
	return tr, nil
}

// Clear drains the queue without touching the current track. Returns how
// many tracks were discarded.
func (m *Manager) Clear(guildID string) int {
	n := m.State(guildID).Queue().Drain()
	if n > 0 {
		log.Printf("[Player] Cleared %d queued track(s) | guild=%s", n, guildID)
	}
	return n
}

// ClearAndSkip drains the queue and stops the current track in one go.
func (m *Manager) ClearAndSkip(guildID string) (cleared int, skipped *Track) {
	st := m.State(guildID)
	cleared = st.Queue().Drain()
	skipped, _ = st.SkipCurrent()
	log.Printf("[Player] Clear-and-skip: cleared=%d skipped=%v | guild=%s", cleared, skipped != nil, guildID)
	return cleared, skipped
}

// Seek restarts the current track at the parsed position by front-inserting
// a clone and stopping the active playback. ErrBadSeekFormat on unparseable
// input, ErrNoTrackPlaying when the guild is idle.
func (m *Manager) Seek(guildID, spec string) error {
	pos, err := ParsePosition(spec)
	if err != nil {
		return err
	}
	if err := m.State(guildID).SeekTo(pos); err != nil {
		return err
	}
	log.Printf("[Player] Seek to %s | guild=%s", pos, guildID)
	return nil
}

// Stop halts the guild's playback entirely: queue drained, loop cancelled,
// voice released. The registry entry stays; Leave evicts it.
func (m *Manager) Stop(guildID string) {
	m.mu.RLock()
	st, ok := m.states[guildID]
	m.mu.RUnlock()
	if !ok {
		return
	}
	st.Stop()
}

// Leave stops playback and removes the guild from the registry.
func (m *Manager) Leave(guildID string) {
	m.mu.Lock()
	st, ok := m.states[guildID]
	delete(m.states, guildID)
	m.mu.Unlock()
	if ok {
		st.Stop()
		log.Printf("[Player] Left guild and dropped playback state | guild=%s", guildID)
	}
}

// ListQueue returns the current track, up to limit upcoming tracks and the
// count of tracks beyond that.
func (m *Manager) ListQueue(guildID string, limit int) (current *Track, upcoming []*Track, remaining int) {
	st := m.State(guildID)
	current = st.Current()
	pending := st.Queue().Snapshot()
	if limit <= 0 || limit > len(pending) {
		limit = len(pending)
	}
	return current, pending[:limit], len(pending) - limit
}

// StopAll shuts down every guild's playback. Used on process shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	states := make([]*GuildState, 0, len(m.states))
	for _, st := range m.states {
		states = append(states, st)
	}
	m.states = make(map[string]*GuildState)
	m.mu.Unlock()

	for _, st := range states {
		st.Stop()
	}
}
