package discord

import (
	"fmt"
	"log"

	"voicebox/internal/bot"
	"voicebox/internal/music/player"
	"voicebox/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// Players returns the per-guild playback manager.
func (b *Bot) Players() *player.Manager {
	return b.players
}

// FindUserVoiceState finds the voice state of a user
func (b *Bot) FindUserVoiceState(guildID, userID string) (*bot.VoiceState, error) {
	guild, err := b.dg.State.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving guild: %w", err)
	}

	for _, vs := range guild.VoiceStates {
		if vs.UserID == userID {
			return &bot.VoiceState{
				ChannelID: vs.ChannelID,
				UserID:    vs.UserID,
			}, nil
		}
	}
	return nil, fmt.Errorf("user not in any voice channel")
}

// channelAnnouncer posts playback events into the text channel a command
// came from.
type channelAnnouncer struct {
	dg *discordgo.Session
}

func (a *channelAnnouncer) Announce(channelID, message string) {
	if channelID == "" {
		return
	}
	if _, err := a.dg.ChannelMessageSend(channelID, message); err != nil {
		log.Printf("[WARN] Failed to announce in channel %s: %v", channelID, err)
	}
}

// trackHistory records played tracks into guild storage.
type trackHistory struct {
	store *storage.Storage
}

func (h *trackHistory) AddTrack(guildID, title, sourceURL string) error {
	return h.store.AddTrackToHistory(guildID, title, sourceURL)
}
