package speech

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"voicebox/internal/bot"
	"voicebox/internal/command"
	"voicebox/internal/music/player"
	"voicebox/internal/music/tts"
)

type SayCommand struct {
	Bot    bot.BotVoice
	Engine *tts.Engine
}

func (c *SayCommand) Name() string        { return "speech-say" }
func (c *SayCommand) Description() string { return "Speak a text message in your voice channel" }
func (c *SayCommand) Group() string       { return "speech" }
func (c *SayCommand) Category() string    { return "🗣️ Speech" }

func (c *SayCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "What to say",
				Required:    true,
			},
		},
	}
}

func (c *SayCommand) Run(ctx interface{}) error {
	slashCtx, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	s := slashCtx.Session
	e := slashCtx.Event

	var text string
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Name == "text" {
			text = opt.StringValue()
		}
	}
	if text == "" {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: "Text is required.",
		})
	}

	if err := bot.RespondDeferred(s, e); err != nil {
		return fmt.Errorf("failed to send deferred response: %w", err)
	}

	voiceState, err := c.Bot.FindUserVoiceState(e.GuildID, e.Member.User.ID)
	if err != nil {
		return bot.FollowupEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Title:       "🗣️ Voice Error",
			Description: "Join a voice channel first.",
		})
	}

	path, err := c.Engine.Synthesize(context.Background(), text)
	if err != nil {
		return bot.FollowupEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Title:       "🗣️ Speech Error",
			Description: fmt.Sprintf("Failed to synthesize speech: %v", err),
		})
	}

	track := player.NewResolved(speechTitle(text), path, player.OriginSpeech, player.EncodeOptions{})
	if err := c.Bot.Players().Enqueue(e.GuildID, voiceState.ChannelID, e.ChannelID, track); err != nil {
		return bot.FollowupEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Title:       "🗣️ Queue Error",
			Description: fmt.Sprintf("%v", err),
		})
	}

	return bot.FollowupEmbed(s, e, &discordgo.MessageEmbed{
		Description: "🗣️ Queued: " + track.DisplayTitle(),
		Color:       bot.EmbedColor,
	})
}

// speechTitle builds a short queue label from the spoken text.
func speechTitle(text string) string {
	const maxRunes = 30
	runes := []rune(text)
	if len(runes) > maxRunes {
		text = string(runes[:maxRunes]) + "…"
	}
	return fmt.Sprintf("TTS: '%s'", text)
}
