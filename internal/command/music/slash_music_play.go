package music

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"voicebox/internal/bot"
	"voicebox/internal/command"
	"voicebox/internal/music/sources"
)

type PlayCommand struct {
	Bot     bot.BotVoice
	Sources *sources.YouTube
}

func (c *PlayCommand) Name() string        { return "music-play" }
func (c *PlayCommand) Description() string { return "Play a link, playlist or search query" }
func (c *PlayCommand) Group() string       { return "music" }
func (c *PlayCommand) Category() string    { return "🎵 Music" }

func (c *PlayCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "input",
				Description: "Link or search query",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "shuffle",
				Description: "Shuffle playlist order before queueing",
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "boost",
				Description: "Apply a bass boost filter",
			},
		},
	}
}

func (c *PlayCommand) Run(ctx interface{}) error {
	slashCtx, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	s := slashCtx.Session
	e := slashCtx.Event

	var input string
	var opts sources.Options
	for _, opt := range e.ApplicationCommandData().Options {
		switch opt.Name {
		case "input":
			input = opt.StringValue()
		case "shuffle":
			opts.Shuffle = opt.BoolValue()
		case "boost":
			opts.BassBoost = opt.BoolValue()
		}
	}

	if input == "" {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Title:       "🎵 Error",
			Description: "Input is required.",
		})
	}

	if err := bot.RespondDeferred(s, e); err != nil {
		return fmt.Errorf("failed to send deferred response: %w", err)
	}

	voiceState, err := c.Bot.FindUserVoiceState(e.GuildID, e.Member.User.ID)
	if err != nil {
		return bot.FollowupEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Title:       "🎵 Voice Error",
			Description: "Join a voice channel first.",
		})
	}

	tracks, err := c.Sources.Tracks(context.Background(), input, opts)
	if err != nil {
		return bot.FollowupEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Title:       "🎵 Error",
			Description: fmt.Sprintf("Failed to resolve input: %v", err),
		})
	}

	if err := c.Bot.Players().Enqueue(e.GuildID, voiceState.ChannelID, e.ChannelID, tracks...); err != nil {
		return bot.FollowupEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Title:       "🎵 Queue Error",
			Description: fmt.Sprintf("%v", err),
		})
	}

	desc := fmt.Sprintf("Added %d track(s) to the queue.", len(tracks))
	if len(tracks) == 1 {
		desc = "Added to the queue: " + tracks[0].Describe()
	}
	return bot.FollowupEmbed(s, e, &discordgo.MessageEmbed{
		Title:       "🎵 Track(s) Added",
		Description: desc,
		Color:       bot.EmbedColor,
	})
}
