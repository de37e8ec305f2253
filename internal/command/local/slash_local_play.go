package local

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"voicebox/internal/bot"
	"voicebox/internal/command"
	"voicebox/internal/music/sources"
)

type PlayCommand struct {
	Bot     bot.BotVoice
	Library *sources.Library
}

func (c *PlayCommand) Name() string        { return "local-play" }
func (c *PlayCommand) Description() string { return "Play a file from the local music library" }
func (c *PlayCommand) Group() string       { return "local" }
func (c *PlayCommand) Category() string    { return "📁 Local Files" }

func (c *PlayCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "file",
				Description: "File name from /local-list",
				Required:    true,
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

	var file string
	var opts sources.Options
	for _, opt := range e.ApplicationCommandData().Options {
		switch opt.Name {
		case "file":
			file = opt.StringValue()
		case "boost":
			opts.BassBoost = opt.BoolValue()
		}
	}

	voiceState, err := c.Bot.FindUserVoiceState(e.GuildID, e.Member.User.ID)
	if err != nil {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Title:       "📁 Voice Error",
			Description: "Join a voice channel first.",
		})
	}

	track, err := c.Library.Track(file, opts)
	if errors.Is(err, sources.ErrFileNotFound) {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("No such file: `%s`. Try /local-list.", file),
		})
	}
	if err != nil {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Title:       "📁 Error",
			Description: fmt.Sprintf("%v", err),
		})
	}

	if err := c.Bot.Players().Enqueue(e.GuildID, voiceState.ChannelID, e.ChannelID, track); err != nil {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Title:       "📁 Queue Error",
			Description: fmt.Sprintf("%v", err),
		})
	}

	return bot.RespondEmbed(s, e, &discordgo.MessageEmbed{
		Description: "📁 Queued: " + track.DisplayTitle(),
		Color:       bot.EmbedColor,
	})
}
