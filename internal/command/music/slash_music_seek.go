package music

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"voicebox/internal/bot"
	"voicebox/internal/command"
	"voicebox/internal/music/player"
)

type SeekCommand struct {
	Bot bot.BotVoice
}

func (c *SeekCommand) Name() string        { return "music-seek" }
func (c *SeekCommand) Description() string { return "Restart the current track at a position" }
func (c *SeekCommand) Group() string       { return "music" }
func (c *SeekCommand) Category() string    { return "🎵 Music" }

func (c *SeekCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "position",
				Description: "Position as seconds, mm:ss or hh:mm:ss",
				Required:    true,
			},
		},
	}
}

func (c *SeekCommand) Run(ctx interface{}) error {
	slashCtx, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	s := slashCtx.Session
	e := slashCtx.Event

	var position string
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Name == "position" {
			position = opt.StringValue()
		}
	}

	err := c.Bot.Players().Seek(e.GuildID, position)
	switch {
	case errors.Is(err, player.ErrBadSeekFormat):
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("Can't parse position %q. Use seconds, mm:ss or hh:mm:ss.", position),
		})
	case errors.Is(err, player.ErrNoTrackPlaying):
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: "Nothing is playing.",
		})
	case err != nil:
		return err
	}

	return bot.RespondEmbed(s, e, &discordgo.MessageEmbed{
		Description: fmt.Sprintf("⏩ Seeking to %s.", position),
		Color:       bot.EmbedColor,
	})
}
