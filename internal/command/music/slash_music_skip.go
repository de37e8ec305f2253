package music

import (
	"errors"

	"github.com/bwmarrin/discordgo"

	"voicebox/internal/bot"
	"voicebox/internal/command"
	"voicebox/internal/music/player"
)

type SkipCommand struct {
	Bot bot.BotVoice
}

func (c *SkipCommand) Name() string        { return "music-skip" }
func (c *SkipCommand) Description() string { return "Skip the current track" }
func (c *SkipCommand) Group() string       { return "music" }
func (c *SkipCommand) Category() string    { return "🎵 Music" }

func (c *SkipCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *SkipCommand) Run(ctx interface{}) error {
	slashCtx, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	s := slashCtx.Session
	e := slashCtx.Event

	track, err := c.Bot.Players().Skip(e.GuildID)
	if errors.Is(err, player.ErrNoTrackPlaying) {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: "Nothing is playing.",
		})
	}
	if err != nil {
		return err
	}

	return bot.RespondEmbed(s, e, &discordgo.MessageEmbed{
		Description: "⏭️ Skipped " + track.Describe(),
		Color:       bot.EmbedColor,
	})
}
