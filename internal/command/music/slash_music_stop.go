package music

import (
	"github.com/bwmarrin/discordgo"

	"voicebox/internal/bot"
	"voicebox/internal/command"
)

type StopCommand struct {
	Bot bot.BotVoice
}

func (c *StopCommand) Name() string        { return "music-stop" }
func (c *StopCommand) Description() string { return "Stop playback, clear the queue and leave voice" }
func (c *StopCommand) Group() string       { return "music" }
func (c *StopCommand) Category() string    { return "🎵 Music" }

func (c *StopCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *StopCommand) Run(ctx interface{}) error {
	slashCtx, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	s := slashCtx.Session
	e := slashCtx.Event

	c.Bot.Players().Leave(e.GuildID)

	return bot.RespondEmbed(s, e, &discordgo.MessageEmbed{
		Description: "⏹️ Playback stopped. Queue cleared.",
		Color:       bot.EmbedColor,
	})
}
