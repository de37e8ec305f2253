package music

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"voicebox/internal/bot"
	"voicebox/internal/command"
)

type ClearCommand struct {
	Bot bot.BotVoice
}

func (c *ClearCommand) Name() string        { return "music-clear" }
func (c *ClearCommand) Description() string { return "Clear the queue" }
func (c *ClearCommand) Group() string       { return "music" }
func (c *ClearCommand) Category() string    { return "🎵 Music" }

func (c *ClearCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "skip-current",
				Description: "Also stop the track currently playing",
			},
		},
	}
}

func (c *ClearCommand) Run(ctx interface{}) error {
	slashCtx, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	s := slashCtx.Session
	e := slashCtx.Event

	skipCurrent := false
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Name == "skip-current" {
			skipCurrent = opt.BoolValue()
		}
	}

	var desc string
	if skipCurrent {
		cleared, skipped := c.Bot.Players().ClearAndSkip(e.GuildID)
		desc = fmt.Sprintf("🧹 Cleared %d queued track(s).", cleared)
		if skipped != nil {
			desc += " Stopped " + skipped.Describe() + "."
		}
	} else {
		cleared := c.Bot.Players().Clear(e.GuildID)
		desc = fmt.Sprintf("🧹 Cleared %d queued track(s).", cleared)
	}

	return bot.RespondEmbed(s, e, &discordgo.MessageEmbed{
		Description: desc,
		Color:       bot.EmbedColor,
	})
}
