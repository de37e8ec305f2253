package music

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"voicebox/internal/bot"
	"voicebox/internal/command"
)

const queueListLimit = 10

type QueueCommand struct {
	Bot bot.BotVoice
}

func (c *QueueCommand) Name() string        { return "music-queue" }
func (c *QueueCommand) Description() string { return "Show the current track and queue" }
func (c *QueueCommand) Group() string       { return "music" }
func (c *QueueCommand) Category() string    { return "🎵 Music" }

func (c *QueueCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *QueueCommand) Run(ctx interface{}) error {
	slashCtx, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	s := slashCtx.Session
	e := slashCtx.Event

	current, upcoming, remaining := c.Bot.Players().ListQueue(e.GuildID, queueListLimit)
	if current == nil && len(upcoming) == 0 {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: "The queue is empty.",
		})
	}

	var sb strings.Builder
	if current != nil {
		sb.WriteString("**Now playing:** " + current.Describe() + "\n")
	}
	if len(upcoming) > 0 {
		sb.WriteString("\n**Up next:**\n")
		for i, tr := range upcoming {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, tr.Describe()))
		}
	}
	if remaining > 0 {
		sb.WriteString(fmt.Sprintf("\n…and %d more.", remaining))
	}

	return bot.RespondEmbed(s, e, &discordgo.MessageEmbed{
		Title:       "🎵 Queue",
		Description: sb.String(),
		Color:       bot.EmbedColor,
	})
}
