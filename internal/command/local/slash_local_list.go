package local

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"voicebox/internal/bot"
	"voicebox/internal/command"
	"voicebox/internal/music/sources"
)

type ListCommand struct {
	Library *sources.Library
}

func (c *ListCommand) Name() string        { return "local-list" }
func (c *ListCommand) Description() string { return "List files in the local music library" }
func (c *ListCommand) Group() string       { return "local" }
func (c *ListCommand) Category() string    { return "📁 Local Files" }

func (c *ListCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *ListCommand) Run(ctx interface{}) error {
	slashCtx, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	s := slashCtx.Session
	e := slashCtx.Event

	files := c.Library.List()
	if len(files) == 0 {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: "The library is empty. Add files with /local-upload.",
		})
	}

	var sb strings.Builder
	for _, f := range files {
		sb.WriteString(fmt.Sprintf("• `%s`\n", f))
	}

	return bot.RespondEmbed(s, e, &discordgo.MessageEmbed{
		Title:       "📁 Local Library",
		Description: sb.String(),
		Color:       bot.EmbedColor,
	})
}
