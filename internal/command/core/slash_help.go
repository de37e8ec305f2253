package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"voicebox/internal/bot"
	"voicebox/internal/command"
	"voicebox/internal/version"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Get a list of available commands" }
func (c *HelpCommand) Group() string       { return "core" }
func (c *HelpCommand) Category() string    { return "🕯️ Information" }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *HelpCommand) Run(ctx interface{}) error {
	slashCtx, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	return bot.RespondEmbedEphemeral(slashCtx.Session, slashCtx.Event, &discordgo.MessageEmbed{
		Title:       version.AppName + " Help",
		Description: buildHelpByCategory(),
		Color:       bot.EmbedColor,
	})
}

func buildHelpByCategory() string {
	categoryMap := make(map[string][]command.Command)
	for _, cmd := range command.AllCommands() {
		categoryMap[cmd.Category()] = append(categoryMap[cmd.Category()], cmd)
	}

	categories := make([]string, 0, len(categoryMap))
	for cat := range categoryMap {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var sb strings.Builder
	for _, cat := range categories {
		sb.WriteString("**" + cat + "**\n")
		for _, cmd := range categoryMap[cat] {
			sb.WriteString(fmt.Sprintf("`/%s` — %s\n", cmd.Name(), cmd.Description()))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
