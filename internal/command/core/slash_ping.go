package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"voicebox/internal/bot"
	"voicebox/internal/command"
)

type PingCommand struct{}

func (c *PingCommand) Name() string        { return "ping" }
func (c *PingCommand) Description() string { return "Check bot latency" }
func (c *PingCommand) Group() string       { return "core" }
func (c *PingCommand) Category() string    { return "🛠️ Maintenance" }

func (c *PingCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *PingCommand) Run(ctx interface{}) error {
	slashCtx, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	latency := slashCtx.Session.HeartbeatLatency().Milliseconds()
	return bot.Respond(slashCtx.Session, slashCtx.Event, fmt.Sprintf("🏓 Pong! %dms", latency))
}
