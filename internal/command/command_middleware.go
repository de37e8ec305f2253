package command

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"voicebox/internal/bot"
)

type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx interface{}) error
}

func (w *wrappedCommand) Run(ctx interface{}) error {
	return w.wrap(ctx)
}

// WithGuildOnly rejects invocations from outside a guild.
func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				if v, ok := ctx.(*SlashInteractionContext); ok && v.Event.GuildID == "" {
					return bot.RespondEphemeral(v.Session, v.Event, "You must be in a guild to use this command.")
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithCommandLogger records command usage into guild history.
func WithCommandLogger() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				err := cmd.Run(ctx)

				if v, ok := ctx.(*SlashInteractionContext); ok && v.Storage != nil {
					e := v.Event
					user := resolveUser(v.Session, e)
					param := firstStringOption(e)
					if logErr := bot.LogCommand(v.Session, v.Storage, e.GuildID, e.ChannelID, user.ID, user.Username, cmd.Name(), param); logErr != nil {
						log.Printf("[WARN] Failed to log command /%s: %v", cmd.Name(), logErr)
					}
				}
				return err
			},
		}
	}
}

// resolveUser safely retrieves the user object from an InteractionCreate event
func resolveUser(s *discordgo.Session, e *discordgo.InteractionCreate) *discordgo.User {
	if e.Member != nil && e.Member.User != nil {
		return e.Member.User
	}
	if e.User != nil {
		if u, err := s.User(e.User.ID); err == nil {
			return u
		}
		return e.User
	}
	return &discordgo.User{ID: "unknown", Username: "Unknown"}
}

func firstStringOption(e *discordgo.InteractionCreate) string {
	if e.Type != discordgo.InteractionApplicationCommand {
		return ""
	}
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}
