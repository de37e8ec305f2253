package command

import (
	"voicebox/internal/storage"

	"github.com/bwmarrin/discordgo"
)

type Command interface {
	Name() string
	Description() string
	Group() string
	Category() string
	Run(ctx interface{}) error
}

type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

type SlashInteractionContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Storage *storage.Storage
}
