package discord

import (
	"voicebox/internal/command"
	"voicebox/internal/command/core"
	"voicebox/internal/command/local"
	"voicebox/internal/command/music"
	"voicebox/internal/command/speech"
)

// registerVoiceCommands wires every slash command to this bot instance.
func (b *Bot) registerVoiceCommands() {
	middlewares := []command.Middleware{
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	}

	command.RegisterCommand(&music.PlayCommand{Bot: b, Sources: b.sources}, middlewares...)
	command.RegisterCommand(&music.SkipCommand{Bot: b}, middlewares...)
	command.RegisterCommand(&music.QueueCommand{Bot: b}, middlewares...)
	command.RegisterCommand(&music.ClearCommand{Bot: b}, middlewares...)
	command.RegisterCommand(&music.SeekCommand{Bot: b}, middlewares...)
	command.RegisterCommand(&music.StopCommand{Bot: b}, middlewares...)

	command.RegisterCommand(&local.PlayCommand{Bot: b, Library: b.library}, middlewares...)
	command.RegisterCommand(&local.ListCommand{Library: b.library}, middlewares...)
	command.RegisterCommand(&local.UploadCommand{Library: b.library}, middlewares...)

	if b.speech != nil {
		command.RegisterCommand(&speech.SayCommand{Bot: b, Engine: b.speech}, middlewares...)
	}

	command.RegisterCommand(&core.PingCommand{}, middlewares...)
	command.RegisterCommand(&core.HelpCommand{}, middlewares...)
}
