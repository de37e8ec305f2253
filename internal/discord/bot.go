package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"voicebox/internal/command"
	"voicebox/internal/config"
	"voicebox/internal/music/player"
	"voicebox/internal/music/resolve"
	"voicebox/internal/music/sources"
	"voicebox/internal/music/stream"
	"voicebox/internal/music/tts"
	"voicebox/internal/storage"
)

// Bot is a Discord bot
type Bot struct {
	dg      *discordgo.Session
	cfg     *config.Config
	storage *storage.Storage

	players *player.Manager
	sources *sources.YouTube
	library *sources.Library
	speech  *tts.Engine
}

// StartBot starts the Discord bot and blocks until ctx is cancelled.
func StartBot(ctx context.Context, cfg *config.Config, store *storage.Storage) error {
	b := &Bot{
		cfg:     cfg,
		storage: store,
		sources: sources.NewYouTube(),
		library: sources.NewLibrary(cfg.MusicDir, cfg.DefaultVolume),
	}
	if cfg.TTSEndpoint != "" {
		b.speech = tts.New(cfg.TTSEndpoint, cfg.TTSVoice, cfg.SpeechDir)
	}
	if err := b.run(ctx, cfg.DiscordToken); err != nil {
		return fmt.Errorf("bot run error: %w", err)
	}
	return nil
}

// run starts the Discord bot
func (b *Bot) run(ctx context.Context, token string) error {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg
	b.players = player.NewManager(player.Deps{
		Resolver:    resolve.New(b.cfg.YouTubeProxy),
		Transport:   stream.NewTransport(),
		Connector:   stream.NewConnector(dg),
		Announcer:   &channelAnnouncer{dg: dg},
		History:     &trackHistory{store: b.storage},
		IdleTimeout: b.cfg.PlaybackTimeout,
	})

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onGuildCreate)

	b.registerVoiceCommands()

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	b.players.StopAll()
	return nil
}

// configureIntents configures the Discord intents
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsGuildMessages
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	botInfo, err := s.User("@me")
	if err != nil {
		log.Println("[WARN] Error retrieving bot user:", err)
		return
	}

	if b.cfg.InitSlashCommands {
		for _, g := range r.Guilds {
			if err := b.registerCommands(g.ID); err != nil {
				log.Println("[ERR] Error registering slash commands for guild", g.ID, ":", err)
			}
		}
	} else {
		log.Println("[INFO] Registering slash commands skipped")
	}

	log.Printf("[INFO] ✅ Discord bot %v is running.", botInfo.Username)
}

// onGuildCreate is called when the bot joins a guild
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Printf("[INFO] Bot added to guild: %s (%s)", g.Guild.ID, g.Guild.Name)

	if err := b.registerCommands(g.Guild.ID); err != nil {
		log.Printf("[ERR] Failed to register commands for new guild %s: %v", g.Guild.ID, err)
	}
}

// onInteractionCreate dispatches slash commands through the registry
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	cmdName := i.ApplicationCommandData().Name
	cmd, ok := command.GetCommand(cmdName)
	if !ok {
		log.Printf("[WARN] Unknown command: %s\n", cmdName)
		return
	}

	ctx := &command.SlashInteractionContext{
		Session: s,
		Event:   i,
		Storage: b.storage,
	}
	if err := cmd.Run(ctx); err != nil {
		log.Println("[ERR] Error running slash command:", err)
	}
}

// registerCommands registers slash commands for a guild
func (b *Bot) registerCommands(guildID string) error {
	appID := b.dg.State.User.ID
	if appID == "" {
		user, err := b.dg.User("@me")
		if err != nil {
			return err
		}
		appID = user.ID
	}

	var wanted []*discordgo.ApplicationCommand
	for _, cmd := range command.AllCommands() {
		if slash, ok := cmd.(command.SlashProvider); ok {
			if def := slash.SlashDefinition(); def != nil {
				if def.Type == 0 {
					def.Type = discordgo.ChatApplicationCommand
				}
				wanted = append(wanted, def)
			}
		}
	}

	if _, err := b.dg.ApplicationCommandBulkOverwrite(appID, guildID, wanted); err != nil {
		return fmt.Errorf("bulk overwrite failed: %w", err)
	}
	log.Printf("[INFO] [%s] Registered %d slash commands", guildID, len(wanted))
	return nil
}
