package local

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"voicebox/internal/bot"
	"voicebox/internal/command"
	"voicebox/internal/music/sources"
	"voicebox/pkg/util"
)

const uploadWorkers = 3

type UploadCommand struct {
	Library *sources.Library

	client *http.Client
	once   sync.Once
}

func (c *UploadCommand) Name() string        { return "local-upload" }
func (c *UploadCommand) Description() string { return "Add audio files to the local music library" }
func (c *UploadCommand) Group() string       { return "local" }
func (c *UploadCommand) Category() string    { return "📁 Local Files" }

func (c *UploadCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionAttachment,
				Name:        "file",
				Description: "Audio file to add",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionAttachment,
				Name:        "file2",
				Description: "Another audio file",
			},
			{
				Type:        discordgo.ApplicationCommandOptionAttachment,
				Name:        "file3",
				Description: "Another audio file",
			},
		},
	}
}

func (c *UploadCommand) Run(ctx interface{}) error {
	slashCtx, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	s := slashCtx.Session
	e := slashCtx.Event

	data := e.ApplicationCommandData()
	var attachments []*discordgo.MessageAttachment
	for _, opt := range data.Options {
		if opt.Type != discordgo.ApplicationCommandOptionAttachment {
			continue
		}
		if att, ok := data.Resolved.Attachments[opt.Value.(string)]; ok {
			attachments = append(attachments, att)
		}
	}
	if len(attachments) == 0 {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: "Attach at least one audio file.",
		})
	}

	if err := bot.RespondDeferredEphemeral(s, e); err != nil {
		return fmt.Errorf("failed to send deferred response: %w", err)
	}

	c.once.Do(func() {
		c.client = &http.Client{Timeout: 60 * time.Second}
	})

	var mu sync.Mutex
	var saved, failed []string

	err := util.Parallel(attachments, uploadWorkers, func(ctx context.Context, att *discordgo.MessageAttachment) error {
		name, err := c.fetchAndSave(ctx, att)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			failed = append(failed, fmt.Sprintf("`%s`: %v", att.Filename, err))
			return nil
		}
		saved = append(saved, name)
		return nil
	})
	if err != nil {
		return err
	}

	var sb strings.Builder
	if len(saved) > 0 {
		sb.WriteString(fmt.Sprintf("Saved %d file(s):\n", len(saved)))
		for _, name := range saved {
			sb.WriteString(fmt.Sprintf("• `%s`\n", name))
		}
	}
	if len(failed) > 0 {
		sb.WriteString("Failed:\n")
		for _, f := range failed {
			sb.WriteString("• " + f + "\n")
		}
	}

	return bot.FollowupEmbedEphemeral(s, e, &discordgo.MessageEmbed{
		Title:       "📁 Upload",
		Description: sb.String(),
		Color:       bot.EmbedColor,
	})
}

func (c *UploadCommand) fetchAndSave(ctx context.Context, att *discordgo.MessageAttachment) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, att.URL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}

	return c.Library.Save(att.Filename, data)
}
