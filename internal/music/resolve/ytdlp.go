package resolve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ytdlpExtractor shells out to yt-dlp for metadata and the direct audio URL.
type ytdlpExtractor struct{}

func (e *ytdlpExtractor) extract(ctx context.Context, locator string) (title, streamURL string, err error) {
	cmd := exec.CommandContext(ctx, "yt-dlp", "-j", "-f", "bestaudio", locator)
	output, err := cmd.Output()
	if err != nil {
		return "", "", fmt.Errorf("yt-dlp error: %w", err)
	}

	type format struct {
		URL string `json:"url"`
	}
	type ytdlpInfo struct {
		Title   string   `json:"title"`
		URL     string   `json:"url"`
		Formats []format `json:"formats"`
	}

	var info ytdlpInfo
	if err := json.Unmarshal(output, &info); err != nil {
		return "", "", fmt.Errorf("json unmarshal error: %w", err)
	}

	link := strings.TrimSpace(info.URL)
	if link == "" && len(info.Formats) > 0 {
		link = strings.TrimSpace(info.Formats[0].URL)
	}
	if link == "" {
		return "", "", errors.New("empty URL returned from yt-dlp")
	}

	return info.Title, link, nil
}
