package resolve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	youtube "github.com/kkdai/youtube/v2"
)

// kkdaiExtractor resolves stream URLs with the in-process youtube client.
// Slower to break than yt-dlp when the site changes, but no subprocess.
type kkdaiExtractor struct {
	client *youtube.Client
}

func newKkdaiExtractor(proxyURL string) *kkdaiExtractor {
	return &kkdaiExtractor{
		client: &youtube.Client{
			HTTPClient: &http.Client{
				Timeout:   15 * time.Second,
				Transport: proxyTransport(proxyURL),
			},
		},
	}
}

func (e *kkdaiExtractor) extract(ctx context.Context, locator string) (title, streamURL string, err error) {
	videoID, err := extractVideoID(locator)
	if err != nil {
		return "", "", err
	}

	video, err := e.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return "", "", fmt.Errorf("youtube client error: %w", err)
	}

	formats := video.Formats.WithAudioChannels()
	if len(formats) == 0 {
		return "", "", errors.New("no audio formats found for video")
	}

	link, err := e.client.GetStreamURLContext(ctx, video, &formats[0])
	if err != nil {
		return "", "", fmt.Errorf("get stream URL error: %w", err)
	}

	return video.Title, link, nil
}

func extractVideoID(url string) (string, error) {
	switch {
	case strings.Contains(url, "youtu.be/"):
		parts := strings.Split(url, "youtu.be/")
		if len(parts) != 2 {
			return "", errors.New("invalid YouTube URL format")
		}
		return strings.Split(parts[1], "?")[0], nil

	case strings.Contains(url, "youtube.com/watch?v="):
		parts := strings.Split(url, "v=")
		if len(parts) != 2 {
			return "", errors.New("invalid YouTube URL format")
		}
		return strings.Split(parts[1], "&")[0], nil

	default:
		return "", errors.New("unsupported URL format")
	}
}
