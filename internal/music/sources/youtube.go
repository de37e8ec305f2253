// Package sources turns command input into playable tracks: YouTube links,
// title searches and playlists, plus the local music library.
package sources

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"regexp"
	"strings"

	"voicebox/internal/music/player"
)

// remotePreInput carries the ffmpeg reconnect flags every remote stream
// gets; filter chains are appended per request.
const remotePreInput = "-reconnect 1 -reconnect_streamed 1 -reconnect_delay_max 5"

// bassBoostFilter is appended to the filter chain by the boost variants.
const bassBoostFilter = "bass=g=20"

var (
	ErrNoResults = errors.New("could not find any tracks for that query")

	youtubeURLPattern = regexp.MustCompile(`(?:https?:\/\/)?(?:www\.|music\.)?(youtube\.com|youtu\.be)\/\S+`)
)

// Options tweak how tracks are built from input.
type Options struct {
	Shuffle   bool
	BassBoost bool
}

// YouTube resolves user input (watch URL, playlist URL or free-text search)
// into remote tracks. The actual stream URL stays unresolved; the playback
// engine fetches it lazily.
type YouTube struct {
	search *searchClient
}

func NewYouTube() *YouTube {
	return &YouTube{search: newSearchClient()}
}

// Tracks builds the track list for the given input.
func (y *YouTube) Tracks(ctx context.Context, input string, opts Options) ([]*player.Track, error) {
	input = strings.TrimSpace(input)
	enc := player.EncodeOptions{PreInput: remotePreInput}
	if opts.BassBoost {
		enc.Filters = bassBoostFilter
	}

	switch {
	case isPlaylistURL(input):
		urls, err := y.search.ExtractPlaylistVideos(ctx, input)
		if err != nil {
			return nil, err
		}
		if opts.Shuffle {
			rand.Shuffle(len(urls), func(i, j int) { urls[i], urls[j] = urls[j], urls[i] })
		}
		tracks := make([]*player.Track, 0, len(urls))
		for _, u := range urls {
			tracks = append(tracks, player.NewRemote("", u, enc))
		}
		return tracks, nil

	case isVideoURL(input):
		return []*player.Track{player.NewRemote("", cleanVideoURL(input), enc)}, nil

	case isURL(input):
		return nil, fmt.Errorf("invalid YouTube URL format")

	default:
		videoURL, err := y.search.FirstVideoURL(ctx, input)
		if err != nil {
			return nil, ErrNoResults
		}
		return []*player.Track{player.NewRemote(input, videoURL, enc)}, nil
	}
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func isVideoURL(s string) bool {
	return strings.Contains(s, "youtube.com/watch?v=") ||
		strings.Contains(s, "music.youtube.com/watch?v=") ||
		strings.Contains(s, "youtu.be/")
}

func isPlaylistURL(s string) bool {
	return strings.Contains(s, "playlist?list=")
}

// IsYouTubeURL reports whether the input looks like any YouTube link.
func IsYouTubeURL(input string) bool {
	return youtubeURLPattern.MatchString(input)
}

// cleanVideoURL strips tracking and timestamp parameters, keeping only the
// video ID.
func cleanVideoURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	switch host := u.Hostname(); host {
	case "youtu.be":
		vid := strings.Trim(u.Path, "/")
		if vid == "" {
			return raw
		}
		return fmt.Sprintf("https://youtu.be/%s", vid)

	case "www.youtube.com", "youtube.com", "music.youtube.com":
		if u.Path == "/watch" {
			if vid := u.Query().Get("v"); vid != "" {
				return fmt.Sprintf("https://%s/watch?v=%s", host, vid)
			}
		}
		return raw

	default:
		return raw
	}
}
