package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"golang.org/x/time/rate"

	"voicebox/pkg/retrylimit"
)

var (
	videoPattern    = regexp.MustCompile(`"url":"/watch\?v=([a-zA-Z0-9_-]+)(?:\\u0026list=([a-zA-Z0-9_-]+))?[^"]*`)
	watchURLPattern = regexp.MustCompile(`"url":"/watch\?v=([a-zA-Z0-9_-]{11})`)

	ErrNoVideoMatch  = errors.New("no video found for the given title")
	ErrEmptyPlaylist = errors.New("no video URLs found in the playlist")
)

// searchClient scrapes YouTube result and playlist pages. No API key
// required, which is the whole point.
type searchClient struct {
	baseURL string
	client  *http.Client
	limiter *retrylimit.AdaptiveLimiter
}

func newSearchClient() *searchClient {
	return &searchClient{
		baseURL: "https://www.youtube.com",
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: retrylimit.NewAdaptiveLimiter(3, 1, rate.Limit(10), 1, 0.5),
	}
}

// FirstVideoURL returns the watch URL of the first search result for query.
func (s *searchClient) FirstVideoURL(ctx context.Context, query string) (string, error) {
	searchURL := fmt.Sprintf("%s/results?search_query=%s", s.baseURL, url.QueryEscape(query))

	var body []byte
	err := retrylimit.WithRetryMax(ctx, func() error {
		var err error
		body, err = s.fetch(ctx, searchURL)
		return err
	}, s.limiter, 3)
	if err != nil {
		return "", err
	}

	matches := videoPattern.FindSubmatch(body)
	if len(matches) > 1 {
		resultURL := fmt.Sprintf("%s/watch?v=%s", s.baseURL, matches[1])
		if len(matches[2]) > 0 {
			resultURL += "&list=" + string(matches[2])
		}
		return resultURL, nil
	}

	return "", ErrNoVideoMatch
}

// ExtractPlaylistVideos returns the deduplicated watch URLs of a playlist
// page.
func (s *searchClient) ExtractPlaylistVideos(ctx context.Context, playlistURL string) ([]string, error) {
	var body []byte
	err := retrylimit.WithRetryMax(ctx, func() error {
		var err error
		body, err = s.fetch(ctx, playlistURL)
		return err
	}, s.limiter, 3)
	if err != nil {
		return nil, err
	}

	matches := watchURLPattern.FindAllSubmatch(body, -1)
	var urls []string
	for _, m := range matches {
		if len(m) > 1 {
			urls = append(urls, fmt.Sprintf("https://www.youtube.com/watch?v=%s", m[1]))
		}
	}

	if len(urls) == 0 {
		return nil, ErrEmptyPlaylist
	}

	return removeDuplicates(urls), nil
}

func (s *searchClient) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &retrylimit.FatalError{Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("YouTube fetch failed with status code %v", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func removeDuplicates(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	var result []string
	for _, u := range input {
		if _, exists := seen[u]; !exists {
			seen[u] = struct{}{}
			result = append(result, u)
		}
	}
	return result
}
