// Package resolve turns a watch-page URL into a playable stream address.
// Stream URLs from media hosts expire, so tracks carry their watch URL and
// ask this package for a fresh address just before playback.
package resolve

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/time/rate"

	"voicebox/pkg/retrylimit"
)

// ResolutionError means the locator cannot be turned into a playable
// address: deleted or private media, a malformed URL, or the upstream being
// unreachable. The playback loop treats it as skip-and-continue.
type ResolutionError struct {
	Locator string
	Err     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %q: %v", e.Locator, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Resolver extracts stream URLs, yt-dlp first with an in-process youtube
// client as fallback. Safe for concurrent use; the playback loop and the
// background prefetch share one instance.
type Resolver struct {
	ytdlp   *ytdlpExtractor
	kkdai   *kkdaiExtractor
	limiter *retrylimit.AdaptiveLimiter
}

// New creates a Resolver. proxyURL optionally routes the in-process client
// through an http, socks4 or socks5 proxy; empty means direct.
func New(proxyURL string) *Resolver {
	return &Resolver{
		ytdlp:   &ytdlpExtractor{},
		kkdai:   newKkdaiExtractor(proxyURL),
		limiter: retrylimit.NewAdaptiveLimiter(2, 1, rate.Limit(10), 1, 0.5),
	}
}

// Resolve returns the track title and a playable stream URL for the given
// watch-page URL. Both extraction paths are tried before giving up.
func (r *Resolver) Resolve(ctx context.Context, locator string) (title, streamURL string, err error) {
	if locator == "" {
		return "", "", &ResolutionError{Locator: locator, Err: fmt.Errorf("empty locator")}
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return "", "", err
	}

	title, streamURL, ytErr := r.ytdlp.extract(ctx, locator)
	if ytErr == nil {
		r.limiter.Success()
		return title, streamURL, nil
	}
	if ctx.Err() != nil {
		return "", "", ctx.Err()
	}
	log.Printf("[Resolve] yt-dlp failed for %s: %v, trying fallback", locator, ytErr)

	title, streamURL, kkErr := r.kkdai.extract(ctx, locator)
	if kkErr == nil {
		r.limiter.Success()
		return title, streamURL, nil
	}
	if ctx.Err() != nil {
		return "", "", ctx.Err()
	}

	r.limiter.RateLimited()
	return "", "", &ResolutionError{
		Locator: locator,
		Err:     fmt.Errorf("yt-dlp: %v; fallback: %v", ytErr, kkErr),
	}
}
