package sources

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newFakeYouTube(t *testing.T, handler http.HandlerFunc) (*searchClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s := newSearchClient()
	s.baseURL = srv.URL
	return s, srv
}

func TestFirstVideoURL(t *testing.T) {
	s, srv := newFakeYouTube(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search_query"); got != "never gonna" {
			t.Errorf("search_query = %q, want %q", got, "never gonna")
		}
		w.Write([]byte(`garbage {"url":"/watch?v=dQw4w9WgXcQ"} more garbage`))
	})

	got, err := s.FirstVideoURL(context.Background(), "never gonna")
	if err != nil {
		t.Fatalf("FirstVideoURL: %v", err)
	}
	if want := srv.URL + "/watch?v=dQw4w9WgXcQ"; got != want {
		t.Errorf("FirstVideoURL = %q, want %q", got, want)
	}
}

func TestFirstVideoURLNoMatch(t *testing.T) {
	s, _ := newFakeYouTube(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("nothing of interest here"))
	})

	_, err := s.FirstVideoURL(context.Background(), "query")
	if !errors.Is(err, ErrNoVideoMatch) {
		t.Fatalf("error = %v, want ErrNoVideoMatch", err)
	}
}

func TestExtractPlaylistVideosDedups(t *testing.T) {
	body := `{"url":"/watch?v=aaaaaaaaaaa"}` +
		`{"url":"/watch?v=bbbbbbbbbbb"}` +
		`{"url":"/watch?v=aaaaaaaaaaa"}`
	s, srv := newFakeYouTube(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})

	urls, err := s.ExtractPlaylistVideos(context.Background(), srv.URL+"/playlist?list=PL123")
	if err != nil {
		t.Fatalf("ExtractPlaylistVideos: %v", err)
	}

	want := []string{
		"https://www.youtube.com/watch?v=aaaaaaaaaaa",
		"https://www.youtube.com/watch?v=bbbbbbbbbbb",
	}
	if len(urls) != len(want) {
		t.Fatalf("got %d urls %v, want %d", len(urls), urls, len(want))
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Errorf("url %d = %q, want %q", i, urls[i], want[i])
		}
	}
}

func TestExtractPlaylistVideosEmpty(t *testing.T) {
	s, srv := newFakeYouTube(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("no videos here"))
	})

	_, err := s.ExtractPlaylistVideos(context.Background(), srv.URL+"/playlist?list=PL123")
	if !errors.Is(err, ErrEmptyPlaylist) {
		t.Fatalf("error = %v, want ErrEmptyPlaylist", err)
	}
}

func TestRemoveDuplicatesKeepsOrder(t *testing.T) {
	in := []string{"a", "b", "a", "c", "b"}
	got := removeDuplicates(in)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("removeDuplicates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %q, want %q", i, got[i], want[i])
		}
	}
}
