package stream

import (
	"reflect"
	"testing"
	"time"

	"voicebox/internal/music/player"
)

func TestFfmpegArgsPlainSource(t *testing.T) {
	got := ffmpegArgs("/music/song.mp3", player.EncodeOptions{})
	want := []string{
		"-i", "/music/song.mp3",
		"-f", "s16le",
		"-ar", "48000",
		"-ac", "2",
		"-loglevel", "warning",
		"pipe:1",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestFfmpegArgsRemoteWithSeekAndFilters(t *testing.T) {
	enc := player.EncodeOptions{
		PreInput: "-reconnect 1 -reconnect_streamed 1 -reconnect_delay_max 5",
		Filters:  "volume=0.15,bass=g=20",
		StartAt:  90 * time.Second,
	}
	got := ffmpegArgs("https://example.com/stream", enc)
	want := []string{
		"-ss", "90",
		"-reconnect", "1",
		"-reconnect_streamed", "1",
		"-reconnect_delay_max", "5",
		"-i", "https://example.com/stream",
		"-af", "volume=0.15,bass=g=20",
		"-f", "s16le",
		"-ar", "48000",
		"-ac", "2",
		"-loglevel", "warning",
		"pipe:1",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestFfmpegArgsSeekBeforeInput(t *testing.T) {
	got := ffmpegArgs("src", player.EncodeOptions{StartAt: 5 * time.Second})
	if got[0] != "-ss" || got[1] != "5" {
		t.Errorf("seek flags not first: %v", got[:2])
	}
	for i, a := range got {
		if a == "-i" {
			if i < 2 {
				t.Errorf("-i appears before the seek flags at index %d", i)
			}
			return
		}
	}
	t.Error("no -i flag in args")
}
