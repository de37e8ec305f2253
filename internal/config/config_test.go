package config

import (
	"os"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if cfg.DiscordToken != "test-token" {
		t.Errorf("DiscordToken = %q", cfg.DiscordToken)
	}
	if cfg.StoragePath != "datastore.json" {
		t.Errorf("StoragePath = %q, want datastore.json", cfg.StoragePath)
	}
	if cfg.PlaybackTimeout != 300*time.Second {
		t.Errorf("PlaybackTimeout = %s, want 300s", cfg.PlaybackTimeout)
	}
	if cfg.DefaultVolume != 0.15 {
		t.Errorf("DefaultVolume = %v, want 0.15", cfg.DefaultVolume)
	}
	if cfg.TTSVoice != "Brian" {
		t.Errorf("TTSVoice = %q, want Brian", cfg.TTSVoice)
	}
	if !cfg.InitSlashCommands {
		t.Error("InitSlashCommands = false, want true")
	}
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("PLAYBACK_TIMEOUT", "10s")
	t.Setenv("DEFAULT_VOLUME", "0.5")
	t.Setenv("MUSIC_DIR", "/srv/music")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if cfg.PlaybackTimeout != 10*time.Second {
		t.Errorf("PlaybackTimeout = %s, want 10s", cfg.PlaybackTimeout)
	}
	if cfg.DefaultVolume != 0.5 {
		t.Errorf("DefaultVolume = %v, want 0.5", cfg.DefaultVolume)
	}
	if cfg.MusicDir != "/srv/music" {
		t.Errorf("MusicDir = %q, want /srv/music", cfg.MusicDir)
	}
}

func TestNewMissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "placeholder") // registers restore
	os.Unsetenv("DISCORD_TOKEN")

	if _, err := New(); err == nil {
		t.Fatal("New succeeded without DISCORD_TOKEN")
	}
}
