package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the bot reads from the environment.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"datastore.json"`

	// PlaybackTimeout is how long a guild's playback loop waits on an empty
	// queue before disconnecting from voice.
	PlaybackTimeout time.Duration `env:"PLAYBACK_TIMEOUT" envDefault:"300s"`

	// DefaultVolume is applied as an ffmpeg volume filter to local files.
	DefaultVolume float64 `env:"DEFAULT_VOLUME" envDefault:"0.15"`

	MusicDir  string `env:"MUSIC_DIR" envDefault:"music"`
	SpeechDir string `env:"SPEECH_DIR" envDefault:"tts"`

	// TTSEndpoint is the HTTP speech-synthesis service. Speech commands are
	// disabled when empty.
	TTSEndpoint string `env:"TTS_ENDPOINT"`
	TTSVoice    string `env:"TTS_VOICE" envDefault:"Brian"`

	// YouTubeProxy optionally routes stream-URL extraction through a proxy
	// (http, socks4 or socks5 URL).
	YouTubeProxy string `env:"YOUTUBE_PROXY"`

	InitSlashCommands bool `env:"INIT_SLASH_COMMANDS" envDefault:"true"`
}

// New loads .env (if present) and parses the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
