package sources

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"voicebox/internal/music/player"
)

var allowedExtensions = []string{
	".mp3", ".wav", ".flac", ".m4a", ".ogg", ".opus", ".aac",
}

var ErrFileNotFound = errors.New("file not found in music directory")

// Library is the local music directory: listing, safe path resolution and
// attachment uploads.
type Library struct {
	dir    string
	volume float64
}

// NewLibrary creates a Library rooted at dir. volume is applied as an ffmpeg
// volume filter to every local track.
func NewLibrary(dir string, volume float64) *Library {
	return &Library{dir: dir, volume: volume}
}

// Track builds a playable track for the named file.
func (l *Library) Track(filename string, opts Options) (*player.Track, error) {
	path, err := l.resolvePath(filename)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, ErrFileNotFound
	}

	filters := []string{fmt.Sprintf("volume=%.2f", l.volume)}
	if opts.BassBoost {
		filters = append(filters, bassBoostFilter)
	}

	enc := player.EncodeOptions{Filters: strings.Join(filters, ",")}
	return player.NewResolved(filepath.Base(path), path, player.OriginLocal, enc), nil
}

// List returns the audio files in the library.
func (l *Library) List() []string {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isAudioFile(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	return files
}

// Save writes uploaded data into the library, deduping the name when a file
// with the same name already exists. Returns the name used.
func (l *Library) Save(filename string, data []byte) (string, error) {
	if !isAudioFile(filename) {
		return "", fmt.Errorf("not an audio file: %s", filename)
	}
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", err
	}

	path, err := l.resolvePath(filename)
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ext := filepath.Ext(path)
	candidate := path
	for counter := 1; ; counter++ {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			break
		}
		candidate = filepath.Join(l.dir, fmt.Sprintf("%s (%d)%s", base, counter, ext))
	}

	if err := os.WriteFile(candidate, data, 0o644); err != nil {
		return "", err
	}
	return filepath.Base(candidate), nil
}

// resolvePath maps a user-supplied name to a path inside the library,
// rejecting traversal attempts.
func (l *Library) resolvePath(filename string) (string, error) {
	safeName := filepath.Base(filename)
	absDir, err := filepath.Abs(l.dir)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(absDir, safeName)
	if !strings.HasPrefix(fullPath, absDir+string(os.PathSeparator)) {
		return "", errors.New("invalid path")
	}
	return fullPath, nil
}

func isAudioFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	guessed := mime.TypeByExtension(ext)
	return strings.HasPrefix(guessed, "audio/")
}
