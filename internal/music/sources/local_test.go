package sources

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	return NewLibrary(filepath.Join(t.TempDir(), "music"), 0.15)
}

func TestLibrarySaveAndList(t *testing.T) {
	lib := newTestLibrary(t)

	name, err := lib.Save("song.mp3", []byte("data"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if name != "song.mp3" {
		t.Errorf("saved as %q, want song.mp3", name)
	}

	files := lib.List()
	if len(files) != 1 || files[0] != "song.mp3" {
		t.Errorf("List = %v, want [song.mp3]", files)
	}
}

func TestLibrarySaveDedupsNames(t *testing.T) {
	lib := newTestLibrary(t)

	if _, err := lib.Save("song.mp3", []byte("one")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	name, err := lib.Save("song.mp3", []byte("two"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if name != "song (1).mp3" {
		t.Errorf("second save named %q, want song (1).mp3", name)
	}
	if len(lib.List()) != 2 {
		t.Errorf("List = %v, want two files", lib.List())
	}
}

func TestLibrarySaveRejectsNonAudio(t *testing.T) {
	lib := newTestLibrary(t)

	if _, err := lib.Save("malware.exe", []byte("nope")); err == nil {
		t.Fatal("Save accepted a non-audio file")
	}
}

func TestLibraryListSkipsNonAudio(t *testing.T) {
	lib := newTestLibrary(t)

	if _, err := lib.Save("song.flac", []byte("data")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := os.WriteFile(filepath.Join(lib.dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	files := lib.List()
	if len(files) != 1 || files[0] != "song.flac" {
		t.Errorf("List = %v, want [song.flac]", files)
	}
}

func TestLibraryTrackBuildsFilters(t *testing.T) {
	lib := newTestLibrary(t)
	if _, err := lib.Save("song.mp3", []byte("data")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	tr, err := lib.Track("song.mp3", Options{})
	if err != nil {
		t.Fatalf("Track: %v", err)
	}
	if tr.Encode.Filters != "volume=0.15" {
		t.Errorf("Filters = %q, want volume=0.15", tr.Encode.Filters)
	}
	if tr.StreamURL() == "" {
		t.Error("local track has no stream path")
	}

	boosted, err := lib.Track("song.mp3", Options{BassBoost: true})
	if err != nil {
		t.Fatalf("Track: %v", err)
	}
	if boosted.Encode.Filters != "volume=0.15,"+bassBoostFilter {
		t.Errorf("boosted Filters = %q", boosted.Encode.Filters)
	}
}

func TestLibraryTrackMissingFile(t *testing.T) {
	lib := newTestLibrary(t)

	_, err := lib.Track("ghost.mp3", Options{})
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Track error = %v, want ErrFileNotFound", err)
	}
}

func TestLibraryTrackRejectsTraversal(t *testing.T) {
	base := t.TempDir()
	lib := NewLibrary(filepath.Join(base, "music"), 0.15)
	if err := os.MkdirAll(lib.dir, 0o755); err != nil {
		t.Fatal(err)
	}

	// A file outside the library must be unreachable even via ../ names.
	outside := filepath.Join(base, "secret.mp3")
	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"../secret.mp3", "../../secret.mp3", "/" + outside} {
		tr, err := lib.Track(name, Options{})
		if err == nil && !strings.HasPrefix(tr.StreamURL(), lib.dir) {
			t.Errorf("Track(%q) escaped the library: %q", name, tr.StreamURL())
		}
	}
}
