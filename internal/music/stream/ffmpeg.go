package stream

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"voicebox/internal/music/player"
)

const (
	channels   = 2
	sampleRate = 48000
	frameSize  = 960 // 20ms at 48kHz
)

// ffmpegArgs builds the decode command line: seek and reconnect flags before
// the input, filters after, raw s16le PCM on stdout.
func ffmpegArgs(source string, enc player.EncodeOptions) []string {
	args := []string{}
	if enc.StartAt > 0 {
		args = append(args, "-ss", fmt.Sprintf("%.0f", enc.StartAt.Seconds()))
	}
	if enc.PreInput != "" {
		args = append(args, strings.Fields(enc.PreInput)...)
	}
	args = append(args, "-i", source)
	if enc.Filters != "" {
		args = append(args, "-af", enc.Filters)
	}
	return append(args,
		"-f", "s16le",
		"-ar", fmt.Sprintf("%d", sampleRate),
		"-ac", fmt.Sprintf("%d", channels),
		"-loglevel", "warning",
		"pipe:1",
	)
}

// OpenPCM spawns ffmpeg decoding source into raw s16le PCM on stdout.
// Returned cleanup kills the process and must be called once streaming ends.
func OpenPCM(source string, enc player.EncodeOptions) (io.ReadCloser, func(), error) {
	cmd := exec.Command("ffmpeg", ffmpegArgs(source, enc)...)

	reader, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("stdout pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("command start error: %w", err)
	}

	cleanup := func() {
		cmd.Process.Kill()
		cmd.Wait()
	}

	return reader, cleanup, nil
}
