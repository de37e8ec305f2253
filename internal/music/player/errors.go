package player

import "errors"

var (
	ErrNoTrackPlaying  = errors.New("no track is currently playing")
	ErrNoTracksInQueue = errors.New("no tracks in queue")
	ErrNotInVoice      = errors.New("requester is not in a voice channel")
	ErrVoiceConnect    = errors.New("failed to join voice channel")
	ErrBadSeekFormat   = errors.New("invalid seek position, use seconds, MM:SS or HH:MM:SS")

	// errPopTimeout is returned by Queue.PopWait when the idle timeout
	// elapses with nothing queued.
	errPopTimeout = errors.New("queue pop timed out")
)
