package stream

import (
	"errors"
	"sync"

	"github.com/bwmarrin/discordgo"

	"voicebox/internal/music/player"
)

// Connector joins Discord voice channels for the playback engine.
type Connector struct {
	session *discordgo.Session
}

func NewConnector(session *discordgo.Session) *Connector {
	return &Connector{session: session}
}

func (c *Connector) Join(guildID, channelID string) (player.VoiceHandle, error) {
	vc, err := c.session.ChannelVoiceJoin(guildID, channelID, false, true)
	if err != nil {
		return nil, err
	}
	return &voiceHandle{vc: vc}, nil
}

type voiceHandle struct {
	vc *discordgo.VoiceConnection
}

func (h *voiceHandle) IsConnected() bool {
	if h.vc == nil {
		return false
	}
	h.vc.RLock()
	defer h.vc.RUnlock()
	return h.vc.Ready
}

func (h *voiceHandle) Disconnect() error {
	return h.vc.Disconnect()
}

// Transport runs ffmpeg-decoded audio into a voice connection.
type Transport struct{}

func NewTransport() *Transport {
	return &Transport{}
}

// Play starts streaming source into the handle's voice connection. onFinish
// is called exactly once with the terminal error; nil means the source ended
// or was stopped.
func (t *Transport) Play(h player.VoiceHandle, source string, enc player.EncodeOptions, onFinish func(error)) (player.Playback, error) {
	handle, ok := h.(*voiceHandle)
	if !ok {
		return nil, errors.New("unsupported voice handle")
	}

	reader, cleanup, err := OpenPCM(source, enc)
	if err != nil {
		return nil, err
	}

	pb := &playback{stop: make(chan struct{})}

	go func() {
		defer cleanup()

		handle.vc.Speaking(true)
		err := StreamToDiscord(reader, pb.stop, handle.vc)
		handle.vc.Speaking(false)

		onFinish(err)
	}()

	return pb, nil
}

type playback struct {
	stop chan struct{}
	once sync.Once
}

func (p *playback) Stop() {
	p.once.Do(func() { close(p.stop) })
}
