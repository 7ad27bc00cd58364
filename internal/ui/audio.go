package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/FabianRolfMatthiasNoll/fungus/internal/audio"
)

// audioOutput plays the sample FIFO through the system audio device. The
// player pulls from the FIFO on its own goroutine, which is what drains it
// at the real sample rate.
type audioOutput struct {
	ctx    *oto.Context
	player *oto.Player
}

// newAudioOutput opens the device. Low latency uses ~20ms of player buffer,
// otherwise ~40ms.
func newAudioOutput(src io.Reader, lowLatency bool) (*audioOutput, error) {
	bufMs := 40
	if lowLatency {
		bufMs = 20
	}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   audio.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   time.Duration(bufMs) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	<-ready

	p := ctx.NewPlayer(src)
	p.SetBufferSize(audio.SampleRate * 4 * bufMs / 1000)
	p.Play()
	return &audioOutput{ctx: ctx, player: p}, nil
}

func (o *audioOutput) Close() error {
	if o == nil || o.player == nil {
		return nil
	}
	return o.player.Close()
}
