package audio

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Recorder keeps a copy of every sample written to the sink so a run can be
// saved as a WAV file. Samples are buffered in memory until Save.
type Recorder struct {
	data []int
}

// NewRecorder preallocates room for roughly the given number of frames.
func NewRecorder(frames int) *Recorder {
	if frames < 0 {
		frames = 0
	}
	return &Recorder{data: make([]int, 0, frames*2*Target)}
}

// Add appends one packed stereo sample.
func (r *Recorder) Add(stereo uint32) {
	r.data = append(r.data, int(int16(stereo)), int(int16(stereo>>16)))
}

// Samples returns the number of stereo samples recorded.
func (r *Recorder) Samples() int { return len(r.data) / 2 }

// Save writes the recording as a 16-bit stereo PCM WAV file.
func (r *Recorder) Save(path string) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("wav: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, 16, 2, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: SampleRate},
		Data:           r.data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize: %w", err)
	}
	return nil
}
