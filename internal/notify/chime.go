package notify

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// Chime plays an embedded WAV clip through the default audio device. The
// clip is decoded and the speaker initialised on the first Play.
type Chime struct {
	data   []byte
	once   sync.Once
	buffer *beep.Buffer
	err    error
}

// NewChime creates a chime from WAV data.
func NewChime(data []byte) *Chime {
	return &Chime{data: data}
}

// Play starts the clip and returns without waiting for it to finish.
func (chime *Chime) Play() error {
	chime.once.Do(chime.load)
	if chime.err != nil {
		return chime.err
	}
	speaker.Play(chime.buffer.Streamer(0, chime.buffer.Len()))
	return nil
}

func (chime *Chime) load() {
	buffer, err := decodeWav(chime.data)
	if err != nil {
		chime.err = err
		return
	}
	sampleRate := buffer.Format().SampleRate
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		chime.err = fmt.Errorf("initialize speaker: %w", err)
		return
	}
	chime.buffer = buffer
}

func decodeWav(data []byte) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode chime: %w", err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}
