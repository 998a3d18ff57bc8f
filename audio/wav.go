package audio

import (
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

// WavOutput stores samples in a wav file instead of playing them
type WavOutput struct {
	e          *wav.Encoder
	f          *os.File
	channels   int
	sampleRate int
}

// NewWavOutput creates the wav file and its encoder
func NewWavOutput(path string, sampleRate, channels int) (o *WavOutput, err error) {
	// Create file
	astilog.Debugf("audio: creating wav file %s", path)
	var f *os.File
	if f, err = os.Create(path); err != nil {
		err = errors.Wrapf(err, "audio: creating %s failed", path)
		return
	}

	// Init
	o = &WavOutput{
		e:          wav.NewEncoder(f, sampleRate, 16, channels, 1),
		f:          f,
		channels:   channels,
		sampleRate: sampleRate,
	}
	return
}

// Start implements the Output interface
func (o *WavOutput) Start() error { return nil }

// WriteSamples encodes the samples into the wav file
func (o *WavOutput) WriteSamples(samples []int16) (err error) {
	b := &goaudio.IntBuffer{
		Data: make([]int, len(samples)),
		Format: &goaudio.Format{
			NumChannels: o.channels,
			SampleRate:  o.sampleRate,
		},
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		b.Data[i] = int(s)
	}
	if err = o.e.Write(b); err != nil {
		err = errors.Wrap(err, "audio: encoding samples failed")
		return
	}
	return
}

// Close implements the io.Closer interface. Closing finalizes the wav
// header, so a wav output abandoned before Close is not a valid file.
func (o *WavOutput) Close() (err error) {
	astilog.Debugf("audio: closing wav file %s", o.f.Name())
	if err = o.e.Close(); err != nil {
		err = errors.Wrap(err, "audio: closing encoder failed")
		return
	}
	if err = o.f.Close(); err != nil {
		err = errors.Wrapf(err, "audio: closing %s failed", o.f.Name())
		return
	}
	return
}
