package audio

import (
	"github.com/asticode/go-astilog"
	"github.com/gordonklaus/portaudio"
	"github.com/pkg/errors"
)

// PortAudioOutput plays samples through the default portaudio output
// stream. Writes block until the stream has taken the samples.
type PortAudioOutput struct {
	b        []int16
	channels int
	s        *portaudio.Stream
}

// NewPortAudioOutput initializes portaudio and opens the default output
// stream
func NewPortAudioOutput(sampleRate, channels, framesPerBuffer int) (o *PortAudioOutput, err error) {
	// Initialize portaudio
	astilog.Debug("audio: initializing portaudio")
	if err = portaudio.Initialize(); err != nil {
		err = errors.Wrap(err, "audio: initializing portaudio failed")
		return
	}

	// Init
	o = &PortAudioOutput{
		b:        make([]int16, framesPerBuffer*channels),
		channels: channels,
	}

	// Open default stream
	astilog.Debugf("audio: opening default stream %p", o)
	if o.s, err = portaudio.OpenDefaultStream(0, channels, float64(sampleRate), framesPerBuffer, o.b); err != nil {
		portaudio.Terminate()
		err = errors.Wrapf(err, "audio: opening default stream %p failed", o)
		return
	}
	return
}

// Start starts the stream
func (o *PortAudioOutput) Start() (err error) {
	astilog.Debugf("audio: starting stream %p", o)
	if err = o.s.Start(); err != nil {
		err = errors.Wrapf(err, "audio: starting stream %p failed", o)
		return
	}
	return
}

// WriteSamples plays the samples through the stream, one bound buffer at
// a time. The last buffer is padded with silence.
func (o *PortAudioOutput) WriteSamples(samples []int16) (err error) {
	for len(samples) > 0 {
		n := copy(o.b, samples)
		for i := n; i < len(o.b); i++ {
			o.b[i] = 0
		}
		if err = o.s.Write(); err != nil {
			err = errors.Wrap(err, "audio: writing to stream failed")
			return
		}
		samples = samples[n:]
	}
	return
}

// Close implements the io.Closer interface
func (o *PortAudioOutput) Close() (err error) {
	// Close stream
	astilog.Debugf("audio: closing stream %p", o)
	if err = o.s.Close(); err != nil {
		err = errors.Wrapf(err, "audio: closing stream %p failed", o)
		return
	}

	// Terminate portaudio
	astilog.Debug("audio: terminating portaudio")
	if err = portaudio.Terminate(); err != nil {
		err = errors.Wrap(err, "audio: terminating portaudio failed")
		return
	}
	return
}
