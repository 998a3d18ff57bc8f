package main

import (
	"flag"
	"time"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"

	"github.com/boni-ng/boni/audio"
	"github.com/boni-ng/boni/espeak"
	"github.com/boni-ng/boni/sdlaudio"
)

// Flags
var (
	dataPath = flag.String("espeak-data", "", "the espeak-ng voice data directory (default location if empty)")
	output   = flag.String("output", "sdl", "where to send synthesized audio (sdl|portaudio|wav)")
	text     = flag.String("text", "Hello world.", "the text to synthesize")
	voice    = flag.String("voice", "", "the voice to synthesize with (engine default if empty)")
	wavPath  = flag.String("wav", "out.wav", "the wav path used when -output=wav")
)

func main() {
	// Init
	flag.Parse()
	astilog.FlagInit()

	// Run
	if err := run(); err != nil {
		astilog.Fatal(errors.Wrap(err, "main: running failed"))
	}
}

// run sets up the engine and the audio output, synthesizes the text and
// waits for playback. Teardown happens in reverse order of construction
// through the deferred closes, on every exit path.
func run() (err error) {
	// Initialize engine
	astilog.Info("main: starting eSpeak NG service")
	var e *espeak.Engine
	if e, err = espeak.New(*dataPath); err != nil {
		return errors.Wrap(err, "main: initializing espeak failed")
	}
	defer e.Close()

	// The synthesis callback only fires in synchronous output mode
	astilog.Info("main: initializing output")
	if err = e.SetSynchronousOutput(0); err != nil {
		return errors.Wrap(err, "main: initializing output failed")
	}

	// Voice
	if *voice != "" {
		if err = e.SetVoice(*voice); err != nil {
			return errors.Wrap(err, "main: setting voice failed")
		}
	}

	// Sample rate
	astilog.Info("main: getting sample rate")
	rate := e.SampleRate()
	astilog.Debugf("main: sample rate is %dHz", rate)

	// Audio output. The device must be open before synthesis begins
	// since the synthesis handler writes into it.
	var out audio.Output
	switch *output {
	case "sdl":
		astilog.Info("main: starting SDL audio service")
		var a *sdlaudio.Audio
		if a, err = sdlaudio.New(); err != nil {
			return errors.Wrap(err, "main: initializing sdl audio failed")
		}
		defer a.Close()
		var d *sdlaudio.Device
		if d, err = a.OpenDevice(sdlaudio.Spec{
			Channels:   1,
			SampleRate: rate,
			Samples:    4096,
		}); err != nil {
			return errors.Wrap(err, "main: opening audio device failed")
		}
		defer d.Close()
		out = audio.NewQueueOutput(d)
	case "portaudio":
		astilog.Info("main: starting portaudio service")
		if out, err = audio.NewPortAudioOutput(rate, 1, 4096); err != nil {
			return errors.Wrap(err, "main: initializing portaudio output failed")
		}
	case "wav":
		astilog.Infof("main: writing to %s", *wavPath)
		if out, err = audio.NewWavOutput(*wavPath, rate, 1); err != nil {
			return errors.Wrap(err, "main: initializing wav output failed")
		}
	default:
		return errors.Errorf("main: invalid output %s", *output)
	}
	defer out.Close()

	// Synthesis handler forwards produced frames to the output
	astilog.Info("main: setting synthesis callback")
	e.SetSynthHandler(func(samples []int16, events []espeak.Event) bool {
		for _, ev := range events {
			switch ev.Type {
			case espeak.EventWord:
				astilog.Debugf("main: word event at %d", ev.TextPosition)
			case espeak.EventSentence:
				astilog.Debugf("main: sentence event at %d", ev.TextPosition)
			case espeak.EventEnd:
				astilog.Debugf("main: end event at sample %d", ev.Sample)
			}
		}
		if len(samples) == 0 {
			return true
		}
		if err := out.WriteSamples(samples); err != nil {
			astilog.Error(errors.Wrap(err, "main: writing samples failed"))
			return false
		}
		return true
	})

	// Synthesize
	astilog.Info("main: starting synthesis")
	if err = out.Start(); err != nil {
		return errors.Wrap(err, "main: starting output failed")
	}
	if err = e.Synthesize(*text, nil); err != nil {
		return errors.Wrap(err, "main: synthesizing failed")
	}

	// Synchronize
	astilog.Info("main: synchronizing")
	if err = e.Synchronize(); err != nil {
		return errors.Wrap(err, "main: synchronizing failed")
	}

	// Let queued playback drain before tearing down
	astilog.Info("main: exiting")
	time.Sleep(1500 * time.Millisecond)
	return
}
