package sdlaudio

import (
	"sync"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/boni-ng/boni"
)

// Audio represents the SDL audio subsystem. SDL keeps process-global
// state: only one live Audio is allowed per process.
type Audio struct{}

var (
	mu   sync.Mutex
	live bool
)

// New initializes the SDL audio subsystem
func New() (a *Audio, err error) {
	mu.Lock()
	defer mu.Unlock()

	// Init and quit are not reentrant
	if live {
		err = errors.New("sdlaudio: audio subsystem already initialized")
		return
	}

	// Initialize
	astilog.Debug("sdlaudio: initializing audio subsystem")
	if err = sdl.Init(sdl.INIT_AUDIO); err != nil {
		err = errors.Wrap(err, "sdlaudio: initializing audio subsystem failed")
		return
	}
	live = true
	return &Audio{}, nil
}

// Close implements the io.Closer interface
func (a *Audio) Close() error {
	mu.Lock()
	defer mu.Unlock()
	astilog.Debug("sdlaudio: quitting audio subsystem")
	sdl.Quit()
	live = false
	return nil
}

// Spec describes the playback format to request from SDL. Produced audio
// is 16-bit signed little-endian PCM.
type Spec struct {
	Channels   int
	SampleRate int
	Samples    int
}

// closeDevice is the release action for device owners. Closing a device
// returns nothing, so there is no status to discard.
var closeDevice boni.ReleaseFunc[sdl.AudioDeviceID] = sdl.CloseAudioDevice

// Device represents one open SDL playback device. The device identifier
// is an integer with 0 meaning "no device", which is exactly the
// nullable-handle shape boni.Owner manages.
type Device struct {
	owner *boni.Owner[sdl.AudioDeviceID]
}

// OpenDevice opens the default playback device with the given spec. The
// spec is required as is: SDL is not allowed to change it.
func (a *Audio) OpenDevice(s Spec) (d *Device, err error) {
	desired := &sdl.AudioSpec{
		Freq:     int32(s.SampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: uint8(s.Channels),
		Samples:  uint16(s.Samples),
	}

	// Open device
	astilog.Debugf("sdlaudio: opening audio device at %dHz", s.SampleRate)
	var id sdl.AudioDeviceID
	if id, err = sdl.OpenAudioDevice("", false, desired, nil, 0); err != nil {
		err = errors.Wrap(err, "sdlaudio: opening audio device failed")
		return
	}
	d = &Device{owner: boni.Own(id, 0, closeDevice)}
	return
}

// ID returns the raw device handle. Ownership stays with the device.
func (d *Device) ID() sdl.AudioDeviceID {
	return d.owner.Handle()
}

// Queue pushes PCM bytes onto the device playback queue. SDL consumes
// the queue independently during playback.
func (d *Device) Queue(b []byte) (err error) {
	if err = sdl.QueueAudio(d.owner.Handle(), b); err != nil {
		err = errors.Wrap(err, "sdlaudio: queueing audio failed")
		return
	}
	return
}

// QueuedSize returns the number of queued bytes not yet played
func (d *Device) QueuedSize() uint32 {
	return sdl.GetQueuedAudioSize(d.owner.Handle())
}

// Pause pauses or resumes playback. Devices start paused.
func (d *Device) Pause(pause bool) {
	sdl.PauseAudioDevice(d.owner.Handle(), pause)
}

// Close implements the io.Closer interface
func (d *Device) Close() error {
	astilog.Debugf("sdlaudio: closing audio device %d", d.owner.Handle())
	return d.owner.Close()
}
