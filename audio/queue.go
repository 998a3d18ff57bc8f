package audio

import (
	"github.com/boni-ng/boni/sdlaudio"
)

// QueueOutput plays samples by pushing them onto an SDL device playback
// queue. The device stays owned by the caller.
type QueueOutput struct {
	d *sdlaudio.Device
}

// NewQueueOutput creates a new queue output on top of an open device
func NewQueueOutput(d *sdlaudio.Device) *QueueOutput {
	return &QueueOutput{d: d}
}

// Start resumes device playback. Devices start paused, so nothing plays
// before this.
func (o *QueueOutput) Start() error {
	o.d.Pause(false)
	return nil
}

// WriteSamples queues the samples for playback
func (o *QueueOutput) WriteSamples(samples []int16) error {
	return o.d.Queue(bytesOf(samples))
}

// Close implements the io.Closer interface. The device is owned by the
// caller and is not closed here.
func (o *QueueOutput) Close() error { return nil }
