package sdlaudio

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAudio(t *testing.T) {
	os.Setenv("SDL_AUDIODRIVER", "dummy")
	a, err := New()
	if err != nil {
		t.Skipf("no usable audio driver: %s", err)
	}
	defer a.Close()

	// A second live subsystem is rejected
	_, err = New()
	assert.Error(t, err)

	d, err := a.OpenDevice(Spec{
		Channels:   1,
		SampleRate: 22050,
		Samples:    4096,
	})
	assert.NoError(t, err)
	assert.NotZero(t, d.ID())

	// Queue one buffer of silence
	assert.NoError(t, d.Queue(make([]byte, 4096)))
	d.Pause(false)

	// Closing twice closes the device once
	assert.NoError(t, d.Close())
	assert.Zero(t, d.ID())
	assert.NoError(t, d.Close())
}
