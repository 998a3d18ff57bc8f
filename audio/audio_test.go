package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
)

func TestBytesOf(t *testing.T) {
	assert.Equal(t, []byte{}, bytesOf(nil))
	assert.Equal(t, []byte{0x01, 0x00, 0xff, 0xff, 0x00, 0x80}, bytesOf([]int16{1, -1, -32768}))
}

func TestWavOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	o, err := NewWavOutput(path, 22050, 1)
	assert.NoError(t, err)

	assert.NoError(t, o.Start())
	assert.NoError(t, o.WriteSamples([]int16{1, 2, 3}))
	assert.NoError(t, o.WriteSamples([]int16{-4}))
	assert.NoError(t, o.Close())

	// Decode it back
	f, err := os.Open(path)
	assert.NoError(t, err)
	defer f.Close()
	d := wav.NewDecoder(f)
	b, err := d.FullPCMBuffer()
	assert.NoError(t, err)
	assert.Equal(t, 22050, b.Format.SampleRate)
	assert.Equal(t, 1, b.Format.NumChannels)
	assert.Equal(t, []int{1, 2, 3, -4}, b.Data)
}
