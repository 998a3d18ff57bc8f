package audio

import "encoding/binary"

// Output plays or stores synthesized PCM frames. Implementations are
// fed 16-bit signed mono samples at the rate they were created with.
type Output interface {
	Start() error
	WriteSamples(samples []int16) error
	Close() error
}

// bytesOf encodes samples as 16-bit signed little-endian PCM
func bytesOf(samples []int16) []byte {
	b := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(s))
	}
	return b
}
