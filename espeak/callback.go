package espeak

/*
#include <espeak-ng/espeak_ng.h>
*/
import "C"

import (
	"sync"
	"unsafe"
)

// SynthHandler receives the samples produced since the last call and the
// events attached to them. Samples may be empty once synthesis has
// completed. Return false to abort synthesis.
type SynthHandler func(samples []int16, events []Event) bool

var (
	handlerMu sync.Mutex
	handler   SynthHandler
)

// boniSynthBridge is installed as the eSpeak NG synthesis callback. It
// copies the C sample buffer, decodes the event list and forwards both
// to the registered handler. Returning 1 aborts synthesis.
//
//export boniSynthBridge
func boniSynthBridge(wav *C.short, numsamples C.int, events *C.espeak_EVENT) C.int {
	handlerMu.Lock()
	h := handler
	handlerMu.Unlock()
	if h == nil {
		return 0
	}
	var samples []int16
	if wav != nil && numsamples > 0 {
		samples = make([]int16, int(numsamples))
		copy(samples, unsafe.Slice((*int16)(unsafe.Pointer(wav)), int(numsamples)))
	}
	if !h(samples, decodeEvents(events)) {
		return 1
	}
	return 0
}
