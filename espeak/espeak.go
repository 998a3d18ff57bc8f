package espeak

/*
#cgo LDFLAGS: -lespeak-ng

#include <stdint.h>
#include <stdio.h>
#include <stdlib.h>

#include <espeak-ng/espeak_ng.h>

extern int boniSynthBridge(short *wav, int numsamples, espeak_EVENT *events);

static void boni_set_synth_callback(void) {
	espeak_SetSynthCallback(boniSynthBridge);
}

static void boni_print_status(espeak_ng_STATUS status, espeak_ng_ERROR_CONTEXT context) {
	espeak_ng_PrintStatusCodeMessage(status, stderr, context);
}

static void *boni_token_to_ptr(uintptr_t token) {
	return (void *)token;
}
*/
import "C"

import (
	"bytes"
	"sync"
	"unsafe"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

// ErrorContext is a scoped eSpeak NG error context. Some engine calls
// take its address as an out parameter and populate it on failure; the
// context must be cleared afterwards whether it was populated or not,
// which Close guarantees.
type ErrorContext struct {
	data C.espeak_ng_ERROR_CONTEXT
}

// NewErrorContext creates a new error context
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Close implements the io.Closer interface. Clearing a never-populated
// context is safe.
func (c *ErrorContext) Close() error {
	C.espeak_ng_ClearErrorContext(&c.data)
	return nil
}

// statusError writes the engine's own diagnostic for the status to
// stderr and returns a terse error for the caller to propagate.
func statusError(status C.espeak_ng_STATUS, c *ErrorContext, msg string) error {
	var data C.espeak_ng_ERROR_CONTEXT
	if c != nil {
		data = c.data
	}
	C.boni_print_status(status, data)
	return errors.Errorf("%s: %s", msg, statusMessage(status))
}

func statusMessage(status C.espeak_ng_STATUS) string {
	buf := make([]byte, 512)
	C.espeak_ng_GetStatusCodeMessage(status, (*C.char)(unsafe.Pointer(&buf[0])), C.size_t(len(buf)))
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}

// Engine represents the eSpeak NG engine. The engine owns process-global
// state in libespeak-ng: only one live Engine is allowed per process.
type Engine struct {
	pending []uintptr
}

var (
	mu   sync.Mutex
	live bool
)

// New initializes the eSpeak NG engine. dataPath points at the voice
// data directory and must be given to the engine before initialization;
// leave it empty to use the default location.
func New(dataPath string) (e *Engine, err error) {
	mu.Lock()
	defer mu.Unlock()

	// Initialization and termination are not reentrant
	if live {
		err = errors.New("espeak: engine already initialized")
		return
	}

	// Set the voice data path
	astilog.Debug("espeak: initializing engine")
	var cPath *C.char
	if dataPath != "" {
		cPath = C.CString(dataPath)
		defer C.free(unsafe.Pointer(cPath))
	}
	C.espeak_ng_InitializePath(cPath)

	// Initialize with a scoped error context
	c := NewErrorContext()
	defer c.Close()
	if status := C.espeak_ng_Initialize(&c.data); status != C.ENS_OK {
		err = statusError(status, c, "espeak: initializing engine failed")
		return
	}
	live = true
	return &Engine{}, nil
}

// Close implements the io.Closer interface. Termination always succeeds;
// its status is discarded by design.
func (e *Engine) Close() error {
	mu.Lock()
	defer mu.Unlock()
	astilog.Debug("espeak: terminating engine")
	e.releasePending()
	C.espeak_ng_Terminate()
	live = false
	return nil
}

// SetSynchronousOutput puts the engine in synchronous output mode. The
// synthesis handler only fires in this mode: playback mode would bypass
// it.
func (e *Engine) SetSynchronousOutput(bufferSize int) (err error) {
	astilog.Debug("espeak: initializing synchronous output")
	if status := C.espeak_ng_InitializeOutput(C.ENOUTPUT_MODE_SYNCHRONOUS, C.int(bufferSize), nil); status != C.ENS_OK {
		err = statusError(status, nil, "espeak: initializing output failed")
		return
	}
	return
}

// SampleRate returns the sample rate of produced audio in Hz
func (e *Engine) SampleRate() int {
	return int(C.espeak_ng_GetSampleRate())
}

// SetVoice selects the voice to synthesize with by name
func (e *Engine) SetVoice(name string) (err error) {
	astilog.Debugf("espeak: setting voice %s", name)
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	if status := C.espeak_ng_SetVoiceByName(cName); status != C.ENS_OK {
		err = statusError(status, nil, "espeak: setting voice failed")
		return
	}
	return
}

// SetSynthHandler registers the synthesis handler. The handler is
// invoked synchronously from within Synthesize, on the calling
// goroutine.
func (e *Engine) SetSynthHandler(h SynthHandler) {
	astilog.Debug("espeak: setting synthesis callback")
	handlerMu.Lock()
	handler = h
	handlerMu.Unlock()
	C.boni_set_synth_callback()
}

// Synthesize synthesizes the given text. userData travels with the
// events delivered to the synthesis handler; it crosses the C boundary
// as a registry token, never as a Go pointer. Tokens stay registered
// until Synchronize or Close so late events can still resolve them.
func (e *Engine) Synthesize(text string, userData interface{}) (err error) {
	astilog.Debugf("espeak: synthesizing %q", text)
	cText := C.CString(text)
	defer C.free(unsafe.Pointer(cText))
	token := tokens.add(userData)
	e.pending = append(e.pending, token)
	status := C.espeak_ng_Synthesize(
		unsafe.Pointer(cText), C.size_t(len(text)+1),
		0, C.POS_CHARACTER, C.uint(len(text)),
		C.espeakCHARS_AUTO, nil,
		C.boni_token_to_ptr(C.uintptr_t(token)),
	)
	if status != C.ENS_OK {
		err = statusError(status, nil, "espeak: synthesizing failed")
		return
	}
	return
}

// Synchronize waits for all queued synthesis to complete
func (e *Engine) Synchronize() (err error) {
	astilog.Debug("espeak: synchronizing")
	status := C.espeak_ng_Synchronize()
	e.releasePending()
	if status != C.ENS_OK {
		err = statusError(status, nil, "espeak: synchronizing failed")
		return
	}
	return
}

func (e *Engine) releasePending() {
	for _, token := range e.pending {
		tokens.remove(token)
	}
	e.pending = nil
}
