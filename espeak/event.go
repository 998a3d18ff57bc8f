package espeak

/*
#include <espeak-ng/espeak_ng.h>
*/
import "C"

import "unsafe"

// EventType identifies the kind of a synthesis event
type EventType int

// Event types
const (
	EventListTerminated EventType = C.espeakEVENT_LIST_TERMINATED
	EventWord           EventType = C.espeakEVENT_WORD
	EventSentence       EventType = C.espeakEVENT_SENTENCE
	EventMark           EventType = C.espeakEVENT_MARK
	EventPlay           EventType = C.espeakEVENT_PLAY
	EventEnd            EventType = C.espeakEVENT_END
	EventMsgTerminated  EventType = C.espeakEVENT_MSG_TERMINATED
	EventPhoneme        EventType = C.espeakEVENT_PHONEME
	EventSamplerate     EventType = C.espeakEVENT_SAMPLERATE
)

// Event is one synthesis event. UserData is the value given to
// Engine.Synthesize for the call that produced the event.
type Event struct {
	Type          EventType
	TextPosition  int
	Length        int
	AudioPosition int
	Sample        int
	UserData      interface{}
}

// decodeEvents walks the terminator-ended C event array. The array is
// assumed to hold at least the terminator entry.
func decodeEvents(events *C.espeak_EVENT) (out []Event) {
	if events == nil {
		return
	}
	for ev := events; ev._type != C.espeakEVENT_LIST_TERMINATED; ev = (*C.espeak_EVENT)(unsafe.Add(unsafe.Pointer(ev), C.sizeof_espeak_EVENT)) {
		out = append(out, Event{
			Type:          EventType(ev._type),
			TextPosition:  int(ev.text_position),
			Length:        int(ev.length),
			AudioPosition: int(ev.audio_position),
			Sample:        int(ev.sample),
			UserData:      tokens.lookup(uintptr(ev.user_data)),
		})
	}
	return
}
