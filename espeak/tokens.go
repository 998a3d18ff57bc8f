package espeak

import "sync"

// tokenTable stores Go values referenced from C callbacks. Go pointers
// must not cross the C boundary, so Synthesize registers its user data
// here and passes the token in its place; events resolve the token back
// to the value.
type tokenTable struct {
	mu   sync.Mutex
	next uintptr
	m    map[uintptr]interface{}
}

var tokens = &tokenTable{
	next: 1,
	m:    make(map[uintptr]interface{}),
}

func (t *tokenTable) add(v interface{}) uintptr {
	t.mu.Lock()
	defer t.mu.Unlock()
	token := t.next
	t.next++
	t.m[token] = v
	return token
}

func (t *tokenTable) lookup(token uintptr) interface{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.m[token]
}

func (t *tokenTable) remove(token uintptr) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.m, token)
}
