package espeak

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenTable(t *testing.T) {
	tt := &tokenTable{
		next: 1,
		m:    make(map[uintptr]interface{}),
	}
	a := tt.add("a")
	b := tt.add("b")
	assert.NotEqual(t, a, b)
	assert.Equal(t, "a", tt.lookup(a))
	assert.Equal(t, "b", tt.lookup(b))
	tt.remove(a)
	assert.Nil(t, tt.lookup(a))
	assert.Equal(t, "b", tt.lookup(b))
}
