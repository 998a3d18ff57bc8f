package boni

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// recorder counts release invocations and records their arguments
type recorder struct {
	args []int
}

func (r *recorder) release(h int) {
	r.args = append(r.args, h)
}

func TestNullable(t *testing.T) {
	// Default is empty
	var n Nullable[int]
	assert.False(t, n.Valid())
	assert.True(t, n.Equal(Empty(0)))

	// Non-zero sentinel
	n = Empty(-1)
	assert.False(t, n.Valid())
	assert.Equal(t, -1, n.Value())

	// Wrapped value is stored unchanged
	n = Wrap(42, -1)
	assert.True(t, n.Valid())
	assert.Equal(t, 42, n.Value())
	assert.True(t, n.Equal(Wrap(42, -1)))
	assert.False(t, n.Equal(Empty(-1)))
}

func TestReleaseFuncSkipsEmpty(t *testing.T) {
	r := &recorder{}
	f := ReleaseFunc[int](r.release)
	f.Release(Empty(0))
	assert.Len(t, r.args, 0)
	f.Release(Wrap(42, 0))
	assert.Equal(t, []int{42}, r.args)
}

func TestDiscard(t *testing.T) {
	r := &recorder{}
	f := Discard(func(h int) string {
		r.release(h)
		return "ignored"
	})
	f.Release(Wrap(7, 0))
	assert.Equal(t, []int{7}, r.args)
}

func TestOwnerReleasesExactlyOnce(t *testing.T) {
	r := &recorder{}
	o := Own(42, 0, r.release)
	assert.True(t, o.Valid())
	assert.Equal(t, 42, o.Handle())
	assert.NoError(t, o.Close())
	assert.Equal(t, []int{42}, r.args)

	// Closing again must not release again
	assert.NoError(t, o.Close())
	assert.Equal(t, []int{42}, r.args)
	assert.False(t, o.Valid())
}

func TestOwnerEmptyNeverReleases(t *testing.T) {
	r := &recorder{}
	o := Own(0, 0, r.release)
	assert.False(t, o.Valid())
	assert.NoError(t, o.Close())
	assert.Len(t, r.args, 0)
}

func TestOwnerDetach(t *testing.T) {
	r := &recorder{}
	o := Own(42, 0, r.release)
	assert.Equal(t, 42, o.Detach())
	assert.False(t, o.Valid())
	assert.NoError(t, o.Close())
	assert.Len(t, r.args, 0)
}

func TestOwnerMove(t *testing.T) {
	r := &recorder{}
	src := Own(42, 0, r.release)
	dst := Move(src)

	// Source is empty, destination holds the handle
	assert.False(t, src.Valid())
	assert.Equal(t, 42, dst.Handle())

	// The release action fires only once across the two owners
	assert.NoError(t, src.Close())
	assert.NoError(t, dst.Close())
	assert.Equal(t, []int{42}, r.args)
}

func TestOwnerReset(t *testing.T) {
	r := &recorder{}
	o := Own(42, 0, r.release)
	o.Reset(43)
	assert.Equal(t, []int{42}, r.args)
	assert.Equal(t, 43, o.Handle())
	assert.NoError(t, o.Close())
	assert.Equal(t, []int{42, 43}, r.args)
}

// startService mimics a lifecycle wrapper: acquire, check, own.
func startService(acquire func() int, release ReleaseFunc[int]) (*Owner[int], error) {
	h := acquire()
	if h == 0 {
		return nil, errors.New("boni: acquisition failed")
	}
	return Own(h, 0, release), nil
}

func TestInitFailureSkipsRelease(t *testing.T) {
	r := &recorder{}
	o, err := startService(func() int { return 0 }, r.release)
	assert.Error(t, err)
	assert.Nil(t, o)
	assert.Len(t, r.args, 0)
}

func TestReleaseRunsOnLaterFailure(t *testing.T) {
	r := &recorder{}
	run := func() (err error) {
		var o *Owner[int]
		if o, err = startService(func() int { return 42 }, r.release); err != nil {
			return
		}
		defer o.Close()

		// Unrelated failure after successful initialization
		return errors.New("boni: unrelated failure")
	}
	assert.Error(t, run())
	assert.Equal(t, []int{42}, r.args)
}
