package boni

// Nullable wraps a handle type so that it has an explicit empty state.
//
// C handle types such as plain integers have no built-in null semantics:
// the value meaning "no resource" is a convention of the library that
// issued the handle. Nullable pairs a handle value with that sentinel so
// that ownership code can detect the empty state regardless of the
// underlying representation.
//
// The zero Nullable is empty with a zero sentinel, which covers the
// common case of libraries using 0 or nil as their "no resource" value.
type Nullable[T comparable] struct {
	value    T
	sentinel T
}

// Empty creates an empty Nullable for the given sentinel
func Empty[T comparable](sentinel T) Nullable[T] {
	return Nullable[T]{value: sentinel, sentinel: sentinel}
}

// Wrap wraps a raw handle value, stored unchanged
func Wrap[T comparable](value, sentinel T) Nullable[T] {
	return Nullable[T]{value: value, sentinel: sentinel}
}

// Valid returns whether the stored value differs from the sentinel
func (n Nullable[T]) Valid() bool { return n.value != n.sentinel }

// Value returns the raw handle value for use with C APIs
func (n Nullable[T]) Value() T { return n.value }

// Equal compares the stored handle values
func (n Nullable[T]) Equal(o Nullable[T]) bool { return n.value == o.value }

// ReleaseFunc adapts a plain release function into a release action
// usable by an Owner.
type ReleaseFunc[T comparable] func(T)

// Release invokes the release function unless the handle is empty.
// Releasing an empty handle is a no-op so that empty or detached owners
// can be closed safely.
func (f ReleaseFunc[T]) Release(h Nullable[T]) {
	if !h.Valid() {
		return
	}
	f(h.Value())
}

// Discard adapts a release function that returns a status into a
// ReleaseFunc. Many C release functions report a status that is not
// actionable at release time; discarding it is deliberate, not an
// oversight.
func Discard[T comparable, R any](f func(T) R) ReleaseFunc[T] {
	return func(h T) { f(h) }
}

// Owner is a single-ownership wrapper around a C handle. It invokes its
// release action exactly once, when closed, reset or detached, and
// becomes empty immediately after so the action can never fire twice for
// the same handle. Owners must not be copied.
//
// Acquisition is the caller's job: check the external call for failure
// before handing its handle to Own. Owning the sentinel value is allowed
// and yields an owner whose Close never fires the release action.
type Owner[T comparable] struct {
	h       Nullable[T]
	release ReleaseFunc[T]
}

// Own takes ownership of a freshly acquired handle
func Own[T comparable](value, sentinel T, release ReleaseFunc[T]) *Owner[T] {
	return &Owner[T]{
		h:       Wrap(value, sentinel),
		release: release,
	}
}

// Move transfers ownership from src into a new owner and leaves src
// empty. The release action fires only once across the two owners, from
// whichever holds the handle when closed.
func Move[T comparable](src *Owner[T]) *Owner[T] {
	return &Owner[T]{
		h:       Wrap(src.Detach(), src.h.sentinel),
		release: src.release,
	}
}

// Handle returns the raw handle for use with C APIs. Ownership is not
// transferred: the handle stays valid until the owner is closed or
// reset.
func (o *Owner[T]) Handle() T { return o.h.Value() }

// Valid returns whether a handle is currently held
func (o *Owner[T]) Valid() bool { return o.h.Valid() }

// Detach relinquishes ownership of the current handle and returns it.
// The owner becomes empty and the release action is not invoked: the
// caller is now responsible for the handle.
func (o *Owner[T]) Detach() T {
	v := o.h.value
	o.h.value = o.h.sentinel
	return v
}

// Reset releases the current handle, if any, and takes ownership of the
// given one.
func (o *Owner[T]) Reset(value T) {
	o.release.Release(o.h)
	o.h.value = value
}

// Close implements the io.Closer interface. It releases the current
// handle, if any, and empties the owner, so closing twice releases once.
// It always returns nil: release actions discard their status.
func (o *Owner[T]) Close() error {
	o.release.Release(o.h)
	o.h.value = o.h.sentinel
	return nil
}
