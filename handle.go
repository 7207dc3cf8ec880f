package notebook

// Handle is useful for cleaning up resources a value owns outside of the
// arena. For example, a string's header lives in an arena slot, but its
// backing byte array still lives on the Go heap; the arena dropping the
// slot does not clean that up. When Close is called, it runs T's own
// cleanup first (if T implements `interface{ Close() error }`) and then
// deallocates the slot from the owning Notebook, the same two-step the
// original `Handle::drop` performs (`drop_in_place` then
// `dealloc_typed`).
type Handle[T any] struct {
	book deallocator[T]
	val  *T
}

// deallocator is the narrow surface a Handle needs from whichever
// Notebook produced it. MonoNotebook[T] implements it directly;
// multiTyped adapts a *MultiNotebook (see multi.go for why MultiNotebook
// itself can't implement a generic interface).
type deallocator[T any] interface {
	deallocT(v *T) bool
}

func newHandle[T any](book deallocator[T], val *T) *Handle[T] {
	return &Handle[T]{book: book, val: val}
}

// Get returns the handled value. Go has no operator-overloadable deref
// the way Rust's Deref/DerefMut give the original `Handle<'book, T>`, so
// this is the closest idiomatic analogue.
func (h *Handle[T]) Get() *T { return h.val }

// String passes through to T's own String method, when T implements
// fmt.Stringer, so a Handle can be logged or printed the same way its
// value would be.
func (h *Handle[T]) String() string {
	if h.val == nil {
		return "<closed notebook.Handle>"
	}
	if s, ok := any(h.val).(interface{ String() string }); ok {
		return s.String()
	}
	return "notebook.Handle"
}

// GoString passes through to T's own GoString method, when T implements
// fmt.GoStringer, mirroring String above for %#v-style formatting.
func (h *Handle[T]) GoString() string {
	if h.val == nil {
		return "<closed notebook.Handle>"
	}
	if s, ok := any(h.val).(interface{ GoString() string }); ok {
		return s.GoString()
	}
	return "notebook.Handle"
}

// Close runs T's own Close() error, if T implements one, then zeroes the
// slot — dropping the last Go reference to any heap-backed fields the
// value owns, e.g. a string's backing array, so the GC can reclaim them —
// and deallocates the slot from the owning Notebook. Close is idempotent:
// calling it again on an already-closed Handle is a no-op. The returned
// error, if any, is always T's own Close error; the arena's own
// deallocation never fails observably here (see chapter.dealloc).
func (h *Handle[T]) Close() error {
	if h.val == nil {
		return nil
	}

	var err error
	if closer, ok := any(h.val).(interface{ Close() error }); ok {
		err = closer.Close()
	}

	var zero T
	*h.val = zero
	h.book.deallocT(h.val)
	h.val = nil
	return err
}
