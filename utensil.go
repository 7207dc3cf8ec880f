package notebook

import "unsafe"

// Utensil is a Page's placement policy: where the next n bytes go, and
// whether a given address can ever be released back to the page. Bump is
// the only Utensil this module ships; the interface is kept separate from
// Page so an alternate placement policy could be substituted without
// touching Page/Chapter/Notebook.
type Utensil interface {
	// CanPlace reports whether n more bytes fit before the page runs out
	// of room.
	CanPlace(n uintptr) bool

	// Place reserves n bytes and returns the offset they start at. Callers
	// must have checked CanPlace(n) first.
	Place(n uintptr) uintptr

	// CanRelease reports whether ptr is a value this Utensil could hand
	// back for reuse. Bump never reuses a slot and accepts every pointer,
	// so under bump this reports neither whether ptr is free nor whether
	// it falls within the page.
	CanRelease(ptr unsafe.Pointer) bool

	// Release marks ptr as no longer live. Under bump discipline this is a
	// no-op: the bytes are never reused until the whole page is destroyed.
	Release(ptr unsafe.Pointer)
}

// bump is the monotonic bump-offset placement policy: every Place call
// advances an offset and never looks backward, the discipline the whole
// module is built around.
type bump struct {
	capacity uintptr
	offset   uintptr
}

func newBump(capacity uintptr) *bump {
	return &bump{capacity: capacity}
}

func (b *bump) CanPlace(n uintptr) bool {
	return b.capacity-b.offset >= n
}

func (b *bump) Place(n uintptr) uintptr {
	start := b.offset
	b.offset += n
	return start
}

// CanRelease always reports true: a bump Utensil accepts a dealloc for any
// pointer a Page hands it to check. Neither bump nor Page checks that the
// pointer falls within the page's own buffer.
func (b *bump) CanRelease(unsafe.Pointer) bool { return true }

func (b *bump) Release(unsafe.Pointer) {}
