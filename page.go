package notebook

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/gobookcase/notebook/backing"
)

// page is one backing-allocator-supplied buffer plus the Utensil that
// decides where the next placement in it goes. Pages are never resized:
// once full, the owning Chapter appends a new one.
type page struct {
	buf     []byte
	layout  backing.Layout
	utensil Utensil
}

// maxLayoutSize mirrors the original's `usize::BITS < 64 &&
// layout.size() > isize::MAX` guard: on a 64-bit Go target uintptr and
// int are both 64 bits, so the only way this guard ever trips is a
// request for more than half the address space, which newPage refuses
// rather than let it wrap when later cast to a signed length.
const maxLayoutSize = ^uintptr(0) >> 1

func newPage(back backing.Allocator, layout backing.Layout) (*page, error) {
	if layout.Size > maxLayoutSize {
		return nil, backing.ErrAllocationFailure
	}
	buf, err := back.Allocate(layout)
	if err != nil {
		return nil, fmt.Errorf("notebook: allocate page: %w", err)
	}
	return &page{buf: buf, layout: layout, utensil: newBump(uintptr(len(buf)))}, nil
}

func (p *page) canAlloc(n uintptr) bool {
	return p.utensil.CanPlace(n)
}

// alloc reserves n bytes and returns a pointer to the start of them.
// Callers must have checked canAlloc(n) first. off == len(p.buf) is only
// reachable when n == 0 (a zero-sized T); buf[off:off] is still a valid
// slice expression at that boundary, so this never indexes out of range.
func (p *page) alloc(n uintptr) unsafe.Pointer {
	off := p.utensil.Place(n)
	return unsafe.Pointer(unsafe.SliceData(p.buf[off:off]))
}

func (p *page) canDealloc(ptr unsafe.Pointer) bool {
	return p.utensil.CanRelease(ptr)
}

func (p *page) dealloc(ptr unsafe.Pointer) {
	p.utensil.Release(ptr)
}

func (p *page) destroy(back backing.Allocator) {
	back.Deallocate(p.buf, p.layout)
	p.buf = nil
}

// String renders the page's entire buffer as a hex dump, "\n  buffer: xx
// xx xx ...", matching the original `Page::to_string`.
func (p *page) String() string {
	var b strings.Builder
	b.WriteString("\n  buffer:")
	for _, by := range p.buf {
		fmt.Fprintf(&b, " %02x", by)
	}
	return b.String()
}

// snapshot returns a copy of the page's buffer, for test introspection
// only — the Go analogue of the original's `#[cfg(test)] clone_buffer`.
func (p *page) snapshot() []byte {
	out := make([]byte, len(p.buf))
	copy(out, p.buf)
	return out
}
