package notebook

import (
	"strings"
	"unsafe"

	"github.com/gobookcase/notebook/backing"
)

// chapter is an ordered list of pages sharing one alignment class. alloc
// scans pages most-recently-added first (the one most likely to still
// have room); dealloc scans oldest first, matching the original's
// `Chapter::alloc`/`Chapter::dealloc`.
type chapter struct {
	pages []*page
}

// alloc reserves tSize bytes somewhere in the chapter, appending a new
// page of pageBytes bytes if none of the existing pages has room. It
// fails rather than create an undersized page when pageBytes < tSize.
func (c *chapter) alloc(back backing.Allocator, tSize, tAlign, pageBytes uintptr) (unsafe.Pointer, error) {
	for i := len(c.pages) - 1; i >= 0; i-- {
		if c.pages[i].canAlloc(tSize) {
			return c.pages[i].alloc(tSize), nil
		}
	}

	if pageBytes < tSize {
		return nil, backing.ErrAllocationFailure
	}

	p, err := newPage(back, backing.Layout{Size: pageBytes, Align: tAlign})
	if err != nil {
		return nil, err
	}
	ptr := p.alloc(tSize)
	c.pages = append(c.pages, p)
	return ptr, nil
}

// dealloc matches the original's `Chapter::dealloc` faithfully: under
// bump discipline a page's Utensil always reports it can release any
// pointer (see Utensil.CanRelease), so this reports success as soon as
// the chapter holds at least one page, without verifying ptr actually
// falls within that particular page's buffer. It exists so client code
// gets a true/false signal, not to actually reclaim storage.
func (c *chapter) dealloc(ptr unsafe.Pointer) bool {
	for _, p := range c.pages {
		if p.canDealloc(ptr) {
			p.dealloc(ptr)
			return true
		}
	}
	return false
}

func (c *chapter) destroy(back backing.Allocator) {
	for _, p := range c.pages {
		p.destroy(back)
	}
	c.pages = nil
}

// String concatenates every page's hex dump in insertion order, matching
// the original's `Chapter::to_string`.
func (c *chapter) String() string {
	var b strings.Builder
	for _, p := range c.pages {
		b.WriteString(p.String())
	}
	return b.String()
}

// snapshot returns a copy of each page's buffer, in insertion order, for
// tests that assert on exact page-buffer contents.
func (c *chapter) snapshot() [][]byte {
	out := make([][]byte, len(c.pages))
	for i, p := range c.pages {
		out[i] = p.snapshot()
	}
	return out
}
