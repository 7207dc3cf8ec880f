package notebook

import (
	"log"
	"unsafe"

	"github.com/google/uuid"

	"github.com/gobookcase/notebook/backing"
	"github.com/gobookcase/notebook/internal/releasechannel"
)

// core is the state every Notebook façade shares: the backing allocator,
// the size/growth policies that size new pages, the lock for the chosen
// SharingMode, and a stable identity for diagnostics. MultiNotebook and
// MonoNotebook[T] both embed it.
type core struct {
	back   backing.Allocator
	size   SizePolicy
	growth GrowthPolicy
	lock   rwLocker
	id     uuid.UUID
}

func newCore(back backing.Allocator, size SizePolicy, growth GrowthPolicy, mode SharingMode) core {
	if !releasechannel.Supported() {
		log.Printf("notebook: built against a toolchain without generics support")
	}
	return core{
		back:   back,
		size:   size,
		growth: growth,
		lock:   newLock(mode),
		id:     uuid.New(),
	}
}

// allocInChapter computes the base and next-page byte sizes for a T with
// the given size/alignment and forwards to ch.alloc. Callers hold
// c.lock for the duration (MultiNotebook.rawAlloc, MonoNotebook[T].Alloc).
// A failure here only happens when a new page must be created and either
// the backing allocator or the size policy itself can't satisfy the
// request, so it is logged rather than left silent.
func (c *core) allocInChapter(ch *chapter, tSize, tAlign uintptr) (unsafe.Pointer, bool) {
	base := c.size.baseBytes(tSize, tAlign)
	pageBytes := c.growth.pageBytes(base, len(ch.pages))
	ptr, err := ch.alloc(c.back, tSize, tAlign, pageBytes)
	if err != nil {
		log.Printf("notebook %s: alloc failed: %v", c.id, err)
		return nil, false
	}
	return ptr, true
}

func sizeAlignOf[T any]() (uintptr, uintptr) {
	var zero T
	return unsafe.Sizeof(zero), unsafe.Alignof(zero)
}
