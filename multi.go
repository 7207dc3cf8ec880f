package notebook

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/google/uuid"

	"github.com/gobookcase/notebook/backing"
)

// MultiNotebook can allocate any type, placed to its proper alignment.
// Internally it holds one Chapter per alignment class (1, 2, 4, 8, and
// >=16 bytes). This is especially useful for processing heterogeneous
// granular data, like parsing a JSON tree, by minimizing how often the
// backing allocator is called.
type MultiNotebook struct {
	core
	chapters [numAligns]chapter
}

// NewMulti constructs a MultiNotebook over back, sizing each Chapter's
// pages per size and growth, synchronised according to mode.
func NewMulti(back backing.Allocator, size SizePolicy, growth GrowthPolicy, mode SharingMode) *MultiNotebook {
	return &MultiNotebook{core: newCore(back, size, growth, mode)}
}

// ID returns the notebook's stable identity, for correlating log lines
// and diagnostics across its lifetime.
func (m *MultiNotebook) ID() uuid.UUID { return m.id }

func (m *MultiNotebook) rawAlloc(tSize, tAlign uintptr) (unsafe.Pointer, bool) {
	idx := chapterIndex(tAlign)
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.allocInChapter(&m.chapters[idx], tSize, tAlign)
}

func (m *MultiNotebook) rawDealloc(ptr unsafe.Pointer, tAlign uintptr) bool {
	idx := chapterIndex(tAlign)
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.chapters[idx].dealloc(ptr)
}

// Close drains every Chapter, returning each page's buffer to the backing
// allocator. It does not lock: callers must ensure no concurrent
// Alloc*/Dealloc/New/String call is in flight when Close runs.
func (m *MultiNotebook) Close() error {
	for i := range m.chapters {
		m.chapters[i].destroy(m.back)
	}
	return nil
}

// String renders every Chapter's page buffers as a hex dump, one
// "ch<n>:" section per alignment class, in alignment-ascending order.
func (m *MultiNotebook) String() string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	parts := make([]string, numAligns)
	for i := range m.chapters {
		parts[i] = fmt.Sprintf("ch%d:%s", i+1, m.chapters[i].String())
	}
	return strings.Join(parts, "\n")
}

// Alloc returns a pointer to uninitialised storage for one T, or false if
// the backing allocator failed or the computed page size could not hold
// a T.
func Alloc[T any](m *MultiNotebook) (*T, bool) {
	tSize, tAlign := sizeAlignOf[T]()
	ptr, ok := m.rawAlloc(tSize, tAlign)
	if !ok {
		return nil, false
	}
	return (*T)(ptr), true
}

// AllocZero is Alloc followed by zeroing every byte of the slot,
// including any struct padding.
func AllocZero[T any](m *MultiNotebook) (*T, bool) {
	t, ok := Alloc[T](m)
	if !ok {
		return nil, false
	}
	var zero T
	*t = zero
	return t, true
}

// AllocInit is Alloc followed by writing v into the slot.
func AllocInit[T any](m *MultiNotebook, v T) (*T, bool) {
	t, ok := Alloc[T](m)
	if !ok {
		return nil, false
	}
	*t = v
	return t, true
}

// New is AllocInit wrapped in a Handle: closing the returned Handle runs
// v's own Close() error, if it implements one, and then deallocates the
// slot.
func New[T any](m *MultiNotebook, v T) (*Handle[T], bool) {
	t, ok := AllocInit[T](m, v)
	if !ok {
		return nil, false
	}
	return newHandle[T](multiTyped[T]{m}, t), true
}

// Dealloc releases the slot backing v back to its Chapter. Under the bump
// placement discipline this never physically reclaims memory for reuse;
// see chapter.dealloc for what the reported bool actually means.
func Dealloc[T any](m *MultiNotebook, v *T) bool {
	_, tAlign := sizeAlignOf[T]()
	return m.rawDealloc(unsafe.Pointer(v), tAlign)
}

// multiTyped adapts a *MultiNotebook to the deallocator[T] interface
// Handle[T] needs. A plain method on MultiNotebook can't do this itself:
// Go methods cannot introduce a new type parameter beyond the receiver's
// own, so the per-type entry points (Alloc[T], Dealloc[T], ...) are
// package-level functions instead, and this adapter closes over T for the
// Handle they hand out.
type multiTyped[T any] struct{ m *MultiNotebook }

func (a multiTyped[T]) deallocT(v *T) bool { return Dealloc[T](a.m, v) }
