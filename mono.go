package notebook

import (
	"unsafe"

	"github.com/google/uuid"

	"github.com/gobookcase/notebook/backing"
)

// MonoNotebook[T] can only allocate one type. This is especially useful
// for loading a lot of the same data into a cache line to increase cache
// hits during iteration, since every allocation lands in the same
// Chapter instead of being scattered across five alignment buckets.
type MonoNotebook[T any] struct {
	core
	chapter chapter
}

// NewMono constructs a MonoNotebook[T] over back, sizing its single
// Chapter's pages per size and growth, synchronised according to mode.
func NewMono[T any](back backing.Allocator, size SizePolicy, growth GrowthPolicy, mode SharingMode) *MonoNotebook[T] {
	return &MonoNotebook[T]{core: newCore(back, size, growth, mode)}
}

// ID returns the notebook's stable identity, for correlating log lines
// and diagnostics across its lifetime.
func (m *MonoNotebook[T]) ID() uuid.UUID { return m.id }

// Alloc returns a pointer to uninitialised storage for one T, or false if
// the backing allocator failed or the computed page size could not hold
// a T.
func (m *MonoNotebook[T]) Alloc() (*T, bool) {
	tSize, tAlign := sizeAlignOf[T]()
	m.lock.Lock()
	defer m.lock.Unlock()
	ptr, ok := m.allocInChapter(&m.chapter, tSize, tAlign)
	if !ok {
		return nil, false
	}
	return (*T)(ptr), true
}

// AllocZero is Alloc followed by zeroing every byte of the slot,
// including any struct padding.
func (m *MonoNotebook[T]) AllocZero() (*T, bool) {
	t, ok := m.Alloc()
	if !ok {
		return nil, false
	}
	var zero T
	*t = zero
	return t, true
}

// AllocInit is Alloc followed by writing v into the slot.
func (m *MonoNotebook[T]) AllocInit(v T) (*T, bool) {
	t, ok := m.Alloc()
	if !ok {
		return nil, false
	}
	*t = v
	return t, true
}

// New is AllocInit wrapped in a Handle: closing the returned Handle runs
// v's own Close() error, if it implements one, and then deallocates the
// slot.
func (m *MonoNotebook[T]) New(v T) (*Handle[T], bool) {
	t, ok := m.AllocInit(v)
	if !ok {
		return nil, false
	}
	return newHandle[T](m, t), true
}

// Dealloc releases the slot backing v back to the Chapter. See
// chapter.dealloc for what the reported bool actually means under the
// bump placement discipline.
func (m *MonoNotebook[T]) Dealloc(v *T) bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.chapter.dealloc(unsafe.Pointer(v))
}

// deallocT satisfies the deallocator[T] interface Handle[T] needs.
func (m *MonoNotebook[T]) deallocT(v *T) bool { return m.Dealloc(v) }

// Close drains the Chapter, returning its pages' buffers to the backing
// allocator. It does not lock: callers must ensure no concurrent
// Alloc*/Dealloc/New/String call is in flight when Close runs.
func (m *MonoNotebook[T]) Close() error {
	m.chapter.destroy(m.back)
	return nil
}

// String renders the Chapter's page buffers as a hex dump.
func (m *MonoNotebook[T]) String() string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.chapter.String()
}
