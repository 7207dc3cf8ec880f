package notebook

import (
	"encoding/binary"
	"testing"

	"github.com/gobookcase/notebook/backing"
)

// TestMultiBumpLayout is scenario S1: bump layout in a Multi/Personal
// arena over WordsPerPage(4)/Constant.
func TestMultiBumpLayout(t *testing.T) {
	m := NewMulti(backing.Heap{}, WordsPerPage(4), Constant(), Personal)

	i32Slot, ok := AllocInit[int32](m, 0)
	if !ok {
		t.Fatal("AllocInit[int32]: want ok")
	}
	*i32Slot = 0x0302

	for i := 0; i < 7; i++ {
		if _, ok := AllocInit[int32](m, 0); !ok {
			t.Fatalf("AllocInit[int32] #%d: want ok", i+2)
		}
	}

	for _, v := range []uint64{4, 5, 6, 7} {
		if _, ok := AllocInit[uint64](m, v); !ok {
			t.Fatalf("AllocInit[uint64](%d): want ok", v)
		}
	}

	snap := [numAligns][][]byte{}
	for i := range m.chapters {
		snap[i] = m.chapters[i].snapshot()
	}

	if len(snap[0]) != 0 {
		t.Errorf("ch[0] (align 1): want empty, got %d pages", len(snap[0]))
	}
	if len(snap[1]) != 0 {
		t.Errorf("ch[1] (align 2): want empty, got %d pages", len(snap[1]))
	}
	if len(snap[4]) != 0 {
		t.Errorf("ch[4] (align >=16): want empty, got %d pages", len(snap[4]))
	}

	if len(snap[2]) != 1 {
		t.Fatalf("ch[2] (align 4): want 1 page, got %d", len(snap[2]))
	}
	wantI32Page := append([]byte{0x02, 0x03}, make([]byte, 30)...)
	if string(snap[2][0]) != string(wantI32Page) {
		t.Errorf("ch[2] page 0 = % x, want % x", snap[2][0], wantI32Page)
	}

	if len(snap[3]) != 1 {
		t.Fatalf("ch[3] (align 8): want 1 page, got %d", len(snap[3]))
	}
	wantU64Page := make([]byte, 32)
	for i, v := range []uint64{4, 5, 6, 7} {
		binary.LittleEndian.PutUint64(wantU64Page[i*8:], v)
	}
	if string(snap[3][0]) != string(wantU64Page) {
		t.Errorf("ch[3] page 0 = % x, want % x", snap[3][0], wantU64Page)
	}

	if got := *i32Slot; got != 770 {
		t.Errorf("re-read first int32 slot = %d, want 770", got)
	}
}

// TestMultiExponentialGrowth is scenario S3: WordsPerPage(1)/Exponential
// page sizes double as alignment-8 allocations fill each page.
func TestMultiExponentialGrowth(t *testing.T) {
	m := NewMulti(backing.Heap{}, WordsPerPage(1), Exponential(), Personal)
	idx := chapterIndex(8)

	if _, ok := AllocInit[uint64](m, 1); !ok {
		t.Fatal("first AllocInit[uint64]: want ok")
	}
	if got := len(m.chapters[idx].pages); got != 1 {
		t.Fatalf("after 1st alloc: %d pages, want 1", got)
	}
	if got := len(m.chapters[idx].pages[0].buf); got != 8 {
		t.Fatalf("page 1 size = %d, want 8", got)
	}

	if _, ok := AllocInit[uint64](m, 2); !ok {
		t.Fatal("second AllocInit[uint64]: want ok")
	}
	if got := len(m.chapters[idx].pages); got != 2 {
		t.Fatalf("after 2nd alloc: %d pages, want 2", got)
	}
	if got := len(m.chapters[idx].pages[1].buf); got != 16 {
		t.Fatalf("page 2 size = %d, want 16", got)
	}
}

// TestMultiCrossAlignmentIsolation is scenario S4: allocations of
// different alignments never affect each other's page count.
func TestMultiCrossAlignmentIsolation(t *testing.T) {
	m := NewMulti(backing.Heap{}, ItemsPerPage(4), Constant(), Personal)

	if _, ok := AllocInit[uint8](m, 1); !ok {
		t.Fatal("AllocInit[uint8]: want ok")
	}
	u8Pages := len(m.chapters[chapterIndex(1)].pages)

	if _, ok := AllocInit[uint64](m, 1); !ok {
		t.Fatal("AllocInit[uint64]: want ok")
	}

	if got := len(m.chapters[chapterIndex(1)].pages); got != u8Pages {
		t.Errorf("uint64 alloc changed uint8 chapter's page count: %d -> %d", u8Pages, got)
	}
	if got := len(m.chapters[chapterIndex(8)].pages); got != 1 {
		t.Errorf("uint64 chapter page count = %d, want 1", got)
	}
}

func TestMultiAllocZero(t *testing.T) {
	m := NewMulti(backing.Heap{}, ItemsPerPage(4), Constant(), Personal)
	v, ok := AllocInit[uint32](m, 0xdeadbeef)
	if !ok {
		t.Fatal("AllocInit: want ok")
	}
	if *v != 0xdeadbeef {
		t.Fatalf("*v = %#x, want 0xdeadbeef", *v)
	}

	z, ok := AllocZero[uint32](m)
	if !ok {
		t.Fatal("AllocZero: want ok")
	}
	if *z != 0 {
		t.Fatalf("*z = %#x, want 0", *z)
	}
}

func TestMultiDealloc(t *testing.T) {
	m := NewMulti(backing.Heap{}, ItemsPerPage(4), Constant(), Personal)
	v, ok := AllocInit[uint32](m, 7)
	if !ok {
		t.Fatal("AllocInit: want ok")
	}
	if !Dealloc[uint32](m, v) {
		t.Fatal("Dealloc: want true")
	}
}

func TestMultiStringFormat(t *testing.T) {
	m := NewMulti(backing.Heap{}, ItemsPerPage(1), Constant(), Personal)
	if _, ok := AllocInit[uint8](m, 0xAB); !ok {
		t.Fatal("AllocInit[uint8]: want ok")
	}
	want := "ch1:\n  buffer: ab\nch2:\nch3:\nch4:\nch5:"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMultiClose(t *testing.T) {
	m := NewMulti(backing.Heap{}, ItemsPerPage(4), Constant(), Personal)
	if _, ok := AllocInit[uint32](m, 1); !ok {
		t.Fatal("AllocInit: want ok")
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	for i := range m.chapters {
		if len(m.chapters[i].pages) != 0 {
			t.Errorf("chapter %d still has pages after Close", i)
		}
	}
}
