package notebook

import (
	"fmt"
	"unsafe"
)

// ─── SizePolicy ──────────────────────────────────────────────────────────

// SizeKind selects how SizePolicy.baseBytes computes a Chapter's base page
// size from the type being allocated.
type SizeKind int

const (
	// AlignmentsPerPageKind sizes a page as N times the allocated type's
	// alignment.
	AlignmentsPerPageKind SizeKind = iota
	// ItemsPerPageKind sizes a page as N times the allocated type's size.
	ItemsPerPageKind
	// WordsPerPageKind sizes a page as N machine words, independent of the
	// allocated type.
	WordsPerPageKind
)

func (k SizeKind) String() string {
	switch k {
	case AlignmentsPerPageKind:
		return "AlignmentsPerPage"
	case ItemsPerPageKind:
		return "ItemsPerPage"
	case WordsPerPageKind:
		return "WordsPerPage"
	default:
		return fmt.Sprintf("SizeKind(%d)", int(k))
	}
}

// SizePolicy picks a Chapter's base page size. It is a plain value type:
// construct one with AlignmentsPerPage, ItemsPerPage, or WordsPerPage.
type SizePolicy struct {
	Kind SizeKind
	N    uintptr
}

// AlignmentsPerPage sizes each new page at n times the allocated type's
// alignment.
func AlignmentsPerPage(n uintptr) SizePolicy {
	return SizePolicy{Kind: AlignmentsPerPageKind, N: n}
}

// ItemsPerPage sizes each new page to hold n items of the allocated type.
func ItemsPerPage(n uintptr) SizePolicy {
	return SizePolicy{Kind: ItemsPerPageKind, N: n}
}

// WordsPerPage sizes each new page at n machine words (8 bytes on a
// 64-bit target), independent of the allocated type's own size.
func WordsPerPage(n uintptr) SizePolicy {
	return SizePolicy{Kind: WordsPerPageKind, N: n}
}

const wordSize = unsafe.Sizeof(uintptr(0))

func (s SizePolicy) baseBytes(tSize, tAlign uintptr) uintptr {
	switch s.Kind {
	case AlignmentsPerPageKind:
		return s.N * tAlign
	case WordsPerPageKind:
		return s.N * wordSize
	default: // ItemsPerPageKind
		return s.N * tSize
	}
}

// ─── GrowthPolicy ────────────────────────────────────────────────────────

// GrowthKind selects how GrowthPolicy.pageBytes scales a Chapter's next
// page size as more pages are added.
type GrowthKind int

const (
	// ConstantKind keeps every page the same base size.
	ConstantKind GrowthKind = iota
	// LinearKind scales linearly with the page's index.
	LinearKind
	// ExponentialKind doubles the page size for each successive page.
	ExponentialKind
)

func (k GrowthKind) String() string {
	switch k {
	case ConstantKind:
		return "Constant"
	case LinearKind:
		return "Linear"
	case ExponentialKind:
		return "Exponential"
	default:
		return fmt.Sprintf("GrowthKind(%d)", int(k))
	}
}

// GrowthPolicy picks how a Chapter's page sizes scale as more pages are
// appended. Construct one with Constant, Linear, or Exponential.
type GrowthPolicy struct {
	Kind GrowthKind
	N    uintptr
}

// Constant keeps every new page at the base size.
func Constant() GrowthPolicy { return GrowthPolicy{Kind: ConstantKind} }

// Linear scales the page at index p (0-indexed) to base*n*(p+1) bytes.
func Linear(n uintptr) GrowthPolicy { return GrowthPolicy{Kind: LinearKind, N: n} }

// Exponential doubles the page size for each page already present in the
// Chapter: the first page is base bytes, the second 2*base, the third
// 4*base, and so on.
func Exponential() GrowthPolicy { return GrowthPolicy{Kind: ExponentialKind} }

// pageBytes computes the size of the next page to append, given the
// Chapter's base page size and the number of pages already present.
func (g GrowthPolicy) pageBytes(base uintptr, pagesSoFar int) uintptr {
	switch g.Kind {
	case LinearKind:
		return base * g.N * uintptr(pagesSoFar+1)
	case ExponentialKind:
		return base << uintptr(pagesSoFar)
	default: // ConstantKind
		return base
	}
}
