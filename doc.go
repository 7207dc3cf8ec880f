// Package notebook implements a region-based arena allocator over a
// pluggable backing allocator (package backing).
//
// What: two façades — MultiNotebook, a heterogeneous arena bucketing
// allocations into five Chapters by alignment class, and
// MonoNotebook[T], a monomorphic arena holding only one Chapter for a
// single fixed type — each constructed in a Personal (single-owner, no
// synchronisation) or Public (RWMutex-guarded) sharing mode, plus an
// RAII-style Handle binding a value's cleanup to the arena's own
// deallocation call.
//
// How: every Notebook is a stack of Chapters, every Chapter an ordered
// list of Pages, and every Page one backing-allocator-supplied buffer
// placed into with a bump Utensil. SizePolicy and GrowthPolicy pick how
// large each new Page is, amortising backing-allocator calls across many
// small placements.
//
// Why: processing heterogeneous granular data (e.g. parsing a JSON tree)
// where minimizing the number of calls into the backing allocator matters
// more than per-object reclamation, or loading a large batch of
// same-typed values where iteration locality matters more than individual
// object lifetime.
package notebook
