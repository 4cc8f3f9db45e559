// Package registry holds the backend registry for quantization kernels.
//
// Backend packages register their kernel variants via init() functions; the
// front-end packages select the highest-priority variant compatible with the
// detected CPU at first use. Not every backend implements every kernel, so
// lookups are per-operation.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// PowerLawFn maps src magnitudes to dst[i] = |src[i]|^(3/4) for i in
// [0, maxNZ] and returns the sum of magnitudes and the maximum mapped value
// over that range.
type PowerLawFn func(dst, src []float32, maxNZ int) (sum, max float32)

// HartleyFn transforms fz, a real buffer of length 2*n, to its Hartley-domain
// representation in place.
type HartleyFn func(fz []float32, n int)

// OpEntry is one registered kernel backend.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	// Kernels provided by this backend. Nil fields mean the backend does
	// not implement that operation and lookup falls through to the next
	// compatible entry.
	PowerLaw PowerLawFn
	Hartley  HartleyFn
}

// OpRegistry stores available kernel backends.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds a backend entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority backend supported by features,
// regardless of which kernels it implements.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	return r.lookupWhere(features, func(*OpEntry) bool { return true })
}

// LookupPowerLaw returns the best compatible backend providing the power-law
// kernel.
func (r *OpRegistry) LookupPowerLaw(features cpu.Features) *OpEntry {
	return r.lookupWhere(features, func(e *OpEntry) bool { return e.PowerLaw != nil })
}

// LookupHartley returns the best compatible backend providing the Hartley
// kernel.
func (r *OpRegistry) LookupHartley(features cpu.Features) *OpEntry {
	return r.lookupWhere(features, func(e *OpEntry) bool { return e.Hartley != nil })
}

func (r *OpRegistry) lookupWhere(features cpu.Features, has func(*OpEntry) bool) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) && has(entry) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
