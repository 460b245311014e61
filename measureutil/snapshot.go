// Package measureutil tracks cheap named counters for the integral and SCF
// hot paths (Boys evaluations, two-electron cache hits/misses, primitive
// integral evaluations) so a caller such as cmd/rhfrun can report how much
// work a run actually did without threading counters through every
// function signature.
package measureutil

import "sync/atomic"

// Counter names used by the rhf package. Keeping them here instead of in rhf
// itself lets cmd/ report on them without importing rhf's internals.
const (
	BoysEvaluations      = "boys_evaluations"
	PrimitiveIntegrals   = "primitive_integrals"
	TwoElectronCacheHit  = "two_electron_cache_hit"
	TwoElectronCacheMiss = "two_electron_cache_miss"
)

var global = newCounters()

func newCounters() map[string]*atomic.Uint64 {
	return map[string]*atomic.Uint64{
		BoysEvaluations:      {},
		PrimitiveIntegrals:   {},
		TwoElectronCacheHit:  {},
		TwoElectronCacheMiss: {},
	}
}

// Inc increments the named counter by one. Unknown names are ignored so
// callers never need to guard on whether instrumentation exists.
func Inc(name string) {
	if c, ok := global[name]; ok {
		c.Add(1)
	}
}

// SnapshotAndReset returns the current value of every counter and resets
// them all to zero.
func SnapshotAndReset() map[string]uint64 {
	out := make(map[string]uint64, len(global))
	for name, c := range global {
		out[name] = c.Swap(0)
	}
	return out
}
