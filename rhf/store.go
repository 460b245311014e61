package rhf

import (
	"sync"

	"hartreefock/measureutil"
)

// yoshimineKey collapses the four basis-function indices of a two-electron
// integral into a single index, using the canonical composite-index
// encoding that also collapses the integral's eight-fold permutational
// symmetry onto one key: (ij|kl) = (ji|kl) = (ij|lk) = (kl|ij), etc.
func yoshimineKey(a, b, c, d int) int64 {
	ab := pairIndex(int64(a), int64(b))
	cd := pairIndex(int64(c), int64(d))
	return pairIndex(ab, cd)
}

func pairIndex(a, b int64) int64 {
	if a > b {
		return a*(a+1)/2 + b
	}
	return b*(b+1)/2 + a
}

// TwoElectronStore caches two-electron integral values keyed by their
// Yoshimine composite index, so that each of the up-to-eight symmetric
// permutations of a given (ij|kl) is computed at most once. Concurrent
// Get-or-compute calls for the same key are safe: only one caller's
// computation is kept, the rest observe the cached result.
type TwoElectronStore struct {
	mu     sync.Mutex
	values map[int64]float64
}

// NewTwoElectronStore returns an empty store.
func NewTwoElectronStore() *TwoElectronStore {
	return &TwoElectronStore{values: make(map[int64]float64)}
}

// GetOrCompute returns the cached integral value for (i,j|k,l) if present;
// otherwise it calls compute, stores the result under the canonical key,
// and returns it. The store's internal lock is held for the duration of a
// cache miss's compute call, which keeps the insert-if-absent check and the
// insert atomic at the cost of serializing misses; hits never block each
// other longer than the map lookup itself.
func (s *TwoElectronStore) GetOrCompute(i, j, k, l int, compute func() (float64, error)) (float64, error) {
	key := yoshimineKey(i, j, k, l)

	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.values[key]; ok {
		measureutil.Inc(measureutil.TwoElectronCacheHit)
		return v, nil
	}

	measureutil.Inc(measureutil.TwoElectronCacheMiss)
	v, err := compute()
	if err != nil {
		return 0, err
	}
	s.values[key] = v
	return v, nil
}

// Len returns the number of distinct integrals currently cached.
func (s *TwoElectronStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}
