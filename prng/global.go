package prng

import "sync"

var (
	globalOnce sync.Once
	global     *Source
)

// Global returns the process-wide Source. It is unseeded until Seed is called.
func Global() *Source {
	globalOnce.Do(func() {
		global = &Source{}
	})
	return global
}

// Seed seeds the process-wide Source.
func Seed(seed int64) {
	Global().Seed(seed)
}
