package rotation

import (
	"sync"

	"prospect-engine/internal/domain"
)

// Rotator walks the (location, category) cross product category-major:
// every category for the current location, then the next location. Both
// sequences are fixed at construction; indices start at zero.
type Rotator struct {
	mu         sync.Mutex
	locations  []string
	categories []string
	locIdx     int
	catIdx     int
}

func New(locations, categories []string) *Rotator {
	return &Rotator{locations: locations, categories: categories}
}

func (r *Rotator) Current() domain.Pair {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.Pair{
		Location: r.locations[r.locIdx],
		Category: r.categories[r.catIdx],
	}
}

// Advance moves to the next pair. Called exactly once per cycle, whether the
// cycle succeeded or not.
func (r *Rotator) Advance() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.catIdx = (r.catIdx + 1) % len(r.categories)
	if r.catIdx == 0 {
		r.locIdx = (r.locIdx + 1) % len(r.locations)
	}
}

// Size reports how many distinct pairs exist before the rotation repeats.
func (r *Rotator) Size() int {
	return len(r.locations) * len(r.categories)
}
