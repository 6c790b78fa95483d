package grammar

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Recycler is the optional process-wide free list for range-rule spill
// buffers described in spec §9 (original: boost.url detail/recycler.hpp).
// Implementations may omit it entirely and pay an extra allocation per
// oversized rule; Recycler exists to amortize that cost across parses.
type Recycler struct {
	mu   sync.Mutex
	free map[int][][]byte
}

// globalRecycler is the default process-wide pool used by package grammar
// when callers don't supply their own.
var globalRecycler = NewRecycler()

// NewRecycler creates an empty, thread-safe buffer pool.
func NewRecycler() *Recycler {
	return &Recycler{free: make(map[int][][]byte)}
}

// Default returns the package-wide Recycler, shared by every caller that
// doesn't need an isolated pool (spec §9).
func Default() *Recycler { return globalRecycler }

// sizeClass rounds n up to the next power-of-two bucket, capping growth at
// a reasonable ceiling so the free-list map doesn't grow unbounded for
// pathological sizes.
func sizeClass(n int) int {
	c := 64
	for c < n && c < 1<<20 {
		c <<= 1
	}
	return c
}

// TryAcquire returns a buffer with capacity of n's size class, reused from
// the free list if one of that class is available. Size classes stop at
// 1<<20, so for n above that the capacity is 1<<20, less than n.
func (p *Recycler) TryAcquire(n int) []byte {
	class := sizeClass(n)
	p.mu.Lock()
	bucket := p.free[class]
	if len(bucket) == 0 {
		p.mu.Unlock()
		logrus.WithField("size", class).Debug("grammar: recycler pool miss, allocating")
		return make([]byte, 0, class)
	}
	buf := bucket[len(bucket)-1]
	p.free[class] = bucket[:len(bucket)-1]
	p.mu.Unlock()
	return buf[:0]
}

// Release returns buf to the free list for future reuse.
func (p *Recycler) Release(buf []byte) {
	class := sizeClass(cap(buf))
	p.mu.Lock()
	p.free[class] = append(p.free[class], buf)
	p.mu.Unlock()
}
