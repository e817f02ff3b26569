package services

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	orderNumberPrefix     = "ORD"
	orderNumberTimeLayout = "20060102150405"
	orderSuffixMin        = 1000
	orderSuffixSpan       = 9000
)

// OrderNumberGenerator issues numbers of the form ORD<yyyyMMddHHmmss><4 digits>.
//
// Within one process numbers never repeat: the suffix is a counter that starts at
// a random value each second and walks the 1000-9999 range; once the range is
// exhausted the timestamp moves forward one second. Across processes the unique
// index on orders.order_number is the final arbiter.
type OrderNumberGenerator struct {
	mu     sync.Mutex
	now    func() time.Time
	randN  func(n int) int
	second time.Time
	start  int
	issued int
}

func NewOrderNumberGenerator() *OrderNumberGenerator {
	return NewOrderNumberGeneratorWith(time.Now, rand.IntN)
}

// NewOrderNumberGeneratorWith allows tests to pin the clock and randomness.
func NewOrderNumberGeneratorWith(now func() time.Time, randN func(n int) int) *OrderNumberGenerator {
	return &OrderNumberGenerator{now: now, randN: randN}
}

func (g *OrderNumberGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	current := g.now().UTC().Truncate(time.Second)
	switch {
	case current.After(g.second):
		g.reset(current)
	case g.issued == orderSuffixSpan:
		g.reset(g.second.Add(time.Second))
	}

	suffix := orderSuffixMin + (g.start+g.issued)%orderSuffixSpan
	g.issued++

	return fmt.Sprintf("%s%s%04d", orderNumberPrefix, g.second.Format(orderNumberTimeLayout), suffix)
}

func (g *OrderNumberGenerator) reset(second time.Time) {
	g.second = second
	g.start = g.randN(orderSuffixSpan)
	g.issued = 0
}
