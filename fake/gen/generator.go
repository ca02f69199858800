package gen

import (
	"math/rand"
	"time"
)

// Generator holds state for generating random data in certain distributions.
// It is not safe for concurrent use; give each goroutine its own.
type Generator struct {
	r  *rand.Rand
	zs map[int]*rand.Zipf
}

// NewGenerator gets a new Generator.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		r:  rand.New(rand.NewSource(seed)),
		zs: make(map[int]*rand.Zipf),
	}
}

// Uint64 gets a zipfian random uint64 with the given cardinality. Low values
// come up much more often than high ones, which makes categorical fields
// drawn through here look like real-world skewed data.
func (g *Generator) Uint64(cardinality int) uint64 {
	z, ok := g.zs[cardinality]
	if !ok {
		// rand.Zipf generates values in [0, imax], but callers expect
		// [0, cardinality) like rand.Intn, so imax is cardinality-1.
		imax := uint64(cardinality) - 1
		v := 0.05 * float64(imax)
		if v < 1.0 {
			v = 1.0
		}
		z = rand.NewZipf(g.r, 1.1, v, imax)
		g.zs[cardinality] = z
	}
	return z.Uint64()
}

// IntRange gets a uniform random int in [min, max].
func (g *Generator) IntRange(min, max int) int {
	return g.r.Intn(max-min+1) + min
}

// Date gets a uniform random day within the window of "days" days starting
// at "from", truncated to midnight UTC.
func (g *Generator) Date(from time.Time, days int) time.Time {
	return from.AddDate(0, 0, g.r.Intn(days))
}
