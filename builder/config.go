// Package builder - configuration, options, and sentinel errors.
//
// Defaults reproduce the canonical model exactly; options exist for tests
// and callers that want differently sized instances without changing the
// draw order.
package builder

import "errors"

// Sentinel errors for generator configuration and invocation.
var (
	// ErrNilSource indicates Random was called with a nil IntSource.
	ErrNilSource = errors.New("builder: integer source is nil")

	// ErrInvalidNodeRange indicates reversed or non-positive node bounds.
	ErrInvalidNodeRange = errors.New("builder: invalid node range")

	// ErrInvalidEdgeFactor indicates reversed factors or a factor below one.
	ErrInvalidEdgeFactor = errors.New("builder: invalid edge factor range")

	// ErrInvalidWeightRange indicates reversed weight bounds.
	ErrInvalidWeightRange = errors.New("builder: invalid weight range")
)

// Canonical model constants.
const (
	// DefaultMinNodes and DefaultMaxNodes bound the drawn vertex count.
	DefaultMinNodes = 3
	DefaultMaxNodes = 15

	// DefaultMinEdgeFactor and DefaultMaxEdgeFactor bound the drawn edge
	// count as multiples of the vertex count: m ∈ [n·min, n·max].
	DefaultMinEdgeFactor = 1
	DefaultMaxEdgeFactor = 3

	// DefaultMinWeight and DefaultMaxWeight bound drawn edge weights.
	DefaultMinWeight = 1
	DefaultMaxWeight = 20
)

// IntSource supplies pseudorandom integers in an inclusive range.
// Implementations must return values in [min, max] for min ≤ max;
// bbs.Generator is the production implementation.
type IntSource interface {
	NextInt(min, max int) (int, error)
}

// config holds the resolved generation parameters.
type config struct {
	minNodes, maxNodes   int
	minFactor, maxFactor int
	minWeight, maxWeight int
}

// Option adjusts generation parameters. Use with Random(src, opts...).
type Option func(*config)

// defaultConfig returns the canonical model parameters.
func defaultConfig() config {
	return config{
		minNodes:  DefaultMinNodes,
		maxNodes:  DefaultMaxNodes,
		minFactor: DefaultMinEdgeFactor,
		maxFactor: DefaultMaxEdgeFactor,
		minWeight: DefaultMinWeight,
		maxWeight: DefaultMaxWeight,
	}
}

// WithNodeRange bounds the drawn vertex count to [min, max].
func WithNodeRange(min, max int) Option {
	return func(c *config) { c.minNodes, c.maxNodes = min, max }
}

// WithEdgeFactor bounds the drawn edge count to [n·min, n·max].
func WithEdgeFactor(min, max int) Option {
	return func(c *config) { c.minFactor, c.maxFactor = min, max }
}

// WithWeightRange bounds drawn edge weights to [min, max].
func WithWeightRange(min, max int) Option {
	return func(c *config) { c.minWeight, c.maxWeight = min, max }
}

// validate rejects configurations the draw loop cannot honor.
func (c config) validate() error {
	if c.minNodes < 1 || c.minNodes > c.maxNodes {
		return ErrInvalidNodeRange
	}
	if c.minFactor < 1 || c.minFactor > c.maxFactor {
		return ErrInvalidEdgeFactor
	}
	if c.minWeight > c.maxWeight {
		return ErrInvalidWeightRange
	}

	return nil
}
