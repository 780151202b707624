package bbs

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// primalityRounds is passed to big.Int.ProbablyPrime when validating caller
// supplied factors. 20 Miller-Rabin rounds push the false-positive chance
// below 2⁻⁴⁰, in line with crypto/rand.Prime's own guarantee.
const primalityRounds = 20

// Generator is a Blum–Blum–Shub pseudorandom source.
// The zero value is not usable; construct via New or Generate.
type Generator struct {
	modulus *big.Int // n = p·q
	state   *big.Int // current residue, advanced on every bit draw
}

// New constructs a Generator from explicit Blum primes p, q and a seed.
//
// Requirements (violations return sentinel errors, never panic):
//   - p and q are probable primes congruent to 3 mod 4 (ErrNotBlumPrime)
//   - seed is neither 0 nor 1 and is coprime to both p and q (ErrBadSeed)
//
// The initial state is seed mod p·q. Two Generators built from identical
// arguments produce identical bit streams.
func New(p, q, seed *big.Int) (*Generator, error) {
	// 1. Validate both factors independently for precise error reporting.
	if err := checkBlumPrime(p); err != nil {
		return nil, fmt.Errorf("bbs: New(p=%v): %w", p, err)
	}
	if err := checkBlumPrime(q); err != nil {
		return nil, fmt.Errorf("bbs: New(q=%v): %w", q, err)
	}

	// 2. Validate the seed against both factors.
	if !suitableSeed(seed, p, q) {
		return nil, fmt.Errorf("bbs: New(seed=%v): %w", seed, ErrBadSeed)
	}

	// 3. Assemble modulus and initial residue.
	n := new(big.Int).Mul(p, q)

	return &Generator{
		modulus: n,
		state:   new(big.Int).Mod(seed, n),
	}, nil
}

// Generate constructs a Generator with freshly drawn parameters: two
// probable primes of the given bit length, each congruent to 3 mod 4, and a
// random seed coprime to both. Candidates are drawn from crypto/rand and
// retried until the constraints hold; the search is bounded and surfaces
// ErrGeneration on exhaustion, the sole fatal condition of this package.
func Generate(bits int) (*Generator, error) {
	if bits < MinBitLength {
		return nil, fmt.Errorf("bbs: Generate(bits=%d): %w", bits, ErrInvalidBitLength)
	}

	// 1. Find two suitable primes.
	p, err := blumPrime(bits)
	if err != nil {
		return nil, fmt.Errorf("bbs: Generate: first prime: %w", err)
	}
	q, err := blumPrime(bits)
	if err != nil {
		return nil, fmt.Errorf("bbs: Generate: second prime: %w", err)
	}

	// 2. Find a seed: nonzero, not one, coprime to p and q.
	var seed *big.Int
	for attempt := 0; ; attempt++ {
		if attempt == maxAttempts {
			return nil, fmt.Errorf("bbs: Generate: seed search: %w", ErrGeneration)
		}
		seed, err = rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
		if err != nil {
			return nil, fmt.Errorf("bbs: Generate: seed entropy: %w", err)
		}
		if suitableSeed(seed, p, q) {
			break
		}
	}

	return New(p, q, seed)
}

// NextBit advances the state by one modular squaring and returns the least
// significant bit of the new state. Deterministic given the current state.
func (g *Generator) NextBit() uint {
	g.state.Mul(g.state, g.state)
	g.state.Mod(g.state, g.modulus)

	return g.state.Bit(0)
}

// NextInt draws a pseudorandom integer in the inclusive range [min, max].
//
// Fifteen consecutive bits are assembled most-significant first, then
// reduced modulo the range width and offset by min. Because a fixed-width
// draw is folded onto an arbitrary width, non-power-of-two ranges carry a
// slight low-value bias; callers in this system tolerate it.
//
// Returns ErrInvalidRange when min > max. Never fails otherwise.
func (g *Generator) NextInt(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("bbs: NextInt(%d, %d): %w", min, max, ErrInvalidRange)
	}

	// 1. Assemble the raw draw, MSB first.
	value := 0
	for i := 0; i < intBits; i++ {
		value = value<<1 | int(g.NextBit())
	}

	// 2. Fold onto the requested width.
	return min + value%(max-min+1), nil
}

// blumPrime draws probable primes of the given bit length until one lands
// in the 3 mod 4 residue class.
func blumPrime(bits int) (*big.Int, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		p, err := rand.Prime(rand.Reader, bits)
		if err != nil {
			return nil, fmt.Errorf("prime entropy: %w", err)
		}
		if residueMod4(p) == blumResidue {
			return p, nil
		}
	}

	return nil, ErrGeneration
}

// checkBlumPrime reports whether p is a probable prime congruent to 3 mod 4.
func checkBlumPrime(p *big.Int) error {
	if p == nil || !p.ProbablyPrime(primalityRounds) || residueMod4(p) != blumResidue {
		return ErrNotBlumPrime
	}

	return nil
}

// suitableSeed reports whether seed is valid for factors p and q:
// not nil, not 0, not 1, and coprime to both.
func suitableSeed(seed, p, q *big.Int) bool {
	if seed == nil {
		return false
	}
	one := big.NewInt(1)
	if seed.Sign() <= 0 || seed.Cmp(one) == 0 {
		return false
	}
	if new(big.Int).GCD(nil, nil, seed, p).Cmp(one) != 0 {
		return false
	}

	return new(big.Int).GCD(nil, nil, seed, q).Cmp(one) == 0
}

// residueMod4 returns p mod 4 as a small int.
func residueMod4(p *big.Int) int {
	return int(new(big.Int).Mod(p, big.NewInt(4)).Int64())
}
