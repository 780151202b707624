// Package bbs - sentinel errors and tunable constants for the generator.
//
// All failures surface as wrapped sentinel errors; the package never panics
// at runtime. Constants are file-local policy, not user configuration: the
// draw width and residue class are part of the generator's contract.
package bbs

import "errors"

// Sentinel errors for generator construction and use.
var (
	// ErrInvalidBitLength indicates Generate was asked for primes shorter
	// than MinBitLength bits.
	ErrInvalidBitLength = errors.New("bbs: bit length too small")

	// ErrNotBlumPrime indicates a factor passed to New is not a probable
	// prime congruent to 3 mod 4.
	ErrNotBlumPrime = errors.New("bbs: factor is not a Blum prime")

	// ErrBadSeed indicates a seed equal to 0 or 1, or one sharing a factor
	// with p or q.
	ErrBadSeed = errors.New("bbs: unsuitable seed")

	// ErrGeneration indicates Generate could not find suitable primes or a
	// suitable seed within its attempt budget. This is the only fatal
	// condition: a Generator that was constructed successfully never fails.
	ErrGeneration = errors.New("bbs: parameter generation exhausted")

	// ErrInvalidRange indicates NextInt was called with min > max.
	ErrInvalidRange = errors.New("bbs: min exceeds max")
)

const (
	// MinBitLength is the smallest prime size Generate accepts. Below two
	// bits there is no prime congruent to 3 mod 4 to find.
	MinBitLength = 2

	// DefaultBitLength matches the session default: 32-bit primes give a
	// ~64-bit modulus, ample for the 15-bit draws this system performs.
	DefaultBitLength = 32

	// intBits is the number of bits drawn per NextInt call, assembled
	// most-significant first before range reduction.
	intBits = 15

	// maxAttempts bounds the candidate search per prime and per seed.
	// Roughly half of random probable primes are 3 mod 4 and almost every
	// candidate seed is coprime to two large primes, so exhaustion is a
	// near-impossibility kept finite on principle.
	maxAttempts = 4096

	// blumResidue is the required residue of p and q modulo 4.
	blumResidue = 3
)
