// Package bbs implements a Blum–Blum–Shub (BBS) pseudorandom bit and
// integer generator on arbitrary-precision state.
//
// What:
//
//   - Generator: modular-squaring PRNG with modulus n = p·q, where p and q
//     are (probable) primes congruent to 3 mod 4, and a seed coprime to both.
//   - NextBit: advances state ← state² mod n and returns the low bit.
//   - NextInt: assembles intBits consecutive bits (most-significant first)
//     and reduces them into an inclusive [min, max] range.
//
// Why:
//   - Feed the builder package with a deterministic, seedable integer source
//     whose entire downstream behavior (node counts, edge endpoints, weights)
//     is a pure function of the bit stream.
//
// Determinism:
//   - New(p, q, seed) with identical arguments yields bit-for-bit identical
//     streams across instances and platforms. Generate(bits) draws its
//     parameters from crypto/rand and is therefore not reproducible.
//
// Caveats:
//   - NextInt reduces a fixed-width draw by a possibly non-power-of-two
//     range, so the distribution carries a slight low-value bias. This is a
//     documented property of the generator, not a defect.
//   - The generator is structurally BBS but makes no cryptographic claim:
//     seeds and primes are not hardened against adversarial choice.
//   - Not safe for concurrent use; every call mutates internal state.
//
// Errors:
//
//   - ErrInvalidBitLength  Generate called with bits < MinBitLength
//   - ErrNotBlumPrime      New given a modulus factor that is not a
//     probable prime congruent to 3 mod 4
//   - ErrBadSeed           New given a seed in {0, 1} or sharing a factor
//     with p or q
//   - ErrGeneration        Generate exhausted its candidate budget
//   - ErrInvalidRange      NextInt called with min > max
//
// Complexity:
//   - NextBit: one modular squaring, O(len(n)²) bit operations.
//   - NextInt: intBits squarings plus O(1) reduction.
package bbs
