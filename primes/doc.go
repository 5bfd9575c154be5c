// Package primes decides primality and factors 64-bit natural numbers.
//
// The primality oracle implements the Baillie-PSW compound test: a
// Miller-Rabin pass with base 2 followed by a strong Lucas pass with
// Selfridge parameters. No counterexample to Baillie-PSW is known below
// 2^64, so for this package's input domain the test is exact, not
// probabilistic.
//
// The factorization engine layers three strategies: trial division against
// the first 100 primes, a direct primality check, and Pollard's rho with
// Brent cycle detection for the hard composites. Every reported factor is
// independently certified prime by the oracle.
//
// All functions are pure and deterministic; the same input always produces
// the same output, so results may be memoized freely by callers.
package primes
