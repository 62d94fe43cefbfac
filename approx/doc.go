// Package approx approximates positive real numbers by truncated
// Stern-Brocot paths.
//
// The descent rule reads x as a path, one move per step:
//
//	x < 1  → L, x ← x/(1−x)
//	x ≥ 1  → R, x ← x−1
//
// Every prefix of the resulting path names a Stern-Brocot node, and the
// nodes of successive prefixes close in on x from both sides. They are the
// continued-fraction convergents of x together with the intermediate
// fractions between them.
//
// Fractions evaluates the prefixes incrementally, one 2×2 product per move,
// so n approximants cost O(n) rather than O(n²).
//
// x is a float64 and each step loses a little precision; past roughly
// fifty moves for a typical irrational the path describes the float, not
// the real number it was meant to stand for.
package approx
