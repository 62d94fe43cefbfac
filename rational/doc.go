// Package rational holds the node values of the Stern-Brocot and Calkin-Wilf
// trees: positive fractions num/den with gcd(num, den) = 1.
//
// Inputs come in three forms, modelled by the sealed sum type Input:
//
//   - Pair{Num, Den}: a raw integer pair; it must already be coprime.
//   - Fraction: a value built by New, Reduce or Parse.
//   - Text("3/8"): text, also "5" or the decimal "0.375"; reduced to
//     lowest terms like any rational literal.
//
// Normalize turns any Input into the canonical Fraction exactly once, at the
// boundary; tree algorithms only ever see canonical values.
//
// Comparison is exact: Cmp multiplies crosswise in 128 bits, so it never
// overflows for int64 fields.
package rational
