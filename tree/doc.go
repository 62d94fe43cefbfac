// Package tree converts between paths and node values of the Stern-Brocot
// and Calkin-Wilf trees, answers father/sons queries, and builds level
// structures for renderers.
//
// 🚀 Two trees, one matrix product:
//
//	For a path S with move matrices M = M₁·M₂·…·Mₖ (see package matrix):
//	  Stern-Brocot  M·[1,1]ᵀ = [den, num]
//	  Calkin-Wilf   [1,1]·M  = [num, den]
//	and SternBrocot(S) == CalkinWilf(reverse(S)) for every S.
//
// ✨ Back from a fraction to its path:
//
//	CalkinWilfPath climbs from num/den to the root by subtraction:
//	  num > den → the node is a right son, num −= den
//	  num < den → the node is a left son,  den −= num
//	until num == den == 1. The moves are found leaf first, so they are
//	prepended; appended instead they spell the Stern-Brocot path.
//	The walk takes O(num+den) steps (e.g. consecutive Fibonacci numbers),
//	the same bound as the mediant-narrowing argument for the tree.
//
//	SternBrocotPathBySearch descends from the root instead, comparing the
//	target with the mediant of the current bounds; it serves as an
//	independent reference implementation.
//
// ⚙️ Usage:
//
//	f, err := tree.SternBrocot(lrpath.MustParse("LRLL"))       // 4/7
//	p, err := tree.SternBrocotPath(rational.Text("3/8"))       // LLRL
//	dad, err := tree.Father(rational.Pair{Num: 3, Den: 8})     // 2/5
//	l, r, err := tree.Sons(rational.Pair{Num: 2, Den: 5})      // 3/8, 3/7
//
// Every operation is a pure function; nothing is cached or shared.
package tree
