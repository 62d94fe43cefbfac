// Package ratree enumerates the positive rationals with two classical binary
// trees: the Stern-Brocot tree and the Calkin-Wilf tree.
//
// 🚀 What is ratree?
//
//	A small, exact library that maps between three
//	coordinates of every node:
//		• a path from the root, written with L (left) and R (right) moves
//		• the coprime pair numerator/denominator stored at that node
//		• the (level, index) position of the node inside its level
//
// ✨ Highlights:
//
//   - Exact int64 arithmetic, overflow is reported, never wrapped
//   - Iterative matrix products, safe for paths thousands of moves long
//   - Subtractive Calkin-Wilf walk, the Stern-Brocot path is its reverse
//   - Rational approximation of reals by truncated Stern-Brocot descents
//
// Under the hood, everything is organized under these subpackages:
//
//	lrpath/: L/R paths, (level,index) coordinates, level enumeration
//	stern/: mediant tree builder and the Stern diatomic sequence
//	matrix/: exact 2×2 move matrices (Identity, Left, Right)
//	rational/: coprime fractions and the three accepted input forms
//	tree/: path ⇄ fraction converters, father/sons, level sets
//	approx/: Stern-Brocot approximation of real numbers
//	cmd/ratree/: command-line front end over all of the above
//
// Quick ASCII example (Stern-Brocot, levels 0..2):
//
//	            1/1
//	       ┌─────┴─────┐
//	      1/2         2/1
//	    ┌──┴──┐     ┌──┴──┐
//	   1/3   2/3   3/2   3/1
//
// The node 3/8 sits at path LLRL in Stern-Brocot and at LRLL in Calkin-Wilf.
//
//	go get github.com/katalvlaran/ratree
package ratree
