// Package lrpath encodes the position of a node in a binary tree as a path of
// Left/Right moves taken from the root, and converts such paths to and from
// (level, index) coordinates.
//
// 🚀 What is a path?
//
//	The empty path "" is the root. Appending L (resp. R) moves to the left
//	(resp. right) son. A path of length k names exactly one of the 2^k nodes
//	of level k, in any binary tree.
//
//	            ""
//	       ┌─────┴─────┐
//	      "L"         "R"
//	    ┌──┴──┐     ┌──┴──┐
//	  "LL"  "LR"  "RL"  "RR"
//
// ✨ Coordinates:
//
//	Reading L as 0 and R as 1, most significant move first, a path of length
//	k is the binary numeral of its index inside level k:
//
//	  "RRL"  →  110₂  →  (level 3, index 6)
//
//	Index and FromIndex are inverse bijections for every level up to
//	MaxIndexLevel; Level(k) yields the 2^k paths of level k in index order.
//
// ⚙️ Usage:
//
//	p, err := lrpath.Parse("RRL")
//	level, idx, err := p.Index()      // 3, 6
//	q, err := lrpath.FromIndex(3, 6)  // "RRL"
//	for p := range lrpath.Level(2) {  // LL LR RL RR
//	    ...
//	}
//
// Split cuts a level-order list into the levels of a binary tree, the shape
// renderers consume.
package lrpath
