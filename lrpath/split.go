package lrpath

// Split cuts a level-order list into the levels of a binary tree:
// level 0 holds xs[0], level 1 the next 2 items, level k the next 2^k.
// The last level may be shorter when len(xs) is not 2^m − 1.
// The returned levels share xs's backing array; an empty xs yields nil.
//
// Example:
//
//	Split([]int{1, 2, 3, 4, 5, 6}) → [[1] [2 3] [4 5 6]]
//
// Complexity: O(log len(xs)).
func Split[T any](xs []T) [][]T {
	var levels [][]T
	for lo, width := 0, 1; lo < len(xs); lo, width = lo+width, width*2 {
		hi := min(lo+width, len(xs))
		levels = append(levels, xs[lo:hi:hi])
	}

	return levels
}
