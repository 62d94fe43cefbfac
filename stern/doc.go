// Package stern builds the Stern-Brocot tree level by level by repeated
// mediant insertion, one integer component at a time, and derives the Stern
// diatomic sequence as a byproduct.
//
// 🚀 How does it work?
//
//	Start from a seed pair [a, b] and, level after level, insert the sum of
//	every two adjacent values between them:
//
//	  seeds            0               1
//	  level 1          0       1       1
//	  level 2          0   1   1   2   1
//	  level 3          0 1 1 2 1 3 2 3 1
//
//	The values inserted at level k are the numerators of level k−1 of the
//	Stern-Brocot tree (seeds 0,1). Seeds 1,0 give the denominators, which
//	are also the numerator levels read backwards.
//
//	Reading every inserted value in order of position gives the Stern
//	diatomic sequence s(1), s(2), …:
//
//	  s(0)=0, s(1)=1, s(2n)=s(n), s(2n+1)=s(n)+s(n+1)
//
// Complexity: building m levels costs O(2^m) time and memory, so m is capped
// at MaxDepth.
package stern
