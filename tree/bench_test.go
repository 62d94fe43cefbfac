package tree_test

import (
	"testing"

	"github.com/katalvlaran/ratree/lrpath"
	"github.com/katalvlaran/ratree/rational"
	"github.com/katalvlaran/ratree/tree"
)

// fibPair is F(82)/F(81); consecutive Fibonacci numbers give the longest
// subtractive walk for their magnitude.
var fibPair = rational.Pair{Num: 61305790721611591, Den: 37889062373143906}

func BenchmarkSternBrocotPath_Fibonacci(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := tree.SternBrocotPath(fibPair); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSternBrocotPathBySearch_Fibonacci(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := tree.SternBrocotPathBySearch(fibPair); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCalkinWilf_Level20(b *testing.B) {
	p, _ := lrpath.FromIndex(20, 0xA5A5A)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.CalkinWilf(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSternBrocotLevels_16(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := tree.SternBrocotLevels(16); err != nil {
			b.Fatal(err)
		}
	}
}
