package matrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/ratree/lrpath"
	"github.com/katalvlaran/ratree/matrix"
)

// BenchmarkCompose1000 composes a 1000-move path that stays within int64.
func BenchmarkCompose1000(b *testing.B) {
	p := lrpath.Path(strings.Repeat("L", 500) + strings.Repeat("R", 500))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Compose(p); err != nil {
			b.Fatalf("Compose failed: %v", err)
		}
	}
}

// BenchmarkPowLeft raises Left to a large power.
func BenchmarkPowLeft(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Pow(matrix.Left, 1<<40); err != nil {
			b.Fatalf("Pow failed: %v", err)
		}
	}
}
