package rational

// Fraction is a positive rational Num/Den in lowest terms.
// The zero value is not a valid Fraction; build values with New, Reduce or
// Parse. Fractions are compared by value with ==.
type Fraction struct {
	Num int64 // numerator, > 0
	Den int64 // denominator, > 0
}

// One is the root value 1/1 of both trees.
var One = Fraction{Num: 1, Den: 1}

// Input is one of the accepted fraction forms: Pair, Fraction or Text.
// The interface is sealed; Normalize is its only consumer.
type Input interface {
	normalize() (Fraction, error)
}

// Pair is a raw (numerator, denominator) input. It is accepted only if both
// are positive and coprime; it is never reduced.
type Pair struct {
	Num int64
	Den int64
}

// Text is a textual fraction: "n/d", "n" or a decimal "i.f".
// It is reduced to lowest terms.
type Text string

func (p Pair) normalize() (Fraction, error) { return New(p.Num, p.Den) }

func (f Fraction) normalize() (Fraction, error) { return New(f.Num, f.Den) }

func (t Text) normalize() (Fraction, error) { return Parse(string(t)) }
