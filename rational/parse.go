package rational

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// maxDecimalDigits is the longest fractional part whose power of ten fits
// int64.
const maxDecimalDigits = 18

// Parse reads a positive fraction from text and reduces it to lowest terms.
// Accepted forms (surrounding spaces ignored):
//
//	"3/8"    numerator/denominator
//	"6/16"   reduced to 3/8
//	"5"      integer, 5/1
//	"0.375"  decimal, 3/8
//
// Errors: ErrSyntax for anything else, ErrNonPositive for a value <= 0 or a
// zero denominator, ErrOverflow when a decimal does not fit int64.
func Parse(s string) (Fraction, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return Fraction{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	var (
		num, den int64
		err      error
	)
	switch {
	case strings.Contains(text, "/"):
		num, den, err = parseRatio(text)
	case strings.Contains(text, "."):
		num, den, err = parseDecimal(text)
	default:
		num, err = parseInt(text)
		den = 1
	}
	if err != nil {
		return Fraction{}, fmt.Errorf("Parse(%q): %w", s, err)
	}

	f, err := Reduce(num, den)
	if err != nil {
		return Fraction{}, fmt.Errorf("Parse(%q): %w", s, err)
	}

	return f, nil
}

// parseRatio reads "n/d".
func parseRatio(text string) (num, den int64, err error) {
	ns, ds, _ := strings.Cut(text, "/")
	if num, err = parseInt(strings.TrimSpace(ns)); err != nil {
		return 0, 0, err
	}
	if den, err = parseInt(strings.TrimSpace(ds)); err != nil {
		return 0, 0, err
	}

	return num, den, nil
}

// parseDecimal reads "i.f" exactly as (i·10^len(f) + f) / 10^len(f).
func parseDecimal(text string) (num, den int64, err error) {
	is, fs, _ := strings.Cut(text, ".")
	if fs == "" || len(fs) > maxDecimalDigits || strings.ContainsAny(fs, "+-") {
		return 0, 0, ErrSyntax
	}
	if strings.HasPrefix(is, "-") {
		return 0, 0, ErrNonPositive
	}
	if is == "" {
		is = "0"
	}
	ip, err := parseInt(is)
	if err != nil {
		return 0, 0, err
	}
	fp, err := parseInt(fs)
	if err != nil {
		return 0, 0, err
	}

	den = 1
	for range len(fs) {
		den *= 10
	}
	scaled, ok := mulPositive(ip, den)
	if !ok {
		return 0, 0, ErrOverflow
	}
	num, ok = addPositive(scaled, fp)
	if !ok {
		return 0, 0, ErrOverflow
	}

	return num, den, nil
}

// parseInt reads a base-10 int64. Signs are accepted by strconv so that
// "-3" reports ErrNonPositive rather than ErrSyntax.
func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, ErrOverflow
	}
	if err != nil {
		return 0, ErrSyntax
	}
	if v < 0 {
		return 0, ErrNonPositive
	}

	return v, nil
}

// mulPositive multiplies two non-negative values, reporting overflow.
func mulPositive(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	p := x * y
	if p/y != x || p < 0 {
		return 0, false
	}

	return p, true
}
