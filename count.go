package bitvec

import "github.com/hupe1980/bitvec/internal/simd"

// IntersectionCount returns |a AND b| without materializing the result.
func IntersectionCount(a, b Vector) (int64, error) {
	x, y, err := operands(a, b)
	if err != nil {
		return 0, err
	}
	n := min(x.wlen, y.wlen)
	return simd.PopcountAnd(x.data[:n], y.data[:n]), nil
}

// UnionCount returns |a OR b| without materializing the result.
func UnionCount(a, b Vector) (int64, error) {
	x, y, err := operands(a, b)
	if err != nil {
		return 0, err
	}
	n := min(x.wlen, y.wlen)
	return simd.PopcountOr(x.data[:n], y.data[:n]) + tailCount(x, y, n), nil
}

// XorCount returns |a XOR b| without materializing the result.
func XorCount(a, b Vector) (int64, error) {
	x, y, err := operands(a, b)
	if err != nil {
		return 0, err
	}
	n := min(x.wlen, y.wlen)
	return simd.PopcountXor(x.data[:n], y.data[:n]) + tailCount(x, y, n), nil
}

// AndNotCount returns |a AND NOT b| without materializing the result.
func AndNotCount(a, b Vector) (int64, error) {
	x, y, err := operands(a, b)
	if err != nil {
		return 0, err
	}
	n := min(x.wlen, y.wlen)
	tot := simd.PopcountAndNot(x.data[:n], y.data[:n])
	if x.wlen > n {
		tot += simd.PopcountWords(x.data[n:x.wlen])
	}
	return tot, nil
}

// tailCount counts the words of whichever operand extends past n.
func tailCount(x, y *words, n int) int64 {
	switch {
	case x.wlen > n:
		return simd.PopcountWords(x.data[n:x.wlen])
	case y.wlen > n:
		return simd.PopcountWords(y.data[n:y.wlen])
	}
	return 0
}

func operands(a, b Vector) (*words, *words, error) {
	x, err := operand(a)
	if err != nil {
		return nil, nil, err
	}
	y, err := operand(b)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
