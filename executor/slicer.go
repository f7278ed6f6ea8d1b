package executor

// span is a contiguous range [from, to) of the input.
type span struct {
	from, to int
}

// sliceSpans splits n items into ceil(n/parts) sized contiguous spans.
// The last span holds the remainder.
func sliceSpans(n, parts int) []span {
	if n <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}
	size := (n + parts - 1) / parts

	spans := make([]span, 0, (n+size-1)/size)
	for from := 0; from < n; from += size {
		spans = append(spans, span{from: from, to: min(from+size, n)})
	}
	return spans
}
