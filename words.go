package bitvec

// words is the storage shared by every vector variant.
//
// data may be longer than wlen because of growth headroom. Words at index
// >= wlen are logically zero; any code that extends wlen must zero them first.
type words struct {
	data    []uint64
	wlen    int
	numBits int64 // advisory, see NumBits
}

// wordsFor returns the number of words needed to hold numBits bits.
func wordsFor(numBits int64) int {
	return int((numBits-1)>>6) + 1
}

// oversize returns the allocation size for a minimum of m words.
// It adds an eighth with a floor of three words; zero stays zero.
func oversize(m int) int {
	if m == 0 {
		return 0
	}
	return m + max(m>>3, 3)
}

func newWords(numBits int64) (words, error) {
	if numBits < 0 {
		return words{}, ErrNegativeSize
	}
	n := 0
	if numBits > 0 {
		n = wordsFor(numBits)
	}
	return words{
		data:    make([]uint64, n),
		wlen:    n,
		numBits: numBits,
	}, nil
}

// wordsFrom builds storage over src. When clone is false src is aliased.
func wordsFrom(src []uint64, wlen int, clone bool) (words, error) {
	if wlen < 0 || wlen > len(src) {
		return words{}, ErrWordCount
	}
	data := src
	if clone {
		data = make([]uint64, len(src))
		copy(data, src[:wlen])
	}
	return words{
		data:    data,
		wlen:    wlen,
		numBits: int64(wlen) << 6,
	}, nil
}

// clone returns an independent copy with the same physical length.
// Only the in-use words are copied; headroom comes back zeroed.
func (w *words) clone() words {
	data := make([]uint64, len(w.data))
	copy(data, w.data[:w.wlen])
	return words{data: data, wlen: w.wlen, numBits: w.numBits}
}

// ensureWordCapacity grows the backing array to hold at least n words.
// It never shrinks.
func (w *words) ensureWordCapacity(n int) {
	if len(w.data) >= n {
		return
	}
	grown := make([]uint64, oversize(n))
	copy(grown, w.data[:w.wlen])
	w.data = grown
}

// extendLen raises wlen to n, zeroing the words that become visible.
func (w *words) extendLen(n int) {
	if n <= w.wlen {
		return
	}
	clear(w.data[w.wlen:n])
	w.wlen = n
}

// expandingWordNum returns the word holding index, growing storage and
// wlen so the word is addressable.
func (w *words) expandingWordNum(index int64) int {
	wi := int(index >> 6)
	if wi >= w.wlen {
		w.ensureWordCapacity(wi + 1)
		w.extendLen(wi + 1)
	}
	if index >= w.numBits {
		w.numBits = index + 1
	}
	return wi
}

// NumWords returns the number of words in use.
func (w *words) NumWords() int { return w.wlen }

// Capacity returns one more than the highest addressable bit index without
// reallocation, i.e. the physical word count times 64.
func (w *words) Capacity() int64 { return int64(len(w.data)) << 6 }

// NumBits returns the advisory size hint used by the unchecked accessors.
// It is not authoritative for capacity or content.
func (w *words) NumBits() int64 { return w.numBits }

// AppendWords appends the in-use words of v to dst and returns the extended
// slice. Headroom past NumWords is not included.
func AppendWords(dst []uint64, v Vector) ([]uint64, error) {
	w, err := operand(v)
	if err != nil {
		return dst, err
	}
	return append(dst, w.data[:w.wlen]...), nil
}
