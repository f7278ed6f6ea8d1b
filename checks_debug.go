//go:build bitvecdebug

package bitvec

import "fmt"

const debugChecks = true

func assertIndex(w *words, index int64) {
	if index < 0 || index >= w.numBits {
		panic(fmt.Sprintf("bitvec: index %d outside [0, %d)", index, w.numBits))
	}
}
