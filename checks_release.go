//go:build !bitvecdebug

package bitvec

const debugChecks = false

func assertIndex(*words, int64) {}
