package simd

import (
	"os"
	"strings"
)

// ISA represents the instruction set the kernels were selected for.
type ISA uint8

const (
	// Generic represents the scalar Go kernels.
	Generic ISA = iota
	// POPCNT represents x86-64 with a hardware population count.
	POPCNT
	// NEON represents ARM64 ASIMD (CNT on vector registers).
	NEON
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case POPCNT:
		return "popcnt"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "popcnt":
		return POPCNT, true
	case "neon":
		return NEON, true
	default:
		return Generic, false
	}
}

// Package-level state, set once from the platform init.
var (
	activeISA   ISA
	hasOverride bool

	hasPOPCNT bool // x86-64
	hasASIMD  bool // ARM64
)

// initCapabilities is called from the platform-specific init functions
// after CPU features are detected. Other platforms call it from
// capability_other.go.
func initCapabilities() {
	if override := os.Getenv("BITVEC_SIMD"); override != "" {
		if isa, ok := ParseISA(override); ok {
			hasOverride = true
			if isISAAvailable(isa) {
				activeISA = isa
				selectKernels(activeISA)
				return
			}
		}
	}

	activeISA = selectBestISA()
	selectKernels(activeISA)
}

func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case POPCNT:
		return hasPOPCNT
	case NEON:
		return hasASIMD
	default:
		return false
	}
}

func selectBestISA() ISA {
	switch {
	case hasPOPCNT:
		return POPCNT
	case hasASIMD:
		return NEON
	default:
		return Generic
	}
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if BITVEC_SIMD was set to a usable value.
func IsOverridden() bool {
	return hasOverride
}

// HasPOPCNT returns true if x86-64 POPCNT is available.
func HasPOPCNT() bool {
	return hasPOPCNT
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}
