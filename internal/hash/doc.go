// Package hash provides the checksum used by the bitvec wire format.
//
// All frames are protected with CRC32-Castagnoli (CRC32C), which is
// hardware accelerated on x86 (SSE4.2) and ARM64 (CRC extension).
//
// For one-shot checksums:
//
//	sum := hash.CRC32C(data)
//
// For streaming checksums:
//
//	h := hash.NewCRC32C()
//	h.Write(header)
//	h.Write(payload)
//	sum := h.Sum32()
package hash
