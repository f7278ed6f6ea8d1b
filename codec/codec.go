// Package codec reads and writes the persisted form of a bit vector.
//
// A frame is a fixed 28-byte little-endian header followed by the payload:
//
//	offset  size  field
//	0       4     magic "BVEC"
//	4       1     format version
//	5       1     payload compression (none, lz4, zstd)
//	6       2     reserved, zero
//	8       4     number of words in use
//	12      8     size hint in bits, at most 64 per word in use
//	20      4     payload length in bytes
//	24      4     CRC32C over header bytes [0,24) and the payload
//
// The uncompressed payload is the words in use, each as 8 little-endian
// bytes. Headroom past the words in use is never written, so the decoded
// vector's capacity equals its word count.
//
// Changing the layout requires a new version number: frames are persisted
// and Decode rejects versions it does not know.
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/internal/hash"
)

// Version is the frame format version written by Encode.
const Version = 1

const headerSize = 28

var magic = [4]byte{'B', 'V', 'E', 'C'}

type header struct {
	version     uint8
	compression Compression
	wlen        uint32
	numBits     int64
	payloadLen  uint32
	checksum    uint32
}

func (h *header) marshal(buf []byte) {
	copy(buf[0:4], magic[:])
	buf[4] = h.version
	buf[5] = byte(h.compression)
	binary.LittleEndian.PutUint16(buf[6:], 0)
	binary.LittleEndian.PutUint32(buf[8:], h.wlen)
	binary.LittleEndian.PutUint64(buf[12:], uint64(h.numBits))
	binary.LittleEndian.PutUint32(buf[20:], h.payloadLen)
	binary.LittleEndian.PutUint32(buf[24:], h.checksum)
}

func (h *header) unmarshal(buf []byte) error {
	if !bytes.Equal(buf[0:4], magic[:]) {
		return ErrBadMagic
	}
	h.version = buf[4]
	if h.version == 0 || h.version > Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.version)
	}
	h.compression = Compression(buf[5])
	h.wlen = binary.LittleEndian.Uint32(buf[8:])
	h.numBits = int64(binary.LittleEndian.Uint64(buf[12:]))
	h.payloadLen = binary.LittleEndian.Uint32(buf[20:])
	h.checksum = binary.LittleEndian.Uint32(buf[24:])
	return nil
}

// Encode writes v to w as a single frame.
func Encode(w io.Writer, v bitvec.Vector, optFns ...Option) error {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	ws, err := bitvec.AppendWords(nil, v)
	if err != nil {
		return err
	}
	if uint64(len(ws)) > uint64(^uint32(0)>>3) {
		return fmt.Errorf("codec: vector of %d words is too large for a frame", len(ws))
	}

	raw := make([]byte, len(ws)*8)
	for i, x := range ws {
		binary.LittleEndian.PutUint64(raw[i*8:], x)
	}

	payload, c, err := compress(raw, opts.compression, opts.zstdLevel)
	if err != nil {
		return err
	}

	h := header{
		version:     Version,
		compression: c,
		wlen:        uint32(len(ws)),
		numBits:     min(v.NumBits(), int64(len(ws))<<6),
		payloadLen:  uint32(len(payload)),
	}

	var buf [headerSize]byte
	h.marshal(buf[:])
	h.checksum = hash.UpdateCRC32C(hash.CRC32C(buf[:24]), payload)
	binary.LittleEndian.PutUint32(buf[24:], h.checksum)

	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// Decode reads one frame from r. It consumes exactly the frame's bytes.
func Decode(r io.Reader, optFns ...Option) (*bitvec.Immutable, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: short header", ErrCorrupt)
		}
		return nil, err
	}

	var h header
	if err := h.unmarshal(buf[:]); err != nil {
		return nil, err
	}
	if err := h.validate(opts.maxWords); err != nil {
		return nil, err
	}

	payload := make([]byte, h.payloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("%w: short payload: %v", ErrCorrupt, err)
	}
	if hash.UpdateCRC32C(hash.CRC32C(buf[:24]), payload) != h.checksum {
		return nil, ErrChecksum
	}

	raw := payload
	if h.compression != CompressionNone {
		raw = make([]byte, int(h.wlen)*8)
		if err := decompress(payload, raw, h.compression); err != nil {
			return nil, err
		}
	}

	ws := make([]uint64, h.wlen)
	for i := range ws {
		ws[i] = binary.LittleEndian.Uint64(raw[i*8:])
	}

	return bitvec.ImmutableFromWords(ws, len(ws))
}

func (h *header) validate(maxWords int) error {
	if int64(h.wlen) > int64(maxWords) {
		return fmt.Errorf("%w: %d words exceeds limit %d", ErrCorrupt, h.wlen, maxWords)
	}
	if h.numBits < 0 || h.numBits > int64(h.wlen)<<6 {
		return fmt.Errorf("%w: size hint %d", ErrCorrupt, h.numBits)
	}

	rawLen := uint64(h.wlen) * 8
	switch h.compression {
	case CompressionNone:
		if uint64(h.payloadLen) != rawLen {
			return fmt.Errorf("%w: payload length %d, want %d", ErrCorrupt, h.payloadLen, rawLen)
		}
	case CompressionLZ4, CompressionZSTD:
		if h.wlen == 0 || uint64(h.payloadLen) >= rawLen {
			return fmt.Errorf("%w: compressed payload length %d for %d words", ErrCorrupt, h.payloadLen, h.wlen)
		}
	default:
		return fmt.Errorf("%w: unknown %s", ErrCorrupt, h.compression)
	}
	return nil
}

// Marshal returns v encoded as a frame.
func Marshal(v bitvec.Vector, optFns ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v, optFns...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a frame that must span all of data.
func Unmarshal(data []byte, optFns ...Option) (*bitvec.Immutable, error) {
	r := bytes.NewReader(data)
	v, err := Decode(r, optFns...)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, r.Len())
	}
	return v, nil
}
