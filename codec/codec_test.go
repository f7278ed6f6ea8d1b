package codec

import (
	"bytes"
	"encoding/binary"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/internal/hash"
)

func sparse(t *testing.T, numBits int64, step int64) *bitvec.Mutable {
	t.Helper()
	m, err := bitvec.NewMutable(numBits)
	require.NoError(t, err)
	for i := int64(0); i < numBits; i += step {
		require.NoError(t, m.Set(i))
	}
	return m
}

func random(t *testing.T, numBits int64, seed int64) *bitvec.Mutable {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := bitvec.NewMutable(numBits)
	require.NoError(t, err)
	for i := int64(0); i < numBits; i++ {
		if rng.Intn(2) == 0 {
			require.NoError(t, m.Set(i))
		}
	}
	return m
}

func TestRoundTrip(t *testing.T) {
	vectors := map[string]*bitvec.Mutable{
		"empty":  bitvec.New(),
		"sparse": sparse(t, 100_000, 997),
		"dense":  sparse(t, 4096, 1),
		"random": random(t, 10_000, 1),
	}
	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		for name, v := range vectors {
			t.Run(c.String()+"/"+name, func(t *testing.T) {
				data, err := Marshal(v, WithCompression(c))
				require.NoError(t, err)

				got, err := Unmarshal(data)
				require.NoError(t, err)
				assert.True(t, v.Equal(got))
				assert.Equal(t, v.Hash(), got.Hash())
				assert.Equal(t, v.NumWords(), got.NumWords())
				assert.Equal(t, v.Cardinality(), got.Cardinality())
			})
		}
	}
}

func TestEncode_CompressionSelection(t *testing.T) {
	v := sparse(t, 1<<16, 1000)

	plain, err := Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, headerSize+v.NumWords()*8, len(plain))
	assert.Equal(t, byte(CompressionNone), plain[5])

	lz, err := Marshal(v, WithCompression(CompressionLZ4))
	require.NoError(t, err)
	assert.Equal(t, byte(CompressionLZ4), lz[5])
	assert.Less(t, len(lz), len(plain))

	zs, err := Marshal(v, WithCompression(CompressionZSTD), WithZSTDLevel(19))
	require.NoError(t, err)
	assert.Equal(t, byte(CompressionZSTD), zs[5])
	assert.Less(t, len(zs), len(plain))

	// Random words do not compress and are stored as is.
	noise := random(t, 512, 7)
	data, err := Marshal(noise, WithCompression(CompressionLZ4))
	require.NoError(t, err)
	assert.Equal(t, byte(CompressionNone), data[5])
}

func TestEncode_OnlyWordsInUse(t *testing.T) {
	m := sparse(t, 64, 3)
	require.NoError(t, m.EnsureCapacity(1<<20))

	data, err := Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, headerSize+8, len(data))

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, int64(64), got.NumBits())
	assert.Equal(t, int64(64), got.Capacity())
	assert.True(t, m.Equal(got))
}

func TestRoundTrip_TrimmedVectorWithLargeHint(t *testing.T) {
	m, err := bitvec.NewMutable(10_000)
	require.NoError(t, err)
	require.NoError(t, m.Set(3))
	m.TrimTrailingZeros()
	require.Equal(t, int64(10_000), m.NumBits())

	data, err := Marshal(m, WithMaxWords(8))
	require.NoError(t, err)

	got, err := Unmarshal(data, WithMaxWords(8))
	require.NoError(t, err)
	assert.True(t, m.Equal(got))
	assert.Equal(t, 1, got.NumWords())
	assert.Equal(t, int64(64), got.NumBits())
	assert.Equal(t, int64(64), got.Capacity())
}

func TestEncode_NilVector(t *testing.T) {
	var v *bitvec.Immutable
	_, err := Marshal(v)
	assert.ErrorIs(t, err, bitvec.ErrNilOperand)
}

func TestDecode_Stream(t *testing.T) {
	a := sparse(t, 640, 5)
	b := sparse(t, 64, 2)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, a, WithCompression(CompressionZSTD)))
	require.NoError(t, Encode(&buf, b))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.True(t, a.Equal(got))

	got, err = Decode(&buf)
	require.NoError(t, err)
	assert.True(t, b.Equal(got))

	_, err = Decode(&buf)
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecode_Errors(t *testing.T) {
	valid, err := Marshal(sparse(t, 1024, 7))
	require.NoError(t, err)

	mutate := func(fn func(b []byte) []byte) []byte {
		return fn(bytes.Clone(valid))
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"bad magic", mutate(func(b []byte) []byte { b[0] = 'X'; return b }), ErrBadMagic},
		{"future version", mutate(func(b []byte) []byte { b[4] = Version + 1; return b }), ErrUnsupportedVersion},
		{"zero version", mutate(func(b []byte) []byte { b[4] = 0; return b }), ErrUnsupportedVersion},
		{"payload bit flip", mutate(func(b []byte) []byte { b[headerSize+3] ^= 0x10; return b }), ErrChecksum},
		{"hint bit flip", mutate(func(b []byte) []byte { b[13] ^= 0x04; return b }), ErrChecksum},
		{"hint past words", mutate(func(b []byte) []byte { binary.LittleEndian.PutUint64(b[12:], 16*64+1); return b }), ErrCorrupt},
		{"unknown compression", mutate(func(b []byte) []byte { b[5] = 9; return b }), ErrCorrupt},
		{"length mismatch", mutate(func(b []byte) []byte { binary.LittleEndian.PutUint32(b[20:], 8); return b }), ErrCorrupt},
		{"short header", valid[:10], ErrCorrupt},
		{"short payload", valid[:len(valid)-1], ErrCorrupt},
		{"trailing bytes", append(bytes.Clone(valid), 0), ErrCorrupt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_MaxWords(t *testing.T) {
	data, err := Marshal(sparse(t, 64*100, 64))
	require.NoError(t, err)

	_, err = Unmarshal(data, WithMaxWords(99))
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = Unmarshal(data, WithMaxWords(100))
	assert.NoError(t, err)
}

func TestDecode_CorruptCompressedPayload(t *testing.T) {
	for _, c := range []Compression{CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			data, err := Marshal(sparse(t, 1<<15, 100), WithCompression(c))
			require.NoError(t, err)
			require.Equal(t, byte(c), data[5])

			var h header
			require.NoError(t, h.unmarshal(data))

			// Drop the payload tail and reseal the frame so only
			// decompression can notice.
			payload := data[headerSize : len(data)-4]
			h.payloadLen = uint32(len(payload))

			frame := make([]byte, headerSize, headerSize+len(payload))
			h.marshal(frame)
			binary.LittleEndian.PutUint32(frame[24:], hash.UpdateCRC32C(hash.CRC32C(frame[:24]), payload))
			frame = append(frame, payload...)

			_, err = Unmarshal(frame)
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}
