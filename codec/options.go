package codec

import "github.com/klauspost/compress/zstd"

// DefaultMaxWords bounds the word count Decode accepts: 2 GiB of payload.
const DefaultMaxWords = 1 << 28

type options struct {
	compression Compression
	zstdLevel   zstd.EncoderLevel
	maxWords    int
}

func defaultOptions() options {
	return options{
		compression: CompressionNone,
		zstdLevel:   zstd.SpeedDefault,
		maxWords:    DefaultMaxWords,
	}
}

// Option configures Encode and Decode.
type Option func(*options)

// WithCompression selects the payload compression used by Encode.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithZSTDLevel sets the zstd level (1-22) used with CompressionZSTD.
func WithZSTDLevel(level int) Option {
	return func(o *options) {
		o.zstdLevel = zstd.EncoderLevelFromZstd(level)
	}
}

// WithMaxWords limits the vector size Decode will allocate for.
func WithMaxWords(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxWords = n
		}
	}
}
