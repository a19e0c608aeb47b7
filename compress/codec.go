// Package compress provides the compression codecs used by archive
// payloads.
//
// Archive bodies are JSON row batches: highly repetitive text that
// compresses well with any of the supported algorithms. Zstd gives the
// best ratio, S2 and LZ4 trade ratio for speed, and NoOp keeps the bytes
// as-is for debugging and baseline measurements.
package compress

import (
	"fmt"

	"github.com/modelbase/pavo/format"
)

// Compressor compresses a payload.
//
// Implementations are safe for concurrent use. The returned slice is newly
// allocated and owned by the caller; the input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload compressed by the matching Compressor.
//
// Corrupted or mismatched input returns an error, never a partial payload.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// builtinCodecs is the static codec table, fixed at build time.
var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the given compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
