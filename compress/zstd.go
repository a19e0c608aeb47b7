package compress

// ZstdCompressor compresses with Zstandard. The default build uses the
// pure-Go implementation; building with the cgozstd tag switches to the
// cgo binding for higher throughput on large archives.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor creates a new Zstandard codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
