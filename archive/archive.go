// Package archive packs batches of stored parameter-value rows into a
// single self-describing blob for migration backups and import/export
// transport.
//
// An archive is a fixed header followed by a compressed JSON body:
//
//	offset  size  field
//	0       4     magic "PVAR"
//	4       1     archive format version (currently 1)
//	5       1     compression type (format.CompressionType)
//	6       8     xxHash64 of the uncompressed body, little-endian
//	14      ...   compressed body
//
// The body is a JSON document listing every row's identifier, value blob
// and type tag. Row value blobs are embedded verbatim: they are JSON
// literals already, so the body stays readable with the NoOp codec. The
// checksum covers the uncompressed body and is verified before any row is
// returned, so a truncated or corrupted archive fails as a whole.
package archive

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/modelbase/pavo/compress"
	"github.com/modelbase/pavo/format"
	"github.com/modelbase/pavo/internal/hash"
	"github.com/modelbase/pavo/internal/options"
)

const (
	archiveVersion = 1
	headerSize     = 14
)

var magic = [4]byte{'P', 'V', 'A', 'R'}

// ErrNotAnArchive indicates bytes that do not start with the archive magic.
var ErrNotAnArchive = errors.New("not a parameter value archive")

// ErrChecksumMismatch indicates a corrupted or truncated archive body.
var ErrChecksumMismatch = errors.New("archive checksum mismatch")

// Row is one stored parameter value row.
type Row struct {
	ID    int64
	Value []byte
	Type  string
}

type packConfig struct {
	compression format.CompressionType
}

// Option configures Pack.
type Option = options.Option[*packConfig]

// WithCompression selects the body compression. The default is Zstd.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *packConfig) error {
		if !c.Valid() {
			return fmt.Errorf("invalid archive compression: %s", c)
		}
		cfg.compression = c

		return nil
	})
}

// bodyRow is the wire form of one row inside the archive body.
type bodyRow struct {
	ID    int64           `json:"id"`
	Value json.RawMessage `json:"value"`
	Type  string          `json:"type,omitempty"`
}

type bodyDoc struct {
	Rows []bodyRow `json:"rows"`
}

// Pack serializes rows into one archive blob.
func Pack(rows []Row, opts ...Option) ([]byte, error) {
	cfg := &packConfig{compression: format.CompressionZstd}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	doc := bodyDoc{Rows: make([]bodyRow, len(rows))}
	for i, row := range rows {
		doc.Rows[i] = bodyRow{ID: row.ID, Value: json.RawMessage(row.Value), Type: row.Type}
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal archive body: %w", err)
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(body)
	if err != nil {
		return nil, fmt.Errorf("failed to compress archive body: %w", err)
	}

	out := make([]byte, headerSize, headerSize+len(compressed))
	copy(out, magic[:])
	out[4] = archiveVersion
	out[5] = byte(cfg.compression)
	binary.LittleEndian.PutUint64(out[6:], hash.Sum(body))

	return append(out, compressed...), nil
}

// Unpack restores the rows of an archive blob, verifying the body checksum
// first.
func Unpack(data []byte) ([]Row, error) {
	if len(data) < headerSize || [4]byte(data[:4]) != magic {
		return nil, ErrNotAnArchive
	}
	if data[4] != archiveVersion {
		return nil, fmt.Errorf("unsupported archive version %d", data[4])
	}

	compression := format.CompressionType(data[5])
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	body, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress archive body: %w", err)
	}
	if hash.Sum(body) != binary.LittleEndian.Uint64(data[6:]) {
		return nil, ErrChecksumMismatch
	}

	var doc bodyDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal archive body: %w", err)
	}

	rows := make([]Row, len(doc.Rows))
	for i, row := range doc.Rows {
		rows[i] = Row{ID: row.ID, Value: []byte(row.Value), Type: row.Type}
	}

	return rows, nil
}
