// Package archive provides optional in-memory compression of an
// already-encoded warts object stream (the bytes produced by
// stream.EncodeAll), for callers that keep many decoded files cached in
// memory at once. It performs no file I/O — compression and decompression
// operate purely on []byte, consistent with this codec staying out of
// filesystem concerns entirely.
//
// Grounded on the teacher's compress package: the same Compressor/
// Decompressor/Codec interface split, the same per-algorithm struct shape,
// and the same built-in codec registry, retargeted from time-series
// payload bytes to warts object-stream bytes.
package archive

import (
	"fmt"

	"github.com/dioptra-io/warts-go/format"
)

// Compressor compresses an encoded object stream.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a stream previously produced by a matching
// Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats records the outcome of a single compress operation, for
// callers that want to report or log space savings.
type CompressionStats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
}

// CompressionRatio returns CompressedSize / OriginalSize. A value under 1.0
// means the data shrank; 0.0 if OriginalSize is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage (0-100, negative if
// compression expanded the data).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec constructs a fresh Codec for the given algorithm. target
// names the caller's use (e.g. "stream archive"), included in the error
// message when t is not recognized.
func CreateCodec(t format.CompressionType, target string) (Codec, error) {
	switch t {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("archive: invalid %s compression: %s", target, t)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves one of the package's shared built-in Codec instances.
// Every built-in is safe for concurrent use; prefer this over CreateCodec
// when no per-call configuration is needed.
func GetCodec(t format.CompressionType) (Codec, error) {
	if c, ok := builtinCodecs[t]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("archive: unsupported compression type: %s", t)
}
