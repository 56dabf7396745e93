package archive

import "github.com/klauspost/compress/s2"

// S2Codec compresses with Snappy-compatible S2, favoring throughput over
// ratio. A good default for streams that get decompressed far more often
// than they get compressed.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec returns a stateless S2 Codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
