package archive

// NoOpCodec passes data through unchanged. Useful as a baseline when
// comparing compression ratios, or when the caller already knows the
// decoded object stream won't shrink further (e.g. it was produced from
// already-compressed upstream captures).
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec returns a Codec that does not compress.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
