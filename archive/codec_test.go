package archive

import (
	"bytes"
	"testing"

	"github.com/dioptra-io/warts-go/format"
	"github.com/stretchr/testify/require"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCodec(),
		"LZ4":  NewLZ4Codec(),
		"S2":   NewS2Codec(),
		"Zstd": NewZstdCodec(),
	}
}

func TestGetCodec_AllTypes(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd,
		format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestCreateCodec_Invalid(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0xFF), "archive test")
	require.Error(t, err)
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	samples := map[string][]byte{
		"single_byte":      {0x42},
		"repeated_pattern": bytes.Repeat([]byte{0x12, 0x05, 0x00, 0x06}, 256),
		"warts_like":       bytes.Repeat([]byte("\x12\x05\x00\x01\x00\x00\x00\x11warts-go"), 64),
	}

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			for sampleName, data := range samples {
				t.Run(sampleName, func(t *testing.T) {
					compressed, err := codec.Compress(data)
					require.NoError(t, err)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCompressionStats_Calculations(t *testing.T) {
	stats := CompressionStats{Algorithm: format.CompressionZstd, OriginalSize: 1000, CompressedSize: 300}
	require.InDelta(t, 0.3, stats.CompressionRatio(), 0.001)
	require.InDelta(t, 70.0, stats.SpaceSavings(), 0.001)

	zero := CompressionStats{OriginalSize: 0, CompressedSize: 100}
	require.Equal(t, 0.0, zero.CompressionRatio())
}
