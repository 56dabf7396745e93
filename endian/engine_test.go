package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	// Should implement EndianEngine interface
	require.Implements(t, (*EndianEngine)(nil), engine)

	// Should be binary.BigEndian
	require.Equal(t, binary.BigEndian, engine)

	// Test actual endian behavior
	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	// Big endian should put MSB first
	require.Equal(t, byte(0x01), bytes[0], "Big endian should put MSB first")
	require.Equal(t, byte(0x02), bytes[1], "Big endian should put LSB second")

	// Test reading back
	readValue := engine.Uint16(bytes)
	require.Equal(t, testValue, readValue)
}

func TestGetBigEndianEngine_Uint32AndUint64(t *testing.T) {
	engine := GetBigEndianEngine()

	var testUint32 uint32 = 0x01020304
	bytes32 := make([]byte, 4)
	engine.PutUint32(bytes32, testUint32)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, bytes32)
	require.Equal(t, testUint32, engine.Uint32(bytes32))

	var testUint64 uint64 = 0x0102030405060708
	bytes64 := make([]byte, 8)
	engine.PutUint64(bytes64, testUint64)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, bytes64)
	require.Equal(t, testUint64, engine.Uint64(bytes64))
}
