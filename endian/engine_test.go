package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	result := CheckEndianness()

	// Determine the host order independently and compare.
	var probe uint16 = 0x0102
	probeBytes := (*[2]byte)(unsafe.Pointer(&probe))

	switch probeBytes[0] {
	case 0x01:
		require.Equal(t, binary.BigEndian, result)
	case 0x02:
		require.Equal(t, binary.LittleEndian, result)
	default:
		require.Failf(t, "unexpected probe byte", "got: %v", probeBytes[0])
	}

	// Must be stable across calls.
	for range 10 {
		require.Equal(t, result, CheckEndianness())
	}
}

func TestNativeHelpersAgree(t *testing.T) {
	little := IsNativeLittleEndian()
	big := IsNativeBigEndian()

	require.NotEqual(t, little, big, "exactly one native order must be reported")
	require.True(t, little || big)

	if little {
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
	}
}

func TestLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	buf := make([]byte, 4)
	engine.PutUint32(buf, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf, "LSB must come first")
	require.Equal(t, uint32(0x01020304), engine.Uint32(buf))
}

func TestBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.BigEndian, engine)

	buf := make([]byte, 4)
	engine.PutUint32(buf, 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf, "MSB must come first")
	require.Equal(t, uint32(0x01020304), engine.Uint32(buf))
}

func TestEngineAppend(t *testing.T) {
	engine := GetLittleEndianEngine()

	// Append operations must produce the same bytes as Put operations,
	// since chunk serialization uses both paths interchangeably.
	buf := engine.AppendUint32(nil, 150)
	buf = engine.AppendUint32(buf, 0xAABBCCDD)

	want := make([]byte, 8)
	engine.PutUint32(want[0:4], 150)
	engine.PutUint32(want[4:8], 0xAABBCCDD)

	require.Equal(t, want, buf)
	require.Equal(t, uint32(150), engine.Uint32(buf[0:4]))
	require.Equal(t, uint32(0xAABBCCDD), engine.Uint32(buf[4:8]))
}

func TestEnginesDisagreeOnMultiByte(t *testing.T) {
	little := GetLittleEndianEngine()
	big := GetBigEndianEngine()

	lb := make([]byte, 8)
	bb := make([]byte, 8)
	little.PutUint64(lb, 0x0102030405060708)
	big.PutUint64(bb, 0x0102030405060708)

	require.NotEqual(t, lb, bb)
	require.Equal(t, uint64(0x0102030405060708), little.Uint64(lb))
	require.Equal(t, uint64(0x0102030405060708), big.Uint64(bb))
}
