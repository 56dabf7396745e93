package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectType_String(t *testing.T) {
	require.Equal(t, "Traceroute", ObjectTraceroute.String())
	require.Equal(t, "Unknown", ObjectType(0xFFFF).String())
}

func TestTraceType_Valid(t *testing.T) {
	require.True(t, TraceICMPEcho.Valid())
	require.True(t, TraceTCPAck.Valid())
	require.False(t, TraceType(0).Valid())
	require.False(t, TraceType(7).Valid())
}

func TestTraceStopReason_Valid(t *testing.T) {
	require.True(t, TraceStopNone.Valid())
	require.True(t, TraceStopHalted.Valid())
	require.False(t, TraceStopReason(10).Valid())
}

func TestPingStopReason_Valid(t *testing.T) {
	require.True(t, PingStopNone.Valid())
	require.True(t, PingStopHalted.Valid())
	require.False(t, PingStopReason(4).Valid())
}

func TestAddressFamily_String(t *testing.T) {
	require.Equal(t, "IPv4", FamilyIPv4.String())
	require.Equal(t, "FireWire", FamilyFireWire.String())
	require.Equal(t, "Unknown", AddressFamily(9).String())
}
