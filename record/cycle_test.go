package record

import (
	"testing"

	"github.com/dioptra-io/warts-go/internal/wbuf"
	"github.com/stretchr/testify/require"
)

func TestCycleStart_Fixup_NoOptionalFields(t *testing.T) {
	c := &CycleStart{CycleID: 1, ListID: 2, CycleIDHuman: 3, StartTime: 100}
	c.Fixup()

	require.False(t, c.Flags.Any())
	require.Equal(t, uint32(4*4+1), c.Length)
}

func TestCycleStart_EncodeDecode_Roundtrip(t *testing.T) {
	c := &CycleStart{
		CycleID:      1,
		ListID:       2,
		CycleIDHuman: 3,
		StartTime:    100,
		HasStopTime:  true,
		StopTime:     200,
		HasHostname:  true,
		Hostname:     "router1",
	}
	c.Fixup()

	w := wbuf.NewWriter()
	defer w.Release()
	require.NoError(t, c.Encode(w))

	got, err := DecodeCycleStart(wbuf.NewReader(w.Bytes()), c.Length)
	require.NoError(t, err)
	require.Equal(t, c.CycleID, got.CycleID)
	require.Equal(t, c.ListID, got.ListID)
	require.Equal(t, c.CycleIDHuman, got.CycleIDHuman)
	require.Equal(t, c.StartTime, got.StartTime)
	require.True(t, got.HasStopTime)
	require.Equal(t, c.StopTime, got.StopTime)
	require.True(t, got.HasHostname)
	require.Equal(t, c.Hostname, got.Hostname)
}

func TestCycleDefinition_SharesCycleStartLayout(t *testing.T) {
	d := &CycleDefinition{CycleStart{CycleID: 5, ListID: 6, CycleIDHuman: 7, StartTime: 9}}
	d.Fixup()

	w := wbuf.NewWriter()
	defer w.Release()
	require.NoError(t, d.Encode(w))

	got, err := DecodeCycleStart(wbuf.NewReader(w.Bytes()), d.Length)
	require.NoError(t, err)
	require.Equal(t, uint32(5), got.CycleID)
}

func TestCycleStop_Fixup(t *testing.T) {
	c := &CycleStop{CycleID: 1, StopTime: 1000}
	c.Fixup()

	require.False(t, c.Flags.Any())
	require.Equal(t, uint32(9), c.Length)
}

func TestCycleStop_EncodeDecode_Roundtrip(t *testing.T) {
	c := &CycleStop{CycleID: 1, StopTime: 1000}
	c.Fixup()

	w := wbuf.NewWriter()
	defer w.Release()
	c.Encode(w)

	got, err := DecodeCycleStop(wbuf.NewReader(w.Bytes()), c.Length)
	require.NoError(t, err)
	require.Equal(t, c.CycleID, got.CycleID)
	require.Equal(t, c.StopTime, got.StopTime)
	require.False(t, got.Flags.Any())
}
