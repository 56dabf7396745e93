package timeval

import (
	"testing"
	"time"

	"github.com/dioptra-io/warts-go/internal/wbuf"
	"github.com/stretchr/testify/require"
)

func TestFromTime_Roundtrip(t *testing.T) {
	dt := time.Date(2021, time.February, 9, 0, 11, 45, 0, time.UTC)
	tv := FromTime(dt)
	require.Equal(t, dt, tv.Time())
}

func TestDecodeEncode_Roundtrip(t *testing.T) {
	w := wbuf.NewWriter()
	defer w.Release()

	tv := Timeval{Seconds: 1612829505, Microseconds: 250000}
	tv.Encode(w)
	require.Equal(t, 8, w.Len())

	r := wbuf.NewReader(w.Bytes())
	got, err := Decode(r)
	require.NoError(t, err)
	require.Equal(t, tv, got)
	require.True(t, r.Done())
}

func TestWartsSize(t *testing.T) {
	require.Equal(t, 8, Timeval{}.WartsSize())
}
