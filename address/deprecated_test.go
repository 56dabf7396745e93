package address

import (
	"testing"

	"github.com/dioptra-io/warts-go/format"
	"github.com/dioptra-io/warts-go/internal/wbuf"
	"github.com/stretchr/testify/require"
)

func TestDecodeDeprecated_IPv4(t *testing.T) {
	r := wbuf.NewReader([]byte{0x01, 0x01, 137, 194, 165, 109})
	d, err := DecodeDeprecated(r, 11)
	require.NoError(t, err)
	require.Equal(t, uint8(1), d.IDMod)
	require.Equal(t, format.FamilyIPv4, d.Tag)
	require.Equal(t, []byte{137, 194, 165, 109}, d.Bytes)
	require.Equal(t, 6, d.BodySize())

	w := wbuf.NewWriter()
	defer w.Release()
	d.Encode(w)
	require.Equal(t, []byte{0x01, 0x01, 137, 194, 165, 109}, w.Bytes())
}

func TestDeprecated_ToAddress(t *testing.T) {
	d := Deprecated{IDMod: 1, Tag: format.FamilyIPv6, Bytes: make([]byte, 16)}
	a := d.ToAddress()
	require.Equal(t, KindIPv6, a.Kind)
	require.Equal(t, format.FamilyIPv6, a.Family)
}
