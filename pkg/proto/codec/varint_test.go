package codec_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zegevlier/mc-proxy-v2/pkg/proto/codec"
)

func TestVarIntGoldenTable(t *testing.T) {
	cases := []struct {
		value int32
		bytes []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{2097151, []byte{0xff, 0xff, 0x7f}},
		{2147483647, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{-1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
		{-2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	}

	for _, tc := range cases {
		var buf bytes.Buffer
		codec.WriteVarInt(&buf, tc.value)
		assert.Equal(t, tc.bytes, buf.Bytes(), "encode(%d)", tc.value)
		assert.LessOrEqual(t, buf.Len(), codec.MaxVarIntLen)

		decoded, err := codec.ReadVarInt(bytes.NewBuffer(tc.bytes))
		require.NoError(t, err)
		assert.Equal(t, tc.value, decoded, "decode(%x)", tc.bytes)
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 42, -42, 1 << 20, -(1 << 20), 2147483647, -2147483648}
	for _, v := range values {
		var buf bytes.Buffer
		codec.WriteVarInt(&buf, v)
		require.LessOrEqual(t, buf.Len(), codec.MaxVarIntLen)
		got, err := codec.ReadVarInt(&buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, 0, buf.Len(), "decoder should consume exactly the encoded bytes")
	}
}

func TestVarIntTooBig(t *testing.T) {
	// The fifth byte still carries the continuation bit, so the value does
	// not terminate within the 5-byte limit.
	buf := bytes.NewBuffer([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	_, err := codec.ReadVarInt(buf)
	assert.ErrorIs(t, err, codec.ErrVarIntTooBig)
}

func TestVarIntNeedMore(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0x80})
	_, err := codec.ReadVarInt(buf)
	assert.ErrorIs(t, err, codec.ErrUnexpectedEOF)
}

func TestVarLongRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 1 << 40, -(1 << 40), 9223372036854775807, -9223372036854775808}
	for _, v := range values {
		var buf bytes.Buffer
		codec.WriteVarLong(&buf, v)
		require.LessOrEqual(t, buf.Len(), codec.MaxVarLongLen)
		got, err := codec.ReadVarLong(&buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}
