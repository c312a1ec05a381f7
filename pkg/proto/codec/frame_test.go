package codec_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zegevlier/mc-proxy-v2/pkg/proto/codec"
)

func TestFrameRoundTripNoCompression(t *testing.T) {
	payload := []byte("localhost")
	wire := codec.WriteFrame(0x00, payload, 0)

	buf := bytes.NewBuffer(wire)
	frame, ok, err := codec.ReadFrame(buf, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int32(0x00), frame.PacketID)
	assert.Equal(t, payload, frame.Payload)
	assert.Equal(t, 0, buf.Len())
}

func TestFrameNeedsMoreBytes(t *testing.T) {
	wire := codec.WriteFrame(0x01, []byte("hello"), 0)
	buf := bytes.NewBuffer(wire[:len(wire)-2])
	_, ok, err := codec.ReadFrame(buf, 0)
	require.NoError(t, err)
	assert.False(t, ok)
	// Buffer must be restored untouched for the caller to retry once more bytes arrive.
	assert.Equal(t, len(wire)-2, buf.Len())
}

func TestFrameRoundTripCompressionBelowThreshold(t *testing.T) {
	payload := []byte("hi")
	const threshold = 256
	wire := codec.WriteFrame(0x03, payload, threshold)

	// Below threshold: data_length marker must be zero.
	buf := bytes.NewBuffer(append([]byte(nil), wire...))
	_, err := codec.ReadVarInt(buf) // outer length
	require.NoError(t, err)
	dataLength, err := codec.ReadVarInt(buf)
	require.NoError(t, err)
	assert.Equal(t, int32(0), dataLength)

	buf2 := bytes.NewBuffer(wire)
	frame, ok, err := codec.ReadFrame(buf2, threshold)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int32(0x03), frame.PacketID)
	assert.Equal(t, payload, frame.Payload)
}

func TestFrameRoundTripCompressionAboveThreshold(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), 300)
	const threshold = 256
	wire := codec.WriteFrame(0x10, payload, threshold)

	buf := bytes.NewBuffer(append([]byte(nil), wire...))
	_, err := codec.ReadVarInt(buf)
	require.NoError(t, err)
	dataLength, err := codec.ReadVarInt(buf)
	require.NoError(t, err)
	assert.NotZero(t, dataLength)

	buf2 := bytes.NewBuffer(wire)
	frame, ok, err := codec.ReadFrame(buf2, threshold)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int32(0x10), frame.PacketID)
	assert.Equal(t, payload, frame.Payload)
}

func TestReadFrameHandshakeLiteral(t *testing.T) {
	// Handshake: id 0, protocol byte 0x2f (VarInt 47), "localhost", port 25565,
	// next_state 2. The frame body is 15 bytes (id + protocol + string +
	// port + next_state), so the outer length prefix is 0x0f.
	wire := []byte{0x0f, 0x00, 0x2f, 0x09, 'l', 'o', 'c', 'a', 'l', 'h', 'o', 's', 't', 0x63, 0xdd, 0x02}
	buf := bytes.NewBuffer(wire)
	frame, ok, err := codec.ReadFrame(buf, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int32(0), frame.PacketID)
	assert.Equal(t, []byte{0x2f, 0x09, 'l', 'o', 'c', 'a', 'l', 'h', 'o', 's', 't', 0x63, 0xdd, 0x02}, frame.Payload)
}
