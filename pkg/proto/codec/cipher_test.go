package codec_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zegevlier/mc-proxy-v2/pkg/proto/codec"
)

func TestStreamCipherTransparency(t *testing.T) {
	secret := bytes.Repeat([]byte{0x42}, 16)

	var ps, sp codec.StreamCipher
	require.NoError(t, ps.Enable(secret))
	require.NoError(t, sp.Enable(secret))

	plaintext := []byte("the quick brown fox jumps over the lazy dog")
	original := append([]byte(nil), plaintext...)

	ciphertext := ps.Encrypt(append([]byte(nil), plaintext...))
	assert.NotEqual(t, original, ciphertext)

	recovered := sp.Decrypt(append([]byte(nil), ciphertext...))
	assert.Equal(t, original, recovered)
}

func TestStreamCipherInactiveIsNoop(t *testing.T) {
	var c codec.StreamCipher
	assert.False(t, c.Enabled())
	data := []byte("unchanged")
	assert.Equal(t, []byte("unchanged"), c.Encrypt(data))
}
