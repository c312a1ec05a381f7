package connstate

import (
	"sync"

	"github.com/zegevlier/mc-proxy-v2/pkg/proto/codec"
)

// Ciphers holds the two AES-128-CFB8 stream cipher instances for one
// connection's proxy<->server link: PS encrypts proxy->server bytes,
// SP decrypts server->proxy bytes. Both are keyed simultaneously by
// Enable, and activation is one-way for the connection's lifetime.
type Ciphers struct {
	mu sync.Mutex
	PS codec.StreamCipher
	SP codec.StreamCipher
}

// Enable activates both ciphers with the same 16-byte shared secret,
// keyed and IV'd identically (key == IV), as the post-send side effect of
// EncryptionRequest handling.
func (c *Ciphers) Enable(secret []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.PS.Enable(secret); err != nil {
		return err
	}
	return c.SP.Enable(secret)
}

// EncryptServerbound encrypts data destined for the server if PS is
// active; a no-op otherwise.
func (c *Ciphers) EncryptServerbound(data []byte) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.PS.Encrypt(data)
}

// DecryptClientbound decrypts data received from the server if SP is
// active; a no-op otherwise.
func (c *Ciphers) DecryptClientbound(data []byte) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.SP.Decrypt(data)
}
