package codec

import "crypto/aes"

// StreamCipher is an AES-128-CFB8 stream cipher instance, keyed and IV'd
// with the same 16-byte shared secret. The standard library's
// crypto/cipher only exposes full-block-width CFB, so the 8-bit feedback
// segment is implemented directly over crypto/aes.Block, in the manual
// byte-at-a-time style lower-level wire codecs favor (see DESIGN.md).
//
// A zero-value StreamCipher is inactive: Encrypt/Decrypt are no-ops until
// Enable is called; activation is one-way for the life of the connection.
type StreamCipher struct {
	block   [16]byte // AES-CFB8 shift register, seeded with the IV (= key)
	cipher  cipherBlock
	enabled bool
}

type cipherBlock interface {
	BlockSize() int
	Encrypt(dst, src []byte)
}

// Enable activates the cipher with the given 16-byte shared secret, used
// as both the AES key and the initial CFB8 shift register (IV = key).
func (c *StreamCipher) Enable(secret []byte) error {
	block, err := aes.NewCipher(secret)
	if err != nil {
		return err
	}
	c.cipher = block
	copy(c.block[:], secret)
	c.enabled = true
	return nil
}

// Enabled reports whether Enable has been called.
func (c *StreamCipher) Enabled() bool {
	return c.enabled
}

// Encrypt encrypts data in place (CFB8: cipher stream, not block padded)
// and returns it. A no-op if the cipher is not yet enabled.
func (c *StreamCipher) Encrypt(data []byte) []byte {
	if !c.enabled {
		return data
	}
	var scratch [16]byte
	for i, p := range data {
		c.cipher.Encrypt(scratch[:], c.block[:])
		ct := p ^ scratch[0]
		copy(c.block[:15], c.block[1:])
		c.block[15] = ct
		data[i] = ct
	}
	return data
}

// Decrypt decrypts data in place and returns it. A no-op if the cipher is
// not yet enabled.
func (c *StreamCipher) Decrypt(data []byte) []byte {
	if !c.enabled {
		return data
	}
	var scratch [16]byte
	for i, ct := range data {
		c.cipher.Encrypt(scratch[:], c.block[:])
		pt := ct ^ scratch[0]
		copy(c.block[:15], c.block[1:])
		c.block[15] = ct
		data[i] = pt
	}
	return data
}
