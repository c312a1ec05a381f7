// Package sessionjoin completes the server-side half of the online-mode
// handshake on the player's behalf: computing the Mojang "server hash" and
// POSTing it to the session server, then RSA-encrypting the shared secret
// and verify token against the server's public key.
package sessionjoin

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const joinURL = "https://sessionserver.mojang.com/session/minecraft/join"

// ErrJoinRejected is returned when the session server does not answer
// with 204 No Content.
type ErrJoinRejected struct {
	StatusCode int
	Body       string
}

func (e *ErrJoinRejected) Error() string {
	return fmt.Sprintf("session server rejected join: status %d: %s", e.StatusCode, e.Body)
}

// ServerHash computes the Mojang "server hash": SHA-1 of
// serverID || sharedSecret || publicKeyDER, reinterpreted as a signed
// big-endian integer and rendered lower-case hex with no leading zeros
// and a leading '-' for negative values.
func ServerHash(serverID string, sharedSecret, publicKeyDER []byte) string {
	h := sha1.New()
	h.Write([]byte(serverID))
	h.Write(sharedSecret)
	h.Write(publicKeyDER)
	digest := h.Sum(nil)

	negative := digest[0]&0x80 == 0x80
	if negative {
		digest = twosComplement(digest)
	}

	trimmed := strings.TrimLeft(hex.EncodeToString(digest), "0")
	if trimmed == "" {
		trimmed = "0"
	}
	if negative {
		trimmed = "-" + trimmed
	}
	return trimmed
}

func twosComplement(b []byte) []byte {
	carry := true
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = ^b[i]
		if carry {
			carry = b[i] == 0xff
			b[i]++
		}
	}
	return b
}

type joinRequest struct {
	AccessToken     string `json:"accessToken"`
	SelectedProfile string `json:"selectedProfile"`
	ServerID        string `json:"serverId"`
}

// Client issues the join call to Mojang's session server.
type Client struct {
	http    *http.Client
	joinURL string
}

func NewClient() *Client {
	return &Client{http: &http.Client{Timeout: 10 * time.Second}, joinURL: joinURL}
}

// NewClientWithURL overrides the join endpoint, for testing against a
// local stand-in of the session server.
func NewClientWithURL(url string) *Client {
	return &Client{http: &http.Client{Timeout: 10 * time.Second}, joinURL: url}
}

// Join POSTs the join request and requires a 204 response.
func (c *Client) Join(accessToken, selectedProfile, serverHash string) error {
	body, err := json.Marshal(joinRequest{
		AccessToken:     accessToken,
		SelectedProfile: selectedProfile,
		ServerID:        serverHash,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.joinURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		var errBody bytes.Buffer
		errBody.ReadFrom(resp.Body)
		return &ErrJoinRejected{StatusCode: resp.StatusCode, Body: errBody.String()}
	}
	return nil
}

// ParsePublicKey parses the DER-encoded RSA public key carried by
// EncryptionRequest.
func ParsePublicKey(der []byte) (*rsa.PublicKey, error) {
	pub, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("parse server public key: %w", err)
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("server public key is not RSA")
	}
	return rsaPub, nil
}

// Encrypt performs PKCS#1 v1.5 encryption against the server's public key,
// used for both the shared secret and the verify token.
func Encrypt(pub *rsa.PublicKey, plaintext []byte) ([]byte, error) {
	return rsa.EncryptPKCS1v15(rand.Reader, pub, plaintext)
}
