package sessionjoin_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/sessionjoin"
)

// Values lifted from the well-known wiki.vg server-hash worked example.
func TestServerHashKnownVectors(t *testing.T) {
	assert.Equal(t, "4ed1f46bbe04bc756bcb17c0c7ce3e4632f06a48", sessionjoin.ServerHash("", []byte("Notch"), nil))
	assert.Equal(t, "-7c9d5b0044c130109e2d805d46adcba9faf9d294", sessionjoin.ServerHash("", []byte("jeb_"), nil))
	assert.Equal(t, "88e16a1019277b15d58faf0541e11910eb756f6", sessionjoin.ServerHash("", []byte("simon"), nil))
}

func TestJoinSucceedsOn204(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "token", body["accessToken"])
		assert.Equal(t, "uuid", body["selectedProfile"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := sessionjoin.NewClientWithURL(srv.URL)
	assert.NoError(t, c.Join("token", "uuid", "hash"))
}

func TestJoinFailsOnNon204(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"ForbiddenOperationException"}`))
	}))
	defer srv.Close()

	c := sessionjoin.NewClientWithURL(srv.URL)
	err := c.Join("token", "uuid", "hash")
	require.Error(t, err)
	var rejected *sessionjoin.ErrJoinRejected
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, http.StatusForbidden, rejected.StatusCode)
}

func TestEncryptRoundTrips(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	pub, err := sessionjoin.ParsePublicKey(der)
	require.NoError(t, err)

	secret := []byte("0123456789abcdef")
	ct, err := sessionjoin.Encrypt(pub, secret)
	require.NoError(t, err)

	pt, err := rsa.DecryptPKCS1v15(nil, priv, ct)
	require.NoError(t, err)
	assert.Equal(t, secret, pt)
}
