package proxy

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnectionIDIsThirtyAlphanumericChars(t *testing.T) {
	id, err := newConnectionID()
	require.NoError(t, err)
	assert.Len(t, id, 30)
	for _, r := range id {
		assert.Contains(t, connectionIDAlphabet, string(r))
	}

	other, err := newConnectionID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestClientAddrHostStripsPort(t *testing.T) {
	conn, listener := dialLoopback(t)
	defer conn.Close()
	defer listener.Close()

	host := clientAddrHost(conn)
	assert.NotContains(t, host, ":")
}

func dialLoopback(t *testing.T) (net.Conn, net.Listener) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	return conn, ln
}
