package wsauth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/wsauth"
)

var upgrader = websocket.Upgrader{}

func serverReplying(t *testing.T, success bool, allowed bool, token, uuid string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		_, _, err = conn.ReadMessage()
		require.NoError(t, err)

		sub, _ := json.Marshal(map[string]interface{}{"success": success})
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, sub))
		if !success {
			return
		}

		resp, _ := json.Marshal(map[string]interface{}{
			"authentication_token": token,
			"uuid":                 uuid,
			"allowed":              allowed,
		})
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, resp))
	}))
}

func wsURL(httpURL string) string {
	return "ws" + strings.TrimPrefix(httpURL, "http")
}

func TestAuthenticateAllowed(t *testing.T) {
	srv := serverReplying(t, true, true, "token-123", "uuid-abc")
	defer srv.Close()

	c := wsauth.New(wsURL(srv.URL), "secret")
	result, err := c.Authenticate(context.Background(), "Steve", "play.example.com", "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, "token-123", result.AccessToken)
	assert.Equal(t, "uuid-abc", result.UUID)
}

func TestAuthenticateSubResponseFailure(t *testing.T) {
	srv := serverReplying(t, false, false, "", "")
	defer srv.Close()

	c := wsauth.New(wsURL(srv.URL), "secret")
	_, err := c.Authenticate(context.Background(), "Steve", "play.example.com", "1.2.3.4")
	assert.ErrorIs(t, err, wsauth.ErrRejected)
}

func TestAuthenticateDisallowed(t *testing.T) {
	srv := serverReplying(t, true, false, "", "")
	defer srv.Close()

	c := wsauth.New(wsURL(srv.URL), "secret")
	_, err := c.Authenticate(context.Background(), "Steve", "play.example.com", "1.2.3.4")
	assert.ErrorIs(t, err, wsauth.ErrRejected)
}

func TestAuthenticateUnreachable(t *testing.T) {
	c := wsauth.New("ws://127.0.0.1:1", "secret")
	_, err := c.Authenticate(context.Background(), "Steve", "play.example.com", "1.2.3.4")
	assert.ErrorIs(t, err, wsauth.ErrUnavailable)
}
