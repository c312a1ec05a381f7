// Package wsauth implements the optional external pre-authentication step
// that runs during LoginStart: a WebSocket round trip to an operator-run
// service that decides whether a named player may join at all, before any
// Mojang session-server interaction happens.
package wsauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// ErrUnavailable means the WebSocket endpoint could not be reached, or the
// exchange broke off before a verdict was read. The LoginStart handler
// answers it with the same "Failed to authenticate" disconnect as
// ErrRejected.
var ErrUnavailable = errors.New("wsauth: pre-auth service unreachable")

// ErrRejected means the service was reached but declined to authenticate
// this connection, either up front or in its final verdict.
var ErrRejected = errors.New("wsauth: pre-auth rejected")

// sendDelay pauses briefly between opening the socket and sending the
// auth request, giving the remote service time to finish its own
// handshake bookkeeping before the first frame arrives.
const sendDelay = 100 * time.Millisecond

// Client dials a single pre-auth endpoint built from a base URL and a
// shared secret appended as a path segment.
type Client struct {
	url    string
	secret string
}

func New(url, secret string) *Client {
	return &Client{url: url, secret: secret}
}

type authRequest struct {
	Username        string `json:"username"`
	MCServerAddress string `json:"mc_server_address"`
	LoginIP         string `json:"login_ip"`
}

type authSubResponse struct {
	Success bool    `json:"success"`
	Message *string `json:"message"`
}

type authResponse struct {
	AuthenticationToken *string `json:"authentication_token"`
	UUID                *string `json:"uuid"`
	Allowed             bool    `json:"allowed"`
}

// Result carries the identity the pre-auth service assigned to an
// accepted connection.
type Result struct {
	AccessToken string
	UUID        string
}

// Authenticate performs the full handshake: dial, pause, send the auth
// request, then read the two-stage reply (an initial success/failure
// acknowledgement, followed by the final allow/deny verdict).
func (c *Client) Authenticate(ctx context.Context, username, serverIP, userIP string) (*Result, error) {
	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, _, err := dialer.DialContext(ctx, fmt.Sprintf("%s/%s", c.url, c.secret), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer conn.Close()

	select {
	case <-time.After(sendDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	req := authRequest{Username: username, MCServerAddress: serverIP, LoginIP: userIP}
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var sub authSubResponse
	if err := readJSON(conn, &sub); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !sub.Success {
		return nil, ErrRejected
	}

	var resp authResponse
	if err := readJSON(conn, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !resp.Allowed || resp.AuthenticationToken == nil || resp.UUID == nil {
		return nil, ErrRejected
	}

	return &Result{AccessToken: *resp.AuthenticationToken, UUID: *resp.UUID}, nil
}

func readJSON(conn *websocket.Conn, v interface{}) error {
	_, data, err := conn.ReadMessage()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
