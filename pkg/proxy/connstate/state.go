// Package connstate holds the mutable per-connection state shared between
// a connection's two pipeline goroutines: the protocol state
// machine, the compression threshold, and the transient login-handshake
// credentials. It is deliberately free of any dependency on the pipeline
// or handler packages so that both can depend on it without a cycle.
package connstate

import (
	"sync"

	"github.com/zegevlier/mc-proxy-v2/pkg/proto/state"
)

// ConnState is the per-session mutable state. Field access from outside
// this package should go through Snapshot/Apply (for editing handlers
// that must suspend) or the direct lock-guarded accessors below (for the
// fast pre-dispatch path).
type ConnState struct {
	mu sync.RWMutex

	compressionThreshold uint32
	protoState           state.State
	secretKey            [16]byte
	accessToken          string
	playerUUID           string
	serverIP             string
	userIP               string
	connectionID         string
}

// New returns a freshly initialized ConnState in the Handshaking phase
// with compression disabled, seeded with the given defaults (used when
// WebSocket auth is disabled and config supplies static credentials
// directly).
func New(accessToken, playerUUID, serverIP, userIP, connectionID string) *ConnState {
	return &ConnState{
		protoState:   state.Handshaking,
		accessToken:  accessToken,
		playerUUID:   playerUUID,
		serverIP:     serverIP,
		userIP:       userIP,
		connectionID: connectionID,
	}
}

// Snapshot is a deep (value) copy of the current state, safe for an editing
// handler to mutate across a suspension point without holding the lock.
type Snapshot struct {
	CompressionThreshold uint32
	State                state.State
	SecretKey            [16]byte
	AccessToken          string
	PlayerUUID           string
	ServerIP             string
	UserIP               string
	ConnectionID         string
}

func (c *ConnState) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		CompressionThreshold: c.compressionThreshold,
		State:                c.protoState,
		SecretKey:            c.secretKey,
		AccessToken:          c.accessToken,
		PlayerUUID:           c.playerUUID,
		ServerIP:             c.serverIP,
		UserIP:               c.userIP,
		ConnectionID:         c.connectionID,
	}
}

// Apply overwrites all fields from a (possibly mutated) snapshot taken
// earlier via Snapshot. This is the only way an editing handler's
// across-suspension changes get published back.
func (c *ConnState) Apply(s Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.compressionThreshold = s.CompressionThreshold
	c.protoState = s.State
	c.secretKey = s.SecretKey
	c.accessToken = s.AccessToken
	c.playerUUID = s.PlayerUUID
	c.serverIP = s.ServerIP
	c.userIP = s.UserIP
	c.connectionID = s.ConnectionID
}

func (c *ConnState) State() state.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.protoState
}

func (c *ConnState) SetState(s state.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.protoState = s
}

func (c *ConnState) CompressionThreshold() uint32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.compressionThreshold
}

// SetCompressionThreshold resolves the signed/unsigned ambiguity in the
// wire value: a negative VarInt (the sign bit set on a value meant to be
// read unsigned) is treated as "no compression" rather than reinterpreted
// as a huge unsigned threshold.
func (c *ConnState) SetCompressionThreshold(announced int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if announced < 0 {
		c.compressionThreshold = 0
		return
	}
	c.compressionThreshold = uint32(announced)
}

func (c *ConnState) SecretKey() [16]byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.secretKey
}

func (c *ConnState) ServerIP() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverIP
}

func (c *ConnState) UserIP() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userIP
}

func (c *ConnState) ConnectionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connectionID
}
