package packet

import (
	"bytes"

	"github.com/google/uuid"

	"github.com/zegevlier/mc-proxy-v2/pkg/proto/codec"
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/state"
)

// HandshakePacket is the Serverbound/Handshaking packet that opens every
// connection and selects the next protocol state.
type HandshakePacket struct {
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	NextState       state.State
}

func (*HandshakePacket) Kind() Kind { return Handshake }

func (p *HandshakePacket) Encode(buf *bytes.Buffer) error {
	codec.WriteVarInt(buf, p.ProtocolVersion)
	codec.WriteString(buf, p.ServerAddress)
	codec.WriteUint16(buf, p.ServerPort)
	codec.WriteVarInt(buf, int32(p.NextState))
	return nil
}

func (p *HandshakePacket) Decode(buf *bytes.Buffer) error {
	var err error
	if p.ProtocolVersion, err = codec.ReadVarInt(buf); err != nil {
		return err
	}
	if p.ServerAddress, err = codec.ReadString(buf); err != nil {
		return err
	}
	if p.ServerPort, err = codec.ReadUint16(buf); err != nil {
		return err
	}
	next, err := codec.ReadVarInt(buf)
	if err != nil {
		return err
	}
	p.NextState = state.State(next)
	return nil
}

// StatusRequestPacket (Serverbound, Status) carries no fields.
type StatusRequestPacket struct{}

func (*StatusRequestPacket) Kind() Kind                       { return StatusRequest }
func (*StatusRequestPacket) Encode(buf *bytes.Buffer) error   { return nil }
func (*StatusRequestPacket) Decode(buf *bytes.Buffer) error   { return nil }

// StatusResponsePacket (Clientbound, Status) carries a JSON status string.
type StatusResponsePacket struct {
	JSON string
}

func (*StatusResponsePacket) Kind() Kind { return StatusResponse }
func (p *StatusResponsePacket) Encode(buf *bytes.Buffer) error {
	codec.WriteString(buf, p.JSON)
	return nil
}
func (p *StatusResponsePacket) Decode(buf *bytes.Buffer) error {
	var err error
	p.JSON, err = codec.ReadString(buf)
	return err
}

// StatusPingPacket (Serverbound, Status) echoes a client-chosen payload.
type StatusPingPacket struct {
	Payload int64
}

func (*StatusPingPacket) Kind() Kind { return StatusPing }
func (p *StatusPingPacket) Encode(buf *bytes.Buffer) error {
	codec.WriteVarLong(buf, p.Payload)
	return nil
}
func (p *StatusPingPacket) Decode(buf *bytes.Buffer) error {
	var err error
	p.Payload, err = codec.ReadVarLong(buf)
	return err
}

// StatusPongPacket (Clientbound, Status) is the Disconnect/KeepAlive-style
// terminator for the status handshake: on receipt the connection returns
// to Handshaking.
type StatusPongPacket struct {
	Payload int64
}

func (*StatusPongPacket) Kind() Kind { return StatusPong }
func (p *StatusPongPacket) Encode(buf *bytes.Buffer) error {
	codec.WriteVarLong(buf, p.Payload)
	return nil
}
func (p *StatusPongPacket) Decode(buf *bytes.Buffer) error {
	var err error
	p.Payload, err = codec.ReadVarLong(buf)
	return err
}

// LoginStartPacket (Serverbound, Login) carries the username the client
// claims; the WebSocket pre-auth handler intercepts this before it reaches
// the server.
type LoginStartPacket struct {
	Username string
}

func (*LoginStartPacket) Kind() Kind { return LoginStart }
func (p *LoginStartPacket) Encode(buf *bytes.Buffer) error {
	codec.WriteString(buf, p.Username)
	return nil
}
func (p *LoginStartPacket) Decode(buf *bytes.Buffer) error {
	var err error
	p.Username, err = codec.ReadString(buf)
	return err
}

// EncryptionRequestPacket (Clientbound, Login) triggers the session-join
// and RSA key-exchange handshake.
type EncryptionRequestPacket struct {
	ServerID    string
	PublicKey   []byte
	VerifyToken []byte
}

func (*EncryptionRequestPacket) Kind() Kind { return EncryptionRequest }
func (p *EncryptionRequestPacket) Encode(buf *bytes.Buffer) error {
	codec.WriteString(buf, p.ServerID)
	codec.WriteByteVec(buf, p.PublicKey)
	codec.WriteByteVec(buf, p.VerifyToken)
	return nil
}
func (p *EncryptionRequestPacket) Decode(buf *bytes.Buffer) error {
	var err error
	if p.ServerID, err = codec.ReadString(buf); err != nil {
		return err
	}
	if p.PublicKey, err = codec.ReadByteVec(buf); err != nil {
		return err
	}
	p.VerifyToken, err = codec.ReadByteVec(buf)
	return err
}

// EncryptionResponsePacket (Serverbound, Login) is what the proxy
// synthesizes in place of the client's real response, since the proxy
// itself completes the online-mode handshake on the player's behalf.
type EncryptionResponsePacket struct {
	SharedSecret []byte
	VerifyToken  []byte
}

func (*EncryptionResponsePacket) Kind() Kind { return EncryptionResponse }
func (p *EncryptionResponsePacket) Encode(buf *bytes.Buffer) error {
	codec.WriteByteVec(buf, p.SharedSecret)
	codec.WriteByteVec(buf, p.VerifyToken)
	return nil
}
func (p *EncryptionResponsePacket) Decode(buf *bytes.Buffer) error {
	var err error
	if p.SharedSecret, err = codec.ReadByteVec(buf); err != nil {
		return err
	}
	p.VerifyToken, err = codec.ReadByteVec(buf)
	return err
}

// LoginSuccessPacket (Clientbound, Login) completes the login phase and
// moves the connection to Play.
type LoginSuccessPacket struct {
	UUID     uuid.UUID // 16 raw bytes on the wire in protocol 754
	Username string
}

func (*LoginSuccessPacket) Kind() Kind { return LoginSuccess }
func (p *LoginSuccessPacket) Encode(buf *bytes.Buffer) error {
	codec.WriteUUID(buf, p.UUID)
	codec.WriteString(buf, p.Username)
	return nil
}
func (p *LoginSuccessPacket) Decode(buf *bytes.Buffer) error {
	var err error
	if p.UUID, err = codec.ReadUUID(buf); err != nil {
		return err
	}
	p.Username, err = codec.ReadString(buf)
	return err
}

// SetCompressionPacket (Clientbound, Login) announces the compression
// threshold the server expects from here on. A negative value resets
// the threshold to "no compression" rather than being reinterpreted as
// a large unsigned threshold.
type SetCompressionPacket struct {
	Threshold int32
}

func (*SetCompressionPacket) Kind() Kind { return SetCompression }
func (p *SetCompressionPacket) Encode(buf *bytes.Buffer) error {
	codec.WriteVarInt(buf, p.Threshold)
	return nil
}
func (p *SetCompressionPacket) Decode(buf *bytes.Buffer) error {
	var err error
	p.Threshold, err = codec.ReadVarInt(buf)
	return err
}

// PluginRequestPacket (Clientbound, Login) / PluginResponsePacket
// (Serverbound, Login) are the login-phase plugin-channel query/response
// pair (e.g. Forge/FML negotiation). The core only needs to pass these
// through untouched, so beyond the message id and channel (or success
// flag) they keep the rest of the payload as raw Data.
type PluginRequestPacket struct {
	MessageID int32
	Channel   string
	Data      []byte
}

func (*PluginRequestPacket) Kind() Kind { return PluginRequest }
func (p *PluginRequestPacket) Encode(buf *bytes.Buffer) error {
	codec.WriteVarInt(buf, p.MessageID)
	codec.WriteString(buf, p.Channel)
	buf.Write(p.Data)
	return nil
}
func (p *PluginRequestPacket) Decode(buf *bytes.Buffer) error {
	var err error
	if p.MessageID, err = codec.ReadVarInt(buf); err != nil {
		return err
	}
	if p.Channel, err = codec.ReadString(buf); err != nil {
		return err
	}
	p.Data = append([]byte(nil), buf.Bytes()...)
	return nil
}

type PluginResponsePacket struct {
	MessageID  int32
	Successful bool
	Data       []byte
}

func (*PluginResponsePacket) Kind() Kind { return PluginResponse }
func (p *PluginResponsePacket) Encode(buf *bytes.Buffer) error {
	codec.WriteVarInt(buf, p.MessageID)
	codec.WriteBool(buf, p.Successful)
	buf.Write(p.Data)
	return nil
}
func (p *PluginResponsePacket) Decode(buf *bytes.Buffer) error {
	var err error
	if p.MessageID, err = codec.ReadVarInt(buf); err != nil {
		return err
	}
	if p.Successful, err = codec.ReadBool(buf); err != nil {
		return err
	}
	p.Data = append([]byte(nil), buf.Bytes()...)
	return nil
}

// DisconnectPacket (Clientbound, Login) carries a chat-component JSON
// reason and returns the connection to Handshaking.
type DisconnectPacket struct {
	Reason string // JSON chat component, e.g. {"text":"..."}
}

func (*DisconnectPacket) Kind() Kind { return Disconnect }
func (p *DisconnectPacket) Encode(buf *bytes.Buffer) error {
	codec.WriteString(buf, p.Reason)
	return nil
}
func (p *DisconnectPacket) Decode(buf *bytes.Buffer) error {
	var err error
	p.Reason, err = codec.ReadString(buf)
	return err
}

// ChatMessageServerboundPacket (Serverbound, Play) is the one Play-phase
// packet the core recognizes; everything else transits as Unparsable.
type ChatMessageServerboundPacket struct {
	Message string
}

func (*ChatMessageServerboundPacket) Kind() Kind { return ChatMessageServerbound }
func (p *ChatMessageServerboundPacket) Encode(buf *bytes.Buffer) error {
	codec.WriteString(buf, p.Message)
	return nil
}
func (p *ChatMessageServerboundPacket) Decode(buf *bytes.Buffer) error {
	var err error
	p.Message, err = codec.ReadString(buf)
	return err
}
