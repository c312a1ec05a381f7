// Package codec implements the wire encoding for the Minecraft Java Edition
// protocol: the fundamental value types, the length-prefixed frame
// envelope with optional zlib compression, and the AES-128-CFB8
// stream cipher applied to framed bytes once encryption is active.
package codec

import "errors"

// Decode errors. These are local to a single frame or value: callers log
// and drop the offending frame rather than tearing down the connection.
var (
	ErrUnexpectedEOF  = errors.New("codec: unexpected end of buffer")
	ErrVarIntTooBig   = errors.New("codec: varint is too big")
	ErrVarLongTooBig  = errors.New("codec: varlong is too big")
	ErrInvalidData    = errors.New("codec: invalid data")
	ErrUnknownEnum    = errors.New("codec: cannot re-encode unknown enum variant")
	ErrPacketIDNotSet = errors.New("codec: packet id not set")
)
