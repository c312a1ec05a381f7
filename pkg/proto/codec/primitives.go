package codec

import (
	"bytes"
	"encoding/binary"

	"github.com/google/uuid"
)

// WriteBool writes a single boolean byte: 0x00 false, 0x01 true.
func WriteBool(buf *bytes.Buffer, v bool) {
	if v {
		buf.WriteByte(0x01)
	} else {
		buf.WriteByte(0x00)
	}
}

// ReadBool reads a single boolean byte, failing with ErrInvalidData for
// anything other than 0x00/0x01.
func ReadBool(buf *bytes.Buffer) (bool, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return false, ErrUnexpectedEOF
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, ErrInvalidData
	}
}

// WriteString writes a VarInt-length-prefixed UTF-8 string.
func WriteString(buf *bytes.Buffer, s string) {
	WriteVarInt(buf, int32(len(s)))
	buf.WriteString(s)
}

// ReadString reads a VarInt-length-prefixed UTF-8 string.
func ReadString(buf *bytes.Buffer) (string, error) {
	n, err := ReadVarInt(buf)
	if err != nil {
		return "", err
	}
	if n < 0 || buf.Len() < int(n) {
		return "", ErrUnexpectedEOF
	}
	b := make([]byte, n)
	if _, err := buf.Read(b); err != nil {
		return "", ErrUnexpectedEOF
	}
	return string(b), nil
}

// WriteUint16 / ReadUint16 are the fixed-width big-endian 16-bit accessors
// used for e.g. the Handshake packet's server port.
func WriteUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func ReadUint16(buf *bytes.Buffer) (uint16, error) {
	if buf.Len() < 2 {
		return 0, ErrUnexpectedEOF
	}
	var b [2]byte
	_, _ = buf.Read(b[:])
	return binary.BigEndian.Uint16(b[:]), nil
}

// WriteUUID / ReadUUID handle the 16 big-endian bytes of a Minecraft UUID.
func WriteUUID(buf *bytes.Buffer, id uuid.UUID) {
	buf.Write(id[:])
}

func ReadUUID(buf *bytes.Buffer) (uuid.UUID, error) {
	if buf.Len() < 16 {
		return uuid.Nil, ErrUnexpectedEOF
	}
	var b [16]byte
	_, _ = buf.Read(b[:])
	return uuid.FromBytes(b[:])
}

// WriteByteVec / ReadByteVec handle a VarInt-length-prefixed byte vector.
func WriteByteVec(buf *bytes.Buffer, data []byte) {
	WriteVarInt(buf, int32(len(data)))
	buf.Write(data)
}

func ReadByteVec(buf *bytes.Buffer) ([]byte, error) {
	n, err := ReadVarInt(buf)
	if err != nil {
		return nil, err
	}
	if n < 0 || buf.Len() < int(n) {
		return nil, ErrUnexpectedEOF
	}
	b := make([]byte, n)
	if _, err := buf.Read(b); err != nil {
		return nil, ErrUnexpectedEOF
	}
	return b, nil
}

// WriteOptionalString / ReadOptionalString implement the boolean-prefixed
// optional convention for the one concrete optional value the core needs
// (Disconnect's reason sibling fields in richer packets reuse this shape).
func WriteOptionalString(buf *bytes.Buffer, s *string) {
	WriteBool(buf, s != nil)
	if s != nil {
		WriteString(buf, *s)
	}
}

func ReadOptionalString(buf *bytes.Buffer) (*string, error) {
	present, err := ReadBool(buf)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	s, err := ReadString(buf)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
