package codec

import "bytes"

// MaxVarIntLen is the longest a protocol VarInt may be on the wire.
const MaxVarIntLen = 5

// MaxVarLongLen is the longest a protocol VarLong may be on the wire.
const MaxVarLongLen = 10

// WriteVarInt appends the VarInt encoding of v to buf.
//
// Encoding is little-endian base-128: each byte carries 7 value bits, with
// the high bit set on every byte but the last. Negative values are
// reinterpreted as their 32-bit two's-complement unsigned form first, so
// they always occupy the full 5 bytes.
func WriteVarInt(buf *bytes.Buffer, v int32) {
	uv := uint32(v)
	for {
		b := byte(uv & 0x7F)
		uv >>= 7
		if uv != 0 {
			b |= 0x80
		}
		buf.WriteByte(b)
		if uv == 0 {
			return
		}
	}
}

// ReadVarInt decodes a VarInt from buf, advancing it past the bytes
// consumed. It fails with ErrUnexpectedEOF if buf runs out of bytes mid
// value, and with ErrVarIntTooBig if the fifth byte still carries the
// continuation bit.
func ReadVarInt(buf *bytes.Buffer) (int32, error) {
	var result int32
	var numRead uint
	for {
		b, err := buf.ReadByte()
		if err != nil {
			return 0, ErrUnexpectedEOF
		}
		result |= int32(b&0x7F) << (7 * numRead)
		numRead++
		if b&0x80 == 0 {
			break
		}
		if numRead >= MaxVarIntLen {
			return 0, ErrVarIntTooBig
		}
	}
	return result, nil
}

// SizeVarInt returns the number of bytes WriteVarInt would emit for v.
func SizeVarInt(v int32) int {
	uv := uint32(v)
	n := 1
	for uv >= 0x80 {
		uv >>= 7
		n++
	}
	return n
}

// WriteVarLong is the 64-bit analogue of WriteVarInt, 1..=10 bytes.
func WriteVarLong(buf *bytes.Buffer, v int64) {
	uv := uint64(v)
	for {
		b := byte(uv & 0x7F)
		uv >>= 7
		if uv != 0 {
			b |= 0x80
		}
		buf.WriteByte(b)
		if uv == 0 {
			return
		}
	}
}

// ReadVarLong is the 64-bit analogue of ReadVarInt, 1..=10 bytes.
func ReadVarLong(buf *bytes.Buffer) (int64, error) {
	var result int64
	var numRead uint
	for {
		b, err := buf.ReadByte()
		if err != nil {
			return 0, ErrUnexpectedEOF
		}
		result |= int64(b&0x7F) << (7 * numRead)
		numRead++
		if b&0x80 == 0 {
			break
		}
		if numRead >= MaxVarLongLen {
			return 0, ErrVarLongTooBig
		}
	}
	return result, nil
}
