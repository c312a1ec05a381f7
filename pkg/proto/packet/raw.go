package packet

import "bytes"

// RawPacket carries an explicit wire id alongside an already-encoded
// payload. It is how Unparsable packets travel through the pipeline, and
// how code outside the registry (e.g. a remote plugin) synthesizes a
// packet the registry has no typed constructor for.
type RawPacket struct {
	ID      int32
	Payload []byte
}

func (p *RawPacket) Kind() Kind { return Unparsable }

func (p *RawPacket) Encode(buf *bytes.Buffer) error {
	buf.Write(p.Payload)
	return nil
}

func (p *RawPacket) Decode(buf *bytes.Buffer) error {
	p.Payload = append([]byte(nil), buf.Bytes()...)
	return nil
}
