package codec

import (
	"bytes"
	"compress/zlib"
	"io"
)

// Frame is a decoded protocol unit: a packet id and its opaque payload.
// The frame layer does not know about packet kinds; that is the registry's
// job (pkg/proto/packet).
type Frame struct {
	PacketID int32
	Payload  []byte
}

// ReadFrame attempts to decode one frame from the front of buf.
//
// It returns (frame, true, nil) on success, having consumed exactly the
// framed bytes from buf. It returns (Frame{}, false, nil) when buf does not
// yet hold a complete frame ("need more bytes") -- buf is left untouched in
// that case. It returns an error for a genuine decode failure. If the
// frame was complete but its data_length or packet id VarInt is malformed,
// the error comes with ok=true: the frame's bytes have been consumed and
// only that frame is lost. If zlib inflation fails, the error comes with
// ok=false; callers should drop the remainder of the current batch then.
func ReadFrame(buf *bytes.Buffer, threshold uint32) (Frame, bool, error) {
	snapshot := append([]byte(nil), buf.Bytes()...)
	restore := func() { buf.Reset(); buf.Write(snapshot) }

	outerLen, err := ReadVarInt(buf)
	if err != nil {
		restore()
		return Frame{}, false, nil
	}
	if outerLen < 0 || buf.Len() < int(outerLen) {
		restore()
		return Frame{}, false, nil
	}

	inner := make([]byte, outerLen)
	if _, err := io.ReadFull(buf, inner); err != nil {
		restore()
		return Frame{}, false, nil
	}
	innerBuf := bytes.NewBuffer(inner)

	if threshold == 0 {
		packetID, err := ReadVarInt(innerBuf)
		if err != nil {
			return Frame{}, true, err
		}
		return Frame{PacketID: packetID, Payload: innerBuf.Bytes()}, true, nil
	}

	dataLength, err := ReadVarInt(innerBuf)
	if err != nil {
		return Frame{}, true, err
	}

	var body *bytes.Buffer
	if dataLength == 0 {
		body = innerBuf
	} else {
		r, err := zlib.NewReader(innerBuf)
		if err != nil {
			return Frame{}, false, err
		}
		decompressed := make([]byte, dataLength)
		if _, err := io.ReadFull(r, decompressed); err != nil {
			return Frame{}, false, err
		}
		body = bytes.NewBuffer(decompressed)
	}

	packetID, err := ReadVarInt(body)
	if err != nil {
		return Frame{}, true, err
	}
	return Frame{PacketID: packetID, Payload: body.Bytes()}, true, nil
}

// WriteFrame encodes a packet id and payload into the on-wire frame for the
// given compression threshold. With threshold 0, compression is disabled
// entirely. With threshold > 0, the body is compressed only when its
// uncompressed size (packet id + payload) is >= threshold; otherwise a
// zero data_length marker is emitted.
func WriteFrame(packetID int32, payload []byte, threshold uint32) []byte {
	var body bytes.Buffer
	WriteVarInt(&body, packetID)
	body.Write(payload)

	var out bytes.Buffer
	if threshold == 0 {
		WriteVarInt(&out, int32(body.Len()))
		out.Write(body.Bytes())
		return out.Bytes()
	}

	if body.Len() < int(threshold) {
		WriteVarInt(&out, int32(1+body.Len()))
		WriteVarInt(&out, 0)
		out.Write(body.Bytes())
		return out.Bytes()
	}

	var compressed bytes.Buffer
	w, _ := zlib.NewWriterLevel(&compressed, zlib.DefaultCompression)
	_, _ = w.Write(body.Bytes())
	_ = w.Close()

	var dataLength bytes.Buffer
	WriteVarInt(&dataLength, int32(body.Len()))

	WriteVarInt(&out, int32(dataLength.Len()+compressed.Len()))
	out.Write(dataLength.Bytes())
	out.Write(compressed.Bytes())
	return out.Bytes()
}
