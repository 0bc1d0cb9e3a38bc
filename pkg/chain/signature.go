package chain

import (
	"github.com/suffix-labs/antelope-codec/pkg/serializer"
)

// Signature is a recoverable signature: a one-byte signature type followed
// by the 65-byte compact payload (recovery header, R, S). Only type 0 (K1)
// is valid; decoding any other type byte fails.
type Signature struct {
	Type uint8
	Data [65]byte
}

// NewSignatureFromHex builds a K1 signature from a 130-character hex string
// holding the 65 payload bytes.
func NewSignatureFromHex(s string) (Signature, error) {
	var ret Signature
	data, err := decodeHexExact("Signature", s, len(ret.Data))
	if err != nil {
		return ret, err
	}
	ret.Type = 0
	copy(ret.Data[:], data)
	return ret, nil
}

func (s Signature) Size() int {
	return 66
}

func (s Signature) Pack(enc *serializer.Encoder) int {
	serializer.Uint8(s.Type).Pack(enc)
	copy(enc.Alloc(len(s.Data)), s.Data[:])
	return s.Size()
}

func (s *Signature) Unpack(data []byte) (int, error) {
	size := s.Size()
	if len(data) < size {
		return 0, &serializer.CodecError{Code: serializer.ErrBufferOverflow, Message: "Signature.unpack: buffer overflow"}
	}
	if data[0] != 0 {
		return 0, &serializer.CodecError{Code: serializer.ErrBadSignatureType, Message: "bad signature type"}
	}
	s.Type = data[0]
	copy(s.Data[:], data[1:size])
	return size, nil
}
