package chain

import (
	"encoding/hex"

	"github.com/suffix-labs/antelope-codec/pkg/serializer"
)

// Checksum160 is a 160-bit digest, packed as its 20 bytes verbatim.
type Checksum160 struct {
	Data [20]byte
}

// NewChecksum160FromHex builds a Checksum160 from a 40-character hex string.
func NewChecksum160FromHex(s string) (Checksum160, error) {
	var ret Checksum160
	data, err := decodeHexExact("Checksum160", s, len(ret.Data))
	if err != nil {
		return ret, err
	}
	copy(ret.Data[:], data)
	return ret, nil
}

// String returns the lower-case hex encoding.
func (c Checksum160) String() string {
	return hex.EncodeToString(c.Data[:])
}

func (c Checksum160) Size() int {
	return 20
}

func (c Checksum160) Pack(enc *serializer.Encoder) int {
	copy(enc.Alloc(c.Size()), c.Data[:])
	return c.Size()
}

func (c *Checksum160) Unpack(data []byte) (int, error) {
	size := c.Size()
	if len(data) < size {
		return 0, &serializer.CodecError{Code: serializer.ErrBufferOverflow, Message: "Checksum160.unpack: buffer overflow"}
	}
	copy(c.Data[:], data[:size])
	return size, nil
}

// Checksum256 is a 256-bit digest, packed as its 32 bytes verbatim.
type Checksum256 struct {
	Data [32]byte
}

// NewChecksum256FromHex builds a Checksum256 from a 64-character hex string.
func NewChecksum256FromHex(s string) (Checksum256, error) {
	var ret Checksum256
	data, err := decodeHexExact("Checksum256", s, len(ret.Data))
	if err != nil {
		return ret, err
	}
	copy(ret.Data[:], data)
	return ret, nil
}

// String returns the lower-case hex encoding.
func (c Checksum256) String() string {
	return hex.EncodeToString(c.Data[:])
}

func (c Checksum256) Size() int {
	return 32
}

func (c Checksum256) Pack(enc *serializer.Encoder) int {
	copy(enc.Alloc(c.Size()), c.Data[:])
	return c.Size()
}

func (c *Checksum256) Unpack(data []byte) (int, error) {
	size := c.Size()
	if len(data) < size {
		return 0, &serializer.CodecError{Code: serializer.ErrBufferOverflow, Message: "Checksum256.unpack: buffer overflow"}
	}
	copy(c.Data[:], data[:size])
	return size, nil
}

// Checksum512 is a 512-bit digest, packed as its 64 bytes verbatim.
type Checksum512 struct {
	Data [64]byte
}

// NewChecksum512FromHex builds a Checksum512 from a 128-character hex string.
func NewChecksum512FromHex(s string) (Checksum512, error) {
	var ret Checksum512
	data, err := decodeHexExact("Checksum512", s, len(ret.Data))
	if err != nil {
		return ret, err
	}
	copy(ret.Data[:], data)
	return ret, nil
}

// String returns the lower-case hex encoding.
func (c Checksum512) String() string {
	return hex.EncodeToString(c.Data[:])
}

func (c Checksum512) Size() int {
	return 64
}

func (c Checksum512) Pack(enc *serializer.Encoder) int {
	copy(enc.Alloc(c.Size()), c.Data[:])
	return c.Size()
}

func (c *Checksum512) Unpack(data []byte) (int, error) {
	size := c.Size()
	if len(data) < size {
		return 0, &serializer.CodecError{Code: serializer.ErrBufferOverflow, Message: "Checksum512.unpack: buffer overflow"}
	}
	copy(c.Data[:], data[:size])
	return size, nil
}
