package chain

import (
	"strings"

	"github.com/suffix-labs/antelope-codec/pkg/serializer"
)

// Name is a 64-bit account name. The text form packs into the integer with a
// base-32 alphabet: 5 bits per character for the first 12 characters, most
// significant bits first, and 4 bits for an optional 13th character. On the
// wire it is 8 little-endian bytes like any other uint64.
type Name uint64

// nameAlphabet maps symbol values 0..31 back to characters.
const nameAlphabet = ".12345abcdefghijklmnopqrstuvwxyz"

// charToSymbol maps a name character to its 5-bit symbol value.
func charToSymbol(c byte) (uint64, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 6, true
	case c >= '1' && c <= '5':
		return uint64(c-'1') + 1, true
	case c == '.':
		return 0, true
	}
	return 0, false
}

// NewName builds a Name from its text form. Valid names are 1 to 13
// characters from the set ".12345a-z"; the 13th character, if present, must
// encode in 4 bits (". " through "j").
func NewName(s string) (Name, error) {
	if len(s) == 0 || len(s) > 13 {
		return 0, &serializer.CodecError{Code: serializer.ErrBadName, Message: "Name: bad name length: " + s}
	}
	var value uint64
	for i := 0; i < len(s); i++ {
		sym, ok := charToSymbol(s[i])
		if !ok {
			return 0, &serializer.CodecError{Code: serializer.ErrBadName, Message: "Name: bad character in name: " + s}
		}
		if i < 12 {
			value |= (sym & 0x1f) << uint(64-5*(i+1))
		} else {
			if sym > 0x0f {
				return 0, &serializer.CodecError{Code: serializer.ErrBadName, Message: "Name: 13th character out of range: " + s}
			}
			value |= sym & 0x0f
		}
	}
	return Name(value), nil
}

// String decodes the packed name back to text, trimming trailing dots.
func (n Name) String() string {
	str := make([]byte, 13)
	tmp := uint64(n)
	for i := 0; i <= 12; i++ {
		if i == 0 {
			str[12] = nameAlphabet[tmp&0x0f]
			tmp >>= 4
		} else {
			str[12-i] = nameAlphabet[tmp&0x1f]
			tmp >>= 5
		}
	}
	return strings.TrimRight(string(str), ".")
}

func (n Name) Size() int {
	return 8
}

func (n Name) Pack(enc *serializer.Encoder) int {
	return serializer.Uint64(n).Pack(enc)
}

func (n *Name) Unpack(data []byte) (int, error) {
	if len(data) < n.Size() {
		return 0, &serializer.CodecError{Code: serializer.ErrBufferOverflow, Message: "Name.unpack: buffer overflow"}
	}
	return (*serializer.Uint64)(n).Unpack(data)
}
