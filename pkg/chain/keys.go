package chain

import (
	"encoding/hex"

	"github.com/suffix-labs/antelope-codec/pkg/serializer"
)

// ECCPublicKey is a 33-byte compressed elliptic-curve point, packed
// verbatim. The curve (secp256k1 for K1, secp256r1 for R1) is identified by
// the enclosing PublicKey variant, not by the payload.
type ECCPublicKey struct {
	Data [33]byte
}

// NewECCPublicKeyFromHex builds an ECCPublicKey from a 66-character hex
// string.
func NewECCPublicKeyFromHex(s string) (ECCPublicKey, error) {
	var ret ECCPublicKey
	data, err := decodeHexExact("ECCPublicKey", s, len(ret.Data))
	if err != nil {
		return ret, err
	}
	copy(ret.Data[:], data)
	return ret, nil
}

// String returns the lower-case hex encoding of the compressed point.
func (k ECCPublicKey) String() string {
	return hex.EncodeToString(k.Data[:])
}

func (k ECCPublicKey) Size() int {
	return 33
}

func (k ECCPublicKey) Pack(enc *serializer.Encoder) int {
	copy(enc.Alloc(k.Size()), k.Data[:])
	return k.Size()
}

func (k *ECCPublicKey) Unpack(data []byte) (int, error) {
	size := k.Size()
	if len(data) < size {
		return 0, &serializer.CodecError{Code: serializer.ErrBufferOverflow, Message: "ECCPublicKey.unpack: buffer overflow"}
	}
	copy(k.Data[:], data[:size])
	return size, nil
}

// UserPresence is the WebAuthn user verification level. Only the three
// defined values decode; anything else is rejected.
type UserPresence uint8

const (
	UserPresenceNone     UserPresence = 0
	UserPresencePresent  UserPresence = 1
	UserPresenceVerified UserPresence = 2
)

func (u UserPresence) Size() int {
	return 1
}

func (u UserPresence) Pack(enc *serializer.Encoder) int {
	return serializer.Uint8(u).Pack(enc)
}

func (u *UserPresence) Unpack(data []byte) (int, error) {
	if len(data) < 1 {
		return 0, &serializer.CodecError{Code: serializer.ErrBufferOverflow, Message: "UserPresence.unpack: buffer overflow"}
	}
	switch data[0] {
	case 0:
		*u = UserPresenceNone
	case 1:
		*u = UserPresencePresent
	case 2:
		*u = UserPresenceVerified
	default:
		return 0, &serializer.CodecError{Code: serializer.ErrBadVariant, Message: "not a UserPresence type"}
	}
	return 1, nil
}

// WebAuthnPublicKey is an EC public key bound to a WebAuthn credential:
// the key, the user presence level, and the relying party identifier as a
// length-prefixed string.
type WebAuthnPublicKey struct {
	Key          ECCPublicKey
	UserPresence UserPresence
	RPID         string
}

// NewWebAuthnPublicKey builds a WebAuthnPublicKey from its parts.
func NewWebAuthnPublicKey(key ECCPublicKey, presence UserPresence, rpid string) WebAuthnPublicKey {
	return WebAuthnPublicKey{Key: key, UserPresence: presence, RPID: rpid}
}

func (k WebAuthnPublicKey) Size() int {
	return k.Key.Size() + k.UserPresence.Size() + serializer.String(k.RPID).Size()
}

func (k WebAuthnPublicKey) Pack(enc *serializer.Encoder) int {
	pos := enc.Size()
	k.Key.Pack(enc)
	k.UserPresence.Pack(enc)
	serializer.String(k.RPID).Pack(enc)
	return enc.Size() - pos
}

func (k *WebAuthnPublicKey) Unpack(data []byte) (int, error) {
	dec := serializer.NewDecoder(data)
	if _, err := dec.Unpack(&k.Key); err != nil {
		return 0, err
	}
	if _, err := dec.Unpack(&k.UserPresence); err != nil {
		return 0, err
	}
	if _, err := dec.Unpack((*serializer.String)(&k.RPID)); err != nil {
		return 0, err
	}
	return dec.Pos(), nil
}

// KeyType is the PublicKey discriminant.
type KeyType uint8

const (
	KeyTypeK1       KeyType = 0 // secp256k1
	KeyTypeR1       KeyType = 1 // secp256r1
	KeyTypeWebAuthn KeyType = 2 // WebAuthn credential
)

// PublicKey is a tagged union over the supported key types: one leading
// discriminant byte followed by the selected variant's payload. Exactly one
// payload field is meaningful, selected by Type; the zero value is an
// all-zero K1 key.
type PublicKey struct {
	Type     KeyType
	K1       ECCPublicKey
	R1       ECCPublicKey
	WebAuthn WebAuthnPublicKey
}

// NewK1PublicKey wraps a secp256k1 key as a PublicKey.
func NewK1PublicKey(key ECCPublicKey) PublicKey {
	return PublicKey{Type: KeyTypeK1, K1: key}
}

// NewR1PublicKey wraps a secp256r1 key as a PublicKey.
func NewR1PublicKey(key ECCPublicKey) PublicKey {
	return PublicKey{Type: KeyTypeR1, R1: key}
}

// NewWebAuthnPublicKeyVariant wraps a WebAuthn key as a PublicKey.
func NewWebAuthnPublicKeyVariant(key WebAuthnPublicKey) PublicKey {
	return PublicKey{Type: KeyTypeWebAuthn, WebAuthn: key}
}

func (k PublicKey) Size() int {
	switch k.Type {
	case KeyTypeR1:
		return 1 + k.R1.Size()
	case KeyTypeWebAuthn:
		return 1 + k.WebAuthn.Size()
	default:
		return 1 + k.K1.Size()
	}
}

func (k PublicKey) Pack(enc *serializer.Encoder) int {
	pos := enc.Size()
	serializer.Uint8(k.Type).Pack(enc)
	switch k.Type {
	case KeyTypeR1:
		k.R1.Pack(enc)
	case KeyTypeWebAuthn:
		k.WebAuthn.Pack(enc)
	default:
		// Mirrors Size: anything that is not R1 or WebAuthn packs the
		// K1 payload, so Size and Pack agree even for a stray tag.
		k.K1.Pack(enc)
	}
	return enc.Size() - pos
}

func (k *PublicKey) Unpack(data []byte) (int, error) {
	dec := serializer.NewDecoder(data)
	var tag serializer.Uint8
	if _, err := dec.Unpack(&tag); err != nil {
		return 0, &serializer.CodecError{Code: serializer.ErrBufferOverflow, Message: "PublicKey.unpack: buffer overflow"}
	}
	switch KeyType(tag) {
	case KeyTypeK1:
		var key ECCPublicKey
		if _, err := dec.Unpack(&key); err != nil {
			return 0, err
		}
		*k = NewK1PublicKey(key)
	case KeyTypeR1:
		var key ECCPublicKey
		if _, err := dec.Unpack(&key); err != nil {
			return 0, err
		}
		*k = NewR1PublicKey(key)
	case KeyTypeWebAuthn:
		var key WebAuthnPublicKey
		if _, err := dec.Unpack(&key); err != nil {
			return 0, err
		}
		*k = NewWebAuthnPublicKeyVariant(key)
	default:
		return 0, &serializer.CodecError{Code: serializer.ErrBadVariant, Message: "invalid public key type"}
	}
	return dec.Pos(), nil
}
