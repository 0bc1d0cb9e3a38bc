package chain

import (
	"github.com/suffix-labs/antelope-codec/pkg/serializer"
)

// ProducerKey pairs a producer account with its block signing key. Wire
// layout: name (8 bytes) followed by the public key variant.
type ProducerKey struct {
	ProducerName    Name
	BlockSigningKey PublicKey
}

// NewProducerKey builds a ProducerKey from its parts.
func NewProducerKey(producerName Name, blockSigningKey PublicKey) ProducerKey {
	return ProducerKey{ProducerName: producerName, BlockSigningKey: blockSigningKey}
}

func (p ProducerKey) Size() int {
	return p.ProducerName.Size() + p.BlockSigningKey.Size()
}

func (p ProducerKey) Pack(enc *serializer.Encoder) int {
	pos := enc.Size()
	p.ProducerName.Pack(enc)
	p.BlockSigningKey.Pack(enc)
	return enc.Size() - pos
}

func (p *ProducerKey) Unpack(data []byte) (int, error) {
	dec := serializer.NewDecoder(data)
	if _, err := dec.Unpack(&p.ProducerName); err != nil {
		return 0, err
	}
	if _, err := dec.Unpack(&p.BlockSigningKey); err != nil {
		return 0, err
	}
	return dec.Pos(), nil
}

// KeyWeight pairs a public key with its voting weight. Wire layout: public
// key variant followed by a little-endian uint16 weight.
type KeyWeight struct {
	Key    PublicKey
	Weight uint16
}

func (k KeyWeight) Size() int {
	return k.Key.Size() + 2
}

func (k KeyWeight) Pack(enc *serializer.Encoder) int {
	pos := enc.Size()
	k.Key.Pack(enc)
	serializer.Uint16(k.Weight).Pack(enc)
	return enc.Size() - pos
}

func (k *KeyWeight) Unpack(data []byte) (int, error) {
	dec := serializer.NewDecoder(data)
	if _, err := dec.Unpack(&k.Key); err != nil {
		return 0, err
	}
	if _, err := dec.Unpack((*serializer.Uint16)(&k.Weight)); err != nil {
		return 0, err
	}
	return dec.Pos(), nil
}

// BlockSigningAuthorityV0 is the version-0 signing authority: the minimum
// threshold of accumulated weights that satisfies the authority, and the
// component keys with their weights as a count-prefixed list.
type BlockSigningAuthorityV0 struct {
	Threshold uint32
	Keys      []KeyWeight
}

func (a BlockSigningAuthorityV0) Size() int {
	return 4 + serializer.SizeOfList(a.Keys)
}

func (a BlockSigningAuthorityV0) Pack(enc *serializer.Encoder) int {
	pos := enc.Size()
	serializer.Uint32(a.Threshold).Pack(enc)
	serializer.PackList(enc, a.Keys)
	return enc.Size() - pos
}

func (a *BlockSigningAuthorityV0) Unpack(data []byte) (int, error) {
	var threshold serializer.Uint32
	n, err := threshold.Unpack(data)
	if err != nil {
		return 0, err
	}
	a.Threshold = uint32(threshold)
	k, err := serializer.UnpackList(&a.Keys, data[n:])
	if err != nil {
		return 0, err
	}
	return n + k, nil
}

// BlockSigningAuthority is the versioned signing authority variant. Only
// discriminant 0 (V0) is defined; any other leading byte fails to decode.
type BlockSigningAuthority struct {
	V0 BlockSigningAuthorityV0
}

func (a BlockSigningAuthority) Size() int {
	return 1 + a.V0.Size()
}

func (a BlockSigningAuthority) Pack(enc *serializer.Encoder) int {
	pos := enc.Size()
	serializer.Uint8(0).Pack(enc)
	a.V0.Pack(enc)
	return enc.Size() - pos
}

func (a *BlockSigningAuthority) Unpack(data []byte) (int, error) {
	dec := serializer.NewDecoder(data)
	var tag serializer.Uint8
	if _, err := dec.Unpack(&tag); err != nil {
		return 0, &serializer.CodecError{Code: serializer.ErrBufferOverflow, Message: "BlockSigningAuthority.unpack: buffer overflow"}
	}
	if tag != 0 {
		return 0, &serializer.CodecError{Code: serializer.ErrBadVariant, Message: "bad BlockSigningAuthority type"}
	}
	var v0 BlockSigningAuthorityV0
	if _, err := dec.Unpack(&v0); err != nil {
		return 0, err
	}
	a.V0 = v0
	return dec.Pos(), nil
}

// ProducerAuthority pairs a producer account with the signing authority it
// produces blocks under.
type ProducerAuthority struct {
	ProducerName Name
	Authority    BlockSigningAuthority
}

func (p ProducerAuthority) Size() int {
	return p.ProducerName.Size() + p.Authority.Size()
}

func (p ProducerAuthority) Pack(enc *serializer.Encoder) int {
	pos := enc.Size()
	p.ProducerName.Pack(enc)
	p.Authority.Pack(enc)
	return enc.Size() - pos
}

func (p *ProducerAuthority) Unpack(data []byte) (int, error) {
	dec := serializer.NewDecoder(data)
	if _, err := dec.Unpack(&p.ProducerName); err != nil {
		return 0, err
	}
	if _, err := dec.Unpack(&p.Authority); err != nil {
		return 0, err
	}
	return dec.Pos(), nil
}
