package crypto

import (
	"crypto/sha256"

	"github.com/suffix-labs/antelope-codec/pkg/chain"
	"github.com/suffix-labs/antelope-codec/pkg/serializer"
)

// Sha256 returns the SHA-256 digest of data as a Checksum256.
func Sha256(data []byte) chain.Checksum256 {
	return chain.Checksum256{Data: sha256.Sum256(data)}
}

// SigningDigest returns the SHA-256 digest of p's canonical encoding. This
// is the value handed to PrivateKey.Sign when a serialized structure is
// being signed.
func SigningDigest(p serializer.Packer) chain.Checksum256 {
	return Sha256(serializer.Pack(p))
}
