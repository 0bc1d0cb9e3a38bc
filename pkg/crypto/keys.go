// Package crypto implements secp256k1 (K1) key management and the Antelope
// text encodings for keys and signatures.
//
// Key and signature text formats:
//   - Legacy public key:  "EOS" || base58(key33 || ripemd160(key33)[:4])
//   - Public key:         "PUB_K1_" || base58(key33 || ripemd160(key33 || "K1")[:4])
//   - Signature:          "SIG_K1_" || base58(sig65 || ripemd160(sig65 || "K1")[:4])
//   - Private key:        "PVT_K1_" || base58(key32 || ripemd160(key32 || "K1")[:4])
//   - Legacy private key: Bitcoin-style WIF, version byte 0x80, double-SHA256 checksum
//
// Signatures are 65-byte compact recoverable ECDSA: one header byte
// (27 + 4 + recovery id, the +4 marking a compressed key) followed by R and
// S. That payload is carried on the wire by chain.Signature with type 0.
package crypto

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/ripemd160"

	"github.com/suffix-labs/antelope-codec/pkg/chain"
)

const (
	legacyPublicKeyPrefix = "EOS"
	publicKeyPrefix       = "PUB_K1_"
	signaturePrefix       = "SIG_K1_"
	privateKeyPrefix      = "PVT_K1_"
)

// PrivateKey wraps a secp256k1 private key.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// NewPrivateKey generates a fresh random private key.
func NewPrivateKey() (*PrivateKey, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes creates a private key from raw bytes.
func PrivateKeyFromBytes(keyBytes []byte) (*PrivateKey, error) {
	if len(keyBytes) != 32 {
		return nil, fmt.Errorf("private key must be 32 bytes, got %d", len(keyBytes))
	}
	return &PrivateKey{key: secp256k1.PrivKeyFromBytes(keyBytes)}, nil
}

// PrivateKeyFromString parses either a PVT_K1_ key or a legacy WIF key.
func PrivateKeyFromString(s string) (*PrivateKey, error) {
	if raw, ok := strings.CutPrefix(s, privateKeyPrefix); ok {
		payload, err := checkDecodeK1(raw, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid PVT_K1 key: %w", err)
		}
		return PrivateKeyFromBytes(payload)
	}
	return ParsePrivateKeyWIF(s)
}

// ParsePrivateKeyWIF parses a legacy WIF-encoded private key.
// WIF format: version_byte (0x80) || private_key (32 bytes) || checksum (4 bytes)
func ParsePrivateKeyWIF(wif string) (*PrivateKey, error) {
	decoded := base58.Decode(wif)
	if len(decoded) != 37 {
		return nil, errors.New("invalid WIF length")
	}
	if decoded[0] != 0x80 {
		return nil, fmt.Errorf("invalid WIF version byte: 0x%02x", decoded[0])
	}

	payload := decoded[:33]
	hash1 := sha256.Sum256(payload)
	hash2 := sha256.Sum256(hash1[:])
	if !bytes.Equal(decoded[33:], hash2[:4]) {
		return nil, errors.New("WIF checksum mismatch")
	}

	return PrivateKeyFromBytes(payload[1:33])
}

// WIF encodes the private key in the legacy WIF format.
func (pk *PrivateKey) WIF() string {
	payload := append([]byte{0x80}, pk.key.Serialize()...)
	hash1 := sha256.Sum256(payload)
	hash2 := sha256.Sum256(hash1[:])
	return base58.Encode(append(payload, hash2[:4]...))
}

// String encodes the private key in the PVT_K1_ format.
func (pk *PrivateKey) String() string {
	return privateKeyPrefix + checkEncodeK1(pk.key.Serialize())
}

// Bytes returns the raw 32-byte private key.
func (pk *PrivateKey) Bytes() []byte {
	return pk.key.Serialize()
}

// PublicKey derives the K1 public key variant for this private key.
func (pk *PrivateKey) PublicKey() chain.PublicKey {
	var key chain.ECCPublicKey
	copy(key.Data[:], pk.key.PubKey().SerializeCompressed())
	return chain.NewK1PublicKey(key)
}

// Sign produces a 65-byte compact recoverable signature over digest.
func (pk *PrivateKey) Sign(digest chain.Checksum256) chain.Signature {
	compact := ecdsa.SignCompact(pk.key, digest.Data[:], true)
	var sig chain.Signature
	copy(sig.Data[:], compact)
	return sig
}

// RecoverPublicKey recovers the K1 public key that produced sig over digest.
func RecoverPublicKey(sig chain.Signature, digest chain.Checksum256) (chain.PublicKey, error) {
	if sig.Type != 0 {
		return chain.PublicKey{}, fmt.Errorf("unsupported signature type %d", sig.Type)
	}
	pub, _, err := ecdsa.RecoverCompact(sig.Data[:], digest.Data[:])
	if err != nil {
		return chain.PublicKey{}, fmt.Errorf("failed to recover public key: %w", err)
	}
	var key chain.ECCPublicKey
	copy(key.Data[:], pub.SerializeCompressed())
	return chain.NewK1PublicKey(key), nil
}

// PublicKeyToLegacyString encodes a K1 public key in the legacy EOS format.
func PublicKeyToLegacyString(pub chain.PublicKey) (string, error) {
	if pub.Type != chain.KeyTypeK1 {
		return "", fmt.Errorf("legacy format only defined for K1 keys, got type %d", pub.Type)
	}
	sum := ripemd160Sum(pub.K1.Data[:])
	return legacyPublicKeyPrefix + base58.Encode(append(pub.K1.Data[:], sum[:4]...)), nil
}

// PublicKeyToString encodes a K1 public key in the PUB_K1_ format.
func PublicKeyToString(pub chain.PublicKey) (string, error) {
	if pub.Type != chain.KeyTypeK1 {
		return "", fmt.Errorf("PUB_K1 format only defined for K1 keys, got type %d", pub.Type)
	}
	return publicKeyPrefix + checkEncodeK1(pub.K1.Data[:]), nil
}

// PublicKeyFromString parses a PUB_K1_ or legacy EOS public key and
// validates that the payload is a parseable compressed secp256k1 point.
func PublicKeyFromString(s string) (chain.PublicKey, error) {
	var payload []byte
	var err error
	switch {
	case strings.HasPrefix(s, publicKeyPrefix):
		payload, err = checkDecodeK1(s[len(publicKeyPrefix):], 33)
	case strings.HasPrefix(s, legacyPublicKeyPrefix):
		payload, err = checkDecodeLegacy(s[len(legacyPublicKeyPrefix):], 33)
	default:
		return chain.PublicKey{}, fmt.Errorf("unrecognized public key prefix: %s", s)
	}
	if err != nil {
		return chain.PublicKey{}, fmt.Errorf("invalid public key %s: %w", s, err)
	}
	if _, err := secp256k1.ParsePubKey(payload); err != nil {
		return chain.PublicKey{}, fmt.Errorf("invalid public key %s: %w", s, err)
	}
	var key chain.ECCPublicKey
	copy(key.Data[:], payload)
	return chain.NewK1PublicKey(key), nil
}

// SignatureToString encodes a signature in the SIG_K1_ format.
func SignatureToString(sig chain.Signature) string {
	return signaturePrefix + checkEncodeK1(sig.Data[:])
}

// SignatureFromString parses a SIG_K1_ signature.
func SignatureFromString(s string) (chain.Signature, error) {
	raw, ok := strings.CutPrefix(s, signaturePrefix)
	if !ok {
		return chain.Signature{}, fmt.Errorf("unrecognized signature prefix: %s", s)
	}
	payload, err := checkDecodeK1(raw, 65)
	if err != nil {
		return chain.Signature{}, fmt.Errorf("invalid signature %s: %w", s, err)
	}
	var sig chain.Signature
	copy(sig.Data[:], payload)
	return sig, nil
}

// ripemd160Sum hashes data with RIPEMD-160.
func ripemd160Sum(data []byte) []byte {
	h := ripemd160.New()
	h.Write(data)
	return h.Sum(nil)
}

// checkEncodeK1 appends the K1-suffixed RIPEMD-160 checksum and encodes
// base58.
func checkEncodeK1(payload []byte) string {
	sum := ripemd160Sum(append(append([]byte{}, payload...), []byte("K1")...))
	return base58.Encode(append(append([]byte{}, payload...), sum[:4]...))
}

// checkDecodeK1 decodes base58 and verifies the K1-suffixed checksum.
func checkDecodeK1(s string, size int) ([]byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) != size+4 {
		return nil, fmt.Errorf("expected %d bytes, got %d", size+4, len(decoded))
	}
	payload := decoded[:size]
	sum := ripemd160Sum(append(append([]byte{}, payload...), []byte("K1")...))
	if !bytes.Equal(decoded[size:], sum[:4]) {
		return nil, errors.New("checksum mismatch")
	}
	return payload, nil
}

// checkDecodeLegacy decodes base58 and verifies the plain RIPEMD-160
// checksum used by the legacy EOS public key format.
func checkDecodeLegacy(s string, size int) ([]byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) != size+4 {
		return nil, fmt.Errorf("expected %d bytes, got %d", size+4, len(decoded))
	}
	payload := decoded[:size]
	sum := ripemd160Sum(payload)
	if !bytes.Equal(decoded[size:], sum[:4]) {
		return nil, errors.New("checksum mismatch")
	}
	return payload, nil
}
