package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suffix-labs/antelope-codec/pkg/chain"
	"github.com/suffix-labs/antelope-codec/pkg/serializer"
)

// Well-known test pair used across Antelope tooling.
const (
	testWIF       = "5KQwrPbwdL6PhXujxW37FSSQZ1JiwsST4cqQzDeyXtP79zkvFD3"
	testLegacyPub = "EOS6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5GDW5CV"
)

func TestLegacyKeyPairVector(t *testing.T) {
	priv, err := ParsePrivateKeyWIF(testWIF)
	require.NoError(t, err)

	legacy, err := PublicKeyToLegacyString(priv.PublicKey())
	require.NoError(t, err)
	assert.Equal(t, testLegacyPub, legacy)

	assert.Equal(t, testWIF, priv.WIF())
}

func TestPublicKeyStringRoundTrip(t *testing.T) {
	priv, err := NewPrivateKey()
	require.NoError(t, err)
	pub := priv.PublicKey()

	s, err := PublicKeyToString(pub)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "PUB_K1_"))

	parsed, err := PublicKeyFromString(s)
	require.NoError(t, err)
	assert.Equal(t, pub, parsed)
}

func TestLegacyPublicKeyStringRoundTrip(t *testing.T) {
	parsed, err := PublicKeyFromString(testLegacyPub)
	require.NoError(t, err)

	legacy, err := PublicKeyToLegacyString(parsed)
	require.NoError(t, err)
	assert.Equal(t, testLegacyPub, legacy)
}

func TestPublicKeyFromStringRejectsCorruption(t *testing.T) {
	_, err := PublicKeyFromString("XYZ123")
	require.Error(t, err)

	// Flip the checksum tail.
	bad := testLegacyPub[:len(testLegacyPub)-1] + "W"
	_, err = PublicKeyFromString(bad)
	require.Error(t, err)
}

func TestPrivateKeyStringRoundTrip(t *testing.T) {
	priv, err := NewPrivateKey()
	require.NoError(t, err)

	s := priv.String()
	assert.True(t, strings.HasPrefix(s, "PVT_K1_"))

	parsed, err := PrivateKeyFromString(s)
	require.NoError(t, err)
	assert.Equal(t, priv.Bytes(), parsed.Bytes())
}

func TestPrivateKeyFromStringAcceptsWIF(t *testing.T) {
	parsed, err := PrivateKeyFromString(testWIF)
	require.NoError(t, err)
	assert.Equal(t, testWIF, parsed.WIF())
}

func TestParseWIFRejectsBadChecksum(t *testing.T) {
	corrupted := testWIF[:len(testWIF)-1] + "4"
	_, err := ParsePrivateKeyWIF(corrupted)
	require.Error(t, err)
}

func TestSignAndRecover(t *testing.T) {
	priv, err := NewPrivateKey()
	require.NoError(t, err)

	digest := Sha256([]byte("canonical payload"))
	sig := priv.Sign(digest)
	assert.Equal(t, uint8(0), sig.Type)

	recovered, err := RecoverPublicKey(sig, digest)
	require.NoError(t, err)
	assert.Equal(t, priv.PublicKey(), recovered)
}

func TestRecoverRejectsNonK1Type(t *testing.T) {
	var sig chain.Signature
	sig.Type = 1
	_, err := RecoverPublicKey(sig, Sha256(nil))
	require.Error(t, err)
}

func TestSignatureStringRoundTrip(t *testing.T) {
	priv, err := NewPrivateKey()
	require.NoError(t, err)

	sig := priv.Sign(Sha256([]byte("payload")))
	s := SignatureToString(sig)
	assert.True(t, strings.HasPrefix(s, "SIG_K1_"))

	parsed, err := SignatureFromString(s)
	require.NoError(t, err)
	assert.Equal(t, sig, parsed)
}

func TestSignatureFromStringRejectsBadInput(t *testing.T) {
	_, err := SignatureFromString("K1_nope")
	require.Error(t, err)

	_, err = SignatureFromString("SIG_K1_abc")
	require.Error(t, err)
}

func TestSignedSignaturePacksOnWire(t *testing.T) {
	priv, err := NewPrivateKey()
	require.NoError(t, err)

	sig := priv.Sign(Sha256([]byte("x")))
	data := serializer.Pack(&sig)
	require.Len(t, data, 66)
	assert.Equal(t, byte(0), data[0])

	var out chain.Signature
	_, err = out.Unpack(data)
	require.NoError(t, err)
	assert.Equal(t, sig, out)
}

func TestSigningDigestMatchesPackedBytes(t *testing.T) {
	name, err := chain.NewName("eosio")
	require.NoError(t, err)

	digest := SigningDigest(&name)
	assert.Equal(t, Sha256(serializer.Pack(&name)), digest)
}
