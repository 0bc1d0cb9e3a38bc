package main

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suffix-labs/antelope-codec/pkg/chain"
	"github.com/suffix-labs/antelope-codec/pkg/serializer"
)

const testPublicKey = "EOS6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5GDW5CV"

func TestBuildProducerAuthority(t *testing.T) {
	authority, err := buildProducerAuthority("eosio", "2", []string{testPublicKey + ",1"})
	require.NoError(t, err)

	assert.Equal(t, chain.Name(0x5530ea0000000000), authority.ProducerName)
	assert.Equal(t, uint32(2), authority.Authority.V0.Threshold)
	require.Len(t, authority.Authority.V0.Keys, 1)
	assert.Equal(t, uint16(1), authority.Authority.V0.Keys[0].Weight)

	// name(8) + authority tag(1) + threshold(4) + count(1) + key tag(1) +
	// compressed point(33) + weight(2)
	raw := serializer.Pack(&authority)
	require.Len(t, raw, 50)
	assert.Equal(t, "0000000000ea3055", hex.EncodeToString(raw[:8]))
	assert.Equal(t, byte(0), raw[8])
	assert.Equal(t, "02000000", hex.EncodeToString(raw[9:13]))
	assert.Equal(t, byte(1), raw[13])
	assert.Equal(t, byte(chain.KeyTypeK1), raw[14])
	assert.Equal(t, []byte{1, 0}, raw[48:])

	var decoded chain.ProducerAuthority
	n, err := decoded.Unpack(raw)
	require.NoError(t, err)
	assert.Equal(t, len(raw), n)
	assert.Equal(t, authority, decoded)
}

func TestBuildProducerAuthorityRejectsBadArguments(t *testing.T) {
	_, err := buildProducerAuthority("EOSIO", "1", []string{testPublicKey + ",1"})
	assert.Error(t, err, "uppercase producer name")

	_, err = buildProducerAuthority("eosio", "x", []string{testPublicKey + ",1"})
	assert.Error(t, err, "non-numeric threshold")

	_, err = buildProducerAuthority("eosio", "1", []string{testPublicKey})
	assert.Error(t, err, "missing weight separator")

	_, err = buildProducerAuthority("eosio", "1", []string{testPublicKey + ",70000"})
	assert.Error(t, err, "weight out of uint16 range")

	_, err = buildProducerAuthority("eosio", "1", []string{"PUB_K1_bogus,1"})
	assert.Error(t, err, "undecodable public key")
}
