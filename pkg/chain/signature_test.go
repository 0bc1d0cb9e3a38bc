package chain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suffix-labs/antelope-codec/pkg/serializer"
)

func TestSignatureRoundTrip(t *testing.T) {
	var sig Signature
	for i := range sig.Data {
		sig.Data[i] = byte(i)
	}
	assert.Equal(t, 66, sig.Size())
	checkRoundTrip(t, &sig, &Signature{})
}

func TestSignatureWireImage(t *testing.T) {
	var sig Signature
	sig.Data[0] = 0x1f
	data := serializer.Pack(&sig)
	require.Len(t, data, 66)
	assert.Equal(t, byte(0x00), data[0], "signature type byte")
	assert.Equal(t, byte(0x1f), data[1], "first payload byte")
}

func TestSignatureUnpackOneByteShortFails(t *testing.T) {
	var sig Signature
	_, err := sig.Unpack(make([]byte, 65))
	requireCode(t, serializer.ErrBufferOverflow, err)
}

func TestSignatureRejectsNonZeroType(t *testing.T) {
	data := make([]byte, 66)
	data[0] = 1
	var sig Signature
	_, err := sig.Unpack(data)
	requireCode(t, serializer.ErrBadSignatureType, err)
}

func TestSignatureFromHex(t *testing.T) {
	sig, err := NewSignatureFromHex(strings.Repeat("1f", 65))
	require.NoError(t, err)
	assert.Equal(t, uint8(0), sig.Type)
	assert.Equal(t, byte(0x1f), sig.Data[64])

	_, err = NewSignatureFromHex(strings.Repeat("1f", 64))
	requireCode(t, serializer.ErrBadHex, err)
}
