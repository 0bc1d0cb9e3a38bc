package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRoundTrip(t *testing.T) {
	items := []Uint16{10, 20, 30}

	assert.Equal(t, 7, SizeOfList(items))

	enc := NewEncoder(0)
	n := PackList(enc, items)
	assert.Equal(t, 7, n)
	assert.Equal(t, []byte{3, 10, 0, 20, 0, 30, 0}, enc.Bytes())

	var out []Uint16
	n, err := UnpackList(&out, enc.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, items, out)
}

func TestEmptyListRoundTrip(t *testing.T) {
	enc := NewEncoder(0)
	PackList(enc, []Uint64(nil))
	assert.Equal(t, []byte{0}, enc.Bytes())

	var out []Uint64
	n, err := UnpackList(&out, enc.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, out)
}

func TestListCountExceedsInput(t *testing.T) {
	// A count prefix claiming 200 elements with two bytes of payload must be
	// rejected before any element allocation.
	var out []Uint8
	_, err := UnpackList(&out, []byte{200, 1, 2})
	require.Error(t, err)
	assert.Equal(t, ErrBufferOverflow, ErrorCode(err))
}

func TestListElementErrorPropagates(t *testing.T) {
	// Two elements promised, second one truncated.
	var out []Uint32
	_, err := UnpackList(&out, []byte{2, 1, 0, 0, 0, 9, 9})
	require.Error(t, err)
	assert.Equal(t, ErrBufferOverflow, ErrorCode(err))
}
