package chain

import (
	"time"

	"github.com/suffix-labs/antelope-codec/pkg/serializer"
)

// Block production timing constants.
const (
	// BlockIntervalMs is the wall-clock interval between block slots.
	BlockIntervalMs = 500

	// BlockTimestampEpochMs is the slot-zero epoch, 2000-01-01T00:00:00Z,
	// in milliseconds since the Unix epoch.
	BlockTimestampEpochMs = 946684800000
)

// TimePoint is a point in time counted in microseconds since the Unix
// epoch, packed as a little-endian uint64.
type TimePoint struct {
	Elapsed uint64
}

// NewTimePoint builds a TimePoint from a time.Time, truncating it to
// microsecond resolution.
func NewTimePoint(t time.Time) TimePoint {
	return TimePoint{Elapsed: uint64(t.UnixMicro())}
}

// Time converts back to a time.Time in UTC.
func (t TimePoint) Time() time.Time {
	return time.UnixMicro(int64(t.Elapsed)).UTC()
}

func (t TimePoint) Size() int {
	return 8
}

func (t TimePoint) Pack(enc *serializer.Encoder) int {
	return serializer.Uint64(t.Elapsed).Pack(enc)
}

func (t *TimePoint) Unpack(data []byte) (int, error) {
	if len(data) < t.Size() {
		return 0, &serializer.CodecError{Code: serializer.ErrBufferOverflow, Message: "TimePoint.unpack: buffer overflow"}
	}
	return (*serializer.Uint64)(&t.Elapsed).Unpack(data)
}

// TimePointSec is a point in time counted in whole seconds since the Unix
// epoch, packed as a little-endian uint32.
type TimePointSec struct {
	Seconds uint32
}

// NewTimePointSec builds a TimePointSec from a second count.
func NewTimePointSec(seconds uint32) TimePointSec {
	return TimePointSec{Seconds: seconds}
}

// Time converts back to a time.Time in UTC.
func (t TimePointSec) Time() time.Time {
	return time.Unix(int64(t.Seconds), 0).UTC()
}

func (t TimePointSec) Size() int {
	return 4
}

func (t TimePointSec) Pack(enc *serializer.Encoder) int {
	return serializer.Uint32(t.Seconds).Pack(enc)
}

func (t *TimePointSec) Unpack(data []byte) (int, error) {
	if len(data) < t.Size() {
		return 0, &serializer.CodecError{Code: serializer.ErrBufferOverflow, Message: "TimePointSec.unpack: buffer overflow"}
	}
	return (*serializer.Uint32)(&t.Seconds).Unpack(data)
}

// BlockTimestamp is a block slot number: half-second intervals since the
// block timestamp epoch. Packed as a little-endian uint32.
type BlockTimestamp struct {
	Slot uint32
}

// NewBlockTimestamp builds a BlockTimestamp from the slot containing t.
func NewBlockTimestamp(t time.Time) BlockTimestamp {
	ms := t.UnixMilli() - BlockTimestampEpochMs
	return BlockTimestamp{Slot: uint32(ms / BlockIntervalMs)}
}

// Time returns the start of the slot in UTC.
func (b BlockTimestamp) Time() time.Time {
	ms := int64(b.Slot)*BlockIntervalMs + BlockTimestampEpochMs
	return time.UnixMilli(ms).UTC()
}

func (b BlockTimestamp) Size() int {
	return 4
}

func (b BlockTimestamp) Pack(enc *serializer.Encoder) int {
	return serializer.Uint32(b.Slot).Pack(enc)
}

func (b *BlockTimestamp) Unpack(data []byte) (int, error) {
	if len(data) < b.Size() {
		return 0, &serializer.CodecError{Code: serializer.ErrBufferOverflow, Message: "BlockTimestamp.unpack: buffer overflow"}
	}
	return (*serializer.Uint32)(&b.Slot).Unpack(data)
}
