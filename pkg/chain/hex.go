// Package chain defines the Antelope chain value types and their canonical
// binary encodings: checksums, wide integers, public keys, signatures, time
// values, account names, and the producer authority records built from them.
//
// Every type implements the serializer.Packer contract. The byte layout is
// part of consensus: little-endian unpadded integers, verbatim fixed byte
// arrays, one leading discriminant byte per tagged union, VarUint32 count
// prefixes on collections.
//
// This corresponds to the Rust implementation in:
//   - rscdk crates/chain/src/structs.rs
//   - rscdk crates/chain/src/name.rs
package chain

import (
	"encoding/hex"

	"github.com/suffix-labs/antelope-codec/pkg/serializer"
)

// decodeHexExact decodes a hex string that must be exactly 2 characters per
// byte for the given width. FromHex constructors on fixed-size types call
// this so a wrong-length string can never silently truncate or zero-pad
// consensus data.
func decodeHexExact(what, s string, size int) ([]byte, error) {
	if len(s) != size*2 {
		return nil, &serializer.CodecError{Code: serializer.ErrBadHex, Message: what + ": bad hex string length"}
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, &serializer.CodecError{Code: serializer.ErrBadHex, Message: what + ": bad hex string", Cause: err}
	}
	return data, nil
}
