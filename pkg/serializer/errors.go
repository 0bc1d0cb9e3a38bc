// Package serializer error types.
//
// The Rust reference aborts the process on any malformed input. Here every
// decode failure surfaces as a *CodecError carrying a structured code, so
// hosts can decide whether to abort or propagate. There is no recoverable
// "partial decode" path: an error means the input bytes must be discarded.
package serializer

import "fmt"

// CodecError is returned by every Unpack implementation and by the FromHex
// and text-format constructors when the input cannot represent a valid value.
type CodecError struct {
	Code    string // Error code (e.g., ErrBufferOverflow)
	Message string // Human-readable error message
	Cause   error  // Underlying error (if any)
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("codec error [%s]: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("codec error [%s]: %s", e.Code, e.Message)
}

func (e *CodecError) Unwrap() error {
	return e.Cause
}

// Error codes used throughout the codec.
const (
	ErrBufferOverflow   = "BUFFER_OVERFLOW"    // Input buffer shorter than the value's wire size
	ErrBadVariant       = "BAD_VARIANT"        // Tagged-union discriminant outside the defined set
	ErrBadHex           = "BAD_HEX"            // Hex string malformed or of the wrong length
	ErrBadSignatureType = "BAD_SIGNATURE_TYPE" // Signature type byte other than 0 (K1)
	ErrBadName          = "BAD_NAME"           // Account name string outside the base-32 charset or too long
	ErrValueOverflow    = "VALUE_OVERFLOW"     // Varint encodes a value wider than its target type
)

// ErrorCode extracts the code from a *CodecError, or "" for any other error.
func ErrorCode(err error) string {
	if ce, ok := err.(*CodecError); ok {
		return ce.Code
	}
	return ""
}

// overflowError builds the buffer-overflow error every fixed-size Unpack
// returns when handed fewer bytes than its wire size.
func overflowError(what string) *CodecError {
	return &CodecError{Code: ErrBufferOverflow, Message: what + ": buffer overflow"}
}
