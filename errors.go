package bls

import "errors"

// Failure kinds surfaced by the signing core. None of them is recoverable by
// retry: all operations are deterministic in their inputs.
var (
	// ErrInvalidInputLength reports an empty or too-short input where secret
	// material of a minimum size is required.
	ErrInvalidInputLength = errors.New("bls: invalid input length")

	// ErrUnsupportedModulus reports a modulus the expand-then-reduce
	// construction cannot serve with uniform output.
	ErrUnsupportedModulus = errors.New("bls: unsupported modulus")

	// ErrMapFailure reports an internal hash-to-curve fault, such as the map
	// degenerating to the identity.
	ErrMapFailure = errors.New("bls: hash-to-curve map failure")

	// ErrZeroScalar reports that key derivation reduced to the zero scalar.
	ErrZeroScalar = errors.New("bls: derived scalar is zero")

	// ErrInvalidCiphersuite reports a ciphersuite value outside 0-255.
	ErrInvalidCiphersuite = errors.New("bls: ciphersuite out of range")
)
