package bls

import (
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/hkdf"
)

// Derive maps a secret seed to the signing scalar.
//
// Inputs:
//   - seed, a secret octet string of at least SeedLength bytes.
//
// Outputs:
//   - x', a scalar such that 0 < x' < r.
//
// Procedure:
//  1. if length(seed) < SeedLength, return INVALID
//  2. x' = hash_to_field(seed, 0, r, 1)
//  3. if x' == 0, return INVALID
//  4. return x'
//
// Derivation is deterministic: the same seed always yields the same scalar.
// Callers own seed uniqueness and secrecy.
func Derive(seed []byte) (fr.Element, error) {
	var sk fr.Element
	if len(seed) < SeedLength {
		return sk, ErrInvalidInputLength
	}

	sk, err := hashToFr(seed, tagKeyDerivation)
	if err != nil {
		return sk, fmt.Errorf("deriving scalar: %w", err)
	}
	if sk.IsZero() {
		return sk, ErrZeroScalar
	}
	return sk, nil
}

// DeriveWithPublic derives the signing scalar together with the public key
// x' * G1Generator.
func DeriveWithPublic(seed []byte) (fr.Element, bls12381.G1Affine, error) {
	var pk bls12381.G1Affine
	sk, err := Derive(seed)
	if err != nil {
		return sk, pk, err
	}

	var skBig big.Int
	sk.BigInt(&skBig)
	pk.ScalarMultiplication(&g1Gen, &skBig)
	return sk, pk, nil
}

// DeriveFromIKM derives the signing scalar from input key material using
// HKDF-SHA256 with an empty salt, expanded to 48 bytes and reduced mod r,
// the draft-standard KeyGen construction. Derive is the derivation the test
// vectors are built on.
func DeriveFromIKM(ikm []byte) (fr.Element, error) {
	var sk fr.Element
	if len(ikm) < SeedLength {
		return sk, ErrInvalidInputLength
	}

	okm := make([]byte, 48)
	if _, err := io.ReadFull(hkdf.New(sha256.New, ikm, nil, nil), okm); err != nil {
		return sk, fmt.Errorf("expanding key material: %w", err)
	}

	sk.SetBytes(okm)
	if sk.IsZero() {
		return sk, ErrZeroScalar
	}
	return sk, nil
}

// Zeroize clears a secret scalar in place. Call it when the signing session
// owning the scalar is disposed.
func Zeroize(sk *fr.Element) {
	sk.SetZero()
}
