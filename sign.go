package bls

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Sign computes the basic signature in G2 of msg under the secret scalar sk
// for the given ciphersuite.
//
// Procedure:
//  1. if ciphersuite is not in 0..255, return INVALID
//  2. P = MapMessage(msg, ciphersuite)
//  3. return x' * P
//
// Sign is a pure function of its three inputs; signing the same message
// twice yields the identical signature.
func Sign(sk fr.Element, msg []byte, ciphersuite int) (bls12381.G2Affine, error) {
	var sig bls12381.G2Affine

	point, err := MapMessage(msg, ciphersuite)
	if err != nil {
		return sig, err
	}

	var skBig big.Int
	sk.BigInt(&skBig)
	sig.ScalarMultiplication(&point, &skBig)
	return sig, nil
}

// SignSeed derives the signing scalar from seed and signs msg with it,
// zeroizing the intermediate scalar before returning.
func SignSeed(seed, msg []byte, ciphersuite int) (bls12381.G2Affine, error) {
	sk, err := Derive(seed)
	if err != nil {
		return bls12381.G2Affine{}, fmt.Errorf("deriving signing key: %w", err)
	}
	defer Zeroize(&sk)

	return Sign(sk, msg, ciphersuite)
}
