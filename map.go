package bls

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/hash_to_curve"
)

// MapToG2 hashes msg onto the prime-order subgroup of G2 using the simplified
// SWU map on the isogenous curve.
//
// Two independent field evaluations are mapped and added before cofactor
// clearing; a single evaluation is biased and would be distinguishable from
// uniform sampling in the subgroup.
//
// The map is defined for every byte input, including the empty message.
func MapToG2(msg []byte) (bls12381.G2Affine, error) {
	u0, err := hashToFp2(msg, tagMapFirst)
	if err != nil {
		return bls12381.G2Affine{}, err
	}
	u1, err := hashToFp2(msg, tagMapSecond)
	if err != nil {
		return bls12381.G2Affine{}, err
	}

	Q0 := bls12381.MapToCurve2(&u0)
	Q1 := bls12381.MapToCurve2(&u1)

	hash_to_curve.G2Isogeny(&Q0.X, &Q0.Y)
	hash_to_curve.G2Isogeny(&Q1.X, &Q1.Y)

	var _Q0, _Q1 bls12381.G2Jac
	_Q0.FromAffine(&Q0)
	_Q1.FromAffine(&Q1).AddAssign(&_Q0)
	_Q1.ClearCofactor(&_Q1)

	var res bls12381.G2Affine
	res.FromJacobian(&_Q1)
	if res.IsInfinity() {
		return res, ErrMapFailure
	}
	return res, nil
}

// MapMessage hashes a ciphersuite-tagged message onto G2. The ciphersuite
// byte is prepended to msg before hashing so that signatures from different
// suites are never confusable.
func MapMessage(msg []byte, ciphersuite int) (bls12381.G2Affine, error) {
	if ciphersuite < 0 || ciphersuite > 255 {
		return bls12381.G2Affine{}, ErrInvalidCiphersuite
	}

	tagged := append(I2OSP(ciphersuite, 1), msg...)

	point, err := MapToG2(tagged)
	if err != nil {
		return bls12381.G2Affine{}, fmt.Errorf("hashing tagged message: %w", err)
	}
	return point, nil
}
