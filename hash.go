package bls

import (
	"crypto/sha256"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// HashToField derives count pseudorandom elements modulo modulus from msg,
// separated from other call sites by the single-byte domain tag.
//
// The construction expands and then reduces, so outputs are uniform modulo
// the modulus rather than truncated:
//
//	1. msg_prime = SHA-256(msg || I2OSP(tag, 1))
//	2. for i in (1, ..., count):
//	     t_i = SHA-256(msg_prime || I2OSP(i, 1) || I2OSP(1, 1)) ||
//	           SHA-256(msg_prime || I2OSP(i, 1) || I2OSP(2, 1))
//	3. e_i = OS2IP(t_i) mod modulus
//
// Each element draws on 64 bytes of hash output, which keeps at least 128
// bits of slack over every supported modulus width.
//
// Any msg is accepted, including the empty string: the domain tag alone is a
// well-defined hash input. count is limited to 255 because the element
// counter occupies a single octet.
func HashToField(msg []byte, tag byte, modulus *big.Int, count int) ([]*big.Int, error) {
	if count < 1 || count > 255 {
		return nil, ErrInvalidInputLength
	}
	if modulus == nil || modulus.BitLen() < 2 || modulus.BitLen() > maxModulusBits {
		return nil, ErrUnsupportedModulus
	}

	h := sha256.New()
	h.Write(msg)
	h.Write(I2OSP(int(tag), 1))
	msgPrime := h.Sum(nil)

	out := make([]*big.Int, count)
	buf := make([]byte, 0, expandReps*sha256.Size)
	for i := 1; i <= count; i++ {
		buf = buf[:0]
		for j := 1; j <= expandReps; j++ {
			h.Reset()
			h.Write(msgPrime)
			h.Write(I2OSP(i, 1))
			h.Write(I2OSP(j, 1))
			buf = h.Sum(buf)
		}
		e := new(big.Int).SetBytes(buf)
		out[i-1] = e.Mod(e, modulus)
	}
	return out, nil
}

// hashToFr derives a single scalar-field element from msg.
func hashToFr(msg []byte, tag byte) (fr.Element, error) {
	var e fr.Element
	es, err := HashToField(msg, tag, frModulus, 1)
	if err != nil {
		return e, err
	}
	e.SetBigInt(es[0])
	return e, nil
}

// hashToFp2 derives one element of the quadratic extension of the base field
// from msg. The first base-field element is the c0 coordinate.
func hashToFp2(msg []byte, tag byte) (bls12381.E2, error) {
	var u bls12381.E2
	es, err := HashToField(msg, tag, fpModulus, 2)
	if err != nil {
		return u, err
	}
	u.A0.SetBigInt(es[0])
	u.A1.SetBigInt(es[1])
	return u, nil
}
