package bls

import (
	"encoding/binary"
	"errors"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// I2OSP converts an integer to an octet string of specified length
// As defined in RFC 3447, Section 4.1
func I2OSP(val int, length int) []byte {
	if length <= 0 {
		return nil
	}

	result := make([]byte, length)
	switch length {
	case 1:
		result[0] = byte(val)
	case 2:
		binary.BigEndian.PutUint16(result, uint16(val))
	case 4:
		binary.BigEndian.PutUint32(result, uint32(val))
	case 8:
		binary.BigEndian.PutUint64(result, uint64(val))
	default:
		// For other lengths, handle manually
		for i := length - 1; i >= 0; i-- {
			result[i] = byte(val & 0xFF)
			val >>= 8
		}
	}

	return result
}

// PointToOctetsG1 converts a G1 point to octets using compression
func PointToOctetsG1(p bls12381.G1Affine) []byte {
	bytes := p.Bytes()
	return bytes[:]
}

// PointToOctetsG2 converts a G2 point to octets using compression
func PointToOctetsG2(p bls12381.G2Affine) []byte {
	bytes := p.Bytes()
	return bytes[:]
}

// OctetsToPointG1 converts octets to a G1 point
func OctetsToPointG1(bytes []byte) (bls12381.G1Affine, error) {
	var point bls12381.G1Affine
	_, err := point.SetBytes(bytes)
	return point, err
}

// OctetsToPointG2 converts octets to a G2 point
func OctetsToPointG2(bytes []byte) (bls12381.G2Affine, error) {
	var point bls12381.G2Affine
	_, err := point.SetBytes(bytes)
	return point, err
}

// OctetsToPublicKey decodes an octet string representing a public key,
// validates it and returns the corresponding point in G1.
func OctetsToPublicKey(pk []byte) (bls12381.G1Affine, error) {
	if len(pk) != OctetPointG1Length {
		return bls12381.G1Affine{}, errors.New("INVALID: public key octet length")
	}

	W, err := OctetsToPointG1(pk)
	if err != nil {
		return bls12381.G1Affine{}, errors.New("INVALID: cannot decode G1 point")
	}

	if !W.IsInSubGroup() {
		return bls12381.G1Affine{}, errors.New("INVALID: point not in correct subgroup")
	}

	if W.IsInfinity() {
		return bls12381.G1Affine{}, errors.New("INVALID: public key is identity element")
	}

	return W, nil
}

// OctetsToSignature decodes and validates a signature point in G2.
func OctetsToSignature(sig []byte) (bls12381.G2Affine, error) {
	if len(sig) != OctetPointG2Length {
		return bls12381.G2Affine{}, errors.New("INVALID: signature octet length")
	}

	S, err := OctetsToPointG2(sig)
	if err != nil {
		return bls12381.G2Affine{}, errors.New("INVALID: cannot decode G2 point")
	}

	if !S.IsInSubGroup() {
		return bls12381.G2Affine{}, errors.New("INVALID: point not in correct subgroup")
	}

	return S, nil
}

// ScalarToOctets encodes a scalar as a fixed-width big-endian octet string.
func ScalarToOctets(e fr.Element) []byte {
	bytes := e.Bytes()
	return bytes[:]
}

// OctetsToScalar decodes a fixed-width big-endian octet string to a scalar.
func OctetsToScalar(octets []byte) (fr.Element, error) {
	var e fr.Element
	if len(octets) != OctetScalarLength {
		return e, errors.New("INVALID: scalar octet length")
	}
	e.SetBytes(octets)
	return e, nil
}
