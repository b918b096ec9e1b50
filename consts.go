package bls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const (
	// CiphersuiteBasicG2 is the ciphersuite byte of the basic signature in G2,
	// matching the reference test vectors.
	CiphersuiteBasicG2 = 2

	// SeedLength is the minimum number of bytes of secret seed material
	// accepted by key derivation.
	SeedLength = 32

	// Domain tags passed to HashToField. One tag per call site; key derivation
	// and the two curve-map evaluations must never share a tag.
	tagKeyDerivation = 0
	tagMapFirst      = 1
	tagMapSecond     = 2

	// expandReps SHA-256 invocations per field element give 64 bytes of
	// expansion, at least 128 bits wider than any supported modulus.
	expandReps     = 2
	maxModulusBits = 384

	OctetScalarLength  = 32
	OctetPointG1Length = 48
	OctetPointG2Length = 96
)

var (
	_, _, g1Gen, g2Gen = bls12381.Generators()

	fpModulus = fp.Modulus()
	frModulus = fr.Modulus()
)

// GeneratorG1 returns the fixed G1 generator public keys are computed against.
func GeneratorG1() bls12381.G1Affine { return g1Gen }

// GeneratorG2 returns the fixed G2 generator.
func GeneratorG2() bls12381.G2Affine { return g2Gen }
