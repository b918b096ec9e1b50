// Package vectors renders interoperability test vectors for the basic
// signature in G2. It holds no cryptographic logic of its own: it drives the
// signing core with structured inputs and formats the results, so the core
// stays side-effect-free.
package vectors

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	json "github.com/nikkolasg/hexjson"

	bls "github.com/halcyonlabs/bls"
)

// Vector is one complete key-derivation and signing test vector. Byte fields
// marshal to hex in JSON output.
type Vector struct {
	Seed         []byte `json:"seed"`
	Message      []byte `json:"message"`
	Ciphersuite  int    `json:"ciphersuite"`
	SecretScalar []byte `json:"secret_scalar"`
	PublicKey    []byte `json:"public_key"`
	MessagePoint []byte `json:"message_point"`
	Signature    []byte `json:"signature"`
}

// Generate derives a key pair from seed and signs msg, returning every
// intermediate value a cross-implementation check needs.
func Generate(seed, msg []byte, ciphersuite int) (*Vector, error) {
	sk, pk, err := bls.DeriveWithPublic(seed)
	if err != nil {
		return nil, fmt.Errorf("deriving key pair: %w", err)
	}
	defer bls.Zeroize(&sk)

	point, err := bls.MapMessage(msg, ciphersuite)
	if err != nil {
		return nil, fmt.Errorf("hashing message to curve: %w", err)
	}

	sig, err := bls.Sign(sk, msg, ciphersuite)
	if err != nil {
		return nil, fmt.Errorf("signing: %w", err)
	}

	return &Vector{
		Seed:         append([]byte{}, seed...),
		Message:      append([]byte{}, msg...),
		Ciphersuite:  ciphersuite,
		SecretScalar: bls.ScalarToOctets(sk),
		PublicKey:    bls.PointToOctetsG1(pk),
		MessagePoint: bls.PointToOctetsG2(point),
		Signature:    bls.PointToOctetsG2(sig),
	}, nil
}

// Printer writes vectors as labeled hex lines, one value per line, in the
// layout of the reference vector files.
type Printer struct {
	W io.Writer
}

// PrintParams writes the scheme parameters shared by all vectors: the group
// order and the fixed generators.
func (p Printer) PrintParams() error {
	g1 := bls.GeneratorG1()
	g2 := bls.GeneratorG2()
	_, err := fmt.Fprintf(p.W,
		"group order q: %s\ng1 generator: %x\ng2 generator: %x\n",
		fr.Modulus().Text(16), bls.PointToOctetsG1(g1), bls.PointToOctetsG2(g2))
	return err
}

// Print writes one vector.
func (p Printer) Print(v *Vector) error {
	_, err := fmt.Fprintf(p.W,
		"seed: %x\nmessage: %x\nciphersuite: %d\nsecret scalar: %x\npublic key: %x\nmessage point: %x\nsignature: %x\n",
		v.Seed, v.Message, v.Ciphersuite, v.SecretScalar, v.PublicKey, v.MessagePoint, v.Signature)
	return err
}

// EncodeJSON writes the vector as a single JSON object with hex-encoded byte
// fields.
func EncodeJSON(w io.Writer, v *Vector) error {
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding vector: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
