package bls_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bls "github.com/halcyonlabs/bls"
)

func mustBig(t *testing.T, hexStr string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(hexStr, 16)
	require.True(t, ok, "Failed to parse hex integer")
	return v
}

func TestHashToFieldScalarVector(t *testing.T) {
	seed := []byte("11223344556677889900112233445566")

	es, err := bls.HashToField(seed, 0, fr.Modulus(), 1)
	require.NoError(t, err, "HashToField should not fail")
	require.Len(t, es, 1)

	expected := mustBig(t, "6a1a3822447cc3cbdc12a4bc59bd4494df52afa0c2bbdea4e91106abe702132a")
	assert.Zero(t, es[0].Cmp(expected), "Scalar element does not match reference vector")
}

func TestHashToFieldTagSeparation(t *testing.T) {
	seed := []byte("11223344556677889900112233445566")

	es0, err := bls.HashToField(seed, 0, fr.Modulus(), 1)
	require.NoError(t, err)
	es1, err := bls.HashToField(seed, 1, fr.Modulus(), 1)
	require.NoError(t, err)

	expected := mustBig(t, "48568d10473cb067d79a6424244b93a331832ded5d93b55dfc96bdaada32bf61")
	assert.Zero(t, es1[0].Cmp(expected), "Tag 1 element does not match reference vector")
	assert.NotZero(t, es0[0].Cmp(es1[0]), "Different tags must yield different elements")
}

func TestHashToFieldExtensionVector(t *testing.T) {
	// First and second evaluations used by the curve map for the
	// ciphersuite-tagged reference message.
	msg := append([]byte{0x02}, []byte("the message to be signed")...)

	u0, err := bls.HashToField(msg, 1, fp.Modulus(), 2)
	require.NoError(t, err)
	require.Len(t, u0, 2)
	assert.Zero(t, u0[0].Cmp(mustBig(t, "199e620e4554a046e53f7dde814948ba0a658f9f0bb8b113f5dab5ec9a6884f641aa98c48acdf2f0e6ecba408ba947e4")))
	assert.Zero(t, u0[1].Cmp(mustBig(t, "0d69f4ae7d7375f5f2cdde559b97501c6328d5f45127e8596c7db86b9fefc35c66f226a882feba16c22d9221ee6217d9")))

	u1, err := bls.HashToField(msg, 2, fp.Modulus(), 2)
	require.NoError(t, err)
	require.Len(t, u1, 2)
	assert.Zero(t, u1[0].Cmp(mustBig(t, "156518e5d2f1640de639c8f4126b11888776c9867487cd3eda0c3e81b855c2ac1210b582090fb7b3d30874acd1fd3768")))
	assert.Zero(t, u1[1].Cmp(mustBig(t, "0e3bfdd08d8ac010b9f2dda2bf9fb634375fabd08ede2c007091ccdabbe3efa6e91c4ca1538ffc66ec6bdb762006254c")))
}

func TestHashToFieldGenericModulus(t *testing.T) {
	// The construction is not tied to the curve moduli; a small odd modulus
	// exercises the reduction path directly.
	es, err := bls.HashToField([]byte("generic"), 7, big.NewInt(1009), 3)
	require.NoError(t, err)
	require.Len(t, es, 3)

	expected := []int64{313, 538, 481}
	for i, e := range es {
		assert.Zero(t, e.Cmp(big.NewInt(expected[i])), "Element %d does not match", i)
	}
}

func TestHashToFieldDeterminism(t *testing.T) {
	a, err := bls.HashToField([]byte("determinism"), 3, fr.Modulus(), 4)
	require.NoError(t, err)
	b, err := bls.HashToField([]byte("determinism"), 3, fr.Modulus(), 4)
	require.NoError(t, err)

	for i := range a {
		assert.Zero(t, a[i].Cmp(b[i]), "Element %d differs between runs", i)
	}
}

func TestHashToFieldEmptyMessage(t *testing.T) {
	// The domain tag alone is a valid hash input, so the empty message is in
	// the domain of the construction.
	a, err := bls.HashToField([]byte{}, 1, fr.Modulus(), 2)
	require.NoError(t, err, "Empty message must be accepted")
	require.Len(t, a, 2)

	b, err := bls.HashToField(nil, 1, fr.Modulus(), 2)
	require.NoError(t, err)
	for i := range a {
		assert.Zero(t, a[i].Cmp(b[i]), "Nil and empty messages must hash identically")
	}

	other, err := bls.HashToField(nil, 2, fr.Modulus(), 2)
	require.NoError(t, err)
	assert.NotZero(t, a[0].Cmp(other[0]), "Tags must still separate empty-message call sites")
}

func TestHashToFieldInvalidInputs(t *testing.T) {
	_, err := bls.HashToField([]byte("msg"), 0, fr.Modulus(), 0)
	assert.ErrorIs(t, err, bls.ErrInvalidInputLength, "Zero count must be rejected")

	_, err = bls.HashToField([]byte("msg"), 0, fr.Modulus(), 256)
	assert.ErrorIs(t, err, bls.ErrInvalidInputLength, "Count beyond the one-octet counter must be rejected")

	_, err = bls.HashToField([]byte("msg"), 0, nil, 1)
	assert.ErrorIs(t, err, bls.ErrUnsupportedModulus, "Nil modulus must be rejected")

	_, err = bls.HashToField([]byte("msg"), 0, big.NewInt(1), 1)
	assert.ErrorIs(t, err, bls.ErrUnsupportedModulus, "Trivial modulus must be rejected")

	wide := new(big.Int).Lsh(big.NewInt(1), 400)
	_, err = bls.HashToField([]byte("msg"), 0, wide, 1)
	assert.ErrorIs(t, err, bls.ErrUnsupportedModulus, "Modulus wider than the expansion must be rejected")
}
