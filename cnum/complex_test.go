package cnum_test

import (
	"testing"

	"github.com/katalvlaran/blockseq/cnum"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-12

// TestComplex_Arithmetic covers Add/Sub/Mul against hand-computed values and
// checks that operands are left untouched (value immutability).
func TestComplex_Arithmetic(t *testing.T) {
	a := cnum.NewComplex(3, 4)
	b := cnum.NewComplex(1, -2)

	sum := a.Add(b)
	assert.True(t, sum.Equal(cnum.NewComplex(4, 2), eps), "sum")

	diff := a.Sub(b)
	assert.True(t, diff.Equal(cnum.NewComplex(2, 6), eps), "difference")

	// (3+4i)(1-2i) = 3-6i+4i+8 = 11-2i
	prod := a.Mul(b)
	assert.True(t, prod.Equal(cnum.NewComplex(11, -2), eps), "product")

	// Operands survive every operation unchanged.
	assert.Equal(t, 3.0, a.Re())
	assert.Equal(t, 4.0, a.Im())
	assert.Equal(t, 1.0, b.Re())
	assert.Equal(t, -2.0, b.Im())
}

// TestComplex_ConjAbs covers conjugation and modulus on a 3-4-5 triangle.
func TestComplex_ConjAbs(t *testing.T) {
	z := cnum.NewComplex(3, 4)

	conj := z.Conj()
	assert.Equal(t, 3.0, conj.Re())
	assert.Equal(t, -4.0, conj.Im())
	assert.InDelta(t, 5.0, z.Abs(), eps, "|3+4i| = 5")

	// z * conj(z) must be |z|^2 on the real axis.
	sq := z.Mul(conj)
	assert.True(t, sq.Equal(cnum.NewComplex(25, 0), eps))
}

// TestComplex_String checks both sign renderings.
func TestComplex_String(t *testing.T) {
	assert.Equal(t, "3+4i", cnum.NewComplex(3, 4).String())
	assert.Equal(t, "1.5-2i", cnum.NewComplex(1.5, -2).String())
	assert.Equal(t, "0+0i", cnum.NewComplex(0, 0).String())
}

// TestComplex_Equal checks the epsilon policy in both directions.
func TestComplex_Equal(t *testing.T) {
	z := cnum.NewComplex(1, 1)

	assert.True(t, z.Equal(cnum.NewComplex(1+1e-13, 1-1e-13), eps), "inside eps")
	assert.False(t, z.Equal(cnum.NewComplex(1+1e-9, 1), eps), "outside eps")
}
