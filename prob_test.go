// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ddcore "github.com/dalzilio/ddcore"
	"github.com/dalzilio/ddcore/dd"
	"github.com/dalzilio/ddcore/exprbuild"
)

func xorFixture(t *testing.T) (*dd.Manager, dd.NodeID) {
	t.Helper()
	m := dd.NewManager()
	b := exprbuild.New(m)
	x, err := b.Var("x")
	require.NoError(t, err)
	y, err := b.Var("y")
	require.NoError(t, err)
	f, err := b.Xor(x, y)
	require.NoError(t, err)
	return m, f
}

func uniform(float64val float64) ddcore.ProbOf {
	return func(string) float64 { return float64val }
}

func TestProbXorAtHalf(t *testing.T) {
	m, f := xorFixture(t)
	got, err := ddcore.Prob(m, f, ddcore.NewBoolSet(true), uniform(0.5))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestProbXorBiased(t *testing.T) {
	m, f := xorFixture(t)
	p := func(label string) float64 {
		if label == "x" {
			return 0.2
		}
		return 0.7
	}
	got, err := ddcore.Prob(m, f, ddcore.NewBoolSet(true), p)
	require.NoError(t, err)
	// P(x xor y) = p(x)(1-p(y)) + (1-p(x))p(y)
	want := 0.2*(1-0.7) + (1-0.2)*0.7
	assert.InDelta(t, want, got, 1e-9)
}

func TestProbAndOrMatchesCountAtUniform(t *testing.T) {
	m, _, f := andOrFixture(t)
	got, err := ddcore.Prob(m, f, ddcore.NewBoolSet(true), uniform(0.5))
	require.NoError(t, err)
	// count(f,{true})/2^3 = 3/8
	assert.InDelta(t, 3.0/8.0, got, 1e-9)
}

func TestProbComplementsToOne(t *testing.T) {
	m, f := xorFixture(t)
	pTrue, err := ddcore.Prob(m, f, ddcore.NewBoolSet(true), uniform(0.37))
	require.NoError(t, err)
	pFalse, err := ddcore.Prob(m, f, ddcore.NewBoolSet(false), uniform(0.37))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pTrue+pFalse, 1e-9)
}

func TestMDDProbTernaryMin(t *testing.T) {
	m, g := ternaryMinFixture(t)
	p := func(string, int) float64 { return 1.0 / 3.0 }
	got, err := ddcore.MDDProb(m, g, ddcore.NewValueSet(0), p)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/9.0, got, 1e-9)
}

func TestProbFailsOnUndetNode(t *testing.T) {
	m := dd.NewManager()
	hx := m.DefineHeader("x", 2)
	f, err := m.CreateNode(hx, m.Undet(), m.One())
	require.NoError(t, err)

	_, err = ddcore.Prob(m, f, ddcore.NewBoolSet(true), uniform(0.5))
	require.ErrorIs(t, err, ddcore.ErrInvalidDiagram)
}

func TestMDDProbFailsOnUndetNode(t *testing.T) {
	m := dd.NewManager()
	hx := m.DefineHeader("x", 2)
	f, err := m.CreateNode(hx, m.Undet(), m.One())
	require.NoError(t, err)

	p := func(string, int) float64 { return 0.5 }
	_, err = ddcore.MDDProb(m, f, ddcore.NewValueSet(1), p)
	require.ErrorIs(t, err, ddcore.ErrInvalidDiagram)
}
