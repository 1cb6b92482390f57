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

// andOrFixture builds f = x AND (y OR z), the scenario spec.md's
// Testable Properties section uses: count(f, {true}, BDD) = 3.
func andOrFixture(t *testing.T) (*dd.Manager, *exprbuild.Builder, dd.NodeID) {
	t.Helper()
	m := dd.NewManager()
	b := exprbuild.New(m)
	x, err := b.Var("x")
	require.NoError(t, err)
	y, err := b.Var("y")
	require.NoError(t, err)
	z, err := b.Var("z")
	require.NoError(t, err)
	yorz, err := b.Or(y, z)
	require.NoError(t, err)
	f, err := b.And(x, yorz)
	require.NoError(t, err)
	return m, b, f
}

func TestCountAndOr(t *testing.T) {
	m, _, f := andOrFixture(t)
	got, err := ddcore.Count(m, f, ddcore.NewBoolSet(true), ddcore.BDD, ddcore.WordRing())
	require.NoError(t, err)
	assert.EqualValues(t, 3, got)
}

func TestCountComplementIsEightMinusThree(t *testing.T) {
	m, _, f := andOrFixture(t)
	got, err := ddcore.Count(m, f, ddcore.NewBoolSet(false), ddcore.BDD, ddcore.WordRing())
	require.NoError(t, err)
	assert.EqualValues(t, 5, got)
}

func TestCountOrOfThree(t *testing.T) {
	m := dd.NewManager()
	b := exprbuild.New(m)
	x, _ := b.Var("x")
	y, _ := b.Var("y")
	z, _ := b.Var("z")
	xy, err := b.Or(x, y)
	require.NoError(t, err)
	f, err := b.Or(xy, z)
	require.NoError(t, err)
	got, err := ddcore.Count(m, f, ddcore.NewBoolSet(true), ddcore.BDD, ddcore.WordRing())
	require.NoError(t, err)
	assert.EqualValues(t, 7, got)
}

func TestCountTerminalRoot(t *testing.T) {
	m := dd.NewManager()
	got, err := ddcore.Count(m, m.One(), ddcore.NewBoolSet(true), ddcore.BDD, ddcore.WordRing())
	require.NoError(t, err)
	assert.EqualValues(t, 1, got)
}

func TestCountEmptySelectorIsZero(t *testing.T) {
	m, _, f := andOrFixture(t)
	got, err := ddcore.Count(m, f, ddcore.NewBoolSet(), ddcore.BDD, ddcore.WordRing())
	require.NoError(t, err)
	assert.EqualValues(t, 0, got)
}

// ternaryMinFixture builds g = min(x, y) over the domain {0,1,2},
// spec.md's scenario: count(g, {0}) under MDD semantics = 5.
func ternaryMinFixture(t *testing.T) (*dd.Manager, dd.NodeID) {
	t.Helper()
	m := dd.NewManager()
	hy := m.DefineHeader("y", 3)
	hx := m.DefineHeader("x", 3)

	t0 := m.CreateTerminal(0)
	t1 := m.CreateTerminal(1)
	t2 := m.CreateTerminal(2)

	// y-node for a given x value v: min(v, y) for y in {0,1,2}.
	yNodeFor := func(v int) dd.NodeID {
		children := make([]dd.NodeID, 3)
		for y := 0; y < 3; y++ {
			min := v
			if y < v {
				min = y
			}
			switch min {
			case 0:
				children[y] = t0
			case 1:
				children[y] = t1
			default:
				children[y] = t2
			}
		}
		id, err := m.CreateNode(hy, children...)
		require.NoError(t, err)
		return id
	}

	root, err := m.CreateNode(hx, yNodeFor(0), yNodeFor(1), yNodeFor(2))
	require.NoError(t, err)
	return m, root
}

func TestMDDCountTernaryMin(t *testing.T) {
	m, g := ternaryMinFixture(t)
	got, err := ddcore.MDDCount(m, g, ddcore.NewValueSet(0), ddcore.BDD, ddcore.WordRing())
	require.NoError(t, err)
	assert.EqualValues(t, 5, got)
}

func TestNodeCount(t *testing.T) {
	m, _, f := andOrFixture(t)
	nonterm, term, total, err := ddcore.NodeCount(m, f)
	require.NoError(t, err)
	assert.Greater(t, nonterm, 0)
	assert.Greater(t, term, 0)
	assert.Equal(t, nonterm+term, total)
}

func TestCountBigRingAgreesWithWordRing(t *testing.T) {
	m, _, f := andOrFixture(t)
	word, err := ddcore.Count(m, f, ddcore.NewBoolSet(true), ddcore.BDD, ddcore.WordRing())
	require.NoError(t, err)
	big, err := ddcore.Count(m, f, ddcore.NewBoolSet(true), ddcore.BDD, ddcore.BigRing())
	require.NoError(t, err)
	assert.Equal(t, int64(word), big.Int64())
}
