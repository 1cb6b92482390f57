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
)

// degradedComponentFixture builds a single three-valued header x (states
// 0, 1, 2, each more degraded than the last) where the top event occurs
// as soon as x reaches state 1: children = [Zero, One, One]. State 2 is
// dominated by state 1 — whichever is reached first already satisfies
// the event — so the only minimal solution is {x=1}.
func degradedComponentFixture(t *testing.T) (*dd.Manager, dd.HeaderID, dd.NodeID) {
	t.Helper()
	m := dd.NewManager()
	hx := m.DefineHeader("x", 3)
	root, err := m.CreateNode(hx, m.Zero(), m.One(), m.One())
	require.NoError(t, err)
	return m, hx, root
}

func TestMDDMinsolPrunesDominatedState(t *testing.T) {
	m, hx, root := degradedComponentFixture(t)

	got, err := ddcore.MDDMinsol(m, root, ddcore.Monotone)
	require.NoError(t, err)

	n, err := m.GetNode(got)
	require.NoError(t, err)
	require.Equal(t, dd.NonTerminal, n.Kind)
	assert.Equal(t, hx, n.Header)
	require.Len(t, n.Children, 3)

	kinds := make([]dd.Kind, 3)
	for i, c := range n.Children {
		cn, err := m.GetNode(c)
		require.NoError(t, err)
		kinds[i] = cn.Kind
	}
	// State 0 never satisfies the event, state 1 is the minimal
	// satisfying state, and state 2 is pruned since it is dominated by
	// the already-accepted state 1.
	assert.Equal(t, []dd.Kind{dd.Zero, dd.One, dd.Zero}, kinds)
}

func TestMDDMinsolIsIdempotent(t *testing.T) {
	m, _, root := degradedComponentFixture(t)

	once, err := ddcore.MDDMinsol(m, root, ddcore.Monotone)
	require.NoError(t, err)
	twice, err := ddcore.MDDMinsol(m, once, ddcore.Monotone)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

// crossHeaderFixture builds a two-header diagram (y nested under x) whose
// two top-level minimal solutions, {x=0,y=0} and {x=1,y=1}, live at the
// same level once each x-branch is reduced to its own y-level minsol.
// Pruning one against the other must compare same-index y-children only:
// cross-pruning x=1's y=1 branch against x=0's y=0 child would wrongly
// erase a non-dominated minimal solution.
func crossHeaderFixture(t *testing.T) (*dd.Manager, dd.HeaderID, dd.NodeID) {
	t.Helper()
	m := dd.NewManager()
	hy := m.DefineHeader("y", 2)
	hx := m.DefineHeader("x", 2)
	child0, err := m.CreateNode(hy, m.One(), m.Zero())
	require.NoError(t, err)
	child1, err := m.CreateNode(hy, m.Zero(), m.One())
	require.NoError(t, err)
	root, err := m.CreateNode(hx, child0, child1)
	require.NoError(t, err)
	return m, hx, root
}

func TestMDDMinsolDoesNotCrossPruneSiblingBranches(t *testing.T) {
	m, hx, root := crossHeaderFixture(t)

	got, err := ddcore.MDDMinsol(m, root, ddcore.Monotone)
	require.NoError(t, err)

	n, err := m.GetNode(got)
	require.NoError(t, err)
	require.Equal(t, dd.NonTerminal, n.Kind)
	assert.Equal(t, hx, n.Header)
	require.Len(t, n.Children, 2)

	// Neither {x=0,y=0} nor {x=1,y=1} dominates the other under this
	// algorithm's same-index comparison, so both branches survive
	// unchanged: x=0 still only accepts y=0, x=1 still only accepts y=1.
	low, err := m.GetNode(n.Children[0])
	require.NoError(t, err)
	require.Equal(t, dd.NonTerminal, low.Kind)
	lowKinds := make([]dd.Kind, len(low.Children))
	for i, c := range low.Children {
		cn, err := m.GetNode(c)
		require.NoError(t, err)
		lowKinds[i] = cn.Kind
	}
	assert.Equal(t, []dd.Kind{dd.One, dd.Zero}, lowKinds)

	high, err := m.GetNode(n.Children[1])
	require.NoError(t, err)
	require.Equal(t, dd.NonTerminal, high.Kind)
	highKinds := make([]dd.Kind, len(high.Children))
	for i, c := range high.Children {
		cn, err := m.GetNode(c)
		require.NoError(t, err)
		highKinds[i] = cn.Kind
	}
	assert.Equal(t, []dd.Kind{dd.Zero, dd.One}, highKinds)
}

// valueLeafFixture builds two distinct value terminals (5 and 9,
// neither Zero/One) rather than boolean leaves, with no header at all,
// so that WithoutMDD must compare two leaves directly instead of
// recursing into a non-terminal's children.
func valueLeafFixture(t *testing.T) (*dd.Manager, dd.NodeID, dd.NodeID) {
	t.Helper()
	m := dd.NewManager()
	a := m.CreateTerminal(5)
	b := m.CreateTerminal(9)
	return m, a, b
}

func TestWithoutMDDLeavesDoNotDominateEachOther(t *testing.T) {
	m, a, b := valueLeafFixture(t)

	got, err := ddcore.WithoutMDD(m, a, b, ddcore.Monotone)
	require.NoError(t, err)
	// Two distinct value terminals are incomparable leaves: neither
	// dominates the other, so a survives unchanged.
	assert.Equal(t, a, got)
}

func TestMDDMinsolFailsOnUndetNode(t *testing.T) {
	m := dd.NewManager()
	hx := m.DefineHeader("x", 2)
	root, err := m.CreateNode(hx, m.Undet(), m.One())
	require.NoError(t, err)

	_, err = ddcore.MDDMinsol(m, root, ddcore.Monotone)
	require.ErrorIs(t, err, ddcore.ErrInvalidDiagram)
}

func TestMDDMinsolPathsConventionMapsZeroToUndet(t *testing.T) {
	m, _, root := degradedComponentFixture(t)

	got, err := ddcore.MDDMinsol(m, root, ddcore.MinimalPaths)
	require.NoError(t, err)

	n, err := m.GetNode(got)
	require.NoError(t, err)
	require.Equal(t, dd.NonTerminal, n.Kind)
	for i, want := range []dd.Kind{dd.Undet, dd.One, dd.Undet} {
		cn, err := m.GetNode(n.Children[i])
		require.NoError(t, err)
		assert.Equal(t, want, cn.Kind, "child %d", i)
	}
}
