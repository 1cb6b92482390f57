// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddcore

import "github.com/dalzilio/ddcore/dd"

// MDDMinsol is Minsol's multi-valued analogue, grounded on the
// original source's mdd_minsol.rs: it generalizes "a solution is
// minimal when no strict subset dominates it" to a value-ordered
// domain, where value i is understood to dominate any value j < i
// (e.g. a component's degraded state dominates a lesser degradation of
// the same component). Each header's children are pruned against the
// immediately preceding (next lower) value's minimal solutions, rather
// than the full union of every lower value — a node with EdgeNum > 2
// gains one Without pass per adjacent pair instead of against an
// explicit union operator, which this package does not build (there is
// no Apply/union primitive in scope here; see DESIGN.md).
func MDDMinsol(m *dd.Manager, root dd.NodeID, conv TerminalConvention) (dd.NodeID, error) {
	cache := make(map[dd.NodeID]dd.NodeID)
	wcache := make(map[[2]dd.NodeID]dd.NodeID)
	return mddMinsolRec(m, root, conv, cache, wcache)
}

func mddMinsolRec(m *dd.Manager, node dd.NodeID, conv TerminalConvention, cache map[dd.NodeID]dd.NodeID, wcache map[[2]dd.NodeID]dd.NodeID) (dd.NodeID, error) {
	if v, ok := cache[node]; ok {
		return v, nil
	}
	n, err := m.GetNode(node)
	if err != nil {
		return 0, err
	}
	var result dd.NodeID
	switch n.Kind {
	case dd.Zero:
		result = emptyTerminal(m, conv)
	case dd.One:
		result = m.One()
	case dd.Terminal:
		result = m.CreateTerminal(n.Value)
	case dd.Undet:
		return 0, invalidDiagram(n.Kind.String())
	case dd.NonTerminal:
		mins := make([]dd.NodeID, len(n.Children))
		for i, child := range n.Children {
			raw, err := mddMinsolRec(m, child, conv, cache, wcache)
			if err != nil {
				return 0, err
			}
			if i == 0 {
				mins[i] = raw
				continue
			}
			pruned, err := withoutMDDRec(m, raw, mins[i-1], conv, wcache)
			if err != nil {
				return 0, err
			}
			mins[i] = pruned
		}
		result, err = m.CreateNode(n.Header, mins...)
		if err != nil {
			return 0, err
		}
	default:
		return 0, invalidDiagram(n.Kind.String())
	}
	cache[node] = result
	return result, nil
}

// WithoutMDD is Without's multi-valued analogue: a's solutions minus
// those dominated by a solution of b, under the same "higher index
// dominates lower index" ordering MDDMinsol uses.
func WithoutMDD(m *dd.Manager, a, b dd.NodeID, conv TerminalConvention) (dd.NodeID, error) {
	wcache := make(map[[2]dd.NodeID]dd.NodeID)
	return withoutMDDRec(m, a, b, conv, wcache)
}

func withoutMDDRec(m *dd.Manager, a, b dd.NodeID, conv TerminalConvention, cache map[[2]dd.NodeID]dd.NodeID) (dd.NodeID, error) {
	empty := emptyTerminal(m, conv)
	if a == empty {
		// Nothing in a to prune: it is already the empty family.
		return a, nil
	}
	if b == empty {
		// b dominates nothing, so a passes through unchanged.
		return a, nil
	}
	if b == m.One() {
		// b accepts the empty assignment, which is a subset of every
		// other assignment, so it dominates everything in a.
		return empty, nil
	}
	if a == m.Undet() || b == m.Undet() {
		// Only reachable here when Undet is not itself conv's empty
		// sentinel — a genuine programmer error, not a legitimate input.
		return 0, invalidDiagram(dd.Undet.String())
	}
	if a == b {
		// Every solution of a is trivially dominated by itself in b.
		return empty, nil
	}

	key := [2]dd.NodeID{a, b}
	if v, ok := cache[key]; ok {
		return v, nil
	}

	an, gerr := m.GetNode(a)
	if gerr != nil {
		return 0, gerr
	}
	bn, gerr := m.GetNode(b)
	if gerr != nil {
		return 0, gerr
	}

	var result dd.NodeID
	var err error
	switch {
	case an.Kind != dd.NonTerminal && bn.Kind != dd.NonTerminal:
		// Two distinct leaf values (equality already handled above):
		// neither dominates the other, a survives unchanged.
		result = a
	case an.Kind != dd.NonTerminal:
		// a is a single leaf value; b is non-terminal, so recurse into
		// every one of its branches to see whether a survives each.
		children := make([]dd.NodeID, len(bn.Children))
		for i, bc := range bn.Children {
			pruned, e := withoutMDDRec(m, a, bc, conv, cache)
			if e != nil {
				return 0, e
			}
			children[i] = pruned
		}
		result, err = m.CreateNode(bn.Header, children...)
		if err != nil {
			return 0, err
		}
	case bn.Kind != dd.NonTerminal:
		// b is a single leaf value (not One, not empty); it applies
		// unchanged to every one of a's branches.
		children := make([]dd.NodeID, len(an.Children))
		for i, ac := range an.Children {
			pruned, e := withoutMDDRec(m, ac, b, conv, cache)
			if e != nil {
				return 0, e
			}
			children[i] = pruned
		}
		result, err = m.CreateNode(an.Header, children...)
		if err != nil {
			return 0, err
		}
	default:
		alvl, _ := m.Level(a)
		blvl, _ := m.Level(b)

		switch {
		case alvl > blvl:
			// a's top variable does not appear in b; b applies
			// unchanged to every one of a's branches.
			children := make([]dd.NodeID, len(an.Children))
			for i, ac := range an.Children {
				pruned, e := withoutMDDRec(m, ac, b, conv, cache)
				if e != nil {
					return 0, e
				}
				children[i] = pruned
			}
			result, err = m.CreateNode(an.Header, children...)
			if err != nil {
				return 0, err
			}
		case alvl < blvl:
			// b's top variable does not appear in a; only b's lowest
			// (index 0) child applies, the rest of b is irrelevant to a.
			result, err = withoutMDDRec(m, a, bn.Children[0], conv, cache)
			if err != nil {
				return 0, err
			}
		default:
			children := make([]dd.NodeID, len(an.Children))
			for i := range an.Children {
				pruned, e := withoutMDDRec(m, an.Children[i], bn.Children[i], conv, cache)
				if e != nil {
					return 0, e
				}
				children[i] = pruned
			}
			result, err = m.CreateNode(an.Header, children...)
			if err != nil {
				return 0, err
			}
		}
	}
	cache[key] = result
	return result, nil
}
