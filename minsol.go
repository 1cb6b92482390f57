// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddcore

import "github.com/dalzilio/ddcore/dd"

// TerminalConvention selects how Minsol treats the two Boolean
// terminals. The original source is inconsistent between its two
// callers (bdd_minsol.rs treats a monotone function's own Zero/One as
// the result's Zero/One, while its minimal-paths caller maps Zero to
// Undet so that "no solution" and "explicitly excluded" stay
// distinguishable); rather than pick one, both are exposed so callers
// can choose the convention their downstream logic expects.
type TerminalConvention int

const (
	// Monotone maps Zero to Zero and One to One, appropriate when the
	// diagram already represents a monotone Boolean function and the
	// caller wants an ordinary reduced diagram back.
	Monotone TerminalConvention = iota
	// MinimalPaths maps Zero to Undet and One to One, appropriate when
	// the caller distinguishes "provably no solution along this branch"
	// from "path not covered by any minimal solution".
	MinimalPaths
)

func emptyTerminal(m *dd.Manager, conv TerminalConvention) dd.NodeID {
	if conv == Monotone {
		return m.Zero()
	}
	return m.Undet()
}

// Minsol computes the minimal (irredundant) solutions of the monotone
// Boolean function represented by the diagram rooted at root, under
// the Monotone terminal convention. A solution is minimal when no
// strict subset of the variables it sets true is itself a solution.
// This is the mincut/prime-implicant extraction spec.md §4.5 calls
// for, grounded on the original source's bdd_minsol.rs.
//
// The returned diagram encodes a FAMILY of minimal variable sets, not
// an ordinary Boolean function — a branch pruned by Without is
// deliberately unreachable for combinations already covered by a
// shorter solution, so evaluating it path by path with BDD semantics
// (which treats a missing variable as a don't-care and so silently
// re-derives combinations the pruning just removed) gives misleading
// results. Always read it back with ZDD semantics (Count, PathIter,
// ... with sem=ZDD), where each path corresponds to exactly one
// minimal solution.
func Minsol(m *dd.Manager, root dd.NodeID) (dd.NodeID, error) {
	return minsolWith(m, root, Monotone)
}

// MinsolPaths is Minsol under the MinimalPaths terminal convention.
func MinsolPaths(m *dd.Manager, root dd.NodeID) (dd.NodeID, error) {
	return minsolWith(m, root, MinimalPaths)
}

func minsolWith(m *dd.Manager, root dd.NodeID, conv TerminalConvention) (dd.NodeID, error) {
	cache := make(map[dd.NodeID]dd.NodeID)
	wcache := make(map[[2]dd.NodeID]dd.NodeID)
	return minsolRec(m, root, conv, cache, wcache)
}

func minsolRec(m *dd.Manager, node dd.NodeID, conv TerminalConvention, cache map[dd.NodeID]dd.NodeID, wcache map[[2]dd.NodeID]dd.NodeID) (dd.NodeID, error) {
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
	case dd.Undet:
		return 0, invalidDiagram(n.Kind.String())
	case dd.NonTerminal:
		lowMin, err := minsolRec(m, n.Children[0], conv, cache, wcache)
		if err != nil {
			return 0, err
		}
		highMin, err := minsolRec(m, n.Children[1], conv, cache, wcache)
		if err != nil {
			return 0, err
		}
		// A solution reached via the high (x=true) branch is only
		// minimal if no solution reachable via the low (x=false)
		// branch is already a subset of it — those are dominated and
		// must be removed so only irredundant solutions survive.
		highPruned, err := withoutRec(m, highMin, lowMin, conv, wcache)
		if err != nil {
			return 0, err
		}
		result, err = m.CreateNode(n.Header, lowMin, highPruned)
		if err != nil {
			return 0, err
		}
	default:
		return 0, invalidDiagram(n.Kind.String())
	}
	cache[node] = result
	return result, nil
}

// Without computes the set of solutions of a that are not dominated by
// any solution of b, i.e. a's solutions minus those that are a
// superset of some solution in b. It is exported separately from
// Minsol because it is the reusable irredundant-subset primitive
// spec.md §4.5 names, independent of the minsol recursion that
// happens to apply it at every level.
func Without(m *dd.Manager, a, b dd.NodeID, conv TerminalConvention) (dd.NodeID, error) {
	wcache := make(map[[2]dd.NodeID]dd.NodeID)
	return withoutRec(m, a, b, conv, wcache)
}

func withoutRec(m *dd.Manager, a, b dd.NodeID, conv TerminalConvention, cache map[[2]dd.NodeID]dd.NodeID) (dd.NodeID, error) {
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
		// sentinel, i.e. an Undet present in the original diagram
		// rather than one synthesized by Minsol's MinimalPaths
		// convention — a programmer error, not a legitimate input.
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

	var result dd.NodeID
	var err error
	if a == m.One() {
		// a is just the empty solution; b (not One, not empty, not
		// Undet, checked above) is a non-terminal, so recurse into its
		// structure to see whether the empty solution survives each
		// branch.
		bn, gerr := m.GetNode(b)
		if gerr != nil {
			return 0, gerr
		}
		low, e := withoutRec(m, a, bn.Children[0], conv, cache)
		if e != nil {
			return 0, e
		}
		high, e := withoutRec(m, a, bn.Children[1], conv, cache)
		if e != nil {
			return 0, e
		}
		result, err = m.CreateNode(bn.Header, low, high)
		if err != nil {
			return 0, err
		}
	} else {
		an, gerr := m.GetNode(a)
		if gerr != nil {
			return 0, gerr
		}
		bn, gerr := m.GetNode(b)
		if gerr != nil {
			return 0, gerr
		}
		alvl, _ := m.Level(a)
		blvl, _ := m.Level(b)

		switch {
		case alvl > blvl:
			// a's top variable does not appear in b; b applies
			// unchanged to both of a's branches.
			low, e := withoutRec(m, an.Children[0], b, conv, cache)
			if e != nil {
				return 0, e
			}
			high, e := withoutRec(m, an.Children[1], b, conv, cache)
			if e != nil {
				return 0, e
			}
			result, err = m.CreateNode(an.Header, low, high)
			if err != nil {
				return 0, err
			}
		case alvl < blvl:
			// b's top variable does not appear in a; only b's low
			// branch applies (the implicit "this variable absent"
			// branch), b's high branch is irrelevant to a.
			result, err = withoutRec(m, a, bn.Children[0], conv, cache)
			if err != nil {
				return 0, err
			}
		default:
			low, e := withoutRec(m, an.Children[0], bn.Children[0], conv, cache)
			if e != nil {
				return 0, e
			}
			high, e := withoutRec(m, an.Children[1], bn.Children[1], conv, cache)
			if e != nil {
				return 0, e
			}
			result, err = m.CreateNode(an.Header, low, high)
			if err != nil {
				return 0, err
			}
		}
	}
	cache[key] = result
	return result, nil
}
