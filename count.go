// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddcore

import "github.com/dalzilio/ddcore/dd"

// NodeCount walks the sub-DAG rooted at node and returns, in one
// memoized pass, the number of NonTerminal nodes, the number of
// terminal occurrences (counted with sharing, i.e. once per distinct
// reachable terminal node, not per path) and their sum. This mirrors
// the original source's node_count diagnostic, dropped from spec.md's
// distillation but useful enough (it is how one sizes a diagram before
// running the heavier analyses) to keep.
func NodeCount(m *dd.Manager, root dd.NodeID) (nonterminals, terminals, total int, err error) {
	seen := make(map[dd.NodeID]struct{})
	var walk func(id dd.NodeID) error
	walk = func(id dd.NodeID) error {
		if _, ok := seen[id]; ok {
			return nil
		}
		seen[id] = struct{}{}
		n, err := m.GetNode(id)
		if err != nil {
			return err
		}
		if n.Kind == dd.NonTerminal {
			for _, c := range n.Children {
				if err := walk(c); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return 0, 0, 0, err
	}
	for id := range seen {
		n, _ := m.GetNode(id)
		if n.Kind == dd.NonTerminal {
			nonterminals++
		} else {
			terminals++
		}
	}
	return nonterminals, terminals, nonterminals + terminals, nil
}

// Count returns the number of complete variable assignments whose
// evaluation on the diagram rooted at root lands in ss, under the
// given Boolean semantics. Under BDD semantics every header whose level
// lies strictly between a node and its child along a path (or below
// the node, down to level 0, when the child is a terminal) is a
// skipped (don't-care) variable and is weighted by 2; headers above
// root's own level are not counted. ZDD semantics does not weight
// skips, since the diagram's structure already enumerates set
// membership explicitly. An Undet node contributes zero under either
// semantics.
//
// The numeric result type T is supplied by ring; use WordRing for
// diagrams small enough that 2^(#free variables) fits in 64 bits, or
// BigRing when it might not.
func Count[T any](m *dd.Manager, root dd.NodeID, ss BoolSet, sem Semantics, ring Ring[T]) (T, error) {
	cache := make(map[dd.NodeID]T)
	return countRec(m, root, ss, sem, ring, cache)
}

func countRec[T any](m *dd.Manager, node dd.NodeID, ss BoolSet, sem Semantics, ring Ring[T], cache map[dd.NodeID]T) (T, error) {
	if v, ok := cache[node]; ok {
		return v, nil
	}
	n, err := m.GetNode(node)
	if err != nil {
		return ring.Zero, err
	}
	var result T
	switch n.Kind {
	case dd.One:
		result = boolIndicator(ring, ss.Contains(true))
	case dd.Zero:
		result = boolIndicator(ring, ss.Contains(false))
	case dd.Undet:
		result = ring.Zero
	case dd.NonTerminal:
		level, _ := m.Level(node)
		result = ring.Zero
		for _, child := range n.Children {
			sub, err := countRec(m, child, ss, sem, ring, cache)
			if err != nil {
				return ring.Zero, err
			}
			weight := ring.One
			if sem == BDD {
				if childLevel, ok := m.Level(child); ok {
					weight = Pow(ring, ring.FromUint(2), level-childLevel-1)
				} else {
					weight = Pow(ring, ring.FromUint(2), level)
				}
			}
			result = ring.Add(result, ring.Mul(weight, sub))
		}
	default:
		return ring.Zero, invalidDiagram(n.Kind.String())
	}
	cache[node] = result
	debugf("count", "node=%d kind=%s -> cached", node, n.Kind)
	return result, nil
}

// MDDCount is Count's multi-valued analogue: ss selects which
// terminal values are satisfying (0/1 for Zero/One, or the carried
// Value for a multi-terminal dd.Terminal leaf), and skip weighting (in
// BDD semantics) multiplies in the EdgeNum of every skipped header
// individually, since unlike Count it cannot assume all headers share
// the same domain size.
func MDDCount[T any](m *dd.Manager, root dd.NodeID, ss ValueSet, sem Semantics, ring Ring[T]) (T, error) {
	level2header, err := levelIndex(m)
	if err != nil {
		return ring.Zero, err
	}
	startLevel, ok := m.Level(root)
	if !ok {
		// A terminal root has no free variables to skip over.
		startLevel = -1
	}
	type key struct {
		node  dd.NodeID
		level int
	}
	cache := make(map[key]T)
	var walk func(node dd.NodeID, level int) (T, error)
	walk = func(node dd.NodeID, level int) (T, error) {
		k := key{node, level}
		if v, ok := cache[k]; ok {
			return v, nil
		}
		n, err := m.GetNode(node)
		if err != nil {
			return ring.Zero, err
		}
		nodeLevel, hasLevel := m.Level(node)
		if sem == BDD && level >= 0 && (!hasLevel || level > nodeLevel) {
			edgeNum := level2header[level].EdgeNum
			sub, err := walk(node, level-1)
			if err != nil {
				return ring.Zero, err
			}
			result := ring.Mul(ring.FromUint(uint64(edgeNum)), sub)
			cache[k] = result
			return result, nil
		}
		var result T
		switch n.Kind {
		case dd.One:
			result = boolIndicator(ring, ss.Contains(1))
		case dd.Zero:
			result = boolIndicator(ring, ss.Contains(0))
		case dd.Terminal:
			result = boolIndicator(ring, ss.Contains(n.Value))
		case dd.Undet:
			result = ring.Zero
		case dd.NonTerminal:
			result = ring.Zero
			for _, child := range n.Children {
				sub, err := walk(child, level-1)
				if err != nil {
					return ring.Zero, err
				}
				result = ring.Add(result, sub)
			}
		default:
			return ring.Zero, invalidDiagram(n.Kind.String())
		}
		cache[k] = result
		return result, nil
	}
	return walk(root, startLevel)
}

// levelIndex builds a level -> Header lookup covering every header
// currently defined on m, mirroring the level2headers table the
// original source computes once per mdd_count/zdd_count call.
func levelIndex(m *dd.Manager) ([]dd.Header, error) {
	nheaders, _ := m.Size()
	idx := make([]dd.Header, nheaders)
	for hid := 0; hid < nheaders; hid++ {
		h, err := m.GetHeader(dd.HeaderID(hid))
		if err != nil {
			return nil, err
		}
		idx[h.Level] = h
	}
	return idx, nil
}

func boolIndicator[T any](ring Ring[T], in bool) T {
	if in {
		return ring.One
	}
	return ring.Zero
}
