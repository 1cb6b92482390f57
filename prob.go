// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddcore

import "github.com/dalzilio/ddcore/dd"

// ProbOf supplies the probability that the variable named label is
// assigned true (for Prob and Sensitivity); MDDProb takes an MDDProbOf
// instead.
type ProbOf func(label string) float64

// MDDProbOf supplies the probability that the variable named label
// takes value v, where v ranges over [0, EdgeNum) for that header.
type MDDProbOf func(label string, v int) float64

// Prob returns the probability that a random assignment — each
// variable drawn independently according to p — satisfies ss, for the
// diagram rooted at root. Unlike Count, a skipped (don't-care)
// variable needs no special weighting here: marginalizing over a
// variable that the outcome does not depend on never changes its
// probability, so the recursion is the same for BDD and ZDD
// semantics. This mirrors the original source's bdd_prob.rs, whose
// recursion is likewise unconditional on skip.
func Prob(m *dd.Manager, root dd.NodeID, ss BoolSet, p ProbOf) (float64, error) {
	cache := make(map[dd.NodeID]float64)
	return probRec(m, root, ss, p, cache)
}

func probRec(m *dd.Manager, node dd.NodeID, ss BoolSet, p ProbOf, cache map[dd.NodeID]float64) (float64, error) {
	if v, ok := cache[node]; ok {
		return v, nil
	}
	n, err := m.GetNode(node)
	if err != nil {
		return 0, err
	}
	var result float64
	switch n.Kind {
	case dd.One:
		result = boolFraction(ss.Contains(true))
	case dd.Zero:
		result = boolFraction(ss.Contains(false))
	case dd.Undet:
		return 0, invalidDiagram(n.Kind.String())
	case dd.NonTerminal:
		label, _ := m.Label(node)
		pvar := p(label)
		low, err := probRec(m, n.Children[0], ss, p, cache)
		if err != nil {
			return 0, err
		}
		high, err := probRec(m, n.Children[1], ss, p, cache)
		if err != nil {
			return 0, err
		}
		result = (1-pvar)*low + pvar*high
	default:
		return 0, invalidDiagram(n.Kind.String())
	}
	cache[node] = result
	return result, nil
}

// MDDProb is Prob's multi-valued analogue: ss selects which terminal
// values count as satisfying, and p gives, for each header, the
// probability distribution over its EdgeNum possible values.
func MDDProb(m *dd.Manager, root dd.NodeID, ss ValueSet, p MDDProbOf) (float64, error) {
	cache := make(map[dd.NodeID]float64)
	return mddProbRec(m, root, ss, p, cache)
}

func mddProbRec(m *dd.Manager, node dd.NodeID, ss ValueSet, p MDDProbOf, cache map[dd.NodeID]float64) (float64, error) {
	if v, ok := cache[node]; ok {
		return v, nil
	}
	n, err := m.GetNode(node)
	if err != nil {
		return 0, err
	}
	var result float64
	switch n.Kind {
	case dd.One:
		result = boolFraction(ss.Contains(1))
	case dd.Zero:
		result = boolFraction(ss.Contains(0))
	case dd.Terminal:
		result = boolFraction(ss.Contains(n.Value))
	case dd.Undet:
		return 0, invalidDiagram(n.Kind.String())
	case dd.NonTerminal:
		label, _ := m.Label(node)
		for i, child := range n.Children {
			sub, err := mddProbRec(m, child, ss, p, cache)
			if err != nil {
				return 0, err
			}
			result += p(label, i) * sub
		}
	default:
		return 0, invalidDiagram(n.Kind.String())
	}
	cache[node] = result
	return result, nil
}

func boolFraction(in bool) float64 {
	if in {
		return 1
	}
	return 0
}
