// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddcore

import "github.com/dalzilio/ddcore/dd"

type dfsMark uint8

const (
	unmarked dfsMark = iota
	temporary
	persistent
)

// topoSort returns the nodes reachable from root in an order where
// every NonTerminal precedes its children, detecting cycles with the
// classic Temporary/Persistent marking scheme (a Temporary-marked node
// revisited before going Persistent means a cycle, which violates the
// acyclicity every diagram in this package is required to hold).
func topoSort(m *dd.Manager, root dd.NodeID) ([]dd.NodeID, error) {
	mark := make(map[dd.NodeID]dfsMark)
	var postorder []dd.NodeID
	var visit func(id dd.NodeID) error
	visit = func(id dd.NodeID) error {
		switch mark[id] {
		case persistent:
			return nil
		case temporary:
			return ErrCyclicDiagram
		}
		mark[id] = temporary
		n, err := m.GetNode(id)
		if err != nil {
			return err
		}
		if n.Kind == dd.NonTerminal {
			for _, c := range n.Children {
				if err := visit(c); err != nil {
					return err
				}
			}
		}
		mark[id] = persistent
		postorder = append(postorder, id)
		return nil
	}
	if err := visit(root); err != nil {
		return nil, err
	}
	// postorder lists children before parents; reversing it yields a
	// topological order where parents precede children, the order
	// reach-weight propagation in Sensitivity needs.
	order := make([]dd.NodeID, len(postorder))
	for i, id := range postorder {
		order[len(postorder)-1-i] = id
	}
	return order, nil
}

// Sensitivity computes the Birnbaum importance of every variable
// appearing in the diagram rooted at root: for variable x, how much
// the probability of landing in ss changes when x is forced true
// versus forced false, weighted by how likely each occurrence of x is
// to be reached at all. It mirrors the original source's bmeas, built
// from a topological sort followed by a forward reach-probability pass
// and a backward probability pass, rather than recomputing Prob once
// per variable (which would cost one traversal per variable instead of
// a fixed number of passes over the sorted nodes).
func Sensitivity(m *dd.Manager, root dd.NodeID, ss BoolSet, p ProbOf) (map[string]float64, error) {
	order, err := topoSort(m, root)
	if err != nil {
		return nil, err
	}

	// w[v] is the probability of a random walk from root reaching v.
	w := make(map[dd.NodeID]float64, len(order))
	w[root] = 1
	for _, id := range order {
		n, err := m.GetNode(id)
		if err != nil {
			return nil, err
		}
		if n.Kind != dd.NonTerminal {
			continue
		}
		label, _ := m.Label(id)
		pvar := p(label)
		low, high := n.Children[0], n.Children[1]
		w[low] += w[id] * (1 - pvar)
		w[high] += w[id] * pvar
	}

	// prob[v] is the probability, starting at v, of landing in ss;
	// computed bottom-up, i.e. in reverse topological order.
	prob := make(map[dd.NodeID]float64, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		n, err := m.GetNode(id)
		if err != nil {
			return nil, err
		}
		switch n.Kind {
		case dd.One:
			prob[id] = boolFraction(ss.Contains(true))
		case dd.Zero:
			prob[id] = boolFraction(ss.Contains(false))
		case dd.Undet:
			return nil, invalidDiagram(n.Kind.String())
		case dd.NonTerminal:
			label, _ := m.Label(id)
			pvar := p(label)
			prob[id] = (1-pvar)*prob[n.Children[0]] + pvar*prob[n.Children[1]]
		default:
			return nil, invalidDiagram(n.Kind.String())
		}
	}

	g := make(map[string]float64)
	for _, id := range order {
		n, err := m.GetNode(id)
		if err != nil {
			return nil, err
		}
		if n.Kind != dd.NonTerminal {
			continue
		}
		label, _ := m.Label(id)
		diff := prob[n.Children[1]] - prob[n.Children[0]]
		g[label] += w[id] * diff
	}
	return g, nil
}

// MDDSensitivity is Sensitivity's multi-valued analogue. Since a
// multi-valued variable has no single "high versus low" contrast, it
// reports, for every header, one entry per value the header could
// take: the partial derivative of the probability of landing in ss
// with respect to p(label, i), i.e. the sum over every node of that
// header of its reach weight times the probability of landing in ss
// from its i'th child.
func MDDSensitivity(m *dd.Manager, root dd.NodeID, ss ValueSet, p MDDProbOf) (map[string][]float64, error) {
	order, err := topoSort(m, root)
	if err != nil {
		return nil, err
	}

	w := make(map[dd.NodeID]float64, len(order))
	w[root] = 1
	for _, id := range order {
		n, err := m.GetNode(id)
		if err != nil {
			return nil, err
		}
		if n.Kind != dd.NonTerminal {
			continue
		}
		label, _ := m.Label(id)
		for i, child := range n.Children {
			w[child] += w[id] * p(label, i)
		}
	}

	prob := make(map[dd.NodeID]float64, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		n, err := m.GetNode(id)
		if err != nil {
			return nil, err
		}
		switch n.Kind {
		case dd.One:
			prob[id] = boolFraction(ss.Contains(1))
		case dd.Zero:
			prob[id] = boolFraction(ss.Contains(0))
		case dd.Terminal:
			prob[id] = boolFraction(ss.Contains(n.Value))
		case dd.Undet:
			return nil, invalidDiagram(n.Kind.String())
		case dd.NonTerminal:
			label, _ := m.Label(id)
			for i, child := range n.Children {
				prob[id] += p(label, i) * prob[child]
			}
		default:
			return nil, invalidDiagram(n.Kind.String())
		}
	}

	profiles := make(map[string][]float64)
	headers, err := levelIndex(m)
	if err != nil {
		return nil, err
	}
	for _, id := range order {
		n, err := m.GetNode(id)
		if err != nil {
			return nil, err
		}
		if n.Kind != dd.NonTerminal {
			continue
		}
		label, _ := m.Label(id)
		level, _ := m.Level(id)
		edgeNum := headers[level].EdgeNum
		if _, ok := profiles[label]; !ok {
			profiles[label] = make([]float64, edgeNum)
		}
		for i, child := range n.Children {
			profiles[label][i] += w[id] * prob[child]
		}
	}
	return profiles, nil
}
