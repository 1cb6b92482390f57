// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddcore

import "github.com/dalzilio/ddcore/dd"

type pathOpKind uint8

const (
	opVisit pathOpKind = iota
	opPush
	opPop
)

type pathOp struct {
	kind    pathOpKind
	node    dd.NodeID
	level   int
	hasLvl  bool
	literal string
}

func visitOp(node dd.NodeID, level int, hasLvl bool) pathOp {
	return pathOp{kind: opVisit, node: node, level: level, hasLvl: hasLvl}
}

func pushOp(literal string) pathOp { return pathOp{kind: opPush, literal: literal} }

func popOp() pathOp { return pathOp{kind: opPop} }

// PathIter lazily enumerates every satisfying assignment of a Boolean
// (two-valued) diagram as a slice of literal labels, e.g. ["x", "~y",
// "z"]. It owns an explicit DFS stack (rather than recursing) so it
// can pause between assignments, matching spec.md §4.3's requirement
// that the iterator be resumable. It is not safe for concurrent use,
// and the caller must not mutate the underlying Manager between calls
// to Next — the manager is borrowed immutably for the iterator's
// lifetime, per spec.md §5.
type PathIter struct {
	m      *dd.Manager
	ss     BoolSet
	sem    Semantics
	root   dd.NodeID
	stack  []pathOp
	path   []string
	levels []dd.Header
}

// NewPathIter returns a PathIter over the diagram rooted at root,
// yielding assignments whose evaluation lands in ss. Under BDD
// semantics a variable header with no corresponding decision on a
// given path is a don't-care and both of its values are enumerated;
// under ZDD semantics the diagram's structure is taken at face value
// and no such expansion happens.
func NewPathIter(m *dd.Manager, root dd.NodeID, ss BoolSet, sem Semantics) (*PathIter, error) {
	levels, err := levelIndex(m)
	if err != nil {
		return nil, err
	}
	lvl, hasLvl := m.Level(root)
	return &PathIter{
		m:      m,
		ss:     ss,
		sem:    sem,
		root:   root,
		stack:  []pathOp{visitOp(root, lvl, hasLvl)},
		levels: levels,
	}, nil
}

// NewPathIterMembers is a convenience constructor for the common ZDD
// case of enumerating the members of the family a diagram represents,
// i.e. ss = {true}. Named after the original source's ZddPath, whose
// len() always measures membership in this same sense.
func NewPathIterMembers(m *dd.Manager, root dd.NodeID) (*PathIter, error) {
	return NewPathIter(m, root, NewBoolSet(true), ZDD)
}

// Len returns the number of assignments this iterator will yield,
// without advancing it. It recomputes the count via Count rather than
// draining the iterator, so it is safe to call at any point, and
// matches Count's result exactly (spec.md §8's path/count agreement
// property) modulo uint64 overflow on enormous diagrams — use Count
// with BigRing directly if that is a concern.
func (p *PathIter) Len() (uint64, error) {
	return Count(p.m, p.root, p.ss, p.sem, WordRing())
}

// Next advances the iterator and returns the next satisfying
// assignment, or (nil, nil) once the DFS stack is exhausted.
func (p *PathIter) Next() ([]string, error) {
	for len(p.stack) > 0 {
		op := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		switch op.kind {
		case opPush:
			p.path = append(p.path, op.literal)
			continue
		case opPop:
			p.path = p.path[:len(p.path)-1]
			continue
		}
		n, err := p.m.GetNode(op.node)
		if err != nil {
			return nil, err
		}
		if p.sem == BDD {
			nodeLevel, hasNodeLevel := p.m.Level(op.node)
			if op.hasLvl && (!hasNodeLevel || op.level > nodeLevel) {
				label := p.levels[op.level].Label
				next := op.level - 1
				hasNext := next >= 0
				p.pushBranch(op.node, op.node, next, hasNext, label)
				continue
			}
		}
		switch n.Kind {
		case dd.Zero:
			if p.ss.Contains(false) {
				return p.snapshot(), nil
			}
		case dd.One:
			if p.ss.Contains(true) {
				return p.snapshot(), nil
			}
		case dd.NonTerminal:
			label, _ := p.m.Label(op.node)
			level, _ := p.m.Level(op.node)
			low, high := n.Children[0], n.Children[1]
			// The skip check above runs only under BDD semantics;
			// pushBranch decides which literals a decision records
			// under each semantics. Below level 0 there is no further
			// header, so the children carry no expected level.
			p.pushBranch(high, low, level-1, level > 0, label)
		case dd.Undet:
			// No meaningful value along this branch; discard it.
		}
	}
	return nil, nil
}

// pushBranch pushes the spec's canonical descend sequence, visiting
// lowNode before highNode (matching the original source's low-before-
// high allsat order). Under BDD semantics a variable's absence from the
// path is itself a decision, so lowNode is visited under the negative
// literal and highNode under the positive one. Under ZDD semantics a
// path only ever records the variables that are *members*: lowNode
// (the excluded branch) is visited with no literal pushed at all, and
// only highNode gets the positive literal — pushing "~"+label here
// would wrongly claim the variable was decided false rather than
// simply absent. Used both for a real decision (highNode != lowNode)
// and for a skipped variable's don't-care expansion under BDD
// semantics (highNode == lowNode == the same re-visited node).
func (p *PathIter) pushBranch(highNode, lowNode dd.NodeID, childLevel int, hasChildLevel bool, label string) {
	if p.sem == ZDD {
		p.stack = append(p.stack,
			popOp(),
			visitOp(highNode, childLevel, hasChildLevel),
			pushOp(label),
			visitOp(lowNode, childLevel, hasChildLevel),
		)
		return
	}
	p.stack = append(p.stack,
		popOp(),
		visitOp(highNode, childLevel, hasChildLevel),
		pushOp(label),
		popOp(),
		visitOp(lowNode, childLevel, hasChildLevel),
		pushOp("~"+label),
	)
}

func (p *PathIter) snapshot() []string {
	result := make([]string, len(p.path))
	for i, lit := range p.path {
		result[len(p.path)-1-i] = lit
	}
	return result
}
