// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddcore

import "github.com/dalzilio/ddcore/dd"

// Assignment is one variable's value along an MDDPathIter path.
type Assignment struct {
	Label string
	Value int
}

type mddOpKind uint8

const (
	mddVisit mddOpKind = iota
	mddPush
	mddPop
)

type mddOp struct {
	kind   mddOpKind
	node   dd.NodeID
	level  int
	hasLvl bool
	lit    Assignment
}

// MDDPathIter is PathIter's multi-valued analogue: it enumerates
// assignments over headers whose EdgeNum may exceed two, mirroring the
// original source's mdd_path.rs. Under BDD semantics a header with no
// decision on a given branch is a don't-care and every one of its
// EdgeNum values is enumerated; under ZDD semantics the diagram's
// structure is taken as-is.
type MDDPathIter struct {
	m      *dd.Manager
	ss     ValueSet
	sem    Semantics
	root   dd.NodeID
	stack  []mddOp
	path   []Assignment
	levels []dd.Header
}

// NewMDDPathIter returns an MDDPathIter over the diagram rooted at
// root, yielding assignments whose terminal value lands in ss.
func NewMDDPathIter(m *dd.Manager, root dd.NodeID, ss ValueSet, sem Semantics) (*MDDPathIter, error) {
	levels, err := levelIndex(m)
	if err != nil {
		return nil, err
	}
	lvl, hasLvl := m.Level(root)
	return &MDDPathIter{
		m:      m,
		ss:     ss,
		sem:    sem,
		root:   root,
		stack:  []mddOp{{kind: mddVisit, node: root, level: lvl, hasLvl: hasLvl}},
		levels: levels,
	}, nil
}

// Len returns the number of assignments this iterator will yield,
// without advancing it, by delegating to MDDCount.
func (p *MDDPathIter) Len() (uint64, error) {
	return MDDCount(p.m, p.root, p.ss, p.sem, WordRing())
}

// Next advances the iterator and returns the next satisfying
// assignment, or (nil, nil) once exhausted.
func (p *MDDPathIter) Next() ([]Assignment, error) {
	for len(p.stack) > 0 {
		op := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		switch op.kind {
		case mddPush:
			p.path = append(p.path, op.lit)
			continue
		case mddPop:
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
				header := p.levels[op.level]
				next := op.level - 1
				hasNext := next >= 0
				p.pushDontCare(op.node, header, next, hasNext)
				continue
			}
		}
		switch n.Kind {
		case dd.Zero:
			if p.ss.Contains(0) {
				return p.snapshot(), nil
			}
		case dd.One:
			if p.ss.Contains(1) {
				return p.snapshot(), nil
			}
		case dd.Terminal:
			if p.ss.Contains(n.Value) {
				return p.snapshot(), nil
			}
		case dd.NonTerminal:
			label, _ := p.m.Label(op.node)
			level, _ := p.m.Level(op.node)
			p.pushChildren(n.Children, label, level-1, level > 0)
		case dd.Undet:
			// No meaningful value along this branch; discard it.
		}
	}
	return nil, nil
}

// pushChildren pushes, in reverse index order, a Pop/Visit/Push triple
// per child so children are explored in ascending index order (index 0
// first), matching the original source's mdd_path.rs iteration order.
func (p *MDDPathIter) pushChildren(children []dd.NodeID, label string, childLevel int, hasChildLevel bool) {
	for i := len(children) - 1; i >= 0; i-- {
		p.stack = append(p.stack,
			popOp2(),
			mddOp{kind: mddVisit, node: children[i], level: childLevel, hasLvl: hasChildLevel},
			mddOp{kind: mddPush, lit: Assignment{Label: label, Value: i}},
		)
	}
}

// pushDontCare enumerates every value of a skipped header, re-visiting
// the same node (a skipped variable never advances which node we are
// at) for each one.
func (p *MDDPathIter) pushDontCare(node dd.NodeID, header dd.Header, next int, hasNext bool) {
	for i := header.EdgeNum - 1; i >= 0; i-- {
		p.stack = append(p.stack,
			popOp2(),
			mddOp{kind: mddVisit, node: node, level: next, hasLvl: hasNext},
			mddOp{kind: mddPush, lit: Assignment{Label: header.Label, Value: i}},
		)
	}
}

func popOp2() mddOp { return mddOp{kind: mddPop} }

func (p *MDDPathIter) snapshot() []Assignment {
	result := make([]Assignment, len(p.path))
	for i, a := range p.path {
		result[len(p.path)-1-i] = a
	}
	return result
}
