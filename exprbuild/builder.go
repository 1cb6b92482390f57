// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package exprbuild

import (
	"fmt"

	"github.com/dalzilio/ddcore/dd"
)

// Builder constructs Boolean diagrams over a shared dd.Manager,
// interning one header per variable label the way rudd's kernel
// interns one BDD variable per declared name.
type Builder struct {
	m       *dd.Manager
	headers map[string]dd.HeaderID
}

// New returns a Builder backed by m. Variables declared through it are
// defined on m directly, so a Builder and algorithms operating on m
// can be freely interleaved.
func New(m *dd.Manager) *Builder {
	return &Builder{m: m, headers: make(map[string]dd.HeaderID)}
}

// Var returns the diagram for a single Boolean variable named label,
// defining its header (with two branches, low then high) the first
// time it is requested.
func (b *Builder) Var(label string) (dd.NodeID, error) {
	hid, ok := b.headers[label]
	if !ok {
		hid = b.m.DefineHeader(label, 2)
		b.headers[label] = hid
	}
	return b.m.CreateNode(hid, b.m.Zero(), b.m.One())
}

func terminalBit(n dd.Node) (int, error) {
	switch n.Kind {
	case dd.Zero:
		return 0, nil
	case dd.One:
		return 1, nil
	default:
		return 0, fmt.Errorf("exprbuild: Apply does not support %s terminals", n.Kind)
	}
}

// Not returns the diagram for the negation of f.
func (b *Builder) Not(f dd.NodeID) (dd.NodeID, error) {
	cache := make(map[dd.NodeID]dd.NodeID)
	var rec func(id dd.NodeID) (dd.NodeID, error)
	rec = func(id dd.NodeID) (dd.NodeID, error) {
		if v, ok := cache[id]; ok {
			return v, nil
		}
		n, err := b.m.GetNode(id)
		if err != nil {
			return 0, err
		}
		var result dd.NodeID
		switch n.Kind {
		case dd.Zero:
			result = b.m.One()
		case dd.One:
			result = b.m.Zero()
		case dd.Undet:
			result = b.m.Undet()
		case dd.NonTerminal:
			children := make([]dd.NodeID, len(n.Children))
			for i, c := range n.Children {
				children[i], err = rec(c)
				if err != nil {
					return 0, err
				}
			}
			result, err = b.m.CreateNode(n.Header, children...)
			if err != nil {
				return 0, err
			}
		default:
			return 0, fmt.Errorf("exprbuild: Not does not support %s nodes", n.Kind)
		}
		cache[id] = result
		return result, nil
	}
	return rec(f)
}

// Apply returns the diagram for op(f, g), recursing on whichever
// operand's top variable is closer to the root (the higher level, in
// this repository's convention) and aligning both operands level by
// level, the same structural-recursion shape as rudd's own apply.
func (b *Builder) Apply(op Operator, f, g dd.NodeID) (dd.NodeID, error) {
	cache := make(map[[2]dd.NodeID]dd.NodeID)
	var rec func(f, g dd.NodeID) (dd.NodeID, error)
	rec = func(f, g dd.NodeID) (dd.NodeID, error) {
		fn, err := b.m.GetNode(f)
		if err != nil {
			return 0, err
		}
		gn, err := b.m.GetNode(g)
		if err != nil {
			return 0, err
		}
		if fn.Kind != dd.NonTerminal && gn.Kind != dd.NonTerminal {
			fb, err := terminalBit(fn)
			if err != nil {
				return 0, err
			}
			gb, err := terminalBit(gn)
			if err != nil {
				return 0, err
			}
			if opres[op][fb][gb] == 1 {
				return b.m.One(), nil
			}
			return b.m.Zero(), nil
		}
		key := [2]dd.NodeID{f, g}
		if v, ok := cache[key]; ok {
			return v, nil
		}
		flvl, fhas := b.m.Level(f)
		glvl, ghas := b.m.Level(g)

		var header dd.HeaderID
		var flow, fhigh, glow, ghigh dd.NodeID
		switch {
		case fhas && (!ghas || flvl > glvl):
			header = fn.Header
			flow, fhigh = fn.Children[0], fn.Children[1]
			glow, ghigh = g, g
		case ghas && (!fhas || glvl > flvl):
			header = gn.Header
			glow, ghigh = gn.Children[0], gn.Children[1]
			flow, fhigh = f, f
		default:
			header = fn.Header
			flow, fhigh = fn.Children[0], fn.Children[1]
			glow, ghigh = gn.Children[0], gn.Children[1]
		}
		low, err := rec(flow, glow)
		if err != nil {
			return 0, err
		}
		high, err := rec(fhigh, ghigh)
		if err != nil {
			return 0, err
		}
		result, err := b.m.CreateNode(header, low, high)
		if err != nil {
			return 0, err
		}
		cache[key] = result
		return result, nil
	}
	return rec(f, g)
}

// And, Or and Xor are the three connectives the fixtures in this
// repository's tests actually need; more of Operator's truth tables
// are wired into Apply than these expose, so a caller can still reach
// them directly via Apply(exprbuild.OPnand, ...) and so on.
func (b *Builder) And(f, g dd.NodeID) (dd.NodeID, error) { return b.Apply(OPand, f, g) }
func (b *Builder) Or(f, g dd.NodeID) (dd.NodeID, error)  { return b.Apply(OPor, f, g) }
func (b *Builder) Xor(f, g dd.NodeID) (dd.NodeID, error) { return b.Apply(OPxor, f, g) }

// Ite returns the diagram for "if f then g else h", built from three
// Apply calls the way rudd's own Ite falls back to Apply when no
// faster special case applies.
func (b *Builder) Ite(f, g, h dd.NodeID) (dd.NodeID, error) {
	notf, err := b.Not(f)
	if err != nil {
		return 0, err
	}
	left, err := b.Apply(OPand, f, g)
	if err != nil {
		return 0, err
	}
	right, err := b.Apply(OPand, notf, h)
	if err != nil {
		return 0, err
	}
	return b.Apply(OPor, left, right)
}
