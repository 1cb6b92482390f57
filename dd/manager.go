// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dd

import (
	"strconv"
	"strings"
)

// Manager owns the node table and the header (variable) registry for
// one decision diagram. The zero value is not usable; build one with
// NewManager.
//
// Manager mutation (DefineHeader, CreateNode) is not safe for
// concurrent use, matching the single-threaded cooperative model this
// package is designed for: while a mutating call is in flight no other
// goroutine may read or write the Manager. Read-only access (GetNode,
// Level, Label, GetHeader, Size) is safe to share across goroutines
// once construction has finished and no further mutation is planned.
type Manager struct {
	headers  []Header
	nodes    []Node
	unique   map[HeaderID]map[string]NodeID
	terminal map[int]NodeID
}

// config collects the options NewManager accepts. Mirrors the functional
// options idiom used by rudd's own BDD constructor.
type config struct {
	initialHeaders int
	initialNodes   int
}

// Option configures a new Manager. See InitialHeaders and InitialNodes.
type Option func(*config)

// InitialHeaders preallocates room for n headers. Purely a capacity
// hint; DefineHeader works regardless.
func InitialHeaders(n int) Option {
	return func(c *config) { c.initialHeaders = n }
}

// InitialNodes preallocates room for n non-terminal nodes, in addition
// to the three fixed terminals. Purely a capacity hint.
func InitialNodes(n int) Option {
	return func(c *config) { c.initialNodes = n }
}

// NewManager returns an empty Manager with its three terminals
// (Zero, One, Undet) already registered.
func NewManager(opts ...Option) *Manager {
	c := &config{initialHeaders: 8, initialNodes: 64}
	for _, o := range opts {
		o(c)
	}
	m := &Manager{
		headers:  make([]Header, 0, c.initialHeaders),
		nodes:    make([]Node, 3, c.initialNodes+3),
		unique:   make(map[HeaderID]map[string]NodeID, c.initialHeaders),
		terminal: make(map[int]NodeID),
	}
	m.nodes[Zero] = Node{Kind: Zero}
	m.nodes[One] = Node{Kind: One}
	m.nodes[Undet] = Node{Kind: Undet}
	return m
}

// Zero returns the constant-false terminal.
func (m *Manager) Zero() NodeID { return 0 }

// One returns the constant-true terminal.
func (m *Manager) One() NodeID { return 1 }

// Undet returns the "no value yet" sentinel terminal.
func (m *Manager) Undet() NodeID { return 2 }

// CreateTerminal returns the (hash-consed) multi-terminal leaf holding
// value, creating it if it does not already exist. Used by
// multi-valued diagrams whose outcome is a value rather than a
// Boolean (see the Terminal Kind).
func (m *Manager) CreateTerminal(value int) NodeID {
	if id, ok := m.terminal[value]; ok {
		return id
	}
	id := NodeID(len(m.nodes))
	m.nodes = append(m.nodes, Node{Kind: Terminal, Value: value})
	m.terminal[value] = id
	return id
}

// DefineHeader registers a new variable with the given label and
// number of possible values (edgeNum), and returns its HeaderID. Each
// call to DefineHeader assigns the next header a level one higher
// than all headers defined so far, so headers defined later sit
// closer to the root — the reverse of rudd's SetVarnum/Ithvar
// convention, where level 0 is the root.
func (m *Manager) DefineHeader(label string, edgeNum int) HeaderID {
	hid := HeaderID(len(m.headers))
	m.headers = append(m.headers, Header{
		Label:   label,
		Level:   len(m.headers),
		EdgeNum: edgeNum,
	})
	m.unique[hid] = make(map[string]NodeID)
	return hid
}

// GetHeader returns the Header registered under hid.
func (m *Manager) GetHeader(hid HeaderID) (Header, error) {
	if hid < 0 || int(hid) >= len(m.headers) {
		return Header{}, missingHeader(hid)
	}
	return m.headers[hid], nil
}

// GetNode returns the Node stored at id.
func (m *Manager) GetNode(id NodeID) (Node, error) {
	if id < 0 || int(id) >= len(m.nodes) {
		return Node{}, missingNode(id)
	}
	return m.nodes[id], nil
}

// Level returns the level of id, or (0, false) if id names a
// terminal (terminals have no level).
func (m *Manager) Level(id NodeID) (int, bool) {
	n, err := m.GetNode(id)
	if err != nil || n.Kind != NonTerminal {
		return 0, false
	}
	h := m.headers[n.Header]
	return h.Level, true
}

// Label returns the variable label of id, or ("", false) if id names
// a terminal.
func (m *Manager) Label(id NodeID) (string, bool) {
	n, err := m.GetNode(id)
	if err != nil || n.Kind != NonTerminal {
		return "", false
	}
	return m.headers[n.Header].Label, true
}

// Size returns the number of defined headers and the number of nodes
// currently in the table, including the three terminals.
func (m *Manager) Size() (nheaders, nnodes int) {
	return len(m.headers), len(m.nodes)
}

// CreateNode returns the (hash-consed) NodeID for a non-terminal over
// hid with the given children, creating it if it does not already
// exist. len(children) must equal the header's EdgeNum. As a
// reduction rule, if every child is identical, CreateNode returns
// that child directly instead of allocating a new node — the same
// rule rudd's makenode applies when low == high, generalized from two
// children to an arbitrary edge count.
func (m *Manager) CreateNode(hid HeaderID, children ...NodeID) (NodeID, error) {
	h, err := m.GetHeader(hid)
	if err != nil {
		return 0, err
	}
	if len(children) != h.EdgeNum {
		return 0, ErrBadEdgeNum
	}
	for _, c := range children {
		if _, err := m.GetNode(c); err != nil {
			return 0, err
		}
	}
	allEqual := true
	for _, c := range children[1:] {
		if c != children[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return children[0], nil
	}
	key := encodeChildren(children)
	if id, ok := m.unique[hid][key]; ok {
		return id, nil
	}
	id := NodeID(len(m.nodes))
	cs := make([]NodeID, len(children))
	copy(cs, children)
	m.nodes = append(m.nodes, Node{Kind: NonTerminal, Header: hid, Children: cs})
	m.unique[hid][key] = id
	return id, nil
}

// encodeChildren packs a child list into a single string usable as a
// unique-table key. Go's runtime already hashes arbitrary byte strings
// efficiently, so unlike rudd's hand-rolled PAIR/TRIPLE integer hash
// (needed there because the unique table was a fixed-size open-addressed
// array), we let the builtin map do the hashing and only need a
// collision-free encoding of the child slice.
func encodeChildren(children []NodeID) string {
	var b strings.Builder
	for i, c := range children {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(c)))
	}
	return b.String()
}
