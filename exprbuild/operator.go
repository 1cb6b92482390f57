// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package exprbuild builds small Boolean diagrams over a dd.Manager
// from ordinary expression combinators (And, Or, Not, Xor, Ite),
// adapted from rudd's Apply/Ite machinery (operator.go, operations.go)
// to this repository's dd.Manager and its level convention (higher
// level is closer to the root, the opposite of rudd's own). It exists
// to give the algorithms in the parent package realistic fixtures to
// run against, not as a general-purpose BDD construction API.
package exprbuild

// Operator names a binary Boolean connective; opres holds its
// four-entry truth table, the same [op][a][b] layout rudd's Apply uses.
type Operator int

const (
	OPand Operator = iota
	OPxor
	OPor
	OPnand
	OPnor
	OPimp
	OPbiimp
)

var opnames = [...]string{
	OPand:   "and",
	OPxor:   "xor",
	OPor:    "or",
	OPnand:  "nand",
	OPnor:   "nor",
	OPimp:   "imp",
	OPbiimp: "biimp",
}

func (op Operator) String() string { return opnames[op] }

// opres[op][a][b] is the result of applying op to terminal bits a, b.
var opres = [...][2][2]int{
	OPand:   {0: [2]int{0: 0, 1: 0}, 1: [2]int{0: 0, 1: 1}},
	OPxor:   {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 1, 1: 0}},
	OPor:    {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 1, 1: 1}},
	OPnand:  {0: [2]int{0: 1, 1: 1}, 1: [2]int{0: 1, 1: 0}},
	OPnor:   {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 0, 1: 0}},
	OPimp:   {0: [2]int{0: 1, 1: 1}, 1: [2]int{0: 0, 1: 1}},
	OPbiimp: {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 0, 1: 1}},
}
