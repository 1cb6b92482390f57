// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package dd defines the minimal decision-diagram manager that the ddcore
algorithms run against: a hash-consed node table plus a level/header
registry, exposing exactly the contract that ddcore needs (see its
top-level doc comment for the algorithms themselves).

A diagram is a rooted DAG of Nodes. Every Node is one of five kinds:
Zero, One, Undet (the "no value yet" sentinel), Terminal (a leaf
carrying an integer value, made by CreateTerminal), or NonTerminal. A
NonTerminal belongs to a Header, which fixes a Label, a Level (higher
level means closer to the root; terminals have no level) and an
EdgeNum, the number of children: 2 for an ordinary Boolean variable,
more for a multi-valued one. A binary decision diagram is simply a
diagram whose headers all have EdgeNum 2 — the manager does not
special-case it.

Hash consing means CreateNode is pure: given the same header and the
same children, it always returns the same NodeID, so NodeIDs can be
used directly as cache keys by the algorithms in ddcore. Nodes are
never freed; unlike rudd, which this package is adapted from, there is
no reference counting and no garbage collector: nodes are only ever
added, by CreateNode and CreateTerminal, and never removed.
*/
package dd
