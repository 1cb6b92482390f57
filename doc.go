// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package ddcore implements the core analysis algorithms for decision
diagrams built with package dd: minimal-solution (mincut) extraction,
probability evaluation, top-event sensitivity, satisfying-assignment
counting under either BDD or ZDD semantics, and lazy path enumeration.

Every entry point is a pure function of a *dd.Manager and a root
dd.NodeID: each call builds its own memo tables, walks the DAG from
the root, and returns a scalar, a label-keyed map, a new root NodeID
(MinSol), or a lazy path iterator. Nothing here mutates the manager
except the MinSol family (Minsol, MinsolPaths, Without, MDDMinsol and
WithoutMDD), which allocate new nodes through dd.Manager.CreateNode
(and, for value leaves, dd.Manager.CreateTerminal) the same way
dd.Manager itself is only ever grown, never shrunk.

This is a direct, generalized adaptation of the algorithms found in
Silvano Dal Zilio's rudd BDD library (github.com/dalzilio/rudd),
reworked to operate over the header/level/EdgeNum node model in
package dd instead of rudd's fixed two-child array-backed node table,
and extended with the multi-valued and probabilistic analyses rudd
does not implement.
*/
package ddcore
