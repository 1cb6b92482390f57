// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddcore

import (
	"errors"
	"fmt"
)

// ErrInvalidDiagram is returned when an algorithm that requires a
// concrete value (probability, sensitivity, MinSol) encounters an
// Undet node. Count treats Undet as zero instead of failing; see
// Count's doc comment.
var ErrInvalidDiagram = errors.New("ddcore: diagram contains an undetermined node")

// ErrCyclicDiagram is returned by Sensitivity/MDDSensitivity when the
// topological sort used to linearize the DAG finds a back edge. This
// indicates manager corruption and should not happen on a well-formed
// diagram produced by package dd.
var ErrCyclicDiagram = errors.New("ddcore: diagram has a cycle")

func invalidDiagram(nodeDesc string) error {
	return fmt.Errorf("%w: %s", ErrInvalidDiagram, nodeDesc)
}
