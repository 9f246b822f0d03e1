// SPDX-License-Identifier: MIT
// Package gf2: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the gf2
// package. Every exported function returns these sentinels (possibly wrapped
// with method context via %w) and tests check them via errors.Is.
// No function panics on user-triggered error conditions.

package gf2

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "gf2: ..." so log lines are easy to grep.
// ERROR PRIORITY: nil -> shape -> index -> dimension mismatch -> capacity.

var (
	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("gf2: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid
	// (negative row count, fewer than one variable column).
	ErrBadShape = errors.New("gf2: invalid shape")

	// ErrRaggedRows signals that input rows do not share one length.
	ErrRaggedRows = errors.New("gf2: rows have different lengths")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths between operands,
	// e.g. a witness whose length differs from the variable count.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrCapacity is returned when a bit-vector would need more bits than
	// its fixed capacity. Bits are never dropped silently.
	ErrCapacity = errors.New("gf2: bit-vector capacity exceeded")
)

// Method tags used in error wrappers.
const (
	opNewMatrix = "NewMatrix"
	opFromRows  = "FromRows"
	opAt        = "At"
	opSet       = "Set"
	opRow       = "Row"
	opXorRow    = "XorRow"
	opAppendRow = "AppendRow"
	opSatisfies = "Satisfies"
	opBitset    = "Bitset"
)

// gf2Errorf wraps err with an operation tag, preserving it for errors.Is.
// Callers must only pass a non-nil err.
func gf2Errorf(op string, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{op}, args...)...)
}
