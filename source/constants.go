// Package source defines shared constants used by matrix generators.
package source

// Generator method names, used to prefix errors with the generator name.
const (
	// MethodDense is the canonical name for the Dense generator.
	MethodDense = "Dense"
	// MethodToeplitz is the canonical name for the Toeplitz generator.
	MethodToeplitz = "Toeplitz"
	// MethodBoundedWeight is the canonical name for the BoundedWeight generator.
	MethodBoundedWeight = "BoundedWeight"
	// MethodExternal is the canonical name for the External parser.
	MethodExternal = "External"
	// MethodGenerate is the orchestrator name.
	MethodGenerate = "Generate"
)

// MinVars is the smallest accepted variable count; a system needs at least
// one coefficient column besides the RHS.
const MinVars = 1

// MinRows is the smallest accepted row count (an empty system is legal).
const MinRows = 0

// Tokens of the external matrix specification.
const (
	TokenZero     = '0'
	TokenOne      = '1'
	TokenRowBreak = '_'
)
