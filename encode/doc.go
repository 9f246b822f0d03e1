// Package encode turns a GF(2) system into propositional constraints for the
// go-air/gini SAT solver, giving an elimination-independent feasibility check.
//
// Three encodings are offered, selected by Level:
//
//	LevelIndividual (0) every row becomes direct XOR clauses; rows with more
//	                    than Threshold variables are cut into chunks chained
//	                    through fresh auxiliary variables.
//	LevelEliminated (1) a copy of the system is reduced first; the remaining
//	                    non-zero rows are encoded as in LevelIndividual.
//	LevelNative     (2) every row becomes one XOR circuit (gini/logic), the
//	                    Tseitin transformation being left to the library.
//
// A direct XOR over k literals costs 2^(k-1) clauses, so Threshold bounds the
// clause blow-up per chunk; it must be at least 2.
//
// Solving honors context cancellation: Check and Verify poll a background
// gini solve and stop it when ctx is done.
package encode
