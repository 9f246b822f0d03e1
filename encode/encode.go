// SPDX-License-Identifier: MIT

package encode

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/parity/echelon"
	"github.com/katalvlaran/parity/gf2"
)

// Outcome is a solver verdict; the values match gini's Solve results.
type Outcome int

const (
	OutcomeUnsat   Outcome = -1
	OutcomeUnknown Outcome = 0
	OutcomeSat     Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSat:
		return "SAT"
	case OutcomeUnsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// pollInterval is how often a background solve is tested for completion.
const pollInterval = 2 * time.Millisecond

// Encoding is an immutable constraint set for one system. Each Check or
// Verify call loads it into a fresh solver, so an Encoding may be reused.
type Encoding struct {
	level   Level
	sys     *gf2.Matrix // private copy of the encoded system
	x       []z.Lit     // one input literal per system variable
	aux     int         // chaining variables introduced by chunking
	circuit *logic.C    // XOR gates (LevelNative) and all variable allocation
	clauses [][]z.Lit   // direct clauses and row assertions
}

// Encode builds the constraints for a under the configured level.
//
// Errors:
//   - gf2.ErrNilMatrix.
func Encode(a *gf2.Matrix, opts ...Option) (*Encoding, error) {
	if err := gf2.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opEncode, err)
	}
	cfg := newConfig(opts...)

	e := &Encoding{
		level:   cfg.level,
		sys:     a.Clone(),
		circuit: logic.NewC(),
		x:       make([]z.Lit, a.Vars()),
	}
	for j := range e.x {
		e.x[j] = e.circuit.Lit()
	}

	src := a
	if cfg.level == LevelEliminated {
		src = a.Clone()
		// Only the reduced rows matter here; the witness seed is irrelevant.
		if _, err := echelon.Reduce(src, echelon.WithSeed(1)); err != nil {
			return nil, fmt.Errorf("%s: %w", opEncode, err)
		}
	}

	lits := make([]z.Lit, 0, a.Vars())
	for i := 0; i < src.Rows(); i++ {
		row := src.RowView(i)
		lits = lits[:0]
		for j := 0; j < src.Vars(); j++ {
			if row[j] {
				lits = append(lits, e.x[j])
			}
		}
		rhs := row[src.Vars()]
		switch {
		case len(lits) == 0:
			if rhs {
				e.contradiction()
			}
		case cfg.level == LevelNative:
			e.native(lits, rhs)
		default:
			e.chunked(lits, rhs, cfg.threshold)
		}
	}

	return e, nil
}

// Level returns the encoding level.
func (e *Encoding) Level() Level { return e.level }

// Vars returns the number of system variables.
func (e *Encoding) Vars() int { return len(e.x) }

// Aux returns the number of auxiliary chaining variables.
func (e *Encoding) Aux() int { return e.aux }

// Clauses returns the number of clauses added besides the circuit's own.
func (e *Encoding) Clauses() int { return len(e.clauses) }

// contradiction asserts 0 = 1 as the clause pair (x0) (¬x0).
func (e *Encoding) contradiction() {
	e.clauses = append(e.clauses, []z.Lit{e.x[0]}, []z.Lit{e.x[0].Not()})
}

// native folds the literals into one XOR gate and asserts its value.
func (e *Encoding) native(lits []z.Lit, rhs bool) {
	out := lits[0]
	for _, m := range lits[1:] {
		out = e.circuit.Xor(out, m)
	}
	if !rhs {
		out = out.Not()
	}
	e.clauses = append(e.clauses, []z.Lit{out})
}

// chunked splits lits into groups of at most threshold variables. Consecutive
// groups share an auxiliary variable carrying the running parity.
func (e *Encoding) chunked(lits []z.Lit, rhs bool, threshold int) {
	carry := z.LitNull
	for len(lits) > threshold {
		next := e.circuit.Lit()
		e.aux++
		group := make([]z.Lit, 0, threshold+2)
		if carry != z.LitNull {
			group = append(group, carry)
		}
		group = append(group, lits[:threshold]...)
		group = append(group, next)
		e.xorClauses(group, false)
		carry, lits = next, lits[threshold:]
	}
	group := make([]z.Lit, 0, len(lits)+1)
	if carry != z.LitNull {
		group = append(group, carry)
	}
	group = append(group, lits...)
	e.xorClauses(group, rhs)
}

// xorClauses emits the 2^(k-1) clauses forbidding every assignment of lits
// whose parity differs from rhs.
func (e *Encoding) xorClauses(lits []z.Lit, rhs bool) {
	k := len(lits)
	for mask := 0; mask < 1<<uint(k); mask++ {
		odd := false
		for q := 0; q < k; q++ {
			if mask&(1<<uint(q)) != 0 {
				odd = !odd
			}
		}
		if odd == rhs {
			continue // satisfying assignment
		}
		cl := make([]z.Lit, k)
		for q, m := range lits {
			if mask&(1<<uint(q)) != 0 {
				cl[q] = m.Not()
			} else {
				cl[q] = m
			}
		}
		e.clauses = append(e.clauses, cl)
	}
}

// load emits the whole encoding into dst.
func (e *Encoding) load(dst inter.Adder) {
	e.circuit.ToCnf(dst)
	for _, cl := range e.clauses {
		for _, m := range cl {
			dst.Add(m)
		}
		dst.Add(z.LitNull)
	}
}

func (e *Encoding) solver() *gini.Gini {
	g := gini.New()
	e.load(g)
	return g
}

// solve runs g in the background until it finishes or ctx is done.
func solve(ctx context.Context, g *gini.Gini) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return OutcomeUnknown, err
	}
	s := g.GoSolve()
	tick := time.NewTicker(pollInterval)
	defer tick.Stop()
	for {
		if res, done := s.Test(); done {
			return Outcome(res), nil
		}
		select {
		case <-ctx.Done():
			s.Stop()
			return OutcomeUnknown, ctx.Err()
		case <-tick.C:
		}
	}
}

// value reads m from the last model; variables the solver never saw are false.
func value(g *gini.Gini, m z.Lit) bool {
	if m.Var() > g.MaxVar() {
		return false
	}
	return g.Value(m)
}

// Check decides the encoded system. On SAT the returned slice is a model
// restricted to the system variables, checked against the system itself.
// Errors: ctx.Err() (with OutcomeUnknown) when cancelled, ErrModel.
func (e *Encoding) Check(ctx context.Context) (Outcome, []bool, error) {
	g := e.solver()
	out, err := solve(ctx, g)
	if err != nil {
		return OutcomeUnknown, nil, fmt.Errorf("%s: %w", opCheck, err)
	}
	if out != OutcomeSat {
		return out, nil, nil
	}
	model := make([]bool, len(e.x))
	for j, m := range e.x {
		model[j] = value(g, m)
	}
	ok, err := e.sys.Satisfies(model)
	if err != nil {
		return OutcomeUnknown, nil, fmt.Errorf("%s: %w", opCheck, err)
	}
	if !ok {
		return OutcomeUnknown, nil, fmt.Errorf("%s: %s: %w", opCheck, gf2.FormatBits(model), ErrModel)
	}
	return out, model, nil
}

// Verify reports whether witness satisfies the encoded constraints, by
// solving under the witness as assumptions.
// Errors: gf2.ErrDimensionMismatch, ctx.Err().
func (e *Encoding) Verify(ctx context.Context, witness []bool) (bool, error) {
	if err := gf2.ValidateWitness(e.sys, witness); err != nil {
		return false, fmt.Errorf("%s: %w", opVerify, err)
	}
	g := e.solver()
	for j, m := range e.x {
		if m.Var() > g.MaxVar() {
			continue // unconstrained
		}
		if witness[j] {
			g.Assume(m)
		} else {
			g.Assume(m.Not())
		}
	}
	out, err := solve(ctx, g)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opVerify, err)
	}
	return out == OutcomeSat, nil
}

// cnf records clauses for DIMACS output.
type cnf struct {
	clauses [][]z.Lit
	cur     []z.Lit
	maxVar  z.Var
}

func (c *cnf) Add(m z.Lit) {
	if m == z.LitNull {
		c.clauses = append(c.clauses, c.cur)
		c.cur = nil
		return
	}
	if m.Var() > c.maxVar {
		c.maxVar = m.Var()
	}
	c.cur = append(c.cur, m)
}

// WriteDimacs writes the encoding in DIMACS CNF. System variable j is DIMACS
// variable Lit(j).Var(); the mapping is listed in a comment line.
func (e *Encoding) WriteDimacs(w io.Writer) error {
	rec := &cnf{}
	e.load(rec)
	for _, m := range e.x {
		if m.Var() > rec.maxVar {
			rec.maxVar = m.Var()
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "c parity level=%s vars=%d aux=%d\n", e.level, len(e.x), e.aux)
	bw.WriteString("c x")
	for _, m := range e.x {
		fmt.Fprintf(bw, " %d", m.Dimacs())
	}
	bw.WriteByte('\n')
	fmt.Fprintf(bw, "p cnf %d %d\n", rec.maxVar, len(rec.clauses))
	for _, cl := range rec.clauses {
		for _, m := range cl {
			fmt.Fprintf(bw, "%d ", m.Dimacs())
		}
		bw.WriteString("0\n")
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", opDimacs, err)
	}
	return nil
}
