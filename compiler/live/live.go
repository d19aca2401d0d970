// Package live computes which storage locations are live
// around every instruction of a straight line block.
//
// A location is live at a point if some later instruction may read
// its current value before it is overwritten. The scan is the classic
// backward dataflow recurrence
//
//	in(i) = uses(i) | (out(i) &^ defs(i))
//
// specialized to a single acyclic block, so one reverse pass suffices
// and no fixpoint iteration is needed.
package live

import (
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/brisklang/brisk/compiler/amd64"
	"github.com/brisklang/brisk/compiler/set"
)

type (
	Set = set.Set[amd64.Operand]

	// Record is the liveness fact for one instruction position.
	// In is the set live just before the instruction executes,
	// Out the set live just after.
	Record struct {
		Instr amd64.Instr

		In  Set
		Out Set
	}
)

// Uses returns the locations the instruction reads.
//
// It fails only on a CallQ whose arity exceeds the argument passing
// registers, which is a contract violation by the instruction producer.
func Uses(x amd64.Instr) (Set, error) {
	s := set.Make[amd64.Operand](2)

	switch x := x.(type) {
	case amd64.AddQ:
		add(s, x.Src, x.Dst)
	case amd64.SubQ:
		add(s, x.Src, x.Dst)
	case amd64.NegQ:
		add(s, x.Dst)
	case amd64.MovQ:
		add(s, x.Src)
	case amd64.CallQ:
		if x.Arity < 0 || int(x.Arity) > len(amd64.ArgumentPassing) {
			return nil, errors.New("call arity %d out of range [0, %d]", int(x.Arity), len(amd64.ArgumentPassing))
		}

		for _, r := range amd64.ArgumentPassing[:x.Arity] {
			s.Add(r)
		}
	case amd64.PushQ, amd64.PopQ, amd64.Jmp, amd64.Syscall, amd64.RetQ:
		// no analyzed reads
	default:
		panic(x)
	}

	return s, nil
}

// Defs returns the locations the instruction overwrites.
func Defs(x amd64.Instr) Set {
	s := set.Make[amd64.Operand](2)

	switch x := x.(type) {
	case amd64.AddQ:
		add(s, x.Dst)
	case amd64.SubQ:
		add(s, x.Dst)
	case amd64.NegQ:
		add(s, x.Dst)
	case amd64.MovQ:
		add(s, x.Dst)
	case amd64.CallQ:
		// a call destroys every caller saved register
		for _, r := range amd64.CallerSaved {
			s.Add(r)
		}
	case amd64.PushQ, amd64.PopQ, amd64.Jmp, amd64.Syscall, amd64.RetQ:
		// no analyzed writes
	default:
		panic(x)
	}

	return s
}

// Analyze scans the block backward and returns one record per
// instruction, in program order. Nothing is live falling off the end
// of the block; stitching blocks together is the caller's concern.
func Analyze(ctx context.Context, code amd64.Block) (res []Record, err error) {
	tr := tlog.SpanFromContext(ctx)

	res = make([]Record, len(code))
	out := set.Make[amd64.Operand](0)

	for i := len(code) - 1; i >= 0; i-- {
		use, err := Uses(code[i])
		if err != nil {
			return nil, errors.Wrap(err, "instr %d", i)
		}

		def := Defs(code[i])

		in := out.Copy()
		in.AndNot(def)
		in.Or(use)

		res[i] = Record{
			Instr: code[i],
			In:    in,
			Out:   out,
		}

		out = in
	}

	if tr.If("dump_live") {
		for i, r := range res {
			tr.Printw("live", "i", i, "typ", tlog.NextAsType, r.Instr, "instr", r.Instr, "in", r.In, "out", r.Out)
		}
	}

	return res, nil
}

func add(s Set, xs ...amd64.Operand) {
	for _, x := range xs {
		if amd64.CanLive(x) {
			s.Add(x)
		}
	}
}
