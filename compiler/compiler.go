package compiler

import (
	"context"
	"fmt"
	"os"
	"sort"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/brisklang/brisk/compiler/amd64"
	"github.com/brisklang/brisk/compiler/live"
	"github.com/brisklang/brisk/compiler/parse"
)

func AnalyzeFile(ctx context.Context, name string) (rep []byte, err error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Analyze(ctx, name, text)
}

func Analyze(ctx context.Context, name string, text []byte) (rep []byte, err error) {
	st := parse.New()

	st.AddFile(ctx, name, text)

	code, err := st.Parse(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "parse text")
	}

	res, err := live.Analyze(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "liveness")
	}

	return AppendReport(nil, res), nil
}

// AppendReport renders records one instruction per line
// with its live in and live out sets.
func AppendReport(b []byte, res []live.Record) []byte {
	for _, r := range res {
		b = append(b, '\t')
		b = amd64.AppendInstr(b, r.Instr)

		b = append(b, "\t\t# in:"...)
		b = appendSet(b, r.In)

		b = append(b, "  out:"...)
		b = appendSet(b, r.Out)

		b = append(b, '\n')
	}

	return b
}

func appendSet(b []byte, s live.Set) []byte {
	if s.Size() == 0 {
		return append(b, " -"...)
	}

	l := make([]string, 0, s.Size())

	s.Range(func(x amd64.Operand) bool {
		l = append(l, fmt.Sprint(x))

		return true
	})

	sort.Strings(l)

	for _, x := range l {
		b = append(b, ' ')
		b = append(b, x...)
	}

	return b
}
