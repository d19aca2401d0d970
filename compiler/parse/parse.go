// Package parse reads the textual form of a straight line block.
//
// One instruction per line, AT&T operand order, # comments.
//
//	movq	$32, x
//	addq	%rax, 8(%rbp)
//	callq	f, 2
package parse

import (
	"context"
	"fmt"
	"strconv"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/brisklang/brisk/compiler/amd64"
)

type (
	State struct {
		b []byte // all files concatenated

		files []file
	}

	file struct {
		Name string
		Base int
	}
)

func New() *State {
	return &State{}
}

func (s *State) AddFile(ctx context.Context, name string, text []byte) {
	f := file{
		Name: name,
		Base: len(s.b),
	}

	s.b = append(s.b, text...)

	if len(text) != 0 && text[len(text)-1] != '\n' {
		s.b = append(s.b, '\n')
	}

	s.files = append(s.files, f)
}

func (s *State) Parse(ctx context.Context) (code amd64.Block, err error) {
	tr := tlog.SpanFromContext(ctx)

	i := 0

	for i < len(s.b) {
		x, e, err := s.parseLine(ctx, i)
		if err != nil {
			return nil, errors.Wrap(err, "%v", s.pos(i))
		}

		if tr.If("parse_instr") && x != nil {
			tr.Printw("instr", "st", i, "typ", tlog.NextAsType, x, "instr", x, "from", loc.Callers(1, 2))
		}

		if x != nil {
			code = append(code, x)
		}

		i = e
	}

	return code, nil
}

// parseLine parses one instruction or an empty line.
// It returns a nil instruction for blank and comment only lines.
func (s *State) parseLine(ctx context.Context, st int) (x amd64.Instr, i int, err error) {
	b := s.b
	i = skipSpaces(b, st)

	if i == len(b) || b[i] == '\n' || b[i] == '#' {
		return nil, skipLine(b, i), nil
	}

	e := skipIdent(b, i)
	if e == i {
		return nil, i, errors.New("mnemonic expected, got %q", b[i])
	}

	mn := string(b[i:e])
	i = e

	switch mn {
	case "addq", "subq", "movq":
		src, dst, e, err := s.parseTwo(ctx, i)
		if err != nil {
			return nil, i, errors.Wrap(err, "%v operands", mn)
		}

		i = e

		switch mn {
		case "addq":
			x = amd64.AddQ{Src: src, Dst: dst}
		case "subq":
			x = amd64.SubQ{Src: src, Dst: dst}
		case "movq":
			x = amd64.MovQ{Src: src, Dst: dst}
		}
	case "negq", "pushq", "popq":
		op, e, err := s.parseOperand(ctx, i)
		if err != nil {
			return nil, i, errors.Wrap(err, "%v operand", mn)
		}

		i = e

		switch mn {
		case "negq":
			x = amd64.NegQ{Dst: op}
		case "pushq":
			x = amd64.PushQ{Op: op}
		case "popq":
			x = amd64.PopQ{Op: op}
		}
	case "callq":
		l, e, err := s.parseLabel(ctx, i)
		if err != nil {
			return nil, i, errors.Wrap(err, "callq label")
		}

		i, err = s.comma(e)
		if err != nil {
			return nil, e, err
		}

		n, e, err := s.parseInt(ctx, i)
		if err != nil {
			return nil, i, errors.Wrap(err, "callq arity")
		}

		x = amd64.CallQ{Label: l, Arity: amd64.Arity(n)}
		i = e
	case "jmp":
		l, e, err := s.parseLabel(ctx, i)
		if err != nil {
			return nil, i, errors.Wrap(err, "jmp label")
		}

		x = amd64.Jmp{Label: l}
		i = e
	case "syscall":
		x = amd64.Syscall{}
	case "retq":
		x = amd64.RetQ{}
	default:
		return nil, i - len(mn), errors.New("unknown mnemonic: %v", mn)
	}

	i = skipSpaces(b, i)

	if i < len(b) && b[i] != '\n' && b[i] != '#' {
		return nil, i, errors.New("end of line expected, got %q", b[i])
	}

	return x, skipLine(b, i), nil
}

func (s *State) parseTwo(ctx context.Context, st int) (src, dst amd64.Operand, i int, err error) {
	src, i, err = s.parseOperand(ctx, st)
	if err != nil {
		return nil, nil, i, err
	}

	i, err = s.comma(i)
	if err != nil {
		return nil, nil, i, err
	}

	dst, i, err = s.parseOperand(ctx, i)
	if err != nil {
		return nil, nil, i, err
	}

	return src, dst, i, nil
}

func (s *State) parseOperand(ctx context.Context, st int) (x amd64.Operand, i int, err error) {
	b := s.b
	i = skipSpaces(b, st)

	if i == len(b) || b[i] == '\n' {
		return nil, i, errors.New("operand expected")
	}

	c := b[i]

	switch {
	case c == '$':
		n, e, err := s.parseInt(ctx, i+1)
		if err != nil {
			return nil, i, errors.Wrap(err, "immediate")
		}

		return amd64.Imm(n), e, nil
	case c == '%':
		r, e, err := s.parseReg(ctx, i)
		if err != nil {
			return nil, i, err
		}

		return r, e, nil
	case c == '(' || c == '-' || c >= '0' && c <= '9':
		return s.parseMem(ctx, i)
	case isIdent(c):
		e := skipIdent(b, i)

		return amd64.Var(b[i:e]), e, nil
	default:
		return nil, i, errors.New("operand expected, got %q", c)
	}
}

func (s *State) parseMem(ctx context.Context, st int) (x amd64.Operand, i int, err error) {
	b := s.b
	i = st

	var off int64

	if b[i] != '(' {
		off, i, err = s.parseInt(ctx, i)
		if err != nil {
			return nil, i, errors.Wrap(err, "offset")
		}
	}

	if i == len(b) || b[i] != '(' {
		return nil, i, errors.New("base register expected")
	}

	r, e, err := s.parseReg(ctx, i+1)
	if err != nil {
		return nil, i + 1, err
	}

	i = e

	if i == len(b) || b[i] != ')' {
		return nil, i, errors.New("closing paren expected")
	}

	return amd64.Mem{Base: r, Off: off}, i + 1, nil
}

func (s *State) parseReg(ctx context.Context, st int) (r amd64.Reg, i int, err error) {
	b := s.b
	i = st

	if i == len(b) || b[i] != '%' {
		return -1, i, errors.New("register expected")
	}

	i++
	e := skipIdent(b, i)

	r, ok := amd64.RegByName(string(b[i:e]))
	if !ok {
		return -1, st, errors.New("unknown register: %%%s", b[i:e])
	}

	return r, e, nil
}

func (s *State) parseLabel(ctx context.Context, st int) (l amd64.Label, i int, err error) {
	b := s.b
	i = skipSpaces(b, st)

	e := skipIdent(b, i)
	if e == i {
		return "", i, errors.New("label expected")
	}

	return amd64.Label(b[i:e]), e, nil
}

func (s *State) parseInt(ctx context.Context, st int) (n int64, i int, err error) {
	b := s.b
	i = skipSpaces(b, st)

	e := i

	if e < len(b) && b[e] == '-' {
		e++
	}

	for e < len(b) && b[e] >= '0' && b[e] <= '9' {
		e++
	}

	n, err = strconv.ParseInt(string(b[i:e]), 10, 64)
	if err != nil {
		return 0, i, errors.New("number expected")
	}

	return n, e, nil
}

func (s *State) comma(st int) (i int, err error) {
	i = skipSpaces(s.b, st)

	if i == len(s.b) || s.b[i] != ',' {
		return i, errors.New("comma expected")
	}

	return i + 1, nil
}

// pos renders a byte offset as file:line:col.
func (s *State) pos(i int) string {
	name := ""
	base := 0

	for _, f := range s.files {
		if i < f.Base {
			break
		}

		name, base = f.Name, f.Base
	}

	line, col := 1, 1

	for j := base; j < i; j++ {
		col++

		if s.b[j] == '\n' {
			line++
			col = 1
		}
	}

	return fmt.Sprintf("%v:%d:%d", name, line, col)
}

func skipLine(b []byte, i int) int {
	for i < len(b) && b[i] != '\n' {
		i++
	}

	if i < len(b) {
		i++
	}

	return i
}

func skipSpaces(b []byte, i int) int {
	for i < len(b) && (b[i] == ' ' || b[i] == '\t' || b[i] == '\r') {
		i++
	}

	return i
}

func skipIdent(b []byte, i int) int {
	for i < len(b) && (isIdent(b[i]) || b[i] >= '0' && b[i] <= '9') {
		i++
	}

	return i
}

func isIdent(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '.'
}
