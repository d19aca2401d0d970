package amd64

import (
	"fmt"

	"github.com/brisklang/brisk/compiler/set"
)

type (
	// Reg is one of the 16 general purpose registers.
	Reg int

	// Var is an unallocated symbolic variable.
	Var string

	// Mem addresses memory at Base plus Off bytes.
	Mem struct {
		Base Reg
		Off  int64
	}

	// Imm is an integer literal. It is a value, not a storage location.
	Imm int64

	// Operand is Reg, Mem, Var or Imm.
	Operand interface{}

	Label string

	// Arity is the number of integer and pointer arguments
	// a call passes in registers.
	Arity int
)

const (
	RSP Reg = iota
	RBP
	RAX
	RBX
	RCX
	RDX
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15

	Regs = 16
)

var (
	// CallerSaved registers are destroyed by a call.
	CallerSaved = []Reg{RAX, RCX, RDX, RSI, RDI, R8, R9, R10, R11}

	// CalleeSaved registers are preserved across a call.
	CalleeSaved = []Reg{RSP, RBP, RBX, R12, R13, R14, R15}

	// ArgumentPassing registers carry call arguments, in calling convention order.
	ArgumentPassing = []Reg{RDI, RSI, RDX, RCX, R8, R9}

	callerSaved = set.BitsOf(CallerSaved...)
	calleeSaved = set.BitsOf(CalleeSaved...)
	argument    = set.BitsOf(ArgumentPassing...)
)

// CanLive reports whether the operand is a storage location,
// something a liveness set may contain.
// An immediate is a literal and is never live.
func CanLive(x Operand) bool {
	switch x.(type) {
	case Reg, Mem, Var:
		return true
	case Imm:
		return false
	default:
		panic(x)
	}
}

func (r Reg) IsCallerSaved() bool { return callerSaved.IsSet(r) }
func (r Reg) IsCalleeSaved() bool { return calleeSaved.IsSet(r) }
func (r Reg) IsArgument() bool    { return argument.IsSet(r) }

var regNames = [Regs]string{"rsp", "rbp", "rax", "rbx", "rcx", "rdx", "rsi", "rdi", "r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15"}

// RegByName maps a register name without the % prefix, such as "rax",
// back to the register.
func RegByName(name string) (Reg, bool) {
	for r, n := range regNames {
		if n == name {
			return Reg(r), true
		}
	}

	return -1, false
}

func (r Reg) String() string {
	if r < 0 || r >= Regs {
		return fmt.Sprintf("%%reg%d", int(r))
	}

	return "%" + regNames[r]
}

func (m Mem) String() string {
	if m.Off == 0 {
		return fmt.Sprintf("(%v)", m.Base)
	}

	return fmt.Sprintf("%d(%v)", m.Off, m.Base)
}

func (v Var) String() string { return string(v) }

func (x Imm) String() string { return fmt.Sprintf("$%d", int64(x)) }
