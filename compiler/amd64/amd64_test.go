package amd64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterClasses(t *testing.T) {
	require.Equal(t, Regs, len(CallerSaved)+len(CalleeSaved))

	seen := map[Reg]bool{}

	for _, r := range CallerSaved {
		assert.True(t, r.IsCallerSaved(), "%v", r)
		assert.False(t, r.IsCalleeSaved(), "%v", r)

		seen[r] = true
	}

	for _, r := range CalleeSaved {
		assert.True(t, r.IsCalleeSaved(), "%v", r)
		assert.False(t, r.IsCallerSaved(), "%v", r)

		seen[r] = true
	}

	require.Equal(t, Regs, len(seen))
}

func TestArgumentPassingOrder(t *testing.T) {
	require.Equal(t, []Reg{RDI, RSI, RDX, RCX, R8, R9}, ArgumentPassing)

	// arguments are passed in registers the call is free to destroy
	for _, r := range ArgumentPassing {
		assert.True(t, r.IsArgument(), "%v", r)
		assert.True(t, r.IsCallerSaved(), "%v", r)
	}
}

func TestCanLive(t *testing.T) {
	assert.True(t, CanLive(RAX))
	assert.True(t, CanLive(Mem{Base: RBP, Off: -8}))
	assert.True(t, CanLive(Var("x")))
	assert.False(t, CanLive(Imm(42)))
}

func TestOperandEquality(t *testing.T) {
	assert.Equal(t, Operand(Mem{Base: RBP, Off: -8}), Operand(Mem{Base: RBP, Off: -8}))
	assert.NotEqual(t, Operand(Mem{Base: RBP, Off: -8}), Operand(Mem{Base: RBP, Off: 8}))
	assert.NotEqual(t, Operand(Var("x")), Operand(Var("y")))
	assert.NotEqual(t, Operand(Imm(1)), Operand(Var("1")))
}

func TestRegByName(t *testing.T) {
	for r := Reg(0); r < Regs; r++ {
		back, ok := RegByName(r.String()[1:])
		require.True(t, ok, "%v", r)
		require.Equal(t, r, back)
	}

	_, ok := RegByName("eax")
	require.False(t, ok)
}

func TestFormat(t *testing.T) {
	code := Block{
		MovQ{Src: Imm(32), Dst: Var("x")},
		AddQ{Src: Var("x"), Dst: Mem{Base: RBP, Off: -8}},
		SubQ{Src: RAX, Dst: Mem{Base: RSP}},
		NegQ{Dst: RCX},
		PushQ{Op: RBX},
		PopQ{Op: RBX},
		CallQ{Label: "f", Arity: 2},
		Jmp{Label: "done"},
		Syscall{},
		RetQ{},
	}

	want := `	movq	$32, x
	addq	x, -8(%rbp)
	subq	%rax, (%rsp)
	negq	%rcx
	pushq	%rbx
	popq	%rbx
	callq	f, 2
	jmp	done
	syscall
	retq
`

	assert.Equal(t, want, string(AppendBlock(nil, code)))
}
