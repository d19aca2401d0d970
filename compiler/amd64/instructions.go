package amd64

// Instruction shapes are generic over the operand representation,
// so the same shape can carry symbolic operands before register
// allocation and physical ones after.
type (
	Instr any

	// Block is a straight line instruction sequence.
	// Execution falls through top to bottom, no internal branch targets.
	Block []Instr

	AddQF[A any] struct {
		Src A
		Dst A
	}

	SubQF[A any] struct {
		Src A
		Dst A
	}

	NegQF[A any] struct {
		Dst A
	}

	MovQF[A any] struct {
		Src A
		Dst A
	}

	PushQF[A any] struct {
		Op A
	}

	PopQF[A any] struct {
		Op A
	}

	CallQ struct {
		Label Label
		Arity Arity
	}

	Jmp struct {
		Label Label
	}

	Syscall struct{}

	RetQ struct{}
)

// Pre-allocation instantiations, the form the liveness stage analyzes.
type (
	AddQ  = AddQF[Operand]
	SubQ  = SubQF[Operand]
	NegQ  = NegQF[Operand]
	MovQ  = MovQF[Operand]
	PushQ = PushQF[Operand]
	PopQ  = PopQF[Operand]
)
