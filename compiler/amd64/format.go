package amd64

import "fmt"

func AppendInstr(b []byte, x Instr) []byte {
	switch x := x.(type) {
	case AddQ:
		b = fmt.Appendf(b, "addq\t%v, %v", x.Src, x.Dst)
	case SubQ:
		b = fmt.Appendf(b, "subq\t%v, %v", x.Src, x.Dst)
	case NegQ:
		b = fmt.Appendf(b, "negq\t%v", x.Dst)
	case MovQ:
		b = fmt.Appendf(b, "movq\t%v, %v", x.Src, x.Dst)
	case PushQ:
		b = fmt.Appendf(b, "pushq\t%v", x.Op)
	case PopQ:
		b = fmt.Appendf(b, "popq\t%v", x.Op)
	case CallQ:
		b = fmt.Appendf(b, "callq\t%v, %d", x.Label, int(x.Arity))
	case Jmp:
		b = fmt.Appendf(b, "jmp\t%v", x.Label)
	case Syscall:
		b = append(b, "syscall"...)
	case RetQ:
		b = append(b, "retq"...)
	default:
		panic(x)
	}

	return b
}

func AppendBlock(b []byte, code Block) []byte {
	for _, x := range code {
		b = append(b, '\t')
		b = AppendInstr(b, x)
		b = append(b, '\n')
	}

	return b
}
