package codegen

import "github.com/xiaobogaga/hackvmtranslator/internal/asmwriter"

// category groups the nine arithmetic/logical mnemonics by arity and kind
// so a single table can drive three shared emission paths instead of nine
// near-duplicate methods.
type category int

const (
	unaryBitwise category = iota
	binary
	comparison
)

type arithOp struct {
	category category
	// comp is the ALU computation string for binary/comparison ops, where
	// A holds the address of the deeper operand x (so M dereferences to
	// x) and D holds the popped operand y, e.g. "M-D" computes x-y. For
	// unaryBitwise, comp is applied directly to M, e.g. "-M" or "!M".
	comp string
	// jump is the conditional-jump mnemonic for comparison ops.
	jump string
}

var arithTable = map[string]arithOp{
	"neg": {category: unaryBitwise, comp: "-M"},
	"not": {category: unaryBitwise, comp: "!M"},
	"add": {category: binary, comp: "D+M"},
	"and": {category: binary, comp: "D&M"},
	"or":  {category: binary, comp: "D|M"},
	// sub computes x-y, where x is the deeper cell. A holds the address of
	// x after the pop sequence below, so the comp field dereferences it
	// via M rather than combining raw addresses.
	"sub": {category: binary, comp: "M-D"},
	"eq":  {category: comparison, comp: "M-D", jump: "JEQ"},
	"gt":  {category: comparison, comp: "M-D", jump: "JGT"},
	"lt":  {category: comparison, comp: "M-D", jump: "JLT"},
}

// emitArithmetic dispatches mnemonic to the matching category's emission
// path. unaryBitwise leaves SP unchanged; binary and comparison both net
// SP-1.
func (e *Emitter) emitArithmetic(mnemonic string) error {
	op, ok := arithTable[mnemonic]
	if !ok {
		return unknownArithmetic(mnemonic)
	}
	switch op.category {
	case unaryBitwise:
		e.emitUnary(op)
	case binary:
		e.emitBinary(op)
	case comparison:
		e.emitComparison(mnemonic, op)
	}
	return nil
}

// emitUnary rewrites the topmost cell in place: neither pops nor pushes.
func (e *Emitter) emitUnary(op arithOp) {
	e.w.Lines("@SP", "A=M-1")
	e.w.CInstruction("D", op.comp, "")
	e.w.Lines("@SP", "A=M-1")
	e.w.CInstruction("M", "D", "")
}

// emitBinary pops the top into D, rewrites the new top with x OP y, net
// SP-1.
func (e *Emitter) emitBinary(op arithOp) {
	e.w.PopToD()
	e.w.Lines("A=A-1")
	e.w.CInstruction("D", op.comp, "")
	e.w.Lines("@SP", "A=M-1")
	e.w.CInstruction("M", "D", "")
}

// emitComparison pops the top into D, computes x-y, and conditionally sets
// the new top to all-ones (true, -1) or zero (false). The true/continue
// label pair shares a single counter value and is unique across the whole
// program.
func (e *Emitter) emitComparison(mnemonic string, op arithOp) {
	trueLabel, contLabel := asmwriter.ComparisonLabels(mnemonic, e.cmpCounter)
	e.cmpCounter++

	e.w.PopToD()
	e.w.Lines("A=A-1")
	e.w.CInstruction("D", op.comp, "")
	e.w.AInstruction(trueLabel)
	e.w.CInstruction("", "D", op.jump)
	e.w.CInstruction("D", "0", "")
	e.w.AInstruction(contLabel)
	e.w.CInstruction("", "0", "JMP")
	e.w.Label(trueLabel)
	e.w.CInstruction("D", "-1", "")
	e.w.Label(contLabel)
	e.w.Lines("@SP", "A=M-1")
	e.w.CInstruction("M", "D", "")
}
