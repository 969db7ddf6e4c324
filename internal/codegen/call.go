package codegen

import (
	"strconv"

	"github.com/xiaobogaga/hackvmtranslator/internal/asmwriter"
)

// emitCall pushes a fresh return label, pushes the caller's LCL, ARG,
// THIS, and THAT in that order, repositions ARG and LCL for the callee,
// jumps to funcName, and declares the return label as the resumption
// point.
func (e *Emitter) emitCall(funcName string, nArgs int) {
	retLabel := asmwriter.ReturnLabel(e.currentFunction, e.callCounter)
	e.callCounter++

	e.w.Comment("call " + funcName)
	e.w.AInstruction(retLabel)
	e.w.CInstruction("D", "A", "")
	e.w.PushDToStack()

	for _, seg := range []string{"LCL", "ARG", "THIS", "THAT"} {
		e.w.AInstruction(seg)
		e.w.CInstruction("D", "M", "")
		e.w.PushDToStack()
	}

	// ARG = SP - 5 - nArgs
	e.w.AInstruction(strconv.Itoa(nArgs))
	e.w.CInstruction("D", "A", "")
	e.w.AInstruction("5")
	e.w.CInstruction("D", "D+A", "")
	e.w.AInstruction("SP")
	e.w.CInstruction("D", "M-D", "")
	e.w.AInstruction("ARG")
	e.w.CInstruction("M", "D", "")

	// LCL = SP
	e.w.AInstruction("SP")
	e.w.CInstruction("D", "M", "")
	e.w.AInstruction("LCL")
	e.w.CInstruction("M", "D", "")

	e.w.AInstruction(funcName)
	e.w.CInstruction("", "0", "JMP")

	e.w.Label(retLabel)
}

// emitFunction declares the entry label, zero-initializes nVars locals,
// and records funcName as the current function so subsequent calls mint
// return labels scoped to it.
func (e *Emitter) emitFunction(funcName string, nVars int) {
	e.w.Comment("function " + funcName)
	e.w.Label(funcName)
	for i := 0; i < nVars; i++ {
		e.w.AInstruction("SP")
		e.w.CInstruction("A", "M", "")
		e.w.CInstruction("M", "0", "")
		e.w.AInstruction("SP")
		e.w.CInstruction("M", "M+1", "")
	}
	e.currentFunction = funcName
}

// emitReturn restores the caller's frame and jumps back to it. The
// caller's ARG slot is written with the return value before LCL, ARG,
// THIS, and THAT are restored, because ARG is still needed to compute the
// new SP once its saved value overwrites the live one.
func (e *Emitter) emitReturn() {
	e.w.Comment("return")

	// frame = LCL
	e.w.AInstruction("LCL")
	e.w.CInstruction("D", "M", "")
	e.w.AInstruction("frame")
	e.w.CInstruction("M", "D", "")

	// retAddr = memory[frame-5]
	e.w.AInstruction("5")
	e.w.CInstruction("D", "A", "")
	e.w.AInstruction("frame")
	e.w.CInstruction("A", "M-D", "")
	e.w.CInstruction("D", "M", "")
	e.w.AInstruction("retAddr")
	e.w.CInstruction("M", "D", "")

	// *ARG = pop()
	e.w.PopToD()
	e.w.AInstruction("ARG")
	e.w.CInstruction("A", "M", "")
	e.w.CInstruction("M", "D", "")

	// SP = ARG+1
	e.w.AInstruction("ARG")
	e.w.CInstruction("D", "M+1", "")
	e.w.AInstruction("SP")
	e.w.CInstruction("M", "D", "")

	// restore THAT, THIS, ARG, LCL walking down from frame-1..frame-4
	for i, dest := range []string{"THAT", "THIS", "ARG", "LCL"} {
		offset := i + 1
		e.w.AInstruction(strconv.Itoa(offset))
		e.w.CInstruction("D", "A", "")
		e.w.AInstruction("frame")
		e.w.CInstruction("A", "M-D", "")
		e.w.CInstruction("D", "M", "")
		e.w.AInstruction(dest)
		e.w.CInstruction("M", "D", "")
	}

	// goto caller through retAddr
	e.w.AInstruction("retAddr")
	e.w.CInstruction("A", "M", "")
	e.w.CInstruction("", "0", "JMP")
}
