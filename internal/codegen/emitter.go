// Package codegen maps classified VM commands to Hack assembly. An
// Emitter carries its own output sink, label counters, the current
// function name, and the current unit base name, and is created once by
// the driver and threaded explicitly through every call rather than held
// as a package global.
package codegen

import (
	"github.com/xiaobogaga/hackvmtranslator/internal/asmwriter"
	"github.com/xiaobogaga/hackvmtranslator/internal/vmcmd"
	"github.com/xiaobogaga/hackvmtranslator/internal/vmerr"
)

// Emitter is the process-scoped code-generation state threaded through
// every generator call.
type Emitter struct {
	w *asmwriter.Writer

	cmpCounter  int // comparison-label counter (eq/gt/lt)
	callCounter int // return-address counter ($ret.N)
	addrCounter int // indexed scratch-address counter (addrN)

	currentFunction string // prefix for CALL's return labels
	unitBase        string // scope prefix for static variables
}

// New creates an Emitter writing to w. currentFunction starts empty, so
// a bootstrap call to Sys.init issued before any function is declared
// mints an unscoped return label.
func New(w *asmwriter.Writer) *Emitter {
	return &Emitter{w: w}
}

// SetUnit records the base name of the source unit currently being
// translated, used to scope that unit's static variables.
func (e *Emitter) SetUnit(base string) {
	e.unitBase = base
}

// CurrentFunction reports the most recently declared function's name.
func (e *Emitter) CurrentFunction() string {
	return e.currentFunction
}

// Emit dispatches a single classified command to its generator.
func (e *Emitter) Emit(cmd vmcmd.Command) error {
	switch cmd.Kind {
	case vmcmd.Arithmetic:
		return e.emitArithmetic(cmd.Arg1)
	case vmcmd.Push:
		return e.emitPush(cmd.Arg1, cmd.Arg2)
	case vmcmd.Pop:
		return e.emitPop(cmd.Arg1, cmd.Arg2)
	case vmcmd.Label:
		e.emitLabel(cmd.Arg1)
		return nil
	case vmcmd.Goto:
		e.emitGoto(cmd.Arg1)
		return nil
	case vmcmd.IfGoto:
		e.emitIfGoto(cmd.Arg1)
		return nil
	case vmcmd.Function:
		e.emitFunction(cmd.Arg1, cmd.Arg2)
		return nil
	case vmcmd.Call:
		e.emitCall(cmd.Arg1, cmd.Arg2)
		return nil
	case vmcmd.Return:
		e.emitReturn()
		return nil
	default:
		return vmerr.Newf(vmerr.UnknownCommand, "unhandled command kind %v", cmd.Kind)
	}
}

// Terminator emits the single-unit termination fragment: an infinite
// self-loop so the program halts deterministically.
func (e *Emitter) Terminator() {
	e.w.Label("END")
	e.w.AInstruction("END")
	e.w.CInstruction("", "0", "JMP")
}

// Bootstrap emits the multi-unit bootstrap prologue: SP=256 then
// call Sys.init 0. currentFunction is empty at this point by
// construction, so the resulting return label is the unreachable
// "$ret.0".
func (e *Emitter) Bootstrap() {
	e.w.Comment("bootstrap")
	e.w.AInstruction("256")
	e.w.CInstruction("D", "A", "")
	e.w.AInstruction("SP")
	e.w.CInstruction("M", "D", "")
	e.emitCall("Sys.init", 0)
}

func unknownArithmetic(mnemonic string) error {
	return vmerr.Newf(vmerr.UnknownCommand, "unrecognized arithmetic mnemonic %q", mnemonic)
}
