package codegen

import (
	"strconv"

	"github.com/xiaobogaga/hackvmtranslator/internal/asmwriter"
	"github.com/xiaobogaga/hackvmtranslator/internal/vmerr"
)

// segmentBase names the four pointer-style segments whose address is
// base+index.
var segmentBase = map[string]string{
	"local":    "LCL",
	"argument": "ARG",
	"this":     "THIS",
	"that":     "THAT",
}

// nextScratchAddr mints a fresh indexed scratch cell for each pop that
// needs to spill a computed address, so overlapping pop sequences never
// alias the same cell.
func (e *Emitter) nextScratchAddr() string {
	addr := asmwriter.ScratchAddr(e.addrCounter)
	e.addrCounter++
	return addr
}

func (e *Emitter) emitPush(segment string, index int) error {
	switch segment {
	case "constant":
		e.w.Comment("push constant")
		e.w.AInstruction(strconv.Itoa(index))
		e.w.CInstruction("D", "A", "")
		e.w.PushDToStack()
		return nil
	case "local", "argument", "this", "that":
		base := segmentBase[segment]
		e.w.Comment("push " + segment)
		e.w.AInstruction(strconv.Itoa(index))
		e.w.CInstruction("D", "A", "")
		e.w.AInstruction(base)
		e.w.CInstruction("A", "M+D", "")
		e.w.CInstruction("D", "M", "")
		e.w.PushDToStack()
		return nil
	case "temp":
		e.w.Comment("push temp")
		e.w.AInstruction(strconv.Itoa(5 + index))
		e.w.CInstruction("D", "M", "")
		e.w.PushDToStack()
		return nil
	case "pointer":
		reg, err := pointerRegister(index)
		if err != nil {
			return err
		}
		e.w.Comment("push pointer")
		e.w.AInstruction(reg)
		e.w.CInstruction("D", "M", "")
		e.w.PushDToStack()
		return nil
	case "static":
		e.w.Comment("push static")
		e.w.AInstruction(e.staticSymbol(index))
		e.w.CInstruction("D", "M", "")
		e.w.PushDToStack()
		return nil
	default:
		return unknownSegment(segment)
	}
}

func (e *Emitter) emitPop(segment string, index int) error {
	switch segment {
	case "constant":
		// constant has no backing storage, but the stack must still
		// contract by one cell.
		e.w.Comment("pop constant")
		e.w.Lines("@SP", "M=M-1")
		return nil
	case "local", "argument", "this", "that":
		base := segmentBase[segment]
		addr := e.nextScratchAddr()
		// Resolve base+index and stash it before touching the stack, so
		// popping SP can't disturb the address before it's read.
		e.w.Comment("pop " + segment)
		e.w.AInstruction(strconv.Itoa(index))
		e.w.CInstruction("D", "A", "")
		e.w.AInstruction(base)
		e.w.CInstruction("D", "M+D", "")
		e.w.AInstruction(addr)
		e.w.CInstruction("M", "D", "")
		e.w.PopToD()
		e.w.AInstruction(addr)
		e.w.CInstruction("A", "M", "")
		e.w.CInstruction("M", "D", "")
		return nil
	case "temp":
		addr := e.nextScratchAddr()
		e.w.Comment("pop temp")
		e.w.AInstruction(strconv.Itoa(5 + index))
		e.w.CInstruction("D", "A", "")
		e.w.AInstruction(addr)
		e.w.CInstruction("M", "D", "")
		e.w.PopToD()
		e.w.AInstruction(addr)
		e.w.CInstruction("A", "M", "")
		e.w.CInstruction("M", "D", "")
		return nil
	case "pointer":
		reg, err := pointerRegister(index)
		if err != nil {
			return err
		}
		e.w.Comment("pop pointer")
		e.w.PopToD()
		e.w.AInstruction(reg)
		e.w.CInstruction("M", "D", "")
		return nil
	case "static":
		e.w.Comment("pop static")
		e.w.PopToD()
		e.w.AInstruction(e.staticSymbol(index))
		e.w.CInstruction("M", "D", "")
		return nil
	default:
		return unknownSegment(segment)
	}
}

// pointerRegister resolves the pointer segment's two admissible indices to
// the THIS/THAT registers they alias.
func pointerRegister(index int) (string, error) {
	switch index {
	case 0:
		return "THIS", nil
	case 1:
		return "THAT", nil
	default:
		return "", vmerr.Newf(vmerr.MalformedArgument, "pointer index must be 0 or 1, got %d", index)
	}
}

// staticSymbol mints the per-unit static name "<unitBase>.<index>":
// distinct unit base names keep static variables collision-free across
// source units.
func (e *Emitter) staticSymbol(index int) string {
	return e.unitBase + "." + strconv.Itoa(index)
}

func unknownSegment(segment string) error {
	return vmerr.Newf(vmerr.UnknownCommand, "unrecognized segment %q", segment)
}
