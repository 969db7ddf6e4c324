// Package asmwriter holds the low-level assembly-line accumulator and the
// two stack macros every code generator builds on. It streams to an
// io.Writer rather than buffering the whole program in memory, so a caller
// can flush output as each source unit finishes translating.
package asmwriter

import (
	"bufio"
	"fmt"
	"io"
)

// Writer accumulates assembly source lines and flushes them to an
// underlying io.Writer.
type Writer struct {
	out *bufio.Writer
}

// New wraps w as an assembly output sink.
func New(w io.Writer) *Writer {
	return &Writer{out: bufio.NewWriter(w)}
}

// Line emits a single already-formatted instruction or label line.
func (w *Writer) Line(s string) {
	fmt.Fprintln(w.out, s)
}

// Linef is Line with fmt.Sprintf-style formatting.
func (w *Writer) Linef(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Lines emits each already-formatted line in order, skipping blanks so
// callers can write code as a multi-line literal with blank separators.
func (w *Writer) Lines(lines ...string) {
	for _, l := range lines {
		if l == "" {
			continue
		}
		w.Line(l)
	}
}

// Comment emits a "// text" line.
func (w *Writer) Comment(text string) {
	w.Linef("// %s", text)
}

// Label emits a "(name)" label declaration.
func (w *Writer) Label(name string) {
	w.Linef("(%s)", name)
}

// AInstruction emits "@symbolOrConstant".
func (w *Writer) AInstruction(target string) {
	w.Linef("@%s", target)
}

// CInstruction emits "dest=comp;jump" with either half optional.
func (w *Writer) CInstruction(dest, comp, jump string) {
	switch {
	case dest != "" && jump != "":
		w.Linef("%s=%s;%s", dest, comp, jump)
	case dest != "":
		w.Linef("%s=%s", dest, comp)
	case jump != "":
		w.Linef("%s;%s", comp, jump)
	default:
		w.Line(comp)
	}
}

// PushDToStack emits the "push-D-to-stack" macro: store D into
// memory[SP], then increment SP.
func (w *Writer) PushDToStack() {
	w.Lines(
		"@SP",
		"A=M",
		"M=D",
		"@SP",
		"M=M+1",
	)
}

// PopToD emits the "pop-to-D" macro: decrement SP, then load memory[SP]
// into D, via the Hack idiom "@SP / AM=M-1 / D=M".
func (w *Writer) PopToD() {
	w.Lines(
		"@SP",
		"AM=M-1",
		"D=M",
	)
}

// Flush flushes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.out.Flush()
}

// ComparisonLabels mints the pair of labels a single eq/gt/lt comparison
// needs: a "true" branch target and the label immediately after it. Both
// share counter n and differ only in prefix, e.g. eq3 / eqcont3.
func ComparisonLabels(op string, n int) (trueLabel, contLabel string) {
	return fmt.Sprintf("%s%d", op, n), fmt.Sprintf("%scont%d", op, n)
}

// ReturnLabel mints the return-address label a call pushes and jumps back
// to: "<currentFunction>$ret.<N>".
func ReturnLabel(currentFunction string, n int) string {
	return fmt.Sprintf("%s$ret.%d", currentFunction, n)
}

// ScratchAddr mints an indexed scratch-address cell, e.g. "addr3", so
// concurrent spills never alias a shared cell.
func ScratchAddr(n int) string {
	return fmt.Sprintf("addr%d", n)
}
