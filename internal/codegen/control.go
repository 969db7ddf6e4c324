package codegen

// emitLabel declares a label at the current point: "(x)". The name is used
// verbatim; any scoping against duplicate names across functions is left to
// the VM source author.
func (e *Emitter) emitLabel(name string) {
	e.w.Comment("label " + name)
	e.w.Label(name)
}

// emitGoto jumps unconditionally to name.
func (e *Emitter) emitGoto(name string) {
	e.w.Comment("goto " + name)
	e.w.AInstruction(name)
	e.w.CInstruction("", "0", "JMP")
}

// emitIfGoto pops the top of the stack into D and jumps to name iff D != 0.
// The pop happens regardless of outcome.
func (e *Emitter) emitIfGoto(name string) {
	e.w.Comment("if-goto " + name)
	e.w.PopToD()
	e.w.AInstruction(name)
	e.w.CInstruction("", "D", "JNE")
}
