// Package vmcmd classifies a raw VM command string into a tagged Command
// variant, so generators can exhaustively switch on Kind rather than
// matching opcode strings directly.
package vmcmd

import (
	"strconv"
	"strings"

	"github.com/xiaobogaga/hackvmtranslator/internal/vmerr"
)

// Kind tags which of the nine VM command variants a Command is.
type Kind int

const (
	Push Kind = iota
	Pop
	Arithmetic
	Label
	Goto
	IfGoto
	Function
	Call
	Return
)

func (k Kind) String() string {
	switch k {
	case Push:
		return "push"
	case Pop:
		return "pop"
	case Arithmetic:
		return "arithmetic"
	case Label:
		return "label"
	case Goto:
		return "goto"
	case IfGoto:
		return "if-goto"
	case Function:
		return "function"
	case Call:
		return "call"
	case Return:
		return "return"
	default:
		return "unknown"
	}
}

// Command is a classified VM command with its arguments already resolved
// to the types the generators expect.
type Command struct {
	Kind Kind

	// Segment (PUSH/POP) or label/function name (LABEL/GOTO/IF_GOTO/
	// FUNCTION/CALL), or arithmetic mnemonic (ARITHMETIC).
	Arg1 string
	// Index (PUSH/POP), local-variable count (FUNCTION), or argument
	// count (CALL).
	Arg2 int
}

var arithmeticMnemonics = map[string]bool{
	"add": true, "sub": true, "neg": true,
	"eq": true, "gt": true, "lt": true,
	"and": true, "or": true, "not": true,
}

// Classify splits raw on whitespace and tags the resulting fields as one of
// the nine Command kinds. raw must already be comment- and whitespace-
// stripped (see internal/vmtok).
func Classify(raw string) (Command, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Command{}, vmerr.Newf(vmerr.UnknownCommand, "empty command")
	}
	op := fields[0]

	switch op {
	case "push", "pop":
		return classifyMemoryAccess(op, fields)
	case "label", "goto", "if-goto":
		return classifyControlFlow(op, fields)
	case "function", "call":
		return classifyCallable(op, fields)
	case "return":
		if len(fields) != 1 {
			return Command{}, vmerr.Newf(vmerr.UnknownCommand, "return takes no arguments: %q", raw)
		}
		return Command{Kind: Return}, nil
	default:
		if arithmeticMnemonics[op] {
			if len(fields) != 1 {
				return Command{}, vmerr.Newf(vmerr.UnknownCommand, "%s takes no arguments: %q", op, raw)
			}
			return Command{Kind: Arithmetic, Arg1: op}, nil
		}
		return Command{}, vmerr.Newf(vmerr.UnknownCommand, "unrecognized opcode %q", op)
	}
}

func classifyMemoryAccess(op string, fields []string) (Command, error) {
	if len(fields) != 3 {
		return Command{}, vmerr.Newf(vmerr.UnknownCommand, "%s requires segment and index: %q", op, strings.Join(fields, " "))
	}
	idx, err := strconv.Atoi(fields[2])
	if err != nil {
		return Command{}, vmerr.Newf(vmerr.MalformedArgument, "%s %s: index %q is not an integer", op, fields[1], fields[2])
	}
	kind := Push
	if op == "pop" {
		kind = Pop
	}
	return Command{Kind: kind, Arg1: fields[1], Arg2: idx}, nil
}

func classifyControlFlow(op string, fields []string) (Command, error) {
	if len(fields) != 2 {
		return Command{}, vmerr.Newf(vmerr.UnknownCommand, "%s requires a label: %q", op, strings.Join(fields, " "))
	}
	var kind Kind
	switch op {
	case "label":
		kind = Label
	case "goto":
		kind = Goto
	case "if-goto":
		kind = IfGoto
	}
	return Command{Kind: kind, Arg1: fields[1]}, nil
}

func classifyCallable(op string, fields []string) (Command, error) {
	if len(fields) != 3 {
		return Command{}, vmerr.Newf(vmerr.UnknownCommand, "%s requires a name and a count: %q", op, strings.Join(fields, " "))
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return Command{}, vmerr.Newf(vmerr.MalformedArgument, "%s %s: count %q is not an integer", op, fields[1], fields[2])
	}
	kind := Function
	if op == "call" {
		kind = Call
	}
	return Command{Kind: kind, Arg1: fields[1], Arg2: n}, nil
}
