// Package translator drives a full translation run: it propagates each
// source unit's base name, emits the bootstrap prologue in multi-unit
// mode, dispatches every unit's commands through the code-generation
// engine, and appends the termination fragment in single-unit mode only.
//
// Filesystem enumeration and command-line argument parsing live outside
// this package; its only interface to the outside world is an ordered
// stream of Units and an io.Writer output sink.
package translator

import (
	"errors"
	"io"
	"regexp"

	"github.com/rs/zerolog"
	"github.com/xiaobogaga/hackvmtranslator/internal/asmwriter"
	"github.com/xiaobogaga/hackvmtranslator/internal/codegen"
	"github.com/xiaobogaga/hackvmtranslator/internal/vmcmd"
	"github.com/xiaobogaga/hackvmtranslator/internal/vmerr"
	"github.com/xiaobogaga/hackvmtranslator/internal/vmtok"
)

// Unit is a named source of VM commands: its BaseName scopes any static
// variables it declares.
type Unit struct {
	BaseName string
	Source   io.Reader
}

// baseNameFormat requires the base name to begin with an uppercase letter.
var baseNameFormat = regexp.MustCompile(`^[A-Z]`)

// ValidateBaseName reports a FilenameError unless baseName begins with an
// uppercase letter.
func ValidateBaseName(baseName string) error {
	if !baseNameFormat.MatchString(baseName) {
		return vmerr.Newf(vmerr.FilenameError, "base name %q must begin with an uppercase letter", baseName)
	}
	return nil
}

// Mode selects whether the driver emits the bootstrap prologue and omits
// the terminator (Multi), or emits the terminator and no bootstrap
// (Single).
type Mode int

const (
	Single Mode = iota
	Multi
)

// Translate runs the driver loop over units in order, writing assembly to
// out. mode selects bootstrap/terminator behavior.
func Translate(units []Unit, out io.Writer, mode Mode, log zerolog.Logger) error {
	w := asmwriter.New(out)
	e := codegen.New(w)

	if mode == Multi {
		log.Debug().Msg("emitting bootstrap prologue")
		e.Bootstrap()
	}

	for _, u := range units {
		if err := ValidateBaseName(u.BaseName); err != nil {
			return err
		}
		n, err := translateUnit(e, w, u, log)
		if err != nil {
			return err
		}
		log.Info().Str("unit", u.BaseName).Int("commands", n).Msg("translated source unit")
	}

	if mode == Single {
		e.Terminator()
	}

	if err := w.Flush(); err != nil {
		return vmerr.In(vmerr.IOError, "", 0, err)
	}
	return nil
}

// translateUnit tokenizes, classifies, and emits every command in a single
// unit, propagating the unit's base name to the emitter for static
// scoping before the first command is processed.
func translateUnit(e *codegen.Emitter, w *asmwriter.Writer, u Unit, log zerolog.Logger) (int, error) {
	e.SetUnit(u.BaseName)
	tok := vmtok.New(u.Source)

	count := 0
	for {
		raw, line, ok := tok.Next()
		if !ok {
			break
		}
		cmd, err := vmcmd.Classify(raw)
		if err != nil {
			return count, vmerr.In(errKind(err), u.BaseName, line, err)
		}
		if err := e.Emit(cmd); err != nil {
			return count, vmerr.In(errKind(err), u.BaseName, line, err)
		}
		count++
	}
	if err := tok.Err(); err != nil {
		return count, vmerr.In(vmerr.IOError, u.BaseName, 0, err)
	}
	return count, nil
}

// errKind unwraps a *vmerr.Error's Kind, defaulting to UnknownCommand for
// errors that did not already carry one (classification/emission only
// ever return vmerr.Error, so this is always the identity in practice).
func errKind(err error) vmerr.Kind {
	var e *vmerr.Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return vmerr.UnknownCommand
}
