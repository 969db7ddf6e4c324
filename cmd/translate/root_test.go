package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiaobogaga/hackvmtranslator/internal/vmerr"
)

func TestRun_SingleFileProducesAsmNextToSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Foo.vm")
	require.NoError(t, os.WriteFile(src, []byte("push constant 1\npush constant 2\nadd\n"), 0644))

	err := run(src, zerolog.Nop())
	require.NoError(t, err)

	out, err := os.ReadFile(filepath.Join(dir, "Foo.asm"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "(END)")
}

func TestRun_RejectsMissingExtension(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Foo.txt")
	require.NoError(t, os.WriteFile(src, []byte("add\n"), 0644))

	err := run(src, zerolog.Nop())
	require.Error(t, err)
}

func TestRun_RejectsLowercaseBaseName(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foo.vm")
	require.NoError(t, os.WriteFile(src, []byte("add\n"), 0644))

	err := run(src, zerolog.Nop())
	require.Error(t, err)
}

func TestRun_DirectorySkipsIllegalFilenamesAndBootstraps(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Sys.vm"), []byte("function Sys.init 0\npush constant 1\nlabel HALT\ngoto HALT\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.vm"), []byte("add\n"), 0644))

	err := run(dir, zerolog.Nop())
	require.NoError(t, err)

	outName := filepath.Base(dir) + ".asm"
	out, err := os.ReadFile(filepath.Join(dir, outName))
	require.NoError(t, err)
	assert.Contains(t, string(out), "call Sys.init")
	assert.NotContains(t, string(out), "(END)")
}

func TestRun_NonexistentPathIsArgumentError(t *testing.T) {
	err := run("/no/such/path.vm", zerolog.Nop())
	require.Error(t, err)
	assert.True(t, vmerr.Is(err, vmerr.ArgumentError))
}
