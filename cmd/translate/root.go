// Command translate drives the VM-to-Hack-assembly core
// (internal/translator) against a single .vm file or a directory of
// them. Its only job is turning a filesystem path into an ordered slice
// of translator.Unit values and an output sink.
package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/xiaobogaga/hackvmtranslator/internal/translator"
	"github.com/xiaobogaga/hackvmtranslator/internal/vmerr"
)

var (
	verbose   bool
	bootstrap = true
)

func newRootCmd(log zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <path>",
		Short: "Translate Hack VM source into Hack assembly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], log)
		},
		SilenceUsage: true,
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every translated source unit")
	cmd.Flags().BoolVar(&bootstrap, "bootstrap", true, "emit the bootstrap prologue (multi-unit mode only)")
	return cmd
}

func run(path string, log zerolog.Logger) error {
	if !verbose {
		log = log.Level(zerolog.WarnLevel)
	}

	info, err := os.Stat(path)
	if err != nil {
		return vmerr.Newf(vmerr.ArgumentError, "cannot access path %q: %v", path, err)
	}

	if info.IsDir() {
		return translateDirectory(path, log)
	}
	return translateFile(path, log)
}

func translateFile(path string, log zerolog.Logger) error {
	filename := filepath.Base(path)
	if !strings.HasSuffix(filename, ".vm") {
		return vmerr.Newf(vmerr.FilenameError, "%q: missing .vm extension", filename)
	}
	baseName := strings.TrimSuffix(filename, ".vm")
	if err := translator.ValidateBaseName(baseName); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return vmerr.In(vmerr.IOError, baseName, 0, err)
	}
	defer f.Close()

	outPath := filepath.Join(filepath.Dir(path), baseName+".asm")
	out, err := os.Create(outPath)
	if err != nil {
		return vmerr.In(vmerr.IOError, baseName, 0, err)
	}
	defer out.Close()

	units := []translator.Unit{{BaseName: baseName, Source: f}}
	return translator.Translate(units, out, translator.Single, log)
}

func translateDirectory(dir string, log zerolog.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return vmerr.Newf(vmerr.ArgumentError, "cannot read directory %q: %v", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".vm") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var units []translator.Unit
	var files []*os.File
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	for _, name := range names {
		baseName := strings.TrimSuffix(name, ".vm")
		if err := translator.ValidateBaseName(baseName); err != nil {
			log.Warn().Str("file", name).Err(err).Msg("skipping file with illegal base name")
			continue
		}
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return vmerr.In(vmerr.IOError, baseName, 0, err)
		}
		files = append(files, f)
		units = append(units, translator.Unit{BaseName: baseName, Source: f})
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return vmerr.Newf(vmerr.ArgumentError, "cannot resolve directory %q: %v", dir, err)
	}
	outPath := filepath.Join(dir, filepath.Base(absDir)+".asm")
	out, err := os.Create(outPath)
	if err != nil {
		return vmerr.In(vmerr.IOError, "", 0, err)
	}
	defer out.Close()

	mode := translator.Multi
	if !bootstrap {
		mode = translator.Single
	}
	return translator.Translate(units, out, mode, log)
}

