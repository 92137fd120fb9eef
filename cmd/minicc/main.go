package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/MrAnderson1971/compiler/pkg/compiler"
)

var options struct {
	Out string `short:"o" long:"out" optional:"true" description:"output .asm path (defaults to the source path with its extension replaced)"`

	Positional struct {
		Source string
	} `positional-args:"yes" required:"yes"`
}

// main owns the one read of the source file and the one write of its
// ".asm" sibling; the core package never touches the filesystem.
func main() {
	args, err := flags.Parse(&options)
	if err != nil {
		os.Exit(1)
	}
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", args[0])
		os.Exit(1)
	}

	source, err := os.ReadFile(options.Positional.Source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	outPath := options.Out
	if outPath == "" {
		outPath = outputPath(options.Positional.Source)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer out.Close()

	if err := compiler.Compile(string(source), out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// outputPath replaces sourcePath's extension with ".asm" in place, in the
// same directory.
func outputPath(sourcePath string) string {
	return strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + ".asm"
}
