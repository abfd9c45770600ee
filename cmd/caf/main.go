// Command caf packs a directory tree into a CAF archive file.
//
// Usage:
//
//	caf <input-directory> <output-file.caf>
package main

import (
	"fmt"
	"os"

	"github.com/ogier/pflag"

	"github.com/comes-group/caf"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <input-directory> <output-file.caf>\n", os.Args[0])
	}
	pflag.Parse()

	if pflag.NArg() != 2 {
		pflag.Usage()
		os.Exit(1)
	}
	if err := run(pflag.Arg(0), pflag.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "caf: %s\n", err)
		os.Exit(1)
	}
}

func run(inputDir, outputFile string) error {
	src := os.DirFS(inputDir)
	var b caf.Builder
	if err := b.AddTree(src.(caf.Source), ".", ""); err != nil {
		return fmt.Errorf("packing %q: %w", inputDir, err)
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating %q: %w", outputFile, err)
	}
	defer out.Close()

	if err := caf.Encode(out, b.Finish()); err != nil {
		return fmt.Errorf("writing %q: %w", outputFile, err)
	}
	return nil
}
