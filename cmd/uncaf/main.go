// Command uncaf unpacks a CAF archive file into a directory tree.
//
// Usage:
//
//	uncaf <input-file.caf> <output-directory>
package main

import (
	"fmt"
	"os"

	"github.com/ogier/pflag"

	"github.com/comes-group/caf"
	"github.com/comes-group/caf/cafos"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <input-file.caf> <output-directory>\n", os.Args[0])
	}
	pflag.Parse()

	if pflag.NArg() != 2 {
		pflag.Usage()
		os.Exit(1)
	}
	if err := run(pflag.Arg(0), pflag.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "uncaf: %s\n", err)
		os.Exit(1)
	}
}

func run(inputFile, outputDir string) error {
	in, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("opening %q: %w", inputFile, err)
	}
	defer in.Close()

	archive, err := caf.Decode(in)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", inputFile, err)
	}

	dest, err := cafos.NewDest(outputDir)
	if err != nil {
		return fmt.Errorf("creating %q: %w", outputDir, err)
	}

	if err := caf.Unpack(archive, dest); err != nil {
		return fmt.Errorf("unpacking into %q: %w", outputDir, err)
	}
	return nil
}
