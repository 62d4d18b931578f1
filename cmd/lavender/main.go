// Command lavender is a parse-check front end: it reads a source file,
// runs it through the declaration/expression pipeline, and reports the
// diagnostics it collects. There is no evaluator here; the binary
// stops once the postfix vectors are built.
package main

import (
	"fmt"
	"os"

	"github.com/lavender-lang/lavender/internal/clisurface"
	"github.com/lavender-lang/lavender/internal/pipeline"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	opts, err := clisurface.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if opts.Help {
		fmt.Fprintln(os.Stdout, "usage: lavender [--debug] [--bare] [--stack-size N] <file> [args...]")
		return
	}
	if opts.Version {
		fmt.Fprintln(os.Stdout, "lavender (front-end only build)")
		return
	}

	path := opts.MainFile
	if path == "" {
		path = opts.Filepath
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "lavender: no source file given")
		os.Exit(1)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lavender: %v\n", err)
		os.Exit(1)
	}

	res := pipeline.ParseSource(string(src))
	for _, e := range res.Errs {
		fmt.Fprintln(os.Stderr, e)
	}
	if len(res.Errs) > 0 {
		os.Exit(1)
	}

	if opts.Debug {
		fmt.Fprintf(os.Stdout, "parsed %d top-level declaration(s)\n", len(res.Decls))
	}
}
