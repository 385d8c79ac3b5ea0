// Command gosexp is the thin CLI driver spec.md §6 describes as an
// external collaborator: read one S-expression from standard input (or
// a named file), re-emit it in a chosen form, exit non-zero with a
// diagnostic on the error channel on parse failure.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	sexp "github.com/ribose-labs/go-sexp"
)

func main() {
	var (
		form      = flag.String("form", "canonical", "output form: canonical, advanced, transport")
		maxColumn = flag.Int("max-column", 72, "advanced/transport line-wrap width (<=0 disables wrapping)")
		raw       = flag.Bool("raw", false, "treat input as one verbatim string (ParseRemainder) instead of an object")
		digest    = flag.Bool("digest", false, "print the BLAKE3 digest of the canonical form instead of re-emitting it")
		inputPath = flag.String("in", "", "input file path (default: stdin)")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "gosexp: ", 0)

	source := "stdin"
	var in io.Reader = os.Stdin
	if *inputPath != "" {
		source = *inputPath
		f, err := os.Open(*inputPath)
		if err != nil {
			logger.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	var (
		node     *sexp.Node
		warnings *sexp.Warnings
		err      error
	)
	if *raw {
		node, warnings, err = sexp.ParseRemainder(in)
	} else {
		node, warnings, err = sexp.Parse(in, sexp.ParserConfig{})
	}
	if err != nil {
		logger.Fatal(sexp.WrapParse(err, fmt.Sprintf("parsing %s", source)))
	}
	for _, w := range warnings.List() {
		logger.Printf("warning: %v", w)
	}

	if *digest {
		d := sexp.Digest(node)
		fmt.Printf("%x\n", d)
		return
	}

	cfg := sexp.PrintConfig{MaxColumn: *maxColumn}
	switch *form {
	case "canonical":
		os.Stdout.Write(sexp.EmitCanonical(node))
	case "advanced":
		os.Stdout.Write(sexp.EmitAdvanced(node, cfg))
		fmt.Println()
	case "transport":
		os.Stdout.Write(sexp.EmitTransport(node, cfg))
		fmt.Println()
	default:
		logger.Fatalf("unknown -form %q", *form)
	}
}
