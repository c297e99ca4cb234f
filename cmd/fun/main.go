// Fun evaluates canonical FUN AST documents.
//
// The evaluator consumes the normalized core language only; producing
// documents from surface syntax is the normalizer's job, not this
// driver's.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"

	"github.com/Bhargee/KRewrites/internal/config"
	"github.com/Bhargee/KRewrites/internal/pipeline"
	"github.com/Bhargee/KRewrites/internal/prettyprinter"
)

const usage = `fun

Usage:
  fun [--ast] [--store] [--trace-id] [--max-steps=N] [FILE]
  fun -h | --help
  fun --version

Arguments:
  FILE  Canonical AST document (YAML or JSON). Reads stdin when omitted.

Options:
  --ast          Print the decoded program before evaluating it.
  --store        Print the final store after the result.
  --trace-id     Print the run id before the result.
  --max-steps=N  Abort after N machine steps (0 = unbounded) [default: 0].
  -h, --help     Display this help.
  --version      Print version.

Exit status is 1 when evaluation gets stuck and 2 when the document
cannot be read or decoded.
`

const (
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], config.Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	source, err := readSource(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fun: %v\n", err)
		os.Exit(2)
	}

	ctx := pipeline.NewRunContext(source)
	ctx.MaxSteps, _ = opts.Int("--max-steps")
	ctx = pipeline.New(pipeline.DecodeStage{}, pipeline.EvalStage{}).Run(ctx)

	if ctx.Failed() {
		reportFailure(ctx)
		return
	}

	if traceID, _ := opts.Bool("--trace-id"); traceID {
		fmt.Printf("run %s\n", ctx.ID)
	}
	if showAST, _ := opts.Bool("--ast"); showAST {
		fmt.Println(prettyprinter.NewCodePrinter().Print(ctx.Program))
	}
	fmt.Println(ctx.Result.Inspect())

	if dumpStore, _ := opts.Bool("--store"); dumpStore {
		for addr, cell := range ctx.FinalStore.Snapshot() {
			if cell == nil {
				fmt.Printf("  %d: (reserved)\n", addr)
				continue
			}
			fmt.Printf("  %d: %s\n", addr, cell.Inspect())
		}
	}
}

func readSource(opts docopt.Opts) ([]byte, error) {
	path, _ := opts.String("FILE")
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func reportFailure(ctx *pipeline.RunContext) {
	code := 2
	for _, d := range ctx.Diagnostics {
		msg := d.String()
		if d.Stuck != nil {
			code = 1
			msg = fmt.Sprintf("stuck [%s]: %s", d.Stuck.Kind, d.Stuck.Message)
			if d.Stuck.Node != nil {
				msg += "\n  in: " + d.Stuck.Node.String()
			}
		}
		if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			fmt.Fprintf(os.Stderr, "%sfun: %s%s\n", colorRed, msg, colorReset)
		} else {
			fmt.Fprintf(os.Stderr, "fun: %s\n", msg)
		}
	}
	os.Exit(code)
}
