// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/img2hex/hexword"
	"github.com/ezrec/img2hex/translate"
)

var f = translate.From

// ErrUsage indicates a positional argument count other than one.
type ErrUsage []string

func (err ErrUsage) Error() string {
	return f("expected one input file, got %v arguments", len(err))
}

// ErrFlag indicates a flag parse failure, already reported with the usage.
type ErrFlag struct {
	Err error
}

func (err *ErrFlag) Error() string {
	return err.Err.Error()
}

func (err *ErrFlag) Unwrap() error {
	return err.Err
}

func run(args []string, stdout io.Writer, stderr io.Writer) (err error) {
	var tail string
	var verbose bool

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	logger := log.New(stderr, "", log.LstdFlags)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: %v [-t fault|drop|pad] [-v] <input-file>\n", args[0])
		flags.PrintDefaults()
	}

	flags.StringVar(&tail, "t", hexword.TAIL_FAULT.String(), "Trailing partial word policy: fault, drop or pad")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	err = flags.Parse(args[1:])
	if err != nil {
		return &ErrFlag{Err: err}
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return ErrUsage(flags.Args())
	}

	policy, err := hexword.ParseTailPolicy(tail)
	if err != nil {
		return
	}

	input := flags.Arg(0)

	data, err := hexword.ReadFile(input)
	if err != nil {
		return
	}

	count, err := hexword.Dump(stdout, data, policy)
	if verbose {
		logger.Printf("%v: %v bytes, %v words", input, len(data), count)
	}
	if err != nil {
		return fmt.Errorf("%v: %w", input, err)
	}

	return
}

func main() {
	err := run(os.Args, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	var flagErr *ErrFlag
	if errors.As(err, &flagErr) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
