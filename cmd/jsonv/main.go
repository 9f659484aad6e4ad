// Copyright (C) 2024 The jsonv Authors. All Rights Reserved.

// Program jsonv validates a JSON document and prints its normalized form.
//
// The document is read from the path given as an argument, or from stdin
// when no path is given. On success the parsed value is re-emitted compactly
// on stdout; with --check nothing is printed. On failure the parse error,
// including its line and column, is reported on stderr and the program exits
// nonzero.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jvx/jsonv"
)

var cli struct {
	Input string `help:"Path to input JSON file. If not specified, reads from stdin." arg:"" optional:"" type:"path"`
	Check bool   `help:"Validate the input without printing the value." short:"c"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("jsonv"),
		kong.Description("Validate a JSON document and print its normalized form."),
		kong.UsageOnError(),
	)

	in := io.Reader(os.Stdin)
	if cli.Input != "" {
		f, err := os.Open(cli.Input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jsonv: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := run(in, os.Stdout, cli.Check); err != nil {
		fmt.Fprintf(os.Stderr, "jsonv: %v\n", err)
		os.Exit(1)
	}
}

// run parses everything readable from in and, unless check is set, writes
// the compact rendering of the value to out.
func run(in io.Reader, out io.Writer, check bool) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	v, err := jsonv.ParseBytes(data)
	if err != nil {
		return err
	}
	if !check {
		fmt.Fprintln(out, v.JSON())
	}
	return nil
}
