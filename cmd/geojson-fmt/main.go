package main

import (
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/geojson"

	"github.com/jessevdk/go-flags"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
	"github.com/tidwall/pretty"
)

type Options struct {
	Input  string `short:"i" long:"in" description:"Input file path. Reads from stdin if empty"`
	Output string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
	Format string `short:"f" long:"format" description:"Output format" choice:"canonical" choice:"pretty" choice:"min" default:"canonical"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	var inputData []byte
	var err error

	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
			os.Exit(1)
		}
	} else {
		inputData, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	doc, err := geojson.Parse(string(inputData))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid GeoJSON: %v\n", err)
		os.Exit(1)
	}

	// Re-serializing puts keys in canonical order
	outputData, err := doc.MarshalJSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error serializing document: %v\n", err)
		os.Exit(1)
	}

	switch opts.Format {
	case "pretty":
		outputData = pretty.Pretty(outputData)
	case "min":
		m := minify.New()
		m.AddFunc("application/json", mjson.Minify)
		outputData, err = m.Bytes("application/json", outputData)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error minifying output: %v\n", err)
			os.Exit(1)
		}
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(string(outputData))
}
