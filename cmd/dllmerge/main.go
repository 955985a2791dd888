package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirkon/errors"
	"github.com/sirkon/message"
)

const appName = "dllmerge"

type cliArgs struct {
	Unique     bool     `short:"u" help:"Remove consecutive duplicate lines from the merged output."`
	Reverse    bool     `short:"r" help:"Print lines in descending order."`
	IgnoreCase bool     `short:"i" help:"Compare lines case-insensitively."`
	Verbose    bool     `short:"v" help:"Report line counts."`
	Files      []string `arg:"" type:"existingfile" help:"Files to merge."`
}

func main() {
	var args cliArgs
	kong.Parse(
		&args,
		kong.Name(appName),
		kong.Description("Sort every input file and merge them into a single ordered stream."),
	)

	res, err := mergeFiles(args.Files, mergeOptions{
		unique:     args.Unique,
		reverse:    args.Reverse,
		ignoreCase: args.IgnoreCase,
	})
	if err != nil {
		message.Critical(errors.Wrap(err, "merge input files"))
	}

	if args.Verbose {
		message.Infof("merged %d files into %d lines", len(args.Files), res.Len())
	}

	if err := writeList(os.Stdout, res); err != nil {
		message.Critical(errors.Wrap(err, "write merged lines"))
	}
}
