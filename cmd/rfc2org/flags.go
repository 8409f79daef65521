package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across invocation modes.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for the converter.
type convertFlags struct {
	common     commonFlags
	output     string
	width      int
	noPreamble bool
	version    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show conversion traces")
}

// parseFlags parses CLI flags and returns positional args.
// args[0] is the program name and is skipped.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("rfc2org", flag.ContinueOnError)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")

	// Conversion flags
	fs.IntVarP(&f.width, "width", "w", 0, "reflow column limit (0 = default)")
	fs.BoolVar(&f.noPreamble, "no-preamble", false, "omit the org options header")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
