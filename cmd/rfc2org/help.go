package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rfc2org [flags] [input.xml]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert an xml2rfc document to org outline markup.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input.xml    xml2rfc source file (reads stdin when omitted)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>    Output .org file or directory (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "  -w, --width <n>        Reflow column limit (default: 69)")
	fmt.Fprintln(w, "      --no-preamble      Omit the org options header")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show conversion traces")
	fmt.Fprintln(w, "      --version          Show version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  RFC2ORG_CONFIG, RFC2ORG_OUTPUT_DIR, RFC2ORG_WIDTH,")
	fmt.Fprintln(w, "  RFC2ORG_LOG_LEVEL, RFC2ORG_LOG_STYLE")
}
