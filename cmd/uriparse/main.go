// Command uriparse parses URI references and prints their decomposition.
//
// References are taken from the arguments or, when there are none, from stdin, one per line.
//
//	uriparse -format yaml 'http://user@example.com:8080/a/b?q=1#top'
//	cat refs.txt | uriparse -format json -quiet
package main

//go:generate go tool errtrace -w .

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/log"
	"github.com/ghettovoice/gouri/uri"
)

var (
	formatArg = flag.String("format", "text", "Output format: text, json or yaml.")
	devArg    = flag.Bool("dev", false, "Log with the developer handler.")
	quietArg  = flag.Bool("quiet", false, "Disable logging.")
)

func main() {
	flag.Parse()

	logger := log.Def
	switch {
	case *quietArg:
		logger = log.Noop
	case *devArg:
		logger = log.Dev
	}

	if err := run(flag.Args(), os.Stdin, os.Stdout, *formatArg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Encountered error(s): %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out io.Writer, format string, logger *slog.Logger) error {
	enc, err := newEncoder(format)
	if err != nil {
		return errtrace.Wrap(err)
	}

	inputs := args
	if len(inputs) == 0 {
		if inputs, err = readLines(in); err != nil {
			return errtrace.Wrap(err)
		}
	}

	var errs []error
	for _, s := range inputs {
		ref, err := uri.Parse(s)
		if err != nil {
			attrs := []any{slog.Any("input", log.StringValue(s)), slog.Any("error", err)}
			if perr := (*uri.ParseError)(nil); errors.As(err, &perr) {
				attrs = append(attrs, slog.Any("cause", perr))
			}
			logger.Warn("failed to parse URI reference", attrs...)

			errs = append(errs, fmt.Errorf("%q: %w", s, err)) //errtrace:skip
			continue
		}

		logger.Debug("URI reference parsed", slog.Any("reference", ref))
		if err := enc(out, newReport(s, ref)); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return errtrace.Wrap(errorutil.JoinPrefix("invalid references:", errs...))
}

// readLines returns the non-blank lines of r with surrounding spaces removed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, errtrace.Wrap(sc.Err())
}
