package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/coregx/regrep"
)

// options holds the line-selection behavior independent of flag parsing so
// the filter loop can be tested against in-memory readers.
type options struct {
	Count       bool
	InvertMatch bool
	Highlight   bool
}

// matchColor is the grep-style highlight for the matched span.
var matchColor = color.New(color.FgRed, color.Bold)

// run compiles pattern once, filters lines from in to out, and reports
// whether any line was selected.
func run(pattern string, opts options, in io.Reader, out io.Writer) (bool, error) {
	re, err := regrep.Compile(pattern)
	if err != nil {
		return false, err
	}

	// ReadBytes instead of a Scanner: lines have no length cap, a scanner
	// would abort on anything past its buffer limit.
	reader := bufio.NewReaderSize(in, 64*1024)

	selected := 0
	for {
		line, readErr := reader.ReadBytes('\n')
		if len(line) > 0 {
			line = bytes.TrimSuffix(line, []byte("\n"))
			loc := re.FindIndex(line)

			matched := loc != nil
			if opts.InvertMatch {
				matched = !matched
			}
			if matched {
				selected++
				switch {
				case opts.Count:
				case opts.Highlight && loc != nil:
					fmt.Fprintf(out, "%s%s%s\n",
						line[:loc[0]],
						matchColor.Sprint(string(line[loc[0]:loc[1]])),
						line[loc[1]:])
				default:
					fmt.Fprintf(out, "%s\n", line)
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return selected > 0, fmt.Errorf("reading input: %w", readErr)
		}
	}

	if opts.Count {
		fmt.Fprintln(out, selected)
	}
	return selected > 0, nil
}
