// Command regrep filters standard input lines against a pattern.
//
// Usage:
//
//	echo "hello123" | regrep -E '\d+'
//
// Matching lines are echoed to standard output with the leftmost match
// highlighted. The exit status is 0 when at least one line was selected,
// 1 when none was, and 2 on a usage or pattern compilation error.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

var cli struct {
	Extended    bool   `short:"E" help:"Interpret PATTERN as an extended expression. regrep has no basic mode; the flag exists for grep compatibility."`
	Count       bool   `short:"c" help:"Print only a count of selected lines."`
	InvertMatch bool   `short:"v" help:"Select lines not matching PATTERN."`
	Color       string `enum:"auto,always,never" default:"auto" help:"Highlight the leftmost match per line (auto, always, never)."`
	Pattern     string `arg:"" help:"Pattern to search for."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("regrep"),
		kong.Description("Filter standard input lines against a pattern."),
		kong.Exit(func(code int) {
			// grep convention: usage trouble exits 2.
			if code != 0 {
				code = 2
			}
			os.Exit(code)
		}),
	)

	switch cli.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	matched, err := run(cli.Pattern, options{
		Count:       cli.Count,
		InvertMatch: cli.InvertMatch,
		Highlight:   !cli.InvertMatch,
	}, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "regrep: %v\n", err)
		os.Exit(2)
	}
	if !matched {
		os.Exit(1)
	}
}
