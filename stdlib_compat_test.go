package regrep

import (
	"regexp"
	"testing"
)

// The supported subset is also valid stdlib regexp syntax with identical
// matching semantics (without (?m), stdlib '^'/'$' assert text bounds just
// like ours). Cross-check both engines over a pattern/input grid.
//
// Deliberately excluded: "[]]" (RE2 rejects the POSIX first-']' rule) and
// top-level '|' (alternation in stdlib, a literal in this subset).
func TestStdlibCompat(t *testing.T) {
	patterns := []string{
		`hello`,
		`\d`,
		`\d+`,
		`\w+`,
		`[abc]+`,
		`[^abc]`,
		`c.t`,
		`dogs?`,
		`colou?r`,
		`a+b`,
		`a+a`,
		`^log`,
		`logs$`,
		`^hello$`,
		`^$`,
		`(cat|dog)`,
		`(cat|dog)s?`,
		`(cat|dog)+`,
		`((a|b)c|d)`,
		`(c+at|dog?)`,
		`^I see \d+ (cat|dog)s?$`,
		`\d \w\w\ws`,
	}
	inputs := []string{
		"",
		"a", "b", "aa", "aaa", "aaab", "ab",
		"hello", "say hello", "hello!",
		"123", "hello123world", "x9",
		"cat", "cot", "c\nt", "cart",
		"dog", "dogs", "dogz", "a dog ran",
		"color", "colour", "colr",
		"log", "logs", "slog", "catalog",
		"catdogcat", "bc", "d", "ccat",
		"I see 42 dogs", "I see 2 dog3", "I see 1 cat",
		"sally has 3 dogs", "sally has 1 dog",
		"_-!@# $",
	}

	for _, pattern := range patterns {
		ours := MustCompile(pattern)
		std := regexp.MustCompile(pattern)
		for _, input := range inputs {
			got := ours.MatchString(input)
			want := std.MatchString(input)
			if got != want {
				t.Errorf("pattern %q input %q: regrep=%v stdlib=%v [strategy=%s]",
					pattern, input, got, want, ours.Strategy())
			}
		}
	}
}
