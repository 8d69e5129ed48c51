// Package regrep provides a small backtracking regex engine for grep-style
// line matching.
//
// The supported syntax is a constrained grep subset: literal characters,
// \d, \w, character sets [...] and [^...], the wildcard '.', the
// quantifiers '?' and '+', the anchors '^' and '$', and alternation groups
// (a|b). Matching is byte-oriented and boolean: a pattern either matches
// somewhere in a line or it does not.
//
// Basic usage:
//
//	re, err := regrep.Compile(`(cat|dog)s?`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("a dog ran") // true
//
// Compilation selects an execution strategy from the pattern's shape:
// patterns that reduce to literals bypass the backtracker entirely, and
// patterns with a required literal prefix use a prefilter to skip to
// candidate positions before verifying. Everything else runs the plain
// backtracking search.
//
// A compiled Regex is immutable and safe for concurrent use.
package regrep

import (
	"github.com/coregx/regrep/backtrack"
	"github.com/coregx/regrep/literal"
	"github.com/coregx/regrep/prefilter"
	"github.com/coregx/regrep/syntax"
)

// Regex represents a compiled pattern.
type Regex struct {
	pattern  string
	syn      *syntax.Pattern
	bt       *backtrack.Backtracker
	pf       prefilter.Prefilter
	strategy strategy
}

// Compile compiles a pattern with the default configuration.
//
// The returned error is a *syntax.ParseError wrapping one of the syntax
// package's sentinel errors.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails. Useful for
// patterns known to be valid at program start.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regrep: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	syn, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	re := &Regex{
		pattern:  pattern,
		syn:      syn,
		strategy: strategyBacktrack,
		bt: backtrack.New(syn, backtrack.Config{
			DotMatchesNewline: config.DotMatchesNewline,
		}),
	}

	if config.EnablePrefilter {
		re.pf, re.strategy = buildPrefilter(syn, config)
	}

	return re, nil
}

// buildPrefilter extracts literals and selects the strategy they allow.
func buildPrefilter(syn *syntax.Pattern, config Config) (prefilter.Prefilter, strategy) {
	seq := literal.Extract(syn)
	if seq.IsEmpty() || seq.Len() > config.MaxLiterals {
		return nil, strategyBacktrack
	}
	// Short incomplete prefixes produce too many false candidates to pay
	// for themselves; complete literals are always worth it.
	if !seq.Complete && seq.MinLen() < config.MinLiteralLen {
		return nil, strategyBacktrack
	}
	pf := prefilter.Build(seq)
	if pf == nil {
		return nil, strategyBacktrack
	}
	if pf.IsComplete() {
		return pf, strategyLiteral
	}
	return pf, strategyPrefiltered
}

// Match reports whether the pattern matches anywhere in b.
func (re *Regex) Match(b []byte) bool {
	// Complete alternative literals need no span, so the automaton's own
	// containment test answers directly.
	if re.strategy == strategyLiteral {
		if pf, ok := re.pf.(*prefilter.AhoCorasick); ok {
			return pf.IsMatch(b)
		}
	}
	_, _, ok := re.findIndex(b)
	return ok
}

// MatchString reports whether the pattern matches anywhere in s.
func (re *Regex) MatchString(s string) bool {
	return re.Match([]byte(s))
}

// FindIndex returns a two-element slice holding the leftmost match span in
// b, or nil if there is no match. A zero-width match yields
// loc[0] == loc[1].
func (re *Regex) FindIndex(b []byte) []int {
	start, end, ok := re.findIndex(b)
	if !ok {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex is FindIndex for a string input.
func (re *Regex) FindStringIndex(s string) []int {
	return re.FindIndex([]byte(s))
}

// String returns the source text of the pattern.
func (re *Regex) String() string {
	return re.pattern
}
