package regrep

import (
	"sync"
	"testing"
)

func TestMatchBasics(t *testing.T) {
	tests := []struct {
		pattern  string
		input    string
		expected bool
	}{
		// Literals
		{"hello", "hello world", true},
		{"hello", "world", false},

		// Classes and sets
		{`\d`, "abc5def", true},
		{`\d`, "abcdef", false},
		{`\w`, "---_---", true},
		{`[aeiou]`, "rhythm", false},
		{`[aeiou]`, "sound", true},
		{`[^aeiou]`, "aaa", false},
		{`[^abc]`, "cat", true},

		// Wildcard and quantifiers
		{`c.t`, "cat", true},
		{`c.t`, "cut!", true},
		{`c.t`, "cart", false},
		{`dogs?`, "dog", true},
		{`dogs?`, "dogs", true},
		{`\d+`, "hello123world", true},
		{`\d+`, "helloworld", false},
		{`a+b`, "aaab", true},
		{`a+b`, "b", false},

		// Anchors
		{`^hello$`, "hello", true},
		{`^hello$`, "hello!", false},
		{`^hello$`, "say hello", false},

		// Alternation
		{`(cat|dog)`, "a dog ran", true},
		{`(cat|dog)`, "a bird flew", false},
		{`(cat|dog)+`, "catdog", true},

		// Empty pattern
		{``, "", true},
		{``, "x", true},
	}
	for _, tt := range tests {
		re, err := Compile(tt.pattern)
		if err != nil {
			t.Errorf("Compile(%q) failed: %v", tt.pattern, err)
			continue
		}
		if got := re.MatchString(tt.input); got != tt.expected {
			t.Errorf("MatchString(%q, %q) = %v, want %v [strategy=%s]",
				tt.pattern, tt.input, got, tt.expected, re.Strategy())
		}
	}
}

func TestFindIndex(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    []int // nil for no match
	}{
		{`\d+`, "hello123world", []int{5, 8}},
		{`\d+`, "helloworld", nil},
		{`hello`, "say hello", []int{4, 9}},
		{`a`, "bca", []int{2, 3}},
		{`(cat|dog)`, "a dog ran", []int{2, 5}},
		{`(cat|dog)s`, "cat dogs", []int{4, 8}},
		// Alternation picks the first matching branch, not the shortest
		// or longest occurrence.
		{`(dog|do)`, "dogs", []int{0, 3}},
		{`(do|dog)`, "dogs", []int{0, 2}},
		{`(dog|do)`, "a dog", []int{2, 5}},
		{`(bc|abc)`, "abc", []int{0, 3}},
		{`hel\wo`, "say hello", []int{4, 9}},
		{`^ab`, "abc", []int{0, 2}},
		{``, "abc", []int{0, 0}},
	}
	for _, tt := range tests {
		re := MustCompile(tt.pattern)
		got := re.FindStringIndex(tt.input)
		if tt.want == nil {
			if got != nil {
				t.Errorf("FindStringIndex(%q, %q) = %v, want nil [strategy=%s]",
					tt.pattern, tt.input, got, re.Strategy())
			}
			continue
		}
		if got == nil || got[0] != tt.want[0] || got[1] != tt.want[1] {
			t.Errorf("FindStringIndex(%q, %q) = %v, want %v [strategy=%s]",
				tt.pattern, tt.input, got, tt.want, re.Strategy())
		}
	}
}

func TestStrategySelection(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{`a`, "literal"},           // single complete byte -> memchr
		{`hello`, "literal"},       // complete substring -> memmem
		{`(cat|dog)`, "literal"},   // complete alternation -> aho-corasick
		{`hello\d`, "prefiltered"}, // required prefix
		{`dogs?`, "prefiltered"},
		{`(cat|dog)s`, "prefiltered"},
		{`\d+`, "backtrack"}, // no literals
		{`^hello`, "backtrack"},
		{`hello$`, "backtrack"},
		{`.`, "backtrack"},
	}
	for _, tt := range tests {
		re := MustCompile(tt.pattern)
		if got := re.Strategy(); got != tt.want {
			t.Errorf("Strategy(%q) = %s, want %s", tt.pattern, got, tt.want)
		}
	}
}

func TestCompileWithConfig(t *testing.T) {
	config := DefaultConfig()
	config.EnablePrefilter = false
	re, err := CompileWithConfig(`hello`, config)
	if err != nil {
		t.Fatal(err)
	}
	if got := re.Strategy(); got != "backtrack" {
		t.Errorf("Strategy = %s, want backtrack with prefilter disabled", got)
	}
	if !re.MatchString("say hello") {
		t.Error("match should not depend on strategy")
	}

	config = DefaultConfig()
	config.MinLiteralLen = 4
	re, err = CompileWithConfig(`ab\d`, config)
	if err != nil {
		t.Fatal(err)
	}
	if got := re.Strategy(); got != "backtrack" {
		t.Errorf("Strategy = %s, want backtrack for short prefix", got)
	}

	config = DefaultConfig()
	config.DotMatchesNewline = true
	re, err = CompileWithConfig(`c.t`, config)
	if err != nil {
		t.Fatal(err)
	}
	if !re.MatchString("c\nt") {
		t.Error("DotMatchesNewline should let '.' match '\\n'")
	}
}

// Strategies are an optimization, never a semantic change: every strategy
// must agree with plain backtracking.
func TestStrategiesAgree(t *testing.T) {
	patterns := []string{
		`a`, `hello`, `(cat|dog)`, `hello\d`, `dogs?`, `(cat|dog)s`,
		// Branches of unequal length: the automaton's occurrence order
		// differs from the backtracker's branch order here, so the fast
		// path must not leak automaton spans.
		`(dog|do)`, `(do|dog)`, `(bc|abc)`, `(dog|do)x`,
	}
	inputs := []string{
		"", "a", "hello", "say hello", "hello9", "cat", "dogs",
		"a dog ran", "dog", "cats and dogs", "no match here", "hell",
		"a dog", "do", "abc", "abcx", "dogx", "dox", "x",
	}

	plain := DefaultConfig()
	plain.EnablePrefilter = false

	for _, pattern := range patterns {
		fast := MustCompile(pattern)
		slow, err := CompileWithConfig(pattern, plain)
		if err != nil {
			t.Fatal(err)
		}
		for _, input := range inputs {
			got, want := fast.MatchString(input), slow.MatchString(input)
			if got != want {
				t.Errorf("MatchString(%q, %q): %s=%v backtrack=%v",
					pattern, input, fast.Strategy(), got, want)
			}
			gotLoc, wantLoc := fast.FindStringIndex(input), slow.FindStringIndex(input)
			if (gotLoc == nil) != (wantLoc == nil) ||
				(gotLoc != nil && (gotLoc[0] != wantLoc[0] || gotLoc[1] != wantLoc[1])) {
				t.Errorf("FindStringIndex(%q, %q): %s=%v backtrack=%v",
					pattern, input, fast.Strategy(), gotLoc, wantLoc)
			}
		}
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile should panic on invalid pattern")
		}
	}()
	MustCompile(`[abc`)
}

func TestRegexString(t *testing.T) {
	re := MustCompile(`(cat|dog)s?`)
	if got := re.String(); got != `(cat|dog)s?` {
		t.Errorf("String() = %q", got)
	}
}

// A compiled Regex is read-only after construction and safe to share.
func TestConcurrentUse(t *testing.T) {
	re := MustCompile(`^I see \d+ (cat|dog)s?$`)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if !re.MatchString("I see 42 dogs") {
					t.Error("expected match")
					return
				}
				if re.MatchString("I see 2 dog3") {
					t.Error("unexpected match")
					return
				}
			}
		}()
	}
	wg.Wait()
}
