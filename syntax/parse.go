package syntax

// parser scans the pattern text left to right. pos is a byte cursor into
// src; the parser never materializes substrings of the pattern.
type parser struct {
	src string
	pos int
}

// Parse compiles a pattern into its element sequence.
//
// A leading '^' and a trailing '$' become the AnchorStart/AnchorEnd flags of
// the returned Pattern. A '^' or '$' anywhere else (including inside an
// alternation branch) is emitted as a zero-width element asserting against
// the overall input bounds.
//
// Parse fails fast: the error for the first structural problem is returned
// and no partial pattern is produced.
func Parse(pattern string) (*Pattern, error) {
	p := &parser{src: pattern}
	out := &Pattern{src: pattern}

	if len(pattern) > 0 && pattern[0] == '^' {
		out.AnchorStart = true
		p.pos = 1
	}

	elems, err := p.parseSeq(false)
	if err != nil {
		return nil, err
	}

	// A '$' that ended up as the final element closed the pattern text, so
	// it is the structural end anchor rather than a mid-pattern assertion.
	if n := len(elems); n > 0 && elems[n-1].Op == OpEndAnchor {
		elems = elems[:n-1]
		out.AnchorEnd = true
	}

	out.Elems = elems
	return out, nil
}

// errorAt wraps err with the pattern text and offset.
func (p *parser) errorAt(pos int, err error) error {
	return &ParseError{Pattern: p.src, Pos: pos, Err: err}
}

// parseSeq parses elements until end of input or, when inGroup is set, until
// an unconsumed '|' or ')'.
func (p *parser) parseSeq(inGroup bool) ([]Node, error) {
	var elems []Node

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if inGroup && (c == '|' || c == ')') {
			break
		}
		start := p.pos
		p.pos++

		var n Node
		switch c {
		case '.':
			n = Node{Op: OpAnyChar}
		case '\\':
			e, err := p.parseEscape(start)
			if err != nil {
				return nil, err
			}
			n = e
		case '[':
			e, err := p.parseClass(start)
			if err != nil {
				return nil, err
			}
			n = e
		case '(':
			e, err := p.parseGroup(start)
			if err != nil {
				return nil, err
			}
			n = e
		case '^':
			n = Node{Op: OpStartAnchor}
		case '$':
			n = Node{Op: OpEndAnchor}
		case '?', '+':
			return nil, p.errorAt(start, ErrDanglingQuantifier)
		default:
			n = Node{Op: OpLiteral, Lit: c}
		}

		if q, ok := p.peekQuant(); ok {
			if n.Op == OpStartAnchor || n.Op == OpEndAnchor {
				return nil, p.errorAt(p.pos, ErrDanglingQuantifier)
			}
			n.Quant = q
			p.pos++
		}

		elems = append(elems, n)
	}

	return elems, nil
}

// peekQuant reports the quantifier at the cursor, if any, without consuming it.
func (p *parser) peekQuant() (Quant, bool) {
	if p.pos >= len(p.src) {
		return QuantOne, false
	}
	switch p.src[p.pos] {
	case '?':
		return QuantZeroOrOne, true
	case '+':
		return QuantOneOrMore, true
	}
	return QuantOne, false
}

// parseEscape parses the byte after a '\'. start is the offset of the '\'.
func (p *parser) parseEscape(start int) (Node, error) {
	if p.pos >= len(p.src) {
		return Node{}, p.errorAt(start, ErrUnrecognizedEscape)
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case 'd':
		return Node{Op: OpDigit}, nil
	case 'w':
		return Node{Op: OpWordChar}, nil
	case '\\':
		return Node{Op: OpLiteral, Lit: '\\'}, nil
	}
	return Node{}, p.errorAt(start, ErrUnrecognizedEscape)
}

// parseClass parses a character set after the opening '['. start is the
// offset of the '['.
//
// A '^' immediately after '[' negates the set and is not a member. A ']' as
// the first member (after the optional '^') is a literal member, so "[]]"
// is the one-member set {']'}; this also keeps a parsed set from ever being
// empty. Inside the set, '\d', '\w', '\\' and '\]' are recognized and any
// other escape is rejected.
func (p *parser) parseClass(start int) (Node, error) {
	n := Node{Op: OpClass}

	if p.pos < len(p.src) && p.src[p.pos] == '^' {
		n.Negated = true
		p.pos++
	}
	if p.pos < len(p.src) && p.src[p.pos] == ']' {
		n.Set.Add(']')
		p.pos++
	}

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		p.pos++
		switch c {
		case ']':
			return n, nil
		case '\\':
			if p.pos >= len(p.src) {
				return Node{}, p.errorAt(p.pos-1, ErrUnrecognizedEscape)
			}
			esc := p.src[p.pos]
			p.pos++
			switch esc {
			case 'd':
				n.Set.AddRange('0', '9')
			case 'w':
				n.Set.AddRange('0', '9')
				n.Set.AddRange('a', 'z')
				n.Set.AddRange('A', 'Z')
				n.Set.Add('_')
			case '\\', ']':
				n.Set.Add(esc)
			default:
				return Node{}, p.errorAt(p.pos-2, ErrUnrecognizedEscape)
			}
		default:
			n.Set.Add(c)
		}
	}

	return Node{}, p.errorAt(start, ErrUnterminatedClass)
}

// parseGroup parses an alternation group after the opening '('. start is the
// offset of the '('.
//
// The contents are split on '|' at this nesting level; each branch is parsed
// as an independent element sequence. A single-branch group is legal no-op
// grouping. Empty branches are rejected.
func (p *parser) parseGroup(start int) (Node, error) {
	var branches [][]Node

	for {
		branch, err := p.parseSeq(true)
		if err != nil {
			return Node{}, err
		}
		if len(branch) == 0 {
			return Node{}, p.errorAt(p.pos, ErrEmptyBranch)
		}
		branches = append(branches, branch)

		if p.pos >= len(p.src) {
			return Node{}, p.errorAt(start, ErrUnterminatedGroup)
		}
		if p.src[p.pos] == '|' {
			p.pos++
			continue
		}
		p.pos++ // ')'
		break
	}

	return Node{Op: OpAlternate, Branches: branches}, nil
}
