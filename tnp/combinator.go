package tnp

// A rule tries to match the token sequence starting at token index i.
// On success it returns the index after the match and a semantic value.
// On failure it returns ok=false, after registering with the parser what it
// expected to see.
type rule func(p *parser, i int) (next int, val interface{}, ok bool)

// match matches a single token of type tokval, if accept agrees. accept
// converts the lexeme to the semantic value of the token.
func match(tokval int, name string, accept func(lexeme string) (interface{}, bool)) rule {
	return func(p *parser, i int) (int, interface{}, bool) {
		if t := p.at(i); t.tokval == tokval {
			if v, ok := accept(t.lexeme); ok {
				return i + 1, v, true
			}
		}
		p.fail(i, name)
		return i, nil, false
	}
}

// word matches a keyword.
func word(w string) rule {
	return match(Word, w, func(lexeme string) (interface{}, bool) {
		return w, lexeme == w
	})
}

// seq matches all rules one after the other. Its value is the slice of the
// rules' values.
func seq(rules ...rule) rule {
	return func(p *parser, i int) (int, interface{}, bool) {
		vals := make([]interface{}, len(rules))
		j := i
		for k, r := range rules {
			var ok bool
			if j, vals[k], ok = r(p, j); !ok {
				return i, nil, false
			}
		}
		return j, vals, true
	}
}

// either tries every alternative. The longest match wins, ties go to the
// alternative listed first.
func either(alternatives ...rule) rule {
	return func(p *parser, i int) (int, interface{}, bool) {
		best, found := i, false
		var val interface{}
		for _, r := range alternatives {
			if j, v, ok := r(p, i); ok && (!found || j > best) {
				best, val, found = j, v, true
			}
		}
		return best, val, found
	}
}

type member struct {
	r        rule
	required bool
}

func required(r rule) member { return member{r: r, required: true} }
func optional(r rule) member { return member{r: r} }

// allOf matches its members in any order, each of them at most once.
// Required members have to be present. The value is a slice with an entry
// for each member, nil for members not present.
func allOf(members ...member) rule {
	return func(p *parser, i int) (int, interface{}, bool) {
		vals := make([]interface{}, len(members))
		seen := make([]bool, len(members))
		j := i
		for progress := true; progress; {
			progress = false
			for k, m := range members {
				if seen[k] {
					continue
				}
				if next, v, ok := m.r(p, j); ok {
					vals[k], seen[k], j, progress = v, true, next, true
					break
				}
			}
		}
		for k, m := range members {
			if m.required && !seen[k] {
				return i, nil, false
			}
		}
		return j, vals, true
	}
}

// many1 matches r one or more times. Its value is the slice of values of r.
func many1(r rule) rule {
	return func(p *parser, i int) (int, interface{}, bool) {
		j, v, ok := r(p, i)
		if !ok {
			return i, nil, false
		}
		vals := []interface{}{v}
		for {
			next, v, ok := r(p, j)
			if !ok || next == j {
				break
			}
			vals = append(vals, v)
			j = next
		}
		return j, vals, true
	}
}

// opt always matches. Its value is nil if r does not match.
func opt(r rule) rule {
	return func(p *parser, i int) (int, interface{}, bool) {
		if j, v, ok := r(p, i); ok {
			return j, v, true
		}
		return i, nil, true
	}
}

// as applies a semantic action to the value of r.
func (r rule) as(action func(v interface{}) interface{}) rule {
	return func(p *parser, i int) (int, interface{}, bool) {
		j, v, ok := r(p, i)
		if !ok {
			return i, nil, false
		}
		return j, action(v), true
	}
}

// check applies a semantic action which may reject the value of r. In this
// case the rule fails, expecting name.
func (r rule) check(name string, action func(v interface{}) (interface{}, bool)) rule {
	return func(p *parser, i int) (int, interface{}, bool) {
		j, v, ok := r(p, i)
		if !ok {
			return i, nil, false
		}
		if v, ok = action(v); !ok {
			p.fail(i, name)
			return i, nil, false
		}
		return j, v, true
	}
}

// nth selects value n of a sequence.
func nth(n int) func(interface{}) interface{} {
	return func(v interface{}) interface{} {
		return v.([]interface{})[n]
	}
}
