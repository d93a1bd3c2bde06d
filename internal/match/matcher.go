package match

import (
	"fmt"
	"strings"
)

// PatternError reports a malformed filter pattern. It is fatal: the run
// aborts before any test executes, with exit code 2.
type PatternError struct {
	Pattern string
	Reason  string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid filter pattern %q: %s", e.Pattern, e.Reason)
}

// Rule is a compiled pattern: a path-prefix predicate over `/`-delimited
// segments plus a polarity (include vs exclude).
type Rule struct {
	prefix string
	negate bool
}

// Matches reports whether id starts with the rule's segments, followed by
// either a `/` or end-of-string. `foo` matches `foo` and `foo/bar` but not
// `foobar/test`.
func (r Rule) Matches(id string) bool {
	if !strings.HasPrefix(id, r.prefix) {
		return false
	}
	return len(id) == len(r.prefix) || id[len(r.prefix)] == '/'
}

// Negate reports the rule's polarity.
func (r Rule) Negate() bool {
	return r.negate
}

// Matcher decides per-test allow/deny from a compiled rule set.
type Matcher struct {
	rules     []Rule
	whitelist bool
}

// Compile parses raw user patterns into a Matcher. A leading `-` negates a
// pattern; it must be followed by at least one character that is neither a
// separator nor another `-`. Leading and trailing separators are stripped.
// Any malformed pattern fails the whole compilation.
func Compile(patterns []string) (*Matcher, error) {
	m := &Matcher{}
	for _, raw := range patterns {
		rule, err := compileOne(raw)
		if err != nil {
			return nil, err
		}
		m.rules = append(m.rules, rule)
		if !rule.negate {
			m.whitelist = true
		}
	}
	return m, nil
}

func compileOne(raw string) (Rule, error) {
	body := raw
	negate := false
	if strings.HasPrefix(raw, "-") {
		rest := raw[1:]
		if rest == "" {
			return Rule{}, &PatternError{Pattern: raw, Reason: "nothing follows the negation prefix"}
		}
		switch rest[0] {
		case '/':
			return Rule{}, &PatternError{Pattern: raw, Reason: "separator directly after the negation prefix"}
		case '-':
			return Rule{}, &PatternError{Pattern: raw, Reason: "repeated negation prefix"}
		}
		negate = true
		body = rest
	}
	body = strings.Trim(body, "/")
	if body == "" {
		return Rule{}, &PatternError{Pattern: raw, Reason: "empty pattern"}
	}
	return Rule{prefix: body, negate: negate}, nil
}

// Whitelist reports whether any supplied pattern was an include pattern,
// in which case only explicitly included tests are allowed.
func (m *Matcher) Whitelist() bool {
	return m.whitelist
}

// Allowed evaluates every rule, in the order supplied, against the given
// test identifier. The default is allowed unless in whitelist mode; each
// matching rule overrides the decision, so the last matching rule wins.
// This lets include and exclude patterns combine: `foo -foo/bar` allows
// everything under foo/ except foo/bar.
func (m *Matcher) Allowed(id string) bool {
	allowed := !m.whitelist
	for _, rule := range m.rules {
		if rule.Matches(id) {
			allowed = m.whitelist && !rule.negate
		}
	}
	return allowed
}
