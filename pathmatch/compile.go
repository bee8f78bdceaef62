package pathmatch

import "strings"

// CompiledPattern is the ordered list of NameMatchers produced by Compile.
// It is immutable once constructed and safe to share across goroutines for
// the lifetime of the owning repository configuration.
type CompiledPattern []NameMatcher

// Compile parses a gitignore-style pattern string, splits it on '/',
// normalizes the resulting token list, and lowers each token to a
// NameMatcher primitive. It returns an *InvalidPatternError if the pattern
// is empty, contains an unterminated character class, or ends in a
// dangling backslash escape.
func Compile(raw string) (CompiledPattern, error) {
	if raw == "" {
		return nil, invalidPattern(raw, "empty pattern")
	}

	toks := split(raw)
	if len(toks) == 0 {
		return nil, invalidPattern(raw, "empty pattern")
	}

	toks = normalize(toks)

	matchers := make(CompiledPattern, 0, len(toks))
	for _, t := range toks {
		switch t {
		case "**/":
			matchers = append(matchers, Recursive())
		case "/":
			// Pure root marker: affects only composition during normalize,
			// not matching.
		default:
			m, err := lowerToken(t, raw)
			if err != nil {
				return nil, err
			}
			matchers = append(matchers, m)
		}
	}
	return matchers, nil
}

// split produces tokens by walking pattern and, at each '/', emitting the
// substring up to and including the '/'; after the final '/' or at
// end-of-string, the remainder is emitted if non-empty. Preserving the
// trailing '/' on each intermediate token is what distinguishes
// directory-only segments from file-name segments later in normalize and
// lowerToken.
func split(pattern string) []string {
	var toks []string
	start := 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '/' {
			toks = append(toks, pattern[start:i+1])
			start = i + 1
		}
	}
	if start < len(pattern) {
		toks = append(toks, pattern[start:])
	}
	return toks
}

// normalize is the bounded rewrite described in §4.2/§4.5: it roots the
// pattern, ensures a lone file-name token applies at any depth, and
// collapses/merges "**" forms so that at most one recursive token ever
// survives in a run, with no "**" form left unmerged. The well-founded
// measure is (count of not-yet-canonical "**" forms, then list length);
// every branch below strictly decreases it, so the loop terminates even on
// degenerate input like "***".
func normalize(tokens []string) []string {
	// Step 1: a pattern consisting of a single token (directory-only or
	// not) that isn't the bare root marker applies at any depth, matching
	// real gitignore semantics for a bare single-component pattern such as
	// "build/" (see DESIGN.md for why this reads the trailing slash as
	// irrelevant to this rule, not as an exemption from it).
	if len(tokens) == 1 && tokens[0] != "/" {
		tokens = []string{"**/", tokens[0]}
	}

	// Step 2: root the pattern.
	if len(tokens) == 0 || tokens[0] != "/" {
		rooted := make([]string, 0, len(tokens)+1)
		rooted = append(rooted, "/")
		tokens = append(rooted, tokens...)
	}

	// Step 3: index-based walk over a growable input queue, rewinding by
	// re-pushing tokens to the front rather than using a bidirectional
	// cursor, per §9.
	in := append([]string(nil), tokens...)
	out := make([]string, 0, len(in))

	for len(in) > 0 {
		cur := in[0]
		in = in[1:]

		var prev string
		if len(out) > 0 {
			prev = out[len(out)-1]
		}

		switch {
		case prev == "**/" && cur == "*/":
			// Push the unconstrained recursive step as late as possible
			// without changing the accepted set.
			out[len(out)-1] = "*/"
			out = append(out, "**/")

		case prev == "**/" && (cur == "*" || cur == "**"):
			// Two consecutive "any" steps collapse to one: drop prev and
			// re-examine cur against whatever now precedes it.
			out = out[:len(out)-1]
			in = append([]string{cur}, in...)

		case cur == "**":
			// Bare "**" with no trailing slash only ever appears as the
			// pattern's final token (any "**" followed by more text picks
			// up a slash or a literal suffix, handled below). Per §9's
			// open question, a trailing "/**" is resolved to require at
			// least one descendant segment: split into a mandatory
			// single-segment wildcard followed by the ordinary recursive
			// step, rather than dropping it outright.
			in = append([]string{"*", "**/"}, in...)

		case cur == "**/" && prev == "**/":
			// Duplicate recursive step: drop the repeat.

		case strings.HasPrefix(cur, "**") && cur != "**/":
			// e.g. "**.log" -> "**/", "*.log". Rewind so both new tokens
			// are re-examined against the rest of the rewrite rules.
			rest := "*" + cur[2:]
			in = append([]string{"**/", rest}, in...)

		default:
			out = append(out, cur)
		}
	}

	return out
}

// lowerToken lowers a single non-special token (not "**/" and not "/") to
// a NameMatcher, per the step-3 rules in §4.2. raw is the original pattern
// text, used only for error messages.
func lowerToken(token, raw string) (NameMatcher, error) {
	dirOnly := strings.HasSuffix(token, "/")
	mask := token
	if dirOnly {
		mask = token[:len(token)-1]
	}
	if mask == "" {
		return NameMatcher{}, invalidPattern(raw, "empty path segment")
	}

	if strings.ContainsAny(mask, "[]\\") {
		if err := validateGlob(mask); err != nil {
			return NameMatcher{}, invalidPattern(raw, err.Error())
		}
		return Complex(mask, dirOnly, false), nil
	}

	if strings.Contains(mask, "?") {
		return Complex(mask, dirOnly, true), nil
	}

	switch strings.Count(mask, "*") {
	case 0:
		return Equals(mask, dirOnly), nil
	case 1:
		idx := strings.IndexByte(mask, '*')
		return Simple(mask[:idx], mask[idx+1:], dirOnly), nil
	default:
		return Complex(mask, dirOnly, true), nil
	}
}
