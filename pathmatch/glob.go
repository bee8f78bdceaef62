package pathmatch

import "fmt"

// matchGlob evaluates a single-segment glob (the "complex" NameMatcher
// grammar) against text using two-pointer backtracking, the same technique
// the teacher's wildmatch.go uses for a pattern segment. mask is assumed
// already validated by validateGlob at compile time; matchGlob itself never
// fails, per spec §7 ("the path matcher does not fail; it returns a
// boolean").
//
// Productions: '*' matches any run of characters (never spans '/', since it
// only ever sees a single segment); '?' matches any single character;
// '[...]' is a character class, '[!...]'/'[^...]' negates it, '-' forms
// ranges, ']' at position 0 is literal; '\x' escapes the next character.
func matchGlob(mask, text string) bool {
	gx, tx := 0, 0
	starGx, starTx := -1, -1

	for tx < len(text) {
		if gx < len(mask) {
			ch := mask[gx]
			switch {
			case ch == '\\' && gx+1 < len(mask):
				if text[tx] == mask[gx+1] {
					gx += 2
					tx++
					continue
				}
			case ch == '?':
				gx++
				tx++
				continue
			case ch == '*':
				starGx = gx
				starTx = tx
				gx++
				continue
			case ch == '[':
				if matched, newGx, ok := matchBracket(mask, gx, text[tx]); ok {
					if matched {
						gx = newGx
						tx++
						continue
					}
				} else if text[tx] == '[' {
					gx++
					tx++
					continue
				}
			default:
				if text[tx] == ch {
					gx++
					tx++
					continue
				}
			}
		}

		if starGx >= 0 {
			starTx++
			tx = starTx
			gx = starGx + 1
			continue
		}
		return false
	}

	for gx < len(mask) && mask[gx] == '*' {
		gx++
	}
	return gx == len(mask)
}

// matchBracket evaluates the character class starting at mask[pos] (the
// '[') against ch. Returns (matched, posAfterClass, valid); valid is false
// when the class has no closing ']'.
func matchBracket(mask string, pos int, ch byte) (matched bool, after int, valid bool) {
	i := pos + 1
	if i >= len(mask) {
		return false, 0, false
	}

	negate := false
	if mask[i] == '!' || mask[i] == '^' {
		negate = true
		i++
	}

	first := true // ']' is literal immediately after '[', '[!' or '[^'
	for i < len(mask) {
		if mask[i] == ']' && !first {
			if negate {
				matched = !matched
			}
			return matched, i + 1, true
		}
		first = false

		var lo byte
		if mask[i] == '\\' && i+1 < len(mask) {
			i++
			lo = mask[i]
		} else {
			lo = mask[i]
		}
		i++

		if i+1 < len(mask) && mask[i] == '-' && mask[i+1] != ']' {
			i++ // skip '-'
			var hi byte
			if mask[i] == '\\' && i+1 < len(mask) {
				i++
				hi = mask[i]
			} else {
				hi = mask[i]
			}
			i++
			if ch >= lo && ch <= hi {
				matched = true
			}
		} else if ch == lo {
			matched = true
		}
	}

	return false, 0, false
}

// validateGlob reports whether mask is a well-formed complex glob: every
// '[' has a matching ']', and no '\\' escape is dangling at end-of-string.
// The compiler calls this before lowering a token to a complex NameMatcher;
// matchGlob itself assumes the mask is already valid.
func validateGlob(mask string) error {
	for i := 0; i < len(mask); i++ {
		switch mask[i] {
		case '\\':
			if i+1 >= len(mask) {
				return fmt.Errorf("dangling escape at end of pattern segment %q", mask)
			}
			i++
		case '[':
			j := i + 1
			if j < len(mask) && (mask[j] == '!' || mask[j] == '^') {
				j++
			}
			if j < len(mask) && mask[j] == ']' {
				j++ // ']' as first char is literal
			}
			for j < len(mask) && mask[j] != ']' {
				if mask[j] == '\\' && j+1 < len(mask) {
					j += 2
					continue
				}
				j++
			}
			if j >= len(mask) {
				return fmt.Errorf("unterminated character class in pattern segment %q", mask)
			}
			i = j
		}
	}
	return nil
}
