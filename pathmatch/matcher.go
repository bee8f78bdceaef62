// Package pathmatch implements the gitignore/SVN-style wildcard matching
// engine that git-as-svn uses to decide, for a single compiled pattern and a
// concrete repository path, whether the path is selected. It backs both
// path-based ACL evaluation (see the access package) and the "which
// files/dirs are visible at which depth" decisions in the SVN translation
// layer.
//
// The matcher is deliberately narrower than a full gitignore implementation:
// no POSIX glob semantics, no regular expressions, no case folding, and no
// attempt to preserve identity between patterns that happen to accept the
// same set of paths.
package pathmatch

// Kind tags which of the four closed NameMatcher variants a value holds.
// svnMask presence is tied to the variant (see NameMatcher.SVNMask), which is
// why this is a tagged sum rather than a narrow matches-only interface.
type Kind int

const (
	KindEquals Kind = iota
	KindSimple
	KindComplex
	KindRecursive
)

// NameMatcher decides match of a single path segment. Values are immutable
// and safe for concurrent use; Matches is a pure function.
type NameMatcher struct {
	kind Kind

	// equals
	name string

	// simple
	prefix string
	suffix string

	// complex
	mask          string
	svnCompatible bool

	// equals, simple, complex
	dirOnly bool
}

// Equals returns a NameMatcher that accepts a segment iff it equals name
// exactly (optionally restricted to directory positions).
func Equals(name string, dirOnly bool) NameMatcher {
	return NameMatcher{kind: KindEquals, name: name, dirOnly: dirOnly}
}

// Simple returns a NameMatcher for the common "prefix*suffix" shape: a
// single '*' within one segment, with a literal prefix and suffix.
func Simple(prefix, suffix string, dirOnly bool) NameMatcher {
	return NameMatcher{kind: KindSimple, prefix: prefix, suffix: suffix, dirOnly: dirOnly}
}

// Complex returns a NameMatcher for an arbitrary single-segment glob,
// supporting '?', '*', character classes, and backslash escapes. svnCompatible
// is informational: it records that mask contains none of '[', ']', '\\' and
// so could in principle be handed to an SVN client, even though complex
// matchers never report a svnMask (see SVNMask).
func Complex(mask string, dirOnly, svnCompatible bool) NameMatcher {
	return NameMatcher{kind: KindComplex, mask: mask, dirOnly: dirOnly, svnCompatible: svnCompatible}
}

// recursiveMatcher is the singleton "any depth" matcher: it matches any
// segment, at any depth, and remains active afterward.
var recursiveMatcher = NameMatcher{kind: KindRecursive}

// Recursive returns the singleton recursive NameMatcher.
func Recursive() NameMatcher { return recursiveMatcher }

// Kind reports which variant m is.
func (m NameMatcher) Kind() Kind { return m.kind }

// IsRecursive reports whether m is the "any depth" variant.
func (m NameMatcher) IsRecursive() bool { return m.kind == KindRecursive }

// DirOnly reports whether m only accepts segments known to be directories.
// Always false for the recursive variant.
func (m NameMatcher) DirOnly() bool { return m.dirOnly }

// Matches decides whether segment is accepted by m at a path position whose
// directory-ness is given by isDir. segment must be a single non-empty
// Unicode string containing no '/'.
func (m NameMatcher) Matches(segment string, isDir bool) bool {
	switch m.kind {
	case KindEquals:
		return (!m.dirOnly || isDir) && segment == m.name
	case KindSimple:
		return (!m.dirOnly || isDir) &&
			len(segment) >= len(m.prefix)+len(m.suffix) &&
			hasPrefix(segment, m.prefix) &&
			hasSuffix(segment, m.suffix)
	case KindComplex:
		return (!m.dirOnly || isDir) && matchGlob(m.mask, segment)
	case KindRecursive:
		return true
	default:
		return false
	}
}

// SVNMask returns a literal mask representable in SVN's own pattern
// language, when one exists: the literal name for equals, "prefix*suffix"
// for simple. Complex and recursive matchers have no SVN-expressible
// equivalent and report ok == false; they must be evaluated in-process.
func (m NameMatcher) SVNMask() (mask string, ok bool) {
	switch m.kind {
	case KindEquals:
		return m.name, true
	case KindSimple:
		return m.prefix + "*" + m.suffix, true
	default:
		return "", false
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
