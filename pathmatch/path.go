package pathmatch

import "strings"

// Path is an input to matching: an ordered list of segments derived from a
// string by splitting on '/', plus a boolean IsDir for the final segment.
type Path struct {
	Segments []string
	IsDir    bool
}

// NewPath splits relPath on '/' into a Path. An empty relPath yields a Path
// with no segments, representing the repository root itself.
func NewPath(relPath string, isDir bool) Path {
	if relPath == "" {
		return Path{IsDir: isDir}
	}
	return Path{Segments: strings.Split(relPath, "/"), IsDir: isDir}
}

// Match decides whether p is selected by cp.
//
// A match exists iff there is a mapping from matcher indices to
// non-decreasing segment positions such that every non-recursive matcher
// consumes exactly one segment and accepts it, every recursive matcher
// consumes zero or more segments unconditionally, and all segments are
// consumed. Backtracking is total but bounded to a single active
// recursive matcher at a time: normalize guarantees two recursive
// matchers are never adjacent, so one backtrack point always suffices.
func (cp CompiledPattern) Match(p Path) bool {
	return matchSegments(cp, p.Segments, p.IsDir)
}

// MatchPath is a convenience wrapper that splits relPath before matching.
func (cp CompiledPattern) MatchPath(relPath string, isDir bool) bool {
	return cp.Match(NewPath(relPath, isDir))
}

func matchSegments(matchers []NameMatcher, segs []string, isDir bool) bool {
	mx, sx := 0, 0
	// Backtrack point for the most recently passed recursive matcher.
	backMx, backSx := -1, -1

	for sx < len(segs) {
		isDirAt := sx < len(segs)-1 || isDir

		if mx < len(matchers) && matchers[mx].IsRecursive() {
			backMx, backSx = mx, sx
			mx++
			continue
		}
		if mx < len(matchers) && matchers[mx].Matches(segs[sx], isDirAt) {
			mx++
			sx++
			continue
		}

		// Mismatch: backtrack to the last recursive matcher and have it
		// consume one more segment.
		if backMx >= 0 {
			backSx++
			sx = backSx
			mx = backMx + 1
			continue
		}
		return false
	}

	// Every remaining matcher must be recursive (consuming zero segments).
	for mx < len(matchers) {
		if !matchers[mx].IsRecursive() {
			return false
		}
		mx++
	}
	return true
}
