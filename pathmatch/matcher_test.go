package pathmatch

import "testing"

func TestEqualsMatcher(t *testing.T) {
	m := Equals("build", false)
	tests := []struct {
		seg   string
		isDir bool
		want  bool
	}{
		{"build", false, true},
		{"build", true, true},
		{"builds", false, false},
		{"Build", false, false},
	}
	for _, tt := range tests {
		if got := m.Matches(tt.seg, tt.isDir); got != tt.want {
			t.Errorf("Equals(%q).Matches(%q, %v) = %v, want %v", "build", tt.seg, tt.isDir, got, tt.want)
		}
	}
	if m.IsRecursive() {
		t.Error("equals matcher must not be recursive")
	}
	if mask, ok := m.SVNMask(); !ok || mask != "build" {
		t.Errorf("SVNMask() = %q, %v, want %q, true", mask, ok, "build")
	}
}

func TestEqualsDirOnly(t *testing.T) {
	m := Equals("vendor", true)
	if m.Matches("vendor", false) {
		t.Error("dir-only equals must not match a non-directory position")
	}
	if !m.Matches("vendor", true) {
		t.Error("dir-only equals must match a directory position")
	}
}

func TestSimpleMatcher(t *testing.T) {
	m := Simple("test_", ".go", false)
	tests := []struct {
		seg  string
		want bool
	}{
		{"test_foo.go", true},
		{"test_.go", true}, // empty middle is allowed
		{"test_foo.js", false},
		{"foo.go", false},
		// prefix+suffix overlap: "test_.go" len=8, prefix=5, suffix=3, 5+3=8 OK.
		// "test.go" (no middle content, len=7 < 8) must not match.
		{"test.go", false},
	}
	for _, tt := range tests {
		if got := m.Matches(tt.seg, false); got != tt.want {
			t.Errorf("Simple.Matches(%q) = %v, want %v", tt.seg, got, tt.want)
		}
	}
	if mask, ok := m.SVNMask(); !ok || mask != "test_*.go" {
		t.Errorf("SVNMask() = %q, %v, want %q, true", mask, ok, "test_*.go")
	}
}

func TestComplexMatcherGlob(t *testing.T) {
	tests := []struct {
		mask string
		seg  string
		want bool
	}{
		{"[ab].c", "a.c", true},
		{"[ab].c", "c.c", false},
		{"*.[oa]", "foo.o", true},
		{"*.[oa]", "foo.c", false},
		{"file?.txt", "file1.txt", true},
		{"file?.txt", "file12.txt", false},
		{"[!ab].c", "c.c", true},
		{"[^ab].c", "a.c", false},
		{`\*literal`, "*literal", true},
		{`\*literal`, "Xliteral", false},
	}
	for _, tt := range tests {
		m := Complex(tt.mask, false, false)
		if got := m.Matches(tt.seg, false); got != tt.want {
			t.Errorf("Complex(%q).Matches(%q) = %v, want %v", tt.mask, tt.seg, got, tt.want)
		}
		if _, ok := m.SVNMask(); ok {
			t.Errorf("Complex(%q).SVNMask() should be absent", tt.mask)
		}
	}
}

func TestRecursiveMatcher(t *testing.T) {
	m := Recursive()
	if !m.IsRecursive() {
		t.Error("Recursive() must report IsRecursive() == true")
	}
	if !m.Matches("anything", false) || !m.Matches("anything", true) {
		t.Error("Recursive() must match any segment at any position")
	}
	if _, ok := m.SVNMask(); ok {
		t.Error("Recursive() must have no SVN mask")
	}
}

func TestOnlyRecursiveReportsIsRecursive(t *testing.T) {
	variants := []NameMatcher{
		Equals("a", false),
		Simple("a", "b", false),
		Complex("a*b", false, true),
	}
	for _, v := range variants {
		if v.IsRecursive() {
			t.Errorf("%v should not report IsRecursive()", v)
		}
	}
}
