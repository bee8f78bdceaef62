package access

import "github.com/git-as-svn/git-as-svn/pathmatch"

// Verdict is a single read/write grant or denial resulting from ACL
// evaluation. Both fields default to false. There is no separate deny
// marker: a later matching rule replaces an earlier rule's Verdict
// wholesale, so a false field in the later rule revokes an earlier grant.
type Verdict struct {
	Read  bool
	Write bool
}

// AccessRule binds a principal (a username, or a team name prefixed with
// "@") to a compiled path pattern and the Verdict that applies when both
// match. Rules are evaluated in declaration order; the last matching
// rule for a given (principal, path) pair wins.
type AccessRule struct {
	Principal string
	Pattern   pathmatch.CompiledPattern
	Verdict   Verdict
}

// ACLSpec is the resolved, compiled ACL for one repository: the ordered
// rule list. Team membership for "@team" rules is not stored here; it is
// looked up at evaluation time.
type ACLSpec struct {
	Rules []AccessRule
}

// evalACL walks rules in declaration order and returns the last verdict
// whose rule matches both the principal (exact username match, or
// membership in the named team) and the path. Earlier matching rules are
// fully overridden, not merged: a later rule denying write after an
// earlier rule granted it wins outright, matching how .gitignore's own
// last-pattern-wins semantics generalize to permissions.
//
// isMember reports whether user belongs to the team named (without the
// "@" prefix) in a rule's Principal.
func evalACL(rules []AccessRule, user string, isMember func(team string) bool, path pathmatch.Path) Verdict {
	var v Verdict
	for _, rule := range rules {
		if !principalMatches(rule.Principal, user, isMember) {
			continue
		}
		if !rule.Pattern.Match(path) {
			continue
		}
		v = rule.Verdict
	}
	return v
}

func principalMatches(principal, user string, isMember func(team string) bool) bool {
	if len(principal) > 0 && principal[0] == '@' {
		return isMember(principal[1:])
	}
	return principal == user
}
