package access

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/git-as-svn/git-as-svn/pathmatch"
)

// ruleDoc is the on-disk YAML shape of a single ACL rule, one level
// below aclDoc.Rules.
type ruleDoc struct {
	Principal string `yaml:"principal"`
	Pattern   string `yaml:"pattern"`
	Read      bool   `yaml:"read"`
	Write     bool   `yaml:"write"`
}

// aclDoc is the on-disk YAML shape of one repository's ACL file.
type aclDoc struct {
	Rules []ruleDoc `yaml:"rules"`
}

// LoadACLSpec parses the YAML ACL document for repo (given as "owner/repo",
// used only for error messages), compiling each rule's pattern and
// rejecting a document that names the same (principal, pattern) pair
// twice — such a document can never express a meaningful override, since
// one of the two identical rules is always dead, so it is treated as a
// configuration mistake rather than silently taking the last one.
func LoadACLSpec(repo string, data []byte) (*ACLSpec, error) {
	var doc aclDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing ACL for %s: %w", repo, err)
	}

	seen := make(map[string]bool, len(doc.Rules))
	rules := make([]AccessRule, 0, len(doc.Rules))
	for _, rd := range doc.Rules {
		cp, err := pathmatch.Compile(rd.Pattern)
		if err != nil {
			return nil, fmt.Errorf("repo %s: rule for %q: %w", repo, rd.Principal, err)
		}

		dupKey := rd.Principal + "\x00" + rd.Pattern
		if seen[dupKey] {
			return nil, &MisconfiguredACLError{Repo: repo, Principal: rd.Principal, Pattern: rd.Pattern}
		}
		seen[dupKey] = true

		rules = append(rules, AccessRule{
			Principal: rd.Principal,
			Pattern:   cp,
			Verdict:   Verdict{Read: rd.Read, Write: rd.Write},
		})
	}

	return &ACLSpec{Rules: rules}, nil
}
