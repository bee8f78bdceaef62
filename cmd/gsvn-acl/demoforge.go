package main

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/git-as-svn/git-as-svn/access"
)

// fixtureForge is a access.Forge backed by a flat YAML fixture file,
// standing in for a real forge client so this tool can test ACL
// configuration offline.
type fixtureForge struct {
	Repos []struct {
		Owner   string `yaml:"owner"`
		Name    string `yaml:"name"`
		User    string `yaml:"user"`
		ID      int64  `yaml:"id"`
		Private bool   `yaml:"private"`
		Admin   bool   `yaml:"admin"`
		Push    bool   `yaml:"push"`
		Pull    bool   `yaml:"pull"`
	} `yaml:"repos"`
	Teams []struct {
		Owner   string   `yaml:"owner"`
		Team    string   `yaml:"team"`
		Members []string `yaml:"members"`
	} `yaml:"teams"`
}

func loadFixtureForge(path string) (*fixtureForge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	var f fixtureForge
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}
	return &f, nil
}

func (f *fixtureForge) RepoPermissions(ctx context.Context, owner, repo, user string) (access.RepoMeta, error) {
	for _, r := range f.Repos {
		if r.Owner == owner && r.Name == repo && r.User == user {
			return access.RepoMeta{
				ID:      r.ID,
				Owner:   r.Owner,
				Name:    r.Name,
				Private: r.Private,
				Admin:   r.Admin,
				Push:    r.Push,
				Pull:    r.Pull,
			}, nil
		}
	}
	return access.RepoMeta{}, &access.NotFoundError{Resource: owner + "/" + repo}
}

func (f *fixtureForge) TeamMembers(ctx context.Context, owner, team string) ([]string, error) {
	for _, t := range f.Teams {
		if t.Owner == owner && t.Team == team {
			return t.Members, nil
		}
	}
	return nil, nil
}
