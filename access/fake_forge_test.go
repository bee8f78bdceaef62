package access

import (
	"context"
	"sync/atomic"
)

// fakeForge is an in-memory Forge used by the access package tests. It
// counts calls so tests can assert on cache-hit behavior.
type fakeForge struct {
	repos     map[string]RepoMeta // keyed "owner/repo#user"
	teams     map[string][]string // keyed "owner/team"
	repoCalls int32
	teamCalls int32
	failRepo  error
	failTeam  error
}

func (f *fakeForge) RepoPermissions(ctx context.Context, owner, repo, user string) (RepoMeta, error) {
	atomic.AddInt32(&f.repoCalls, 1)
	if f.failRepo != nil {
		return RepoMeta{}, f.failRepo
	}
	meta, ok := f.repos[owner+"/"+repo+"#"+user]
	if !ok {
		return RepoMeta{}, &NotFoundError{Resource: owner + "/" + repo}
	}
	return meta, nil
}

func (f *fakeForge) TeamMembers(ctx context.Context, owner, team string) ([]string, error) {
	atomic.AddInt32(&f.teamCalls, 1)
	if f.failTeam != nil {
		return nil, f.failTeam
	}
	return f.teams[owner+"/"+team], nil
}
