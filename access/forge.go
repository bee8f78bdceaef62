package access

import "context"

// RepoMeta is the resolved, per-user view of a repository's intrinsic
// permissions: the unit cached by Adapter keyed by username (an empty
// username is the anonymous lookup).
type RepoMeta struct {
	ID      int64
	Owner   string
	Name    string
	Private bool
	Admin   bool
	Push    bool
	Pull    bool
}

// CanRead reports whether meta alone (no ACL) grants read access: public
// repositories are readable by anyone, private ones only to principals
// with an explicit pull/push/admin grant.
func (m RepoMeta) CanRead() bool {
	return !m.Private || m.Pull || m.Push || m.Admin
}

// CanWrite reports whether meta alone (no ACL) grants write access.
func (m RepoMeta) CanWrite() bool {
	return m.Push || m.Admin
}

// Forge is the out-of-scope HTTP client to the hosting forge (e.g. Gitea),
// consumed only through this interface. Implementations return a
// *NotFoundError, or an error wrapping one, for a 404; any other failure
// is treated as backend-unavailable by the caller.
type Forge interface {
	// RepoPermissions resolves the repository's intrinsic permissions for
	// user. An empty user requests the anonymous/public projection.
	RepoPermissions(ctx context.Context, owner, repo, user string) (RepoMeta, error)

	// TeamMembers resolves the member logins of an organization team.
	TeamMembers(ctx context.Context, owner, team string) ([]string, error)
}
