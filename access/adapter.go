package access

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/git-as-svn/git-as-svn/pathmatch"
)

// Config controls the adapter's cache sizing and logging.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
	Logger    *logrus.Logger
}

// DefaultConfig matches the bounds called out for repository and team
// lookups: a modest bounded cache with a short TTL, trading a little
// staleness for sparing the forge from repeated per-request calls.
func DefaultConfig() Config {
	return Config{
		CacheSize: 1000,
		CacheTTL:  15 * time.Second,
		Logger:    logrus.StandardLogger(),
	}
}

// Adapter answers read/write access questions for SVN-facing clients of
// a Git forge, and renders the environment a repository hook needs. It
// holds no mutable state beyond its two caches and is safe for
// concurrent use from multiple goroutines.
type Adapter struct {
	forge Forge
	acls  map[string]*ACLSpec // keyed "owner/repo"
	log   *logrus.Logger

	repoMetaCache *ttlCache[RepoMeta]
	teamCache     *ttlCache[[]string]
}

// New constructs an Adapter backed by forge, with per-repository ACLs
// given by acls (keyed "owner/repo"; a repository absent from the map
// falls back to intrinsic RepoMeta permissions).
func New(forge Forge, acls map[string]*ACLSpec, cfg Config) *Adapter {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultConfig().CacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultConfig().CacheTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	return &Adapter{
		forge:         forge,
		acls:          acls,
		log:           cfg.Logger,
		repoMetaCache: newTTLCache[RepoMeta](cfg.CacheSize, cfg.CacheTTL),
		teamCache:     newTTLCache[[]string](cfg.CacheSize, cfg.CacheTTL),
	}
}

// CanRead reports whether user may read path in owner/repo. Branch is not
// an input: the verdict is the same for every branch of the repository.
func (a *Adapter) CanRead(ctx context.Context, owner, repo, user, path string, isDir bool) (bool, error) {
	return a.evaluate(ctx, owner, repo, user, path, isDir, func(v Verdict) bool { return v.Read }, RepoMeta.CanRead)
}

// CanWrite reports whether user may write path in owner/repo. Branch is not
// an input: the verdict is the same for every branch of the repository.
// An anonymous user (empty username) is always denied without any I/O.
func (a *Adapter) CanWrite(ctx context.Context, owner, repo, user, path string, isDir bool) (bool, error) {
	if user == "" {
		return false, nil
	}
	return a.evaluate(ctx, owner, repo, user, path, isDir, func(v Verdict) bool { return v.Write }, RepoMeta.CanWrite)
}

func (a *Adapter) evaluate(
	ctx context.Context,
	owner, repo, user, path string,
	isDir bool,
	pick func(Verdict) bool,
	fallback func(RepoMeta) bool,
) (bool, error) {
	meta, err := a.repoMeta(ctx, owner, repo, user)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, classifyForgeErr("repo permissions lookup", err)
	}

	spec, ok := a.acls[owner+"/"+repo]
	if !ok || len(spec.Rules) == 0 {
		return fallback(meta), nil
	}

	// teamErr carries a non-NotFound team-lookup failure out of the
	// isMember closure: evalACL's signature has no room for an error
	// return, but such a failure must still surface to the caller rather
	// than silently deny the rule (spec.md §4.4/§7: only NotFound maps to
	// deny, everything else is a backend failure).
	var teamErr error
	members := func(team string) bool {
		names, err := a.teamMembers(ctx, owner, team)
		if err != nil {
			if !IsNotFound(err) {
				teamErr = classifyForgeErr("team lookup", err)
			}
			return false
		}
		for _, n := range names {
			if n == user {
				return true
			}
		}
		return false
	}

	v := evalACL(spec.Rules, user, members, pathmatch.NewPath(path, isDir))
	if teamErr != nil {
		a.log.WithFields(logrus.Fields{"owner": owner, "user": user, "err": teamErr}).Error("team lookup failed, surfacing backend failure")
		return false, teamErr
	}
	return pick(v), nil
}

// HookEnv renders the environment exported to a repository hook invoked
// on behalf of a push by user.
func (a *Adapter) HookEnv(ctx context.Context, owner, repo, user, pusherEmail, pusherID, deployKeyID string) (map[string]string, error) {
	meta, err := a.repoMeta(ctx, owner, repo, user)
	if err != nil {
		return nil, classifyForgeErr("repo permissions lookup", err)
	}
	return buildHookEnv(meta.ID, repo, user, pusherEmail, pusherID, deployKeyID), nil
}

// classifyForgeErr implements the access package's error-classification
// contract: a NotFoundError passes through unchanged so callers can test
// it with IsNotFound, anything else (transport errors, timeouts) is
// wrapped as a BackendUnavailableError so it is never mistaken for an
// absent repository/team and is surfaced to the caller rather than
// swallowed.
func classifyForgeErr(op string, err error) error {
	if err == nil || IsNotFound(err) {
		return err
	}
	return &BackendUnavailableError{Op: op, Err: err}
}

func (a *Adapter) repoMeta(ctx context.Context, owner, repo, user string) (RepoMeta, error) {
	key := owner + "/" + repo + "#" + user
	return a.repoMetaCache.getOrLoad(ctx, key, func(ctx context.Context) (RepoMeta, error) {
		meta, err := a.forge.RepoPermissions(ctx, owner, repo, user)
		if err != nil {
			return RepoMeta{}, err
		}
		return meta, nil
	})
}

func (a *Adapter) teamMembers(ctx context.Context, owner, team string) ([]string, error) {
	key := owner + "/" + team
	return a.teamCache.getOrLoad(ctx, key, func(ctx context.Context) ([]string, error) {
		return a.forge.TeamMembers(ctx, owner, team)
	})
}
