package access

import "strconv"

// Environment variable names exported to a repository hook child process
// on a write, per the Gitea hook-environment contract this adapter
// emulates. GITEA_REPO_IS_WIKI is always "false": wiki repositories are
// out of scope. SSH_ORIGINAL_COMMAND is always "git": the adapter never
// sees the original SSH command line, only the resolved repo/user.
const (
	EnvRepoID      = "GITEA_REPO_ID"
	EnvRepoIsWiki  = "GITEA_REPO_IS_WIKI"
	EnvRepoName    = "GITEA_REPO_NAME"
	EnvRepoUser    = "GITEA_REPO_USER"
	EnvSSHCommand  = "SSH_ORIGINAL_COMMAND"
	EnvPusherEmail = "GITEA_PUSHER_EMAIL"
	EnvPusherID    = "GITEA_PUSHER_ID"
	EnvDeployKeyID = "GITEA_DEPLOY_KEY_ID"
)

// buildHookEnv renders the exported environment map for a hook invoked on
// behalf of a push to repo by user. pusherEmail, pusherID, and
// deployKeyID are optional; their keys are omitted entirely when empty,
// rather than exported with an empty value, so a hook script can use
// plain presence checks.
func buildHookEnv(repoID int64, repoName, user, pusherEmail, pusherID, deployKeyID string) map[string]string {
	env := map[string]string{
		EnvRepoID:     strconv.FormatInt(repoID, 10),
		EnvRepoIsWiki: "false",
		EnvRepoName:   repoName,
		EnvRepoUser:   user,
		EnvSSHCommand: "git",
	}
	if pusherEmail != "" {
		env[EnvPusherEmail] = pusherEmail
	}
	if pusherID != "" {
		env[EnvPusherID] = pusherID
	}
	if deployKeyID != "" {
		env[EnvDeployKeyID] = deployKeyID
	}
	return env
}
