package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/git-as-svn/git-as-svn/access"
)

func newCheckCmd() *cobra.Command {
	var fixturePath, aclPath, owner, repo, user, path string
	var isDir bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate read/write access for a single (user, path) pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			forge, err := loadFixtureForge(fixturePath)
			if err != nil {
				return err
			}

			acls := map[string]*access.ACLSpec{}
			if aclPath != "" {
				raw, err := readFile(aclPath)
				if err != nil {
					return err
				}
				spec, err := access.LoadACLSpec(owner+"/"+repo, raw)
				if err != nil {
					return err
				}
				acls[owner+"/"+repo] = spec
			}

			cfg := access.DefaultConfig()
			cfg.Logger = logrus.StandardLogger()
			adapter := access.New(forge, acls, cfg)

			ctx := cmd.Context()
			canRead, err := adapter.CanRead(ctx, owner, repo, user, path, isDir)
			if err != nil {
				return fmt.Errorf("CanRead: %w", err)
			}
			canWrite, err := adapter.CanWrite(ctx, owner, repo, user, path, isDir)
			if err != nil {
				return fmt.Errorf("CanWrite: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "read=%t write=%t\n", canRead, canWrite)
			return nil
		},
	}

	cmd.Flags().StringVar(&fixturePath, "fixture", "fixture.yaml", "path to the repo/team fixture file")
	cmd.Flags().StringVar(&aclPath, "acl", "", "path to the repository's ACL YAML file (optional)")
	cmd.Flags().StringVar(&owner, "owner", "", "repository owner login")
	cmd.Flags().StringVar(&repo, "repo", "", "repository name")
	cmd.Flags().StringVar(&user, "user", "", "principal to evaluate (empty for anonymous)")
	cmd.Flags().StringVar(&path, "path", "", "repository-relative path to evaluate")
	cmd.Flags().BoolVar(&isDir, "dir", false, "treat path as a directory")
	cmd.MarkFlagRequired("owner")
	cmd.MarkFlagRequired("repo")
	cmd.MarkFlagRequired("path")

	return cmd
}
