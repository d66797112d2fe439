package main

import (
	"github.com/FoolCoder-code/easy-git/internal/pathutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalFlags contains the flags shared by every subcommand
type globalFlags struct {
	C pflag.Value // simpler version of git's -C: https://git-scm.com/docs/git#Documentation/git.txt--Cltpathgt
}

func newRootCmd(cwd string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "easy-git",
		Short:         "minimal content tracker",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := &globalFlags{
		C: pathutil.NewDirPathFlagWithDefault(cwd),
	}
	cmd.PersistentFlags().VarP(flags.C, "change-dir", "C", "Run as if easy-git was started in the provided path instead of the current working directory.")

	cmd.AddCommand(newInitCmd(flags))
	cmd.AddCommand(newAddCmd(flags))
	cmd.AddCommand(newRemoveCmd(flags))
	cmd.AddCommand(newCommitCmd(flags))
	cmd.AddCommand(newRestoreCmd(flags))
	cmd.AddCommand(newStatusCmd(flags))

	return cmd
}
