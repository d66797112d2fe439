package main

import (
	"fmt"
	"io"

	easygit "github.com/FoolCoder-code/easy-git"
	"github.com/FoolCoder-code/easy-git/eginternals/eghash"
	"github.com/FoolCoder-code/easy-git/internal/errutil"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

// statusCmdFlags represents the flags accepted by the status command
type statusCmdFlags struct {
	depth  int
	target string
}

func newStatusCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the staged files and the commit chain",
		Long:  "Show the staged files followed by the chain of commits reachable from HEAD, newest first.",
		Args:  cobra.NoArgs,
	}

	cmdFlags := statusCmdFlags{}
	cmd.Flags().IntVarP(&cmdFlags.depth, "depth", "d", easygit.DefaultSearchDepth, "Maximum number of commits to walk down from HEAD.")
	cmd.Flags().StringVarP(&cmdFlags.target, "target", "t", "", "Walk down from the provided commit instead of HEAD.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return statusCmd(cmd.OutOrStdout(), flags, cmdFlags)
	}

	return cmd
}

func statusCmd(out io.Writer, flags *globalFlags, cmdFlags statusCmdFlags) (err error) {
	r, err := loadRepository(flags)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	if cmdFlags.target != "" {
		target, err := eghash.NewDigestFromStr(cmdFlags.target)
		if err != nil {
			return xerrors.Errorf("not a valid commit id %s: %w", cmdFlags.target, err)
		}

		chain, err := r.Search(target, cmdFlags.depth)
		if err != nil {
			return err
		}
		printChain(out, chain)
		return nil
	}

	status, err := r.Status(cmdFlags.depth)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Staged files:")
	if len(status.Staged) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, p := range status.Staged {
		fmt.Fprintf(out, "  %s\n", p)
	}

	fmt.Fprintln(out, "Commits:")
	if len(status.Chain) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	printChain(out, status.Chain)
	return nil
}

// printChain prints one commit per line, the first one being HEAD
func printChain(out io.Writer, chain []eghash.Digest) {
	for i, id := range chain {
		fmt.Fprintf(out, "  %s", id.String())
		if i == 0 {
			fmt.Fprint(out, " ")
			headColor.Fprint(out, "<- HEAD")
		}
		fmt.Fprintln(out)
	}
}
