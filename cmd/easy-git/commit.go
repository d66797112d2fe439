package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/FoolCoder-code/easy-git/internal/errutil"
	"github.com/spf13/cobra"
)

func newCommitCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit message...",
		Short: "Record the staged files as a new commit",
		Long:  "Record the content of every staged file as a new commit. Extra arguments become extra lines of the message.",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return commitCmd(cmd.OutOrStdout(), flags, strings.Join(args, "\n"))
	}

	return cmd
}

func commitCmd(out io.Writer, flags *globalFlags, message string) (err error) {
	r, err := loadRepository(flags)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	id, err := r.Commit(message)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, id.String())
	return nil
}
