package main

import (
	"fmt"
	"io"

	"github.com/FoolCoder-code/easy-git/internal/errutil"
	"github.com/spf13/cobra"
)

func newRemoveCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm path...",
		Aliases: []string{"remove"},
		Short:   "Remove files from the staging set",
		Long:    "Remove files from the staging set, leaving the working tree untouched. Pass \".\" to unstage everything.",
		Args:    cobra.MinimumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return removeCmd(cmd.OutOrStdout(), flags, args)
	}

	return cmd
}

func removeCmd(out io.Writer, flags *globalFlags, paths []string) (err error) {
	r, err := loadRepository(flags)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	removed, skipped, err := r.Remove(paths...)
	if err != nil {
		return err
	}

	for _, p := range skipped {
		warnf(out, "skipping %s: not staged\n", p)
	}
	fmt.Fprintf(out, "%d file(s) unstaged\n", len(removed))
	return nil
}
