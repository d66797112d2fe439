package main

import (
	"fmt"
	"io"

	"github.com/FoolCoder-code/easy-git/internal/errutil"
	"github.com/spf13/cobra"
)

func newAddCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add path...",
		Short: "Add file contents to the staging set",
		Long:  "Add file contents to the staging set. Directories are not tracked, pass \".\" to stage every file of the working tree.",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return addCmd(cmd.OutOrStdout(), flags, args)
	}

	return cmd
}

func addCmd(out io.Writer, flags *globalFlags, paths []string) (err error) {
	r, err := loadRepository(flags)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	added, skipped, err := r.Add(paths...)
	if err != nil {
		return err
	}

	for _, p := range skipped {
		warnf(out, "skipping %s: cannot be staged\n", p)
	}
	fmt.Fprintf(out, "%d file(s) staged\n", len(added))
	return nil
}
