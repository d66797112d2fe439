package main

import (
	"fmt"
	"io"

	"github.com/FoolCoder-code/easy-git/eginternals/eghash"
	"github.com/FoolCoder-code/easy-git/internal/errutil"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func newRestoreCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore [commit]",
		Short: "Restore the working tree files captured by a commit",
		Long:  "Restore every file captured by the provided commit to its recorded path, overwriting the current content. Without an argument the commit HEAD points at is restored.",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := ""
		if len(args) > 0 {
			target = args[0]
		}
		return restoreCmd(cmd.OutOrStdout(), flags, target)
	}

	return cmd
}

func restoreCmd(out io.Writer, flags *globalFlags, target string) (err error) {
	var id eghash.Digest
	if target != "" {
		if id, err = eghash.NewDigestFromStr(target); err != nil {
			return xerrors.Errorf("not a valid commit id %s: %w", target, err)
		}
	}

	r, err := loadRepository(flags)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	var restored []string
	if target == "" {
		restored, err = r.RestoreHead()
	} else {
		restored, err = r.Restore(id)
	}
	if err != nil {
		return err
	}

	for _, p := range restored {
		fmt.Fprintln(out, p)
	}
	return nil
}
