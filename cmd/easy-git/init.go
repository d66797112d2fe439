package main

import (
	"fmt"
	"io"

	easygit "github.com/FoolCoder-code/easy-git"
	"github.com/FoolCoder-code/easy-git/eginternals"
	"github.com/spf13/cobra"
)

func newInitCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "init a new easygit repository",
		Args:  cobra.NoArgs,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return initCmd(cmd.OutOrStdout(), flags)
	}

	return cmd
}

func initCmd(out io.Writer, flags *globalFlags) error {
	r, err := easygit.InitRepository(flags.C.String())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Initialized empty easygit repository in %s\n", eginternals.DotDirPath(r.Config()))
	return r.Close()
}
