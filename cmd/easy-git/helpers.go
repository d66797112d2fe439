package main

import (
	"io"

	easygit "github.com/FoolCoder-code/easy-git"
	"github.com/fatih/color"
)

var (
	warnColor = color.New(color.FgYellow)
	headColor = color.New(color.FgGreen)
)

func loadRepository(flags *globalFlags) (*easygit.Repository, error) {
	return easygit.OpenRepository(flags.C.String())
}

// warnf reports a non fatal issue without failing the command
func warnf(out io.Writer, format string, args ...interface{}) {
	warnColor.Fprintf(out, format, args...)
}
