package main

import (
	"fmt"
	"os"
)

func exitError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		exitError(err)
	}

	if err = newRootCmd(cwd).Execute(); err != nil {
		exitError(err)
	}
}
