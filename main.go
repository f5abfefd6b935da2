package main

import (
	"os"

	"github.com/stubbiali/venvctl/cmd"
	"github.com/stubbiali/venvctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
