package main

import (
	"os"

	"github.com/hbjs97/jump/internal/cli"
)

func main() {
	app := cli.NewApp()
	err := app.NewRootCmd().Execute()
	app.Close()
	if err != nil {
		os.Exit(int(cli.MapExitCode(err)))
	}
}
