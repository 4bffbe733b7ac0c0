package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/numlab/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "numlab:", err)
		os.Exit(cli.ExitCode(err))
	}
}
