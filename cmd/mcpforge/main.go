package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kolah/mcpforge/internal/cli"
)

func main() {
	cmd := cli.RootCmd()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())

		code := 1
		var cliErr *cli.CLIError
		if errors.As(err, &cliErr) {
			if cliErr.Hint != "" {
				fmt.Fprintln(os.Stderr, "Hint:", cliErr.Hint)
			}
			code = cliErr.ExitCode
		}
		os.Exit(code)
	}
}
