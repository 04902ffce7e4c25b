// Command days keeps a personal list of dated events.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/days/internal/cli"
	"github.com/roach88/days/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error [%s]: %v\n", cli.ErrCodeCommand, err)
		os.Exit(cli.ExitCommandError)
	}
	os.Exit(cli.Execute())
}
