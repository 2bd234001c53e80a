// Command logchart draws charts from satellite subsystem simulator logs.
package main

import (
	"os"

	"github.com/roach88/logchart/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
