// Command motion traces and previews the wheel picker and overlay animations.
package main

import (
	"os"

	"github.com/go-drift/motion/cmd/motion/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:]))
}
